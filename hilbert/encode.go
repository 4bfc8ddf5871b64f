package hilbert

import "lukechampine.com/uint128"

// Encode returns the position of (x, y) on the Hilbert curve that covers the
// full range of T. The number of table lookups follows from the width of T;
// no curve order is needed, and for values that fit a narrower type the
// result is the same as encoding them with that type.
func Encode[T Coord](x, y T) uint128.Uint128 {
	w := Width[T]()
	if w > 32 {
		return encode128(uint64(x), uint64(y))
	}
	return uint128.From64(encode64(uint64(x), uint64(y), w))
}

// Encode8 returns the 16 bit curve index of (x, y) for 8 bit coordinates.
func Encode8(x, y uint8) uint16 {
	return uint16(encode64(uint64(x), uint64(y), 8))
}

// Encode16 returns the 32 bit curve index of (x, y) for 16 bit coordinates.
func Encode16(x, y uint16) uint32 {
	return uint32(encode64(uint64(x), uint64(y), 16))
}

// Encode32 returns the 64 bit curve index of (x, y) for 32 bit coordinates.
func Encode32(x, y uint32) uint64 {
	return encode64(uint64(x), uint64(y), 32)
}

// Encode64 returns the 128 bit curve index of (x, y) for 64 bit coordinates.
func Encode64(x, y uint64) uint128.Uint128 {
	return encode128(x, y)
}

// encode64 encodes the low width bits of x and y, width <= 32. Index bits
// produced for the padding fall off the top of the accumulator.
func encode64(x, y uint64, width uint) uint64 {
	chunks, state := schedule(width)

	var h uint64
	for shift := chunks * ChunkBits; shift > 0; {
		shift -= ChunkBits
		e := xy2hTable[xyChunk(state, x>>shift, y>>shift)]
		state = e >> stateShift
		h = h<<ChunkIndexBits | uint64(e&indexMask)
	}
	return h
}

func encode128(x, y uint64) uint128.Uint128 {
	chunks, state := schedule(64)

	var h uint128.Uint128
	for shift := chunks * ChunkBits; shift > 0; {
		shift -= ChunkBits
		e := xy2hTable[xyChunk(state, x>>shift, y>>shift)]
		state = e >> stateShift
		h = h.Lsh(ChunkIndexBits).Or64(uint64(e & indexMask))
	}
	return h
}
