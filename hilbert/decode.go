package hilbert

import "lukechampine.com/uint128"

// Decode returns the coordinates at position h on the Hilbert curve covering
// the full range of T. It is the inverse of Encode.
//
// An index with bits set above IndexBits[T]() belongs to a wider curve and is
// rejected with ErrIndexOverflow.
func Decode[T Coord](h uint128.Uint128) (x, y T, err error) {
	if h.Cmp(MaxIndex[T]()) > 0 {
		return 0, 0, ErrIndexOverflow
	}
	w := Width[T]()
	if w > 32 {
		hx, hy := decode128(h)
		return T(hx), T(hy), nil
	}
	hx, hy := decode64(h.Lo, w)
	return T(hx), T(hy), nil
}

// Decode8 returns the 8 bit coordinates at curve index h.
func Decode8(h uint16) (x, y uint8) {
	hx, hy := decode64(uint64(h), 8)
	return uint8(hx), uint8(hy)
}

// Decode16 returns the 16 bit coordinates at curve index h.
func Decode16(h uint32) (x, y uint16) {
	hx, hy := decode64(uint64(h), 16)
	return uint16(hx), uint16(hy)
}

// Decode32 returns the 32 bit coordinates at curve index h.
func Decode32(h uint64) (x, y uint32) {
	hx, hy := decode64(h, 32)
	return uint32(hx), uint32(hy)
}

// Decode64 returns the 64 bit coordinates at curve index h.
func Decode64(h uint128.Uint128) (x, y uint64) {
	return decode128(h)
}

// decode64 decodes the low 2*width bits of h, width <= 32.
func decode64(h uint64, width uint) (x, y uint64) {
	chunks, state := schedule(width)

	for shift := chunks * ChunkBits; shift > 0; {
		shift -= ChunkBits
		e := h2xyTable[hChunk(state, h>>(2*shift))]
		state = e >> stateShift
		x = x<<ChunkBits | uint64(e>>ChunkBits&chunkMask)
		y = y<<ChunkBits | uint64(e&chunkMask)
	}
	return x, y
}

func decode128(h uint128.Uint128) (x, y uint64) {
	chunks, state := schedule(64)

	for shift := chunks * ChunkBits; shift > 0; {
		shift -= ChunkBits
		e := h2xyTable[hChunk(state, h.Rsh(2*shift).Lo)]
		state = e >> stateShift
		x = x<<ChunkBits | uint64(e>>ChunkBits&chunkMask)
		y = y<<ChunkBits | uint64(e&chunkMask)
	}
	return x, y
}
