package hilbert

// The curve is driven by a four state machine, one state per rotation or
// reflection of the basic U shaped cell. Each cell of the table is the index
// digit (0-3) for that quadrant followed by the state used inside it:
//
//	state | x=0,y=0 | x=1,y=0 | x=1,y=1 | x=0,y=1
//	  0   |  0 -> 1 |  3 -> 2 |  2 -> 0 |  1 -> 0
//	  1   |  0 -> 0 |  1 -> 1 |  2 -> 1 |  3 -> 3
//	  2   |  2 -> 2 |  3 -> 0 |  0 -> 3 |  1 -> 2
//	  3   |  2 -> 3 |  1 -> 3 |  0 -> 2 |  3 -> 1
//
// The 256 entry tables below are three transitions of the machine unrolled,
// so one lookup consumes three bits of each coordinate (or six bits of index)
// and yields the state for the next chunk in the top two bits.

// xy2hTable maps SSXXXYYY => SSHHHHHH
var xy2hTable = [TableSize]uint8{
	// state 0
	0x40, 0x01, 0xce, 0x4f, 0x10, 0xd3, 0x54, 0x15,
	0x83, 0x02, 0xcd, 0x8c, 0x51, 0x52, 0x97, 0x16,
	0x04, 0xc7, 0x08, 0xcb, 0x9e, 0x9d, 0x58, 0x19,
	0x45, 0x46, 0x49, 0x4a, 0x1f, 0xdc, 0x9b, 0x1a,
	0xba, 0xb9, 0xb6, 0xb5, 0x20, 0xe3, 0x64, 0x25,
	0x3b, 0xf8, 0x37, 0xf4, 0x61, 0x62, 0xa7, 0x26,
	0x7c, 0x3d, 0xf2, 0x73, 0xae, 0xad, 0x68, 0x29,
	0xbf, 0x3e, 0xf1, 0xb0, 0x2f, 0xec, 0xab, 0x2a,
	// state 1
	0x00, 0xc3, 0x44, 0x05, 0xfa, 0x7b, 0x3c, 0xff,
	0x41, 0x42, 0x87, 0x06, 0xf9, 0xb8, 0x7d, 0x7e,
	0x8e, 0x8d, 0x48, 0x09, 0xf6, 0x77, 0xb2, 0xb1,
	0x0f, 0xcc, 0x8b, 0x0a, 0xf5, 0xb4, 0x33, 0xf0,
	0x50, 0x11, 0xde, 0x5f, 0x60, 0x21, 0xee, 0x6f,
	0x93, 0x12, 0xdd, 0x9c, 0xa3, 0x22, 0xed, 0xac,
	0x14, 0xd7, 0x18, 0xdb, 0x24, 0xe7, 0x28, 0xeb,
	0x55, 0x56, 0x59, 0x5a, 0x65, 0x66, 0x69, 0x6a,
	// state 2
	0xaa, 0xa9, 0xa6, 0xa5, 0x9a, 0x99, 0x96, 0x95,
	0x2b, 0xe8, 0x27, 0xe4, 0x1b, 0xd8, 0x17, 0xd4,
	0x6c, 0x2d, 0xe2, 0x63, 0x5c, 0x1d, 0xd2, 0x53,
	0xaf, 0x2e, 0xe1, 0xa0, 0x9f, 0x1e, 0xd1, 0x90,
	0x30, 0xf3, 0x74, 0x35, 0xca, 0x4b, 0x0c, 0xcf,
	0x71, 0x72, 0xb7, 0x36, 0xc9, 0x88, 0x4d, 0x4e,
	0xbe, 0xbd, 0x78, 0x39, 0xc6, 0x47, 0x82, 0x81,
	0x3f, 0xfc, 0xbb, 0x3a, 0xc5, 0x84, 0x03, 0xc0,
	// state 3
	0xea, 0x6b, 0x2c, 0xef, 0x70, 0x31, 0xfe, 0x7f,
	0xe9, 0xa8, 0x6d, 0x6e, 0xb3, 0x32, 0xfd, 0xbc,
	0xe6, 0x67, 0xa2, 0xa1, 0x34, 0xf7, 0x38, 0xfb,
	0xe5, 0xa4, 0x23, 0xe0, 0x75, 0x76, 0x79, 0x7a,
	0xda, 0x5b, 0x1c, 0xdf, 0x8a, 0x89, 0x86, 0x85,
	0xd9, 0x98, 0x5d, 0x5e, 0x0b, 0xc8, 0x07, 0xc4,
	0xd6, 0x57, 0x92, 0x91, 0x4c, 0x0d, 0xc2, 0x43,
	0xd5, 0x94, 0x13, 0xd0, 0x8f, 0x0e, 0xc1, 0x80,
}

// h2xyTable maps SSHHHHHH => SSXXXYYY
var h2xyTable = [TableSize]uint8{
	// state 0
	0x40, 0x01, 0x09, 0x88, 0x10, 0x58, 0x59, 0xd1,
	0x12, 0x5a, 0x5b, 0xd3, 0x8b, 0xca, 0xc2, 0x43,
	0x04, 0x4c, 0x4d, 0xc5, 0x46, 0x07, 0x0f, 0x8e,
	0x56, 0x17, 0x1f, 0x9e, 0xdd, 0x95, 0x94, 0x1c,
	0x24, 0x6c, 0x6d, 0xe5, 0x66, 0x27, 0x2f, 0xae,
	0x76, 0x37, 0x3f, 0xbe, 0xfd, 0xb5, 0xb4, 0x3c,
	0xbb, 0xfa, 0xf2, 0x73, 0xeb, 0xa3, 0xa2, 0x2a,
	0xe9, 0xa1, 0xa0, 0x28, 0x70, 0x31, 0x39, 0xb8,
	// state 1
	0x00, 0x48, 0x49, 0xc1, 0x42, 0x03, 0x0b, 0x8a,
	0x52, 0x13, 0x1b, 0x9a, 0xd9, 0x91, 0x90, 0x18,
	0x60, 0x21, 0x29, 0xa8, 0x30, 0x78, 0x79, 0xf1,
	0x32, 0x7a, 0x7b, 0xf3, 0xab, 0xea, 0xe2, 0x63,
	0x64, 0x25, 0x2d, 0xac, 0x34, 0x7c, 0x7d, 0xf5,
	0x36, 0x7e, 0x7f, 0xf7, 0xaf, 0xee, 0xe6, 0x67,
	0xdf, 0x97, 0x96, 0x1e, 0x9d, 0xdc, 0xd4, 0x55,
	0x8d, 0xcc, 0xc4, 0x45, 0x06, 0x4e, 0x4f, 0xc7,
	// state 2
	0xff, 0xb7, 0xb6, 0x3e, 0xbd, 0xfc, 0xf4, 0x75,
	0xad, 0xec, 0xe4, 0x65, 0x26, 0x6e, 0x6f, 0xe7,
	0x9f, 0xde, 0xd6, 0x57, 0xcf, 0x87, 0x86, 0x0e,
	0xcd, 0x85, 0x84, 0x0c, 0x54, 0x15, 0x1d, 0x9c,
	0x9b, 0xda, 0xd2, 0x53, 0xcb, 0x83, 0x82, 0x0a,
	0xc9, 0x81, 0x80, 0x08, 0x50, 0x11, 0x19, 0x98,
	0x20, 0x68, 0x69, 0xe1, 0x62, 0x23, 0x2b, 0xaa,
	0x72, 0x33, 0x3b, 0xba, 0xf9, 0xb1, 0xb0, 0x38,
	// state 3
	0xbf, 0xfe, 0xf6, 0x77, 0xef, 0xa7, 0xa6, 0x2e,
	0xed, 0xa5, 0xa4, 0x2c, 0x74, 0x35, 0x3d, 0xbc,
	0xfb, 0xb3, 0xb2, 0x3a, 0xb9, 0xf8, 0xf0, 0x71,
	0xa9, 0xe8, 0xe0, 0x61, 0x22, 0x6a, 0x6b, 0xe3,
	0xdb, 0x93, 0x92, 0x1a, 0x99, 0xd8, 0xd0, 0x51,
	0x89, 0xc8, 0xc0, 0x41, 0x02, 0x4a, 0x4b, 0xc3,
	0x44, 0x05, 0x0d, 0x8c, 0x14, 0x5c, 0x5d, 0xd5,
	0x16, 0x5e, 0x5f, 0xd7, 0x8f, 0xce, 0xc6, 0x47,
}

const (
	stateShift = ChunkIndexBits
	chunkMask  = 1<<ChunkBits - 1
	indexMask  = 1<<ChunkIndexBits - 1
)

func xyChunk(state uint8, x, y uint64) uint8 {
	return state<<stateShift | uint8(x&chunkMask)<<ChunkBits | uint8(y&chunkMask)
}

func hChunk(state uint8, h uint64) uint8 {
	return state<<stateShift | uint8(h&indexMask)
}

// schedule returns the number of table lookups needed for width bits and the
// state to start in.
//
// When width is not a multiple of ChunkBits the first lookup includes one or
// two leading zero bits of padding. A zero (x, y) bit pair takes state 0 to
// state 1 and state 1 back to 0, emitting zero index bits both ways, so
// starting in state 1 for a single padding pair (and in 0 for two) leaves the
// machine at the base orientation by the time the real bits arrive.
func schedule(width uint) (chunks uint, state uint8) {
	chunks = (width + ChunkBits - 1) / ChunkBits
	pad := chunks*ChunkBits - width
	return chunks, uint8(pad & 1)
}
