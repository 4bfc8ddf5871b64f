package hilbert

import "errors"

// Coord is the set of coordinate types the curve is defined for. The index
// for a coordinate of width W bits always has 2W bits.
type Coord interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

const (
	// ChunkBits is the number of bits taken from each coordinate per table
	// lookup.
	ChunkBits = 3

	// ChunkIndexBits is the number of index bits produced per table lookup.
	ChunkIndexBits = 2 * ChunkBits

	// States is the number of curve orientations tracked between chunks.
	States = 4

	// TableSize is the number of entries in each direction's lookup table.
	TableSize = States << ChunkIndexBits
)

var (
	ErrIndexOverflow = errors.New("hilbert: index exceeds the range of the coordinate width")
)
