package hilbert

/*

# Table driven 2D Hilbert curve

This package maps a pair of unsigned integer coordinates to their position on
a Hilbert curve, and back.

The package is built from:

- small, composable functions
- explicit bit layouts
- no allocation, no locking
- a burden of knowledge on the caller for the width specific functions

## Why a Hilbert curve

Row major and Z-order (Morton) numbering both have long jumps between cells
that are spatially adjacent. The Hilbert curve visits every cell of a
2^n x 2^n grid exactly once and each step moves to a neighbouring cell, so
ranges of indices correspond to compact regions. That makes it a good key for
spatial indexes, tile storage and cache friendly image traversal.

## Widths, and why there is no order parameter

Most implementations take an "order" (the number of bit pairs to process)
alongside the coordinates, and the curve they produce depends on it: the same
cell gets a different index, possibly in a transposed orientation, when the
order changes.

Here the number of steps comes from the coordinate type instead:

	Encode8(x, y uint8) uint16
	Encode16(x, y uint16) uint32
	Encode32(x, y uint32) uint64
	Encode64(x, y uint64) uint128.Uint128

	Encode[T Coord](x, y T) uint128.Uint128

and the start state is chosen so that leading zero bits leave the orientation
untouched. The result is that a cell has the same index whatever width
carries it:

	Encode8(1, 2) == 7
	Encode32(1, 2) == 7

and the 2^k x 2^k square at the origin, for even k, is exactly indices
[0, 4^k). Use Order to find the smallest such k for a set of coordinates.

Decoding mirrors this. The width specific Decode functions are total. The
generic Decode takes a 128 bit index and returns ErrIndexOverflow if it has
bits above the range of the requested coordinate type.

## The tables

The curve is a four state machine: at each level of the quadtree the current
state says how the U shaped visiting order is rotated or reflected, and the
quadrant chosen picks the state for the next level down.

Rather than step the machine one bit pair at a time, two 256 byte tables
step it three times per lookup:

	xy2hTable  SSXXXYYY => SSHHHHHH
	h2xyTable  SSHHHHHH => SSXXXYYY

SS is the current (index) or next (value) state, XXX and YYY are three bits of
each coordinate, HHHHHH the six matching index bits. Together the tables are
512 bytes and sit comfortably in L1.

Widths that are not a multiple of three get one or two zero bits of padding
at the top. A zero bit pair swaps states 0 and 1 and produces zero index bits
in both, so padding by one pair starts in state 1 and padding by two starts in
state 0. Either way the real bits are processed from the base orientation.

The test suite regenerates both tables from the single step machine and
cross checks the result against an independent bit serial implementation.

*/
