package main

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/forestrie/go-hilbert/hilbert"
	"lukechampine.com/uint128"
)

func encodeAs[T hilbert.Coord](x, y uint64) uint128.Uint128 {
	return hilbert.Encode(T(x), T(y))
}

func decodeAs[T hilbert.Coord](h uint128.Uint128) (uint64, uint64, error) {
	x, y, err := hilbert.Decode[T](h)
	return uint64(x), uint64(y), err
}

func parseCoord(s string, width uint) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, int(width))
	if err != nil {
		return 0, fmt.Errorf("coordinate %q: %w", s, err)
	}
	return v, nil
}

// encodeRecord parses x and y as width bit coordinates and encodes them.
func encodeRecord(width uint, xs, ys string) (Record, error) {
	x, err := parseCoord(xs, width)
	if err != nil {
		return Record{}, err
	}
	y, err := parseCoord(ys, width)
	if err != nil {
		return Record{}, err
	}

	var h uint128.Uint128
	switch width {
	case 8:
		h = encodeAs[uint8](x, y)
	case 16:
		h = encodeAs[uint16](x, y)
	case 32:
		h = encodeAs[uint32](x, y)
	case 64:
		h = encodeAs[uint64](x, y)
	default:
		return Record{}, ErrBadWidth
	}
	return Record{Width: width, X: x, Y: y, Index: h.String()}, nil
}

// parseIndex accepts only plain base 10 digits, matching how coordinates are
// parsed.
func parseIndex(s string) (uint128.Uint128, error) {
	if s == "" {
		return uint128.Zero, fmt.Errorf("index %q: %w", s, ErrBadIndex)
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return uint128.Zero, fmt.Errorf("index %q: %w", s, ErrBadIndex)
		}
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.BitLen() > 128 {
		return uint128.Zero, fmt.Errorf("index %q: %w", s, ErrBadIndex)
	}
	return uint128.FromBig(v), nil
}

// decodeRecord parses hs as a decimal index and decodes it to width bit
// coordinates.
func decodeRecord(width uint, hs string) (Record, error) {
	h, err := parseIndex(hs)
	if err != nil {
		return Record{}, err
	}

	var x, y uint64
	switch width {
	case 8:
		x, y, err = decodeAs[uint8](h)
	case 16:
		x, y, err = decodeAs[uint16](h)
	case 32:
		x, y, err = decodeAs[uint32](h)
	case 64:
		x, y, err = decodeAs[uint64](h)
	default:
		return Record{}, ErrBadWidth
	}
	if err != nil {
		return Record{}, fmt.Errorf("index %s for width %d: %w", hs, width, err)
	}
	return Record{Width: width, X: x, Y: y, Index: h.String()}, nil
}
