package hilbert

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

func TestDecode8(t *testing.T) {
	type args struct {
		h uint16
	}
	tests := []struct {
		name  string
		args  args
		wantX uint8
		wantY uint8
	}{
		{"0 is the origin", args{0}, 0, 0},
		{"1", args{1}, 1, 0},
		{"2", args{2}, 1, 1},
		{"3", args{3}, 0, 1},
		{"7", args{7}, 1, 2},
		{"43693 near max", args{43693}, 254, 253},
		{"last index", args{math.MaxUint16}, 255, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := Decode8(tt.args.h)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Decode8() = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestDecode16(t *testing.T) {
	x, y := Decode16(0)
	assert.Equal(t, [2]uint16{0, 0}, [2]uint16{x, y})
	x, y = Decode16(65536)
	assert.Equal(t, [2]uint16{256, 0}, [2]uint16{x, y})
	x, y = Decode16(3147584)
	assert.Equal(t, [2]uint16{1000, 2000}, [2]uint16{x, y})
}

func TestDecode32(t *testing.T) {
	x, y := Decode32(12297829382473034413)
	assert.Equal(t, uint32(math.MaxUint32-1), x)
	assert.Equal(t, uint32(math.MaxUint32-2), y)

	x, y = Decode32(1 << 40)
	assert.Equal(t, uint32(1<<20), x)
	assert.Equal(t, uint32(0), y)
}

func TestDecode64(t *testing.T) {
	x, y := Decode64(uint128.New(0xaaaaaaaaaaaaaaad, 0xaaaaaaaaaaaaaaaa))
	assert.Equal(t, uint64(math.MaxUint64-1), x)
	assert.Equal(t, uint64(math.MaxUint64-2), y)

	x, y = Decode64(uint128.New(0, 1<<63))
	assert.Equal(t, uint64(1<<63), x)
	assert.Equal(t, uint64(1<<63), y)

	x, y = Decode64(uint128.Max)
	assert.Equal(t, uint64(math.MaxUint64), x)
	assert.Equal(t, uint64(0), y)
}

func TestDecodeGeneric(t *testing.T) {
	x8, y8, err := Decode[uint8](uint128.From64(43693))
	require.NoError(t, err)
	assert.Equal(t, uint8(254), x8)
	assert.Equal(t, uint8(253), y8)

	x32, y32, err := Decode[uint32](uint128.From64(286308167425))
	require.NoError(t, err)
	assert.Equal(t, uint32(123456), x32)
	assert.Equal(t, uint32(654321), y32)

	x64, y64, err := Decode[uint64](uint128.Max)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), x64)
	assert.Equal(t, uint64(0), y64)
}

func TestDecodeGenericRejectsWideIndex(t *testing.T) {
	tests := []struct {
		name string
		fn   func() error
	}{
		{"uint8", func() error { _, _, err := Decode[uint8](uint128.From64(1 << 16)); return err }},
		{"uint16", func() error { _, _, err := Decode[uint16](uint128.From64(1 << 32)); return err }},
		{"uint32", func() error { _, _, err := Decode[uint32](uint128.New(0, 1)); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.fn(), ErrIndexOverflow)
		})
	}

	// The largest index for each width is accepted.
	_, _, err := Decode[uint8](MaxIndex[uint8]())
	require.NoError(t, err)
	_, _, err = Decode[uint32](MaxIndex[uint32]())
	require.NoError(t, err)
}
