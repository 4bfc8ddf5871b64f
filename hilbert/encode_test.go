package hilbert

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

func TestEncode8(t *testing.T) {
	type args struct {
		x, y uint8
	}
	tests := []struct {
		name string
		args args
		want uint16
	}{
		{"origin", args{0, 0}, 0},
		{"(1,0) is the second cell", args{1, 0}, 1},
		{"(1,1) is the third cell", args{1, 1}, 2},
		{"(0,1) is the fourth cell", args{0, 1}, 3},
		{"(1,2)", args{1, 2}, 7},
		{"(3,5)", args{3, 5}, 52},
		{"(0,255)", args{0, 255}, 21845},
		{"(255,255)", args{255, 255}, 43690},
		{"(254,253) near max", args{254, 253}, 43693},
		{"(255,0) is the last cell", args{255, 0}, math.MaxUint16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Encode8(tt.args.x, tt.args.y); got != tt.want {
				t.Errorf("Encode8() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEncode16(t *testing.T) {
	type args struct {
		x, y uint16
	}
	tests := []struct {
		name string
		args args
		want uint32
	}{
		{"origin", args{0, 0}, 0},
		{"(1,2)", args{1, 2}, 7},
		{"(255,0) last cell of the 8 bit square", args{255, 0}, 65535},
		{"(256,0) first cell after the 8 bit square", args{256, 0}, 65536},
		{"(1000,2000)", args{1000, 2000}, 3147584},
		{"(65535,0) is the last cell", args{math.MaxUint16, 0}, math.MaxUint32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Encode16(tt.args.x, tt.args.y); got != tt.want {
				t.Errorf("Encode16() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEncode32(t *testing.T) {
	type args struct {
		x, y uint32
	}
	tests := []struct {
		name string
		args args
		want uint64
	}{
		{"origin", args{0, 0}, 0},
		{"(1,2)", args{1, 2}, 7},
		{"(123456,654321)", args{123456, 654321}, 286308167425},
		{"type boundary", args{math.MaxUint32 - 1, math.MaxUint32 - 2}, 12297829382473034413},
		{"(MaxUint32,0) is the last cell", args{math.MaxUint32, 0}, math.MaxUint64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Encode32(tt.args.x, tt.args.y); got != tt.want {
				t.Errorf("Encode32() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEncode64(t *testing.T) {
	type args struct {
		x, y uint64
	}
	tests := []struct {
		name string
		args args
		want uint128.Uint128
	}{
		{"origin", args{0, 0}, uint128.Zero},
		{"(1,2)", args{1, 2}, uint128.From64(7)},
		{
			"32 bit boundary values stay in the low word",
			args{math.MaxUint32 - 1, math.MaxUint32 - 2},
			uint128.From64(12297829382473034413),
		},
		{
			"64 bit boundary values use the high word",
			args{math.MaxUint64 - 1, math.MaxUint64 - 2},
			uint128.New(0xaaaaaaaaaaaaaaad, 0xaaaaaaaaaaaaaaaa),
		},
		{
			"top bit of x",
			args{1 << 63, 1},
			uint128.New(0xaaaaaaaaaaaaaaa9, 0xeaaaaaaaaaaaaaaa),
		},
		{"(MaxUint64,0) is the last cell", args{math.MaxUint64, 0}, uint128.Max},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Encode64(tt.args.x, tt.args.y); !got.Equals(tt.want) {
				t.Errorf("Encode64() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestEncodeWidthStable checks that a pair encodes to the same index whatever
// coordinate type carries it.
func TestEncodeWidthStable(t *testing.T) {
	for x := range 256 {
		for y := range 256 {
			h8 := uint64(Encode8(uint8(x), uint8(y)))
			require.Equal(t, h8, uint64(Encode16(uint16(x), uint16(y))))
			require.Equal(t, h8, Encode32(uint32(x), uint32(y)))
			require.True(t, Encode64(uint64(x), uint64(y)).Equals64(h8))
		}
	}
}

func TestEncodeGenericMatchesFixedWidth(t *testing.T) {
	assert.True(t, Encode[uint8](254, 253).Equals64(uint64(Encode8(254, 253))))
	assert.True(t, Encode[uint16](1000, 2000).Equals64(uint64(Encode16(1000, 2000))))
	assert.True(t, Encode[uint32](123456, 654321).Equals64(Encode32(123456, 654321)))
	assert.True(t, Encode[uint64](math.MaxUint64-1, math.MaxUint64-2).Equals(
		Encode64(math.MaxUint64-1, math.MaxUint64-2)))
}

type cell uint16

func TestEncodeNamedType(t *testing.T) {
	require.True(t, Encode[cell](256, 0).Equals64(65536))
}
