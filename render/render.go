package render

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/forestrie/go-hilbert/hilbert"
)

// MaxOrder is the largest curve order that can be drawn. A curve of order n
// has 4^n cells.
const MaxOrder = 8

var (
	ErrBadOrder = errors.New("render: order must be between 1 and 8")
	ErrBadSize  = errors.New("render: image too small for the curve order")
)

type Options struct {
	// Order is the number of subdivisions; the grid is 2^Order cells square.
	Order uint
	// Size is the width and height of the image in pixels.
	Size int
	// Border is the margin left around the curve in pixels.
	Border int

	Stroke     color.Color
	Background color.Color
}

func DefaultOptions() Options {
	return Options{
		Order:      5,
		Size:       256,
		Border:     2,
		Stroke:     color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Background: color.RGBA{A: 0xff},
	}
}

// Points returns the cells of a 2^order square grid in curve order.
func Points(order uint) ([]image.Point, error) {
	if order == 0 || order > MaxOrder {
		return nil, ErrBadOrder
	}
	n := 1 << (2 * order)
	points := make([]image.Point, n)
	for i := range n {
		x, y := hilbert.Decode8(uint16(i))
		points[i] = image.Pt(int(x), int(y))
	}
	return points, nil
}

// Step returns the distance in pixels between the centres of adjacent cells
// for the given options.
func Step(opts Options) (int, error) {
	if opts.Order == 0 || opts.Order > MaxOrder {
		return 0, ErrBadOrder
	}
	cells := 1 << opts.Order
	step := (opts.Size - 2*opts.Border) / (cells - 1)
	if step < 1 || opts.Border < 0 {
		return 0, ErrBadSize
	}
	return step, nil
}

// Draw renders the curve by joining the centres of consecutive cells.
func Draw(opts Options) (*image.RGBA, error) {
	step, err := Step(opts)
	if err != nil {
		return nil, err
	}
	points, err := Points(opts.Order)
	if err != nil {
		return nil, err
	}

	defaults := DefaultOptions()
	if opts.Stroke == nil {
		opts.Stroke = defaults.Stroke
	}
	if opts.Background == nil {
		opts.Background = defaults.Background
	}

	img := image.NewRGBA(image.Rect(0, 0, opts.Size, opts.Size))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	stroke := image.NewUniform(opts.Stroke)
	scale := func(p image.Point) image.Point {
		return p.Mul(step).Add(image.Pt(opts.Border, opts.Border))
	}
	prev := scale(points[0])
	for _, p := range points[1:] {
		next := scale(p)
		// Consecutive cells are always horizontal or vertical neighbours, so
		// each segment is a one pixel wide rectangle.
		seg := image.Rectangle{Min: prev, Max: next}.Canon()
		seg.Max = seg.Max.Add(image.Pt(1, 1))
		draw.Draw(img, seg, stroke, image.Point{}, draw.Src)
		prev = next
	}
	return img, nil
}

func WritePNG(w io.Writer, opts Options) error {
	img, err := Draw(opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
