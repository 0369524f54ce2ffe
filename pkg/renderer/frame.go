package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/ebenpack/rtiaw/pkg/core"
)

// Frame is a resolved image, stored row-major with row 0 at the top.
// Channel values are gamma corrected and lie in [0, 1).
type Frame struct {
	Pixels [][]core.Vec3
}

// NewFrame allocates a black frame
func NewFrame(width, height int) *Frame {
	pixels := make([][]core.Vec3, height)
	for y := range pixels {
		pixels[y] = make([]core.Vec3, width)
	}
	return &Frame{Pixels: pixels}
}

// Width returns the frame width in pixels
func (f *Frame) Width() int {
	if len(f.Pixels) == 0 {
		return 0
	}
	return len(f.Pixels[0])
}

// Height returns the frame height in pixels
func (f *Frame) Height() int {
	return len(f.Pixels)
}

// At returns the pixel at column x of row y, counting rows from the top
func (f *Frame) At(x, y int) core.Vec3 {
	return f.Pixels[y][x]
}

// Set stores the pixel at column x of row y, counting rows from the top
func (f *Frame) Set(x, y int, c core.Vec3) {
	f.Pixels[y][x] = c
}

// ChannelToByte maps a [0, 1) channel onto 0..255 by rounding
func ChannelToByte(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// ToRGBA converts the frame into an opaque 8-bit image
func (f *Frame) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width(), f.Height()))
	for y, row := range f.Pixels {
		for x, c := range row {
			img.SetRGBA(x, y, color.RGBA{
				R: ChannelToByte(c.X),
				G: ChannelToByte(c.Y),
				B: ChannelToByte(c.Z),
				A: 255,
			})
		}
	}
	return img
}

// AverageLuminance returns the mean luminance over all pixels
func (f *Frame) AverageLuminance() float64 {
	total := 0.0
	count := 0
	for _, row := range f.Pixels {
		for _, c := range row {
			total += c.Luminance()
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}
