package output

import (
	"image/png"
	"io"

	"github.com/ebenpack/rtiaw/pkg/renderer"
)

// WritePNG encodes the frame as an 8-bit RGBA PNG
func WritePNG(w io.Writer, frame *renderer.Frame) error {
	return png.Encode(w, frame.ToRGBA())
}
