package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ebenpack/rtiaw/pkg/renderer"
)

// WritePPM writes the frame as a plain-text P3 image: a three line header,
// then one line per row, top to bottom, of space separated "R G B" triples
func WritePPM(w io.Writer, frame *renderer.Frame) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", frame.Width(), frame.Height()); err != nil {
		return err
	}

	for _, row := range frame.Pixels {
		for x, c := range row {
			if x > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			_, err := fmt.Fprintf(bw, "%d %d %d",
				renderer.ChannelToByte(c.X),
				renderer.ChannelToByte(c.Y),
				renderer.ChannelToByte(c.Z))
			if err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
