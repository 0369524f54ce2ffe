package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ebenpack/rtiaw/pkg/renderer"
)

// ErrUnsupportedFormat is returned for output paths with an unknown extension
var ErrUnsupportedFormat = errors.New("output: unsupported image format")

// Writer encodes a frame to a stream
type Writer func(w io.Writer, frame *renderer.Frame) error

var writers = map[string]Writer{
	".ppm": WritePPM,
	".png": WritePNG,
}

// WriterFor picks the encoder for a path by its extension
func WriterFor(path string) (Writer, error) {
	ext := strings.ToLower(filepath.Ext(path))
	writer, ok := writers[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return writer, nil
}

// Save encodes the frame to path. The image is written to a temporary file
// next to path and renamed into place, so a failure never leaves a partial file.
func Save(path string, frame *renderer.Frame) error {
	writer, err := WriterFor(path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("output: creating directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("output: creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := writer(tmp, frame); err != nil {
		tmp.Close()
		return fmt.Errorf("output: encoding %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("output: closing temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("output: renaming into place: %w", err)
	}
	return nil
}
