package renderer

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroDimensions is returned when the image width or height is not positive
	ErrZeroDimensions = errors.New("renderer: image dimensions must be positive")
	// ErrInvalidSamples is returned when fewer than one sample per pixel is requested
	ErrInvalidSamples = errors.New("renderer: samples per pixel must be positive")
	// ErrInvalidBounces is returned for a negative bounce budget
	ErrInvalidBounces = errors.New("renderer: max bounces must not be negative")
	// ErrNilScene is returned when rendering without a scene
	ErrNilScene = errors.New("renderer: nil scene")
	// ErrNilCamera is returned when rendering without a camera
	ErrNilCamera = errors.New("renderer: nil camera")
	// ErrIncompleteRender is returned when the result stream ends before every pixel arrived
	ErrIncompleteRender = errors.New("renderer: result stream closed before all pixels were collected")
)

// Config contains rendering configuration
type Config struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of rays per pixel
	MaxBounces      int   // Maximum ray bounce depth
	NumWorkers      int   // Worker goroutines, 0 = one per logical core
	Seed            int64 // Base seed for all per-pixel randomness
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           300,
		Height:          200,
		SamplesPerPixel: 100,
		MaxBounces:      50,
		NumWorkers:      0,
		Seed:            42,
	}
}

// Validate reports the first configuration problem, if any
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrZeroDimensions, c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSamples, c.SamplesPerPixel)
	}
	if c.MaxBounces < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidBounces, c.MaxBounces)
	}
	return nil
}

// workerCount resolves NumWorkers, never exceeding the number of pixels
func (c Config) workerCount() int {
	n := c.NumWorkers
	if n <= 0 {
		n = DefaultWorkerCount()
	}
	return max(1, min(n, c.Width*c.Height))
}
