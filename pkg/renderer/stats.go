package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int
	Height          int
	SamplesPerPixel int
	TotalPixels     int // Total number of pixels rendered
	TotalSamples    int // Total number of camera rays traced
	FailedPixels    int // Pixels replaced by FailedPixelColor
	Workers         int
	Duration        time.Duration

	AverageLuminance float64 // Mean luminance of the resolved frame
}

// SamplesPerSecond returns the camera ray throughput
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}

// Table builds a tabular summary of the render and the host it ran on
func (s RenderStats) Table(host HostInfo) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"Stat", "Value"})
	table.Append([]string{"Resolution", fmt.Sprintf("%dx%d", s.Width, s.Height)})
	table.Append([]string{"Samples/pixel", fmt.Sprintf("%d", s.SamplesPerPixel)})
	table.Append([]string{"Total samples", fmt.Sprintf("%d", s.TotalSamples)})
	table.Append([]string{"Workers", fmt.Sprintf("%d", s.Workers)})
	table.Append([]string{"Failed pixels", fmt.Sprintf("%d", s.FailedPixels)})
	table.Append([]string{"Samples/sec", fmt.Sprintf("%.0f", s.SamplesPerSecond())})
	table.Append([]string{"Avg luminance", fmt.Sprintf("%.3f", s.AverageLuminance)})
	if host.CPUModel != "" {
		table.Append([]string{"CPU", fmt.Sprintf("%s (%d logical cores)", host.CPUModel, host.LogicalCores)})
	}
	if host.TotalMemory > 0 {
		table.Append([]string{"Memory", fmt.Sprintf("%.1f GB", float64(host.TotalMemory)/(1<<30))})
	}
	table.SetFooter([]string{"Render time", s.Duration.Round(time.Millisecond).String()})

	table.Render()
	return buf.String()
}
