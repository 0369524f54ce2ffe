package cmd

import (
	"bytes"
	"fmt"

	"github.com/ebenpack/rtiaw/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// ListScenes prints the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)
	_, err := fmt.Fprint(ctx.App.Writer, sceneTable())
	return err
}

func sceneTable() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"Scene", "Description"})
	for _, preset := range scene.Presets() {
		table.Append([]string{preset.Name, preset.Description})
	}
	table.Render()
	return buf.String()
}
