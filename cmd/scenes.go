package cmd

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/whitted-dev/go-raytracer/pkg/scenes"
)

// ListScenes prints the built-in scenes as a table.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Name", "Description"})
	for _, s := range scenes.All() {
		table.Append([]string{s.Name, s.Description})
	}
	table.Render()
	return nil
}
