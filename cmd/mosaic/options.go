package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"pkt.systems/mosaic"
	"pkt.systems/prettyx"
)

type optionFamily struct {
	Name    string                `json:"name"`
	Flag    string                `json:"flag"`
	Options []mosaic.DitherOption `json:"options"`
}

func optionFamilies() []optionFamily {
	return []optionFamily{
		{Name: "antialias", Flag: "antialias", Options: mosaic.AntialiasOptions()},
		{Name: "colour mode", Flag: "color", Options: mosaic.ColorModeOptions()},
		{Name: "charset", Flag: "charset", Options: mosaic.CharsetOptions()},
		{Name: "algorithm", Flag: "algorithm", Options: mosaic.AlgorithmOptions()},
	}
}

// NewOptionsCommand builds the command listing the dither option keys.
func NewOptionsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "options",
		Short: "List dither options",
		RunE: func(cmd *cobra.Command, _ []string) error {
			families := optionFamilies()
			out := cmd.OutOrStdout()
			if asJSON {
				data, err := json.Marshal(families)
				if err != nil {
					return err
				}
				return prettyx.PrettyTo(out, data, prettyx.DefaultOptions)
			}
			for i, f := range families {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "%s (--%s):\n", f.Name, f.Flag)
				for _, o := range f.Options {
					fmt.Fprintf(out, "  %-10s %s\n", o.Key, o.Description)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print options as JSON")

	return cmd
}
