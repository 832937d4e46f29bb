package main

import (
	"github.com/spf13/cobra"

	"pkt.systems/mosaic"
)

// NewRootCommand builds the root CLI command.
func NewRootCommand(loader *mosaic.Loader) *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:           "mosaic",
		Short:         "Render images as coloured text",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if configFile != "" {
				loader.SetConfigFile(configFile)
			}
		},
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")

	cmd.AddCommand(NewDitherCommand(loader))
	cmd.AddCommand(NewOptionsCommand())
	cmd.AddCommand(NewBootstrapCommand())

	return cmd
}
