package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-cubes/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in cubes.yaml.

Save it to ~/.cubes/configs/cubes.yaml or ./configs/cubes.yaml and edit it,
or pass any path to 'cubes play --config'.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
