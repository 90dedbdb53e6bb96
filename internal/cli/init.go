package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/rpnsort/internal/infra/scaffold"
	"github.com/aalvaropc/rpnsort/internal/usecase"
)

func initCmd() *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a starter rpnsort.yaml (default: current directory)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			path, err := usecase.NewInitConfig(scaffold.NewInitializer()).Execute(dir, force)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config: %s\n", path)
			return nil
		},
	}

	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing rpnsort.yaml")
	return c
}
