package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/rpnsort/internal/infra/logger"
	"github.com/aalvaropc/rpnsort/internal/ui/tui"
	"github.com/aalvaropc/rpnsort/internal/usecase"
)

func browseCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "browse <input>",
		Short: "Browse sorted results and failures interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd, g, args[0])
			if err != nil {
				return err
			}
			done := s.setupLogging()
			defer done()

			return tui.Run(tui.Deps{
				Check:     usecase.NewCheckExpressions(s.reader(), s.solver()),
				InputPath: args[0],
				Logger:    logger.L(),
				Debug:     s.cfg.Log.Debug,
				LogPath:   logger.Path(),
			})
		},
	}
}
