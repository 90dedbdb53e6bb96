package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/rpnsort/internal/domain"
	"github.com/aalvaropc/rpnsort/internal/infra/config"
	"github.com/aalvaropc/rpnsort/internal/infra/linefile"
	"github.com/aalvaropc/rpnsort/internal/infra/logger"
	"github.com/aalvaropc/rpnsort/internal/infra/runstore"
	"github.com/aalvaropc/rpnsort/internal/ports"
	"github.com/aalvaropc/rpnsort/internal/usecase"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{locator: config.NewFinder()}
	var report bool

	cmd := &cobra.Command{
		Use:   "rpnsort <input> <output>",
		Short: "Evaluate postfix expressions and write them sorted, in infix form",
		Long: "rpnsort reads one postfix (RPN) expression per line from <input>, evaluates each,\n" +
			"and writes \"<infix> = <value>\" lines to <output> in ascending order of value.\n" +
			"Lines that cannot be evaluated are left out.",
		SilenceUsage: true,
		Args:         exactInputOutput,
		RunE: func(cmd *cobra.Command, args []string) error {
			job := domain.Job{InputPath: args[0], OutputPath: args[1]}

			s, err := loadSettings(cmd, g, job.InputPath)
			if err != nil {
				return err
			}
			if report {
				s.cfg.Report.Enabled = true
			}

			done := s.setupLogging()
			defer done()

			return runSort(cmd, s, job)
		},
	}

	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable verbose logging to the log dir (default .rpnsort/logs)")
	cmd.PersistentFlags().StringVar(&g.configPath, "config", "", "Config file (default: nearest rpnsort.yaml above the input file)")
	cmd.PersistentFlags().StringVar(&g.nonFinite, "non-finite", "drop", "Results that are +Inf, -Inf or NaN: drop|keep")
	cmd.Flags().BoolVar(&report, "report", false, "Save a JSON report of the run under the report dir (a failed save is logged, not fatal)")

	cmd.AddCommand(checkCmd(g), browseCmd(g), initCmd(), versionCmd())
	return cmd
}

func exactInputOutput(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		_ = cmd.Usage()
		return fmt.Errorf("expected 2 arguments (input and output file), got %d", len(args))
	}
	return nil
}

func runSort(cmd *cobra.Command, s *settings, job domain.Job) error {
	log := logger.L()

	var store ports.ArtifactStore
	if s.cfg.Report.Enabled {
		store = runstore.NewJSONStore(s.root, s.cfg.Report, runstore.WithIndex(true))
	}

	uc := usecase.NewSortExpressions(
		s.reader(),
		linefile.NewWriter(),
		store,
		s.solver(),
		usecase.WithLogger(log),
	)

	run, id, err := uc.Execute(cmd.Context(), job)
	if err != nil {
		log.Error("run.failed", "input", job.InputPath, "output", job.OutputPath, "error", err.Error())
		return err
	}

	log.Info("output.written", "path", job.OutputPath, "lines", run.Solved)
	switch {
	case id != "":
		fmt.Fprintf(cmd.ErrOrStderr(), "Report: %s\n", id)
	case store != nil:
		fmt.Fprintf(cmd.ErrOrStderr(), "Report: not saved (see %s)\n", logger.Path())
	}
	return nil
}
