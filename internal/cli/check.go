package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/rpnsort/internal/domain"
	"github.com/aalvaropc/rpnsort/internal/ui/tui"
	"github.com/aalvaropc/rpnsort/internal/usecase"
)

func checkCmd(g *globalFlags) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "check <input>",
		Short: "Evaluate every line and report failures (writes no output file)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd, g, args[0])
			if err != nil {
				return err
			}
			done := s.setupLogging()
			defer done()

			uc := usecase.NewCheckExpressions(s.reader(), s.solver())
			batch, err := uc.Execute(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if err := printCheck(cmd.OutOrStdout(), batch, format); err != nil {
				return err
			}

			if n := usecase.CountFailed(batch); n > 0 {
				return fmt.Errorf("check failed (%d invalid line(s))", n)
			}
			return nil
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

type checkLine struct {
	Line      int    `json:"line"`
	Source    string `json:"source"`
	OK        bool   `json:"ok"`
	Infix     string `json:"infix,omitempty"`
	Value     string `json:"value,omitempty"`
	ErrorKind string `json:"error_kind,omitempty"`
	Error     string `json:"error,omitempty"`
}

func toCheckLines(batch []domain.Expression) []checkLine {
	out := make([]checkLine, 0, len(batch))
	for _, e := range batch {
		cl := checkLine{Line: e.Line, Source: strings.TrimSpace(e.Source)}
		if r, ok := e.Result(); ok {
			cl.OK = true
			cl.Infix = usecase.StripOuter(r)
			cl.Value = usecase.FormatValue(r.Value)
		} else {
			cl.ErrorKind = string(domain.KindOf(e.Err))
			cl.Error = tui.UserMessage(e.Err)
		}
		out = append(out, cl)
	}
	return out
}

func printCheck(w io.Writer, batch []domain.Expression, format string) error {
	lines := toCheckLines(batch)

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"total":  len(batch),
			"failed": usecase.CountFailed(batch),
			"lines":  lines,
		})
	case "pretty", "":
		printPrettyCheck(w, lines)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyCheck(w io.Writer, lines []checkLine) {
	t := tui.DefaultTheme()

	ok := 0
	for _, l := range lines {
		if l.OK {
			ok++
			fmt.Fprintf(w, "%s line %d: %s = %s\n", t.OK.Render("[OK]  "), l.Line, l.Infix, l.Value)
			continue
		}
		fmt.Fprintf(w, "%s line %d: %s\n", t.Fail.Render("[FAIL]"), l.Line, l.Source)
		fmt.Fprintf(w, "       %s\n", l.Error)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%d ok / %d failed\n", ok, len(lines)-ok)
}
