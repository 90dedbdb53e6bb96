package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/rpnsort/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// UserMessage turns an error into a short, user-facing sentence.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var ee *domain.ExprError
	if errors.As(err, &ee) {
		switch ee.Kind {
		case domain.KindInvalidOperand:
			msg := fmt.Sprintf("Not a number: %q", ee.Token)
			if ee.Column > 0 {
				msg += fmt.Sprintf(" (column %d)", ee.Column)
			}
			if ee.Msg != "" && ee.Msg != "not a number" {
				msg += ", " + ee.Msg
			}
			return msg

		case domain.KindMalformedExpression:
			if ee.Token != "" {
				return fmt.Sprintf("Missing operand for %q (column %d)", ee.Token, ee.Column)
			}
			if ee.Msg != "" {
				return "Malformed expression: " + ee.Msg
			}
			return "Malformed expression"

		case domain.KindNonFinite:
			return "Result is not finite: " + ee.Msg
		}
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindNotFound:
			if strings.TrimSpace(oe.Path) != "" {
				return "File not found: " + filepath.Base(oe.Path)
			}
			return "Not found"

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}
			if line := extractLine(err.Error()); line != "" {
				return fmt.Sprintf("Invalid %s (line %s)", base, line)
			}
			return "Invalid " + base

		case domain.KindExecution:
			if strings.TrimSpace(oe.Path) != "" {
				return execVerb(oe.Op) + " " + filepath.Base(oe.Path)
			}
		}
	}

	return "Unexpected error (see logs)"
}

func execVerb(op string) string {
	switch op {
	case "linefile.open", "linefile.read":
		return "Cannot read"
	default:
		return "Cannot write"
	}
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
