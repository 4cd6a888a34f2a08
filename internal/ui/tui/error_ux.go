package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/contrastly/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// userMessage turns an error into a one-line toast.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {

		case domain.KindInvalidColor:
			return "Unrecognized color (use #rrggbb, rgb() or hsl())"

		case domain.KindNotFound:
			if strings.Contains(oe.Op, "palette") {
				return "Palette not found"
			}
			if strings.Contains(oe.Op, "workspacefinder.findroot") {
				return "Workspace not found"
			}
			if strings.HasPrefix(oe.Op, "stats") {
				return "Repository not found"
			}
			return "Not found"

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}

			line := extractLine(err.Error())
			if line != "" {
				return "Invalid YAML at " + base + " line " + line
			}

			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			if strings.HasPrefix(oe.Op, "yamlpalette") {
				return "Invalid palette " + base
			}
			return "Invalid config"

		case domain.KindExecution:
			if strings.HasPrefix(oe.Op, "stats") {
				return "Could not load repository stats"
			}
			if strings.HasPrefix(oe.Op, "reportstore") {
				return "Could not save report"
			}
			return "Unexpected error (see logs)"

		default:
			return "Unexpected error (see logs)"
		}
	}

	if looksLikeYAMLProblem(err.Error()) {
		line := extractLine(err.Error())
		if line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}
	if strings.Contains(strings.ToLower(err.Error()), "clipboard") {
		return "Clipboard unavailable"
	}

	return "Unexpected error (see logs)"
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
