package template

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aalvaropc/contrastly/internal/domain"
)

// RenderString replaces {{VAR}} placeholders with vars values.
// It returns an error if a variable is missing or a placeholder is malformed.
func RenderString(input string, vars map[string]string) (string, error) {
	if input == "" {
		return "", nil
	}

	var out strings.Builder
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", renderErr(errors.New("unclosed template expression"))
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", renderErr(errors.New("empty template expression"))
		}

		value, ok := vars[key]
		if !ok {
			return "", renderErr(fmt.Errorf("missing variable %q", key))
		}

		out.WriteString(value)
		rest = rest[end+2:]
	}
}

// ConfigVars exposes a configuration as template variables.
func ConfigVars(cfg domain.Config) map[string]string {
	return map[string]string{
		"FOREGROUND":   cfg.Defaults.Foreground,
		"BACKGROUND":   cfg.Defaults.Background,
		"FONT":         cfg.Defaults.Font,
		"PALETTE":      cfg.Defaults.Palette,
		"GATE":         string(cfg.Defaults.Gate),
		"PALETTES_DIR": cfg.Paths.PalettesDir,
		"REPORTS_DIR":  cfg.Paths.ReportsDir,
		"REPO":         cfg.Repo.Name,
		"API_BASE_URL": cfg.Repo.APIBaseURL,
	}
}

func renderErr(err error) error {
	return &domain.OpError{Op: "template.render", Kind: domain.KindInvalidConfig, Err: err}
}
