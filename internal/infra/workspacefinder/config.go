package workspacefinder

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/contrastly/internal/colormath"
	"github.com/aalvaropc/contrastly/internal/domain"
)

// ConfigFile is the file that marks a workspace root.
const ConfigFile = "contrastly.yaml"

// LoadConfig loads contrastly.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFile)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	d := y.Contrastly.Defaults
	if d.Foreground != "" {
		cfg.Defaults.Foreground = d.Foreground
	}
	if d.Background != "" {
		cfg.Defaults.Background = d.Background
	}
	if d.Font != "" {
		cfg.Defaults.Font = d.Font
	}
	if d.Palette != "" {
		cfg.Defaults.Palette = d.Palette
	}
	if d.Gate != "" {
		g, ok := domain.ParseGate(d.Gate)
		if !ok {
			return cfg, invalidField(path, "contrastly.defaults.gate", d.Gate)
		}
		cfg.Defaults.Gate = g
	}

	if y.Contrastly.Paths.PalettesDir != "" {
		cfg.Paths.PalettesDir = y.Contrastly.Paths.PalettesDir
	}
	if y.Contrastly.Paths.ReportsDir != "" {
		cfg.Paths.ReportsDir = y.Contrastly.Paths.ReportsDir
	}
	if y.Contrastly.Repo.Name != "" {
		cfg.Repo.Name = y.Contrastly.Repo.Name
	}
	if y.Contrastly.Repo.APIBaseURL != "" {
		cfg.Repo.APIBaseURL = y.Contrastly.Repo.APIBaseURL
	}

	// Defaults end up in text inputs, so they must be colors the parser accepts.
	if _, ok := colormath.Parse(cfg.Defaults.Foreground); !ok {
		return cfg, invalidField(path, "contrastly.defaults.foreground", cfg.Defaults.Foreground)
	}
	if _, ok := colormath.Parse(cfg.Defaults.Background); !ok {
		return cfg, invalidField(path, "contrastly.defaults.background", cfg.Defaults.Background)
	}
	if _, ok := domain.FontByName(cfg.Defaults.Font); !ok {
		return cfg, invalidField(path, "contrastly.defaults.font", cfg.Defaults.Font)
	}

	return cfg, nil
}

func invalidField(path, field, value string) error {
	return &domain.OpError{
		Op:   "workspacefinder.loadconfig",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("%s: unsupported value %q", field, value),
	}
}

type yamlConfig struct {
	Contrastly struct {
		Defaults struct {
			Foreground string `yaml:"foreground"`
			Background string `yaml:"background"`
			Font       string `yaml:"font"`
			Palette    string `yaml:"palette"`
			Gate       string `yaml:"gate"`
		} `yaml:"defaults"`

		Paths struct {
			PalettesDir string `yaml:"palettes_dir"`
			ReportsDir  string `yaml:"reports_dir"`
		} `yaml:"paths"`

		Repo struct {
			Name       string `yaml:"name"`
			APIBaseURL string `yaml:"api_base_url"`
		} `yaml:"repo"`
	} `yaml:"contrastly"`
}
