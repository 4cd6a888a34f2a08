package domain

// Config represents the contrastly configuration loaded from contrastly.yaml.
type Config struct {
	Defaults DefaultsConfig
	Paths    PathsConfig
	Repo     RepoConfig
}

type DefaultsConfig struct {
	Foreground string
	Background string
	Font       string
	Palette    string
	Gate       Gate
}

type PathsConfig struct {
	PalettesDir string
	ReportsDir  string
}

// RepoConfig points at the repository whose stats are shown in the footer.
type RepoConfig struct {
	Name       string
	APIBaseURL string
}

// DefaultConfig provides sane defaults if contrastly.yaml is partially missing
// or there is no workspace at all.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Foreground: "#1a202c",
			Background: "#ffffff",
			Font:       "Inter",
			Palette:    "tailwind",
			Gate:       GateAA,
		},
		Paths: PathsConfig{
			PalettesDir: "palettes",
			ReportsDir:  "reports",
		},
		Repo: RepoConfig{
			Name:       "swayamDev/contrast-checker",
			APIBaseURL: "https://api.github.com",
		},
	}
}
