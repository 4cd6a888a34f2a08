package yamlpalette

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/contrastly/internal/colormath"
	"github.com/aalvaropc/contrastly/internal/domain"
	"github.com/aalvaropc/contrastly/internal/ports"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Loader reads palettes from the embedded built-ins and an optional
// workspace directory. Workspace files shadow built-ins of the same name.
type Loader struct {
	palettesDir string
}

type Option func(*Loader)

// WithPalettesDir sets the workspace palettes directory. Empty disables it.
func WithPalettesDir(dir string) Option {
	return func(l *Loader) { l.palettesDir = dir }
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.PaletteLoader = (*Loader)(nil)

// LoadPalette accepts a palette name ("tailwind", "brand") or a path to a
// YAML file.
func (l *Loader) LoadPalette(nameOrPath string) (domain.Palette, error) {
	ref := strings.TrimSpace(nameOrPath)
	if ref == "" {
		return domain.Palette{}, &domain.OpError{
			Op:   "yamlpalette.load",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("palette name is empty"),
		}
	}

	if looksLikePath(ref) {
		return loadFile(ref)
	}

	if p, ok := l.workspaceFile(ref); ok {
		return loadFile(p)
	}

	b, err := builtinFS.ReadFile("builtin/" + ref + ".yaml")
	if err != nil {
		return domain.Palette{}, &domain.OpError{
			Op:   "yamlpalette.load",
			Kind: domain.KindNotFound,
			Path: ref,
			Err:  fmt.Errorf("palette %q: %w", ref, domain.ErrNotFound),
		}
	}
	return decode("builtin:"+ref, b)
}

// ListPalettes returns built-ins first, then workspace palettes, each group
// sorted by name. A missing workspace directory is not an error.
func (l *Loader) ListPalettes() ([]domain.PaletteRef, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, &domain.OpError{Op: "yamlpalette.list", Kind: domain.KindExecution, Err: err}
	}

	var refs []domain.PaletteRef
	for _, e := range entries {
		refs = append(refs, domain.PaletteRef{
			Name:    strings.TrimSuffix(e.Name(), ".yaml"),
			Builtin: true,
		})
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })

	if l.palettesDir == "" {
		return refs, nil
	}

	dirEntries, err := os.ReadDir(l.palettesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return refs, nil
		}
		return nil, &domain.OpError{
			Op:   "yamlpalette.list",
			Kind: domain.KindExecution,
			Path: l.palettesDir,
			Err:  err,
		}
	}

	var local []domain.PaletteRef
	for _, e := range dirEntries {
		if e.IsDir() || !isYAML(e.Name()) {
			continue
		}

		p := filepath.Join(l.palettesDir, e.Name())
		n, _ := readPaletteName(p)
		if strings.TrimSpace(n) == "" {
			n = strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		}
		local = append(local, domain.PaletteRef{Name: n, Path: p})
	}
	sort.Slice(local, func(i, j int) bool { return local[i].Name < local[j].Name })

	return append(refs, local...), nil
}

func (l *Loader) workspaceFile(name string) (string, bool) {
	if l.palettesDir == "" {
		return "", false
	}
	for _, ext := range []string{".yaml", ".yml"} {
		p := filepath.Join(l.palettesDir, name+ext)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, true
		}
	}
	return "", false
}

func loadFile(path string) (domain.Palette, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Palette{}, &domain.OpError{
			Op:   "yamlpalette.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	return decode(path, b)
}

func decode(path string, b []byte) (domain.Palette, error) {
	var yp yamlPalette
	if err := yaml.Unmarshal(b, &yp); err != nil {
		return domain.Palette{}, &domain.OpError{
			Op:   "yamlpalette.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return mapAndValidate(path, yp)
}

func readPaletteName(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var v struct {
		Name string `yaml:"name"`
	}
	if err := yaml.Unmarshal(b, &v); err != nil {
		return "", err
	}
	return v.Name, nil
}

func looksLikePath(ref string) bool {
	return isYAML(ref) || strings.ContainsAny(ref, `/\`)
}

func isYAML(name string) bool {
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}

type yamlPalette struct {
	Name     string       `yaml:"name"`
	Families []yamlFamily `yaml:"families"`
}

type yamlFamily struct {
	Key    string      `yaml:"key"`
	Name   string      `yaml:"name"`
	Shades []yamlShade `yaml:"shades"`
}

type yamlShade struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

func mapAndValidate(path string, yp yamlPalette) (domain.Palette, error) {
	if strings.TrimSpace(yp.Name) == "" {
		return domain.Palette{}, invalidField(path, "name", "palette name is required")
	}
	if len(yp.Families) == 0 {
		return domain.Palette{}, invalidField(path, "families", "at least one family is required")
	}

	p := domain.Palette{
		Name:     yp.Name,
		Families: make([]domain.Family, 0, len(yp.Families)),
	}

	seen := map[string]bool{}
	for i, f := range yp.Families {
		fieldPrefix := fmt.Sprintf("families[%d]", i)

		key := strings.TrimSpace(f.Key)
		if key == "" {
			return domain.Palette{}, invalidField(path, fieldPrefix+".key", "family key is required")
		}
		if seen[key] {
			return domain.Palette{}, invalidField(path, fieldPrefix+".key", fmt.Sprintf("duplicate family %q", key))
		}
		seen[key] = true

		if len(f.Shades) == 0 {
			return domain.Palette{}, invalidField(path, fieldPrefix+".shades", "at least one shade is required")
		}

		name := strings.TrimSpace(f.Name)
		if name == "" {
			name = key
		}

		fam := domain.Family{Key: key, Name: name, Shades: make([]domain.Swatch, 0, len(f.Shades))}
		for j, s := range f.Shades {
			shadePrefix := fmt.Sprintf("%s.shades[%d]", fieldPrefix, j)

			label := strings.TrimSpace(s.Label)
			if label == "" {
				return domain.Palette{}, invalidField(path, shadePrefix+".label", "shade label is required")
			}

			c, ok := colormath.Parse(s.Value)
			if !ok {
				return domain.Palette{}, invalidField(path, shadePrefix+".value", fmt.Sprintf("unsupported color %q", s.Value))
			}

			fam.Shades = append(fam.Shades, domain.Swatch{
				Family: key,
				Label:  swatchLabel(key, label),
				Value:  s.Value,
				Color:  c,
			})
		}

		p.Families = append(p.Families, fam)
	}

	return p, nil
}

// swatchLabel prefixes numeric steps with the family key ("slate-500");
// named shades keep their own label.
func swatchLabel(family, label string) string {
	for _, r := range label {
		if r < '0' || r > '9' {
			return label
		}
	}
	return family + "-" + label
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamlpalette.validate",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s", field, msg),
	}
}
