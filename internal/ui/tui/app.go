package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/contrastly/internal/colormath"
	"github.com/aalvaropc/contrastly/internal/domain"
	"github.com/aalvaropc/contrastly/internal/usecase"
)

type screen int

const (
	screenMain screen = iota
	screenPalette
)

const (
	fieldFG = iota
	fieldBG
)

var fieldLabels = [2]string{"Foreground", "Background"}

type swatchItem struct {
	sw   domain.Swatch
	desc string
}

func (i swatchItem) Title() string       { return i.sw.Label }
func (i swatchItem) Description() string { return i.desc }
func (i swatchItem) FilterValue() string { return i.sw.Label }

type model struct {
	theme Theme
	deps  Deps
	log   *slog.Logger

	scr    screen
	inputs [2]textinput.Model
	active int

	colors    [2]domain.Color
	valid     [2]bool
	result    domain.ContrastResult
	hasResult bool

	fonts   []domain.Font
	fontIdx int

	palette       list.Model
	paletteLoaded bool

	statsLoading bool
	stats        domain.RepoStats
	statsErr     error

	saving bool
	toast  string
	rng    *rand.Rand

	width  int
	height int
}

// Run starts the interactive checker and blocks until it exits.
func Run(ctx context.Context, deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, m.log), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	rng := deps.Rand
	if rng == nil {
		rng = colormath.NewRand(uint64(time.Now().UnixNano()))
	}

	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	m := model{
		theme:        DefaultTheme(),
		deps:         deps,
		log:          log,
		scr:          screenMain,
		active:       fieldFG,
		fonts:        domain.Fonts(),
		fontIdx:      domain.FontIndex(deps.Config.Defaults.Font),
		palette:      l,
		statsLoading: deps.Stats != nil,
		rng:          rng,
	}

	initial := [2]string{deps.Config.Defaults.Foreground, deps.Config.Defaults.Background}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = "#rrggbb, rgb(r, g, b) or hsl(h, s%, l%)"
		ti.CharLimit = 32
		ti.Width = 28
		ti.SetValue(initial[i])
		m.inputs[i] = ti
	}
	m.inputs[m.active].Focus()

	m.recompute()
	return m
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, cmdFetchStats(m.deps))
}

// recompute re-parses both inputs. The result stays hidden until both parse.
func (m *model) recompute() {
	for i := range m.inputs {
		m.colors[i], m.valid[i] = colormath.Parse(m.inputs[i].Value())
	}
	m.hasResult = m.valid[fieldFG] && m.valid[fieldBG]
	if m.hasResult {
		m.result = colormath.ContrastOf(m.colors[fieldFG], m.colors[fieldBG])
	}
}

func (m *model) setInput(field int, value string) {
	m.inputs[field].SetValue(value)
	m.inputs[field].CursorEnd()
	m.recompute()
}

func (m *model) focus(field int) tea.Cmd {
	m.inputs[m.active].Blur()
	m.active = field
	return m.inputs[m.active].Focus()
}

func (m model) font() domain.Font {
	if m.fontIdx < 0 || m.fontIdx >= len(m.fonts) {
		return m.fonts[0]
	}
	return m.fonts[m.fontIdx]
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.palette.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case statsLoadedMsg:
		m.statsLoading = false
		m.stats, m.statsErr = msg.stats, msg.err
		if msg.err != nil {
			m.log.Warn("tui.stats.failed", "repo", m.deps.Config.Repo.Name, "err", msg.err.Error())
		}
		return m, nil

	case paletteLoadedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			m.log.Warn("tui.palette.failed", "palette", m.deps.Config.Defaults.Palette, "err", msg.err.Error())
			return m, nil
		}
		m.palette.Title = msg.palette.Name
		m.paletteLoaded = true
		m.toast = ""
		cmd := m.palette.SetItems(m.swatchItems(msg.palette.Swatches()))
		m.scr = screenPalette
		return m, cmd

	case reportSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			m.log.Error("tui.report.failed", "err", msg.err.Error())
			return m, nil
		}
		m.toast = "Saved report " + msg.id
		m.log.Info("tui.report.saved", "id", msg.id)
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = "Copied " + msg.value
		return m, nil

	case tea.KeyMsg:
		if m.scr == screenPalette {
			return m.updatePalette(msg)
		}
		return m.updateMain(msg)
	}

	if m.scr == screenPalette {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.inputs[m.active], cmd = m.inputs[m.active].Update(msg)
	return m, cmd
}

func (m model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.toast = ""
		return m, nil

	case "tab", "shift+tab":
		cmd := m.focus(1 - m.active)
		return m, cmd

	case "ctrl+r":
		fg, bg := colormath.RandomPair(m.rng)
		m.setInput(fieldFG, colormath.RGBToHex(fg))
		m.setInput(fieldBG, colormath.RGBToHex(bg))
		m.toast = ""
		m.log.Debug("tui.random", "fg", colormath.RGBToHex(fg), "bg", colormath.RGBToHex(bg))
		return m, nil

	case "ctrl+f":
		m.fontIdx = (m.fontIdx + 1) % len(m.fonts)
		return m, nil

	case "ctrl+p":
		if m.paletteLoaded {
			cmd := m.palette.SetItems(m.swatchItems(m.paletteSwatches()))
			m.scr = screenPalette
			return m, cmd
		}
		m.toast = "Loading palette…"
		return m, cmdLoadPalette(m.deps, m.deps.Config.Defaults.Palette)

	case "ctrl+s":
		return m.applySuggestion(), nil

	case "ctrl+y":
		if !m.valid[m.active] {
			m.toast = "Nothing to copy: " + strings.ToLower(fieldLabels[m.active]) + " is not a valid color"
			return m, nil
		}
		return m, cmdCopy(m.deps, colormath.RGBToHex(m.colors[m.active]))

	case "ctrl+w":
		switch {
		case m.deps.Store == nil:
			m.toast = "No workspace: run `contrastly init` to save reports"
			return m, nil
		case !m.hasResult:
			m.toast = "Enter two valid colors first"
			return m, nil
		case m.saving:
			return m, nil
		}
		m.saving = true
		m.toast = "Saving…"
		return m, cmdSaveReport(m.deps, usecase.CheckInput{
			Foreground: m.inputs[fieldFG].Value(),
			Background: m.inputs[fieldBG].Value(),
			Font:       m.font().Name,
		})
	}

	var cmd tea.Cmd
	m.inputs[m.active], cmd = m.inputs[m.active].Update(msg)
	m.recompute()
	return m, cmd
}

func (m model) updatePalette(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.palette.FilterState() != list.Filtering {
		switch msg.String() {
		case "esc":
			m.scr = screenMain
			return m, nil

		case "enter":
			it, ok := m.palette.SelectedItem().(swatchItem)
			if !ok {
				return m, nil
			}
			m.setInput(m.active, colormath.RGBToHex(it.sw.Color))
			m.scr = screenMain
			m.toast = fieldLabels[m.active] + " set to " + it.sw.Label
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.palette, cmd = m.palette.Update(msg)
	return m, cmd
}

func (m model) applySuggestion() model {
	if !m.hasResult {
		m.toast = "Enter two valid colors first"
		return m
	}

	gate := m.deps.Config.Defaults.Gate
	target := gate.MinRatio()
	if m.result.Passes(gate) {
		m.toast = "Already meets " + strings.ToUpper(string(gate))
		return m
	}

	c, ok := colormath.Suggest(m.colors[fieldFG], m.colors[fieldBG], target)
	hex := colormath.RGBToHex(c)
	m.setInput(fieldFG, hex)
	if ok {
		m.toast = fmt.Sprintf("Suggested %s (%s)", hex, ratioText(m.result.Ratio))
	} else {
		m.toast = fmt.Sprintf("Target %g:1 unreachable; using %s", target, hex)
	}
	return m
}

func (m model) paletteSwatches() []domain.Swatch {
	items := m.palette.Items()
	out := make([]domain.Swatch, 0, len(items))
	for _, it := range items {
		if si, ok := it.(swatchItem); ok {
			out = append(out, si.sw)
		}
	}
	return out
}

// swatchItems describes each swatch by its ratio against the other input.
func (m model) swatchItems(sws []domain.Swatch) []list.Item {
	other := 1 - m.active
	items := make([]list.Item, 0, len(sws))
	for _, sw := range sws {
		desc := colormath.RGBToHex(sw.Color)
		if m.valid[other] {
			r := colormath.ContrastOf(sw.Color, m.colors[other])
			desc += fmt.Sprintf("  %s  %s", ratioText(r.Ratio), r.Level())
		}
		items = append(items, swatchItem{sw: sw, desc: desc})
	}
	return items
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)

	if m.scr == screenPalette {
		help := m.theme.Help.Render("enter apply to " + strings.ToLower(fieldLabels[m.active]) + " • / filter • esc back")
		return wrap.Render(m.palette.View() + "\n" + help)
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("contrastly"))
	b.WriteString("  ")
	b.WriteString(m.theme.Subtitle.Render("WCAG 2.1 color contrast checker"))
	if m.deps.Debug {
		b.WriteString(m.theme.Subtitle.Render("  [debug]"))
	}
	b.WriteString("\n")
	if !m.deps.Workspaced {
		b.WriteString(m.theme.Subtitle.Render("No workspace: using defaults, saving disabled"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i := range m.inputs {
		label := m.theme.Label
		if i == m.active {
			label = m.theme.ActiveLabel
		}
		b.WriteString(label.Render(fieldLabels[i]))
		b.WriteString(m.inputs[i].View())
		if m.valid[i] {
			b.WriteString("  ")
			b.WriteString(swatchBlock(colormath.RGBToHex(m.colors[i])))
			b.WriteString(" ")
			b.WriteString(colormath.RGBToHex(m.colors[i]))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.hasResult {
		b.WriteString("Contrast ratio  ")
		b.WriteString(m.theme.Ratio.Render(ratioText(m.result.Ratio)))
		b.WriteString("  ")
		b.WriteString(renderBadge(m.theme, m.result.Level()))
		b.WriteString("\n\n")
		b.WriteString(renderGrid(m.theme, m.result))
		b.WriteString("\n")

		width := m.width - 10
		if width > 72 {
			width = 72
		}
		preview := renderPreview(colormath.RGBToHex(m.colors[fieldFG]), colormath.RGBToHex(m.colors[fieldBG]), m.font().Name, width)
		b.WriteString(m.theme.Card.Render(preview))
		b.WriteString("\n")
	} else {
		b.WriteString(m.theme.Subtitle.Render("No result yet: enter two valid colors"))
		b.WriteString("\n")
	}

	if m.deps.Stats != nil {
		b.WriteString("\n")
		b.WriteString(m.theme.Subtitle.Render(clampString(m.deps.Config.Repo.Name+"  "+statsLine(m.statsLoading, m.stats, m.statsErr), 80)))
		b.WriteString("\n")
	}

	if m.toast != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.Toast.Render(m.toast))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render("tab switch • ctrl+r random • ctrl+f font • ctrl+p palette • ctrl+s suggest • ctrl+y copy • ctrl+w save • ctrl+c quit"))

	return wrap.Render(b.String())
}
