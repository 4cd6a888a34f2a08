package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/contrastly/internal/domain"
)

// Preview samples shown in the chosen colors.
var previewSamples = []struct {
	Title string
	Text  string
	Bold  bool
}{
	{Title: "Normal Text (16px)", Text: "The quick brown fox jumps over the lazy dog. This is normal body text that should be easily readable."},
	{Title: "Large Text (24px)", Text: "Large heading text for better readability", Bold: true},
	{Title: "Small Text (14px)", Text: "Small text like captions, footnotes, or secondary information."},
}

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func ratioText(r float64) string {
	return fmt.Sprintf("%.2f:1", r)
}

func swatchBlock(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("      ")
}

func passFail(th Theme, ok bool) string {
	if ok {
		return th.Pass.Render("Pass")
	}
	return th.Fail.Render("Fail")
}

func renderGrid(th Theme, r domain.ContrastResult) string {
	rows := []struct {
		name string
		ok   bool
		min  float64
	}{
		{"AA Normal", r.AANormal, domain.MinRatioAANormal},
		{"AA Large", r.AALarge, domain.MinRatioAALarge},
		{"AAA Normal", r.AAANormal, domain.MinRatioAAANormal},
		{"AAA Large", r.AAALarge, domain.MinRatioAAALarge},
	}

	var b strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&b, "  %-11s %s  (needs %g:1)\n", row.name, passFail(th, row.ok), row.min)
	}
	return b.String()
}

func renderBadge(th Theme, lvl domain.Level) string {
	st, ok := th.Badge[lvl]
	if !ok {
		st = th.Badge[domain.LevelFail]
	}
	return st.Render(string(lvl))
}

// renderPreview draws the sample texts on the background color.
func renderPreview(fgHex, bgHex, font string, width int) string {
	if width < 20 {
		width = 20
	}
	base := lipgloss.NewStyle().
		Foreground(lipgloss.Color(fgHex)).
		Background(lipgloss.Color(bgHex)).
		Width(width).
		Padding(0, 1)

	var lines []string
	for _, s := range previewSamples {
		title := base.Faint(true).Render(s.Title)
		body := base
		if s.Bold {
			body = body.Bold(true)
		}
		lines = append(lines, title, body.Render(s.Text), base.Render(""))
	}
	lines = append(lines, base.Italic(true).Render("Font: "+font))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func statsLine(loading bool, stats domain.RepoStats, err error) string {
	switch {
	case loading:
		return "★ Loading…  ⑂ Loading…"
	case err != nil:
		return "★ Error  ⑂ Error"
	default:
		return fmt.Sprintf("★ %d  ⑂ %d  %s", stats.Stars, stats.Forks, stats.HTMLURL)
	}
}
