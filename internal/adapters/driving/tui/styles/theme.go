// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// diacritics are the letters a restoration can introduce.
const diacritics = "ăâîșțĂÂÎȘȚ"

// Theme is the colour palette of the editor.
type Theme struct {
	// Primary marks focus and titles.
	Primary lipgloss.Color

	// Accent highlights restored diacritics.
	Accent lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for hints and labels.
	Muted lipgloss.Color

	// Success marks a finished restoration.
	Success lipgloss.Color

	// Warning marks the rule-based fallback.
	Warning lipgloss.Color

	// Error marks failures.
	Error lipgloss.Color

	// Border outlines unfocused panes.
	Border lipgloss.Color

	// Bar is the status bar background.
	Bar lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#2563EB"), // Blue
		Accent:     lipgloss.Color("#FACC15"), // Yellow
		Foreground: lipgloss.Color("#CDD6F4"),
		Muted:      lipgloss.Color("#6C7086"),
		Success:    lipgloss.Color("#A6E3A1"),
		Warning:    lipgloss.Color("#FAB387"),
		Error:      lipgloss.Color("#F38BA8"),
		Border:     lipgloss.Color("#45475A"),
		Bar:        lipgloss.Color("#181825"),
	}
}

// Styles contains the lipgloss styles used by the editor.
type Styles struct {
	theme *Theme

	Title     lipgloss.Style
	Normal    lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Help      lipgloss.Style
	StatusBar lipgloss.Style

	// Pane outlines an editor pane; FocusedPane the one receiving keys.
	Pane        lipgloss.Style
	FocusedPane lipgloss.Style

	// ModelBadge and HeuristicBadge label the engine in the header.
	ModelBadge     lipgloss.Style
	HeuristicBadge lipgloss.Style

	// Diacritic highlights restored letters in the output pane.
	Diacritic lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	pane := lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder())

	return &Styles{
		theme: theme,

		Title:   lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		Normal:  lipgloss.NewStyle().Foreground(theme.Foreground),
		Muted:   lipgloss.NewStyle().Foreground(theme.Muted),
		Error:   lipgloss.NewStyle().Foreground(theme.Error),
		Success: lipgloss.NewStyle().Foreground(theme.Success),
		Help:    lipgloss.NewStyle().Foreground(theme.Muted),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.Bar).
			Padding(0, 1),

		Pane:        pane.BorderForeground(theme.Border),
		FocusedPane: pane.BorderForeground(theme.Primary),

		ModelBadge: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Padding(0, 1),
		HeuristicBadge: lipgloss.NewStyle().
			Foreground(theme.Warning).
			Padding(0, 1),

		Diacritic: lipgloss.NewStyle().Bold(true).Foreground(theme.Accent),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// EngineBadge returns the header badge style for the active engine.
func (s *Styles) EngineBadge(external bool) lipgloss.Style {
	if external {
		return s.ModelBadge
	}
	return s.HeuristicBadge
}

// HighlightDiacritics renders runs of Romanian diacritics in text with the
// Diacritic style. Other text is returned as is.
func (s *Styles) HighlightDiacritics(text string) string {
	var (
		out strings.Builder
		run strings.Builder
	)
	flush := func() {
		if run.Len() > 0 {
			out.WriteString(s.Diacritic.Render(run.String()))
			run.Reset()
		}
	}

	for _, r := range text {
		if strings.ContainsRune(diacritics, r) {
			run.WriteRune(r)
			continue
		}
		flush()
		out.WriteRune(r)
	}
	flush()

	return out.String()
}
