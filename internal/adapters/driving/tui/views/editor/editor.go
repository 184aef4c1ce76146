// Package editor provides the restoration view: an input pane, an output
// pane and a status bar.
package editor

import (
	"context"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/diacritice/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/diacritice/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/diacritice/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/diacritice/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/diacritice/internal/core/domain"
	"github.com/custodia-labs/diacritice/internal/core/ports/driving"
)

// Focus identifies the pane receiving key presses.
type Focus int

const (
	// FocusInput routes keys to the input textarea.
	FocusInput Focus = iota
	// FocusOutput routes keys to the output viewport for scrolling.
	FocusOutput
)

// Vertical space taken by the header, the status bar and pane borders.
const (
	headerHeight = 2
	chromeHeight = headerHeight + 1 + 2
	minPaneWidth = 20
	minPaneRows  = 3
)

// View is the restoration view.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     textarea.Model
	output    viewport.Model
	statusbar *status.Bar

	restoreService driving.RestoreService
	actionService  driving.ResultActionService
	ctx            context.Context

	result    *domain.EngineResult
	err       error
	focus     Focus
	restoring bool

	width  int
	height int
	ready  bool
}

// NewView creates a new editor view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	restoreService driving.RestoreService,
	actionService driving.ResultActionService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	ta := textarea.New()
	ta.Placeholder = "Scrieti textul fara diacritice aici..."
	ta.CharLimit = domain.DefaultMaxInputLength
	ta.MaxHeight = 0
	ta.ShowLineNumbers = false
	ta.Focus()

	v := &View{
		styles:         s,
		keymap:         km,
		input:          ta,
		output:         viewport.New(minPaneWidth, minPaneRows),
		statusbar:      status.NewBar(s, km),
		restoreService: restoreService,
		actionService:  actionService,
		ctx:            context.Background(),
		focus:          FocusInput,
	}
	v.SetDimensions(80, 24)
	return v
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages for the editor view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.RestoreCompleted:
		v.handleRestoreCompleted(msg)
		return v, nil

	case messages.Copied:
		v.handleCopied(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	return v.forward(msg)
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch keyStr := msg.String(); {
	case keymap.Matches(keyStr, v.keymap.Restore):
		if v.restoring {
			return v, nil
		}
		v.restoring = true
		v.err = nil
		v.statusbar.SetState(status.StateRestoring)
		v.statusbar.SetMessage("")
		return v, v.performRestore(v.input.Value())

	case keymap.Matches(keyStr, v.keymap.Copy):
		return v, v.performCopy()

	case keymap.Matches(keyStr, v.keymap.Clear):
		v.Reset()
		v.statusbar.SetMessage("Cleared")
		return v, nil

	case keymap.Matches(keyStr, v.keymap.SwitchFocus):
		v.toggleFocus()
		return v, nil
	}

	return v.forward(msg)
}

// forward passes msg to the focused pane.
func (v *View) forward(msg tea.Msg) (*View, tea.Cmd) {
	var cmd tea.Cmd
	if v.focus == FocusInput {
		v.input, cmd = v.input.Update(msg)
	} else {
		v.output, cmd = v.output.Update(msg)
	}
	return v, cmd
}

func (v *View) toggleFocus() {
	if v.focus == FocusInput {
		v.focus = FocusOutput
		v.input.Blur()
		return
	}
	v.focus = FocusInput
	v.input.Focus()
}

// performRestore runs the restoration off the UI loop.
func (v *View) performRestore(text string) tea.Cmd {
	svc := v.restoreService
	ctx := v.ctx
	return func() tea.Msg {
		if svc == nil {
			return messages.RestoreCompleted{Err: ErrNoRestoreService}
		}
		result, err := svc.Restore(ctx, text)
		return messages.RestoreCompleted{Result: result, Err: err}
	}
}

// performCopy copies the latest result off the UI loop.
func (v *View) performCopy() tea.Cmd {
	result := v.result
	svc := v.actionService
	ctx := v.ctx
	return func() tea.Msg {
		if result == nil {
			return messages.Copied{Err: ErrNothingToCopy}
		}
		if svc == nil {
			return messages.Copied{Err: ErrCopyUnavailable}
		}
		return messages.Copied{Err: svc.CopyToClipboard(ctx, result)}
	}
}

// handleRestoreCompleted shows the restored text or the failure.
func (v *View) handleRestoreCompleted(msg messages.RestoreCompleted) {
	v.restoring = false
	if msg.Err != nil {
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return
	}
	if msg.Result == nil {
		return
	}

	v.err = nil
	v.result = msg.Result
	v.output.SetContent(v.styles.HighlightDiacritics(msg.Result.Text))
	v.output.GotoTop()
	v.statusbar.SetState(status.StateDone)
	v.statusbar.SetMessage("")
	v.statusbar.SetResult(msg.Result.Engine.WireName(), utf8.RuneCountInString(msg.Result.Text))
}

func (v *View) handleCopied(msg messages.Copied) {
	if msg.Err != nil {
		v.statusbar.SetMessage("Copy: " + msg.Err.Error())
		return
	}
	v.statusbar.SetMessage("Copied to clipboard")
}

// View renders the editor view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		v.styles.Title.Render("diacritice"),
		v.styles.EngineBadge(v.externalEnabled()).Render(v.modeLabel()),
	)

	inputStyle, outputStyle := v.styles.Pane, v.styles.FocusedPane
	if v.focus == FocusInput {
		inputStyle, outputStyle = v.styles.FocusedPane, v.styles.Pane
	}
	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		inputStyle.Render(v.input.View()),
		outputStyle.Render(v.output.View()),
	)

	return lipgloss.JoinVertical(lipgloss.Left, header, "", panes, v.statusbar.View())
}

func (v *View) modeLabel() string {
	if v.restoreService == nil {
		return "unavailable"
	}
	if v.externalEnabled() {
		return "model: " + v.restoreService.ModelName()
	}
	return "heuristic only"
}

func (v *View) externalEnabled() bool {
	return v.restoreService != nil && v.restoreService.ExternalEnabled()
}

// SetDimensions sets the terminal dimensions and lays out both panes.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.statusbar.SetWidth(width)

	// Each pane has a one-cell border on both sides.
	paneWidth := max(width/2-2, minPaneWidth)
	paneRows := max(height-chromeHeight, minPaneRows)

	v.input.SetWidth(paneWidth)
	v.input.SetHeight(paneRows)
	v.output.Width = paneWidth
	v.output.Height = paneRows
}

// Width returns the view width.
func (v *View) Width() int {
	return v.width
}

// Height returns the view height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view has received its dimensions.
func (v *View) Ready() bool {
	return v.ready
}

// SetReady marks the view as sized.
func (v *View) SetReady() {
	v.ready = true
}

// Input returns the current input text.
func (v *View) Input() string {
	return v.input.Value()
}

// SetInput replaces the input text.
func (v *View) SetInput(text string) {
	v.input.SetValue(text)
}

// Result returns the latest restoration, or nil.
func (v *View) Result() *domain.EngineResult {
	return v.result
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// Focus returns the focused pane.
func (v *View) Focus() Focus {
	return v.focus
}

// Restoring reports whether a restoration is in flight.
func (v *View) Restoring() bool {
	return v.restoring
}

// StatusBar returns the status bar component.
func (v *View) StatusBar() *status.Bar {
	return v.statusbar
}

// Reset empties both panes and returns focus to the input.
func (v *View) Reset() {
	v.input.Reset()
	v.output.SetContent("")
	v.result = nil
	v.err = nil
	v.focus = FocusInput
	v.input.Focus()
	v.statusbar.Clear()
}
