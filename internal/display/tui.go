package display

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// outputMsg carries the lines produced by one command.
type outputMsg struct {
	lines []string
	quit  bool
}

// TUIModel is the Bubble Tea model for a play session: a scrolling log above
// an input pane.
type TUIModel struct {
	ctx  context.Context
	ctrl *Controller

	// UI components
	logViewport viewport.Model
	actionInput textinput.Model

	// State
	gameLog     []string
	busy        bool
	quitting    bool
	focusedPane int // 0 = log, 1 = input

	styles *Styles

	// Dimensions
	width  int
	height int
}

// NewTUIModel creates a model driving ctrl. The session must already be
// started.
func NewTUIModel(ctx context.Context, ctrl *Controller, intro []string) *TUIModel {
	vp := viewport.New(100, 25)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "Enter your action (call, raise 6, fold, check, hint)"
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 100
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.Prompt = "> "

	m := &TUIModel{
		ctx:         ctx,
		ctrl:        ctrl,
		logViewport: vp,
		actionInput: ti,
		styles:      ctrl.styles,
		focusedPane: 1,
	}
	for _, line := range intro {
		m.AddLogEntry(line)
	}
	return m
}

// Init initializes the TUI model
func (m *TUIModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the TUI
func (m *TUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateDimensions()

	case outputMsg:
		m.busy = false
		for _, line := range msg.lines {
			m.AddLogEntry(line)
		}
		if msg.quit {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			if m.focusedPane == 0 {
				m.focusedPane = 1
				m.actionInput.Focus()
			} else {
				m.focusedPane = 0
				m.actionInput.Blur()
			}
		case "enter":
			if m.focusedPane == 1 && !m.busy {
				input := strings.TrimSpace(m.actionInput.Value())
				m.actionInput.SetValue("")
				if input != "" {
					m.AddLogEntry(m.styles.Help.Render("> " + input))
				}
				cmds = append(cmds, m.submit(input))
			}
		case "up", "k":
			if m.focusedPane == 0 {
				m.logViewport.ScrollUp(1)
			}
		case "down", "j":
			if m.focusedPane == 0 {
				m.logViewport.ScrollDown(1)
			}
		case "pgup":
			if m.focusedPane == 0 {
				m.logViewport.HalfPageUp()
			}
		case "pgdown":
			if m.focusedPane == 0 {
				m.logViewport.HalfPageDown()
			}
		case "home":
			if m.focusedPane == 0 {
				m.logViewport.GotoTop()
			}
		case "end":
			if m.focusedPane == 0 {
				m.logViewport.GotoBottom()
			}
		}
	}

	var cmd tea.Cmd
	if m.focusedPane == 1 {
		m.actionInput, cmd = m.actionInput.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit parses input and runs it off the update loop; equity hints can take
// a moment.
func (m *TUIModel) submit(input string) tea.Cmd {
	cmd, err := ParseCommand(input)
	if err != nil {
		m.AddLogEntry(m.styles.Error.Render(err.Error()))
		return nil
	}
	if cmd.Kind == CmdQuit {
		m.quitting = true
		return tea.Quit
	}
	m.busy = true
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		lines := ctrl.Execute(ctx, cmd)
		return outputMsg{lines: lines, quit: ctrl.Done()}
	}
}

// View renders the TUI
func (m *TUIModel) View() string {
	if m.quitting {
		return ""
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderLogPane(),
		m.renderActionPane(),
	)
}

func (m *TUIModel) renderLogPane() string {
	style := m.styles.LogPane.Width(m.width - 4)
	if m.focusedPane == 0 {
		style = style.BorderForeground(lipgloss.Color("#04B575"))
	}
	return style.Render(m.logViewport.View())
}

func (m *TUIModel) renderActionPane() string {
	var content strings.Builder

	complete := m.ctrl.Complete()
	if complete {
		content.WriteString(m.styles.HandInfo.Render("Hand complete"))
		m.actionInput.Placeholder = "Enter for the next hand, 'stats', 'history' or 'quit'"
	} else {
		content.WriteString(m.ctrl.Status())
		m.actionInput.Placeholder = "Enter your action (call, raise 6, fold, check, hint)"
	}
	content.WriteString("\n")

	content.WriteString(m.actionInput.View())
	content.WriteString("\n")

	switch {
	case m.busy:
		content.WriteString(m.styles.Help.Render("Thinking..."))
	case m.focusedPane == 0:
		content.WriteString(m.styles.Help.Render("Log focused: ↑↓ scroll, PgUp/PgDn half page, Home/End, Tab to input"))
	default:
		content.WriteString(m.styles.Help.Render("Tab to scroll log • Enter to submit • 'help' for commands • Ctrl+C to quit"))
	}

	style := m.styles.ActionPane.Width(m.width - 4)
	if m.focusedPane == 1 {
		style = style.BorderForeground(lipgloss.Color("#04B575"))
	}
	return style.Render(content.String())
}

// updateDimensions fits the viewport and input to the terminal.
func (m *TUIModel) updateDimensions() {
	if m.height <= 0 || m.width <= 0 {
		return
	}

	// status, input and help lines plus border and padding
	actionPaneHeight := 7

	logHeight := m.height - actionPaneHeight - 1
	if logHeight < 3 {
		logHeight = 3
	}

	m.logViewport.Width = m.width - 4
	m.logViewport.Height = logHeight - 4
	m.actionInput.Width = m.width - 8
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	m.logViewport.GotoBottom()
}

// AddLogEntry appends a line to the log and scrolls to the bottom.
func (m *TUIModel) AddLogEntry(entry string) {
	m.gameLog = append(m.gameLog, entry)
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// Log returns the lines written so far.
func (m *TUIModel) Log() []string {
	return append([]string(nil), m.gameLog...)
}
