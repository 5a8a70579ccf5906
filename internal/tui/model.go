package tui

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/tcpjson/internal/config"
	"github.com/studiowebux/tcpjson/internal/keybinds"
	"github.com/studiowebux/tcpjson/internal/transport"
)

// sendState tracks whether the send control is enabled
type sendState int

const (
	stateIdle    sendState = iota // Send control enabled
	stateSending                  // Disabled until the debounce tick fires
)

// focusTarget is the widget receiving key presses
type focusTarget int

const (
	focusInput focusTarget = iota
	focusButton
	focusResponse
	focusCount
)

// Model represents the TUI state
type Model struct {
	cfg      config.Config
	client   *transport.Client
	keybinds *keybinds.Registry

	// Cancels in-flight exchanges when the program exits
	ctx    context.Context
	cancel context.CancelFunc

	// Widgets
	input          textarea.Model
	response       viewport.Model
	responseText   string // Formatted response, without highlighting
	inputScroll    bool   // Input clamped to its maximum height
	responseScroll bool   // Response clamped to its maximum height
	highlight      bool

	// Send control
	state        sendState
	focus        focusTarget
	lastExchange *transport.Exchange

	// UI state
	width     int
	height    int
	statusMsg string
	errorMsg  string
}

// New creates a new TUI model
func New(cfg config.Config) (Model, error) {
	if err := cfg.Validate(); err != nil {
		return Model{}, err
	}

	input := textarea.New()
	input.Placeholder = "Type a message and press Ctrl+S"
	input.Prompt = ""
	input.ShowLineNumbers = false
	input.CharLimit = 0
	input.MaxHeight = 0
	input.SetHeight(1)
	input.Focus()

	ctx, cancel := context.WithCancel(context.Background())

	m := Model{
		cfg:       cfg,
		client:    transport.NewClient(cfg),
		keybinds:  keybinds.NewDefaultRegistry(),
		ctx:       ctx,
		cancel:    cancel,
		input:     input,
		response:  viewport.New(0, 1),
		highlight: cfg.Highlight,
		state:     stateIdle,
		focus:     focusInput,
	}
	return m, nil
}

// Init initializes the TUI
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Cleanup aborts any exchange still running
func (m *Model) Cleanup() {
	if m.cancel != nil {
		m.cancel()
	}
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case exchangeDoneMsg:
		m.lastExchange = msg.exchange
		m.setResponse(m.render(msg.exchange.Response))
		m.errorMsg = ""
		cmd = m.setStatusMessage(exchangeSummary(msg.exchange))

	case exchangeFailedMsg:
		log.Printf("exchange failed: %v", msg.err)
		if errors.Is(msg.err, transport.ErrConnect) {
			m.setResponse(transport.ConnectFailureMessage)
		}
		cmd = m.setErrorMessage(categorizeError(msg.err))

	case reenableMsg:
		m.state = stateIdle

	case clearStatusMsg:
		m.statusMsg = ""

	case clearErrorMsg:
		m.errorMsg = ""

	case errorMsg:
		cmd = m.setErrorMessage(string(msg))

	case statusMsg:
		m.errorMsg = ""
		cmd = m.setStatusMessage(string(msg))

	default:
		// Cursor blink and other widget-internal messages
		if m.focus == focusInput {
			m.input, cmd = m.input.Update(msg)
		}
	}

	return m, cmd
}

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	return m.renderMain()
}

// Custom message types
type exchangeDoneMsg struct {
	exchange *transport.Exchange
}

type exchangeFailedMsg struct {
	err error
}

type reenableMsg struct{}

type clearStatusMsg struct{}
type clearErrorMsg struct{}

type errorMsg string
type statusMsg string

// Helper methods for setting messages with timeout
func (m *Model) setStatusMessage(msg string) tea.Cmd {
	m.statusMsg = truncate(msg, StatusMaxLength)
	return tea.Tick(MessageTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m *Model) setErrorMessage(msg string) tea.Cmd {
	m.errorMsg = truncate(msg, StatusMaxLength)
	return tea.Tick(MessageTimeout, func(time.Time) tea.Msg {
		return clearErrorMsg{}
	})
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		return string(runes[:n-3]) + "..."
	}
	return s
}
