package tui

import (
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/tcpjson/internal/config"
	"github.com/studiowebux/tcpjson/internal/mock"
	"github.com/studiowebux/tcpjson/internal/transport"
)

// testConfig returns a config with a short debounce so tests stay fast
func testConfig() config.Config {
	cfg := config.Default()
	cfg.DebounceDelay = 20 * time.Millisecond
	cfg.DialTimeout = 2 * time.Second
	cfg.ReadTimeout = 2 * time.Second
	cfg.Highlight = false
	return cfg
}

// peerConfig starts a mock peer and points a test config at it
func peerConfig(t *testing.T, responses ...mock.Response) config.Config {
	t.Helper()

	s := mock.NewServer(&mock.Config{Responses: responses}, t.TempDir())
	if err := s.Start(); err != nil {
		t.Fatalf("Failed to start mock peer: %v", err)
	}
	t.Cleanup(func() { s.Stop() })

	return withAddr(t, testConfig(), s.Addr())
}

// closedPortConfig points a test config at a port nothing listens on
func closedPortConfig(t *testing.T) config.Config {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to listen: %v", err)
	}
	addr := ln.Addr().String()
	ln.Close()
	return withAddr(t, testConfig(), addr)
}

func withAddr(t *testing.T, cfg config.Config, addr string) config.Config {
	t.Helper()
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		t.Fatalf("Bad address %q: %v", addr, err)
	}
	cfg.Host = host
	cfg.Port, _ = strconv.Atoi(portStr)
	return cfg
}

func typeText(m *Model, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func TestNew_InitialState(t *testing.T) {
	m := CreateTestModel(t, testConfig())

	AssertModelField(t, "state", m.state, stateIdle)
	AssertModelField(t, "focus", m.focus, focusInput)
	AssertModelField(t, "responseText", m.responseText, "")
	AssertModelField(t, "highlight", m.highlight, false)
	AssertModelField(t, "input height", m.input.Height(), 1)
	AssertModelField(t, "response height", m.response.Height, 1)
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Port = 0

	_, err := New(cfg)
	AssertError(t, err)
}

func TestSend_DisablesSynchronously(t *testing.T) {
	m := CreateTestModel(t, closedPortConfig(t))

	cmd := m.send()
	if cmd == nil {
		t.Fatal("send() returned nil command")
	}
	AssertModelField(t, "state after send", m.state, stateSending)

	// A second send while disabled is dropped
	if again := m.send(); again != nil {
		t.Error("send() while sending should return nil")
	}

	m.Update(reenableMsg{})
	AssertModelField(t, "state after debounce", m.state, stateIdle)
}

func TestSend_DebounceHoldsForDefaultDelay(t *testing.T) {
	cfg := closedPortConfig(t)
	cfg.DebounceDelay = config.Default().DebounceDelay
	m := CreateTestModel(t, cfg)

	start := time.Now()
	batch, ok := m.send()().(tea.BatchMsg)
	if !ok {
		t.Fatal("send() should batch the exchange with the debounce tick")
	}

	ticked := false
	for _, c := range batch {
		msg := c()
		if _, ok := msg.(reenableMsg); ok {
			ticked = true
			if elapsed := time.Since(start); elapsed < cfg.DebounceDelay {
				t.Errorf("re-enabled after %v, want at least %v", elapsed, cfg.DebounceDelay)
			}
		}
		AssertModelField(t, "state before handling "+fmt.Sprintf("%T", msg), m.state, stateSending)
		m.Update(msg)
	}

	if !ticked {
		t.Fatal("send() did not schedule a re-enable tick")
	}
	AssertModelField(t, "state after tick", m.state, stateIdle)
	AssertModelField(t, "responseText", m.responseText, "Failed to connect to server")
}

func TestSend_FormatsResponse(t *testing.T) {
	cfg := peerConfig(t, mock.Response{Match: "exact", Pattern: "get", Body: `{"a": [1, "x"], "b": null}`})
	m := CreateTestModel(t, cfg)

	typeText(m, "get")
	RunCmd(t, m, m.send())

	want := "{\n  \"a\": [\n    1\n    \"x\"\n  ]\n  \"b\": null\n}"
	AssertModelField(t, "responseText", m.responseText, want)
	AssertModelField(t, "state", m.state, stateIdle)
	AssertModelField(t, "errorMsg", m.errorMsg, "")
	if m.lastExchange == nil || m.lastExchange.BytesSent != 3 {
		t.Errorf("lastExchange = %+v", m.lastExchange)
	}
	if !strings.HasPrefix(m.statusMsg, "Received ") {
		t.Errorf("statusMsg = %q", m.statusMsg)
	}
}

func TestSend_InvalidJSON(t *testing.T) {
	cfg := peerConfig(t, mock.Response{Match: "any", Body: "oops"})
	m := CreateTestModel(t, cfg)

	RunCmd(t, m, m.send())

	if !strings.HasPrefix(m.responseText, "Invalid JSON response: ") {
		t.Errorf("responseText = %q", m.responseText)
	}
}

func TestSend_ConnectFailure(t *testing.T) {
	m := CreateTestModel(t, closedPortConfig(t))

	RunCmd(t, m, m.send())

	AssertModelField(t, "responseText", m.responseText, "Failed to connect to server")
	if !strings.Contains(m.errorMsg, "Connection refused") {
		t.Errorf("errorMsg = %q", m.errorMsg)
	}
	AssertModelField(t, "state", m.state, stateIdle)
}

func TestSend_ReadFailureKeepsResponse(t *testing.T) {
	m := CreateTestModel(t, testConfig())
	m.setResponse("previous")

	m.Update(exchangeFailedMsg{err: &transport.ExchangeError{Op: "read", Addr: "127.0.0.1:8080", Err: io.EOF}})

	AssertModelField(t, "responseText", m.responseText, "previous")
	AssertModelField(t, "errorMsg", m.errorMsg, "Connection closed - the server sent no response")
}

func TestSend_ResultAfterReenableStillDisplayed(t *testing.T) {
	m := CreateTestModel(t, testConfig())
	m.state = stateSending

	m.Update(reenableMsg{})
	m.Update(exchangeDoneMsg{exchange: &transport.Exchange{Response: []byte(`[true]`)}})

	AssertModelField(t, "responseText", m.responseText, "[\n  true\n]")
	AssertModelField(t, "state", m.state, stateIdle)
}

func TestSend_EscapeOption(t *testing.T) {
	cfg := testConfig()
	cfg.EscapeStrings = true
	m := CreateTestModel(t, cfg)

	m.Update(exchangeDoneMsg{exchange: &transport.Exchange{Response: []byte(`{"q": "a\"b"}`)}})

	AssertModelField(t, "responseText", m.responseText, "{\n  \"q\": \"a\\\"b\"\n}")
}

func TestResize_ClampsToHalfScreen(t *testing.T) {
	m := CreateTestModel(t, testConfig())
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24 + ChromeRows})

	m.setResponse(strings.Repeat("line\n", 4) + "line")
	AssertModelField(t, "short response height", m.response.Height, 5)
	AssertModelField(t, "short response scroll", m.responseScroll, false)

	m.setResponse(strings.Repeat("line\n", 49) + "line")
	AssertModelField(t, "long response height", m.response.Height, 12)
	AssertModelField(t, "long response scroll", m.responseScroll, true)

	// Shrinking the terminal re-clamps
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 10 + ChromeRows})
	AssertModelField(t, "resized response height", m.response.Height, 5)
}

func TestResize_InputGrowsWithContent(t *testing.T) {
	m := CreateTestModel(t, testConfig())
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 20 + ChromeRows})

	for i := 0; i < 3; i++ {
		typeText(m, "x")
		m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	}
	AssertModelField(t, "input height", m.input.Height(), 4)
	AssertModelField(t, "input scroll", m.inputScroll, false)

	for i := 0; i < 20; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	}
	AssertModelField(t, "clamped input height", m.input.Height(), 10)
	AssertModelField(t, "clamped input scroll", m.inputScroll, true)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	AssertModelField(t, "cleared input", m.input.Value(), "")
	AssertModelField(t, "cleared input height", m.input.Height(), 1)
}

func TestResize_InputFollowsWordWrap(t *testing.T) {
	m := CreateTestModel(t, testConfig())
	m.Update(tea.WindowSizeMsg{Width: 10 + RegionBorderWidth + RegionPaddingLeft, Height: 40 + ChromeRows})
	AssertModelField(t, "content width", m.contentWidth(), 10)

	typeText(m, "aaaaaa bbbbbb cccccc")
	AssertModelField(t, "input height", m.input.Height(), 3)
	AssertModelField(t, "input scroll", m.inputScroll, false)

	view := m.input.View()
	for _, word := range []string{"aaaaaa", "bbbbbb", "cccccc"} {
		if !strings.Contains(view, word) {
			t.Errorf("input view hides %q:\n%s", word, view)
		}
	}
}

func TestResize_ResponseReachesEndOfWrappedLine(t *testing.T) {
	m := CreateTestModel(t, testConfig())
	m.Update(tea.WindowSizeMsg{Width: 20 + RegionBorderWidth + RegionPaddingLeft, Height: 10 + ChromeRows})

	m.setResponse(strings.Repeat("line\n", 6) + strings.Repeat("x", 29) + "END")
	AssertModelField(t, "response height", m.response.Height, 5)
	AssertModelField(t, "response scroll", m.responseScroll, true)
	AssertModelField(t, "wrapped rows", m.response.TotalLineCount(), 8)

	m.setFocus(focusResponse)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	if view := m.response.View(); !strings.Contains(view, "END") {
		t.Errorf("bottom of response hides END:\n%s", view)
	}

	// A wider terminal rewraps the same text
	m.Update(tea.WindowSizeMsg{Width: 40 + RegionBorderWidth + RegionPaddingLeft, Height: 10 + ChromeRows})
	AssertModelField(t, "rewrapped rows", m.response.TotalLineCount(), 7)
	AssertModelField(t, "responseText", m.responseText, strings.Repeat("line\n", 6)+strings.Repeat("x", 29)+"END")
}

func TestToggleHighlight_KeepsText(t *testing.T) {
	m := CreateTestModel(t, testConfig())
	m.setResponse("{\n  \"a\": 1\n}")

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	AssertModelField(t, "highlight", m.highlight, true)
	AssertModelField(t, "responseText", m.responseText, "{\n  \"a\": 1\n}")

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	AssertModelField(t, "highlight", m.highlight, false)
}

func TestKeys_FocusCycle(t *testing.T) {
	m := CreateTestModel(t, testConfig())

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	AssertModelField(t, "focus", m.focus, focusButton)
	AssertModelField(t, "input focused", m.input.Focused(), false)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	AssertModelField(t, "focus", m.focus, focusResponse)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	AssertModelField(t, "focus", m.focus, focusInput)
	AssertModelField(t, "input focused", m.input.Focused(), true)

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	AssertModelField(t, "focus", m.focus, focusResponse)
}

func TestKeys_ButtonSends(t *testing.T) {
	m := CreateTestModel(t, closedPortConfig(t))
	m.setFocus(focusButton)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter on button returned nil command")
	}
	AssertModelField(t, "state", m.state, stateSending)
}

func TestKeys_CtrlSSendsFromInput(t *testing.T) {
	m := CreateTestModel(t, closedPortConfig(t))
	typeText(m, "hello")

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	AssertModelField(t, "state", m.state, stateSending)
	AssertModelField(t, "input", m.input.Value(), "hello")
}

func TestKeys_PrintableKeysTypeIntoInput(t *testing.T) {
	m := CreateTestModel(t, testConfig())

	typeText(m, "j")
	typeText(m, "G")
	AssertModelField(t, "input", m.input.Value(), "jG")
}

func TestKeys_ResponseScrolling(t *testing.T) {
	m := CreateTestModel(t, testConfig())
	m.setResponse(strings.Repeat("line\n", 99) + "line")
	m.setFocus(focusResponse)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	AssertModelField(t, "offset after j", m.response.YOffset, 1)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	if !m.response.AtBottom() {
		t.Error("G should scroll to the bottom")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	AssertModelField(t, "offset after gg", m.response.YOffset, 0)
}

func TestKeys_Quit(t *testing.T) {
	m := CreateTestModel(t, testConfig())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c returned nil command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}
}

func TestView_ButtonState(t *testing.T) {
	m := CreateTestModel(t, closedPortConfig(t))

	if view := m.View(); !strings.Contains(view, "Send") || strings.Contains(view, "Sending") {
		t.Errorf("idle view should show Send")
	}

	m.send()
	if view := m.View(); !strings.Contains(view, "Sending") {
		t.Errorf("sending view should show Sending")
	}
}

func TestView_BeforeResize(t *testing.T) {
	m, err := New(testConfig())
	AssertNoError(t, err)
	AssertModelField(t, "view", m.View(), "Initializing...")
}
