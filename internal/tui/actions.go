package tui

import (
	"fmt"
	"log"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/tcpjson/internal/highlight"
	"github.com/studiowebux/tcpjson/internal/jsonfmt"
	"github.com/studiowebux/tcpjson/internal/layout"
	"github.com/studiowebux/tcpjson/internal/transport"
)

// send disables the send control and starts an exchange with the current
// input. The control comes back after the debounce delay whether or not the
// exchange has finished. Sends while disabled are dropped.
func (m *Model) send() tea.Cmd {
	if m.state == stateSending {
		return nil
	}
	m.state = stateSending

	payload := m.input.Value()
	log.Printf("send: %d bytes to %s", len(payload), m.client.Address())

	return tea.Batch(
		m.exchange(payload),
		tea.Tick(m.cfg.DebounceDelay, func(time.Time) tea.Msg {
			return reenableMsg{}
		}),
	)
}

// exchange runs one send off the event loop and reports back as a message
func (m *Model) exchange(payload string) tea.Cmd {
	ctx := m.ctx
	client := m.client
	return func() tea.Msg {
		ex, err := client.Send(ctx, []byte(payload))
		if err != nil {
			return exchangeFailedMsg{err: err}
		}
		return exchangeDoneMsg{exchange: ex}
	}
}

// render turns raw response bytes into display text
func (m *Model) render(raw []byte) string {
	return jsonfmt.RenderWith(raw, jsonfmt.Options{EscapeStrings: m.cfg.EscapeStrings})
}

// setResponse replaces the response text and refits both regions
func (m *Model) setResponse(text string) {
	m.responseText = text
	m.resize()
	m.refreshResponse()
	m.response.GotoTop()
}

// refreshResponse pushes responseText into the viewport, colored or not.
// Lines are wrapped to the region width first so the viewport scrolls by
// visual rows.
func (m *Model) refreshResponse() {
	content := m.responseText
	if m.width > 0 {
		content = layout.Wrap(content, m.contentWidth())
	}
	if m.highlight {
		content = highlight.JSON(content, highlight.DefaultStyle)
	}
	m.response.SetContent(content)
}

// contentWidth is the width available to the text inside each region
func (m *Model) contentWidth() int {
	w := m.width - RegionBorderWidth - RegionPaddingLeft
	if w < 1 {
		w = 1
	}
	return w
}

// resize fits each region to its content, capped at half the usable height
func (m *Model) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}

	width := m.contentWidth()
	screen := m.height - ChromeRows

	inputHeight, inputScroll := layout.Clamp(layout.EditorHeight(m.input.Value(), width), screen)
	m.input.SetWidth(width)
	m.input.SetHeight(inputHeight)
	m.inputScroll = inputScroll

	responseHeight, responseScroll := layout.Fit(m.responseText, width, screen)
	rewrap := m.response.Width != width
	m.response.Width = width
	m.response.Height = responseHeight
	m.responseScroll = responseScroll
	if rewrap {
		m.refreshResponse()
	}
	if !responseScroll {
		m.response.GotoTop()
	}
}

// setFocus moves key focus to target, blurring the input when it leaves
func (m *Model) setFocus(target focusTarget) tea.Cmd {
	m.focus = target
	m.keybinds.ClearMultiKeyState(contextFor(target))
	if target == focusInput {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

// cycleFocus moves focus by delta through input, button, response
func (m *Model) cycleFocus(delta int) tea.Cmd {
	next := (int(m.focus) + delta + int(focusCount)) % int(focusCount)
	return m.setFocus(focusTarget(next))
}

// clearInput empties the input region
func (m *Model) clearInput() {
	m.input.Reset()
	m.resize()
}

// toggleHighlight switches response coloring; the text itself is unchanged
func (m *Model) toggleHighlight() tea.Cmd {
	m.highlight = !m.highlight
	m.refreshResponse()
	if m.highlight {
		return m.setStatusMessage("Highlighting on")
	}
	return m.setStatusMessage("Highlighting off")
}

// copyToClipboard copies the full response text to the clipboard
func (m *Model) copyToClipboard() tea.Cmd {
	text := m.responseText
	return func() tea.Msg {
		if text == "" {
			return errorMsg("No response to copy")
		}
		if err := clipboard.WriteAll(text); err != nil {
			return errorMsg(fmt.Sprintf("Failed to copy to clipboard: %v", err))
		}
		return statusMsg("Response copied to clipboard")
	}
}

// exchangeSummary is the footer text after a successful exchange
func exchangeSummary(ex *transport.Exchange) string {
	return fmt.Sprintf("Received %s in %s",
		transport.FormatSize(ex.BytesReceived),
		transport.FormatDuration(ex.Duration))
}
