package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/tcpjson/internal/keybinds"
)

// contextFor maps a focus target to its keybinding context
func contextFor(target focusTarget) keybinds.Context {
	switch target {
	case focusButton:
		return keybinds.ContextButton
	case focusResponse:
		return keybinds.ContextResponse
	default:
		return keybinds.ContextInput
	}
}

// handleKeyPress routes key presses through the keybinding registry.
// Unbound keys are typed into the input when it has focus.
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	ctx := contextFor(m.focus)

	var action keybinds.Action
	var ok bool
	if ctx == keybinds.ContextResponse {
		var partial bool
		action, ok, partial = m.keybinds.MatchMultiKey(ctx, msg.String())
		if partial {
			return nil
		}
	} else {
		action, ok = m.keybinds.Match(ctx, msg.String())
	}

	if !ok {
		if m.focus == focusInput {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			m.resize()
			return cmd
		}
		return nil
	}

	return m.runAction(action)
}

// runAction performs a matched action
func (m *Model) runAction(action keybinds.Action) tea.Cmd {
	switch action {
	case keybinds.ActionQuit:
		m.Cleanup()
		return tea.Quit

	case keybinds.ActionSend:
		return m.send()

	case keybinds.ActionNextFocus:
		return m.cycleFocus(1)

	case keybinds.ActionPrevFocus:
		return m.cycleFocus(-1)

	case keybinds.ActionCopyResponse:
		return m.copyToClipboard()

	case keybinds.ActionClearInput:
		m.clearInput()

	case keybinds.ActionToggleHighlight:
		return m.toggleHighlight()

	case keybinds.ActionScrollUp:
		m.response.LineUp(1)

	case keybinds.ActionScrollDown:
		m.response.LineDown(1)

	case keybinds.ActionPageUp:
		m.response.ViewUp()

	case keybinds.ActionPageDown:
		m.response.ViewDown()

	case keybinds.ActionHalfPageUp:
		m.response.LineUp(halfPage(m.response.Height))

	case keybinds.ActionHalfPageDown:
		m.response.LineDown(halfPage(m.response.Height))

	case keybinds.ActionGoToTop:
		m.response.GotoTop()

	case keybinds.ActionGoToBottom:
		m.response.GotoBottom()
	}

	return nil
}

// halfPage is the vim-style half-page step, at least one line
func halfPage(height int) int {
	if height < 2 {
		return 1
	}
	return height / 2
}
