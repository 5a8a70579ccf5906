package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/studiowebux/tcpjson/internal/keybinds"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"}
	colorRed   = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"}
	colorGray  = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"}
	colorCyan  = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"}
)

// Style definitions
var (
	styleButton = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 2).
			Foreground(lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#000000"}).
			Background(colorCyan)

	styleButtonFocused = styleButton.
				Background(colorGreen)

	styleButtonDisabled = styleButton.
				Bold(false).
				Foreground(colorGray).
				Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"})

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)
)

// renderMain stacks input, button, response and status bar
func (m Model) renderMain() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.region(m.input.View(), m.focus == focusInput),
		m.renderButton(),
		m.region(m.response.View(), m.focus == focusResponse),
		m.renderStatusBar(),
	)
}

// region draws a left focus bar next to a text region
func (m Model) region(content string, focused bool) string {
	border := colorGray
	if focused {
		border = colorGreen
	}
	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(border).
		PaddingLeft(RegionPaddingLeft).
		Render(content)
}

func (m Model) renderButton() string {
	style := styleButton
	switch {
	case m.state == stateSending:
		style = styleButtonDisabled
	case m.focus == focusButton:
		style = styleButtonFocused
	}

	label := "Send"
	if m.state == stateSending {
		label = "Sending"
	}
	return style.Render(label)
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	left := styleSubtle.Render(m.client.Address())

	right := ""
	switch {
	case m.errorMsg != "":
		right = styleError.Render(m.errorMsg)
	case m.statusMsg != "":
		right = styleSuccess.Render(m.statusMsg)
	default:
		right = styleSubtle.Render(m.helpLine())
	}

	spacing := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}

	return left + strings.Repeat(" ", spacing) + right
}

// helpLine lists the global bindings
func (m Model) helpLine() string {
	return strings.Join([]string{
		m.keybinds.GetBindingString(keybinds.ContextGlobal, keybinds.ActionSend) + " send",
		m.keybinds.GetBindingString(keybinds.ContextGlobal, keybinds.ActionNextFocus) + " focus",
		m.keybinds.GetBindingString(keybinds.ContextGlobal, keybinds.ActionCopyResponse) + " copy",
		m.keybinds.GetBindingString(keybinds.ContextGlobal, keybinds.ActionQuit) + " quit",
	}, " | ")
}
