/*
Package tui implements the terminal client window.

# Architecture

The TUI follows the Bubble Tea framework's Model-Update-View pattern:
  - model.go: state, message types, Update and View
  - keys.go: key routing through the keybinds registry
  - actions.go: sending, resizing, clipboard and highlighting
  - render.go: lipgloss styles and layout

# Send cycle

The send control is either idle or sending. Activating it switches to
sending synchronously and returns a batch of two commands: the exchange,
which runs off the event loop and reports an exchangeDoneMsg or
exchangeFailedMsg, and a debounce tick which reports reenableMsg. The two
are independent; a response may arrive before or after the control is
enabled again.

# Layout

Both text regions take the height of their content, capped at half of the
terminal rows left after the button and status bar. A capped region
scrolls.
*/
package tui
