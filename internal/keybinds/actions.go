package keybinds

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the context in which keybindings are active
type Context string

const (
	// Contexts follow the focused widget
	ContextGlobal   Context = "global"   // Available everywhere
	ContextInput    Context = "input"    // Input text area focused
	ContextButton   Context = "button"   // Send button focused
	ContextResponse Context = "response" // Response area focused
)

const (
	// Global actions
	ActionQuit            Action = "quit"             // Quit application
	ActionSend            Action = "send"             // Send the input text
	ActionNextFocus       Action = "next_focus"       // Focus next widget
	ActionPrevFocus       Action = "prev_focus"       // Focus previous widget
	ActionCopyResponse    Action = "copy_response"    // Copy response text to clipboard
	ActionClearInput      Action = "clear_input"      // Clear the input text area
	ActionToggleHighlight Action = "toggle_highlight" // Toggle response highlighting

	// Response viewer navigation
	ActionScrollUp     Action = "scroll_up"      // Scroll one line up
	ActionScrollDown   Action = "scroll_down"    // Scroll one line down
	ActionPageUp       Action = "page_up"        // Scroll one page up
	ActionPageDown     Action = "page_down"      // Scroll one page down
	ActionHalfPageUp   Action = "half_page_up"   // Scroll half a page up
	ActionHalfPageDown Action = "half_page_down" // Scroll half a page down
	ActionGoToTop      Action = "go_to_top"      // Jump to the first line
	ActionGoToBottom   Action = "go_to_bottom"   // Jump to the last line
)
