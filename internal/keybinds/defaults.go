package keybinds

// NewDefaultRegistry creates a registry with all default keybindings
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerButtonBindings(r)
	registerResponseBindings(r)

	return r
}

// registerGlobalBindings sets up bindings available whatever has focus.
// Plain printable keys are left to the input area.
func registerGlobalBindings(r *Registry) {
	r.RegisterMultiple(ContextGlobal, []string{"ctrl+c", "esc"}, ActionQuit)
	r.Register(ContextGlobal, "ctrl+s", ActionSend)
	r.Register(ContextGlobal, "tab", ActionNextFocus)
	r.Register(ContextGlobal, "shift+tab", ActionPrevFocus)
	r.Register(ContextGlobal, "ctrl+y", ActionCopyResponse)
	r.Register(ContextGlobal, "ctrl+l", ActionClearInput)
	r.Register(ContextGlobal, "ctrl+t", ActionToggleHighlight)
}

// registerButtonBindings makes the focused button behave like a push button
func registerButtonBindings(r *Registry) {
	r.RegisterMultiple(ContextButton, []string{"enter", " "}, ActionSend)
}

// registerResponseBindings sets up viewer navigation for the response area
func registerResponseBindings(r *Registry) {
	r.RegisterMultiple(ContextResponse, []string{"up", "k"}, ActionScrollUp)
	r.RegisterMultiple(ContextResponse, []string{"down", "j"}, ActionScrollDown)
	r.Register(ContextResponse, "pgup", ActionPageUp)
	r.Register(ContextResponse, "pgdown", ActionPageDown)
	r.Register(ContextResponse, "ctrl+u", ActionHalfPageUp)
	r.Register(ContextResponse, "ctrl+d", ActionHalfPageDown)
	r.RegisterMultiple(ContextResponse, []string{"gg", "home"}, ActionGoToTop)
	r.RegisterMultiple(ContextResponse, []string{"G", "end"}, ActionGoToBottom)
}
