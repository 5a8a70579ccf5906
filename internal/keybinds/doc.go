/*
Package keybinds maps key presses to actions.

Bindings live in contexts that follow the focused widget (input, button,
response). A key bound in the focused context shadows the same key in the
global context. Printable keys are deliberately left unbound in the input
context so they reach the text area.

The registry supports short multi-key sequences such as "gg":

	registry := NewDefaultRegistry()
	action, matched, partial := registry.MatchMultiKey(ContextResponse, "g")
	// partial == true; the next "g" completes ActionGoToTop
*/
package keybinds
