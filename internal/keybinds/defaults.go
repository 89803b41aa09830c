package keybinds

// NewDefaultRegistry creates a registry with all default keybindings
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerWorkbenchBindings(r)
	registerFilterBindings(r)

	return r
}

// registerGlobalBindings sets up bindings available whatever has focus
func registerGlobalBindings(r *Registry) {
	r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
	r.Register(ContextGlobal, "ctrl+q", ActionQuit)

	r.Register(ContextGlobal, "ctrl+r", ActionSend)
	r.Register(ContextGlobal, "ctrl+s", ActionSave)
	r.Register(ContextGlobal, "ctrl+n", ActionAddHeader)
	r.Register(ContextGlobal, "ctrl+w", ActionRemoveHeader)

	r.Register(ContextGlobal, "ctrl+y", ActionCopyBody)
	r.Register(ContextGlobal, "ctrl+t", ActionNextTab)
	r.Register(ContextGlobal, "ctrl+f", ActionEditFilter)
	r.Register(ContextGlobal, "pgup", ActionScrollUp)
	r.Register(ContextGlobal, "pgdown", ActionScrollDown)
}

// registerWorkbenchBindings sets up field navigation
func registerWorkbenchBindings(r *Registry) {
	r.Register(ContextWorkbench, "up", ActionNavigateUp)
	r.Register(ContextWorkbench, "down", ActionNavigateDown)
	r.Register(ContextWorkbench, "left", ActionNavigateLeft)
	r.Register(ContextWorkbench, "right", ActionNavigateRight)
	r.Register(ContextWorkbench, "tab", ActionNextField)
	r.Register(ContextWorkbench, "shift+tab", ActionPrevField)
	r.Register(ContextWorkbench, "enter", ActionActivate)
}

// registerFilterBindings sets up the filter input
func registerFilterBindings(r *Registry) {
	r.Register(ContextFilter, "enter", ActionTextSubmit)
	r.Register(ContextFilter, "esc", ActionTextCancel)
}
