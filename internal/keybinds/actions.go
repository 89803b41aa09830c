package keybinds

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the context in which keybindings are active
type Context string

const (
	ContextGlobal    Context = "global"    // Available everywhere
	ContextWorkbench Context = "workbench" // Request fields and buttons have focus
	ContextFilter    Context = "filter"    // JMESPath filter input is open
)

const (
	// Global actions
	ActionQuit      Action = "quit"       // Quit application
	ActionQuitForce Action = "quit_force" // Force quit (ctrl+c)

	// Request actions
	ActionSend         Action = "send"          // Validate, save and dispatch the request
	ActionSave         Action = "save"          // Save the request to the collection
	ActionAddHeader    Action = "add_header"    // Append an empty header row
	ActionRemoveHeader Action = "remove_header" // Remove the last header row

	// Response actions
	ActionCopyBody   Action = "copy_body"   // Copy the response body to the clipboard
	ActionNextTab    Action = "next_tab"    // Cycle Body / Headers / Raw
	ActionEditFilter Action = "edit_filter" // Open the JMESPath filter input
	ActionScrollUp   Action = "scroll_up"   // Scroll the response view up
	ActionScrollDown Action = "scroll_down" // Scroll the response view down

	// Field navigation
	ActionNavigateUp    Action = "navigate_up"
	ActionNavigateDown  Action = "navigate_down"
	ActionNavigateLeft  Action = "navigate_left"
	ActionNavigateRight Action = "navigate_right"
	ActionNextField     Action = "next_field"
	ActionPrevField     Action = "prev_field"
	ActionActivate      Action = "activate" // Press the focused button

	// Filter input
	ActionTextSubmit Action = "text_submit"
	ActionTextCancel Action = "text_cancel"
)

// actionContexts records where each action is bound by default. Overrides
// from the config file land in the same context.
var actionContexts = map[Action]Context{
	ActionQuit:          ContextGlobal,
	ActionQuitForce:     ContextGlobal,
	ActionSend:          ContextGlobal,
	ActionSave:          ContextGlobal,
	ActionAddHeader:     ContextGlobal,
	ActionRemoveHeader:  ContextGlobal,
	ActionCopyBody:      ContextGlobal,
	ActionNextTab:       ContextGlobal,
	ActionEditFilter:    ContextGlobal,
	ActionScrollUp:      ContextGlobal,
	ActionScrollDown:    ContextGlobal,
	ActionNavigateUp:    ContextWorkbench,
	ActionNavigateDown:  ContextWorkbench,
	ActionNavigateLeft:  ContextWorkbench,
	ActionNavigateRight: ContextWorkbench,
	ActionNextField:     ContextWorkbench,
	ActionPrevField:     ContextWorkbench,
	ActionActivate:      ContextWorkbench,
	ActionTextSubmit:    ContextFilter,
	ActionTextCancel:    ContextFilter,
}

// ContextFor returns the context an action belongs to
func ContextFor(action Action) (Context, bool) {
	ctx, ok := actionContexts[action]
	return ctx, ok
}
