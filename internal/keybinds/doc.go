/*
Package keybinds maps key strings to workbench actions.

# Contexts

  - Global: bindings available whatever has focus (send, save, quit, ...)
  - Workbench: field navigation while a request field or button has focus
  - Filter: the JMESPath filter input

A key bound in the active context shadows the same key in Global.

# Customizing

The config file's keybinds section maps an action name to a list of keys.
Each entry replaces the action's default keys:

	keybinds:
	  send: [ctrl+g, f5]
	  copy_body: [ctrl+o]

ctrl+c is reserved for force quit and cannot be rebound. Unknown actions and
malformed keys are reported by ApplyOverrides and otherwise ignored.
*/
package keybinds
