/*
Package tui implements the terminal workbench for porter.

# Architecture

The TUI follows the Bubble Tea framework's Model-Update-View pattern:
  - Model: Maintains all application state
  - Update: Processes messages and returns commands
  - View: Renders the current state to the terminal

# Key Components

  - model.go: Core state and initialization, defines the Model struct
  - fields.go: The focusable widgets (method select, text inputs, body editor, buttons)
  - headers.go: Header rows and their positions in the navigation tree
  - keys.go: Keyboard input handling and keybind routing
  - actions.go: Side effects (sending, saving, clipboard, filtering)
  - view.go: View rendering and layout

# Focus

Every widget is mounted in a navigation.Registry under a tree path that
matches where it is drawn. Arrow keys are resolved by navigation.Engine,
which either moves focus, hands the key to the widget, or swallows it.
Header rows are mounted and unmounted as they are added and removed.

# Requests

Sending validates the URL, saves the request to the collection file and
dispatches it in a tea.Cmd. Each dispatch carries a sequence number; a
response whose number is not the latest is dropped.
*/
package tui
