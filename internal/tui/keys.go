package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/porter/internal/keybinds"
	"github.com/studiowebux/porter/internal/navigation"
)

// handleKeyPress routes a key to the filter input or the workbench
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	if m.mode == ModeFilter {
		return m.handleFilterKeys(msg)
	}
	return m.handleWorkbenchKeys(msg)
}

func (m *Model) handleFilterKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextFilter, msg.String())
	if ok {
		switch action {
		case keybinds.ActionTextSubmit:
			m.applyFilter(m.filterInput.Value())
			return nil
		case keybinds.ActionTextCancel:
			m.closeFilter()
			return nil
		case keybinds.ActionQuitForce:
			return tea.Quit
		case keybinds.ActionScrollUp, keybinds.ActionScrollDown:
			m.scroll(action)
			return nil
		}
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	return cmd
}

func (m *Model) handleWorkbenchKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextWorkbench, msg.String())
	if !ok {
		return m.forwardKey(msg)
	}

	switch action {
	case keybinds.ActionQuit, keybinds.ActionQuitForce:
		m.log.Info("quitting")
		return tea.Quit

	case keybinds.ActionSend:
		return m.send()

	case keybinds.ActionSave:
		m.save()
		return nil

	case keybinds.ActionAddHeader:
		row := m.addHeaderRow("", "")
		return m.focusField(row.key)

	case keybinds.ActionRemoveHeader:
		if !m.removeLastHeaderRow() {
			m.setStatusMessage("No header rows to remove")
		}
		return nil

	case keybinds.ActionCopyBody:
		return m.copyBody()

	case keybinds.ActionNextTab:
		m.nextTab()
		return nil

	case keybinds.ActionEditFilter:
		return m.openFilter()

	case keybinds.ActionScrollUp, keybinds.ActionScrollDown:
		m.scroll(action)
		return nil

	case keybinds.ActionNavigateUp:
		return m.navigate(navigation.Up, msg)
	case keybinds.ActionNavigateDown:
		return m.navigate(navigation.Down, msg)
	case keybinds.ActionNavigateLeft:
		return m.navigate(navigation.Left, msg)
	case keybinds.ActionNavigateRight:
		return m.navigate(navigation.Right, msg)

	case keybinds.ActionNextField:
		return m.cycleFocus(1)
	case keybinds.ActionPrevField:
		return m.cycleFocus(-1)

	case keybinds.ActionActivate:
		return m.activate(msg)
	}

	return m.forwardKey(msg)
}

// navigate asks the engine where dir leads from the focused field
func (m *Model) navigate(dir navigation.Direction, msg tea.KeyMsg) tea.Cmd {
	if m.focused == nil {
		return nil
	}
	result := m.engine.Resolve(m.focused, dir, navigation.CursorOf(m.focused))
	switch result.Type {
	case navigation.ActionMove:
		return m.focusField(result.Target)
	case navigation.ActionNoOp:
		return m.forwardKey(msg)
	}
	return nil
}

// cycleFocus moves through the navigation order with wrap-around
func (m *Model) cycleFocus(delta int) tea.Cmd {
	order := m.registry.Order()
	if len(order) == 0 {
		return nil
	}
	idx := -1
	if m.focused != nil {
		idx = m.registry.IndexOf(m.focused.FieldID())
	}
	if idx < 0 {
		return m.focusField(order[0])
	}
	return m.focusField(order[(idx+delta+len(order))%len(order)])
}

// activate presses the focused button. Enter in the URL sends; anywhere
// else it goes to the field.
func (m *Model) activate(msg tea.KeyMsg) tea.Cmd {
	if m.focused == nil {
		return nil
	}
	switch m.focused.FieldID() {
	case fieldSend, fieldURL:
		return m.send()
	case fieldAddHeader:
		row := m.addHeaderRow("", "")
		return m.focusField(row.key)
	case fieldRemoveHeader:
		if !m.removeLastHeaderRow() {
			m.setStatusMessage("No header rows to remove")
		}
		return nil
	}
	return m.forwardKey(msg)
}

func (m *Model) forwardKey(msg tea.KeyMsg) tea.Cmd {
	if m.focused == nil {
		return nil
	}
	return m.focused.update(msg)
}

func (m *Model) scroll(action keybinds.Action) {
	if action == keybinds.ActionScrollUp {
		m.responseView.ViewUp()
	} else {
		m.responseView.ViewDown()
	}
}
