package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/studiowebux/porter/internal/keybinds"
	"github.com/studiowebux/porter/internal/render"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen  = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"} // Dark green / Bright green
	colorRed    = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"} // Dark red / Bright red
	colorYellow = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff00"} // Dark goldenrod / Yellow
	colorGray   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"} // Dark gray / Light gray
	colorCyan   = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"} // Dark cyan / Cyan
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleSelected = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"})

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorYellow)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)
)

// View renders the workbench
func (m *Model) View() string {
	if m.width == 0 {
		return ""
	}

	sections := []string{
		m.renderTitle(),
		m.renderRequestLine(),
		m.renderHeaders(),
		m.renderBody(),
		m.renderResponse(),
		m.renderStatusBar(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// box draws a bordered section, green when it holds focus
func (m *Model) box(content string, focused bool) string {
	border := colorGray
	if focused {
		border = colorGreen
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(m.width - BoxBorderWidth).
		Render(content)
}

func (m *Model) isFocused(w widget) bool {
	return m.focused != nil && w != nil && m.focused.FieldID() == w.FieldID()
}

// renderField draws a widget, highlighting selects and buttons when focused.
// Text inputs show their own cursor.
func (m *Model) renderField(w widget) string {
	focused := m.isFocused(w)
	out := w.view(focused)
	if !focused {
		return out
	}
	switch w.(type) {
	case *selectField, *buttonField:
		return styleSelected.Render(out)
	}
	return out
}

func (m *Model) renderTitle() string {
	title := styleTitle.Render("porter")
	if m.version != "" {
		title += styleSubtle.Render(" " + m.version)
	}
	if m.requestName != "" {
		title += styleSubtle.Render("  " + m.requestName)
	}
	return title
}

func (m *Model) renderRequestLine() string {
	line := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(MethodSelectWidth).Render(m.renderField(m.methodSelect)),
		m.renderField(m.urlInput),
		" ",
		m.renderField(m.sendBtn),
	)
	focused := m.isFocused(m.methodSelect) || m.isFocused(m.urlInput) || m.isFocused(m.sendBtn)
	return m.box(line, focused)
}

func (m *Model) renderHeaders() string {
	lines := []string{styleTitle.Render("Headers")}
	focused := m.isFocused(m.addHeaderBtn) || m.isFocused(m.removeHeaderBtn)

	for _, row := range m.headerRows {
		lines = append(lines, m.renderField(row.key)+styleSubtle.Render(" : ")+m.renderField(row.value))
		if m.isFocused(row.key) || m.isFocused(row.value) {
			focused = true
		}
	}
	lines = append(lines, m.renderField(m.addHeaderBtn)+" "+m.renderField(m.removeHeaderBtn))
	return m.box(strings.Join(lines, "\n"), focused)
}

func (m *Model) renderBody() string {
	content := styleTitle.Render("Body") + "\n" + m.bodyEditor.view(m.isFocused(m.bodyEditor))
	return m.box(content, m.isFocused(m.bodyEditor))
}

func (m *Model) renderResponse() string {
	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		if ResponseTab(i) == m.responseTab {
			tabs[i] = styleSelected.Render(" " + name + " ")
		} else {
			tabs[i] = styleSubtle.Render(" " + name + " ")
		}
	}
	tabBar := strings.Join(tabs, " ")
	if m.filterExpr != "" {
		tabBar += styleWarning.Render("  filter: " + m.filterExpr)
	}

	var status string
	switch {
	case m.loading:
		status = styleWarning.Render("Sending request...")
	case m.response != nil:
		status = render.StatusStyle(m.response).Render(render.StatusLine(m.response))
	default:
		status = styleSubtle.Render("-")
	}

	content := tabBar + "\n" + status + "\n" + m.responseView.View()
	return m.box(content, false)
}

func (m *Model) renderStatusBar() string {
	if m.mode == ModeFilter {
		return m.filterInput.View()
	}
	if m.errorMsg != "" {
		return styleError.Render(m.errorMsg)
	}
	if m.statusMsg != "" {
		return styleSuccess.Render(m.statusMsg)
	}

	hint := fmt.Sprintf("%s send | %s save | %s add header | %s next tab | %s filter | %s quit",
		m.keybinds.GetBindingString(keybinds.ContextGlobal, keybinds.ActionSend),
		m.keybinds.GetBindingString(keybinds.ContextGlobal, keybinds.ActionSave),
		m.keybinds.GetBindingString(keybinds.ContextGlobal, keybinds.ActionAddHeader),
		m.keybinds.GetBindingString(keybinds.ContextGlobal, keybinds.ActionNextTab),
		m.keybinds.GetBindingString(keybinds.ContextGlobal, keybinds.ActionEditFilter),
		m.keybinds.GetBindingString(keybinds.ContextGlobal, keybinds.ActionQuit),
	)
	return styleSubtle.Render(hint)
}

// resize fits the editors and response viewport to the window. The body
// editor gives up lines before the response viewport does.
func (m *Model) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}
	inner := m.width - BoxBorderWidth - BoxPaddingWidth
	if inner < 20 {
		inner = 20
	}

	m.urlInput.setWidth(max(inner-MethodSelectWidth-SendButtonWidth-1, 10))
	keyWidth := inner / 3
	for _, row := range m.headerRows {
		row.key.setWidth(keyWidth)
		row.value.setWidth(max(inner-keyWidth-4, 10))
	}

	fixed := TitleLines + StatusBarLines +
		(1 + BoxOverheadHeight) + // request line
		(len(m.headerRows) + 2 + BoxOverheadHeight) + // headers: title, rows, buttons
		(1 + BoxOverheadHeight) + // body title
		(ResponseChromeLines + BoxOverheadHeight)

	bodyHeight := BodyEditorHeight
	viewHeight := m.height - fixed - bodyHeight
	if viewHeight < MinResponseHeight {
		bodyHeight = max(bodyHeight-(MinResponseHeight-viewHeight), MinBodyEditorHeight)
		viewHeight = max(m.height-fixed-bodyHeight, MinResponseHeight)
	}

	m.bodyEditor.setSize(inner, bodyHeight)
	m.responseView.Width = inner
	m.responseView.Height = viewHeight
	m.filterInput.Width = max(m.width-len(m.filterInput.Prompt)-1, 10)
	m.updateResponseView()
}
