package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
	"github.com/studiowebux/porter/internal/navigation"
	"github.com/studiowebux/porter/internal/types"
)

// Field IDs for the fixed part of the workbench
const (
	fieldMethod       = "method"
	fieldURL          = "url"
	fieldSend         = "send"
	fieldAddHeader    = "add-header"
	fieldRemoveHeader = "remove-header"
	fieldBody         = "body"
)

// widget is a navigable field the model can focus, feed keys to and draw
type widget interface {
	navigation.Field
	focus() tea.Cmd
	blur()
	update(msg tea.KeyMsg) tea.Cmd
	view(focused bool) string
}

// textField is a single-line input
type textField struct {
	id    string
	input textinput.Model
}

func newTextField(id, placeholder string) *textField {
	inp := textinput.New()
	inp.Prompt = ""
	inp.Placeholder = placeholder
	inp.CharLimit = 0
	return &textField{id: id, input: inp}
}

func (f *textField) FieldID() string          { return f.id }
func (f *textField) Kind() navigation.Kind    { return navigation.KindSingleLine }
func (f *textField) focus() tea.Cmd           { return f.input.Focus() }
func (f *textField) blur()                    { f.input.Blur() }
func (f *textField) Value() string            { return f.input.Value() }
func (f *textField) SetValue(v string)        { f.input.SetValue(v) }
func (f *textField) setWidth(w int)           { f.input.Width = w }
func (f *textField) view(focused bool) string { return f.input.View() }

func (f *textField) Cursor() navigation.Cursor {
	return navigation.TextCursor(f.input.Position(), len([]rune(f.input.Value())))
}

func (f *textField) update(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

// areaField is the multi-line body editor
type areaField struct {
	id   string
	area textarea.Model
}

func newAreaField(id, placeholder string) *areaField {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Prompt = ""
	return &areaField{id: id, area: ta}
}

func (f *areaField) FieldID() string       { return f.id }
func (f *areaField) Kind() navigation.Kind { return navigation.KindMultiLine }
func (f *areaField) focus() tea.Cmd        { return f.area.Focus() }
func (f *areaField) blur()                 { f.area.Blur() }
func (f *areaField) Value() string         { return f.area.Value() }
func (f *areaField) SetValue(v string)     { f.area.SetValue(v) }
func (f *areaField) view(bool) string      { return f.area.View() }

func (f *areaField) setSize(w, h int) {
	f.area.SetWidth(w)
	f.area.SetHeight(h)
}

// Cursor reports boundaries in logical lines; soft wraps are folded back
// into the line they belong to
func (f *areaField) Cursor() navigation.Cursor {
	lines := strings.Split(f.area.Value(), "\n")
	info := f.area.LineInfo()
	col := info.StartColumn + info.ColumnOffset
	return navigation.LineCursor(f.area.Line(), col, len(lines), len([]rune(lines[len(lines)-1])))
}

func (f *areaField) update(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	f.area, cmd = f.area.Update(msg)
	return cmd
}

// selectField picks the HTTP method. Left/right cycle through the methods
// and typing jumps to the best fuzzy match.
type selectField struct {
	id      string
	options []string
	index   int
	query   string
	focused bool
}

func newMethodSelect() *selectField {
	options := make([]string, len(types.Methods))
	for i, m := range types.Methods {
		options[i] = string(m)
	}
	return &selectField{id: fieldMethod, options: options}
}

func (f *selectField) FieldID() string       { return f.id }
func (f *selectField) Kind() navigation.Kind { return navigation.KindSelect }
func (f *selectField) Value() string         { return f.options[f.index] }

func (f *selectField) focus() tea.Cmd {
	f.focused = true
	f.query = ""
	return nil
}

func (f *selectField) blur() {
	f.focused = false
	f.query = ""
}

// SetValue selects value if it is one of the options
func (f *selectField) SetValue(value string) bool {
	for i, opt := range f.options {
		if strings.EqualFold(opt, value) {
			f.index = i
			return true
		}
	}
	return false
}

func (f *selectField) update(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyLeft:
		f.index = (f.index - 1 + len(f.options)) % len(f.options)
		f.query = ""
	case tea.KeyRight, tea.KeySpace:
		f.index = (f.index + 1) % len(f.options)
		f.query = ""
	case tea.KeyBackspace:
		if f.query != "" {
			f.query = f.query[:len(f.query)-1]
		}
	case tea.KeyRunes:
		f.match(string(msg.Runes))
	}
	return nil
}

// match extends the type-ahead query, starting over when the longer query
// matches nothing
func (f *selectField) match(typed string) {
	for _, q := range []string{f.query + typed, typed} {
		matches := fuzzy.Find(strings.ToUpper(q), f.options)
		if len(matches) > 0 {
			f.query = q
			f.index = matches[0].Index
			return
		}
	}
	f.query = ""
}

func (f *selectField) view(focused bool) string {
	return f.Value() + " ▾"
}

// buttonField is pressed with enter
type buttonField struct {
	id    string
	label string
}

func newButton(id, label string) *buttonField {
	return &buttonField{id: id, label: label}
}

func (b *buttonField) FieldID() string           { return b.id }
func (b *buttonField) Kind() navigation.Kind     { return navigation.KindButton }
func (b *buttonField) focus() tea.Cmd            { return nil }
func (b *buttonField) blur()                     {}
func (b *buttonField) update(tea.KeyMsg) tea.Cmd { return nil }
func (b *buttonField) view(focused bool) string  { return "[ " + b.label + " ]" }
