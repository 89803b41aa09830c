package tui

import (
	"github.com/google/uuid"
	"github.com/studiowebux/porter/internal/navigation"
	"github.com/studiowebux/porter/internal/types"
)

// headerRow is one key/value pair in the headers editor. The id stays the
// same for the life of the row so the navigation registry can track it.
type headerRow struct {
	id    string
	key   *textField
	value *textField
}

func newHeaderRow(name, value string) *headerRow {
	id := uuid.NewString()
	row := &headerRow{
		id:    id,
		key:   newTextField("header-"+id+"-key", "Header name"),
		value: newTextField("header-"+id+"-value", "Value"),
	}
	row.key.SetValue(name)
	row.value.SetValue(value)
	return row
}

// Layout paths. Children of a section are numbered left to right, top to
// bottom, so path order is screen order.
var (
	pathRequestLine = navigation.Path{0}
	pathHeaders     = navigation.Path{1}
	pathHeaderRows  = pathHeaders.Child(0)
	pathHeaderBtns  = pathHeaders.Child(1)
	pathBody        = navigation.Path{2}
)

// mountHeaderRow registers row at position i of the headers list
func (m *Model) mountHeaderRow(i int, row *headerRow) {
	rowPath := pathHeaderRows.Child(i)
	m.registry.Mount(rowPath.Child(0), row.key)
	m.registry.Mount(rowPath.Child(1), row.value)
}

// addHeaderRow appends a row and focuses its key input
func (m *Model) addHeaderRow(name, value string) *headerRow {
	row := newHeaderRow(name, value)
	m.headerRows = append(m.headerRows, row)
	m.mountHeaderRow(len(m.headerRows)-1, row)
	m.resize()
	return row
}

// removeLastHeaderRow drops the last row. Focus inside the removed row moves
// to the Remove Last button.
func (m *Model) removeLastHeaderRow() bool {
	if len(m.headerRows) == 0 {
		return false
	}
	last := m.headerRows[len(m.headerRows)-1]
	m.headerRows = m.headerRows[:len(m.headerRows)-1]
	m.registry.Unmount(last.key.FieldID())
	m.registry.Unmount(last.value.FieldID())

	if m.focused != nil && (m.focused.FieldID() == last.key.FieldID() || m.focused.FieldID() == last.value.FieldID()) {
		m.focusField(m.removeHeaderBtn)
	}
	m.resize()
	return true
}

// setHeaderRows replaces every row. An empty list leaves one blank row.
func (m *Model) setHeaderRows(headers types.Headers) {
	for _, row := range m.headerRows {
		m.registry.Unmount(row.key.FieldID())
		m.registry.Unmount(row.value.FieldID())
	}
	m.headerRows = nil

	if len(headers) == 0 {
		m.addHeaderRow("", "")
		return
	}
	for _, h := range headers {
		m.addHeaderRow(h.Name, h.Value)
	}
}

// collectHeaders reads the rows back. Blank names are dropped.
func (m *Model) collectHeaders() types.Headers {
	pairs := make([]types.Header, 0, len(m.headerRows))
	for _, row := range m.headerRows {
		pairs = append(pairs, types.Header{Name: row.key.Value(), Value: row.value.Value()})
	}
	return types.NewHeaders(pairs...)
}
