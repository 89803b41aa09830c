// Package navigation maps directional key input onto an ordered,
// dynamically changing set of editable fields. It decides whether a key
// moves focus to another field or is left to the focused field's own
// cursor handling.
package navigation

// Kind is the capability tag of a navigable field
type Kind int

const (
	KindNone Kind = iota
	KindSelect
	KindSingleLine
	KindMultiLine
	KindButton
)

func (k Kind) String() string {
	switch k {
	case KindSelect:
		return "select"
	case KindSingleLine:
		return "single-line-text"
	case KindMultiLine:
		return "multi-line-text"
	case KindButton:
		return "button"
	default:
		return "none"
	}
}

// Navigable reports whether fields of this kind take part in traversal
func (k Kind) Navigable() bool {
	return k >= KindSelect && k <= KindButton
}

// Direction is an arrow key
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Cursor is the boundary state of a text-bearing field at key time.
// It is ignored for selects and buttons.
type Cursor struct {
	AtStart     bool
	AtEnd       bool
	OnFirstLine bool
	OnLastLine  bool
}

// Field is anything that can hold focus
type Field interface {
	FieldID() string
	Kind() Kind
}

// CursorReporter is implemented by text fields that can report their own
// cursor boundaries
type CursorReporter interface {
	Cursor() Cursor
}

// CursorOf returns the field's cursor state, or the zero Cursor
func CursorOf(f Field) Cursor {
	if r, ok := f.(CursorReporter); ok {
		return r.Cursor()
	}
	return Cursor{}
}

// LineCursor computes the boundary state for a cursor at (line, col) in a
// field with the given number of lines, where lastLineLen is the rune length
// of the final line
func LineCursor(line, col, lineCount, lastLineLen int) Cursor {
	if lineCount < 1 {
		lineCount = 1
	}
	onFirst := line <= 0
	onLast := line >= lineCount-1
	return Cursor{
		AtStart:     onFirst && col <= 0,
		AtEnd:       onLast && col >= lastLineLen,
		OnFirstLine: onFirst,
		OnLastLine:  onLast,
	}
}

// TextCursor is LineCursor for a single-line field
func TextCursor(pos, length int) Cursor {
	return LineCursor(0, pos, 1, length)
}
