package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubField struct {
	id   string
	kind Kind
}

func (s *stubField) FieldID() string { return s.id }
func (s *stubField) Kind() Kind      { return s.kind }

func ids(fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.FieldID()
	}
	return out
}

// workbench mounts [URL, HeaderKey0, HeaderValue0, Send]
func workbench(t *testing.T) (*Registry, map[string]*stubField) {
	t.Helper()
	fields := map[string]*stubField{
		"url":    {id: "url", kind: KindSingleLine},
		"key0":   {id: "key0", kind: KindSingleLine},
		"value0": {id: "value0", kind: KindSingleLine},
		"send":   {id: "send", kind: KindButton},
	}
	reg := NewRegistry()
	reg.Mount(Path{0}, fields["url"])
	reg.Mount(Path{1, 0, 0}, fields["key0"])
	reg.Mount(Path{1, 0, 1}, fields["value0"])
	reg.Mount(Path{2}, fields["send"])
	require.Equal(t, []string{"url", "key0", "value0", "send"}, ids(reg.Order()))
	return reg, fields
}

func TestPathCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Path
		want int
	}{
		{"equal", Path{1, 2}, Path{1, 2}, 0},
		{"sibling before", Path{0, 5}, Path{1}, -1},
		{"parent before child", Path{1}, Path{1, 0}, -1},
		{"child after parent", Path{1, 0}, Path{1}, 1},
		{"deeper index wins", Path{1, 3}, Path{1, 2, 9}, 1},
		{"empty root first", Path{}, Path{0}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
		})
	}
}

func TestPathChildDoesNotAlias(t *testing.T) {
	base := make(Path, 1, 4)
	a := base.Child(1)
	b := base.Child(2)
	assert.Equal(t, Path{0, 1}, a)
	assert.Equal(t, Path{0, 2}, b)
}

func TestRegistryOrderFiltersAndSorts(t *testing.T) {
	reg := NewRegistry()
	reg.Mount(Path{3}, &stubField{id: "label", kind: KindNone})
	reg.Mount(Path{2}, &stubField{id: "body", kind: KindMultiLine})
	reg.Mount(Path{0, 0}, &stubField{id: "method", kind: KindSelect})
	reg.Mount(Path{0, 1}, &stubField{id: "url", kind: KindSingleLine})

	assert.Equal(t, []string{"method", "url", "body"}, ids(reg.Order()))
	assert.Equal(t, 4, reg.Len())
	assert.Equal(t, 1, reg.IndexOf("url"))
	assert.Equal(t, -1, reg.IndexOf("label"))
	assert.Equal(t, -1, reg.IndexOf("missing"))
}

func TestRegistrySamePathKeepsMountOrder(t *testing.T) {
	reg := NewRegistry()
	reg.Mount(Path{1}, &stubField{id: "b", kind: KindButton})
	reg.Mount(Path{1}, &stubField{id: "a", kind: KindButton})
	assert.Equal(t, []string{"b", "a"}, ids(reg.Order()))
}

func TestRegistryRowInsertAndRemove(t *testing.T) {
	reg, _ := workbench(t)

	reg.Mount(Path{1, 1, 0}, &stubField{id: "key1", kind: KindSingleLine})
	reg.Mount(Path{1, 1, 1}, &stubField{id: "value1", kind: KindSingleLine})
	assert.Equal(t, []string{"url", "key0", "value0", "key1", "value1", "send"}, ids(reg.Order()))

	reg.Unmount("key0")
	reg.Unmount("value0")
	assert.Equal(t, []string{"url", "key1", "value1", "send"}, ids(reg.Order()))
	assert.False(t, reg.Mounted("key0"))
	assert.True(t, reg.Mounted("key1"))

	// remounting moves the field
	reg.Mount(Path{1, 0, 0}, &stubField{id: "key1", kind: KindSingleLine})
	reg.Mount(Path{1, 0, 1}, &stubField{id: "value1", kind: KindSingleLine})
	assert.Equal(t, []string{"url", "key1", "value1", "send"}, ids(reg.Order()))
	assert.Equal(t, 4, reg.Len())

	reg.Unmount("never-mounted")
	assert.Equal(t, 4, reg.Len())
}

func TestRegistryMountCopiesPath(t *testing.T) {
	reg := NewRegistry()
	p := Path{5}
	reg.Mount(p, &stubField{id: "x", kind: KindButton})
	reg.Mount(Path{1}, &stubField{id: "y", kind: KindButton})
	p[0] = 0
	assert.Equal(t, []string{"y", "x"}, ids(reg.Order()))
}

func TestResolveWorkbenchOrder(t *testing.T) {
	reg, f := workbench(t)
	engine := NewEngine(reg)

	down := engine.Resolve(f["url"], Down, TextCursor(0, 0))
	assert.Equal(t, ActionMove, down.Type)
	assert.Equal(t, "key0", down.Target.FieldID())

	up := engine.Resolve(f["url"], Up, TextCursor(0, 0))
	assert.Equal(t, ActionStay, up.Type)
	assert.Nil(t, up.Target)

	left := engine.Resolve(f["key0"], Left, TextCursor(0, 4))
	assert.Equal(t, ActionMove, left.Type)
	assert.Equal(t, "url", left.Target.FieldID())

	mid := engine.Resolve(f["value0"], Left, TextCursor(3, 5))
	assert.Equal(t, ActionNoOp, mid.Type)

	last := engine.Resolve(f["send"], Down, Cursor{})
	assert.Equal(t, ActionStay, last.Type)
}

func TestResolveSingleLine(t *testing.T) {
	reg, f := workbench(t)
	engine := NewEngine(reg)

	tests := []struct {
		name     string
		dir      Direction
		cursor   Cursor
		wantType ActionType
		wantID   string
	}{
		{"right at end", Right, TextCursor(5, 5), ActionMove, "value0"},
		{"right mid", Right, TextCursor(2, 5), ActionNoOp, ""},
		{"left mid", Left, TextCursor(2, 5), ActionNoOp, ""},
		{"left at start", Left, TextCursor(0, 5), ActionMove, "url"},
		{"up ignores cursor", Up, TextCursor(2, 5), ActionMove, "url"},
		{"down ignores cursor", Down, TextCursor(2, 5), ActionMove, "value0"},
		{"empty field right", Right, TextCursor(0, 0), ActionMove, "value0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Resolve(f["key0"], tt.dir, tt.cursor)
			require.Equal(t, tt.wantType, got.Type)
			if tt.wantID != "" {
				assert.Equal(t, tt.wantID, got.Target.FieldID())
			}
		})
	}
}

func TestResolveButtons(t *testing.T) {
	reg := NewRegistry()
	a := &stubField{id: "add", kind: KindButton}
	b := &stubField{id: "remove", kind: KindButton}
	c := &stubField{id: "send", kind: KindButton}
	reg.Mount(Path{0}, a)
	reg.Mount(Path{1}, b)
	reg.Mount(Path{2}, c)
	engine := NewEngine(reg)

	for _, dir := range []Direction{Up, Left} {
		got := engine.Resolve(b, dir, Cursor{})
		require.Equal(t, ActionMove, got.Type, dir.String())
		assert.Equal(t, "add", got.Target.FieldID())
	}
	for _, dir := range []Direction{Down, Right} {
		got := engine.Resolve(b, dir, Cursor{})
		require.Equal(t, ActionMove, got.Type, dir.String())
		assert.Equal(t, "send", got.Target.FieldID())
	}
	assert.Equal(t, ActionStay, engine.Resolve(a, Left, Cursor{}).Type)
	assert.Equal(t, ActionStay, engine.Resolve(c, Right, Cursor{}).Type)
}

func TestResolveSelect(t *testing.T) {
	reg := NewRegistry()
	method := &stubField{id: "method", kind: KindSelect}
	url := &stubField{id: "url", kind: KindSingleLine}
	reg.Mount(Path{0}, method)
	reg.Mount(Path{1}, url)
	engine := NewEngine(reg)

	assert.Equal(t, ActionNoOp, engine.Resolve(method, Left, Cursor{}).Type)
	assert.Equal(t, ActionNoOp, engine.Resolve(method, Right, Cursor{}).Type)
	assert.Equal(t, ActionStay, engine.Resolve(method, Up, Cursor{}).Type)

	down := engine.Resolve(method, Down, Cursor{})
	require.Equal(t, ActionMove, down.Type)
	assert.Equal(t, "url", down.Target.FieldID())
}

func TestResolveMultiLine(t *testing.T) {
	reg := NewRegistry()
	headers := &stubField{id: "value0", kind: KindSingleLine}
	body := &stubField{id: "body", kind: KindMultiLine}
	send := &stubField{id: "send", kind: KindButton}
	reg.Mount(Path{0}, headers)
	reg.Mount(Path{1}, body)
	reg.Mount(Path{2}, send)
	engine := NewEngine(reg)

	tests := []struct {
		name     string
		dir      Direction
		cursor   Cursor
		wantType ActionType
	}{
		{"up on first line", Up, LineCursor(0, 3, 3, 4), ActionMove},
		{"up on later line", Up, LineCursor(1, 0, 3, 4), ActionNoOp},
		{"left at origin", Left, LineCursor(0, 0, 3, 4), ActionMove},
		{"left at column 0 of second line", Left, LineCursor(1, 0, 3, 4), ActionNoOp},
		{"left mid first line", Left, LineCursor(0, 2, 3, 4), ActionNoOp},
		{"down on last line", Down, LineCursor(2, 4, 3, 4), ActionNoOp},
		{"right at very end", Right, LineCursor(2, 4, 3, 4), ActionNoOp},
		{"down in empty body", Down, LineCursor(0, 0, 1, 0), ActionNoOp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Resolve(body, tt.dir, tt.cursor)
			require.Equal(t, tt.wantType, got.Type)
			if tt.wantType == ActionMove {
				assert.Equal(t, "value0", got.Target.FieldID())
			}
		})
	}
}

func TestResolveUnmountedCurrent(t *testing.T) {
	reg, f := workbench(t)
	engine := NewEngine(reg)

	reg.Unmount("key0")
	assert.Equal(t, ActionStay, engine.Resolve(f["key0"], Down, Cursor{}).Type)
	assert.Equal(t, ActionStay, engine.Resolve(nil, Down, Cursor{}).Type)

	// url now goes straight to value0
	got := engine.Resolve(f["url"], Down, Cursor{})
	require.Equal(t, ActionMove, got.Type)
	assert.Equal(t, "value0", got.Target.FieldID())
}

func TestResolveSeesNewRows(t *testing.T) {
	reg, f := workbench(t)
	engine := NewEngine(reg)

	key1 := &stubField{id: "key1", kind: KindSingleLine}
	reg.Mount(Path{1, 1, 0}, key1)

	got := engine.Resolve(f["value0"], Down, Cursor{})
	require.Equal(t, ActionMove, got.Type)
	assert.Equal(t, "key1", got.Target.FieldID())
}

func TestLineCursor(t *testing.T) {
	assert.Equal(t, Cursor{AtStart: true, AtEnd: true, OnFirstLine: true, OnLastLine: true}, TextCursor(0, 0))
	assert.Equal(t, Cursor{AtStart: false, AtEnd: true, OnFirstLine: true, OnLastLine: true}, TextCursor(5, 5))
	assert.Equal(t, Cursor{OnFirstLine: false, OnLastLine: false}, LineCursor(1, 0, 3, 2))
	assert.Equal(t, Cursor{AtEnd: true, OnLastLine: true}, LineCursor(2, 2, 3, 2))
	assert.Equal(t, Cursor{AtStart: true, OnFirstLine: true}, LineCursor(0, 0, 2, 9))
}

type cursorField struct {
	stubField
	c Cursor
}

func (c *cursorField) Cursor() Cursor { return c.c }

func TestCursorOf(t *testing.T) {
	assert.Equal(t, Cursor{}, CursorOf(&stubField{id: "b", kind: KindButton}))
	f := &cursorField{stubField: stubField{id: "t", kind: KindSingleLine}, c: TextCursor(0, 3)}
	assert.Equal(t, TextCursor(0, 3), CursorOf(f))
}
