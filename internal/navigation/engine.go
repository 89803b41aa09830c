package navigation

// ActionType says what the caller should do with a directional key
type ActionType int

const (
	// ActionMove moves focus to Action.Target
	ActionMove ActionType = iota
	// ActionNoOp leaves the key to the focused field
	ActionNoOp
	// ActionStay swallows the key: there is nowhere to go
	ActionStay
)

func (t ActionType) String() string {
	switch t {
	case ActionMove:
		return "move"
	case ActionNoOp:
		return "noop"
	case ActionStay:
		return "stay"
	default:
		return "unknown"
	}
}

// Action is the result of resolving one key
type Action struct {
	Type   ActionType
	Target Field
}

// Engine resolves directional keys against a Registry. It keeps no state
// of its own.
type Engine struct {
	registry *Registry
}

// NewEngine creates an engine reading from registry
func NewEngine(registry *Registry) *Engine {
	return &Engine{registry: registry}
}

// Resolve decides what dir does when current has focus and its cursor is
// in the given state
func (e *Engine) Resolve(current Field, dir Direction, cursor Cursor) Action {
	if current == nil {
		return Action{Type: ActionStay}
	}

	order := e.registry.Order()
	idx := -1
	for i, f := range order {
		if f.FieldID() == current.FieldID() {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Action{Type: ActionStay}
	}

	prev := func() Action {
		if idx == 0 {
			return Action{Type: ActionStay}
		}
		return Action{Type: ActionMove, Target: order[idx-1]}
	}
	next := func() Action {
		if idx == len(order)-1 {
			return Action{Type: ActionStay}
		}
		return Action{Type: ActionMove, Target: order[idx+1]}
	}
	noop := Action{Type: ActionNoOp}

	switch current.Kind() {
	case KindButton:
		if dir == Up || dir == Left {
			return prev()
		}
		return next()

	case KindSelect:
		switch dir {
		case Up:
			return prev()
		case Down:
			return next()
		}
		return noop

	case KindSingleLine:
		switch dir {
		case Up:
			return prev()
		case Down:
			return next()
		case Left:
			if cursor.AtStart {
				return prev()
			}
		case Right:
			if cursor.AtEnd {
				return next()
			}
		}
		return noop

	case KindMultiLine:
		switch dir {
		case Up:
			if cursor.OnFirstLine {
				return prev()
			}
		case Left:
			if cursor.AtStart && cursor.OnFirstLine {
				return prev()
			}
		}
		return noop
	}

	return Action{Type: ActionStay}
}
