package alert

// ActionStyle tags how an action is drawn and where it is placed.
type ActionStyle int

const (
	ActionNormal ActionStyle = iota

	// ActionPreferred marks the distinguished action. In an action sheet it
	// is the one moved to the cancel block.
	ActionPreferred

	ActionDestructive
)

func (s ActionStyle) String() string {
	switch s {
	case ActionNormal:
		return "normal"
	case ActionPreferred:
		return "preferred"
	case ActionDestructive:
		return "destructive"
	default:
		return "unknown"
	}
}

// Action is one button of an alert. Actions are compared by identity.
type Action struct {
	Title   string
	Style   ActionStyle
	Handler func(*Action)
}

// NewAction creates an action.
func NewAction(title string, style ActionStyle, handler func(*Action)) *Action {
	return &Action{Title: title, Style: style, Handler: handler}
}

// ExtractCancelAction picks the action that goes into an action sheet's
// cancel block and returns it with the remaining actions in their original
// order. The first preferred action wins; without one the first action is
// used. The input slice is not modified. An empty input yields (nil, nil).
func ExtractCancelAction(actions []*Action) (*Action, []*Action) {
	if len(actions) == 0 {
		return nil, nil
	}

	index := 0
	for i, a := range actions {
		if a.Style == ActionPreferred {
			index = i
			break
		}
	}

	rest := make([]*Action, 0, len(actions)-1)
	rest = append(rest, actions[:index]...)
	rest = append(rest, actions[index+1:]...)
	return actions[index], rest
}
