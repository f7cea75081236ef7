package osk

// ActionKind is what a key press does to the target text.
type ActionKind int

const (
	ActionInsertText ActionKind = iota
	ActionBackspace
	ActionDelete
	ActionClear
	ActionSpace
)

func (k ActionKind) String() string {
	switch k {
	case ActionInsertText:
		return "insert"
	case ActionBackspace:
		return "backspace"
	case ActionDelete:
		return "delete"
	case ActionClear:
		return "clear"
	case ActionSpace:
		return "space"
	default:
		return "unknown"
	}
}

// KeyAction is a resolved key press. Text is set for ActionInsertText only.
type KeyAction struct {
	Kind ActionKind
	Text string
}

// InsertText builds an insertion action. Text may be longer than one character.
func InsertText(text string) KeyAction {
	return KeyAction{Kind: ActionInsertText, Text: text}
}

// Resolve maps a key label to the action it performs. It never fails.
func Resolve(label KeyLabel) KeyAction {
	switch label.Kind {
	case KeyBackspace:
		return KeyAction{Kind: ActionBackspace}
	case KeyDelete:
		return KeyAction{Kind: ActionDelete}
	case KeyClear:
		return KeyAction{Kind: ActionClear}
	case KeySpace:
		return KeyAction{Kind: ActionSpace}
	default:
		return InsertText(label.Text)
	}
}

// ResolveToken resolves a raw label string as reported by hosts that only
// keep the cell text around.
func ResolveToken(token string) KeyAction {
	return Resolve(ParseKeyLabel(token))
}

// appendText is what the action adds to a buffer edited in place.
func (a KeyAction) appendText() (string, bool) {
	switch a.Kind {
	case ActionInsertText:
		return a.Text, true
	case ActionSpace:
		return " ", true
	default:
		return "", false
	}
}
