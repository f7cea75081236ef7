package osk

import "github.com/BrandonKowalski/osk/pkg/osk/i18n"

const (
	captionBackspace = "KEYTEXT_BACKSPACE"
	captionDelete    = "KEYTEXT_DELETE"
	captionClear     = "KEYTEXT_CLEAR"
)

// Caption is the text shown on a key. Placeholders get a localized caption
// and the space bar shows nothing.
func Caption(label KeyLabel) string {
	switch label.Kind {
	case KeyBackspace:
		return i18n.GetString(captionBackspace)
	case KeyDelete:
		return i18n.GetString(captionDelete)
	case KeyClear:
		return i18n.GetString(captionClear)
	case KeySpace:
		return ""
	default:
		return label.Text
	}
}
