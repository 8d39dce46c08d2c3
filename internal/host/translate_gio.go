package host

import (
	"unicode"
	"unicode/utf8"

	"gioui.org/io/key"
	"gioui.org/io/pointer"

	"dirscan/internal/event"
	"dirscan/internal/logging"
)

// gioKeyNames maps gioui key names for named keys.
var gioKeyNames = map[key.Name]event.Key{
	key.NameReturn:         event.KeyEnter,
	key.NameEnter:          event.KeyEnter,
	key.NameEscape:         event.KeyEscape,
	key.NameDeleteBackward: event.KeyBackspace,
	key.NameDeleteForward:  event.KeyDelete,
	key.NameTab:            event.KeyTab,
	key.NameSpace:          event.KeySpace,
	key.NameUpArrow:        event.KeyArrowUp,
	key.NameDownArrow:      event.KeyArrowDown,
	key.NameLeftArrow:      event.KeyArrowLeft,
	key.NameRightArrow:     event.KeyArrowRight,
	key.NameHome:           event.KeyHome,
	key.NameEnd:            event.KeyEnd,
	key.NamePageUp:         event.KeyPageUp,
	key.NamePageDown:       event.KeyPageDown,
}

var gioModifierKeys = map[key.Name]bool{
	key.NameShift:   true,
	key.NameCtrl:    true,
	key.NameAlt:     true,
	key.NameSuper:   true,
	key.NameCommand: true,
}

// translateGioKey converts a gioui key name. ok is false when the key
// produces no neutral event.
func translateGioKey(raw key.Name) (event.Key, bool) {
	if k, found := gioKeyNames[raw]; found {
		return k, true
	}
	if gioModifierKeys[raw] {
		return "", false
	}
	s := string(raw)
	if r, size := utf8.DecodeRuneInString(s); size == len(s) && unicode.IsPrint(r) {
		return event.Key(string(unicode.ToLower(r))), true
	}
	unrecognizedInput.Inc()
	logging.Debug("dropping unrecognized key", "raw", s, "source", "gio")
	return "", false
}

// translateGioModifiers converts gioui modifier state.
func translateGioModifiers(m key.Modifiers) event.Modifiers {
	var out event.Modifiers
	if m.Contain(key.ModShift) {
		out |= event.ModShift
	}
	if m.Contain(key.ModCtrl) {
		out |= event.ModCtrl
	}
	if m.Contain(key.ModAlt) {
		out |= event.ModAlt
	}
	if m.Contain(key.ModSuper) || m.Contain(key.ModCommand) {
		out |= event.ModMeta
	}
	return out
}

// translateGioButton converts the button bit that changed on a
// press/release. ok is false for buttons outside the neutral set.
func translateGioButton(b pointer.Buttons) (event.Button, bool) {
	switch b {
	case pointer.ButtonPrimary:
		return event.ButtonLeft, true
	case pointer.ButtonSecondary:
		return event.ButtonRight, true
	case pointer.ButtonTertiary:
		return event.ButtonMiddle, true
	default:
		unrecognizedInput.Inc()
		logging.Debug("dropping unrecognized button", "raw", int(b), "source", "gio")
		return 0, false
	}
}
