package host

import (
	"unicode"
	"unicode/utf8"

	"dirscan/internal/event"
	"dirscan/internal/logging"
	"dirscan/internal/metrics"
)

// Both adapters funnel raw key identifiers through these tables so the
// application sees one key vocabulary regardless of host. Unrecognized
// identifiers are dropped, counted, and logged at debug; they are never
// an error.

var unrecognizedInput = metrics.GetCounter(
	"dirscan_input_unrecognized_total",
	"Raw input identifiers with no neutral translation",
)

// domKeyNames maps DOM KeyboardEvent.key values for named keys. Values
// shared with event.Key by construction still go through the table so
// unknown names are caught.
var domKeyNames = map[string]event.Key{
	"Enter":      event.KeyEnter,
	"Escape":     event.KeyEscape,
	"Backspace":  event.KeyBackspace,
	"Delete":     event.KeyDelete,
	"Tab":        event.KeyTab,
	" ":          event.KeySpace,
	"ArrowUp":    event.KeyArrowUp,
	"ArrowDown":  event.KeyArrowDown,
	"ArrowLeft":  event.KeyArrowLeft,
	"ArrowRight": event.KeyArrowRight,
	"Home":       event.KeyHome,
	"End":        event.KeyEnd,
	"PageUp":     event.KeyPageUp,
	"PageDown":   event.KeyPageDown,
}

// domModifierKeys are keys that only report modifier state. They are
// recognized but not dispatched; modifier state rides on other events.
var domModifierKeys = map[string]bool{
	"Shift":    true,
	"Control":  true,
	"Alt":      true,
	"Meta":     true,
	"CapsLock": true,
	"NumLock":  true,
}

// translateDOMKey converts a DOM KeyboardEvent.key value. ok is false
// when the key produces no neutral event.
func translateDOMKey(raw string) (event.Key, bool) {
	if k, found := domKeyNames[raw]; found {
		return k, true
	}
	if domModifierKeys[raw] {
		return "", false
	}
	if r, size := utf8.DecodeRuneInString(raw); size == len(raw) && unicode.IsPrint(r) {
		return event.Key(string(unicode.ToLower(r))), true
	}
	unrecognizedInput.Inc()
	logging.Debug("dropping unrecognized key", "raw", raw, "source", "dom")
	return "", false
}

// translateDOMButton converts MouseEvent.button.
func translateDOMButton(raw int) (event.Button, bool) {
	switch raw {
	case 0:
		return event.ButtonLeft, true
	case 1:
		return event.ButtonMiddle, true
	case 2:
		return event.ButtonRight, true
	default:
		unrecognizedInput.Inc()
		logging.Debug("dropping unrecognized button", "raw", raw, "source", "dom")
		return 0, false
	}
}
