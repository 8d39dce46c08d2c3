// Package event defines the platform-neutral input event model for dirscan.
//
// Host adapters translate native or browser input into Events; the driver
// drains them once per frame and hands them to the application in arrival
// order. Every event carries a process-wide strictly increasing sequence
// number so ordering is observable across frames.
package event

import (
	"sync/atomic"
	"time"
)

// Kind discriminates the variants of Event.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindPointerMove
	KindPointerButton
	KindScroll
	KindKey
	KindText
	KindResize
	KindFocus
	KindBlur
	KindClipboardResult
	KindCloseRequested
)

// String returns the kind name for logging.
func (k Kind) String() string {
	switch k {
	case KindPointerMove:
		return "pointer_move"
	case KindPointerButton:
		return "pointer_button"
	case KindScroll:
		return "scroll"
	case KindKey:
		return "key"
	case KindText:
		return "text"
	case KindResize:
		return "resize"
	case KindFocus:
		return "focus"
	case KindBlur:
		return "blur"
	case KindClipboardResult:
		return "clipboard_result"
	case KindCloseRequested:
		return "close_requested"
	default:
		return "unknown"
	}
}

// Modifiers is a bitmask of modifier keys held during an event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Contain reports whether all modifiers in m2 are set in m.
func (m Modifiers) Contain(m2 Modifiers) bool {
	return m&m2 == m2
}

// Button identifies a pointer button.
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// Key is a layout-independent key name. Printable keys use their
// lowercase character ("a", "1"); named keys use their DOM-style name
// ("Enter", "Escape", "ArrowUp", "Backspace", "Tab", " ").
type Key string

const (
	KeyEnter     Key = "Enter"
	KeyEscape    Key = "Escape"
	KeyBackspace Key = "Backspace"
	KeyDelete    Key = "Delete"
	KeyTab       Key = "Tab"
	KeySpace     Key = " "
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyHome       Key = "Home"
	KeyEnd        Key = "End"
	KeyPageUp     Key = "PageUp"
	KeyPageDown   Key = "PageDown"
)

// Outcome is the result of an asynchronous clipboard request.
type Outcome uint8

const (
	// OutcomeOK means the request completed and Data holds the payload
	// (reads) or the write landed on the platform clipboard.
	OutcomeOK Outcome = iota
	// OutcomeDenied means the platform refused permission.
	OutcomeDenied
	// OutcomeUnavailable means no clipboard exists in this environment.
	OutcomeUnavailable
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeDenied:
		return "denied"
	default:
		return "unavailable"
	}
}

// Event is a single input occurrence. Fields beyond Kind, Seq and Time
// are populated per kind:
//
//	PointerMove      X, Y, Mods
//	PointerButton    X, Y, Button, Pressed, Mods
//	Scroll           X, Y, DX, DY, Mods
//	Key              Key, Pressed, Mods
//	Text             Text
//	Resize           Width, Height, Scale
//	ClipboardResult  Request, Outcome, Data, MIME
//
// Coordinates and sizes are in logical pixels.
type Event struct {
	Kind Kind
	Seq  uint64
	Time time.Time

	X, Y    float32
	DX, DY  float32
	Button  Button
	Pressed bool
	Key     Key
	Text    string
	Mods    Modifiers

	Width, Height float32
	Scale         float32

	Request uint64
	Outcome Outcome
	Data    []byte
	MIME    string
}

// Discardable reports whether the event may be evicted under queue
// pressure. Only high-frequency coalescible events qualify; key and
// button events never do, so press/release pairs cannot be split.
func (e Event) Discardable() bool {
	return e.Kind == KindPointerMove || e.Kind == KindScroll
}

var seq atomic.Uint64

// NextSeq returns the next process-wide sequence number. Numbers are
// strictly increasing and never reused.
func NextSeq() uint64 {
	return seq.Add(1)
}
