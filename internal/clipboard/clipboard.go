// Package clipboard defines the asynchronous clipboard bridge.
//
// Platform clipboards are permissioned and asynchronous, so reads and
// writes never return data directly. The application submits a request
// tagged with a RequestID; the host delivers a ClipboardResult event
// carrying the same ID on a later frame. Every request produces exactly
// one result, even on failure.
package clipboard

import (
	"errors"
	"sync/atomic"

	"dirscan/internal/event"
)

// ErrUnavailable is reported when no clipboard exists in this
// environment or the required opt-in is missing.
var ErrUnavailable = errors.New("clipboard: unavailable")

// RequestID correlates a clipboard request with its result event.
// IDs are process-wide unique and never reused.
type RequestID uint64

var requestID atomic.Uint64

// NextRequestID returns the next request ID.
func NextRequestID() RequestID {
	return RequestID(requestID.Add(1))
}

// Payload is clipboard content with its MIME type.
type Payload struct {
	MIME string
	Data []byte
}

// TextPayload builds a text/plain payload.
func TextPayload(s string) Payload {
	return Payload{MIME: "text/plain", Data: []byte(s)}
}

// IsText reports whether the payload holds plain text.
func (p Payload) IsText() bool {
	return p.MIME == "" || p.MIME == "text/plain"
}

// Text returns the payload as a string.
func (p Payload) Text() string {
	return string(p.Data)
}

// Bridge submits clipboard requests to a host. Both methods return
// quickly; the outcome arrives as a ClipboardResult event with the
// given ID. An immediate error means the request could not even be
// submitted and no result event will follow.
type Bridge interface {
	// Write places p on the platform clipboard.
	Write(id RequestID, p Payload) error

	// Read requests the current clipboard content.
	Read(id RequestID) error
}

// Result builds the ClipboardResult event for a completed request.
// Data and mime are only meaningful for successful reads.
func Result(id RequestID, outcome event.Outcome, data []byte, mime string) event.Event {
	return event.Event{
		Kind:    event.KindClipboardResult,
		Seq:     event.NextSeq(),
		Request: uint64(id),
		Outcome: outcome,
		Data:    data,
		MIME:    mime,
	}
}

// Nop is a Bridge for hosts without clipboard access. Requests are
// rejected immediately with ErrUnavailable.
type Nop struct{}

func (Nop) Write(RequestID, Payload) error { return ErrUnavailable }
func (Nop) Read(RequestID) error           { return ErrUnavailable }
