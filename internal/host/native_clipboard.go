//go:build !js

package host

import (
	"bytes"
	"io"
	"sync"

	gioclipboard "gioui.org/io/clipboard"
	"gioui.org/io/transfer"

	"dirscan/internal/clipboard"
	"dirscan/internal/event"
	"dirscan/internal/logging"
)

// clipboardMIME is gio's transfer type for text clipboard content.
const clipboardMIME = "application/text"

// gioClipboard bridges clipboard requests onto gio commands. Gio's own
// clipboard is request/response (ReadCmd now, DataEvent on a later
// frame), so native results flow through the event queue exactly like
// browser ones. Requests are only valid while a frame is in flight,
// which is when the driver calls the bridge.
type gioClipboard struct {
	adapter *nativeAdapter

	mu           sync.Mutex
	pendingReads []clipboard.RequestID
}

func (c *gioClipboard) Write(id clipboard.RequestID, p clipboard.Payload) error {
	a := c.adapter
	if a.destroyed.Load() || a.frame == nil {
		return clipboard.ErrUnavailable
	}

	a.frame.Source.Execute(gioclipboard.WriteCmd{
		Type: clipboardMIME,
		Data: io.NopCloser(bytes.NewReader(p.Data)),
	})
	// Gio reports no completion for writes; submission is success.
	a.queue.Push(clipboard.Result(id, event.OutcomeOK, nil, ""))
	return nil
}

func (c *gioClipboard) Read(id clipboard.RequestID) error {
	a := c.adapter
	if a.destroyed.Load() || a.frame == nil {
		return clipboard.ErrUnavailable
	}

	c.mu.Lock()
	c.pendingReads = append(c.pendingReads, id)
	c.mu.Unlock()

	a.frame.Source.Execute(gioclipboard.ReadCmd{Tag: a})
	return nil
}

// deliver matches an incoming DataEvent with the oldest pending read.
func (c *gioClipboard) deliver(ev transfer.DataEvent) {
	c.mu.Lock()
	if len(c.pendingReads) == 0 {
		c.mu.Unlock()
		logging.Debug("clipboard data with no pending read")
		return
	}
	id := c.pendingReads[0]
	c.pendingReads = c.pendingReads[1:]
	c.mu.Unlock()

	rc := ev.Open()
	data, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		c.adapter.queue.Push(clipboard.Result(id, event.OutcomeUnavailable, nil, ""))
		return
	}
	c.adapter.queue.Push(clipboard.Result(id, event.OutcomeOK, data, "text/plain"))
}

// discardPending drops outstanding reads on teardown. No result events
// follow for them; the window that would deliver them is gone.
func (c *gioClipboard) discardPending() {
	c.mu.Lock()
	c.pendingReads = nil
	c.mu.Unlock()
}
