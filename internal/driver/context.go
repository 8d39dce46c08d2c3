package driver

import (
	"time"

	"dirscan/internal/a11y"
	"dirscan/internal/clipboard"
	"dirscan/internal/event"
	"dirscan/internal/host"
)

// Context carries one frame's input to the application and collects its
// requests. A Context is built fresh every tick and must not be
// retained past the Frame call; requests made after Frame returns are
// ignored.
type Context struct {
	// Events are this frame's input events in arrival order.
	Events []event.Event

	// Now is the host's frame timestamp.
	Now time.Time

	// Delta is the time since the previous frame, zero on the first.
	Delta time.Duration

	// Width and Height are the viewport in logical pixels.
	Width, Height float32

	// Scale is the device-to-logical pixel ratio.
	Scale float32

	// Mods is the modifier state as of the newest input seen.
	Mods event.Modifiers

	caps host.Capabilities
	out  requests
	done bool
}

// Capabilities reports what the host supports this session.
func (c *Context) Capabilities() host.Capabilities {
	return c.caps
}

// RequestRedraw asks for another frame immediately after this one.
func (c *Context) RequestRedraw() {
	if c.done {
		return
	}
	c.out.redraw = true
}

// WriteClipboard requests a clipboard write. The returned ID matches
// the ClipboardResult event delivered on a later frame.
func (c *Context) WriteClipboard(p clipboard.Payload) clipboard.RequestID {
	id := clipboard.NextRequestID()
	if c.done {
		return id
	}
	c.out.writes = append(c.out.writes, clipWrite{id: id, payload: p})
	return id
}

// ReadClipboard requests the clipboard content. The returned ID matches
// the ClipboardResult event delivered on a later frame.
func (c *Context) ReadClipboard() clipboard.RequestID {
	id := clipboard.NextRequestID()
	if c.done {
		return id
	}
	c.out.reads = append(c.out.reads, id)
	return id
}

// Announce queues a screen reader announcement. Fire-and-forget.
func (c *Context) Announce(text string, p a11y.Priority) {
	if c.done {
		return
	}
	c.out.announcements = append(c.out.announcements, announcement{text: text, priority: p})
}

// take finalizes the context and hands its requests to the driver.
func (c *Context) take() requests {
	c.done = true
	out := c.out
	c.out = requests{}
	return out
}
