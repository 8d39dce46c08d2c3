//go:build js && wasm && webclipboard

package host

import (
	"strings"
	"syscall/js"

	"dirscan/internal/clipboard"
	"dirscan/internal/event"
)

// Browser clipboard support is opt-in: the async clipboard API is
// permission-gated and not uniformly available, so builds without the
// webclipboard tag leave it out entirely.

type jsClipboard struct {
	adapter *jsAdapter
	api     js.Value
}

func newJSClipboard(a *jsAdapter) clipboard.Bridge {
	api := js.Global().Get("navigator").Get("clipboard")
	if !api.Truthy() {
		return clipboard.Nop{}
	}
	return &jsClipboard{adapter: a, api: api}
}

func (c *jsClipboard) Write(id clipboard.RequestID, p clipboard.Payload) error {
	if !p.IsText() {
		return clipboard.ErrUnavailable
	}
	c.settle(c.api.Call("writeText", p.Text()), id)
	return nil
}

func (c *jsClipboard) Read(id clipboard.RequestID) error {
	c.settle(c.api.Call("readText"), id)
	return nil
}

// settle attaches fulfillment handlers that push the ClipboardResult.
// Each handler releases itself after its single invocation.
func (c *jsClipboard) settle(promise js.Value, id clipboard.RequestID) {
	var onOK, onErr js.Func
	onOK = js.FuncOf(func(this js.Value, args []js.Value) any {
		defer onOK.Release()
		var data []byte
		mime := ""
		if len(args) > 0 && args[0].Type() == js.TypeString {
			data = []byte(args[0].String())
			mime = "text/plain"
		}
		c.adapter.queue.Push(clipboard.Result(id, event.OutcomeOK, data, mime))
		return nil
	})
	onErr = js.FuncOf(func(this js.Value, args []js.Value) any {
		defer onErr.Release()
		c.adapter.queue.Push(clipboard.Result(id, rejectionOutcome(args), nil, ""))
		return nil
	})
	promise.Call("then", onOK, onErr)
}

// rejectionOutcome classifies a clipboard promise rejection. Permission
// refusals surface as NotAllowedError; everything else means the API is
// unusable here.
func rejectionOutcome(args []js.Value) event.Outcome {
	if len(args) == 0 {
		return event.OutcomeUnavailable
	}
	name := args[0].Get("name")
	if name.Type() == js.TypeString {
		switch {
		case name.String() == "NotAllowedError":
			return event.OutcomeDenied
		case strings.Contains(name.String(), "Security"):
			return event.OutcomeDenied
		}
	}
	return event.OutcomeUnavailable
}
