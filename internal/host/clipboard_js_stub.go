//go:build js && wasm && !webclipboard

package host

import "dirscan/internal/clipboard"

// Without the webclipboard build tag the browser build carries no
// clipboard code at all; requests fail fast with ErrUnavailable and
// Capabilities().Clipboard reports false.
func newJSClipboard(*jsAdapter) clipboard.Bridge {
	return clipboard.Nop{}
}
