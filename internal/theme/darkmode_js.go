//go:build js && wasm

package theme

import "syscall/js"

func darkPreferred() bool {
	matchMedia := js.Global().Get("matchMedia")
	if !matchMedia.Truthy() {
		return false
	}
	return js.Global().Call("matchMedia", "(prefers-color-scheme: dark)").Get("matches").Bool()
}
