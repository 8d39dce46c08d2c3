//go:build js && wasm

package a11y

import (
	"sync"
	"syscall/js"
)

// liveRegionAnnouncer speaks through hidden aria-live DOM regions.
// Screen readers pick up text changes in the regions automatically;
// one region per priority so an assertive announcement does not
// reorder pending polite ones.
type liveRegionAnnouncer struct {
	mu      sync.Mutex
	regions map[Priority]js.Value
}

func platformAvailable() bool {
	return js.Global().Get("document").Truthy()
}

func newPlatformAnnouncer() Announcer {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return Nop{}
	}

	a := &liveRegionAnnouncer{regions: make(map[Priority]js.Value)}
	for _, p := range []Priority{Polite, Assertive} {
		region := doc.Call("createElement", "div")
		region.Call("setAttribute", "aria-live", p.String())
		region.Call("setAttribute", "role", "status")
		style := region.Get("style")
		style.Set("position", "absolute")
		style.Set("width", "1px")
		style.Set("height", "1px")
		style.Set("overflow", "hidden")
		style.Set("clip-path", "inset(50%)")
		doc.Get("body").Call("appendChild", region)
		a.regions[p] = region
	}
	return a
}

func (a *liveRegionAnnouncer) Announce(text string, p Priority) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	region, ok := a.regions[p]
	if !ok {
		return nil
	}
	// Clear first so repeating the same text still fires a change.
	region.Set("textContent", "")
	region.Set("textContent", text)
	return nil
}

func (a *liveRegionAnnouncer) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, region := range a.regions {
		parent := region.Get("parentNode")
		if parent.Truthy() {
			parent.Call("removeChild", region)
		}
	}
	a.regions = nil
	return nil
}
