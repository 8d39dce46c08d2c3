//go:build !linux && !js

package a11y

// Screen reader output is not wired up on this platform yet.
func newPlatformAnnouncer() Announcer {
	return Nop{}
}

func platformAvailable() bool { return false }
