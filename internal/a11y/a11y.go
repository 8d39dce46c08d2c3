// Package a11y provides best-effort screen reader announcements.
//
// Announcements are fire-and-forget: a failed or unsupported
// announcement never affects the frame loop. Each platform wires its
// own backend (speech-dispatcher on Linux, an aria-live region in the
// browser); platforms without one get a no-op.
package a11y

// Priority controls how urgently an announcement is spoken.
type Priority int

const (
	// Polite waits for current speech to finish.
	Polite Priority = iota
	// Assertive interrupts current speech.
	Assertive
)

func (p Priority) String() string {
	if p == Assertive {
		return "assertive"
	}
	return "polite"
}

// Announcer delivers text to the platform's assistive technology.
type Announcer interface {
	// Announce queues text for the screen reader. Errors indicate the
	// backend is unreachable; callers may log but must not fail.
	Announce(text string, p Priority) error

	// Close releases the backend connection.
	Close() error
}

// Nop is an Announcer for platforms without assistive technology
// support. All calls succeed and do nothing.
type Nop struct{}

func (Nop) Announce(string, Priority) error { return nil }
func (Nop) Close() error                    { return nil }

// New returns the platform announcer. It never fails; platforms
// without a backend return a Nop.
func New() Announcer {
	return newPlatformAnnouncer()
}

// Available reports whether announcements can reach a real backend on
// this host. Used to compute host capabilities; a true result is still
// best-effort since the backend can vanish later.
func Available() bool {
	return platformAvailable()
}
