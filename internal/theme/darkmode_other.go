//go:build !linux && !js

package theme

// No preference source wired up on this platform.
func darkPreferred() bool { return false }
