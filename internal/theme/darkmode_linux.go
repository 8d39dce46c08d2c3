//go:build linux && !js

package theme

import (
	"github.com/godbus/dbus/v5"

	"dirscan/internal/logging"
)

const (
	portalDest      = "org.freedesktop.portal.Desktop"
	portalPath      = "/org/freedesktop/portal/desktop"
	settingsIface   = "org.freedesktop.portal.Settings"
	appearanceNS    = "org.freedesktop.appearance"
	colorSchemeKey  = "color-scheme"
	colorSchemeDark = uint32(1)
)

// darkPreferred asks the XDG desktop portal for the color-scheme
// preference. Any failure means no preference.
func darkPreferred() bool {
	conn, err := dbus.SessionBus()
	if err != nil {
		logging.Debug("no session bus for color scheme", "err", err)
		return false
	}

	obj := conn.Object(portalDest, dbus.ObjectPath(portalPath))

	var value dbus.Variant
	err = obj.Call(settingsIface+".ReadOne", 0, appearanceNS, colorSchemeKey).Store(&value)
	if err != nil {
		// Older portals only implement Read, which double-wraps the
		// variant.
		var outer dbus.Variant
		if err := obj.Call(settingsIface+".Read", 0, appearanceNS, colorSchemeKey).Store(&outer); err != nil {
			logging.Debug("portal color scheme unavailable", "err", err)
			return false
		}
		inner, ok := outer.Value().(dbus.Variant)
		if !ok {
			return false
		}
		value = inner
	}

	scheme, ok := value.Value().(uint32)
	return ok && scheme == colorSchemeDark
}
