//go:build linux

package platform

import (
	"fmt"
	"strings"

	"github.com/godbus/dbus/v5"
)

const (
	notifyDest  = "org.freedesktop.Notifications"
	notifyPath  = dbus.ObjectPath("/org/freedesktop/Notifications")
	notifyIface = "org.freedesktop.Notifications.Notify"
)

// Notify sends a desktop notification over the org.freedesktop.Notifications D-Bus interface.
func Notify(title, body string, opts Options) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("session bus: %w", err)
	}
	defer conn.Close()

	hints := map[string]dbus.Variant{}
	icon := strings.TrimSpace(opts.IconPath)
	if icon != "" {
		hints["image-path"] = dbus.MakeVariant("file://" + icon)
	}

	obj := conn.Object(notifyDest, notifyPath)
	call := obj.Call(notifyIface, 0,
		AppName, uint32(0), icon, title, body, []string{}, hints, opts.timeout())
	return call.Err
}
