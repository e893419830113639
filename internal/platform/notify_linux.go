//go:build linux

package platform

import (
	"github.com/godbus/dbus/v5"
)

const defaultTimeoutMillis = 5000

// Notify sends a desktop notification over the Freedesktop.org notifications D-Bus interface.
func Notify(title, body string, opts Options) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return err
	}
	defer conn.Close()

	timeout := opts.TimeoutMillis
	if timeout <= 0 {
		timeout = defaultTimeoutMillis
	}
	hints := map[string]dbus.Variant{}
	switch opts.Kind {
	case KindSaved:
		hints["category"] = dbus.MakeVariant("transfer.complete")
	case KindCopied:
		hints["category"] = dbus.MakeVariant("transfer")
		hints["transient"] = dbus.MakeVariant(true)
	}
	obj := conn.Object("org.freedesktop.Notifications", "/org/freedesktop/Notifications")
	call := obj.Call("org.freedesktop.Notifications.Notify", 0,
		AppName, uint32(0), opts.IconPath, title, body, []string{}, hints, timeout)
	return call.Err
}
