//go:build windows

package platform

import (
	"github.com/go-toast/toast"
)

// Notify displays a toast notification using the Windows notification center.
func Notify(title, body string, opts Options) error {
	n := toast.Notification{
		AppID:   AppName,
		Title:   title,
		Message: body,
		Icon:    opts.IconPath,
	}
	if opts.Kind == KindSaved && opts.IconPath != "" {
		n.ActivationArguments = opts.IconPath
	}
	if opts.TimeoutMillis > 10000 {
		n.Duration = toast.Long
	}
	return n.Push()
}
