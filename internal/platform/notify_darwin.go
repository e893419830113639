//go:build darwin

package platform

import (
	"fmt"
	"os/exec"
	"strings"
)

// Notify posts to Notification Center through osascript. Saves also play
// the system "Glass" sound.
func Notify(title, body string, opts Options) error {
	var b strings.Builder
	fmt.Fprintf(&b, "display notification %q with title %q subtitle %q", body, title, opts.subtitle())
	if opts.Kind == KindSaved {
		b.WriteString(` sound name "Glass"`)
	}
	out, err := exec.Command("osascript", "-e", b.String()).CombinedOutput()
	if err != nil {
		return fmt.Errorf("osascript: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}
