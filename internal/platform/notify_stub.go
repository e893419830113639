//go:build !linux && !darwin && !windows

package platform

import "log"

// Notify has no desktop service to talk to here, so the message only goes
// to the log.
func Notify(title, body string, _ Options) error {
	log.Printf("%s: %s", title, body)
	return nil
}
