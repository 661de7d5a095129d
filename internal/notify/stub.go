//go:build !linux

package notify

// New returns a notifier that sends nothing; there is no notification bus
// outside Linux.
func New() (Notifier, error) {
	return Disabled(), nil
}
