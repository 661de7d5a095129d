//go:build windows

package stderr

// Start does nothing on Windows: the audio backend reports errors through
// return values there, so Messages stays empty.
func Start() error { return nil }

// Stop does nothing on Windows.
func Stop() {}
