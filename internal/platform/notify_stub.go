//go:build !linux && !darwin && !windows

package platform

// Notify drops the message on platforms without a known notification
// service, so saving and copying still report success.
func Notify(string, string, Options) error { return nil }
