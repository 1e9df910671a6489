//go:build darwin

package platform

import (
	"fmt"
	"os/exec"
)

// Notify posts to Notification Center through osascript. The icon in opts
// is ignored because display notification cannot show one.
func Notify(title, body string, opts Options) error {
	out, err := exec.Command("osascript", "-e", appleScript(title, body)).CombinedOutput()
	if err != nil {
		return fmt.Errorf("osascript: %w: %s", err, out)
	}
	return nil
}

func appleScript(title, body string) string {
	return fmt.Sprintf("display notification %q with title %q subtitle %q", body, title, AppName)
}
