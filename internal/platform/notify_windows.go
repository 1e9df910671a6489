//go:build windows

package platform

import (
	"fmt"
	"os/exec"
	"strings"
)

// Notify displays a toast notification using the Windows notification center.
// Toasts ignore TimeoutMillis.
func Notify(title, body string, opts Options) error {
	cmd := exec.Command("powershell.exe", "-NoProfile", "-NonInteractive", "-Command", toastScript(title, body, opts.IconPath))
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("powershell toast: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}
