package platform

import (
	"strings"
	"testing"
)

func TestOptionsTimeout(t *testing.T) {
	if got := (Options{}).timeout(); got != 5000 {
		t.Fatalf("default timeout = %d", got)
	}
	if got := (Options{TimeoutMillis: 1200}).timeout(); got != 1200 {
		t.Fatalf("custom timeout = %d", got)
	}
}

func TestToastScript(t *testing.T) {
	plain := toastScript("Sketchpad", "Saved it's.png", "")
	if !strings.Contains(plain, "ToastText02") || strings.Contains(plain, "SetAttribute") {
		t.Fatalf("unexpected plain toast: %s", plain)
	}
	if !strings.Contains(plain, "'Saved it''s.png'") {
		t.Fatalf("body not quoted: %s", plain)
	}
	withIcon := toastScript("Sketchpad", "Saved", `C:\tmp\a.png`)
	if !strings.Contains(withIcon, "ToastImageAndText02") || !strings.Contains(withIcon, `'C:\tmp\a.png'`) {
		t.Fatalf("unexpected icon toast: %s", withIcon)
	}
}
