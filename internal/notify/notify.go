package notify

import (
	"image"
	"image/png"
	"log"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/sketchpad/internal/platform"
)

// Event identifies a notification trigger.
type Event string

const (
	// EventSave emits a notification when a sketch is written to disk.
	EventSave Event = "save"
	// EventCopy emits a notification when a sketch is copied to the clipboard.
	EventCopy Event = "copy"
)

// EventPreference describes formatting for a notification event.
type EventPreference struct {
	Template string
}

// Preferences describes notification behaviour loaded from configuration.
type Preferences struct {
	Title  string
	Events map[Event]EventPreference
}

// DefaultPreferences returns the default notification settings.
func DefaultPreferences() Preferences {
	return Preferences{
		Title: platform.AppName,
		Events: map[Event]EventPreference{
			EventSave: {Template: "Saved %s"},
			EventCopy: {Template: "Copied %s to clipboard"},
		},
	}
}

// LoadPreferences reads overrides from SKETCHPAD_NOTIFY_* environment variables.
func LoadPreferences() Preferences {
	prefs := DefaultPreferences()
	if v := strings.TrimSpace(os.Getenv("SKETCHPAD_NOTIFY_TITLE")); v != "" {
		prefs.Title = v
	}
	apply := func(key string, event Event) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			eventPrefs := prefs.Events[event]
			eventPrefs.Template = v
			prefs.Events[event] = eventPrefs
		}
	}
	apply("SKETCHPAD_NOTIFY_SAVE_TEXT", EventSave)
	apply("SKETCHPAD_NOTIFY_COPY_TEXT", EventCopy)
	return prefs
}

// Sender delivers a rendered notification. platform.Notify is the default.
type Sender func(title, body string, opts platform.Options) error

// Notifier sends OS-level notifications based on the configured preferences.
// A nil *Notifier is valid and never notifies.
type Notifier struct {
	prefs   Preferences
	enabled map[Event]bool
	send    Sender
}

// New creates a new Notifier using the provided preferences.
func New(prefs Preferences) *Notifier {
	prefs.Events = maps.Clone(prefs.Events)
	return &Notifier{prefs: prefs, enabled: map[Event]bool{}, send: platform.Notify}
}

// WithSender replaces the delivery function and returns n.
func (n *Notifier) WithSender(s Sender) *Notifier {
	if n != nil && s != nil {
		n.send = s
	}
	return n
}

// Enable toggles the notifier for the provided event.
func (n *Notifier) Enable(event Event, enabled bool) {
	if n == nil {
		return
	}
	if n.enabled == nil {
		n.enabled = make(map[Event]bool)
	}
	n.enabled[event] = enabled
}

// Save sends a save notification including the written filename. The saved
// file doubles as the notification icon when it exists.
func (n *Notifier) Save(path string) {
	if !n.enabledFor(EventSave) {
		return
	}
	detail := strings.TrimSpace(path)
	opts := platform.Options{}
	if abs, err := filepath.Abs(path); err == nil {
		detail = abs
		if _, statErr := os.Stat(abs); statErr == nil {
			opts.IconPath = abs
		}
	}
	n.dispatch(EventSave, detail, opts)
}

// Copy sends a clipboard notification with an optional preview of img.
func (n *Notifier) Copy(detail string, img image.Image) {
	if !n.enabledFor(EventCopy) {
		return
	}
	if strings.TrimSpace(detail) == "" {
		detail = "sketch"
	}
	opts := platform.Options{}
	if img != nil {
		if path, cleanup, err := createPreview(img); err != nil {
			log.Printf("notification preview: %v", err)
		} else {
			defer cleanup()
			opts.IconPath = path
		}
	}
	n.dispatch(EventCopy, detail, opts)
}

func (n *Notifier) enabledFor(event Event) bool {
	return n != nil && n.enabled[event]
}

func (n *Notifier) dispatch(event Event, detail string, opts platform.Options) {
	body := strings.TrimSpace(render(n.prefs.Events[event].Template, strings.TrimSpace(detail)))
	if body == "" {
		return
	}
	send := n.send
	if send == nil {
		send = platform.Notify
	}
	if err := send(n.prefs.Title, body, opts); err != nil {
		log.Printf("notification %s: %v", event, err)
	}
}

// render substitutes detail for the first %s. Templates without one are used
// verbatim.
func render(template, detail string) string {
	return strings.Replace(template, "%s", detail, 1)
}

func createPreview(img image.Image) (string, func(), error) {
	f, err := os.CreateTemp("", "sketchpad-preview-*.png")
	if err != nil {
		return "", nil, err
	}
	path := f.Name()
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", nil, err
	}
	cleanup := func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("remove preview: %v", err)
		}
	}
	return path, cleanup, nil
}
