package platform

// AppName identifies the application to the host notification service.
const AppName = "Sketchpad"

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// IconPath, when non-empty, points to an image file the notification center
	// should display with the notification if supported by the platform.
	IconPath string
	// TimeoutMillis is how long the notification stays visible. Zero picks
	// the platform default.
	TimeoutMillis int32
}

func (o Options) timeout() int32 {
	if o.TimeoutMillis > 0 {
		return o.TimeoutMillis
	}
	return 5000
}
