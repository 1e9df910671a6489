//go:build linux || freebsd || openbsd || netbsd || dragonfly

package clipboard

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"sync"
)

var (
	initOnce     sync.Once
	initErr      error
	errNoDisplay = errors.New("clipboard initialization requires DISPLAY or WAYLAND_DISPLAY")
)

func ensureInit() error {
	initOnce.Do(func() {
		if !hasDisplay() {
			initErr = errNoDisplay
			return
		}
		initErr = initBackend()
	})
	return initErr
}

func hasDisplay() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

// WriteImage encodes the provided image as PNG and publishes it to the clipboard.
func WriteImage(img image.Image) error {
	if err := ensureInit(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	return writePNG(buf.Bytes())
}
