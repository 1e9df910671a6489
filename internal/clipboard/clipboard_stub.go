//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package clipboard

import (
	"errors"
	"image"
	"runtime"
)

var errUnsupported = errors.New("clipboard: images cannot be copied on " + runtime.GOOS)

// WriteImage always fails here; the session reports the error to the user.
func WriteImage(image.Image) error { return errUnsupported }
