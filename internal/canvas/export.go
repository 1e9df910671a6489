package canvas

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// PNGSuffix is appended to export paths that lack it.
const PNGSuffix = ".png"

// NormalizePNGPath appends ".png" to path unless it already ends with it.
// The comparison is case-sensitive, so "shot.PNG" becomes "shot.PNG.png".
func NormalizePNGPath(path string) string {
	if strings.HasSuffix(path, PNGSuffix) {
		return path
	}
	return path + PNGSuffix
}

// EncodePNG writes the current buffer to w as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// ExportPNG writes the canvas to path, appending ".png" when missing, and
// returns the path that was written.
func (c *Canvas) ExportPNG(path string) (string, error) {
	return SavePNG(path, c.img)
}

// SavePNG encodes img into a temporary file next to the destination and
// renames it into place, so a failed write never leaves a truncated PNG under
// the final name. It returns the normalized path.
func SavePNG(path string, img image.Image) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("export: empty path")
	}
	path = NormalizePNGPath(path)
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return "", fmt.Errorf("export %s: %w", path, err)
	}
	tmpName := tmp.Name()
	cleanup := func() {
		if err := os.Remove(tmpName); err != nil && !os.IsNotExist(err) {
			log.Printf("export: removing %s: %v", tmpName, err)
		}
	}
	if err := png.Encode(tmp, img); err != nil {
		if cerr := tmp.Close(); cerr != nil {
			log.Printf("export: closing %s: %v", tmpName, cerr)
		}
		cleanup()
		return "", fmt.Errorf("export %s: encode: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", fmt.Errorf("export %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		log.Printf("export: chmod %s: %v", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return "", fmt.Errorf("export %s: %w", path, err)
	}
	return path, nil
}
