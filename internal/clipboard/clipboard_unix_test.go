//go:build linux || freebsd || openbsd || netbsd || dragonfly

package clipboard

import (
	"bytes"
	"errors"
	"image"
	"sync"
	"testing"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

func TestEnsureInitWithoutDisplay(t *testing.T) {
	t.Setenv("DISPLAY", "")
	t.Setenv("WAYLAND_DISPLAY", "")

	initOnce = sync.Once{}
	initErr = nil
	t.Cleanup(func() {
		initOnce = sync.Once{}
		initErr = nil
	})

	err := WriteImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	if !errors.Is(err, errNoDisplay) {
		t.Fatalf("expected errNoDisplay, got %v", err)
	}
}

func TestSelectionReply(t *testing.T) {
	atoms := atomSet{clipboard: 10, targets: 11, png: 12}

	typ, format, payload, ok := atoms.selectionReply(atoms.targets, nil)
	if !ok || typ != xproto.AtomAtom || format != 32 {
		t.Fatalf("TARGETS reply = %v %v %v", typ, format, ok)
	}
	if len(payload) != 4 || xgb.Get32(payload) != uint32(atoms.targets) {
		t.Fatalf("empty clipboard should only advertise TARGETS, got %v", payload)
	}

	_, _, payload, _ = atoms.selectionReply(atoms.targets, []byte{1})
	if len(payload) != 8 || xgb.Get32(payload[4:]) != uint32(atoms.png) {
		t.Fatalf("expected image/png to be advertised, got %v", payload)
	}
	if got := propertyLength(32, payload); got != 2 {
		t.Fatalf("propertyLength = %d", got)
	}

	if _, _, _, ok := atoms.selectionReply(atoms.png, nil); ok {
		t.Fatal("image/png must be refused without data")
	}
	data := []byte("png-bytes")
	typ, format, payload, ok = atoms.selectionReply(atoms.png, data)
	if !ok || typ != atoms.png || format != 8 || !bytes.Equal(payload, data) {
		t.Fatalf("unexpected image/png reply %v %v %q %v", typ, format, payload, ok)
	}

	if _, _, _, ok := atoms.selectionReply(xproto.AtomString, data); ok {
		t.Fatal("text targets are not served")
	}
}
