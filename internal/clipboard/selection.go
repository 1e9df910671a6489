//go:build linux || freebsd || openbsd || netbsd || dragonfly

package clipboard

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

type atomSet struct {
	clipboard xproto.Atom
	targets   xproto.Atom
	png       xproto.Atom
}

// selectionReply decides how a SelectionRequest for target is answered while
// we own the clipboard with data. ok is false when the target is refused.
func (a atomSet) selectionReply(target xproto.Atom, data []byte) (typ xproto.Atom, format byte, payload []byte, ok bool) {
	switch target {
	case a.targets:
		targets := []xproto.Atom{a.targets}
		if len(data) > 0 {
			targets = append(targets, a.png)
		}
		return xproto.AtomAtom, 32, atomsToBytes(targets), true
	case a.png:
		if len(data) == 0 {
			return 0, 0, nil, false
		}
		return a.png, 8, data, true
	}
	return 0, 0, nil, false
}

func atomsToBytes(atoms []xproto.Atom) []byte {
	buf := make([]byte, len(atoms)*4)
	for i, atom := range atoms {
		xgb.Put32(buf[i*4:], uint32(atom))
	}
	return buf
}

func propertyLength(format byte, payload []byte) uint32 {
	switch format {
	case 16:
		return uint32(len(payload) / 2)
	case 32:
		return uint32(len(payload) / 4)
	}
	return uint32(len(payload))
}
