package buttons

import "encoding/binary"

const (
	evKey = 0x01

	// Linux input-event-codes.h
	codeEsc       = 1
	codeBackspace = 14
	codeEnter     = 28
	codeF4        = 62
	codeUp        = 103
	codeLeft      = 105
	codeRight     = 106
	codeDown      = 108
	codeSelect    = 353
	codeBack      = 158

	// input_event.value for EV_KEY
	valueRelease = 0
	valuePress   = 1
	valueRepeat  = 2
)

// keyForCode maps an evdev key code to a device button.
func keyForCode(code uint16) (Key, bool) {
	switch code {
	case codeEsc, codeBackspace, codeBack, codeF4:
		return KeyBack, true
	case codeEnter, codeSelect:
		return KeyOk, true
	case codeUp:
		return KeyUp, true
	case codeDown:
		return KeyDown, true
	case codeLeft:
		return KeyLeft, true
	case codeRight:
		return KeyRight, true
	default:
		return 0, false
	}
}

type rawKey struct {
	key   Key
	value int32
}

// parseKeyEvents decodes a buffer of input_event records (timeval followed
// by u16 type, u16 code, s32 value) and returns the mapped key transitions.
// A trailing partial record is ignored.
func parseKeyEvents(buf []byte, tvSize int) []rawKey {
	eventSize := tvSize + 2 + 2 + 4
	var out []rawKey
	for off := 0; off+eventSize <= len(buf); off += eventSize {
		rec := buf[off : off+eventSize]
		typ := binary.LittleEndian.Uint16(rec[tvSize : tvSize+2])
		code := binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4])
		value := int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8]))
		if typ != evKey {
			continue
		}
		key, ok := keyForCode(code)
		if !ok {
			continue
		}
		out = append(out, rawKey{key: key, value: value})
	}
	return out
}

// apply feeds one transition to the tracker. Kernel autorepeat is dropped;
// the tracker produces its own Repeat events.
func (r rawKey) apply(t *Tracker) {
	switch r.value {
	case valuePress:
		t.Press(r.key)
	case valueRelease:
		t.Release(r.key)
	case valueRepeat:
	}
}
