package buttons

import (
	"encoding/binary"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTVSize = 16

func inputEvent(typ, code uint16, value int32) []byte {
	rec := make([]byte, testTVSize+8)
	binary.LittleEndian.PutUint16(rec[testTVSize:], typ)
	binary.LittleEndian.PutUint16(rec[testTVSize+2:], code)
	binary.LittleEndian.PutUint32(rec[testTVSize+4:], uint32(value))
	return rec
}

func TestKeyForCode(t *testing.T) {
	tests := []struct {
		code uint16
		want Key
		ok   bool
	}{
		{codeEsc, KeyBack, true},
		{codeBackspace, KeyBack, true},
		{codeBack, KeyBack, true},
		{codeF4, KeyBack, true},
		{codeEnter, KeyOk, true},
		{codeSelect, KeyOk, true},
		{codeUp, KeyUp, true},
		{codeDown, KeyDown, true},
		{codeLeft, KeyLeft, true},
		{codeRight, KeyRight, true},
		{30, 0, false}, // KEY_A
	}
	for _, tt := range tests {
		got, ok := keyForCode(tt.code)
		assert.Equal(t, tt.ok, ok, "code %d", tt.code)
		if tt.ok {
			assert.Equal(t, tt.want, got, "code %d", tt.code)
		}
	}
}

func TestParseKeyEvents(t *testing.T) {
	var buf []byte
	buf = append(buf, inputEvent(0x04, 4, 458792)...) // EV_MSC scan code
	buf = append(buf, inputEvent(evKey, codeEsc, valuePress)...)
	buf = append(buf, inputEvent(0x00, 0, 0)...) // EV_SYN
	buf = append(buf, inputEvent(evKey, 30, valuePress)...)
	buf = append(buf, inputEvent(evKey, codeEsc, valueRepeat)...)
	buf = append(buf, inputEvent(evKey, codeEsc, valueRelease)...)
	buf = append(buf, inputEvent(evKey, codeUp, valuePress)[:10]...)

	got := parseKeyEvents(buf, testTVSize)
	assert.Equal(t, []rawKey{
		{key: KeyBack, value: valuePress},
		{key: KeyBack, value: valueRepeat},
		{key: KeyBack, value: valueRelease},
	}, got)
}

func TestRawKeyApplyDropsAutorepeat(t *testing.T) {
	rec := newRecorder()
	tr := NewTracker(clockwork.NewFakeClock(), TrackerConfig{}, rec.emit)

	for _, rk := range parseKeyEvents(append(append(
		inputEvent(evKey, codeEnter, valuePress),
		inputEvent(evKey, codeEnter, valueRepeat)...),
		inputEvent(evKey, codeEnter, valueRelease)...), testTVSize) {
		rk.apply(tr)
	}

	events := rec.drain()
	require.Len(t, events, 3)
	assert.Equal(t, []Type{TypePress, TypeShort, TypeRelease},
		[]Type{events[0].Type, events[1].Type, events[2].Type})
	assert.Equal(t, KeyOk, events[0].Key)
}
