package descriptor

import (
	"bytes"
	"testing"
)

func activeSlot() Timing {
	d := make(Timing, Size)
	d[0], d[1] = 0x3a, 0x02
	return d
}

func TestActive(t *testing.T) {
	tests := map[string]struct {
		lead   [2]byte
		active bool
	}{
		"zero":      {lead: [2]byte{0, 0}},
		"low_only":  {lead: [2]byte{0x01, 0}, active: true},
		"high_only": {lead: [2]byte{0, 0x01}, active: true},
		"both":      {lead: [2]byte{0x3a, 0x02}, active: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			d := make(Timing, Size)
			d[0], d[1] = tc.lead[0], tc.lead[1]
			if d.Active() != tc.active {
				t.Errorf("Expected active %v", tc.active)
			}
		})
	}

	if Timing(make([]byte, Size-1)).Active() {
		t.Errorf("Expected short slot to be inactive")
	}
}

// Every 12 bit width/height pair must survive the pack/unpack cycle.
func TestSizeRoundTrip(t *testing.T) {
	d := activeSlot()
	for w := uint(0); w <= MaxMillimeters; w++ {
		for _, h := range []uint{0, 1, 0xFF, 0x100, 0x7FF, w, MaxMillimeters - w, MaxMillimeters} {
			d.SetSize(w, h)
			if d.Width() != w || d.Height() != h {
				t.Fatalf("Expected %dx%d, got %dx%d", w, h, d.Width(), d.Height())
			}
		}
	}
}

func TestSetSizeLayout(t *testing.T) {
	d := activeSlot()
	d.SetSize(1920, 1080)

	want := []byte{0x80, 0x38, 0x74}
	if !bytes.Equal(d[12:15], want) {
		t.Errorf("Expected % x, got % x", want, d[12:15])
	}

	// Only bytes 12-14 are touched
	ref := activeSlot()
	if !bytes.Equal(d[:12], ref[:12]) || !bytes.Equal(d[15:], ref[15:]) {
		t.Errorf("Unexpected mutation outside size fields: % x", d)
	}
}
