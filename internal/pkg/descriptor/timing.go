package descriptor

// Detailed timing descriptor, see VESA E-EDID 3.A section 3.10.2.
const (
	Size = 18

	offWidthLo  = 12
	offHeightLo = 13
	offHiNibble = 14

	// Largest size representable in 12 bits.
	MaxMillimeters = 0xFFF
)

// Timing aliases an 18 byte descriptor slot inside a block buffer.
type Timing []byte

// A descriptor whose first two bytes are zero is a display descriptor
// (or unused) and carries no image size.
func (d Timing) Active() bool {
	return len(d) >= Size && (d[0] != 0 || d[1] != 0)
}

func (d Timing) Width() uint {
	return uint(d[offWidthLo]) | uint(d[offHiNibble]&0xF0)<<4
}

func (d Timing) Height() uint {
	return uint(d[offHeightLo]) | uint(d[offHiNibble]&0x0F)<<8
}

// SetSize packs a millimeter size into bytes 12-14.
// Bits above MaxMillimeters are discarded; callers validate first.
func (d Timing) SetSize(width, height uint) {
	d[offWidthLo] = byte(width & 0xFF)
	d[offHeightLo] = byte(height & 0xFF)
	d[offHiNibble] = byte((width&0xF00)>>4 | (height&0xF00)>>8)
}
