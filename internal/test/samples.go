package test

import (
	"github.com/prequel-dev/pedid/internal/pkg/checksum"
)

const (
	blockSz = 128
	slotSz  = 18
)

var baseSlots = [4]int{54, 72, 90, 108}

// Header bytes 8-19 of a Dell U2412M; manufacturer, product, serial,
// week/year, then version 1 revision 3.
var vendorBlob = []byte{0x10, 0xac, 0x7a, 0xa0, 0x4c, 0x36, 0x30, 0x30, 0x1a, 0x17, 0x01, 0x03}

// Timing returns an active detailed timing descriptor (1920x1200@60)
// carrying the given image size in millimeters.
func Timing(widthMm, heightMm uint) []byte {
	d := []byte{
		0x28, 0x3c, 0x80, 0xa0, 0x70, 0xb0, 0x23, 0x40, 0x30, 0x20,
		0x36, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x1a,
	}
	d[12] = byte(widthMm & 0xFF)
	d[13] = byte(heightMm & 0xFF)
	d[14] = byte((widthMm&0xF00)>>4 | (heightMm&0xF00)>>8)
	return d
}

// Display returns an inactive (display) descriptor; a monitor name tag.
func Display(name string) []byte {
	d := make([]byte, slotSz)
	d[3] = 0xfc
	n := copy(d[5:], name)
	if n < 13 {
		d[5+n] = 0x0a
		for i := 6 + n; i < slotSz; i++ {
			d[i] = 0x20
		}
	}
	return d
}

// Base builds a checksummed base block. Missing slots are zero filled.
func Base(widthCm, heightCm byte, nExt int, slots ...[]byte) []byte {
	b := make([]byte, blockSz)
	copy(b, []byte{0x00, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x00})
	copy(b[8:], vendorBlob)
	b[21] = widthCm
	b[22] = heightCm
	for i, s := range slots {
		if i >= len(baseSlots) {
			break
		}
		copy(b[baseSlots[i]:], s)
	}
	b[126] = byte(nExt)
	checksum.Update(b)
	return b
}

// Cea builds a checksummed CEA extension block with descriptors packed from
// 'start'. A zero 'start' writes no descriptors.
func Cea(start byte, slots ...[]byte) []byte {
	b := make([]byte, blockSz)
	b[0] = 0x02
	b[1] = 0x03
	b[2] = start
	if start != 0 {
		off := int(start)
		for _, s := range slots {
			if off+slotSz > blockSz-1 {
				break
			}
			copy(b[off:], s)
			off += slotSz
		}
	}
	checksum.Update(b)
	return b
}

// Join concatenates blocks into a single blob.
func Join(blocks ...[]byte) []byte {
	out := make([]byte, 0, len(blocks)*blockSz)
	for _, b := range blocks {
		out = append(out, b...)
	}
	return out
}

// Clone returns a copy of 'src'.
func Clone(src []byte) []byte {
	return append([]byte(nil), src...)
}

// Reseal recomputes the checksum of the block starting at 'off'.
func Reseal(blob []byte, off int) {
	checksum.Update(blob[off : off+blockSz])
}
