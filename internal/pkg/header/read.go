package header

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/prequel-dev/pedid/internal/pkg/checksum"
	"github.com/prequel-dev/pedid/internal/pkg/descriptor"
	"github.com/prequel-dev/pedid/internal/pkg/zerr"
)

// see VESA E-EDID Standard Release A2, section 3
const (
	BlockSz     = 128
	edidVersion = uint8(1)

	offVersion    = 18
	offWidthCm    = 21
	offHeightCm   = 22
	offExtensions = 126
)

var edidMagic = [8]byte{0x00, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x00}

// Fixed offsets of the four 18 byte descriptor slots in the base block.
var SlotOffsets = [4]int{54, 72, 90, 108}

type BaseT struct {
	Version    uint8
	Revision   uint8
	WidthCm    uint8
	HeightCm   uint8
	Extensions int
}

// ReadBase fills 'dst' (exactly BlockSz bytes) from 'rdr' and validates it.
// The returned header is captured before any visitor touches the block.
func ReadBase(rdr io.Reader, dst []byte) (nRead int, hdr BaseT, err error) {
	if len(dst) != BlockSz {
		panic("header: base block buffer must be 128 bytes")
	}

	if nRead, err = io.ReadFull(rdr, dst); err != nil {
		err = errors.Join(zerr.ErrTruncated, err)
		return
	}

	if !bytes.Equal(dst[:len(edidMagic)], edidMagic[:]) {
		err = zerr.WrapCorrupted(zerr.ErrMagic)
		return
	}

	hdr = Parse(dst)

	if hdr.Version != edidVersion {
		err = fmt.Errorf("%w: found %d", zerr.ErrVersion, hdr.Version)
		return
	}

	if cerr := checksum.Verify(dst); cerr != nil {
		err = zerr.WrapCorrupted(fmt.Errorf("base block: %w", cerr))
	}

	return
}

// Parse decodes the fields of interest without validation.
func Parse(base []byte) BaseT {
	return BaseT{
		Version:    base[offVersion],
		Revision:   base[offVersion+1],
		WidthCm:    base[offWidthCm],
		HeightCm:   base[offHeightCm],
		Extensions: int(base[offExtensions]),
	}
}

// SetSizeCm overwrites the rough physical size bytes.
func SetSizeCm(base []byte, width, height uint8) {
	base[offWidthCm] = width
	base[offHeightCm] = height
}

// Slot returns the descriptor slot 'i' (0-3) aliasing 'base'.
func Slot(base []byte, i int) descriptor.Timing {
	off := SlotOffsets[i]
	return descriptor.Timing(base[off : off+descriptor.Size])
}
