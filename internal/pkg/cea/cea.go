package cea

import (
	"errors"
	"fmt"
	"io"

	"github.com/prequel-dev/pedid/internal/pkg/checksum"
	"github.com/prequel-dev/pedid/internal/pkg/descriptor"
	"github.com/prequel-dev/pedid/internal/pkg/zerr"
)

// see CTA-861, section 7.5
const (
	BlockSz = 128
	Tag     = byte(0x02)

	offDtdStart = 2
	offChecksum = BlockSz - 1

	// Bytes 0-3 are the fixed extension header.
	minDtdStart = 4
)

type WalkFuncT func(off int, d descriptor.Timing) error

// ReadBlock fills 'dst' (exactly BlockSz bytes) with the next extension.
// The tag byte is read on its own so a missing block can be told apart from
// a short one.
func ReadBlock(rdr io.Reader, dst []byte) (nRead int, err error) {
	if len(dst) != BlockSz {
		panic("cea: extension buffer must be 128 bytes")
	}

	if nRead, err = io.ReadFull(rdr, dst[:1]); err != nil {
		err = errors.Join(zerr.ErrMissingExtension, err)
		return
	}

	if dst[0] != Tag {
		err = fmt.Errorf("%w: tag 0x%02x", zerr.ErrUnsupportedExtension, dst[0])
		return
	}

	n, rerr := io.ReadFull(rdr, dst[1:])
	nRead += n

	if rerr != nil {
		err = errors.Join(zerr.ErrTruncatedExtension, rerr)
		return
	}

	if cerr := checksum.Verify(dst); cerr != nil {
		err = zerr.WrapCorrupted(fmt.Errorf("extension block: %w", cerr))
	}

	return
}

// Walk calls 'fn' for each active detailed timing descriptor in 'block'.
//
// Descriptors are packed back to back from the offset in byte 2.  The list
// ends on a descriptor whose first two bytes are zero, or when the next
// descriptor would overlap the checksum byte.
func Walk(block []byte, fn WalkFuncT) error {
	start := int(block[offDtdStart])

	switch {
	case start == 0:
		return nil
	case start < minDtdStart, start > offChecksum:
		return zerr.WrapCorrupted(fmt.Errorf("%w: start offset %d", zerr.ErrDescriptorChain, start))
	}

	for off := start; off+descriptor.Size <= offChecksum; off += descriptor.Size {
		d := descriptor.Timing(block[off : off+descriptor.Size])
		if !d.Active() {
			break
		}
		if err := fn(off, d); err != nil {
			return err
		}
	}

	return nil
}
