// Package pedid reads and rewrites the physical image size recorded in an
// EDID blob: the base block plus any CEA-861 extension blocks.
//
// The walker validates every block, hands the base block and each detailed
// timing descriptor to a Visitor, and returns the (possibly modified) blob.
package pedid

import (
	"errors"
	"fmt"
	"io"

	"github.com/prequel-dev/pedid/internal/pkg/cea"
	"github.com/prequel-dev/pedid/internal/pkg/descriptor"
	"github.com/prequel-dev/pedid/internal/pkg/header"
	"github.com/prequel-dev/pedid/internal/pkg/opts"
	"github.com/prequel-dev/pedid/internal/pkg/zerr"
)

// Size in bytes of every EDID block.
const BlockSize = header.BlockSz

// Visitor is applied to a blob by Process.  Slices alias the buffer that
// Process returns, so in-place edits land in the output.
//
// VisitDescriptor is called for all four base block slots, active or not,
// and for each active descriptor of a CEA extension.  Implementations must
// leave inactive descriptors (leading bytes 00 00) untouched.
type Visitor interface {
	VisitBase(base []byte) error
	VisitDescriptor(desc []byte) error
	VisitBlockComplete(block []byte) error
}

// Process reads a complete EDID blob from 'rdr', applies 'v' and returns
// the resulting blob.  Nothing is returned unless the whole blob is valid.
func Process(rdr io.Reader, v Visitor, optFuncs ...OptT) ([]byte, error) {
	o := parseOpts(optFuncs...)

	var base [header.BlockSz]byte

	_, hdr, err := header.ReadBase(rdr, base[:])
	if err != nil {
		return nil, err
	}

	// Count is captured before any visitor may touch the block.
	nExt := hdr.Extensions
	if nExt > o.MaxExtensions {
		return nil, fmt.Errorf("%w: %d > %d", zerr.ErrExtensionCount, nExt, o.MaxExtensions)
	}

	out := make([]byte, header.BlockSz*(1+nExt))
	copy(out, base[:])

	if err := walkBase(out[:header.BlockSz], v, o); err != nil {
		return nil, err
	}

	for i := 1; i <= nExt; i++ {
		off := i * header.BlockSz
		blk := out[off : off+header.BlockSz]

		if _, err := cea.ReadBlock(rdr, blk); err != nil {
			return nil, fmt.Errorf("extension %d: %w", i, err)
		}

		if err := walkCEA(i, off, blk, v, o); err != nil {
			return nil, fmt.Errorf("extension %d: %w", i, err)
		}
	}

	if err := checkTrailing(rdr); err != nil {
		return nil, err
	}

	return out, nil
}

func walkBase(base []byte, v Visitor, o opts.OptsT) error {
	o.Trace(0, opts.KindBase, 0, false)

	if err := v.VisitBase(base); err != nil {
		return err
	}

	for i, off := range header.SlotOffsets {
		o.Trace(0, opts.KindBase, off, true)

		if err := v.VisitDescriptor(header.Slot(base, i)); err != nil {
			return err
		}
	}

	return v.VisitBlockComplete(base)
}

func walkCEA(idx, blobOff int, blk []byte, v Visitor, o opts.OptsT) error {
	o.Trace(idx, opts.KindCEA, blobOff, false)

	err := cea.Walk(blk, func(off int, d descriptor.Timing) error {
		o.Trace(idx, opts.KindCEA, blobOff+off, true)
		return v.VisitDescriptor(d)
	})

	if err != nil {
		return err
	}

	return v.VisitBlockComplete(blk)
}

func checkTrailing(rdr io.Reader) error {
	var one [1]byte

	n, err := io.ReadFull(rdr, one[:])

	switch {
	case n > 0:
		return zerr.ErrTrailingData
	case err == nil, errors.Is(err, io.EOF):
		return nil
	default:
		return err
	}
}
