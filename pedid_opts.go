package pedid

import (
	"github.com/prequel-dev/pedid/internal/pkg/opts"
)

// OptT is a function that sets an option on the walker.
type OptT func(*opts.OptsT)

// Trace callback function type.
type CbTraceT = opts.TraceFuncT

// BlockKindT identifies the block type in a trace callback.
type BlockKindT = opts.BlockKindT

const (
	// Base EDID block
	KindBase = opts.KindBase

	// CEA-861 extension block
	KindCEA = opts.KindCEA
)

// Largest extension count byte 126 can declare.
const MaxExtensions = 255

// Walker will emit (block_index, kind, blob_offset, descriptor) for every
// block and descriptor handed to the visitor, in visit order.
func WithTrace(cb CbTraceT) OptT {
	return func(o *opts.OptsT) {
		o.Trace = cb
	}
}

// Reject blobs declaring more than 'n' extension blocks.  Defaults to MaxExtensions.
//
// Values outside [0, MaxExtensions] are ignored.
func WithMaxExtensions(n int) OptT {
	return func(o *opts.OptsT) {
		if n >= 0 && n <= MaxExtensions {
			o.MaxExtensions = n
		}
	}
}

func defaultTrace(int, opts.BlockKindT, int, bool) {}

func parseOpts(optFuncs ...OptT) opts.OptsT {
	o := opts.OptsT{
		MaxExtensions: MaxExtensions, // Whatever byte 126 can express
		Trace:         defaultTrace,  // NOOP
	}

	for _, oFunc := range optFuncs {
		oFunc(&o)
	}

	if o.Trace == nil {
		o.Trace = defaultTrace
	}

	return o
}
