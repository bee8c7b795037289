package opts

// Block kinds reported to a trace callback.
type BlockKindT uint8

const (
	KindBase BlockKindT = iota
	KindCEA
)

func (k BlockKindT) String() string {
	switch k {
	case KindBase:
		return "base"
	case KindCEA:
		return "cea"
	}
	return "undefined"
}

// Emits the index of the block, its kind, and the offset in bytes from
// the start of the blob of the item just visited.  Descriptor is false
// for block level events.
type TraceFuncT func(blockIdx int, kind BlockKindT, offset int, descriptor bool)

type OptsT struct {
	MaxExtensions int
	Trace         TraceFuncT
}
