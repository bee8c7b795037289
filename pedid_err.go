package pedid

import (
	"errors"

	"github.com/prequel-dev/pedid/internal/pkg/zerr"
)

//  Forward declare internal errors

const (
	ErrCorrupted            = zerr.ErrCorrupted
	ErrTruncated            = zerr.ErrTruncated
	ErrTruncatedExtension   = zerr.ErrTruncatedExtension
	ErrMagic                = zerr.ErrMagic
	ErrVersion              = zerr.ErrVersion
	ErrChecksum             = zerr.ErrChecksum
	ErrMissingExtension     = zerr.ErrMissingExtension
	ErrUnsupportedExtension = zerr.ErrUnsupportedExtension
	ErrTrailingData         = zerr.ErrTrailingData
	ErrDescriptorChain      = zerr.ErrDescriptorChain
	ErrExtensionCount       = zerr.ErrExtensionCount
	ErrDimensionInput       = zerr.ErrDimensionInput
	ErrDimensionRange       = zerr.ErrDimensionRange
	ErrUsage                = zerr.ErrUsage
)

// Returns true if 'err' indicates that the input blob is structurally corrupted.
func Corrupted(err error) bool {
	return errors.Is(err, ErrCorrupted)
}
