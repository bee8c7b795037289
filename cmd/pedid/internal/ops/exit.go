package ops

import (
	"errors"

	"github.com/prequel-dev/pedid"
)

// Process exit codes, one per failure kind.
const (
	ExitOK = iota
	ExitFailure
	ExitUsage
	ExitDimensionInput
	ExitDimensionRange
	ExitTruncated
	ExitTruncatedExtension
	ExitMagic
	ExitVersion
	ExitChecksum
	ExitMissingExtension
	ExitUnsupportedExtension
	ExitTrailingData
	ExitDescriptorChain
	ExitExtensionCount
)

var exitCodes = []struct {
	err  error
	code int
}{
	{pedid.ErrUsage, ExitUsage},
	{pedid.ErrDimensionInput, ExitDimensionInput},
	{pedid.ErrDimensionRange, ExitDimensionRange},
	{pedid.ErrTruncated, ExitTruncated},
	{pedid.ErrTruncatedExtension, ExitTruncatedExtension},
	{pedid.ErrMagic, ExitMagic},
	{pedid.ErrVersion, ExitVersion},
	{pedid.ErrChecksum, ExitChecksum},
	{pedid.ErrMissingExtension, ExitMissingExtension},
	{pedid.ErrUnsupportedExtension, ExitUnsupportedExtension},
	{pedid.ErrTrailingData, ExitTrailingData},
	{pedid.ErrDescriptorChain, ExitDescriptorChain},
	{pedid.ErrExtensionCount, ExitExtensionCount},
}

// ExitCode maps 'err' to a process exit code.  When several files failed
// the first one decides.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var fErr filesError
	if errors.As(err, &fErr) && len(fErr) > 0 {
		err = fErr[0]
	}

	for _, ec := range exitCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}

	return ExitFailure
}

// filesError collects per file failures in argument order.
type filesError []error

func (e filesError) Error() string {
	return errors.Join(e...).Error()
}

func (e filesError) Unwrap() []error {
	return e
}
