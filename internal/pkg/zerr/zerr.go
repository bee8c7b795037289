package zerr

import "fmt"

type constError string

func (err constError) Error() string {
	return string(err)
}

const (
	ErrCorrupted            constError = "edid corrupted"
	ErrTruncated            constError = "edid truncated base block"
	ErrTruncatedExtension   constError = "edid truncated extension block"
	ErrMagic                constError = "edid bad magic"
	ErrVersion              constError = "edid unsupported version"
	ErrChecksum             constError = "edid checksum mismatch"
	ErrMissingExtension     constError = "edid missing extension block"
	ErrUnsupportedExtension constError = "edid unsupported extension"
	ErrTrailingData         constError = "edid trailing data"
	ErrDescriptorChain      constError = "edid bad descriptor chain"
	ErrExtensionCount       constError = "edid extension count over limit"
	ErrDimensionInput       constError = "edid invalid dimension input"
	ErrDimensionRange       constError = "edid dimension out of range"
	ErrUsage                constError = "edid usage"
)

func WrapCorrupted(err error) error {
	return fmt.Errorf("%w: %w", ErrCorrupted, err)
}
