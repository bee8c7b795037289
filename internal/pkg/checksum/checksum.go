package checksum

import (
	"fmt"

	"github.com/prequel-dev/pedid/internal/pkg/zerr"
)

// Every EDID block carries a trailing byte chosen so that
// all bytes of the block sum to zero modulo 256.

// Sum returns the byte sum of 'block' modulo 256.
func Sum(block []byte) byte {
	var sum byte
	for _, b := range block {
		sum += b
	}
	return sum
}

// Verify fails with zerr.ErrChecksum if the block does not sum to zero.
func Verify(block []byte) error {
	if rem := Sum(block); rem != 0 {
		return fmt.Errorf("%w: remainder 0x%02x", zerr.ErrChecksum, rem)
	}
	return nil
}

// Update rewrites the last byte of 'block' so that the block verifies.
// Must run after all other mutations to the block.
func Update(block []byte) {
	n := len(block)
	if n == 0 {
		return
	}
	block[n-1] = byte(0x100 - int(Sum(block[:n-1])))
}
