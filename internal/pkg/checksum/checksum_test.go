package checksum

import (
	"errors"
	"testing"

	"github.com/prequel-dev/pedid/internal/pkg/zerr"
)

func makeBlock(seed byte) []byte {
	blk := make([]byte, 128)
	for i := range blk[:127] {
		blk[i] = seed + byte(i*7)
	}
	return blk
}

func TestUpdateVerify(t *testing.T) {
	for seed := 0; seed < 256; seed++ {
		blk := makeBlock(byte(seed))
		Update(blk)
		if err := Verify(blk); err != nil {
			t.Fatalf("Expected valid block for seed %d: %v", seed, err)
		}
	}
}

func TestVerifyZeroBlock(t *testing.T) {
	if err := Verify(make([]byte, 128)); err != nil {
		t.Errorf("Expected zero block to verify: %v", err)
	}
}

// Any single byte change outside the checksum byte must be detected.
func TestSingleByteCorruption(t *testing.T) {
	blk := makeBlock(0x5a)
	Update(blk)

	for i := 0; i < 127; i++ {
		for _, delta := range []byte{1, 0x80, 0xFF} {
			blk[i] += delta
			err := Verify(blk)
			blk[i] -= delta

			if !errors.Is(err, zerr.ErrChecksum) {
				t.Fatalf("Expected checksum error at %d delta %d, got: %v", i, delta, err)
			}
		}
	}

	if err := Verify(blk); err != nil {
		t.Errorf("Expected restored block to verify: %v", err)
	}
}

func TestUpdateIdempotent(t *testing.T) {
	blk := makeBlock(3)
	Update(blk)
	want := blk[127]
	Update(blk)
	if blk[127] != want {
		t.Errorf("Expected stable checksum 0x%02x, got 0x%02x", want, blk[127])
	}
}

func TestUpdateEmpty(t *testing.T) {
	// Must not panic
	Update(nil)
}
