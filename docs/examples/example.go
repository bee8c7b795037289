package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/prequel-dev/pedid"
)

// Demonstrate reporting the physical size of a monitor.
func report(blob []byte) error {

	// Get is shorthand for Process with a Reporter visitor.
	rep, err := pedid.Get(bytes.NewReader(blob))
	if err != nil {
		return err
	}

	for _, line := range rep.Lines() {
		fmt.Println(line)
	}

	return nil
}

// Demonstrate rewriting the physical size with a custom trace.
func patch(blob []byte, size string) ([]byte, error) {

	dims, err := pedid.ParseDimensions(size)
	if err != nil {
		return nil, err
	}

	// NewPatcher rejects sizes the EDID fields cannot hold.
	p, err := pedid.NewPatcher(dims)
	if err != nil {
		return nil, err
	}

	trace := func(blk int, kind pedid.BlockKindT, off int, desc bool) {
		if !desc {
			fmt.Printf("patching %s block %d at offset %d\n", kind, blk, off)
		}
	}

	// The returned blob is only valid if err is nil; the input is untouched.
	return pedid.Process(bytes.NewReader(blob), p, pedid.WithTrace(trace))
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: example <edid file>")
		os.Exit(2)
	}

	blob, err := os.ReadFile(os.Args[1])
	if err != nil {
		panic(err)
	}

	if err := report(blob); err != nil {
		panic(err)
	}

	out, err := patch(blob, "597x336")
	if err != nil {
		panic(err)
	}

	if err := report(out); err != nil {
		panic(err)
	}
}
