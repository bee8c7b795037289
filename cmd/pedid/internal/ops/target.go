package ops

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	strStdin = "<STDIN>"
	lz4Ext   = ".lz4"
)

type targetT struct {
	name  string
	stdin bool
	src   *os.File
	blob  []byte
}

// openTarget reads the whole blob up front; nothing is written until the
// blob has been fully processed.  A '.lz4' target is decompressed on read.
func openTarget(name string, writable bool) (*targetT, error) {

	if name == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("cannot read stdin: %w", err)
		}
		return &targetT{name: strStdin, stdin: true, blob: data}, nil
	}

	compressed := strings.HasSuffix(name, lz4Ext)
	if compressed && writable {
		return nil, fmt.Errorf("cannot patch compressed file '%s'", name)
	}

	flags := os.O_RDONLY
	if writable {
		flags = os.O_RDWR
	}

	srcFh, err := os.OpenFile(name, flags, 0)
	if err != nil {
		return nil, fmt.Errorf("cannot open source '%s': %w", name, err)
	}

	var rd io.Reader = srcFh
	if compressed {
		rd = newLz4Reader(srcFh)
	}

	data, err := io.ReadAll(rd)
	if err != nil {
		srcFh.Close()
		return nil, fmt.Errorf("fail read '%s': %w", name, err)
	}

	return &targetT{name: name, src: srcFh, blob: data}, nil
}

func (t *targetT) Name() string {
	return t.name
}

func (t *targetT) Reader() io.Reader {
	return bytes.NewReader(t.blob)
}

func (t *targetT) Stdin() bool {
	return t.stdin
}

// WriteBack replaces the blob in a single write at offset zero.
func (t *targetT) WriteBack(out io.Writer, data []byte) error {
	if t.stdin {
		_, err := out.Write(data)
		return err
	}

	if t.src == nil {
		return fmt.Errorf("fail write '%s': closed", t.name)
	}

	if len(data) != len(t.blob) {
		return fmt.Errorf("refuse write back to '%s': size changed %d -> %d", t.name, len(t.blob), len(data))
	}

	if _, err := t.src.WriteAt(data, 0); err != nil {
		return fmt.Errorf("fail write '%s': %w", t.name, err)
	}

	return nil
}

func (t *targetT) Close() error {
	if t.src == nil {
		return nil
	}
	err := t.src.Close()
	t.src = nil
	return err
}

func fileExists(name string) bool {
	_, err := os.Stat(name)
	return (err == nil) || !errors.Is(err, os.ErrNotExist)
}
