package ops

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pierrec/lz4/v4"
)

const (
	backupExt = ".orig" + lz4Ext
	dstPerms  = 0600
	dstFlags  = os.O_CREATE | os.O_RDWR | os.O_TRUNC
)

func backupName(name string) string {
	return name + backupExt
}

// writeBackup stores 'blob' lz4 compressed next to 'name'.
func writeBackup(name string, blob []byte, forceOverwrite bool) (string, error) {
	dstName := backupName(name)

	if fileExists(dstName) && !forceOverwrite {
		return "", fmt.Errorf("backup file '%s' already exists", dstName)
	}

	dstFh, err := os.OpenFile(dstName, dstFlags, dstPerms)
	if err != nil {
		return "", fmt.Errorf("fail create backup file '%s': %w", dstName, err)
	}

	zw := lz4.NewWriter(dstFh)
	if err := zw.Apply(lz4.BlockSizeOption(lz4.Block64Kb), lz4.ChecksumOption(true)); err != nil {
		dstFh.Close()
		return "", err
	}

	_, err = zw.Write(blob)
	if err == nil {
		err = zw.Close()
	}

	if cerr := dstFh.Close(); err == nil {
		err = cerr
	}

	if err != nil {
		os.Remove(dstName)
		return "", errors.Join(fmt.Errorf("fail write backup file '%s'", dstName), err)
	}

	return dstName, nil
}

func newLz4Reader(rd io.Reader) io.Reader {
	return lz4.NewReader(rd)
}
