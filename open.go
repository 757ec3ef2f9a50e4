// Package minmap holds file-format helpers shared by the minmap tools.
package minmap

import (
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"io"
	"os"

	"github.com/carbocation/pfx"
	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

type mapFileType byte

const (
	mapFileInvalid mapFileType = iota
	mapFilePlain
	mapFileGzip
	mapFileZip
	mapFileXZ
	mapFileZ
	mapFileBZip2
)

// Magic bytes from https://stackoverflow.com/a/19127748/199475
var mapFileSigs = map[mapFileType][]byte{
	mapFileGzip:  {0x1f, 0x8b, 0x08},
	mapFileZip:   {0x50, 0x4b, 0x03, 0x04},
	mapFileXZ:    {0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00},
	mapFileZ:     {0x1f, 0x9d},
	mapFileBZip2: {0x42, 0x5a, 0x68},
}

func detectMapFileType(r io.Reader) (mapFileType, error) {
	buff := make([]byte, 6)
	if _, err := io.ReadFull(r, buff); err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			// Too short to hold any known signature.
			return mapFilePlain, nil
		}
		return mapFileInvalid, pfx.Err(err)
	}

Outer:
	for ft, sig := range mapFileSigs {
		for i := range sig {
			if buff[i] != sig[i] {
				continue Outer
			}
		}
		return ft, nil
	}

	return mapFilePlain, nil
}

// OpenMapFile opens a genetic map file and transparently decompresses it if
// it carries a known compression signature (gzip, zip, xz, compress, or
// bzip2). Closing the returned reader closes the underlying file.
func OpenMapFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	ft, err := detectMapFileType(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, pfx.Err(err)
	}

	switch ft {
	case mapFileGzip:
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, pfx.Err(err)
		}
		return &wrappedFile{gz, f}, nil
	case mapFileZip:
		return &wrappedFile{zipstream.NewReader(f), f}, nil
	case mapFileBZip2:
		return &wrappedFile{bzip2.NewReader(f), f}, nil
	case mapFileXZ:
		xzr, err := xz.NewReader(f, 0)
		if err != nil {
			f.Close()
			return nil, pfx.Err(err)
		}
		return &wrappedFile{xzr, f}, nil
	case mapFileZ:
		zr, err := zlib.NewReader(f)
		if err != nil {
			f.Close()
			return nil, pfx.Err(err)
		}
		return &wrappedFile{zr, f}, nil
	}

	return f, nil
}

// wrappedFile reads decompressed bytes but closes the file underneath.
type wrappedFile struct {
	io.Reader
	file *os.File
}

func (w *wrappedFile) Close() error {
	return w.file.Close()
}
