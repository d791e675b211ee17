// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package decompress

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"strings"
)

// fileExtensionZip is the file extension for zip files.
const fileExtensionZip = "zip"

// magicBytesZip contains the magic bytes for a zip archive, the second one is the
// end of central directory record of an empty archive.
// reference: https://golang.org/pkg/archive/zip/
var magicBytesZip = [][]byte{
	{0x50, 0x4B, 0x03, 0x04},
	{0x50, 0x4B, 0x05, 0x06},
}

// isZip checks if data is a zip archive. It returns true if data is a zip archive and false if data is not a zip archive.
func isZip(data []byte) bool {
	return matchesMagicBytes(data, 0, magicBytesZip)
}

// zipDecoder decodes zip archives.
type zipDecoder struct{}

// ZipDecoder returns a [Decoder] for zip archives.
func ZipDecoder() Decoder {
	return zipDecoder{}
}

// Name returns the file extension for zip files
func (zipDecoder) Name() string {
	return fileExtensionZip
}

// Decode returns the entries of data, or nothing if data is not a zip archive.
func (zipDecoder) Decode(ctx context.Context, data []byte, cfg *Config) ([]Entry, error) {
	if !isZip(data) {
		return nil, nil
	}

	// create zip reader
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("cannot create zip reader: %w", err)
	}

	// check if maximum of objects is exceeded
	if err := cfg.CheckMaxFiles(int64(len(reader.File))); err != nil {
		return nil, err
	}

	var entries []Entry
	counter := newExtractionCounter(cfg)
	for _, zf := range reader.File {

		// check if context is canceled
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		e := Entry{
			Path:    archivePath(zf.Name),
			Mode:    zf.Mode().Perm(),
			ModTime: zf.Modified,
		}
		if len(e.Path) == 0 {
			cfg.Logger().Debug("skipping entry without name")
			continue
		}

		switch {

		case zf.Mode().IsDir() || strings.HasSuffix(zf.Name, "/"):
			e.Type = TypeDirectory

		case zf.Mode()&fs.ModeSymlink != 0:
			e.Type = TypeSymlink
			target, err := readZipFile(zf, counter)
			if err != nil {
				return nil, fmt.Errorf("cannot read link target of %s: %w", zf.Name, err)
			}
			e.Linkname = string(target)

		case zf.Mode().IsRegular():
			e.Type = TypeFile
			if e.Data, err = readZipFile(zf, counter); err != nil {
				return nil, fmt.Errorf("cannot read %s: %w", zf.Name, err)
			}

		default:
			cfg.Logger().Debug("skipping unsupported entry", "name", zf.Name, "mode", zf.Mode().String())
			continue
		}

		entries = append(entries, e)
	}

	return entries, nil
}

// readZipFile returns the uncompressed content of zf, accounted by counter.
func readZipFile(zf *zip.File, counter *extractionCounter) ([]byte, error) {
	rc, err := zf.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return counter.readAll(rc)
}
