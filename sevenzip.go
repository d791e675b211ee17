// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package decompress

import (
	"bytes"
	"context"
	"fmt"

	"github.com/bodgit/sevenzip"
)

// fileExtension7zip is the file extension for 7zip files
const fileExtension7zip = "7z"

// magicBytes7zip are the magic bytes for 7zip files
var magicBytes7zip = [][]byte{
	{0x37, 0x7A, 0xBC, 0xAF, 0x27, 0x1C},
}

// is7zip checks if the header matches the magic bytes for 7zip files
func is7zip(data []byte) bool {
	return matchesMagicBytes(data, 0, magicBytes7zip)
}

// sevenZipDecoder decodes 7zip archives.
type sevenZipDecoder struct{}

// SevenZipDecoder returns a [Decoder] for 7zip archives. 7zip does not support
// symlinks. It is not part of [DefaultDecoders].
func SevenZipDecoder() Decoder {
	return sevenZipDecoder{}
}

// Name returns the file extension for 7zip files
func (sevenZipDecoder) Name() string {
	return fileExtension7zip
}

// Decode returns the entries of data, or nothing if data is not a 7zip archive.
func (sevenZipDecoder) Decode(ctx context.Context, data []byte, cfg *Config) ([]Entry, error) {
	if !is7zip(data) {
		return nil, nil
	}

	reader, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("cannot create 7zip reader: %w", err)
	}

	// check if maximum of objects is exceeded
	if err := cfg.CheckMaxFiles(int64(len(reader.File))); err != nil {
		return nil, err
	}

	var entries []Entry
	counter := newExtractionCounter(cfg)
	for _, f := range reader.File {

		// check if context is canceled
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info := f.FileInfo()
		e := Entry{
			Path:    archivePath(f.Name),
			Mode:    info.Mode().Perm(),
			ModTime: info.ModTime(),
		}
		if len(e.Path) == 0 {
			cfg.Logger().Debug("skipping entry without name")
			continue
		}

		switch {

		case info.IsDir():
			e.Type = TypeDirectory

		case info.Mode().IsRegular():
			e.Type = TypeFile
			if e.Data, err = readSevenZipFile(f, counter); err != nil {
				return nil, fmt.Errorf("cannot read %s: %w", f.Name, err)
			}

		default:
			cfg.Logger().Debug("skipping unsupported entry", "name", f.Name, "mode", info.Mode().String())
			continue
		}

		entries = append(entries, e)
	}

	return entries, nil
}

// readSevenZipFile returns the uncompressed content of f, accounted by counter.
func readSevenZipFile(f *sevenzip.File, counter *extractionCounter) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return counter.readAll(rc)
}
