// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package decompress

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/nwaples/rardecode"
)

// fileExtensionRar is the file extension for Rar files.
const fileExtensionRar = "rar"

// magicBytesRar are the magic bytes for Rar files.
var magicBytesRar = [][]byte{
	{0x52, 0x61, 0x72, 0x21, 0x1A, 0x07, 0x00},       // Rar 1.5
	{0x52, 0x61, 0x72, 0x21, 0x1A, 0x07, 0x01, 0x00}, // Rar 5.0
}

// isRar checks if the header matches the magic bytes for Rar files.
func isRar(data []byte) bool {
	return matchesMagicBytes(data, 0, magicBytesRar)
}

// rarDecoder decodes Rar archives.
type rarDecoder struct{}

// RarDecoder returns a [Decoder] for Rar archives. Symlinks are not supported by the
// used library and are skipped. It is not part of [DefaultDecoders].
func RarDecoder() Decoder {
	return rarDecoder{}
}

// Name returns the file extension for Rar files.
func (rarDecoder) Name() string {
	return fileExtensionRar
}

// Decode returns the entries of data, or nothing if data is not a Rar archive.
func (rarDecoder) Decode(ctx context.Context, data []byte, cfg *Config) ([]Entry, error) {
	if !isRar(data) {
		return nil, nil
	}

	r, err := rardecode.NewReader(bytes.NewReader(data), "")
	if err != nil {
		return nil, fmt.Errorf("cannot create rar decoder: %w", err)
	}

	var entries []Entry
	var objectCounter int64
	counter := newExtractionCounter(cfg)

	for {
		// check if context is canceled
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fh, err := r.Next()
		if err == io.EOF {
			return entries, nil
		}
		if err != nil {
			return nil, fmt.Errorf("error reading rar: %w", err)
		}

		// check if maximum of objects is exceeded
		objectCounter++
		if err := cfg.CheckMaxFiles(objectCounter); err != nil {
			return nil, err
		}

		e := Entry{
			Path:    archivePath(fh.Name),
			Mode:    fh.Mode().Perm(),
			ModTime: fh.ModificationTime,
		}
		if len(e.Path) == 0 {
			cfg.Logger().Debug("skipping entry without name")
			continue
		}

		switch {

		case fh.IsDir:
			e.Type = TypeDirectory

		case fh.Mode().IsRegular():
			e.Type = TypeFile
			if e.Data, err = counter.readAll(r); err != nil {
				return nil, fmt.Errorf("cannot read %s: %w", fh.Name, err)
			}

		default:
			cfg.Logger().Debug("skipping unsupported entry", "name", fh.Name, "mode", fh.Mode().String())
			continue
		}

		entries = append(entries, e)
	}
}
