// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package decompress

import (
	"archive/tar"
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"strings"
)

// fileExtensionTar is the file extension for tar files
const fileExtensionTar = "tar"

// offsetTar is the offset where the magic bytes are located in the file
const offsetTar = 257

// magicBytesTar are the magic bytes for tar files
var magicBytesTar = [][]byte{
	[]byte("ustar\x00tar\x00"),
	[]byte("ustar\x00"),
	[]byte("ustar  \x00"),
}

// tarHeaderLength is the number of bytes needed to detect a tar archive
const tarHeaderLength = offsetTar + 8

// isTar checks if the header matches the magic bytes for tar files
func isTar(data []byte) bool {
	return matchesMagicBytes(data, offsetTar, magicBytesTar)
}

// tarDecoder decodes uncompressed tar archives.
type tarDecoder struct{}

// TarDecoder returns a [Decoder] for uncompressed tar archives.
func TarDecoder() Decoder {
	return tarDecoder{}
}

// Name returns the file extension for tar files
func (tarDecoder) Name() string {
	return fileExtensionTar
}

// Decode returns the entries of data, or nothing if data is not a tar archive.
func (tarDecoder) Decode(ctx context.Context, data []byte, cfg *Config) ([]Entry, error) {
	if !isTar(data) {
		return nil, nil
	}
	return decodeTar(ctx, bytes.NewReader(data), cfg)
}

// compressedTarDecoder decodes tar archives wrapped in a compression format.
type compressedTarDecoder struct {
	name        string
	headerCheck headerCheck
	open        decompressionFunc
}

// headerCheck is a function that checks if the given header matches the expected magic bytes.
type headerCheck func([]byte) bool

// decompressionFunc returns a reader that decompresses src.
type decompressionFunc func(src io.Reader) (io.ReadCloser, error)

// Name returns the combined file extension, e.g. tar.gz
func (d compressedTarDecoder) Name() string {
	return d.name
}

// Decode decompresses data and decodes the contained tar archive. If data is not
// compressed with the expected algorithm, or the decompressed stream is not a tar
// archive, nothing is returned.
func (d compressedTarDecoder) Decode(ctx context.Context, data []byte, cfg *Config) ([]Entry, error) {
	if !d.headerCheck(data) {
		return nil, nil
	}

	// start decompression
	stream, err := d.open(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot start decompression: %w", err)
	}
	defer stream.Close()

	// check if context is canceled
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// peek into the uncompressed stream
	hr, err := newHeaderReader(stream, tarHeaderLength)
	if err != nil {
		return nil, fmt.Errorf("cannot read uncompressed header: %w", err)
	}
	if !isTar(hr.PeekHeader()) {
		cfg.Logger().Debug("decompressed content is not a tar archive", "decoder", d.name)
		return nil, nil
	}

	return decodeTar(ctx, hr, cfg)
}

// decodeTar reads all entries of the tar archive in src.
func decodeTar(ctx context.Context, src io.Reader, cfg *Config) ([]Entry, error) {
	tr := tar.NewReader(src)

	var entries []Entry
	var objectCounter int64
	counter := newExtractionCounter(cfg)

	for {
		// check if context is canceled
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// get next header
		hdr, err := tr.Next()
		if err == io.EOF {
			return entries, nil
		}
		if err != nil {
			return nil, fmt.Errorf("error reading tar: %w", err)
		}

		// check if maximum of objects is exceeded
		objectCounter++
		if err := cfg.CheckMaxFiles(objectCounter); err != nil {
			return nil, err
		}

		e := Entry{
			Path:    archivePath(hdr.Name),
			Mode:    fs.FileMode(hdr.Mode).Perm(),
			ModTime: hdr.ModTime,
		}

		switch hdr.Typeflag {

		case tar.TypeDir:
			e.Type = TypeDirectory

		case tar.TypeReg:
			e.Type = TypeFile
			if e.Data, err = counter.readAll(tr); err != nil {
				return nil, fmt.Errorf("cannot read %s: %w", hdr.Name, err)
			}

		case tar.TypeSymlink:
			e.Type = TypeSymlink
			e.Linkname = hdr.Linkname

		case tar.TypeLink:
			e.Type = TypeHardlink
			e.Linkname = archivePath(hdr.Linkname)

		default:
			cfg.Logger().Debug("skipping unsupported entry", "name", hdr.Name, "type", string(hdr.Typeflag))
			continue
		}

		if len(e.Path) == 0 {
			cfg.Logger().Debug("skipping entry without name", "type", string(hdr.Typeflag))
			continue
		}

		entries = append(entries, e)
	}
}

// archivePath makes a member name from an archive relative by removing leading slashes.
func archivePath(name string) string {
	return strings.TrimLeft(name, "/")
}
