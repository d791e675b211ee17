// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package decompress

import (
	"bytes"
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Decoder turns the raw bytes of an archive into entries.
//
// A decoder that does not recognize data must return no entries and no error, so
// several decoders can be tried on the same input. An error is only returned if the
// decoder recognized its format and failed to decode it.
type Decoder interface {
	// Name returns a short identifier of the format, e.g. "tar.gz".
	Name() string

	// Decode returns the entries in archive order.
	Decode(ctx context.Context, data []byte, cfg *Config) ([]Entry, error)
}

// DefaultDecoders returns the decoders that are used if none are configured:
// tar, tar.bz2, tar.gz and zip, in this order.
func DefaultDecoders() []Decoder {
	return []Decoder{
		TarDecoder(),
		TarBzip2Decoder(),
		TarGzDecoder(),
		ZipDecoder(),
	}
}

// AvailableDecoders returns all built-in decoders by name.
func AvailableDecoders() map[string]Decoder {
	available := map[string]Decoder{}
	for _, d := range []Decoder{
		RarDecoder(),
		SevenZipDecoder(),
		TarDecoder(),
		TarBzip2Decoder(),
		TarGzDecoder(),
		TarLZ4Decoder(),
		TarSnappyDecoder(),
		TarXzDecoder(),
		TarZlibDecoder(),
		TarZstdDecoder(),
		ZipDecoder(),
	} {
		available[d.Name()] = d
	}
	return available
}

// runDecoders runs all configured decoders concurrently on data and concatenates
// their entries in the order of the configuration.
func runDecoders(ctx context.Context, data []byte, cfg *Config) ([]Entry, error) {
	decoders := cfg.Decoders()
	if len(decoders) == 0 {
		return []Entry{}, nil
	}

	results := make([][]Entry, len(decoders))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, d := range decoders {
		eg.Go(func() error {
			entries, err := d.Decode(egCtx, data, cfg)
			if err != nil {
				return fmt.Errorf("%s decoder: %w", d.Name(), err)
			}
			cfg.Logger().Debug("decoded", "decoder", d.Name(), "entries", len(entries))
			results[i] = entries
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// concatenate in configuration order
	var n int
	for _, r := range results {
		n += len(r)
	}
	entries := make([]Entry, 0, n)
	for _, r := range results {
		entries = append(entries, r...)
	}
	return entries, nil
}

// matchesMagicBytes checks if data contains one of magicBytes at offset.
func matchesMagicBytes(data []byte, offset int, magicBytes [][]byte) bool {
	// check all possible magic bytes until match is found
	for _, mb := range magicBytes {
		// check if header is long enough
		if offset+len(mb) > len(data) {
			continue
		}

		// check for byte match
		if bytes.Equal(mb, data[offset:offset+len(mb)]) {
			return true
		}
	}

	// no match found
	return false
}
