// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package decompress

import (
	"io"

	"github.com/klauspost/pgzip"
)

// fileExtensionTarGZip is the file extension for tar archives compressed with gzip.
const fileExtensionTarGZip = "tar.gz"

// magicBytesGZip are the magic bytes for gzip compressed files.
//
// https://socketloop.com/tutorials/golang-gunzip-file
var magicBytesGZip = [][]byte{
	{0x1f, 0x8b},
}

// isGZip checks if the header matches the magic bytes for gzip compressed files.
func isGZip(header []byte) bool {
	return matchesMagicBytes(header, 0, magicBytesGZip)
}

// TarGzDecoder returns a [Decoder] for tar archives compressed with gzip.
func TarGzDecoder() Decoder {
	return compressedTarDecoder{
		name:        fileExtensionTarGZip,
		headerCheck: isGZip,
		open:        decompressGZipStream,
	}
}

// decompressGZipStream returns an io.ReadCloser that decompresses src with gzip algorithm.
func decompressGZipStream(src io.Reader) (io.ReadCloser, error) {
	return pgzip.NewReader(src)
}
