// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package decompress

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// fileExtensionTarZstd is the file extension for tar archives compressed with zstandard
const fileExtensionTarZstd = "tar.zst"

// magicBytesZstd are the magic bytes for zstandard compressed files
// reference: https://www.rfc-editor.org/rfc/rfc8878.html#name-zstandard-frames
var magicBytesZstd = [][]byte{
	{0x28, 0xB5, 0x2F, 0xFD},
}

// isZstd checks if the header matches the magic bytes for zstandard compressed files
func isZstd(header []byte) bool {
	return matchesMagicBytes(header, 0, magicBytesZstd)
}

// TarZstdDecoder returns a [Decoder] for tar archives compressed with zstandard. It is
// not part of [DefaultDecoders].
func TarZstdDecoder() Decoder {
	return compressedTarDecoder{
		name:        fileExtensionTarZstd,
		headerCheck: isZstd,
		open:        decompressZstdStream,
	}
}

// decompressZstdStream returns an io.ReadCloser that decompresses src with zstandard algorithm.
func decompressZstdStream(src io.Reader) (io.ReadCloser, error) {
	zr, err := zstd.NewReader(src)
	if err != nil {
		return nil, err
	}
	return zr.IOReadCloser(), nil
}
