// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package decompress

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

// fileExtensionTarLZ4 is the file extension for tar archives compressed with LZ4.
const fileExtensionTarLZ4 = "tar.lz4"

// magicBytesLZ4 is the magic bytes for LZ4 files.
// reference https://android.googlesource.com/platform/external/lz4/+/HEAD/doc/lz4_Frame_format.md
var magicBytesLZ4 = [][]byte{
	{0x04, 0x22, 0x4D, 0x18},
}

// isLZ4 checks if the header matches the LZ4 magic bytes.
func isLZ4(header []byte) bool {
	return matchesMagicBytes(header, 0, magicBytesLZ4)
}

// TarLZ4Decoder returns a [Decoder] for tar archives compressed with LZ4. It is not
// part of [DefaultDecoders].
func TarLZ4Decoder() Decoder {
	return compressedTarDecoder{
		name:        fileExtensionTarLZ4,
		headerCheck: isLZ4,
		open:        decompressLZ4Stream,
	}
}

// decompressLZ4Stream returns an io.ReadCloser that decompresses src with LZ4 algorithm
func decompressLZ4Stream(src io.Reader) (io.ReadCloser, error) {
	return &noopReaderCloser{lz4.NewReader(src)}, nil
}
