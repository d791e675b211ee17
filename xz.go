// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package decompress

import (
	"io"

	"github.com/ulikunitz/xz"
)

// fileExtensionTarXz is the file extension for tar archives compressed with xz
const fileExtensionTarXz = "tar.xz"

// magicBytesXz are the magic bytes for xz compressed files
// reference: https://tukaani.org/xz/xz-file-format-1.0.4.txt
var magicBytesXz = [][]byte{
	{0xFD, 0x37, 0x7A, 0x58, 0x5A, 0x00},
}

// isXz checks if the header matches the magic bytes for xz compressed files
func isXz(header []byte) bool {
	return matchesMagicBytes(header, 0, magicBytesXz)
}

// TarXzDecoder returns a [Decoder] for tar archives compressed with xz. It is not part
// of [DefaultDecoders].
func TarXzDecoder() Decoder {
	return compressedTarDecoder{
		name:        fileExtensionTarXz,
		headerCheck: isXz,
		open:        decompressXzStream,
	}
}

// decompressXzStream returns an io.ReadCloser that decompresses src with xz algorithm.
func decompressXzStream(src io.Reader) (io.ReadCloser, error) {
	r, err := xz.NewReader(src)
	if err != nil {
		return nil, err
	}
	return &noopReaderCloser{r}, nil
}
