// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package decompress

import (
	"io"

	"github.com/klauspost/compress/snappy"
)

// fileExtensionTarSnappy is the file extension for tar archives compressed with snappy.
const fileExtensionTarSnappy = "tar.sz"

// magicBytesSnappy is the magic bytes for snappy framed files.
var magicBytesSnappy = [][]byte{
	append([]byte{0xff, 0x06, 0x00, 0x00}, []byte("sNaPpY")...),
}

// isSnappy checks if the header matches the snappy magic bytes.
func isSnappy(header []byte) bool {
	return matchesMagicBytes(header, 0, magicBytesSnappy)
}

// TarSnappyDecoder returns a [Decoder] for tar archives compressed with the snappy
// framing format. It is not part of [DefaultDecoders].
func TarSnappyDecoder() Decoder {
	return compressedTarDecoder{
		name:        fileExtensionTarSnappy,
		headerCheck: isSnappy,
		open:        decompressSnappyStream,
	}
}

// decompressSnappyStream returns an io.ReadCloser that decompresses src with snappy algorithm
func decompressSnappyStream(src io.Reader) (io.ReadCloser, error) {
	return &noopReaderCloser{snappy.NewReader(src)}, nil
}
