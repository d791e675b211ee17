// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package decompress

import (
	"io"

	"github.com/dsnet/compress/bzip2"
)

// fileExtensionTarBzip2 is the file extension for tar archives compressed with bzip2
const fileExtensionTarBzip2 = "tar.bz2"

// magicBytesBzip2 are the magic bytes for bzip2 compressed files
// reference: https://en.wikipedia.org/wiki/Bzip2 // https://github.com/dsnet/compress/blob/master/doc/bzip2-format.pdf
var magicBytesBzip2 = [][]byte{
	[]byte("BZh1"),
	[]byte("BZh2"),
	[]byte("BZh3"),
	[]byte("BZh4"),
	[]byte("BZh5"),
	[]byte("BZh6"),
	[]byte("BZh7"),
	[]byte("BZh8"),
	[]byte("BZh9"),
}

// isBzip2 checks if the header matches the magic bytes for bzip2 compressed files
func isBzip2(header []byte) bool {
	return matchesMagicBytes(header, 0, magicBytesBzip2)
}

// TarBzip2Decoder returns a [Decoder] for tar archives compressed with bzip2.
func TarBzip2Decoder() Decoder {
	return compressedTarDecoder{
		name:        fileExtensionTarBzip2,
		headerCheck: isBzip2,
		open:        decompressBz2Stream,
	}
}

func decompressBz2Stream(src io.Reader) (io.ReadCloser, error) {
	return bzip2.NewReader(src, nil)
}
