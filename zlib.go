// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package decompress

import (
	"io"

	"github.com/klauspost/compress/zlib"
)

// fileExtensionTarZlib is the file extension for tar archives compressed with zlib.
const fileExtensionTarZlib = "tar.zz"

// magicBytesZlib is the magic bytes for Zlib files.
// reference https://www.ietf.org/rfc/rfc1950.txt
var magicBytesZlib = [][]byte{
	{0x78, 0x01},
	{0x78, 0x5e},
	{0x78, 0x9c},
	{0x78, 0xda},
	{0x78, 0x20},
	{0x78, 0x7d},
	{0x78, 0xbb},
	{0x78, 0xf9},
}

// isZlib checks if the header matches the Zlib magic bytes.
func isZlib(header []byte) bool {
	return matchesMagicBytes(header, 0, magicBytesZlib)
}

// TarZlibDecoder returns a [Decoder] for tar archives compressed with zlib. It is not
// part of [DefaultDecoders].
func TarZlibDecoder() Decoder {
	return compressedTarDecoder{
		name:        fileExtensionTarZlib,
		headerCheck: isZlib,
		open:        decompressZlibStream,
	}
}

// decompressZlibStream returns an io.ReadCloser that decompresses src with zlib algorithm
func decompressZlibStream(src io.Reader) (io.ReadCloser, error) {
	return zlib.NewReader(src)
}
