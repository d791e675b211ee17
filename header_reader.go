// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package decompress

import (
	"fmt"
	"io"
)

// headerReader is an implementation of io.Reader that allows the first bytes of
// the reader to be read twice. This is useful for checking whether a decompressed
// stream contains a tar archive before decoding it.
type headerReader struct {
	r      io.Reader
	header []byte
	peeked []byte
}

func newHeaderReader(r io.Reader, headerSize int) (*headerReader, error) {
	// read at least headerSize bytes. If EOF, capture whatever was read.
	buf := make([]byte, headerSize)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("cannot read header: %w", err)
	}
	return &headerReader{r: r, header: buf[:n], peeked: buf[:n]}, nil
}

func (p *headerReader) Read(b []byte) (int, error) {
	// read from header first
	if len(p.header) > 0 {
		n := copy(b, p.header)
		p.header = p.header[n:]
		return n, nil
	}

	// then continue reading from the source
	return p.r.Read(b)
}

// PeekHeader returns the bytes read ahead, independent of how much has been consumed.
func (p *headerReader) PeekHeader() []byte {
	return p.peeked
}
