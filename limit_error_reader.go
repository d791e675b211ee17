// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package decompress

import (
	"errors"
	"io"
)

// errReadLimitExceeded is returned by a [limitErrorReader] once its limit is reached.
var errReadLimitExceeded = errors.New("read limit exceeded")

// limitErrorReader is a reader that returns an error if the limit is exceeded
// before the underlying reader is fully read.
// If the limit is -1, all data from the original reader is read.
type limitErrorReader struct {
	R io.Reader // underlying reader
	L int64     // limit
	N int64     // number of bytes read
}

// Read reads from the underlying reader and fills up p.
// It returns an error if the limit is exceeded, even if the underlying reader is not fully read.
// If the limit is -1, all data from the original reader is read.
func (l *limitErrorReader) Read(p []byte) (int, error) {
	// determine how many bytes to read
	m := l.L - l.N
	if l.L == -1 || m > int64(len(p)) {
		m = int64(len(p))
	}

	// check if limit has exceeded, a final read that hits EOF is still fine
	if m == 0 && len(p) > 0 {
		var next [1]byte
		n, err := l.R.Read(next[:])
		if n == 0 && err != nil {
			return 0, err
		}
		return 0, errReadLimitExceeded
	}

	// read from underlying reader and preserve error type
	n, err := l.R.Read(p[:m])
	l.N += int64(n)
	return n, err
}

// ReadBytes returns how many bytes have been read from the underlying reader
func (l *limitErrorReader) ReadBytes() int64 {
	return l.N
}

// newLimitErrorReader returns a new LimitErrorReader that reads from r
func newLimitErrorReader(r io.Reader, limit int64) *limitErrorReader {
	return &limitErrorReader{R: r, L: limit, N: 0}
}

// readAllLimited reads r completely. If more than limit bytes are available,
// limitErr is returned. A limit of -1 disables the check.
func readAllLimited(r io.Reader, limit int64, limitErr error) ([]byte, error) {
	data, err := io.ReadAll(newLimitErrorReader(r, limit))
	if errors.Is(err, errReadLimitExceeded) {
		return nil, limitErr
	}
	return data, err
}

// extractionCounter accounts the decoded bytes of all entries of one archive
// against [Config.MaxExtractionSize].
type extractionCounter struct {
	cfg *Config
	n   int64
}

// newExtractionCounter returns a counter for the limits of cfg.
func newExtractionCounter(cfg *Config) *extractionCounter {
	return &extractionCounter{cfg: cfg}
}

// readAll reads r completely. If the content of r together with everything read
// before exceeds the maximum extraction size, [ErrMaxExtractionSizeExceeded] is
// returned without reading more than the remaining budget.
func (c *extractionCounter) readAll(r io.Reader) ([]byte, error) {
	limit := int64(-1)
	if c.cfg.MaxExtractionSize() != -1 {
		limit = c.cfg.MaxExtractionSize() - c.n
	}

	l := newLimitErrorReader(r, limit)
	data, err := io.ReadAll(l)
	c.n += l.ReadBytes()
	if errors.Is(err, errReadLimitExceeded) {
		return nil, ErrMaxExtractionSizeExceeded
	}
	if err != nil {
		return nil, err
	}

	if err := c.cfg.CheckExtractionSize(c.n); err != nil {
		return nil, err
	}
	return data, nil
}
