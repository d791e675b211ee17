// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package decompress

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"io/fs"
	"testing"
	"time"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/snappy"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/klauspost/pgzip"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// testModTime is the modification time of all generated archive members
var testModTime = time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC)

// tarContent is a struct to store the content of a tar file
type tarContent struct {
	content    []byte
	linktarget string
	mode       fs.FileMode
	name       string
	fileType   byte
}

// packTar creates a tar file with the given content
func packTar(t *testing.T, content []tarContent) []byte {
	t.Helper()

	// create tar writer
	writeBuffer := bytes.NewBuffer([]byte{})
	tw := tar.NewWriter(writeBuffer)

	// write content
	for _, c := range content {
		mode := c.mode
		if mode == 0 {
			mode = 0644
		}

		// create header
		hdr := &tar.Header{
			Name:     c.name,
			Mode:     int64(mode),
			Size:     int64(len(c.content)),
			Linkname: c.linktarget,
			Typeflag: c.fileType,
			ModTime:  testModTime,
			Format:   tar.FormatPAX,
		}

		// write header
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatalf("error writing tar header: %v", err)
		}

		// write data
		if _, err := tw.Write(c.content); err != nil {
			t.Fatalf("error writing tar data: %v", err)
		}
	}

	// close tar writer
	if err := tw.Close(); err != nil {
		t.Fatalf("error closing tar writer: %v", err)
	}

	return writeBuffer.Bytes()
}

// zipContent is a struct to store the content of a zip file
type zipContent struct {
	content []byte
	mode    fs.FileMode
	name    string
}

// packZip creates a zip file with the given content. Symlinks carry their target as content.
func packZip(t *testing.T, content []zipContent) []byte {
	t.Helper()

	buf := bytes.NewBuffer([]byte{})
	zw := zip.NewWriter(buf)

	for _, c := range content {
		hdr := &zip.FileHeader{
			Name:     c.name,
			Method:   zip.Deflate,
			Modified: testModTime,
		}
		mode := c.mode
		if mode == 0 {
			mode = 0644
		}
		hdr.SetMode(mode)

		w, err := zw.CreateHeader(hdr)
		if err != nil {
			t.Fatalf("error creating zip header: %v", err)
		}
		if _, err := w.Write(c.content); err != nil {
			t.Fatalf("error writing zip data: %v", err)
		}
	}

	if err := zw.Close(); err != nil {
		t.Fatalf("error closing zip writer: %v", err)
	}

	return buf.Bytes()
}

// compressGzip compresses data with gzip algorithm.
func compressGzip(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := pgzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("error writing data to gzip writer: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("error closing gzip writer: %v", err)
	}
	return buf.Bytes()
}

// compressBzip2 compresses data with bzip2 algorithm.
func compressBzip2(t *testing.T, data []byte) []byte {
	t.Helper()

	// Create a new Bzip2 writer
	var buf bytes.Buffer
	w, err := bzip2.NewWriter(&buf, &bzip2.WriterConfig{
		Level: bzip2.DefaultCompression,
	})
	if err != nil {
		t.Fatalf("error creating bzip2 writer: %v", err)
	}

	// Write the data to the Bzip2 writer
	if _, err := w.Write(data); err != nil {
		t.Fatalf("error writing data to bzip2 writer: %v", err)
	}

	// Close the Bzip2 writer
	if err := w.Close(); err != nil {
		t.Fatalf("error closing bzip2 writer: %v", err)
	}

	return buf.Bytes()
}

// compressXz compresses the data using the Xz algorithm
func compressXz(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		t.Fatalf("error creating xz writer: %v", err)
	}
	if _, err := w.Write(data); err != nil {
		t.Fatalf("error writing data to xz writer: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("error closing xz writer: %v", err)
	}
	return buf.Bytes()
}

// compressZstd compresses the data using the zstandard algorithm
func compressZstd(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		t.Fatalf("error creating zstd writer: %v", err)
	}
	_, err = enc.Write(data)
	enc.Close()
	if err != nil {
		t.Fatalf("error writing data to zstd writer: %v", err)
	}
	return buf.Bytes()
}

// compressSnappy compresses the data using the snappy framing format
func compressSnappy(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := snappy.NewBufferedWriter(&buf)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("error writing data to snappy writer: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("error closing snappy writer: %v", err)
	}
	return buf.Bytes()
}

// compressZlib compresses the data using the zlib algorithm
func compressZlib(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("error writing data to zlib writer: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("error closing zlib writer: %v", err)
	}
	return buf.Bytes()
}

// compressLZ4 compresses the data using the LZ4 algorithm
func compressLZ4(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("error writing data to lz4 writer: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("error closing lz4 writer: %v", err)
	}
	return buf.Bytes()
}

// entryPaths returns the paths of entries in order.
func entryPaths(entries []Entry) []string {
	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		paths = append(paths, e.Path)
	}
	return paths
}
