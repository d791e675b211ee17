// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package decompress

import (
	"io"
	"io/fs"
	"time"
)

// Target specifies all filesystem primitives that are needed to materialize the
// entries of an archive. Every call may be issued concurrently for different entries.
type Target interface {
	// CreateFile creates or truncates the file at path and writes src as content. The
	// file gets exactly the permission bits in mode, without applying any process wide
	// umask. Implementations must not follow a symlink at path where the platform
	// allows it. The number of bytes written is returned.
	CreateFile(path string, src io.Reader, mode fs.FileMode) (int64, error)

	// CreateDir creates the directory at path with the specified mode, including
	// missing parents. If the directory already exists, nothing is done.
	CreateDir(path string, mode fs.FileMode) error

	// CreateSymlink creates newname as a symbolic link to oldname.
	CreateSymlink(oldname string, newname string) error

	// CreateHardlink creates newname as a hard link to the oldname file.
	CreateHardlink(oldname string, newname string) error

	// Lstat see docs for os.Lstat. Main purpose is to check for symlinks at a
	// destination before writing to it.
	Lstat(path string) (fs.FileInfo, error)

	// Realpath returns the absolute path of path with all symlinks resolved. If path
	// does not exist, the returned error must match fs.ErrNotExist.
	Realpath(path string) (string, error)

	// Chtimes see docs for os.Chtimes. Main purpose is to set the modification time
	// of extracted files and directories.
	Chtimes(name string, atime, mtime time.Time) error
}
