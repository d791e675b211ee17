// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package decompress

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// TargetDisk is the struct type that holds all information for interacting with the filesystem
type TargetDisk struct{}

// NewTargetDisk creates a new TargetDisk
func NewTargetDisk() *TargetDisk {
	// create object
	td := &TargetDisk{}
	return td
}

// CreateDir creates a directory at the specified path with the specified mode. If the directory already
// exists, nothing is done.
func (d *TargetDisk) CreateDir(path string, mode fs.FileMode) error {

	// create dirs
	if err := os.MkdirAll(path, mode.Perm()); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	return nil
}

// CreateFile creates or truncates the file at path and writes src to it. The permission
// bits are set explicitly after opening, so the process umask does not change them.
func (d *TargetDisk) CreateFile(path string, src io.Reader, mode fs.FileMode) (int64, error) {

	// create dst file, refusing to follow a symlink where supported
	dstFile, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC|openFlagNoFollow, mode.Perm())
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		dstFile.Close()
	}()

	// write data to file
	n, err := io.Copy(dstFile, src)
	if err != nil {
		return n, fmt.Errorf("failed to write file: %w", err)
	}

	// an existing file keeps its old mode on open, and new files are masked by the process umask
	if err := dstFile.Chmod(mode.Perm()); err != nil {
		return n, fmt.Errorf("failed to set file mode: %w", err)
	}

	return n, nil
}

// CreateSymlink creates newname as a symbolic link to oldname.
func (d *TargetDisk) CreateSymlink(oldname string, newname string) error {
	if err := os.Symlink(oldname, newname); err != nil {
		return fmt.Errorf("failed to create symlink: %w", err)
	}
	return nil
}

// CreateHardlink creates newname as a hard link to the oldname file.
func (d *TargetDisk) CreateHardlink(oldname string, newname string) error {
	if err := os.Link(oldname, newname); err != nil {
		return fmt.Errorf("failed to create hard link: %w", err)
	}
	return nil
}

// Lstat returns the FileInfo structure describing the named file.
// If there is an error, it will be of type *PathError.
func (d *TargetDisk) Lstat(name string) (fs.FileInfo, error) {
	return os.Lstat(name)
}

// Realpath resolves all symlinks in path and returns it as an absolute path.
func (d *TargetDisk) Realpath(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", err
	}
	return filepath.Abs(resolved)
}

// Chtimes changes the access and modification times of the named file.
func (d *TargetDisk) Chtimes(name string, atime, mtime time.Time) error {
	return os.Chtimes(name, atime, mtime)
}
