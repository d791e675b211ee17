// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package decompress

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// safeMakeDir ensures that dir exists and that its canonical path is inside realRoot.
//
// If dir does not exist yet, its parent is handled first, recursively, so every
// directory is only created after its canonical parent has been proven to be inside
// realRoot. After creation, dir is resolved again and checked, because any component
// may be a symlink planted by an earlier entry. Nothing is cached between calls.
//
// The canonical path of dir is returned.
func safeMakeDir(t Target, dir string, realRoot string, mode fs.FileMode) (string, error) {

	// resolve the directory or, if it is missing, create its parent first
	realParent, err := t.Realpath(dir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("cannot resolve %s: %w", dir, err)
		}

		// reached the filesystem root without finding an existing directory
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("cannot resolve %s: %w", dir, err)
		}

		if realParent, err = safeMakeDir(t, parent, realRoot, mode); err != nil {
			return "", err
		}
	}

	// the existing directory, or the parent of the missing one, must be inside the root
	if !isContained(realParent, realRoot) {
		return "", refuse("create a directory outside the output path", realParent)
	}

	if err := t.CreateDir(dir, mode); err != nil {
		return "", err
	}

	// check again, dir could have been replaced by a symlink in the meantime
	realDir, err := t.Realpath(dir)
	if err != nil {
		return "", fmt.Errorf("cannot resolve %s: %w", dir, err)
	}
	if !isContained(realDir, realRoot) {
		return "", refuse("create a directory outside the output path", realDir)
	}

	return realDir, nil
}

// preventWritingThroughSymlink returns an error if destination exists and is a
// symlink. A missing destination, or any other kind of file, is fine.
func preventWritingThroughSymlink(t Target, destination string) error {
	isLink, err := isSymlink(t, destination)
	if err != nil {
		return fmt.Errorf("failed to check symlink: %w", err)
	}
	if isLink {
		return refuse("write into a symlink", destination)
	}
	return nil
}

// ensureWithinRoot resolves dir and checks that it is inside realRoot.
func ensureWithinRoot(t Target, dir string, realRoot string) error {
	realDir, err := t.Realpath(dir)
	if err != nil {
		return fmt.Errorf("cannot resolve %s: %w", dir, err)
	}
	if !isContained(realDir, realRoot) {
		return refuse("write outside output directory", realDir)
	}
	return nil
}

// isContained reports whether the canonical path p is realRoot or below it. The
// comparison is done on whole path segments, so /out2 is not inside /out.
func isContained(p string, realRoot string) bool {
	if p == realRoot {
		return true
	}
	prefix := realRoot
	if !strings.HasSuffix(prefix, string(os.PathSeparator)) {
		prefix += string(os.PathSeparator)
	}
	return strings.HasPrefix(p, prefix)
}

// isSymlink checks if path is a symlink
//
// The function returns true if the path is a symlink, otherwise false.
func isSymlink(t Target, path string) (bool, error) {
	// ignore empty checks
	if len(path) == 0 {
		return false, fmt.Errorf("empty path")
	}

	// perform check
	stat, err := t.Lstat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check path: %w", err)
	}

	// check if we got stats
	if stat == nil {
		return false, fmt.Errorf("failed to get stats")
	}

	return stat.Mode()&os.ModeSymlink == os.ModeSymlink, nil
}
