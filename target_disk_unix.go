// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

//go:build unix

package decompress

import (
	"bufio"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// openFlagNoFollow makes opening a file fail if the last path element is a symlink.
const openFlagNoFollow = unix.O_NOFOLLOW

// procStatus is read for the umask of the process on Linux 4.7 and later.
const procStatus = "/proc/self/status"

// processUmask returns the file creation mask of the process. It is taken from
// /proc if possible. Otherwise the mask can only be read by setting it, which
// briefly clears the mask for all goroutines of the process, so it is restored
// immediately.
func processUmask() fs.FileMode {
	if f, err := os.Open(procStatus); err == nil {
		defer f.Close()
		if mask, ok := parseStatusUmask(f); ok {
			return mask
		}
	}

	mask := unix.Umask(0)
	unix.Umask(mask)
	return fs.FileMode(mask).Perm()
}

// parseStatusUmask returns the value of the "Umask:" line of a /proc status file.
func parseStatusUmask(r io.Reader) (fs.FileMode, bool) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		value, found := strings.CutPrefix(scanner.Text(), "Umask:")
		if !found {
			continue
		}
		mask, err := strconv.ParseUint(strings.TrimSpace(value), 8, 32)
		if err != nil {
			return 0, false
		}
		return fs.FileMode(mask).Perm(), true
	}
	return 0, false
}

// canCreateSymlinks determines whether symlinks can be created natively on the
// current platform.
const canCreateSymlinks = true
