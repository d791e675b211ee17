// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

//go:build !unix

package decompress

import (
	"io/fs"
	"runtime"
)

// openFlagNoFollow is not available on this platform.
const openFlagNoFollow = 0

// processUmask returns the file creation mask of the process. There is no umask
// on this platform.
func processUmask() fs.FileMode {
	return 0
}

// canCreateSymlinks determines whether symlinks can be created natively on the
// current platform. Windows requires elevated privileges, so hard links are used.
var canCreateSymlinks = runtime.GOOS != "windows"
