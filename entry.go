// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package decompress

import (
	"io/fs"
	"time"
)

// EntryType is the kind of an archive member.
type EntryType string

const (
	// TypeFile is a regular file with content in [Entry.Data].
	TypeFile EntryType = "file"

	// TypeDirectory is a directory.
	TypeDirectory EntryType = "directory"

	// TypeSymlink is a symbolic link pointing to [Entry.Linkname].
	TypeSymlink EntryType = "symlink"

	// TypeHardlink is a hard link to another member of the same archive, named by [Entry.Linkname].
	TypeHardlink EntryType = "link"
)

// Entry is one decoded archive member.
//
// Entries are values: the transformation stages and the materializer never modify
// an entry in place, they produce a new one. Data is shared between copies and must
// be treated as read-only.
type Entry struct {
	// Path is relative to the archive root and slash separated. Directory entries
	// may keep a trailing slash.
	Path string

	// Type is the kind of member.
	Type EntryType

	// Data is the content of a file entry.
	Data []byte

	// Linkname is the link target of symlink and hardlink entries.
	Linkname string

	// Mode holds the permission bits of the member.
	Mode fs.FileMode

	// ModTime is the modification time of the member.
	ModTime time.Time
}

// IsDir returns true if the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Type == TypeDirectory
}
