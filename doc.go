// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package decompress extracts tar, tar.gz, tar.bz2 and zip archives, and optionally
// tar.xz, tar.zst, tar.lz4, tar.sz, tar.zz, rar and 7z, onto the filesystem without
// ever writing outside of the output directory.
//
// [Extract] decodes the whole archive into memory with the configured [Decoder]s,
// applies the transformations of the [Config] (strip leading path segments, filter,
// map) and writes the resulting [Entry] values concurrently. Every directory that is
// created and every file, symlink and hard link that is written is checked against
// the canonical output directory, resolving symlinks that earlier entries of the
// same archive may have planted. Path traversal, symlinked parent directories and
// writes through symlinks fail with [ErrRefused].
//
// Without an output directory, [Extract] only returns the entries that would have
// been written.
//
// Configuration is done using the [Config], which is built with [NewConfig] and
// [ConfigOption]s for the transformations, the decoders, the logger, the telemetry
// hook and the limits that protect against resource exhaustion.
package decompress
