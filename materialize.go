// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package decompress

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sync/atomic"
	"time"

	securejoin "github.com/cyphar/filepath-securejoin"
	"golang.org/x/sync/errgroup"
)

// materializer writes entries below a canonical output root.
type materializer struct {
	t        Target
	cfg      *Config
	realRoot string
	umask    fs.FileMode
	dirMode  fs.FileMode
	now      time.Time
	td       *TelemetryData
}

// materialize creates output if necessary and writes all entries below it.
//
// Symlinks are created first, one after another in list order, so that files and
// directories written below or through them always meet the link and are refused.
// Files and directories are then started in list order and run concurrently,
// limited by [Config.Concurrency]. Hard links follow in list order, since their
// source is another entry of the archive, possibly another hard link. Directory
// timestamps are restored last, because creating children modifies them. Every
// write proves its own containment against the live filesystem. The first error is
// returned, entries that already started are not interrupted and nothing is rolled
// back.
func materialize(ctx context.Context, entries []Entry, output string, umask fs.FileMode, cfg *Config, td *TelemetryData) error {
	t := cfg.Target()
	dirMode := cfg.CustomCreateDirMode().Perm() &^ umask

	// ensure the output root exists and compute the trust boundary once
	if err := t.CreateDir(output, dirMode); err != nil {
		return fmt.Errorf("cannot create output directory: %w", err)
	}
	realRoot, err := t.Realpath(output)
	if err != nil {
		return fmt.Errorf("cannot resolve output directory: %w", err)
	}
	cfg.Logger().Debug("resolved output directory", "output", output, "root", realRoot)

	m := &materializer{
		t:        t,
		cfg:      cfg,
		realRoot: realRoot,
		umask:    umask,
		dirMode:  dirMode,
		now:      now(),
		td:       td,
	}

	// symlinks that fall back to hard links need their source, like hard links
	symlinks := func(e Entry) bool { return e.Type == TypeSymlink && canCreateSymlinks }
	hardlinks := func(e Entry) bool {
		return e.Type == TypeHardlink || (e.Type == TypeSymlink && !canCreateSymlinks)
	}
	others := func(e Entry) bool { return !symlinks(e) && !hardlinks(e) }

	if err := m.each(ctx, entries, symlinks, m.write, 1); err != nil {
		return err
	}
	if err := m.each(ctx, entries, others, m.write, cfg.Concurrency()); err != nil {
		return err
	}
	if err := m.each(ctx, entries, hardlinks, m.write, 1); err != nil {
		return err
	}
	return m.each(ctx, entries, Entry.IsDir, m.restoreDirTimes, cfg.Concurrency())
}

// each runs fn for all entries for which match returns true, with at most limit
// entries in flight. A limit of 1 processes the entries in list order.
func (m *materializer) each(ctx context.Context, entries []Entry, match func(Entry) bool, fn func(Entry) error, limit int) error {
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)
	for _, e := range entries {
		if !match(e) {
			continue
		}
		eg.Go(func() error {
			// do not start new work after a failure
			if err := egCtx.Err(); err != nil {
				return err
			}
			return fn(e)
		})
	}
	return eg.Wait()
}

// destination returns the location of e below the output root.
func (m *materializer) destination(e Entry) string {
	return filepath.Join(m.realRoot, filepath.FromSlash(e.Path))
}

// write materializes a single entry.
func (m *materializer) write(e Entry) error {
	dst := m.destination(e)
	m.cfg.Logger().Debug("extract", "name", e.Path, "type", string(e.Type))

	switch e.Type {

	case TypeDirectory:
		if _, err := safeMakeDir(m.t, dst, m.realRoot, m.dirMode); err != nil {
			return err
		}
		atomic.AddInt64(&m.td.ExtractedDirs, 1)
		return nil

	case TypeFile, TypeSymlink, TypeHardlink:

	default:
		return fmt.Errorf("cannot extract %s: unsupported entry type %q", e.Path, e.Type)
	}

	// ensure the parent directory exists inside the root
	dstDir := filepath.Dir(dst)
	if _, err := safeMakeDir(m.t, dstDir, m.realRoot, m.dirMode); err != nil {
		return err
	}

	// a symlink at the destination would redirect the content
	if e.Type == TypeFile {
		if err := preventWritingThroughSymlink(m.t, dst); err != nil {
			return err
		}
	}

	// the parent could have been swapped since it was created
	if err := ensureWithinRoot(m.t, dstDir, m.realRoot); err != nil {
		return err
	}

	switch e.Type {

	case TypeHardlink:
		src, err := m.linkSource(e.Linkname)
		if err != nil {
			return err
		}
		if err := m.t.CreateHardlink(src, dst); err != nil {
			return err
		}
		atomic.AddInt64(&m.td.ExtractedLinks, 1)

	case TypeSymlink:
		if !canCreateSymlinks {
			src, err := m.linkSource(path.Join(path.Dir(e.Path), e.Linkname))
			if err != nil {
				return err
			}
			if err := m.t.CreateHardlink(src, dst); err != nil {
				return err
			}
			atomic.AddInt64(&m.td.ExtractedLinks, 1)
			return nil
		}
		if err := m.t.CreateSymlink(e.Linkname, dst); err != nil {
			return err
		}
		atomic.AddInt64(&m.td.ExtractedSymlinks, 1)

	case TypeFile:
		n, err := m.t.CreateFile(dst, bytes.NewReader(e.Data), e.Mode.Perm()&^m.umask)
		if err != nil {
			return err
		}
		atomic.AddInt64(&m.td.ExtractionSize, n)

		// changing times follows symlinks
		if err := preventWritingThroughSymlink(m.t, dst); err != nil {
			return err
		}
		if err := m.t.Chtimes(dst, m.now, e.ModTime); err != nil {
			return fmt.Errorf("cannot set modification time of %s: %w", e.Path, err)
		}
		atomic.AddInt64(&m.td.ExtractedFiles, 1)
	}

	return nil
}

// restoreDirTimes sets the modification time of a directory entry.
func (m *materializer) restoreDirTimes(e Entry) error {
	dst := m.destination(e)

	// changing times follows symlinks
	if err := ensureWithinRoot(m.t, dst, m.realRoot); err != nil {
		return err
	}
	if err := m.t.Chtimes(dst, m.now, e.ModTime); err != nil {
		return fmt.Errorf("cannot set modification time of %s: %w", e.Path, err)
	}
	return nil
}

// linkSource resolves a link target given relative to the archive root. Symlinks on
// the way are evaluated as if the output root was the filesystem root.
func (m *materializer) linkSource(linkname string) (string, error) {
	src, err := securejoin.SecureJoin(m.realRoot, filepath.FromSlash(linkname))
	if err != nil {
		return "", fmt.Errorf("cannot resolve link target %s: %w", linkname, err)
	}
	return src, nil
}
