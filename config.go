// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package decompress

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
)

// ConfigOption is a function pointer to implement the option pattern
type ConfigOption func(*Config)

// Config provides a configuration struct and options to adjust the configuration.
//
// The configuration holds the transformations applied to the decoded entries, the
// decoders that are tried on the input and the limits that protect against resource
// exhaustion. A Config must not be modified while an extraction is running.
type Config struct {
	// concurrency is the maximum of entries that are materialized at the same time.
	// Set value to -1 to start all entries at once.
	concurrency int

	// createDirMode is the file mode for directories created during extraction (respecting umask)
	createDirMode fs.FileMode

	// decoders is the ordered set of decoders that are tried on the input
	decoders []Decoder

	// filter drops all entries for which it returns false
	filter func(Entry) bool

	// logger stream for extraction
	logger logger

	// mapper transforms every entry that passed strip and filter
	mapper func(Entry) Entry

	// maxExtractionSize is the maximum of decoded bytes a single decoder may produce.
	// Set value to -1 to disable the check.
	maxExtractionSize int64

	// maxFiles is the maximum of entries a single decoder may produce.
	// Set value to -1 to disable the check.
	maxFiles int64

	// maxInputSize is the maximum size of the input
	// Set value to -1 to disable the check.
	maxInputSize int64

	// strip is the number of leading path segments removed from every entry
	strip int

	// target is the filesystem the entries are written to
	target Target

	// telemetryHook is a function to consume telemetry data after finished extraction
	telemetryHook TelemetryHook

	// umask is the file creation mask applied to file modes, only used if umaskSet is true
	umask    fs.FileMode
	umaskSet bool
}

// CheckExtractionSize checks if size exceeds configured maximum. If the maximum is exceeded,
// a [ErrMaxExtractionSizeExceeded] error is returned.
func (c *Config) CheckExtractionSize(size int64) error {

	// check if disabled
	if c.MaxExtractionSize() == -1 {
		return nil
	}

	// check value
	if size > c.MaxExtractionSize() {
		return ErrMaxExtractionSizeExceeded
	}
	return nil
}

// CheckMaxFiles checks if counter exceeds the configured maximum. If the maximum is exceeded,
// a [ErrMaxFilesExceeded] error is returned.
func (c *Config) CheckMaxFiles(counter int64) error {

	// check if disabled
	if c.MaxFiles() == -1 {
		return nil
	}

	// check value
	if counter > c.MaxFiles() {
		return ErrMaxFilesExceeded
	}
	return nil
}

// Concurrency returns the maximum of entries that are materialized at the same time.
// A negative value means no limit.
func (c *Config) Concurrency() int {
	return c.concurrency
}

// CustomCreateDirMode returns the file mode for directories created during
// extraction. (respecting umask)
func (c *Config) CustomCreateDirMode() fs.FileMode {
	return c.createDirMode
}

// Decoders returns the ordered set of decoders.
func (c *Config) Decoders() []Decoder {
	return c.decoders
}

// Filter returns the filter predicate, or nil if all entries are accepted.
func (c *Config) Filter() func(Entry) bool {
	return c.filter
}

// Logger returns the logger.
func (c *Config) Logger() logger {
	return c.logger
}

// Map returns the mapping function, or nil if entries are not mapped.
func (c *Config) Map() func(Entry) Entry {
	return c.mapper
}

// MaxExtractionSize returns the maximum of decoded bytes per decoder.
func (c *Config) MaxExtractionSize() int64 {
	return c.maxExtractionSize
}

// MaxFiles returns the maximum of entries per decoder.
func (c *Config) MaxFiles() int64 {
	return c.maxFiles
}

// MaxInputSize returns the maximum size of the input.
func (c *Config) MaxInputSize() int64 {
	return c.maxInputSize
}

// Strip returns the number of leading path segments that are removed.
func (c *Config) Strip() int {
	return c.strip
}

// Target returns the filesystem target.
func (c *Config) Target() Target {
	return c.target
}

// TelemetryHook returns the telemetry hook.
func (c *Config) TelemetryHook() TelemetryHook {
	if c.telemetryHook == nil {
		return defaultTelemetryHook
	}
	return c.telemetryHook
}

// Umask returns the configured file creation mask. The second return value is false
// if no mask is configured, in which case the process umask is used.
func (c *Config) Umask() (fs.FileMode, bool) {
	return c.umask, c.umaskSet
}

const (
	defaultConcurrency       = -1            // no limit, all entries in flight
	defaultCreateDirMode     = 0777          // default directory permissions rwxrwxrwx, umask applies
	defaultMaxExtractionSize = 1 << (10 * 3) // 1 Gb
	defaultMaxFiles          = 100000        // 100k files
	defaultMaxInputSize      = 1 << (10 * 3) // 1 Gb
	defaultStrip             = 0             // keep paths as they are
)

var (
	// slog to discard
	defaultLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	// no operation telemetry hook
	defaultTelemetryHook = func(ctx context.Context, d *TelemetryData) {
		// noop
	}
)

// NewConfig is a generator option that takes opts as adjustments of the
// default configuration in an option pattern style.
func NewConfig(opts ...ConfigOption) *Config {

	// setup default values
	config := &Config{
		concurrency:       defaultConcurrency,
		createDirMode:     defaultCreateDirMode,
		decoders:          DefaultDecoders(),
		logger:            defaultLogger,
		maxExtractionSize: defaultMaxExtractionSize,
		maxFiles:          defaultMaxFiles,
		maxInputSize:      defaultMaxInputSize,
		strip:             defaultStrip,
		target:            NewTargetDisk(),
		telemetryHook:     defaultTelemetryHook,
	}

	// Loop through each option
	for _, opt := range opts {
		opt(config)
	}

	return config
}

// WithConcurrency options pattern function to limit the number of entries that are
// materialized at the same time. Use 1 to write entries strictly in list order and
// -1 to disable the limit.
func WithConcurrency(n int) ConfigOption {
	return func(c *Config) {
		if n == 0 {
			n = defaultConcurrency
		}
		c.concurrency = n
	}
}

// WithCustomCreateDirMode options pattern function to set the file mode
// for directories created during extraction. (respecting umask)
func WithCustomCreateDirMode(mode fs.FileMode) ConfigOption {
	return func(c *Config) {
		c.createDirMode = mode
	}
}

// WithDecoders options pattern function to replace the set of decoders. Calling it
// without arguments configures an empty set, so every extraction yields no entries.
func WithDecoders(decoders ...Decoder) ConfigOption {
	return func(c *Config) {
		c.decoders = append([]Decoder{}, decoders...)
	}
}

// WithFilter options pattern function to drop all entries for which f returns false.
func WithFilter(f func(Entry) bool) ConfigOption {
	return func(c *Config) {
		c.filter = f
	}
}

// WithLogger options pattern function to set a custom logger.
func WithLogger(logger logger) ConfigOption {
	return func(c *Config) {
		c.logger = logger
	}
}

// WithMap options pattern function to transform every entry before it is written,
// e.g., to rename it.
func WithMap(f func(Entry) Entry) ConfigOption {
	return func(c *Config) {
		c.mapper = f
	}
}

// WithMaxExtractionSize options pattern function to set the maximum of decoded bytes
// per decoder. (-1 to disable check)
func WithMaxExtractionSize(maxExtractionSize int64) ConfigOption {
	return func(c *Config) {
		c.maxExtractionSize = maxExtractionSize
	}
}

// WithMaxFiles options pattern function to set the maximum of entries per decoder.
// (-1 to disable check)
func WithMaxFiles(maxFiles int64) ConfigOption {
	return func(c *Config) {
		c.maxFiles = maxFiles
	}
}

// WithMaxInputSize options pattern function to set MaxInputSize for the input. (-1 to disable check)
func WithMaxInputSize(maxInputSize int64) ConfigOption {
	return func(c *Config) {
		c.maxInputSize = maxInputSize
	}
}

// WithStrip options pattern function to remove the first n path segments of every
// entry. Entries without remaining path are dropped.
func WithStrip(n int) ConfigOption {
	return func(c *Config) {
		if n < 0 {
			n = 0
		}
		c.strip = n
	}
}

// WithTarget options pattern function to set the filesystem [Target].
func WithTarget(t Target) ConfigOption {
	return func(c *Config) {
		c.target = t
	}
}

// WithTelemetryHook options pattern function to set a [TelemetryHook], which is called after extraction.
func WithTelemetryHook(hook TelemetryHook) ConfigOption {
	return func(c *Config) {
		c.telemetryHook = hook
	}
}

// WithUmask options pattern function to set the file creation mask that is applied to
// file modes. If not set, the umask of the process is read once per extraction. Where
// /proc is not available, reading the umask of the process requires setting it, which
// briefly clears it for files created concurrently by other goroutines. Setting the
// mask avoids that.
func WithUmask(mask fs.FileMode) ConfigOption {
	return func(c *Config) {
		c.umask = mask.Perm()
		c.umaskSet = true
	}
}
