// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package decompress

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// now is a function point that returns time.Now to the caller.
var now = time.Now

// Extract decodes input with the configured decoders, applies strip, filter and map,
// and writes the resulting entries below output.
//
// The input is a byte slice, the path of a file, or an [io.Reader]; any other value
// fails with [ErrInvalidInput]. If output is empty, nothing is written and the
// entries that would have been extracted are returned. If no entry remains after
// decoding and transformation, output is not created. A nil cfg uses the defaults
// of [NewConfig].
//
// No entry can create, modify or write through anything outside of output. An entry
// that tries fails the whole extraction with an error matching [ErrRefused]. Entries
// that have been written before the failure are not removed.
func Extract(ctx context.Context, input any, output string, cfg *Config) ([]Entry, error) {
	if cfg == nil {
		cfg = NewConfig()
	}

	// prepare telemetry capturing
	td := &TelemetryData{DryRun: len(output) == 0}
	defer cfg.TelemetryHook()(ctx, td)
	defer captureExtractionDuration(td, now())

	// read the whole input
	data, err := readInput(input, cfg)
	if err != nil {
		return nil, handleError(cfg, td, "cannot read input", err)
	}
	td.InputSize = int64(len(data))

	// decode with all decoders
	entries, err := runDecoders(ctx, data, cfg)
	if err != nil {
		return nil, handleError(cfg, td, "cannot decode input", err)
	}
	td.DecodedEntries = int64(len(entries))

	// strip, filter and map
	entries = transform(entries, cfg)
	td.DroppedEntries = td.DecodedEntries - int64(len(entries))

	// dry mode, or nothing to write
	if len(output) == 0 || len(entries) == 0 {
		cfg.Logger().Info("decoded archive", "entries", len(entries))
		return entries, nil
	}

	// resolve the file creation mask once
	umask, ok := cfg.Umask()
	if !ok {
		umask = processUmask()
	}

	cfg.Logger().Info("start extraction", "output", output, "entries", len(entries))
	if err := materialize(ctx, entries, output, umask, cfg, td); err != nil {
		return nil, handleError(cfg, td, "cannot extract archive", err)
	}

	return entries, nil
}

// readInput returns the raw bytes of input.
func readInput(input any, cfg *Config) ([]byte, error) {
	switch in := input.(type) {

	case []byte:
		if cfg.MaxInputSize() != -1 && int64(len(in)) > cfg.MaxInputSize() {
			return nil, ErrMaxInputSizeExceeded
		}
		return in, nil

	case string:
		if len(in) == 0 {
			return nil, ErrInvalidInput
		}
		f, err := os.Open(in)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		defer f.Close()
		return readAllLimited(f, cfg.MaxInputSize(), ErrMaxInputSizeExceeded)

	case io.Reader:
		return readAllLimited(in, cfg.MaxInputSize(), ErrMaxInputSizeExceeded)

	default:
		return nil, ErrInvalidInput
	}
}

// handleError increases the error counter, sets the latest error and logs it.
func handleError(c *Config, td *TelemetryData, msg string, err error) error {
	td.ExtractionErrors++
	td.LastExtractionError = fmt.Errorf("%s: %w", msg, err)
	c.Logger().Error(msg, "error", err)
	return err
}
