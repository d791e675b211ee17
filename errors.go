// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package decompress

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned if the input is neither a byte slice, a path nor a reader.
	ErrInvalidInput = errors.New("input file required")

	// ErrRefused is the base error of every containment violation. Use errors.Is to
	// check for it, the concrete error is a [*RefusalError].
	ErrRefused = errors.New("refused")

	// ErrMaxInputSizeExceeded indicates that the input is larger than the configured maximum.
	ErrMaxInputSizeExceeded = errors.New("maximum input size exceeded")

	// ErrMaxFilesExceeded indicates that a decoder produced more entries than allowed.
	ErrMaxFilesExceeded = errors.New("maximum files exceeded")

	// ErrMaxExtractionSizeExceeded indicates that a decoder produced more data than allowed.
	ErrMaxExtractionSizeExceeded = errors.New("maximum extraction size exceeded")
)

// RefusalError is returned when a filesystem mutation would land outside of the
// output root.
type RefusalError struct {
	// Action describes what was refused.
	Action string

	// Path is the offending location, if known.
	Path string
}

// Error implements the error interface.
func (e *RefusalError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("Refusing to %s", e.Action)
	}
	return fmt.Sprintf("Refusing to %s: %s", e.Action, e.Path)
}

// Is makes errors.Is(err, ErrRefused) work for every refusal.
func (e *RefusalError) Is(target error) bool {
	return target == ErrRefused
}

func refuse(action string, path string) error {
	return &RefusalError{Action: action, Path: path}
}
