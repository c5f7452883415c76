// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package rawmeta

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrTruncatedRead is returned when fewer bytes are available than a
	// header, directory, entry or value requires.
	ErrTruncatedRead = errors.New("truncated read")

	// ErrSeekFailure is returned when a file position can not be reached.
	ErrSeekFailure = errors.New("seek failure")

	// ErrUnknownByteOrder is returned when the header byte order marker is not "II" or "MM".
	ErrUnknownByteOrder = errors.New("unknown byte order")

	// ErrCyclicReference is returned when a directory offset is visited twice.
	ErrCyclicReference = errors.New("cyclic directory reference")

	// ErrStopWalking is a sentinel error to signal that the walk should stop.
	ErrStopWalking = errors.New("stop walking")
)

var formatErrors = []error{
	ErrTruncatedRead,
	ErrSeekFailure,
	ErrUnknownByteOrder,
	ErrCyclicReference,
}

// FormatError describes where in the file decoding failed.
type FormatError struct {
	// Op is the structure being decoded, e.g. "header", "directory", "entry" or "value".
	Op     string
	Offset int64
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("rawmeta: %s at offset %d: %v", e.Op, e.Offset, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func newFormatError(op string, offset int64, err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		err = ErrTruncatedRead
	}
	var fe *FormatError
	if errors.As(err, &fe) {
		return err
	}
	return &FormatError{Op: op, Offset: offset, Err: err}
}

// IsInvalidFormat reports whether err was caused by a malformed file
// as opposed to e.g. an I/O error from the underlying reader.
func IsInvalidFormat(err error) bool {
	if err == nil {
		return false
	}
	for _, e := range formatErrors {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
