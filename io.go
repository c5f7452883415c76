// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package rawmeta

import (
	"errors"
	"fmt"
	"io"
)

// streamReader is a wrapper around a ReadSeeker that provides methods to read binary data
// at absolute offsets. Every read seeks first; nothing relies on the current position.
// Note that this is not thread safe.
type streamReader struct {
	r         io.ReadSeeker
	byteOrder ByteOrder

	// Size of the source in bytes.
	size int64

	buf []byte
}

func newStreamReader(r io.ReadSeeker) (*streamReader, error) {
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSeekFailure, err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSeekFailure, err)
	}
	return &streamReader{
		r:    r,
		size: size,
	}, nil
}

func (e *streamReader) allocateBuf(length int) {
	if length > cap(e.buf) {
		e.buf = make([]byte, length)
	}
}

func (e *streamReader) seek(pos int64) error {
	n, err := e.r.Seek(pos, io.SeekStart)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSeekFailure, err)
	}
	if n != pos {
		return fmt.Errorf("%w: wanted position %d, got %d", ErrSeekFailure, pos, n)
	}
	return nil
}

// available reports whether n bytes can be read from pos.
func (e *streamReader) available(pos, n int64) bool {
	return pos >= 0 && n >= 0 && pos <= e.size && n <= e.size-pos
}

func (e *streamReader) readFull(b []byte) error {
	_, err := io.ReadFull(e.r, b)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return ErrTruncatedRead
		}
		return err
	}
	return nil
}

// readBytesVolatileAt reads n bytes at pos into a buffer
// which is not guaranteed to be valid after the next read.
func (e *streamReader) readBytesVolatileAt(pos int64, n int) ([]byte, error) {
	if !e.available(pos, int64(n)) {
		return nil, ErrTruncatedRead
	}
	if err := e.seek(pos); err != nil {
		return nil, err
	}
	e.allocateBuf(n)
	if err := e.readFull(e.buf[:n]); err != nil {
		return nil, err
	}
	return e.buf[:n], nil
}

// readBytesAt reads n bytes at pos into a new slice owned by the caller.
func (e *streamReader) readBytesAt(pos int64, n int64) ([]byte, error) {
	if !e.available(pos, n) {
		return nil, ErrTruncatedRead
	}
	if err := e.seek(pos); err != nil {
		return nil, err
	}
	b := make([]byte, n)
	if err := e.readFull(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (e *streamReader) read2At(pos int64) (uint16, error) {
	b, err := e.readBytesVolatileAt(pos, 2)
	if err != nil {
		return 0, err
	}
	return e.byteOrder.Uint16(b), nil
}

func (e *streamReader) read4At(pos int64) (uint32, error) {
	b, err := e.readBytesVolatileAt(pos, 4)
	if err != nil {
		return 0, err
	}
	return e.byteOrder.Uint32(b), nil
}
