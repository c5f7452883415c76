// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

// Package rawmeta decodes the directory structure of TIFF based raw image files,
// e.g. Sony ARW: the file header and the tree of Image File Directories (IFDs)
// reachable from it, including the Exif, GPS, SubIFD and maker note directories.
package rawmeta

import (
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	defaultLimitNumDirectories = 1000
	// 10 MB should be plenty for a single tag value.
	defaultLimitValueSize = 10 * 1024 * 1024
)

// Options contains the options for the Decode function.
type Options struct {
	// The Reader (typically a *os.File) to read from.
	R io.ReadSeeker

	// Registry holds the field type and tag tables.
	// If not set, DefaultRegistry is used.
	Registry *Registry

	// If set, HandleEntry is called for each entry in discovery order.
	// Return ErrStopWalking to stop decoding without an error.
	HandleEntry HandleEntryFunc

	// Warnf will be called for each warning.
	Warnf func(string, ...any)

	// LimitNumDirectories is the maximum number of directories to decode.
	// Decoding stops with a warning when the limit is reached.
	// Default value is 1000.
	LimitNumDirectories int

	// LimitValueSize is the maximum size in bytes of an entry value.
	// Larger values fail with ErrTruncatedRead.
	// Default value is 10 MB.
	LimitValueSize uint32
}

// HandleEntryFunc is the function that is called for each entry.
type HandleEntryFunc func(info EntryInfo) error

// EntryInfo contains information about an entry.
type EntryInfo struct {
	// The directory the entry belongs to.
	Directory *Directory
	Entry     *Entry
}

// DecodeResult contains the result of a Decode operation.
type DecodeResult struct {
	Header Header
	// Directories in discovery order. The first directory is the main image.
	Directories []*Directory
}

// Entries returns all entries in directory order.
func (r DecodeResult) Entries() []EntryInfo {
	var infos []EntryInfo
	for _, d := range r.Directories {
		for _, e := range d.Entries {
			infos = append(infos, EntryInfo{Directory: d, Entry: e})
		}
	}
	return infos
}

// Find returns the first entry with the given tag label.
func (r DecodeResult) Find(label string) (EntryInfo, bool) {
	for _, d := range r.Directories {
		if e, ok := d.Entry(label); ok {
			return EntryInfo{Directory: d, Entry: e}, true
		}
	}
	return EntryInfo{}, false
}

// DecodeFile opens filename and decodes it.
// opts.R is ignored.
func DecodeFile(filename string, opts Options) (DecodeResult, error) {
	f, err := os.Open(filename)
	if err != nil {
		return DecodeResult{}, err
	}
	defer f.Close()
	opts.R = f
	return Decode(opts)
}

// Decode reads the header and all directories reachable from it.
func Decode(opts Options) (result DecodeResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			if errp, ok := r.(error); ok {
				err = errp
			} else {
				err = fmt.Errorf("unknown panic: %v", r)
			}
			result = DecodeResult{}
		}
	}()

	if opts.R == nil {
		return result, errors.New("no reader provided")
	}
	if opts.Registry == nil {
		opts.Registry = DefaultRegistry()
	}
	if opts.Warnf == nil {
		opts.Warnf = func(string, ...any) {}
	}
	if opts.LimitNumDirectories == 0 {
		opts.LimitNumDirectories = defaultLimitNumDirectories
	}
	if opts.LimitValueSize == 0 {
		opts.LimitValueSize = defaultLimitValueSize
	}

	sr, err := newStreamReader(opts.R)
	if err != nil {
		return result, newFormatError("header", 0, err)
	}

	d := &decoder{
		streamReader: sr,
		registry:     opts.Registry,
		opts:         opts,
		result:       &result,
	}

	if err := d.decode(); err != nil {
		if err == ErrStopWalking {
			return result, nil
		}
		return DecodeResult{}, err
	}

	return result, nil
}

type decoder struct {
	*streamReader
	registry *Registry
	opts     Options
	result   *DecodeResult
}

// decode walks the directory graph breadth first, one wave of pending
// offsets at a time. Sub-directories and the next directory in a chain
// discovered in one wave are decoded in the next.
func (d *decoder) decode() error {
	header, err := d.decodeHeader()
	if err != nil {
		return err
	}
	d.result.Header = header

	if header.FirstDirectoryOffset == 0 {
		return nil
	}

	queue := []DirectoryPointer{{Offset: header.FirstDirectoryOffset, Label: LabelMain}}
	visited := make(map[uint32]bool)

	for len(queue) > 0 {
		wave := queue
		queue = nil

		for _, p := range wave {
			if visited[p.Offset] {
				return newFormatError("directory", int64(p.Offset), ErrCyclicReference)
			}
			visited[p.Offset] = true

			if len(d.result.Directories) >= d.opts.LimitNumDirectories {
				d.opts.Warnf("directory limit %d reached, skipping remaining directories", d.opts.LimitNumDirectories)
				return nil
			}

			dir, err := d.decodeDirectory(p.Offset, p.Label)
			if err != nil {
				return err
			}
			d.result.Directories = append(d.result.Directories, dir)

			if err := d.handleEntries(dir); err != nil {
				return err
			}

			queue = append(queue, dir.SubDirectoryOffsets()...)
			if dir.NextOffset != 0 {
				queue = append(queue, DirectoryPointer{Offset: dir.NextOffset, Label: p.Label})
			}
		}
	}

	return nil
}

func (d *decoder) handleEntries(dir *Directory) error {
	if d.opts.HandleEntry == nil {
		return nil
	}
	for _, e := range dir.Entries {
		if err := d.opts.HandleEntry(EntryInfo{Directory: dir, Entry: e}); err != nil {
			return err
		}
	}
	return nil
}
