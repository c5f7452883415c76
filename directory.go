// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package rawmeta

import "fmt"

// Directory is a decoded Image File Directory (IFD).
type Directory struct {
	// Offset is the position of the directory in the file.
	Offset uint32
	// Label is the type of the directory, e.g. "Main", "ExifIFD" or "MakerNote".
	// It is inherited from the tag that pointed to it.
	Label      string
	EntryCount uint16
	Entries    []*Entry
	// NextOffset is the offset of the next directory in the chain, 0 if none.
	NextOffset uint32
}

// DirectoryPointer is the offset and label of a directory yet to be decoded.
type DirectoryPointer struct {
	Offset uint32
	Label  string
}

// SubDirectoryOffsets returns the non-zero sub-directory offsets
// referenced by the entries, in entry order.
func (d *Directory) SubDirectoryOffsets() []DirectoryPointer {
	var pointers []DirectoryPointer
	for _, e := range d.Entries {
		for _, offset := range e.directoryOffsets() {
			if offset == 0 {
				continue
			}
			pointers = append(pointers, DirectoryPointer{Offset: offset, Label: e.Tag.Label})
		}
	}
	return pointers
}

// Entry returns the first entry with the given tag label.
func (d *Directory) Entry(label string) (*Entry, bool) {
	for _, e := range d.Entries {
		if e.Tag.Label == label {
			return e, true
		}
	}
	return nil, false
}

func (d *Directory) String() string {
	return fmt.Sprintf("(Directory %s offset: %d, entries_count: %d, next_ifd_offset: %d)",
		d.Label, d.Offset, d.EntryCount, d.NextOffset)
}

// decodeDirectory decodes the directory at offset:
// a 2 byte entry count, count entries and a 4 byte next directory offset.
func (d *decoder) decodeDirectory(offset uint32, label string) (*Directory, error) {
	pos := int64(offset)
	count, err := d.read2At(pos)
	if err != nil {
		return nil, newFormatError("directory", pos, err)
	}

	dir := &Directory{
		Offset:     offset,
		Label:      label,
		EntryCount: count,
		Entries:    make([]*Entry, 0, count),
	}

	entryOffset := pos + 2
	for i := 0; i < int(count); i++ {
		entry, err := d.decodeEntry(entryOffset, label)
		if err != nil {
			return nil, err
		}
		dir.Entries = append(dir.Entries, entry)
		entryOffset += entrySize
	}

	dir.NextOffset, err = d.read4At(entryOffset)
	if err != nil {
		return nil, newFormatError("directory", entryOffset, err)
	}

	return dir, nil
}
