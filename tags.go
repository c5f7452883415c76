// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package rawmeta

import (
	"fmt"
	"strings"
)

const (
	// LabelMain is the type label of the first directory and its sibling chain.
	LabelMain = "Main"
	// LabelMakerNote is the label of the vendor maker note tag and directory.
	LabelMakerNote = "MakerNote"
)

// Tag describes a metadata field in a directory.
type Tag struct {
	ID uint16
	// IsDirectoryPointer is set when the entry value is the offset of a sub-directory.
	IsDirectoryPointer bool
	Label              string
	Description        string
}

func (t Tag) String() string {
	return t.Label
}

// TagTable maps a tag id to a Tag.
type TagTable map[uint16]Tag

// NewTagTable builds a TagTable from tags.
// Tags whose label names a directory (contains "IFD") or equals
// LabelMakerNote are marked as directory pointers.
func NewTagTable(tags []Tag) TagTable {
	m := make(TagTable, len(tags))
	for _, t := range tags {
		if strings.Contains(t.Label, "IFD") || t.Label == LabelMakerNote {
			t.IsDirectoryPointer = true
		}
		m[t.ID] = t
	}
	return m
}

// Lookup never fails; unknown ids get a placeholder tag.
func (t TagTable) Lookup(id uint16) (Tag, bool) {
	if tag, ok := t[id]; ok {
		return tag, true
	}
	return Tag{Label: fmt.Sprintf("Unknown tag %d", id)}, false
}

// Registry holds the immutable lookup tables used by the decoder.
type Registry struct {
	FieldTypes FieldTypes

	// Tags is used for all directories except maker notes.
	Tags TagTable

	// MakerNoteTags is used for directories labeled LabelMakerNote.
	MakerNoteTags TagTable
}

// DefaultRegistry returns a new Registry with the TIFF/EXIF/GPS tags
// and the Sony maker note tags.
func DefaultRegistry() *Registry {
	return &Registry{
		FieldTypes:    DefaultFieldTypes(),
		Tags:          NewTagTable(genericTags),
		MakerNoteTags: NewTagTable(sonyMakerNoteTags),
	}
}

// LookupTag resolves id using the table for the enclosing directory.
func (r *Registry) LookupTag(id uint16, directoryLabel string) (Tag, bool) {
	if directoryLabel == LabelMakerNote {
		return r.MakerNoteTags.Lookup(id)
	}
	return r.Tags.Lookup(id)
}

// LookupFieldType resolves a field type code.
func (r *Registry) LookupFieldType(code uint16) (FieldType, bool) {
	return r.FieldTypes.Lookup(code)
}
