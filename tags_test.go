// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package rawmeta

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestFieldTypes(t *testing.T) {
	c := qt.New(t)

	ft := DefaultFieldTypes()

	long, found := ft.Lookup(4)
	c.Assert(found, qt.IsTrue)
	c.Assert(long, qt.Equals, FieldType{Name: "LONG", Width: 4})

	unknown, found := ft.Lookup(999)
	c.Assert(found, qt.IsFalse)
	c.Assert(unknown, qt.Equals, FieldType{Name: "Unknown", Width: 1})

	widths := map[uint16]uint8{1: 1, 2: 1, 3: 2, 4: 4, 5: 8, 6: 1, 7: 1, 8: 2, 9: 4, 10: 8, 11: 4, 12: 8}
	c.Assert(ft, qt.HasLen, len(widths))
	for code, width := range widths {
		f, found := ft.Lookup(code)
		c.Assert(found, qt.IsTrue)
		c.Assert(f.Width, qt.Equals, width, qt.Commentf("code %d", code))
	}
}

func TestTagRegistry(t *testing.T) {
	c := qt.New(t)

	r := DefaultRegistry()

	c.Run("Generic", func(c *qt.C) {
		tag, found := r.LookupTag(tagMake, LabelMain)
		c.Assert(found, qt.IsTrue)
		c.Assert(tag.Label, qt.Equals, "Make")
		c.Assert(tag.ID, qt.Equals, uint16(tagMake))
		c.Assert(tag.IsDirectoryPointer, qt.IsFalse)
	})

	c.Run("Directory pointers", func(c *qt.C) {
		for _, id := range []uint16{tagExifIFD, tagGPSIFD, tagSubIFDs, 40965, tagMakerNote} {
			tag, found := r.LookupTag(id, LabelMain)
			c.Assert(found, qt.IsTrue)
			c.Assert(tag.IsDirectoryPointer, qt.IsTrue, qt.Commentf("tag %s", tag.Label))
		}
	})

	c.Run("Maker note table", func(c *qt.C) {
		tag, found := r.LookupTag(tagSonyQuality, LabelMakerNote)
		c.Assert(found, qt.IsTrue)
		c.Assert(tag.Label, qt.Equals, "Quality")

		// Same id in a non maker note directory.
		tag, found = r.LookupTag(tagSonyQuality, "ExifIFD")
		c.Assert(found, qt.IsTrue)
		c.Assert(tag.Label, qt.Equals, "BitsPerSample")

		_, found = r.LookupTag(tagMake, LabelMakerNote)
		c.Assert(found, qt.IsFalse)
	})

	c.Run("Unknown", func(c *qt.C) {
		tag, found := r.LookupTag(0xfffe, LabelMain)
		c.Assert(found, qt.IsFalse)
		c.Assert(tag, qt.Equals, Tag{ID: 0, IsDirectoryPointer: false, Label: "Unknown tag 65534"})
	})

	c.Run("Unique ids", func(c *qt.C) {
		for _, tags := range [][]Tag{genericTags, sonyMakerNoteTags} {
			seen := make(map[uint16]string)
			for _, tag := range tags {
				if label, ok := seen[tag.ID]; ok {
					c.Fatalf("duplicate tag id %d: %s and %s", tag.ID, label, tag.Label)
				}
				seen[tag.ID] = tag.Label
			}
		}
	})
}

func TestSubstituteRegistry(t *testing.T) {
	c := qt.New(t)

	r := &Registry{
		FieldTypes:    FieldTypes{4: {Name: FieldTypeLong, Width: 4}},
		Tags:          NewTagTable([]Tag{{ID: 1, Label: "CustomIFD"}}),
		MakerNoteTags: NewTagTable(nil),
	}

	tag, found := r.LookupTag(1, LabelMain)
	c.Assert(found, qt.IsTrue)
	c.Assert(tag.IsDirectoryPointer, qt.IsTrue)

	_, found = r.LookupFieldType(3)
	c.Assert(found, qt.IsFalse)
}
