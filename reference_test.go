// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package rawmeta

import (
	"bytes"
	"math"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/google/go-cmp/cmp"
	"github.com/rwcarlsen/goexif/tiff"
)

type referenceEntry struct {
	ID    uint16
	Count uint32
	Value []byte
}

// newAllTypesFile builds a main directory with one entry of every field type,
// an Exif directory and a second directory in the main chain.
func newAllTypesFile(bo ByteOrder) []byte {
	b := newTIFFBuilder(bo, 8)

	sshorts := func(a, b2 int16) uint32 {
		p1, p2 := b.bo.PutUint16(uint16(a)), b.bo.PutUint16(uint16(b2))
		return b.inlineValue([]byte{p1[0], p1[1], p2[0], p2[1]})
	}

	b.putDirectory(8, []testEntry{
		{tag: tagImageWidth, typ: typeShort, count: 1, value: b.shortValue(6048)},
		{tag: 258, typ: typeShort, count: 3, value: 200},
		{tag: tagMake, typ: typeASCII, count: 5, value: 210},
		{tag: tagModel, typ: typeASCII, count: 4, value: b.inlineValue([]byte("A7R\x00"))},
		{tag: 282, typ: typeRational, count: 1, value: 220},
		{tag: 0x9201, typ: typeSRational, count: 1, value: 230},
		{tag: 0xc001, typ: typeSShort, count: 2, value: sshorts(-1, 5)},
		{tag: 0xc002, typ: typeSLong, count: 1, value: uint32(0xfffffffe)},
		{tag: 0xc003, typ: typeSByte, count: 3, value: b.inlineValue([]byte{0xff, 0x01, 0x80})},
		{tag: 0xc004, typ: typeFloat, count: 2, value: 240},
		{tag: 0xc005, typ: typeDouble, count: 1, value: 250},
		{tag: 0x9000, typ: typeUndefined, count: 4, value: b.inlineValue([]byte("0230"))},
		{tag: tagExifIFD, typ: typeLong, count: 1, value: 400},
	}, 300)

	b.putUint16(200, 8).putUint16(202, 8).putUint16(204, 8)
	b.putBytes(210, []byte("SONY\x00"))
	b.putUint32(220, 72).putUint32(224, 1)
	b.putUint32(230, uint32(0xffffffff)).putUint32(234, 3)
	b.putUint32(240, math.Float32bits(1.5)).putUint32(244, math.Float32bits(-2))
	p := make([]byte, 8)
	if bo == LittleEndian {
		for i := 0; i < 8; i++ {
			p[i] = byte(math.Float64bits(0.25) >> (8 * i))
		}
	} else {
		for i := 0; i < 8; i++ {
			p[7-i] = byte(math.Float64bits(0.25) >> (8 * i))
		}
	}
	b.putBytes(250, p)

	b.putDirectory(300, []testEntry{
		{tag: tagImageWidth, typ: typeLong, count: 1, value: 160},
		{tag: tagOrientation, typ: typeShort, count: 1, value: b.shortValue(1)},
	}, 0)

	b.putDirectory(400, []testEntry{
		{tag: tagExposureTime, typ: typeRational, count: 1, value: 220},
	}, 0)

	return b.bytes()
}

// TestDecodeMatchesReferenceDecoder checks the main directory chain against
// an independent TIFF decoder, which does not follow sub-directories.
func TestDecodeMatchesReferenceDecoder(t *testing.T) {
	c := qt.New(t)

	for _, bo := range []ByteOrder{LittleEndian, BigEndian} {
		c.Run(bo.String(), func(c *qt.C) {
			data := newAllTypesFile(bo)

			res, err := decodeBytes(c, data)
			c.Assert(err, qt.IsNil)

			ref, err := tiff.Decode(bytes.NewReader(data))
			c.Assert(err, qt.IsNil)

			var got [][]referenceEntry
			for _, d := range res.Directories {
				if d.Label != LabelMain {
					continue
				}
				var entries []referenceEntry
				for _, e := range d.Entries {
					entries = append(entries, referenceEntry{ID: e.TagID, Count: e.Count, Value: e.ValueBytes})
				}
				got = append(got, entries)
			}

			var want [][]referenceEntry
			for _, d := range ref.Dirs {
				var entries []referenceEntry
				for _, tag := range d.Tags {
					entries = append(entries, referenceEntry{ID: tag.Id, Count: tag.Count, Value: tag.Val})
				}
				want = append(want, entries)
			}

			c.Assert(want, qt.HasLen, 2)
			if diff := cmp.Diff(want, got); diff != "" {
				c.Fatalf("mismatch (-reference +rawmeta):\n%s", diff)
			}
		})
	}
}

func TestDecodeAllTypes(t *testing.T) {
	c := qt.New(t)

	for _, bo := range []ByteOrder{LittleEndian, BigEndian} {
		c.Run(bo.String(), func(c *qt.C) {
			res, err := decodeBytes(c, newAllTypesFile(bo))
			c.Assert(err, qt.IsNil)
			c.Assert(res.Directories, qt.HasLen, 3)

			main := res.Directories[0]
			values := make(map[uint16]any)
			for _, e := range main.Entries {
				values[e.TagID] = e.Value()
			}

			c.Assert(values, eq, map[uint16]any{
				tagImageWidth: []uint16{6048},
				258:           []uint16{8, 8, 8},
				tagMake:       "SONY",
				tagModel:      "A7R",
				282:           []Rat[uint32]{newRawRat[uint32](72, 1)},
				0x9201:        []Rat[int32]{newRawRat[int32](-1, 3)},
				0xc001:        []int16{-1, 5},
				0xc002:        []int32{-2},
				0xc003:        []int8{-1, 1, -128},
				0xc004:        []float32{1.5, -2},
				0xc005:        []float64{0.25},
				0x9000:        []byte("0230"),
				tagExifIFD:    []uint32{400},
			})

			c.Assert(res.Directories[1].Label, qt.Equals, "ExifIFD")
			c.Assert(res.Directories[2].Label, qt.Equals, LabelMain)
			c.Assert(res.Directories[2].Offset, qt.Equals, uint32(300))
		})
	}
}
