// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package rawmeta

import (
	"bytes"
	"fmt"
	"math"
)

// entrySize is the size of a directory entry in bytes:
//   - 2 bytes for the tag ID
//   - 2 bytes for the field type
//   - 4 bytes for the number of values of the specified type
//   - 4 bytes for the value itself, if it fits, otherwise for an offset to the value;
//     this could be the offset of another directory.
const entrySize = 12

// makerNoteHeader is a vendor label preceding the maker note directory.
type makerNoteHeader struct {
	prefix []byte
	// size of the full label; the directory follows it.
	size uint32
	// relative is set when offsets inside the maker note are relative to
	// the maker note itself (or to an embedded TIFF header). Those are not followed.
	relative bool
}

var makerNoteHeaders = []makerNoteHeader{
	{[]byte("SONY DSC \x00\x00\x00"), 12, false},
	{[]byte("SONY CAM \x00\x00\x00"), 12, false},
	{[]byte("\x00\x00SONY PIC\x00\x00"), 12, false},
	{[]byte("SONY MOBILE\x00"), 12, false},
	{[]byte("SONY PI\x00"), 12, false},
	{[]byte("VHAB     \x00\x00\x00"), 12, false},
	{[]byte("PREMI\x00"), 8, false},
	{[]byte("Nikon\x00\x01\x00"), 8, false},
	{[]byte("Nikon\x00\x02"), 18, true},
	{[]byte("Panasonic\x00\x00\x00"), 12, false},
	{[]byte("OLYMP\x00"), 8, false},
	{[]byte("OLYMPUS\x00"), 12, true},
	{[]byte("FUJIFILM"), 12, true},
	{[]byte("GENERALE"), 12, true},
}

// makerNoteHeader returns the label the maker note value starts with, if any.
func (e *Entry) makerNoteHeader() (makerNoteHeader, bool) {
	for _, h := range makerNoteHeaders {
		if bytes.HasPrefix(e.ValueBytes, h.prefix) {
			return h, true
		}
	}
	return makerNoteHeader{}, false
}

// Entry is a decoded directory entry.
type Entry struct {
	Tag Tag
	// TagID is the tag id as stored in the file.
	// Tag.ID is zero for tags not found in the registry.
	TagID     uint16
	FieldType FieldType
	// FieldTypeCode is the field type code as stored in the file.
	FieldTypeCode uint16
	// Count is the number of values of FieldType.
	Count uint32
	// RawValue is either the value itself or the offset to it.
	RawValue uint32
	// ValueBytes holds Count*FieldType.Width bytes.
	ValueBytes []byte
	ByteOrder  ByteOrder
}

// valueLength returns the value size in bytes.
func valueLength(count uint32, ft FieldType) uint64 {
	return uint64(count) * uint64(ft.Width)
}

// IsInline reports whether the value is stored in the entry itself.
func (e *Entry) IsInline() bool {
	return valueLength(e.Count, e.FieldType) <= 4
}

// IsDirectoryEntry reports whether the value points to a sub-directory.
func (e *Entry) IsDirectoryEntry() bool {
	return e.Tag.IsDirectoryPointer || e.Tag.Label == LabelMakerNote
}

// directoryOffsets returns the sub-directory offsets this entry points to.
func (e *Entry) directoryOffsets() []uint32 {
	if !e.IsDirectoryEntry() {
		return nil
	}
	if e.Tag.Label == LabelMakerNote {
		if e.IsInline() {
			return []uint32{e.RawValue}
		}
		h, found := e.makerNoteHeader()
		if !found {
			return []uint32{e.RawValue}
		}
		if h.relative {
			return nil
		}
		return []uint32{e.RawValue + h.size}
	}
	if e.Count > 1 {
		if v, ok := e.LongValues(); ok {
			return v
		}
	}
	return []uint32{e.RawValue}
}

func (e *Entry) chunks() [][]byte {
	w := int(e.FieldType.Width)
	if w == 0 {
		return nil
	}
	n := len(e.ValueBytes) / w
	chunks := make([][]byte, n)
	for i := 0; i < n; i++ {
		chunks[i] = e.ValueBytes[i*w : (i+1)*w]
	}
	return chunks
}

func (e *Entry) is(name string) bool {
	return e.FieldType.Name == name
}

// isNumeric reports whether the entry has the given type name and width.
// A substitute registry may declare other widths; those values are left raw.
func (e *Entry) isNumeric(name string, width uint8) bool {
	return e.is(name) && e.FieldType.Width == width
}

// ASCIIValue returns the value of an ASCII entry with trailing NULs removed.
func (e *Entry) ASCIIValue() (string, bool) {
	if !e.is(FieldTypeASCII) {
		return "", false
	}
	b := e.ValueBytes
	for len(b) > 0 && b[len(b)-1] == 0 {
		b = b[:len(b)-1]
	}
	return decodeText(b), true
}

// ByteValues returns the values of a BYTE or UNDEFINED entry.
func (e *Entry) ByteValues() ([]byte, bool) {
	if !e.is(FieldTypeByte) && !e.is(FieldTypeUndefined) {
		return nil, false
	}
	return e.ValueBytes, true
}

// SignedByteValues returns the values of an SBYTE entry.
func (e *Entry) SignedByteValues() ([]int8, bool) {
	if !e.is(FieldTypeSByte) {
		return nil, false
	}
	values := make([]int8, len(e.ValueBytes))
	for i, b := range e.ValueBytes {
		values[i] = int8(b)
	}
	return values, true
}

// ShortValues returns the values of a SHORT entry.
func (e *Entry) ShortValues() ([]uint16, bool) {
	if !e.isNumeric(FieldTypeShort, 2) {
		return nil, false
	}
	chunks := e.chunks()
	values := make([]uint16, len(chunks))
	for i, b := range chunks {
		values[i] = e.ByteOrder.Uint16(b)
	}
	return values, true
}

// LongValues returns the values of a LONG entry.
func (e *Entry) LongValues() ([]uint32, bool) {
	if !e.isNumeric(FieldTypeLong, 4) {
		return nil, false
	}
	chunks := e.chunks()
	values := make([]uint32, len(chunks))
	for i, b := range chunks {
		values[i] = e.ByteOrder.Uint32(b)
	}
	return values, true
}

// SignedShortValues returns the values of an SSHORT entry.
func (e *Entry) SignedShortValues() ([]int16, bool) {
	if !e.isNumeric(FieldTypeSShort, 2) {
		return nil, false
	}
	chunks := e.chunks()
	values := make([]int16, len(chunks))
	for i, b := range chunks {
		values[i] = e.ByteOrder.Int16(b)
	}
	return values, true
}

// SignedLongValues returns the values of an SLONG entry.
func (e *Entry) SignedLongValues() ([]int32, bool) {
	if !e.isNumeric(FieldTypeSLong, 4) {
		return nil, false
	}
	chunks := e.chunks()
	values := make([]int32, len(chunks))
	for i, b := range chunks {
		values[i] = e.ByteOrder.Int32(b)
	}
	return values, true
}

// RationalValues returns the values of a RATIONAL entry.
// Values are not reduced and may have a zero denominator.
func (e *Entry) RationalValues() ([]Rat[uint32], bool) {
	if !e.isNumeric(FieldTypeRational, 8) {
		return nil, false
	}
	chunks := e.chunks()
	values := make([]Rat[uint32], len(chunks))
	for i, b := range chunks {
		values[i] = newRawRat(e.ByteOrder.Uint32(b[:4]), e.ByteOrder.Uint32(b[4:]))
	}
	return values, true
}

// SignedRationalValues returns the values of an SRATIONAL entry.
// Values are not reduced and may have a zero denominator.
func (e *Entry) SignedRationalValues() ([]Rat[int32], bool) {
	if !e.isNumeric(FieldTypeSRational, 8) {
		return nil, false
	}
	chunks := e.chunks()
	values := make([]Rat[int32], len(chunks))
	for i, b := range chunks {
		values[i] = newRawRat(e.ByteOrder.Int32(b[:4]), e.ByteOrder.Int32(b[4:]))
	}
	return values, true
}

// FloatValues returns the values of a FLOAT entry.
func (e *Entry) FloatValues() ([]float32, bool) {
	if !e.isNumeric(FieldTypeFloat, 4) {
		return nil, false
	}
	chunks := e.chunks()
	values := make([]float32, len(chunks))
	for i, b := range chunks {
		values[i] = math.Float32frombits(e.ByteOrder.Uint32(b))
	}
	return values, true
}

// DoubleValues returns the values of a DOUBLE entry.
func (e *Entry) DoubleValues() ([]float64, bool) {
	if !e.isNumeric(FieldTypeDouble, 8) {
		return nil, false
	}
	chunks := e.chunks()
	values := make([]float64, len(chunks))
	for i, b := range chunks {
		values[i] = math.Float64frombits(e.ByteOrder.Uint64(b))
	}
	return values, true
}

// Value returns the typed value of the entry:
// a string for ASCII, a slice of the matching Go type for numeric types
// and the raw bytes for anything else.
func (e *Entry) Value() any {
	if v, ok := e.typedValue(); ok {
		return v
	}
	return e.ValueBytes
}

func (e *Entry) typedValue() (any, bool) {
	switch e.FieldType.Name {
	case FieldTypeASCII:
		return e.ASCIIValue()
	case FieldTypeShort:
		return e.ShortValues()
	case FieldTypeLong:
		return e.LongValues()
	case FieldTypeSShort:
		return e.SignedShortValues()
	case FieldTypeSLong:
		return e.SignedLongValues()
	case FieldTypeSByte:
		return e.SignedByteValues()
	case FieldTypeRational:
		return e.RationalValues()
	case FieldTypeSRational:
		return e.SignedRationalValues()
	case FieldTypeFloat:
		return e.FloatValues()
	case FieldTypeDouble:
		return e.DoubleValues()
	default:
		return nil, false
	}
}

// DisplayValue renders ASCII as text, LONG, SHORT, SLONG and SSHORT
// as "v" or "[v1, v2, ...]", and anything else as a hex dump.
func (e *Entry) DisplayValue() string {
	switch e.FieldType.Name {
	case FieldTypeASCII:
		v, _ := e.ASCIIValue()
		return v
	case FieldTypeLong:
		if v, ok := e.LongValues(); ok {
			return formatValues(v)
		}
	case FieldTypeShort:
		if v, ok := e.ShortValues(); ok {
			return formatValues(v)
		}
	case FieldTypeSLong:
		if v, ok := e.SignedLongValues(); ok {
			return formatValues(v)
		}
	case FieldTypeSShort:
		if v, ok := e.SignedShortValues(); ok {
			return formatValues(v)
		}
	}
	return formatBytes(e.ValueBytes)
}

func (e *Entry) String() string {
	return fmt.Sprintf("(Entry tag: %s, field_type: %s(%db), count: %d, value_offset: %d)",
		e.Tag.Label, e.FieldType.Name, e.FieldType.Width, e.Count, e.RawValue)
}

// decodeEntry decodes the entry at offset.
// The enclosing directory's label selects the tag table.
func (d *decoder) decodeEntry(offset int64, directoryLabel string) (*Entry, error) {
	b, err := d.readBytesVolatileAt(offset, entrySize)
	if err != nil {
		return nil, newFormatError("entry", offset, err)
	}

	bo := d.byteOrder
	tagID := bo.Uint16(b[0:2])
	typeCode := bo.Uint16(b[2:4])
	count := bo.Uint32(b[4:8])
	rawValue := bo.Uint32(b[8:12])

	ft, found := d.registry.LookupFieldType(typeCode)
	if !found {
		d.opts.Warnf("unknown field type %d for tag %d at offset %d", typeCode, tagID, offset)
	}
	tag, _ := d.registry.LookupTag(tagID, directoryLabel)

	entry := &Entry{
		Tag:           tag,
		TagID:         tagID,
		FieldType:     ft,
		FieldTypeCode: typeCode,
		Count:         count,
		RawValue:      rawValue,
		ByteOrder:     bo,
	}

	valLen := valueLength(count, ft)
	if valLen <= 4 {
		// The value is left-justified in the value field.
		v := bo.PutUint32(rawValue)
		entry.ValueBytes = v[:valLen]
		return entry, nil
	}

	if valLen > uint64(d.opts.LimitValueSize) {
		return nil, newFormatError("value", int64(rawValue),
			fmt.Errorf("%w: %d bytes exceeds limit %d", ErrTruncatedRead, valLen, d.opts.LimitValueSize))
	}

	entry.ValueBytes, err = d.readBytesAt(int64(rawValue), int64(valLen))
	if err != nil {
		return nil, newFormatError("value", int64(rawValue), err)
	}

	return entry, nil
}
