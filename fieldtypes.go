// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package rawmeta

// FieldType is the declared data type of a directory entry's value.
type FieldType struct {
	Name  string
	Width uint8
}

func (f FieldType) String() string {
	return f.Name
}

// The field type names.
const (
	FieldTypeByte      = "BYTE"
	FieldTypeASCII     = "ASCII"
	FieldTypeShort     = "SHORT"
	FieldTypeLong      = "LONG"
	FieldTypeRational  = "RATIONAL"
	FieldTypeSByte     = "SBYTE"
	FieldTypeUndefined = "UNDEFINED"
	FieldTypeSShort    = "SSHORT"
	FieldTypeSLong     = "SLONG"
	FieldTypeSRational = "SRATIONAL"
	FieldTypeFloat     = "FLOAT"
	FieldTypeDouble    = "DOUBLE"
	FieldTypeUnknown   = "Unknown"
)

// UnknownFieldType is used for codes not in the registry.
var UnknownFieldType = FieldType{Name: FieldTypeUnknown, Width: 1}

// FieldTypes maps a 16-bit field type code to its FieldType.
type FieldTypes map[uint16]FieldType

// Lookup never fails; unknown codes resolve to UnknownFieldType.
func (f FieldTypes) Lookup(code uint16) (FieldType, bool) {
	if ft, ok := f[code]; ok {
		return ft, true
	}
	return UnknownFieldType, false
}

// DefaultFieldTypes returns the TIFF 6.0 field types.
func DefaultFieldTypes() FieldTypes {
	return FieldTypes{
		1:  {FieldTypeByte, 1},
		2:  {FieldTypeASCII, 1},
		3:  {FieldTypeShort, 2},
		4:  {FieldTypeLong, 4},
		5:  {FieldTypeRational, 8},
		6:  {FieldTypeSByte, 1},
		7:  {FieldTypeUndefined, 1},
		8:  {FieldTypeSShort, 2},
		9:  {FieldTypeSLong, 4},
		10: {FieldTypeSRational, 8},
		11: {FieldTypeFloat, 4},
		12: {FieldTypeDouble, 8},
	}
}
