// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package rawmeta

import "encoding/binary"

const (
	byteOrderMarkerLittleEndian = 'I'
	byteOrderMarkerBigEndian    = 'M'
)

// ByteOrder is the byte order declared in the file header.
// It governs every multi-byte read for that file.
//
//go:generate stringer -type=ByteOrder -linecomment
type ByteOrder uint8

const (
	// LittleEndian is signalled by "II" in the file header.
	LittleEndian ByteOrder = iota // LE
	// BigEndian is signalled by "MM" in the file header.
	BigEndian // BE
)

func (o ByteOrder) binary() binary.ByteOrder {
	if o == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Uint16 decodes the first two bytes of b.
func (o ByteOrder) Uint16(b []byte) uint16 {
	return o.binary().Uint16(b)
}

// Uint32 decodes the first four bytes of b.
func (o ByteOrder) Uint32(b []byte) uint32 {
	return o.binary().Uint32(b)
}

// Uint64 decodes the first eight bytes of b.
func (o ByteOrder) Uint64(b []byte) uint64 {
	return o.binary().Uint64(b)
}

// Int16 decodes the first two bytes of b as a two's complement integer.
func (o ByteOrder) Int16(b []byte) int16 {
	v := o.Uint16(b)
	const signBit = 1 << 15
	return int16(-int32(v&signBit) + int32(v&^signBit))
}

// Int32 decodes the first four bytes of b as a two's complement integer.
func (o ByteOrder) Int32(b []byte) int32 {
	v := o.Uint32(b)
	const signBit = 1 << 31
	return int32(-int64(v&signBit) + int64(v&^signBit))
}

// PutUint16 encodes v into a new 2 byte array.
func (o ByteOrder) PutUint16(v uint16) [2]byte {
	var b [2]byte
	o.binary().PutUint16(b[:], v)
	return b
}

// PutUint32 encodes v into a new 4 byte array.
func (o ByteOrder) PutUint32(v uint32) [4]byte {
	var b [4]byte
	o.binary().PutUint32(b[:], v)
	return b
}

func byteOrderFromMarker(b0, b1 byte) (ByteOrder, bool) {
	if b0 != b1 {
		return 0, false
	}
	switch b0 {
	case byteOrderMarkerLittleEndian:
		return LittleEndian, true
	case byteOrderMarkerBigEndian:
		return BigEndian, true
	default:
		return 0, false
	}
}
