// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package rawmeta

import (
	"bytes"
	"io"
	"testing"
)

// Field type codes used when building test files.
const (
	typeByte      = 1
	typeASCII     = 2
	typeShort     = 3
	typeLong      = 4
	typeRational  = 5
	typeSByte     = 6
	typeUndefined = 7
	typeSShort    = 8
	typeSLong     = 9
	typeSRational = 10
	typeFloat     = 11
	typeDouble    = 12
)

// Tag ids used when building test files.
const (
	tagImageWidth   = 256
	tagMake         = 271
	tagModel        = 272
	tagOrientation  = 274
	tagSubIFDs      = 330
	tagExposureTime = 33434
	tagExifIFD      = 34665
	tagGPSIFD       = 34853
	tagMakerNote    = 37500
	tagSonyQuality  = 0x0102
)

type testEntry struct {
	tag   uint16
	typ   uint16
	count uint32
	value uint32
}

// tiffBuilder writes TIFF structures at absolute offsets.
type tiffBuilder struct {
	bo  ByteOrder
	buf []byte
}

func newTIFFBuilder(bo ByteOrder, firstDirectoryOffset uint32) *tiffBuilder {
	b := &tiffBuilder{bo: bo}
	if bo == LittleEndian {
		b.putBytes(0, []byte("II"))
	} else {
		b.putBytes(0, []byte("MM"))
	}
	b.putUint16(2, meaningOfLife)
	b.putUint32(4, firstDirectoryOffset)
	return b
}

func (b *tiffBuilder) grow(n int) {
	if n > len(b.buf) {
		b.buf = append(b.buf, make([]byte, n-len(b.buf))...)
	}
}

func (b *tiffBuilder) putBytes(offset uint32, p []byte) *tiffBuilder {
	b.grow(int(offset) + len(p))
	copy(b.buf[offset:], p)
	return b
}

func (b *tiffBuilder) putUint16(offset uint32, v uint16) *tiffBuilder {
	p := b.bo.PutUint16(v)
	return b.putBytes(offset, p[:])
}

func (b *tiffBuilder) putUint32(offset uint32, v uint32) *tiffBuilder {
	p := b.bo.PutUint32(v)
	return b.putBytes(offset, p[:])
}

// shortValue returns the value field holding v left-justified.
func (b *tiffBuilder) shortValue(v uint16) uint32 {
	p := b.bo.PutUint16(v)
	return b.bo.Uint32([]byte{p[0], p[1], 0, 0})
}

// inlineValue returns the value field holding p left-justified.
func (b *tiffBuilder) inlineValue(p []byte) uint32 {
	var field [4]byte
	copy(field[:], p)
	return b.bo.Uint32(field[:])
}

// putDirectory writes a directory at offset and returns the offset following it.
func (b *tiffBuilder) putDirectory(offset uint32, entries []testEntry, next uint32) uint32 {
	b.putUint16(offset, uint16(len(entries)))
	pos := offset + 2
	for _, e := range entries {
		b.putUint16(pos, e.tag)
		b.putUint16(pos+2, e.typ)
		b.putUint32(pos+4, e.count)
		b.putUint32(pos+8, e.value)
		pos += entrySize
	}
	b.putUint32(pos, next)
	return pos + 4
}

func (b *tiffBuilder) bytes() []byte {
	return bytes.Clone(b.buf)
}

// newTwoLevelFile builds a main directory at 8 pointing to an Exif directory at 50.
func newTwoLevelFile(bo ByteOrder) []byte {
	b := newTIFFBuilder(bo, 8)
	b.putDirectory(8, []testEntry{
		{tag: tagMake, typ: typeASCII, count: 5, value: 100},
		{tag: tagExifIFD, typ: typeLong, count: 1, value: 50},
	}, 0)
	b.putDirectory(50, []testEntry{
		{tag: tagExposureTime, typ: typeRational, count: 1, value: 120},
	}, 0)
	b.putBytes(100, []byte("SONY\x00"))
	b.putUint32(120, 1)
	b.putUint32(124, 200)
	return b.bytes()
}

// countingReadSeeker counts the calls to Read and Seek.
type countingReadSeeker struct {
	io.ReadSeeker
	reads int
	seeks int
}

func (c *countingReadSeeker) Read(p []byte) (int, error) {
	c.reads++
	return c.ReadSeeker.Read(p)
}

func (c *countingReadSeeker) Seek(offset int64, whence int) (int64, error) {
	c.seeks++
	return c.ReadSeeker.Seek(offset, whence)
}

func (c *countingReadSeeker) reset() {
	c.reads, c.seeks = 0, 0
}

func newTestDecoder(t testing.TB, r io.ReadSeeker, bo ByteOrder) *decoder {
	t.Helper()
	sr, err := newStreamReader(r)
	if err != nil {
		t.Fatal(err)
	}
	sr.byteOrder = bo
	return &decoder{
		streamReader: sr,
		registry:     DefaultRegistry(),
		opts: Options{
			Warnf:               t.Logf,
			LimitNumDirectories: defaultLimitNumDirectories,
			LimitValueSize:      defaultLimitValueSize,
		},
		result: &DecodeResult{},
	}
}
