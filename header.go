// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package rawmeta

import "fmt"

const (
	headerSize    = 8
	meaningOfLife = 42
)

// Header is the 8 byte file header.
type Header struct {
	ByteOrder            ByteOrder
	MagicNumber          uint16
	FirstDirectoryOffset uint32
}

func (h Header) String() string {
	return fmt.Sprintf("(Header byte_order: %s, magic number: %d, ifd_offset: %d)",
		h.ByteOrder, h.MagicNumber, h.FirstDirectoryOffset)
}

// decodeHeader reads the header and sets the byte order for all subsequent reads.
func (d *decoder) decodeHeader() (Header, error) {
	b, err := d.readBytesVolatileAt(0, headerSize)
	if err != nil {
		return Header{}, newFormatError("header", 0, err)
	}

	bo, ok := byteOrderFromMarker(b[0], b[1])
	if !ok {
		return Header{}, newFormatError("header", 0,
			fmt.Errorf("%w: %q", ErrUnknownByteOrder, b[:2]))
	}
	d.byteOrder = bo

	h := Header{
		ByteOrder:            bo,
		MagicNumber:          bo.Uint16(b[2:4]),
		FirstDirectoryOffset: bo.Uint32(b[4:8]),
	}

	if h.MagicNumber != meaningOfLife {
		d.opts.Warnf("unexpected magic number %d", h.MagicNumber)
	}

	return h, nil
}
