// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package rawmeta

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Rat is a rational number as stored in a RATIONAL or SRATIONAL value.
// It is not reduced, and the denominator may be zero.
type Rat[T int32 | uint32] interface {
	Num() T
	Den() T
	Float64() float64

	// String returns the string representation of the rational number.
	// If the denominator is 1, the string will be the numerator only.
	String() string
}

// rat is a rational number.
// It's a lightweight version of math/big.rat.
type rat[T int32 | uint32] struct {
	num T
	den T
}

// Num returns the numerator of the rational number.
func (r rat[T]) Num() T {
	return r.num
}

// Den returns the denominator of the rational number.
func (r rat[T]) Den() T {
	return r.den
}

// Float64 returns the float64 representation of the rational number.
// A zero denominator gives ±Inf or NaN.
func (r rat[T]) Float64() float64 {
	return float64(r.num) / float64(r.den)
}

// String returns the string representation of the rational number.
// If the denominator is 1, the string will be the numerator only.
func (r rat[T]) String() string {
	if r.den == 1 {
		return fmt.Sprintf("%d", r.num)
	}
	return fmt.Sprintf("%d/%d", r.num, r.den)
}

// newRawRat keeps num and den as stored in the file, a zero denominator included.
func newRawRat[T int32 | uint32](num, den T) Rat[T] {
	return &rat[T]{num: num, den: den}
}

// decodeText decodes b as UTF-8, falling back to ISO 8859-1
// for the many cameras that write Latin-1 into ASCII fields.
func decodeText(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(s)
}

// formatValues renders a single value as "v" and multiple values as "[v1, v2]".
func formatValues[T any](values []T) string {
	var sb strings.Builder
	if len(values) > 1 {
		sb.WriteString("[")
	}
	for i, v := range values {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", v)
	}
	if len(values) > 1 {
		sb.WriteString("]")
	}
	return sb.String()
}

// formatBytes renders at most the first 20 bytes as hex.
func formatBytes(b []byte) string {
	const (
		maxShown     = 20
		truncateFrom = 30
	)
	var sb strings.Builder
	for i, c := range b {
		if i == maxShown {
			break
		}
		fmt.Fprintf(&sb, "%02X ", c)
	}
	if len(b) > truncateFrom {
		sb.WriteString("(truncated)")
	}
	return sb.String()
}
