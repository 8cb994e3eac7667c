/*
Copyright 2026 The Perkeep Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

     http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package exif

import (
	"bytes"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// A Value is the decoded payload of a directory entry. Its concrete type
// is one of Byte, ASCII, Short, Long, Rational, SByte, Raw, SShort, SLong,
// SRational, Float or Double, matching the entry's Format.
//
// Only the first component of numeric entries is decoded. ASCII and Raw
// cover the whole value span.
type Value interface {
	Format() Format
	String() string

	value()
}

type (
	Byte   uint8   // UnsignedByte
	ASCII  string  // ASCIIString, with every NUL removed
	Short  uint16  // UnsignedShort
	Long   uint32  // UnsignedLong
	SByte  int8    // SignedByte
	Raw    []byte  // Undefined, copied out of the EXIF block
	SShort int16   // SignedShort
	SLong  int32   // SignedLong
	Float  float32 // SingleFloat
	Double float64 // DoubleFloat
)

// Rational is an UnsignedRational value.
type Rational struct{ Num, Den uint32 }

// SRational is a SignedRational value.
type SRational struct{ Num, Den int32 }

func (Byte) Format() Format      { return UnsignedByte }
func (ASCII) Format() Format     { return ASCIIString }
func (Short) Format() Format     { return UnsignedShort }
func (Long) Format() Format      { return UnsignedLong }
func (Rational) Format() Format  { return UnsignedRational }
func (SByte) Format() Format     { return SignedByte }
func (Raw) Format() Format       { return Undefined }
func (SShort) Format() Format    { return SignedShort }
func (SLong) Format() Format     { return SignedLong }
func (SRational) Format() Format { return SignedRational }
func (Float) Format() Format     { return SingleFloat }
func (Double) Format() Format    { return DoubleFloat }

func (v Byte) String() string      { return strconv.FormatUint(uint64(v), 10) }
func (v ASCII) String() string     { return strconv.Quote(string(v)) }
func (v Short) String() string     { return strconv.FormatUint(uint64(v), 10) }
func (v Long) String() string      { return strconv.FormatUint(uint64(v), 10) }
func (v Rational) String() string  { return fmt.Sprintf("%d/%d", v.Num, v.Den) }
func (v SByte) String() string     { return strconv.FormatInt(int64(v), 10) }
func (v Raw) String() string       { return fmt.Sprintf("% x", []byte(v)) }
func (v SShort) String() string    { return strconv.FormatInt(int64(v), 10) }
func (v SLong) String() string     { return strconv.FormatInt(int64(v), 10) }
func (v SRational) String() string { return fmt.Sprintf("%d/%d", v.Num, v.Den) }
func (v Float) String() string     { return strconv.FormatFloat(float64(v), 'g', -1, 32) }
func (v Double) String() string    { return strconv.FormatFloat(float64(v), 'g', -1, 64) }

func (Byte) value()      {}
func (ASCII) value()     {}
func (Short) value()     {}
func (Long) value()      {}
func (Rational) value()  {}
func (SByte) value()     {}
func (Raw) value()       {}
func (SShort) value()    {}
func (SLong) value()     {}
func (SRational) value() {}
func (Float) value()     {}
func (Double) value()    {}

type valueDecoder func(e Endian, b []byte) (Value, error)

// valueDecoders is indexed by Format.
var valueDecoders = [...]valueDecoder{
	UnsignedByte:     numeric[uint8, Byte],
	ASCIIString:      decodeASCII,
	UnsignedShort:    numeric[uint16, Short],
	UnsignedLong:     numeric[uint32, Long],
	UnsignedRational: decodeRational,
	SignedByte:       numeric[int8, SByte],
	Undefined:        decodeRaw,
	SignedShort:      numeric[int16, SShort],
	SignedLong:       numeric[int32, SLong],
	SignedRational:   decodeSRational,
	SingleFloat:      numeric[float32, Float],
	DoubleFloat:      numeric[float64, Double],
}

// decodeValue decodes the value span b of an entry of format f.
func decodeValue(f Format, e Endian, b []byte) (Value, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTagFormat, uint16(f))
	}
	return valueDecoders[f](e, b)
}

// numeric decodes the first component of b as an N and wraps it as V.
func numeric[N Numeric, V interface {
	~uint8 | ~uint16 | ~uint32 | ~int8 | ~int16 | ~int32 | ~float32 | ~float64
	Value
}](e Endian, b []byte) (Value, error) {
	n, err := Read[N](e, b, 0)
	if err != nil {
		return nil, err
	}
	return V(n), nil
}

func decodeRational(e Endian, b []byte) (Value, error) {
	num, err := Read[uint32](e, b, 0)
	if err != nil {
		return nil, err
	}
	den, err := Read[uint32](e, b, 4)
	if err != nil {
		return nil, err
	}
	return Rational{num, den}, nil
}

func decodeSRational(e Endian, b []byte) (Value, error) {
	num, err := Read[int32](e, b, 0)
	if err != nil {
		return nil, err
	}
	den, err := Read[int32](e, b, 4)
	if err != nil {
		return nil, err
	}
	return SRational{num, den}, nil
}

// decodeASCII removes all NULs, not only the trailing padding: some
// encoders embed them.
func decodeASCII(_ Endian, b []byte) (Value, error) {
	if !utf8.Valid(b) {
		return nil, ErrInvalidUTF8
	}
	return ASCII(bytes.ReplaceAll(b, []byte{0}, nil)), nil
}

func decodeRaw(_ Endian, b []byte) (Value, error) {
	return Raw(bytes.Clone(b)), nil
}
