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

import "fmt"

// Format is the data type of a directory entry, as stored in the entry's
// format field.
type Format uint16

const (
	UnsignedByte     Format = 1
	ASCIIString      Format = 2
	UnsignedShort    Format = 3
	UnsignedLong     Format = 4
	UnsignedRational Format = 5
	SignedByte       Format = 6
	Undefined        Format = 7
	SignedShort      Format = 8
	SignedLong       Format = 9
	SignedRational   Format = 10
	SingleFloat      Format = 11
	DoubleFloat      Format = 12
)

type formatInfo struct {
	name string
	size uint32 // bytes per component
}

// formats is indexed by format code. Index 0 is unused.
var formats = [...]formatInfo{
	UnsignedByte:     {"ubyte", 1},
	ASCIIString:      {"ascii", 1},
	UnsignedShort:    {"ushort", 2},
	UnsignedLong:     {"ulong", 4},
	UnsignedRational: {"urational", 8},
	SignedByte:       {"sbyte", 1},
	Undefined:        {"undefined", 1},
	SignedShort:      {"sshort", 2},
	SignedLong:       {"slong", 4},
	SignedRational:   {"srational", 8},
	SingleFloat:      {"float", 4},
	DoubleFloat:      {"double", 8},
}

// Formats lists every valid format, in code order.
var Formats = []Format{
	UnsignedByte, ASCIIString, UnsignedShort, UnsignedLong,
	UnsignedRational, SignedByte, Undefined, SignedShort,
	SignedLong, SignedRational, SingleFloat, DoubleFloat,
}

// FormatFromCode returns the Format for an entry format code.
func FormatFromCode(code uint16) (Format, error) {
	f := Format(code)
	if !f.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownTagFormat, code)
	}
	return f, nil
}

// ParseFormat returns the Format with the given String name.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if formats[f].name == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTagFormat, name)
}

// Valid reports whether f is one of the 12 defined formats.
func (f Format) Valid() bool {
	return f >= UnsignedByte && f <= DoubleFloat
}

// Size returns the number of bytes of one component of f,
// or 0 if f is not valid.
func (f Format) Size() uint32 {
	if !f.Valid() {
		return 0
	}
	return formats[f].size
}

func (f Format) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Format(%d)", uint16(f))
	}
	return formats[f].name
}
