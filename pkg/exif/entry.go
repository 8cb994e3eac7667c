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
	"fmt"
	"math/bits"
)

// entrySize is the size of one directory entry: tag (2), format (2),
// component count (4) and value field (4).
const entrySize = 12

// inlineSize is the largest value length stored in the value field itself.
const inlineSize = 4

// A Tag is one decoded directory entry.
type Tag struct {
	ID     uint16
	Format Format

	// Value is nil when the entry could not be decoded. Err then says why.
	Value Value
	Err   error

	Components        uint32
	BytesPerComponent uint32
	Length            uint32 // Components * BytesPerComponent
}

func (t Tag) String() string {
	if t.Value == nil {
		return fmt.Sprintf("0x%04x %v[%d] <%v>", t.ID, t.Format, t.Components, t.Err)
	}
	return fmt.Sprintf("0x%04x %v[%d] %v", t.ID, t.Format, t.Components, t.Value)
}

// decodeEntry decodes the 12 byte entry. buf is the whole EXIF block,
// where out-of-line values live.
//
// Failures are recorded on the returned Tag; whatever header fields could
// be read are still filled in.
func decodeEntry(e Endian, buf, entry []byte) Tag {
	var t Tag
	fail := func(err error) Tag {
		t.Value = nil
		t.Err = err
		return t
	}

	id, err := Read[uint16](e, entry, 0)
	if err != nil {
		return fail(err)
	}
	t.ID = id
	code, err := Read[uint16](e, entry, 2)
	if err != nil {
		return fail(err)
	}
	t.Format = Format(code)
	if _, err := FormatFromCode(code); err != nil {
		return fail(err)
	}
	t.BytesPerComponent = t.Format.Size()
	if t.Components, err = Read[uint32](e, entry, 4); err != nil {
		return fail(err)
	}
	hi, length := bits.Mul32(t.Components, t.BytesPerComponent)
	if hi != 0 {
		return fail(fmt.Errorf("%w: %d components of %d bytes", ErrComponentCountOverflow, t.Components, t.BytesPerComponent))
	}
	t.Length = length
	if len(entry) < entrySize {
		return fail(fmt.Errorf("%w: entry of %d bytes", ErrInsufficientBytes, len(entry)))
	}

	span, err := valueSpan(e, buf, entry[8:entrySize], length)
	if err != nil {
		return fail(err)
	}
	if t.Value, err = decodeValue(t.Format, e, span); err != nil {
		return fail(err)
	}
	return t
}

// valueSpan returns the bytes holding a value of length bytes, given the
// entry's 4 byte value field. Values of up to 4 bytes are stored in the
// field itself; longer ones are at the offset the field holds.
func valueSpan(e Endian, buf, field []byte, length uint32) ([]byte, error) {
	if length <= inlineSize {
		if len(field) < int(length) {
			return nil, fmt.Errorf("%w: value field of %d bytes", ErrInsufficientBytes, len(field))
		}
		return field[:length], nil
	}
	off, err := Read[uint32](e, field, 0)
	if err != nil {
		return nil, err
	}
	end := uint64(off) + uint64(length)
	if end > uint64(len(buf)) {
		return nil, fmt.Errorf("%w: [%d, %d) in %d bytes", ErrOffsetOutOfRange, off, end, len(buf))
	}
	return buf[off:end], nil
}
