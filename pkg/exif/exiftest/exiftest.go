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

// Package exiftest builds EXIF blocks for tests.
package exiftest // import "exifwalk.org/pkg/exif/exiftest"

import (
	"encoding/binary"
	"fmt"
	"math"

	"exifwalk.org/pkg/exif"
)

// HeaderSize is the size of the TIFF header written by Encode. IFD0
// starts right after it.
const HeaderSize = 8

// An Entry is one directory entry to encode.
//
// If Value is set, the format, count and value field are derived from it.
// Otherwise Code, Count and Field are written verbatim, which allows
// malformed entries.
type Entry struct {
	Tag   uint16
	Value exif.Value

	Code  uint16
	Count uint32
	Field [4]byte
}

// A Dir is the list of entries of one directory, in stored order.
type Dir []Entry

// A Header is a TIFF header variant for EncodeHeader.
type Header struct {
	Magic uint16 // 42 if zero
	Extra []byte // written after the first HeaderSize bytes, before IFD0
}

// Headers of TIFF-based raw files.
var (
	ORF = Header{Magic: 0x4f52}                               // "RO" little-endian, "OR" big-endian
	CR2 = Header{Extra: []byte("CR\x02\x00\x00\x00\x00\x00")} // version 2.0, no raw IFD
)

// Encode returns a TIFF-structured EXIF block in byte order e, starting
// at the byte order marker, holding ifd0 at offset HeaderSize.
// If sub is non-nil, a SubIFDPointer entry pointing at sub is appended
// to ifd0.
func Encode(e exif.Endian, ifd0, sub Dir) []byte {
	return EncodeHeader(e, Header{}, ifd0, sub)
}

// EncodeHeader is like Encode but writes the header h. IFD0 starts at
// HeaderSize+len(h.Extra).
func EncodeHeader(e exif.Endian, h Header, ifd0, sub Dir) []byte {
	order := e.ByteOrder()
	if h.Magic == 0 {
		h.Magic = 42
	}
	dirs := []Dir{ifd0}
	if sub != nil {
		dirs = append(dirs, sub)
		// The pointer's value is patched in below, once sub's offset is known.
		dirs[0] = append(append(Dir(nil), ifd0...), Entry{Tag: exif.SubIFDPointer, Value: exif.Long(0)})
	}

	offsets := make([]uint32, len(dirs))
	off := uint32(HeaderSize + len(h.Extra))
	for i, d := range dirs {
		offsets[i] = off
		off += dirSize(d)
	}
	if sub != nil {
		dirs[0][len(dirs[0])-1].Value = exif.Long(offsets[1])
	}

	buf := make([]byte, off)
	if e == exif.LittleEndian {
		copy(buf, "II")
	} else {
		copy(buf, "MM")
	}
	order.PutUint16(buf[2:], h.Magic)
	order.PutUint32(buf[4:], offsets[0])
	copy(buf[HeaderSize:], h.Extra)

	for i, d := range dirs {
		p := offsets[i]
		order.PutUint16(buf[p:], uint16(len(d)))
		p += 2
		for _, ent := range d {
			code, count, field := ent.Code, ent.Count, ent.Field
			if ent.Value != nil {
				var data []byte
				code, count, data = EncodeValue(e, ent.Value)
				if len(data) <= 4 {
					copy(field[:], data)
				} else {
					order.PutUint32(field[:], uint32(len(buf)))
					buf = append(buf, data...)
					if len(buf)%2 == 1 {
						buf = append(buf, 0)
					}
				}
			}
			order.PutUint16(buf[p:], ent.Tag)
			order.PutUint16(buf[p+2:], code)
			order.PutUint32(buf[p+4:], count)
			copy(buf[p+8:p+12], field[:])
			p += 12
		}
		// Next IFD link; the chain is never followed.
		order.PutUint32(buf[p:], 0)
	}
	return buf
}

func dirSize(d Dir) uint32 {
	return 2 + 12*uint32(len(d)) + 4
}

// EncodeValue returns the format code, component count and bytes of v.
func EncodeValue(e exif.Endian, v exif.Value) (code uint16, count uint32, data []byte) {
	order := e.ByteOrder()
	u16 := func(x uint16) []byte {
		b := make([]byte, 2)
		order.PutUint16(b, x)
		return b
	}
	u32 := func(xs ...uint32) []byte {
		b := make([]byte, 4*len(xs))
		for i, x := range xs {
			order.PutUint32(b[4*i:], x)
		}
		return b
	}
	code = uint16(v.Format())
	switch v := v.(type) {
	case exif.Byte:
		return code, 1, []byte{byte(v)}
	case exif.SByte:
		return code, 1, []byte{byte(v)}
	case exif.ASCII:
		data = append([]byte(v), 0)
		return code, uint32(len(data)), data
	case exif.Raw:
		return code, uint32(len(v)), append([]byte(nil), v...)
	case exif.Short:
		return code, 1, u16(uint16(v))
	case exif.SShort:
		return code, 1, u16(uint16(v))
	case exif.Long:
		return code, 1, u32(uint32(v))
	case exif.SLong:
		return code, 1, u32(uint32(v))
	case exif.Rational:
		return code, 1, u32(v.Num, v.Den)
	case exif.SRational:
		return code, 1, u32(uint32(v.Num), uint32(v.Den))
	case exif.Float:
		return code, 1, u32(math.Float32bits(float32(v)))
	case exif.Double:
		data = make([]byte, 8)
		order.PutUint64(data, math.Float64bits(float64(v)))
		return code, 1, data
	}
	panic(fmt.Sprintf("exiftest: unhandled value type %T", v))
}

// JPEG wraps block in a minimal JPEG stream: SOI, an APP1 segment with
// the EXIF signature, and EOI. The result has no image data.
func JPEG(block []byte) []byte {
	seg := append(append([]byte(nil), exif.Signature...), block...)
	b := []byte{0xFF, 0xD8, 0xFF, 0xE1}
	b = binary.BigEndian.AppendUint16(b, uint16(len(seg)+2))
	b = append(b, seg...)
	return append(b, 0xFF, 0xD9)
}
