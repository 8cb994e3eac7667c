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
	"slices"
)

// Signature precedes the TIFF header of an EXIF block inside a JPEG APP1
// segment or a HEIF EXIF item.
var Signature = []byte("Exif\x00\x00")

// tiffMagics are the header magic numbers accepted after the byte order
// marker: 42 for TIFF and EXIF, and the Olympus ORF variants "RO" and "RS",
// as read in the file's own byte order.
var tiffMagics = []uint16{42, 0x4f52, 0x5352}

// Exif is a located EXIF block.
type Exif struct {
	buf      []byte // starting at the byte order marker
	endian   Endian
	firstIFD uint32
}

// Locate finds the EXIF block in data. If data is itself a bare TIFF
// block, as found in TIFF-based raw files, it is used as is. Otherwise the
// block starts right after the first EXIF Signature in data.
//
// The returned Exif refers to data, which must not be modified while it
// is in use.
func Locate(data []byte) (*Exif, error) {
	if x, err := New(data); err == nil {
		return x, nil
	}
	i := bytes.Index(data, Signature)
	if i < 0 {
		return nil, ErrNoEXIF
	}
	return New(data[i+len(Signature):])
}

// New returns the Exif for buf, which must start with a TIFF header. The
// ORF variants of the header are accepted as well.
func New(buf []byte) (*Exif, error) {
	e, err := ResolveEndian(buf)
	if err != nil {
		return nil, err
	}
	magic, err := Read[uint16](e, buf, 2)
	if err != nil {
		return nil, fmt.Errorf("exif: reading TIFF header: %w", err)
	}
	if !slices.Contains(tiffMagics, magic) {
		return nil, fmt.Errorf("%w: %d", ErrBadTIFFMagic, magic)
	}
	first, err := Read[uint32](e, buf, 4)
	if err != nil {
		return nil, fmt.Errorf("exif: reading first IFD offset: %w", err)
	}
	return &Exif{buf: buf, endian: e, firstIFD: first}, nil
}

// Endian returns the byte order of the block.
func (x *Exif) Endian() Endian { return x.endian }

// FirstIFD returns the offset of IFD0 from the start of the block.
func (x *Exif) FirstIFD() uint32 { return x.firstIFD }

// Bytes returns the block, starting at its byte order marker.
func (x *Exif) Bytes() []byte { return x.buf }

// Tags decodes IFD0 and its EXIF Sub-IFD.
func (x *Exif) Tags() ([]Tag, error) {
	return x.TagsWith(nil)
}

// TagsWith is like Tags but uses d, which may be nil.
func (x *Exif) TagsWith(d *Decoder) ([]Tag, error) {
	return d.DecodeDirectory(x.endian, x.buf, int(x.firstIFD))
}
