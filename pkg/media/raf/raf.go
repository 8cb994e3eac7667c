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

// Package raf reads the header of Fuji RAF raw files.
//
// A RAF file starts with a fixed-layout, big-endian header giving the
// camera model and the location of the embedded JPEG preview, which holds
// the EXIF block, and of the CFA sensor data.
package raf // import "exifwalk.org/pkg/media/raf"

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// Magic is the first 16 bytes of a RAF file.
const Magic = "FUJIFILMCCD-RAW "

// HeaderSize is the number of bytes Parse needs.
const HeaderSize = 108

var (
	// ErrNotRAF is returned by Parse when the data does not start with Magic.
	ErrNotRAF = errors.New("raf: not a RAF file")

	// ErrShortHeader is returned by Parse when the data is shorter than
	// HeaderSize.
	ErrShortHeader = errors.New("raf: header too short")

	// ErrRange is returned when a section lies outside the file.
	ErrRange = errors.New("raf: section out of range")
)

// Byte ranges of the header fields.
var (
	formatRange     = [2]int{0, 16}
	versionRange    = [2]int{16, 20}
	identifierRange = [2]int{20, 28}
	modelRange      = [2]int{28, 60}
	dirVersionRange = [2]int{60, 64}
)

// Offsets of the big-endian uint32 section fields.
const (
	jpegOffsetAt      = 84
	jpegLengthAt      = 88
	cfaHeaderOffsetAt = 92
	cfaHeaderLengthAt = 96
	cfaOffsetAt       = 100
	cfaLengthAt       = 104
)

// A Section is a byte range of the file.
type Section struct {
	Offset, Length uint32
}

// Header is the fixed header of a RAF file.
type Header struct {
	Format           string // "FUJIFILMCCD-RAW "
	Version          string // e.g. "0201"
	CameraID         string
	Model            string // NULs removed
	DirectoryVersion string

	JPEG      Section // embedded JPEG preview, with the EXIF block
	CFAHeader Section
	CFA       Section
}

// Parse reads the RAF header at the start of data.
func Parse(data []byte) (*Header, error) {
	if len(data) < len(Magic) || string(data[:len(Magic)]) != Magic {
		return nil, ErrNotRAF
	}
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrShortHeader, len(data))
	}
	str := func(r [2]int) string { return string(data[r[0]:r[1]]) }
	section := func(off, length int) Section {
		return Section{
			Offset: binary.BigEndian.Uint32(data[off:]),
			Length: binary.BigEndian.Uint32(data[length:]),
		}
	}
	return &Header{
		Format:           str(formatRange),
		Version:          str(versionRange),
		CameraID:         str(identifierRange),
		Model:            string(bytes.ReplaceAll(data[modelRange[0]:modelRange[1]], []byte{0}, nil)),
		DirectoryVersion: str(dirVersionRange),
		JPEG:             section(jpegOffsetAt, jpegLengthAt),
		CFAHeader:        section(cfaHeaderOffsetAt, cfaHeaderLengthAt),
		CFA:              section(cfaOffsetAt, cfaLengthAt),
	}, nil
}

// Slice returns the bytes of s within data, the whole file.
func (s Section) Slice(data []byte) ([]byte, error) {
	end := uint64(s.Offset) + uint64(s.Length)
	if end > uint64(len(data)) {
		return nil, fmt.Errorf("%w: [%d, %d) in %d bytes", ErrRange, s.Offset, end, len(data))
	}
	return data[s.Offset:end], nil
}

// EmbeddedJPEG returns the JPEG preview of data, the whole file.
func (h *Header) EmbeddedJPEG(data []byte) ([]byte, error) {
	if h.JPEG.Length == 0 {
		return nil, fmt.Errorf("%w: no JPEG preview", ErrRange)
	}
	return h.JPEG.Slice(data)
}
