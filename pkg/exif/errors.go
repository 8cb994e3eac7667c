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

// Package exif decodes the Image File Directories of an EXIF block.
//
// An EXIF block is TIFF-structured: a two byte order marker ("MM" or "II"),
// the magic number 42, the offset of the first directory, then directories
// made of a count and fixed-size 12 byte entries. All offsets are relative
// to the byte order marker.
//
// Decoding never mutates its input and never panics on malformed data. A
// broken entry is reported on its own Tag and does not stop the walk.
package exif // import "exifwalk.org/pkg/exif"

import "errors"

var (
	// ErrUnrecognizedEndianMarker is returned when the byte order marker
	// is neither "MM" nor "II".
	ErrUnrecognizedEndianMarker = errors.New("exif: unrecognized byte order marker")

	// ErrInsufficientBytes is returned when a read would go past the end
	// of the available bytes.
	ErrInsufficientBytes = errors.New("exif: insufficient bytes")

	// ErrUnknownTagFormat is returned for entry format codes outside 1..12.
	ErrUnknownTagFormat = errors.New("exif: unknown tag format")

	// ErrComponentCountOverflow is returned when an entry's component
	// count times its format width does not fit in 32 bits.
	ErrComponentCountOverflow = errors.New("exif: component count overflow")

	// ErrInvalidUTF8 is returned for ASCII values that are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("exif: invalid UTF-8 in ASCII value")

	// ErrOffsetOutOfRange is returned when an entry's value offset points
	// outside the EXIF block.
	ErrOffsetOutOfRange = errors.New("exif: value offset out of range")

	// ErrNoEXIF is returned by Locate when the data contains no EXIF block.
	ErrNoEXIF = errors.New("exif: no EXIF block found")

	// ErrBadTIFFMagic is returned by Locate when the TIFF header does not
	// carry the magic number 42.
	ErrBadTIFFMagic = errors.New("exif: bad TIFF magic number")
)
