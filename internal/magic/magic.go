/*
Copyright 2011 The Perkeep Authors

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

// Package magic identifies the container of an image from the well-known
// "magic" number prefixes at the start of the file.
package magic // import "exifwalk.org/internal/magic"

import (
	"bytes"
	"encoding/binary"
	"io"

	"go4.org/legal"
)

// MIME types of the containers this package recognizes.
const (
	JPEG = "image/jpeg"
	TIFF = "image/tiff"
	CR2  = "image/x-canon-cr2"
	RAF  = "image/x-fuji-raf"
	ORF  = "image/x-olympus-orf"
	HEIC = "image/heic"
	PNG  = "image/png"
	GIF  = "image/gif"
)

// A matchEntry contains rules for matching byte prefix (typically 1KB)
// and, on a match, contains the resulting MIME type.
// A matcher is either a function or an (offset+prefix).
type matchEntry struct {
	// fn specifies a matching function. If set, offset & prefix
	// are not used.
	fn func(prefix []byte) bool

	// offset is how many bytes of the input 1KB to ignore before
	// matching the prefix.
	offset int

	// prefix is the prefix to look for at offset. (admittedly, if
	// offset is non-zero, it's more of a substring than a prefix)
	prefix []byte

	// mtype is the resulting MIME type, on a match.
	mtype string
}

// matchTable is a list of matchers to match prefixes against. The
// first matching one wins, so CR2 must come before plain TIFF.
var matchTable = []matchEntry{
	{prefix: []byte("\xff\xd8\xff"), mtype: JPEG},
	{prefix: []byte("FUJIFILMCCD-RAW "), mtype: RAF},
	{prefix: []byte("II\x2a\x00\x10\x00\x00\x00CR"), mtype: CR2}, // Canon CR2 raw image data
	{prefix: []byte("MMOR"), mtype: ORF},                          // Olympus ORF raw image data, big-endian
	{prefix: []byte("IIRO"), mtype: ORF},                          // Olympus ORF raw image data, little-endian
	{prefix: []byte("IIRS"), mtype: ORF},                          // Olympus ORF raw image data, little-endian
	{prefix: []byte{0x49, 0x49, 0x2A, 0}, mtype: TIFF},
	{prefix: []byte{0x4D, 0x4D, 0, 0x2A}, mtype: TIFF},
	{prefix: []byte{137, 'P', 'N', 'G', '\r', '\n', 26, 10}, mtype: PNG},
	{prefix: []byte("GIF87a"), mtype: GIF},
	{prefix: []byte("GIF89a"), mtype: GIF},

	// iOS HEIC images
	{fn: isHEIC, mtype: HEIC},
}

func init() {
	legal.RegisterLicense(`
$File: LEGAL.NOTICE,v 1.15 2006/05/03 18:48:33 christos Exp $
Copyright (c) Ian F. Darwin 1986, 1987, 1989, 1990, 1991, 1992, 1994, 1995.
Software written by Ian F. Darwin and others;
maintained 1994- Christos Zoulas.

This software is not subject to any export provision of the United States
Department of Commerce, and may be exported to any country or planet.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:
1. Redistributions of source code must retain the above copyright
   notice immediately at the beginning of the file, without modification,
   this list of conditions, and the following disclaimer.
2. Redistributions in binary form must reproduce the above copyright
   notice, this list of conditions and the following disclaimer in the
   documentation and/or other materials provided with the distribution.

THIS SOFTWARE IS PROVIDED BY THE AUTHOR AND CONTRIBUTORS ''AS IS'' AND
ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
ARE DISCLAIMED. IN NO EVENT SHALL THE AUTHOR OR CONTRIBUTORS BE LIABLE FOR
ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS
OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION)
HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT
LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY
OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF
SUCH DAMAGE.
`)
}

// MIMEType returns the MIME type of the image container whose first
// bytes are hdr. It returns the empty string if the type can't be
// determined.
func MIMEType(hdr []byte) string {
	hlen := len(hdr)
	for _, pte := range matchTable {
		if pte.fn != nil {
			if pte.fn(hdr) {
				return pte.mtype
			}
			continue
		}
		plen := pte.offset + len(pte.prefix)
		if hlen >= plen && bytes.Equal(hdr[pte.offset:plen], pte.prefix) {
			return pte.mtype
		}
	}
	return ""
}

// MIMETypeFromReaderAt sniffs the beginning of ra and returns the MIME
// type if sniffed, else the empty string.
func MIMETypeFromReaderAt(ra io.ReaderAt) (mime string) {
	var buf [1024]byte
	n, _ := ra.ReadAt(buf[:], 0)
	return MIMEType(buf[:n])
}

var pict = []byte("pict")

// isHEIC reports whether the prefix looks like a BMFF HEIF file for a
// still image. (image/heic type)
//
// We verify it starts with an "ftyp" box of MajorBrand heic, and then
// has a "hdlr" box of HandlerType "pict" (inside a meta box which we
// don't verify). This isn't a compliant parser, so might have false
// positives on invalid inputs.
func isHEIC(prefix []byte) bool {
	if len(prefix) < 12 {
		return false
	}
	if string(prefix[4:12]) != "ftypheic" {
		return false
	}

	// Consume the "ftyp" box, required to be first in file.
	ftypLen := binary.BigEndian.Uint32(prefix[:4])
	if uint32(len(prefix)) < ftypLen {
		return false
	}

	// In the meta box, match /hdlr.{8}pict/, but without using a regexp.
	// The handler box always has its handler type 12 bytes into the record.
	metaBox := prefix[ftypLen:]
	const typeOffset = 12 // bytes from "hdlr" literal to 4 byte handler type
	pictPos := bytes.Index(metaBox, pict)
	if pictPos < typeOffset { // including -1
		return false
	}
	return string(metaBox[pictPos-12:pictPos-8]) == "hdlr"
}
