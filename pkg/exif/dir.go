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

// SubIFDPointer is the tag of the IFD0 entry holding the offset of the
// EXIF Sub-IFD.
const SubIFDPointer = 0x8769

// A Decoder walks directories. The zero value is ready to use.
type Decoder struct {
	// Logf, if non-nil, receives diagnostics about skipped Sub-IFDs,
	// failed entries and the next-IFD link.
	Logf func(format string, args ...any)

	// NoSubIFD disables following the Sub-IFD pointer of IFD0.
	NoSubIFD bool
}

func (d *Decoder) logf(format string, args ...any) {
	if d != nil && d.Logf != nil {
		d.Logf(format, args...)
	}
}

// DecodeDirectory decodes the directory at off in buf, followed by the
// entries of its EXIF Sub-IFD, if any. See (*Decoder).DecodeDirectory.
func DecodeDirectory(e Endian, buf []byte, off int) ([]Tag, error) {
	var d Decoder
	return d.DecodeDirectory(e, buf, off)
}

// DecodeDirectory decodes the directory whose entry count is at off in
// buf. buf starts at the byte order marker of the EXIF block.
//
// Every entry yields a Tag, in stored order, even when its value could not
// be decoded. If the directory holds a SubIFDPointer entry with a Long
// value, the Sub-IFD's entries are appended. A Sub-IFD that cannot be read
// is skipped. Only one level of Sub-IFD is followed.
//
// The returned error is non-nil only if the entry count itself cannot be
// read.
func (d *Decoder) DecodeDirectory(e Endian, buf []byte, off int) ([]Tag, error) {
	tags, err := d.decodeIFD(e, buf, off)
	if err != nil {
		return nil, err
	}
	if d != nil && d.NoSubIFD {
		return tags, nil
	}
	subOff, ok := subIFDOffset(tags)
	if !ok {
		return tags, nil
	}
	sub, err := d.decodeIFD(e, buf, int(subOff))
	if err != nil {
		d.logf("exif: skipping Sub-IFD at 0x%x: %v", subOff, err)
		return tags, nil
	}
	return append(tags, sub...), nil
}

// subIFDOffset returns the value of the first SubIFDPointer entry, if it
// decoded as a Long.
func subIFDOffset(tags []Tag) (uint32, bool) {
	for _, t := range tags {
		if t.ID != SubIFDPointer {
			continue
		}
		v, ok := t.Value.(Long)
		return uint32(v), ok
	}
	return 0, false
}

// decodeIFD decodes a single directory, without following pointers.
// Entries starting past the end of buf are dropped; an entry cut short by
// it is kept with its error.
func (d *Decoder) decodeIFD(e Endian, buf []byte, off int) ([]Tag, error) {
	count, err := Read[uint16](e, buf, off)
	if err != nil {
		return nil, fmt.Errorf("exif: reading entry count of IFD at 0x%x: %w", off, err)
	}
	first := off + 2
	// Entries that start within buf, the last of which may be cut short.
	n := min(int(count), (len(buf)-first+entrySize-1)/entrySize)
	if n < int(count) {
		d.logf("exif: IFD 0x%x declares %d entries, block holds %d", off, count, n)
	}
	tags := make([]Tag, 0, n)
	for i := 0; i < n; i++ {
		start := first + i*entrySize
		t := decodeEntry(e, buf, clamp(buf, start, start+entrySize))
		if t.Err != nil {
			d.logf("exif: IFD 0x%x entry %d (tag 0x%04x): %v", off, i, t.ID, t.Err)
		}
		tags = append(tags, t)
	}

	linkOff := first + int(count)*entrySize
	if link, err := Read[uint32](e, buf, linkOff); err == nil {
		d.logf("exif: IFD 0x%x links to next IFD at 0x%x (not followed)", off, link)
	} else {
		d.logf("exif: IFD 0x%x has no next IFD link", off)
	}
	return tags, nil
}

// clamp returns buf[start:end], shortened to what buf holds.
func clamp(buf []byte, start, end int) []byte {
	if start >= len(buf) {
		return nil
	}
	if end > len(buf) {
		end = len(buf)
	}
	return buf[start:end]
}
