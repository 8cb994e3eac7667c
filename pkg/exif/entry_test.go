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
	"errors"
	"testing"
)

// entry returns a big-endian directory entry.
func entry(tag, code uint16, count uint32, field ...byte) []byte {
	b := make([]byte, entrySize)
	BigEndian.ByteOrder().PutUint16(b, tag)
	BigEndian.ByteOrder().PutUint16(b[2:], code)
	BigEndian.ByteOrder().PutUint32(b[4:], count)
	copy(b[8:], field)
	return b
}

func TestValueSpan(t *testing.T) {
	buf := []byte("0123456789abcdef")
	tests := []struct {
		name    string
		field   []byte
		length  uint32
		want    string
		wantErr error
	}{
		{name: "inline empty", field: []byte("wxyz"), length: 0, want: ""},
		{name: "inline prefix", field: []byte("wxyz"), length: 2, want: "wx"},
		{name: "inline full", field: []byte("wxyz"), length: 4, want: "wxyz"},
		{name: "offset", field: []byte{0, 0, 0, 2}, length: 5, want: "23456"},
		{name: "offset to end", field: []byte{0, 0, 0, 10}, length: 6, want: "abcdef"},
		{name: "offset past end", field: []byte{0, 0, 0, 11}, length: 6, wantErr: ErrOffsetOutOfRange},
		{name: "offset huge", field: []byte{0xff, 0xff, 0xff, 0xff}, length: 8, wantErr: ErrOffsetOutOfRange},
		{name: "short field", field: []byte{0, 0}, length: 8, wantErr: ErrInsufficientBytes},
	}
	for _, tt := range tests {
		got, err := valueSpan(BigEndian, buf, tt.field, tt.length)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("%s: err = %v; want %v", tt.name, err, tt.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		if string(got) != tt.want {
			t.Errorf("%s: span = %q; want %q", tt.name, got, tt.want)
		}
	}
}

func TestDecodeEntryRational(t *testing.T) {
	// The value lives at offset 12, right after the entry.
	buf := append(entry(0x829a, uint16(UnsignedRational), 1, 0, 0, 0, 12),
		0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x02)
	tag := decodeEntry(BigEndian, buf, buf[:entrySize])
	if tag.Err != nil {
		t.Fatal(tag.Err)
	}
	if want := (Rational{1, 2}); tag.Value != want {
		t.Errorf("value = %#v; want %#v", tag.Value, want)
	}
	if tag.ID != 0x829a || tag.Components != 1 || tag.BytesPerComponent != 8 || tag.Length != 8 {
		t.Errorf("header = %+v", tag)
	}

	v, err := decodeValue(UnsignedRational, BigEndian, []byte{0, 0, 0, 1, 0, 0, 0, 2})
	if err != nil || v != (Rational{1, 2}) {
		t.Errorf("decodeValue = %v, %v; want 1/2", v, err)
	}
	if _, err := decodeValue(SignedRational, BigEndian, []byte{0, 0, 0, 1, 0, 0, 0}); !errors.Is(err, ErrInsufficientBytes) {
		t.Errorf("short rational: err = %v; want ErrInsufficientBytes", err)
	}
}

func TestDecodeEntryASCII(t *testing.T) {
	e := entry(0x010f, uint16(ASCIIString), 4, 0x4e, 0x00, 0x00, 0x00)
	tag := decodeEntry(BigEndian, e, e)
	if tag.Err != nil {
		t.Fatal(tag.Err)
	}
	if tag.Value != ASCII("N") {
		t.Errorf("value = %#v; want %q", tag.Value, "N")
	}

	v, err := decodeValue(ASCIIString, BigEndian, []byte("Fu\x00ji\x00\x00"))
	if err != nil || v != ASCII("Fuji") {
		t.Errorf("embedded NULs: got %#v, %v; want %q", v, err, "Fuji")
	}
	if _, err := decodeValue(ASCIIString, BigEndian, []byte{'a', 0xff, 0xfe}); !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("invalid UTF-8: err = %v; want ErrInvalidUTF8", err)
	}
}

func TestDecodeEntryFailures(t *testing.T) {
	tests := []struct {
		name    string
		entry   []byte
		wantErr error
		wantID  uint16
	}{
		{
			name:    "unknown format",
			entry:   entry(0x0100, 13, 1),
			wantErr: ErrUnknownTagFormat,
			wantID:  0x0100,
		},
		{
			name:    "component overflow",
			entry:   entry(0x0101, uint16(DoubleFloat), 0x20000000),
			wantErr: ErrComponentCountOverflow,
			wantID:  0x0101,
		},
		{
			name:    "offset out of range",
			entry:   entry(0x0102, uint16(UnsignedLong), 2, 0, 0, 0x10, 0),
			wantErr: ErrOffsetOutOfRange,
			wantID:  0x0102,
		},
		{
			name:    "truncated entry",
			entry:   entry(0x0103, uint16(UnsignedShort), 1)[:10],
			wantErr: ErrInsufficientBytes,
			wantID:  0x0103,
		},
		{
			name:    "no header",
			entry:   []byte{0x01},
			wantErr: ErrInsufficientBytes,
		},
		{
			name:    "zero components",
			entry:   entry(0x0104, uint16(UnsignedShort), 0),
			wantErr: ErrInsufficientBytes,
			wantID:  0x0104,
		},
	}
	for _, tt := range tests {
		tag := decodeEntry(BigEndian, tt.entry, tt.entry)
		if tag.Value != nil {
			t.Errorf("%s: value = %v; want nil", tt.name, tag.Value)
		}
		if !errors.Is(tag.Err, tt.wantErr) {
			t.Errorf("%s: err = %v; want %v", tt.name, tag.Err, tt.wantErr)
		}
		if tag.ID != tt.wantID {
			t.Errorf("%s: ID = 0x%x; want 0x%x", tt.name, tag.ID, tt.wantID)
		}
	}
}

func TestDecodeEntryRawIsCopied(t *testing.T) {
	buf := entry(0x9000, uint16(Undefined), 4, '0', '2', '3', '2')
	tag := decodeEntry(BigEndian, buf, buf)
	raw, ok := tag.Value.(Raw)
	if !ok {
		t.Fatalf("value = %#v; want Raw", tag.Value)
	}
	buf[8] = 'X'
	if !bytes.Equal(raw, []byte("0232")) {
		t.Errorf("Raw value = %q after changing the buffer; want %q", raw, "0232")
	}
}
