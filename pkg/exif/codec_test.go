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
	"errors"
	"math"
	"testing"
)

func TestResolveEndian(t *testing.T) {
	tests := []struct {
		in      string
		want    Endian
		wantErr bool
	}{
		{in: "MM", want: BigEndian},
		{in: "II", want: LittleEndian},
		{in: "MM\x00*", want: BigEndian},
		{in: "MI", wantErr: true},
		{in: "mm", wantErr: true},
		{in: "M", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ResolveEndian([]byte(tt.in))
		if tt.wantErr {
			if !errors.Is(err, ErrUnrecognizedEndianMarker) {
				t.Errorf("ResolveEndian(%q) error = %v; want ErrUnrecognizedEndianMarker", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ResolveEndian(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestRead(t *testing.T) {
	b := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09}

	check := func(name string, got, want any, err error) {
		t.Helper()
		if err != nil {
			t.Errorf("%s: %v", name, err)
			return
		}
		if got != want {
			t.Errorf("%s = %#x; want %#x", name, got, want)
		}
	}
	u8, err := Read[uint8](BigEndian, b, 3)
	check("uint8 @3", u8, uint8(0x04), err)
	i8, err := Read[int8](LittleEndian, []byte{0xff}, 0)
	check("int8", i8, int8(-1), err)
	u16be, err := Read[uint16](BigEndian, b, 0)
	check("uint16 BE", u16be, uint16(0x0102), err)
	u16le, err := Read[uint16](LittleEndian, b, 0)
	check("uint16 LE", u16le, uint16(0x0201), err)
	i16, err := Read[int16](BigEndian, []byte{0xff, 0xfe}, 0)
	check("int16", i16, int16(-2), err)
	u32be, err := Read[uint32](BigEndian, b, 1)
	check("uint32 BE @1", u32be, uint32(0x02030405), err)
	u32le, err := Read[uint32](LittleEndian, b, 1)
	check("uint32 LE @1", u32le, uint32(0x05040302), err)
	i32, err := Read[int32](LittleEndian, []byte{0xfe, 0xff, 0xff, 0xff}, 0)
	check("int32", i32, int32(-2), err)
	u64, err := Read[uint64](BigEndian, b, 1)
	check("uint64 BE @1", u64, uint64(0x0203040506070809), err)
	i64, err := Read[int64](LittleEndian, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, 0)
	check("int64", i64, int64(-1), err)

	f32, err := Read[float32](BigEndian, []byte{0x3f, 0xc0, 0x00, 0x00}, 0)
	check("float32", f32, float32(1.5), err)
	var f64b [8]byte
	LittleEndian.ByteOrder().PutUint64(f64b[:], math.Float64bits(-2.25))
	f64, err := Read[float64](LittleEndian, f64b[:], 0)
	check("float64", f64, -2.25, err)
}

func TestReadInsufficient(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	for _, off := range []int{-1, 1, 3, 4, 5} {
		if _, err := Read[uint32](BigEndian, b, off); !errors.Is(err, ErrInsufficientBytes) {
			t.Errorf("Read[uint32] at %d: err = %v; want ErrInsufficientBytes", off, err)
		}
	}
	if _, err := Read[uint16](BigEndian, b, 2); err != nil {
		t.Errorf("Read[uint16] at 2: %v", err)
	}
	if _, err := Read[uint8](BigEndian, nil, 0); !errors.Is(err, ErrInsufficientBytes) {
		t.Errorf("Read[uint8] of nil: err = %v; want ErrInsufficientBytes", err)
	}
}

func TestFormatTable(t *testing.T) {
	wantSizes := []uint32{1, 1, 2, 4, 8, 1, 1, 2, 4, 8, 4, 8}
	for i, size := range wantSizes {
		code := uint16(i + 1)
		f, err := FormatFromCode(code)
		if err != nil {
			t.Fatalf("FormatFromCode(%d): %v", code, err)
		}
		if f.Size() != size {
			t.Errorf("%v.Size() = %d; want %d", f, f.Size(), size)
		}
		if f != Formats[i] {
			t.Errorf("Formats[%d] = %v; want %v", i, Formats[i], f)
		}
		back, err := ParseFormat(f.String())
		if err != nil || back != f {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v", f.String(), back, err, f)
		}
	}
	for _, code := range []uint16{0, 13, 0xffff} {
		if _, err := FormatFromCode(code); !errors.Is(err, ErrUnknownTagFormat) {
			t.Errorf("FormatFromCode(%d) error = %v; want ErrUnknownTagFormat", code, err)
		}
		if got := Format(code).Size(); got != 0 {
			t.Errorf("Format(%d).Size() = %d; want 0", code, got)
		}
	}
}
