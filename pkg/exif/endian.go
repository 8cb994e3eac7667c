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
	"encoding/binary"
	"fmt"
)

// Endian is the byte order of an EXIF block. It applies to every
// multi-byte field of the block.
type Endian uint8

const (
	BigEndian    Endian = iota // "MM", Motorola
	LittleEndian               // "II", Intel
)

func (e Endian) String() string {
	switch e {
	case BigEndian:
		return "big-endian"
	case LittleEndian:
		return "little-endian"
	}
	return fmt.Sprintf("Endian(%d)", uint8(e))
}

// ByteOrder returns the encoding/binary order for e.
func (e Endian) ByteOrder() binary.ByteOrder {
	if e == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// ResolveEndian returns the byte order declared by the two byte marker at
// the start of marker.
func ResolveEndian(marker []byte) (Endian, error) {
	if len(marker) < 2 {
		return 0, fmt.Errorf("%w: %d marker bytes", ErrUnrecognizedEndianMarker, len(marker))
	}
	switch string(marker[:2]) {
	case "MM":
		return BigEndian, nil
	case "II":
		return LittleEndian, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnrecognizedEndianMarker, marker[:2])
}
