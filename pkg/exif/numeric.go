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
	"math"
)

// Numeric is the set of fixed-width types Read can decode.
type Numeric interface {
	uint8 | uint16 | uint32 | uint64 |
		int8 | int16 | int32 | int64 |
		float32 | float64
}

// Read decodes a T stored at b[off:] in byte order e.
// It fails with ErrInsufficientBytes if fewer than binary.Size(T) bytes
// remain from off.
//
// Read is the only place where byte order is applied.
func Read[T Numeric](e Endian, b []byte, off int) (T, error) {
	var v T
	n := binary.Size(v)
	if off < 0 || off > len(b) || len(b)-off < n {
		return v, fmt.Errorf("%w: need %d bytes at offset %d of %d", ErrInsufficientBytes, n, off, len(b))
	}
	p := b[off : off+n]
	order := e.ByteOrder()
	switch any(v).(type) {
	case uint8:
		v = T(p[0])
	case int8:
		v = T(int8(p[0]))
	case uint16:
		v = T(order.Uint16(p))
	case int16:
		v = T(int16(order.Uint16(p)))
	case uint32:
		v = T(order.Uint32(p))
	case int32:
		v = T(int32(order.Uint32(p)))
	case uint64:
		v = T(order.Uint64(p))
	case int64:
		v = T(int64(order.Uint64(p)))
	case float32:
		v = T(math.Float32frombits(order.Uint32(p)))
	case float64:
		v = T(math.Float64frombits(order.Uint64(p)))
	}
	return v, nil
}
