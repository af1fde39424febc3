// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// ID is an opaque widget identity. The same key parts under the same
// scope always give the same ID, so keys must never contain
// frame-varying values such as time or pointer position; widgets shown
// in a loop must include the loop index or an item id.
type ID uint64

// Hash returns the ID of the given key parts.
func Hash(parts ...any) ID {
	return ID(0).With(parts...)
}

// With returns the ID of the given key parts nested under id.
func (id ID) With(parts ...any) ID {
	d := xxhash.New()
	var buf [9]byte
	writeU := func(tag byte, u uint64) {
		buf[0] = tag
		binary.LittleEndian.PutUint64(buf[1:], u)
		d.Write(buf[:])
	}
	writeU('p', uint64(id))
	for _, p := range parts {
		switch v := p.(type) {
		case ID:
			writeU('d', uint64(v))
		case string:
			writeU('s', uint64(len(v)))
			d.WriteString(v)
		case int:
			writeU('i', uint64(v))
		case int32:
			writeU('i', uint64(v))
		case int64:
			writeU('i', uint64(v))
		case uint:
			writeU('u', uint64(v))
		case uint32:
			writeU('u', uint64(v))
		case uint64:
			writeU('u', v)
		case float32:
			writeU('f', math.Float64bits(float64(v)))
		case float64:
			writeU('f', math.Float64bits(v))
		case bool:
			b := uint64(0)
			if v {
				b = 1
			}
			writeU('b', b)
		default:
			s := fmt.Sprintf("%T:%v", v, v)
			writeU('x', uint64(len(s)))
			d.WriteString(s)
		}
	}
	return ID(d.Sum64())
}

func (id ID) String() string {
	return fmt.Sprintf("%016x", uint64(id))
}
