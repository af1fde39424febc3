// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import "reflect"

// Defaulter is implemented by state blobs whose default is not their
// zero value. Default must have a value receiver.
type Defaulter[T any] interface {
	Default() T
}

// Default returns the default value of a state blob:
// its Default method if it has one, and otherwise its zero value.
func Default[T any]() T {
	var zero T
	if d, ok := any(zero).(Defaulter[T]); ok {
		return d.Default()
	}
	return zero
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// Get returns the state blob of type T stored for id,
// or [Default] on a cache miss.
func Get[T any](c Cache, id ID) T {
	if v, ok := c.Temp(id, typeOf[T]()); ok {
		if t, ok := v.(T); ok {
			return t
		}
	}
	return Default[T]()
}

// Lookup returns the state blob of type T stored for id,
// and whether there was one.
func Lookup[T any](c Cache, id ID) (T, bool) {
	if v, ok := c.Temp(id, typeOf[T]()); ok {
		if t, ok := v.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// Insert stores the state blob of type T for id.
func Insert[T any](c Cache, id ID, v T) {
	c.SetTemp(id, typeOf[T](), v)
}

// Update fetches the state blob of type T for id (or its default),
// passes it to fn for mutation, writes it back, and returns it.
func Update[T any](c Cache, id ID, fn func(v *T)) T {
	v := Get[T](c, id)
	fn(&v)
	Insert(c, id, v)
	return v
}
