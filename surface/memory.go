// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"log/slog"
	"reflect"
)

// DefaultMaxAge is the default number of frames that a [Memory]
// entry survives without being read.
const DefaultMaxAge = 120

// memKey keys entries by id and blob type, so that two blob
// types stored under one id never alias each other.
type memKey struct {
	id  ID
	typ reflect.Type
}

type memEntry struct {
	value    any
	lastUsed uint64
}

// Memory is a reference implementation of [Cache] and [Values] for hosts
// that do not have their own. Entries not read or written for MaxAge
// frames are evicted by [Memory.EndFrame]; values are never evicted.
type Memory struct {

	// MaxAge is the number of frames an entry survives without use.
	MaxAge uint64

	entries map[memKey]*memEntry
	values  map[string]any
	frame   uint64
}

// NewMemory returns a new empty [Memory].
func NewMemory() *Memory {
	return &Memory{MaxAge: DefaultMaxAge, entries: map[memKey]*memEntry{}, values: map[string]any{}}
}

func (m *Memory) Temp(id ID, typ reflect.Type) (any, bool) {
	e, ok := m.entries[memKey{id, typ}]
	if !ok {
		return nil, false
	}
	e.lastUsed = m.frame
	return e.value, true
}

func (m *Memory) SetTemp(id ID, typ reflect.Type, v any) {
	k := memKey{id, typ}
	if e, ok := m.entries[k]; ok {
		e.value = v
		e.lastUsed = m.frame
		return
	}
	m.entries[k] = &memEntry{value: v, lastUsed: m.frame}
}

// Remove removes the entry of the given type for id.
func (m *Memory) Remove(id ID, typ reflect.Type) {
	delete(m.entries, memKey{id, typ})
}

func (m *Memory) Value(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *Memory) SetValue(key string, v any) {
	m.values[key] = v
}

// Len returns the number of cached entries.
func (m *Memory) Len() int {
	return len(m.entries)
}

// Frame returns the current frame number.
func (m *Memory) Frame() uint64 {
	return m.frame
}

// EndFrame advances to the next frame and evicts stale entries.
func (m *Memory) EndFrame() {
	m.frame++
	n := 0
	for k, e := range m.entries {
		if m.frame-e.lastUsed > m.MaxAge {
			delete(m.entries, k)
			n++
		}
	}
	if n > 0 {
		slog.Debug("surface: evicted stale widget state", "entries", n, "frame", m.frame)
	}
}
