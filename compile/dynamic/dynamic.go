// Copyright (c) 2015 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package dynamic holds the generic host-value representation the compile
// package's bridge methods construct and consume when no generated,
// language-native struct/union/exception type exists for a spec. It is the
// "registered factory / arena of descriptors, not runtime class synthesis"
// approach described by the design note on dynamic construction of host
// types: every Instance carries the name of the spec that describes it, and
// no generated Go type is reflected over.
package dynamic

import "fmt"

// Instance is a generic host value for a struct, union, or exception spec:
// field values keyed by field name, with the originating spec name kept
// alongside for error messages and String().
type Instance struct {
	TypeName string
	Fields   map[string]interface{}
}

// NewInstance builds an empty Instance for the named spec.
func NewInstance(typeName string) *Instance {
	return &Instance{TypeName: typeName, Fields: make(map[string]interface{})}
}

// Get returns the named field and whether it was present.
func (i *Instance) Get(name string) (interface{}, bool) {
	v, ok := i.Fields[name]
	return v, ok
}

// Set assigns the named field. A nil value is the same as never having set
// it: both FromWire and the bridge treat an absent field as "not present",
// so Set(name, nil) removes name from Fields to keep that test exact.
func (i *Instance) Set(name string, v interface{}) {
	if v == nil {
		delete(i.Fields, name)
		return
	}
	i.Fields[name] = v
}

// Len is the number of fields present (not absent) on the instance. Used by
// union cardinality checks.
func (i *Instance) Len() int { return len(i.Fields) }

func (i *Instance) String() string {
	return fmt.Sprintf("%s%v", i.TypeName, i.Fields)
}

// OrderedSet is a Thrift set: deduplicated by host-value equality
// (comparing with `==`: primitives by value, and Instances/OrderedSets/
// OrderedMaps, which are pointers, by identity), preserving first-insertion
// order for String()/iteration. `[]byte`, the host form of `set<binary>`'s
// elements, and `[]interface{}`, the host form of a list element, are not
// themselves comparable, so they are indexed by a string form instead; see
// dedupKey.
type OrderedSet struct {
	items []interface{}
	index map[interface{}]int
}

// NewOrderedSet builds an empty OrderedSet.
func NewOrderedSet() *OrderedSet {
	return &OrderedSet{index: make(map[interface{}]int)}
}

// dedupKey returns the value used to index v in the dedup map. []byte and
// []interface{} aren't valid Go map keys, so they're converted to a string
// for this purpose only; items still stores v itself.
func dedupKey(v interface{}) interface{} {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	if l, ok := v.([]interface{}); ok {
		return fmt.Sprintf("%#v", l)
	}
	return v
}

// Add inserts v if not already present. Returns false if v was a duplicate.
func (s *OrderedSet) Add(v interface{}) bool {
	k := dedupKey(v)
	if _, ok := s.index[k]; ok {
		return false
	}
	s.index[k] = len(s.items)
	s.items = append(s.items, v)
	return true
}

// Items returns the set's elements in insertion order. Callers must not
// mutate the returned slice.
func (s *OrderedSet) Items() []interface{} { return s.items }

// Len is the number of distinct elements in the set.
func (s *OrderedSet) Len() int { return len(s.items) }

func (s *OrderedSet) String() string { return fmt.Sprintf("%v", s.items) }

// MapEntry is a single key/value pair inside an OrderedMap.
type MapEntry struct {
	Key   interface{}
	Value interface{}
}

// OrderedMap is a Thrift map: an ordered sequence of key/value pairs,
// preserving declaration/insertion order the way wire.Map does, since
// Thrift maps are not required to dedupe keys from the host side (the
// wire's key type may not be Go-comparable, e.g. a struct key).
type OrderedMap struct {
	entries []MapEntry
}

// NewOrderedMap builds an empty OrderedMap.
func NewOrderedMap() *OrderedMap {
	return &OrderedMap{}
}

// Append adds a key/value pair to the map, preserving insertion order.
func (m *OrderedMap) Append(key, value interface{}) {
	m.entries = append(m.entries, MapEntry{Key: key, Value: value})
}

// Entries returns the map's pairs in insertion order. Callers must not
// mutate the returned slice.
func (m *OrderedMap) Entries() []MapEntry { return m.entries }

// Len is the number of entries in the map.
func (m *OrderedMap) Len() int { return len(m.entries) }

func (m *OrderedMap) String() string { return fmt.Sprintf("%v", m.entries) }
