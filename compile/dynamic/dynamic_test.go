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

package dynamic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstanceGetSetRemove(t *testing.T) {
	inst := NewInstance("User")
	_, ok := inst.Get("name")
	assert.False(t, ok)

	inst.Set("name", "Alice")
	v, ok := inst.Get("name")
	assert.True(t, ok)
	assert.Equal(t, "Alice", v)
	assert.Equal(t, 1, inst.Len())

	inst.Set("name", nil)
	_, ok = inst.Get("name")
	assert.False(t, ok)
	assert.Equal(t, 0, inst.Len())
}

func TestOrderedSetDedupesAndPreservesOrder(t *testing.T) {
	s := NewOrderedSet()
	assert.True(t, s.Add("a"))
	assert.True(t, s.Add("b"))
	assert.False(t, s.Add("a"))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []interface{}{"a", "b"}, s.Items())
}

func TestOrderedSetDedupesByteSliceElementsWithoutPanicking(t *testing.T) {
	s := NewOrderedSet()
	assert.True(t, s.Add([]byte("a")))
	assert.True(t, s.Add([]byte("b")))
	assert.False(t, s.Add([]byte("a"))) // same contents, not the same slice header
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []interface{}{[]byte("a"), []byte("b")}, s.Items())
}

func TestOrderedMapPreservesInsertionOrderWithoutDedup(t *testing.T) {
	m := NewOrderedMap()
	m.Append("k1", 1)
	m.Append("k2", 2)
	m.Append("k1", 3) // duplicate key, not deduplicated: host keys may not be comparable
	assert.Equal(t, 3, m.Len())
	entries := m.Entries()
	assert.Equal(t, MapEntry{Key: "k1", Value: 1}, entries[0])
	assert.Equal(t, MapEntry{Key: "k2", Value: 2}, entries[1])
	assert.Equal(t, MapEntry{Key: "k1", Value: 3}, entries[2])
}
