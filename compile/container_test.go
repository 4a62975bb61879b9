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

package compile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/thriftrw/compile/dynamic"
	"go.uber.org/thriftrw/wire"
)

func TestListRoundTrip(t *testing.T) {
	spec := &ListTypeSpec{Elem: StringSpec}
	in := []interface{}{"a", "b", "c"}

	wv, err := spec.ToWire(in)
	require.NoError(t, err)

	out, err := spec.FromWire(wv)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSetDedupesByHostEquality(t *testing.T) {
	spec := &SetTypeSpec{Elem: I32Spec}

	// A wire-level set with a duplicate element, as if two peers disagreed
	// on whether a value was already present; FromWire must collapse it
	// down to the distinct host values (§4.4.2).
	wv := wire.NewValueSet(wire.Set{
		ValueType: wire.TI32,
		Items:     []wire.Value{wire.NewValueI32(1), wire.NewValueI32(2), wire.NewValueI32(1)},
	})

	out, err := spec.FromWire(wv)
	require.NoError(t, err)
	oset := out.(*dynamic.OrderedSet)
	assert.Equal(t, 2, oset.Len())
	assert.Equal(t, []interface{}{int32(1), int32(2)}, oset.Items())
}

func TestMapRoundTrip(t *testing.T) {
	spec := &MapTypeSpec{Key: StringSpec, Value: I32Spec}
	m := dynamic.NewOrderedMap()
	m.Append("a", int32(1))
	m.Append("b", int32(2))

	wv, err := spec.ToWire(m)
	require.NoError(t, err)

	out, err := spec.FromWire(wv)
	require.NoError(t, err)
	om := out.(*dynamic.OrderedMap)
	require.Equal(t, 2, om.Len())
	assert.Equal(t, dynamic.MapEntry{Key: "a", Value: int32(1)}, om.Entries()[0])
}

func TestListOfStringsEncodeExample(t *testing.T) {
	// §8: list<string>{"Hi"} encodes as element type 0x0B, size 1, then
	// the string itself ("Hi" -> length 2, "Hi").
	spec := &ListTypeSpec{Elem: StringSpec}
	wv, err := spec.ToWire([]interface{}{"Hi"})
	require.NoError(t, err)

	wlist := wv.GetList()
	assert.EqualValues(t, 11, wlist.ValueType) // TBinary
	require.Len(t, wlist.Items, 1)
	assert.Equal(t, "Hi", wlist.Items[0].GetString())
}
