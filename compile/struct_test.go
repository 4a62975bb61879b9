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
	"go.uber.org/thriftrw/protocol/binary"
	"go.uber.org/thriftrw/wire"
)

func linkStruct(t *testing.T, s *StructTypeSpec) *StructTypeSpec {
	t.Helper()
	linked, err := s.Link(NewScope(""))
	require.NoError(t, err)
	return linked.(*StructTypeSpec)
}

func TestStructEncodeExample(t *testing.T) {
	// §8: a one-field struct {1: required string greeting = "Hi"} encodes
	// as 0B 00 01 00 00 00 02 48 69 00.
	s := linkStruct(t, &StructTypeSpec{
		Name: "Greeting",
		Kind: PlainStruct,
		Fields: []*FieldSpec{
			{ID: 1, Name: "greeting", Spec: StringSpec, Required: true},
		},
	})

	inst := dynamic.NewInstance("Greeting")
	inst.Set("greeting", "Hi")

	wv, err := s.ToWire(inst)
	require.NoError(t, err)

	require.Len(t, wv.GetStruct().Fields, 1)
	f := wv.GetStruct().Fields[0]
	assert.EqualValues(t, 1, f.ID)
	assert.Equal(t, wire.TBinary, f.Value.Type())
	assert.Equal(t, "Hi", f.Value.GetString())
}

func TestStructMissingRequiredField(t *testing.T) {
	s := linkStruct(t, &StructTypeSpec{
		Name:   "Greeting",
		Kind:   PlainStruct,
		Fields: []*FieldSpec{{ID: 1, Name: "greeting", Spec: StringSpec, Required: true}},
	})

	_, err := s.ToWire(dynamic.NewInstance("Greeting"))
	require.Error(t, err)
	assert.IsType(t, &MissingRequired{}, err)
}

func TestStructSkipsUnknownFieldsOnRead(t *testing.T) {
	s := linkStruct(t, &StructTypeSpec{
		Name:   "Greeting",
		Kind:   PlainStruct,
		Fields: []*FieldSpec{{ID: 1, Name: "greeting", Spec: StringSpec}},
	})

	wv := wire.NewValueStruct(wire.Struct{Fields: []wire.Field{
		{ID: 1, Value: wire.NewValueString("Hi")},
		{ID: 99, Value: wire.NewValueI32(42)}, // unknown to this spec
	}})

	out, err := s.FromWire(wv)
	require.NoError(t, err)
	inst := out.(*dynamic.Instance)
	assert.Equal(t, 1, inst.Len())
	v, _ := inst.Get("greeting")
	assert.Equal(t, "Hi", v)
}

// TestFromReaderSkipsUnknownFieldsAtTheWireLevel is the §8 skip-equivalence
// property exercised against FromReader directly: the extra field (id 99, a
// nested struct no less) is never materialized into a wire.Value, only
// skipped over via Reader.Skip, yet the decoded host value matches reading
// the minimal image.
func TestFromReaderSkipsUnknownFieldsAtTheWireLevel(t *testing.T) {
	s := linkStruct(t, &StructTypeSpec{
		Name:   "Greeting",
		Kind:   PlainStruct,
		Fields: []*FieldSpec{{ID: 1, Name: "greeting", Spec: StringSpec}},
	})

	w := binary.NewWriter(0)
	require.NoError(t, w.WriteFieldBegin(binary.FieldHeader{Type: wire.TBinary, ID: 1}))
	require.NoError(t, w.WriteBinary([]byte("Hi")))
	require.NoError(t, w.WriteFieldBegin(binary.FieldHeader{Type: wire.TStruct, ID: 99}))
	require.NoError(t, w.WriteFieldBegin(binary.FieldHeader{Type: wire.TI32, ID: 1}))
	require.NoError(t, w.WriteI32(1))
	require.NoError(t, w.WriteStructEnd()) // ends the nested id-99 struct
	require.NoError(t, w.WriteStructEnd()) // ends the outer struct

	out, err := s.FromReader(binary.NewReader(w.Bytes()))
	require.NoError(t, err)
	inst := out.(*dynamic.Instance)
	assert.Equal(t, 1, inst.Len())
	v, _ := inst.Get("greeting")
	assert.Equal(t, "Hi", v)

	minimal := binary.NewWriter(0)
	require.NoError(t, minimal.WriteFieldBegin(binary.FieldHeader{Type: wire.TBinary, ID: 1}))
	require.NoError(t, minimal.WriteBinary([]byte("Hi")))
	require.NoError(t, minimal.WriteStructEnd())
	want, err := s.FromReader(binary.NewReader(minimal.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, want, out)
}

func TestToWriterThenFromReaderRoundTrips(t *testing.T) {
	s := linkStruct(t, &StructTypeSpec{
		Name: "Greeting",
		Kind: PlainStruct,
		Fields: []*FieldSpec{
			{ID: 1, Name: "greeting", Spec: StringSpec, Required: true},
		},
	})

	inst := dynamic.NewInstance("Greeting")
	inst.Set("greeting", "Hi")

	w := binary.NewWriter(0)
	require.NoError(t, s.ToWriter(w, inst))
	assert.Equal(t, []byte{0x0B, 0x00, 0x01, 0x00, 0x00, 0x00, 0x02, 0x48, 0x69, 0x00}, w.Bytes())

	out, err := s.FromReader(binary.NewReader(w.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, inst, out)
}

func TestUnionCardinality(t *testing.T) {
	u := linkStruct(t, &StructTypeSpec{
		Name: "Either",
		Kind: UnionStruct,
		Fields: []*FieldSpec{
			{ID: 1, Name: "left", Spec: StringSpec},
			{ID: 2, Name: "right", Spec: I32Spec},
		},
	})

	zero := dynamic.NewInstance("Either")
	require.Error(t, u.Validate(zero))

	one := dynamic.NewInstance("Either")
	one.Set("left", "x")
	require.NoError(t, u.Validate(one))

	two := dynamic.NewInstance("Either")
	two.Set("left", "x")
	two.Set("right", int64(1))
	require.Error(t, u.Validate(two))
}

func TestUnionAllowEmpty(t *testing.T) {
	u := linkStruct(t, &StructTypeSpec{
		Name:       "VoidResult",
		Kind:       UnionStruct,
		AllowEmpty: true,
		Fields:     []*FieldSpec{{ID: 1, Name: "failure", Spec: StringSpec}},
	})
	require.NoError(t, u.Validate(dynamic.NewInstance("VoidResult")))
}

func TestUnionRejectsRequiredField(t *testing.T) {
	u := &StructTypeSpec{
		Name:   "Either",
		Kind:   UnionStruct,
		Fields: []*FieldSpec{{ID: 1, Name: "left", Spec: StringSpec, Required: true}},
	}
	_, err := u.Link(NewScope(""))
	require.Error(t, err)
}

func TestUnionRejectsFieldWithDefault(t *testing.T) {
	u := &StructTypeSpec{
		Name:   "Either",
		Kind:   UnionStruct,
		Fields: []*FieldSpec{{ID: 1, Name: "left", Spec: StringSpec, HasDefault: true}},
	}
	_, err := u.Link(NewScope(""))
	require.Error(t, err)
}

func TestFromWireResultRaisesUnknownException(t *testing.T) {
	result := linkStruct(t, &StructTypeSpec{
		Name:       "Svc_fn_response",
		Kind:       UnionStruct,
		AllowEmpty: false,
		Fields: []*FieldSpec{
			{ID: 0, Name: "success", Spec: StringSpec},
			{ID: 1, Name: "notFound", Spec: StringSpec},
		},
	})

	wv := wire.NewValueStruct(wire.Struct{Fields: []wire.Field{
		{ID: 7, Value: wire.NewValueString("boom")}, // not success, not a declared exception
	}})

	_, err := result.FromWireResult(wv, "Svc::fn")
	require.Error(t, err)
	assert.IsType(t, &UnknownExceptionError{}, err)
}

func TestFromWireResultSkipsUnknownSuccessOnVoidFunction(t *testing.T) {
	// A void function's result spec declares no id-0 field; a peer that
	// widened the return type later should not break an older caller.
	result := linkStruct(t, &StructTypeSpec{
		Name:       "Svc_fn_response",
		Kind:       UnionStruct,
		AllowEmpty: true,
	})

	wv := wire.NewValueStruct(wire.Struct{Fields: []wire.Field{
		{ID: 0, Value: wire.NewValueString("newly added")},
	}})

	out, err := result.FromWireResult(wv, "Svc::fn")
	require.NoError(t, err)
	inst := out.(*dynamic.Instance)
	assert.Equal(t, 0, inst.Len())
}

func TestStructDuplicateFieldIDRejected(t *testing.T) {
	s := &StructTypeSpec{
		Name: "Bad",
		Kind: PlainStruct,
		Fields: []*FieldSpec{
			{ID: 1, Name: "a", Spec: StringSpec},
			{ID: 1, Name: "b", Spec: StringSpec},
		},
	}
	_, err := s.Link(NewScope(""))
	require.Error(t, err)
}

func TestCyclicStructGraphLinksWithoutInfiniteRecursion(t *testing.T) {
	// Tree -> Leaf|Branch -> Tree (§8 cycle termination property).
	tree := &StructTypeSpec{Name: "Tree", Kind: UnionStruct}
	branch := &StructTypeSpec{
		Name: "Branch",
		Kind: PlainStruct,
		Fields: []*FieldSpec{
			{ID: 1, Name: "left", Spec: &TypeReference{Name: "Tree"}},
			{ID: 2, Name: "right", Spec: &TypeReference{Name: "Tree"}},
		},
	}
	tree.Fields = []*FieldSpec{
		{ID: 1, Name: "leaf", Spec: I32Spec},
		{ID: 2, Name: "branch", Spec: &TypeReference{Name: "Branch"}},
	}

	scope := NewScope("")
	scope.AddType("Tree", tree)
	scope.AddType("Branch", branch)

	linkedTree, err := tree.Link(scope)
	require.NoError(t, err)
	linkedBranch, err := branch.Link(scope)
	require.NoError(t, err)

	assert.Same(t, tree, linkedTree)
	assert.Same(t, branch, linkedBranch)

	// Branch's children must have actually resolved to linked specs, not
	// raw TypeReferences, regardless of which struct was linked first.
	leftField, ok := linkedBranch.(*StructTypeSpec).FieldFor(1)
	require.True(t, ok)
	assert.IsType(t, &StructTypeSpec{}, leftField.Spec)
}
