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
	"go.uber.org/thriftrw/wire"
)

// PrimitiveMode controls how an EnumTypeSpec renders in ToPrimitive/
// FromPrimitive: as its integer value (the default) or its canonical name,
// per the "go.primitive" annotation (§9 open question (b), resolved in
// SPEC_FULL §5 item 5).
type PrimitiveMode int

const (
	// EnumAsInteger renders the enum's integer value. Default.
	EnumAsInteger PrimitiveMode = iota
	// EnumAsName renders the canonical name (first-declared name for a
	// duplicated value).
	EnumAsName
)

// EnumItem is a single name/value pair inside an EnumTypeSpec.
type EnumItem struct {
	Name  string
	Value int32
}

// EnumTypeSpec is a named set of int32-valued items (§4.4.3). Its wire
// representation is always I32.
type EnumTypeSpec struct {
	Name  string
	Items []EnumItem
	Mode  PrimitiveMode

	byName  map[string]int32
	byValue map[int32][]string
}

func (e *EnumTypeSpec) TypeName() string { return e.Name }
func (e *EnumTypeSpec) TType() wire.Type { return wire.TI32 }

// Link builds the forward (name->value) and reverse (value->names) indexes.
// EnumTypeSpec has no child references to resolve, so linking is a
// one-shot indexing pass rather than a cycle-guarded recursion.
func (e *EnumTypeSpec) Link(*Scope) (TypeSpec, error) {
	if e.byName != nil {
		return e, nil
	}
	e.byName = make(map[string]int32, len(e.Items))
	e.byValue = make(map[int32][]string, len(e.Items))
	for _, item := range e.Items {
		e.byName[item.Name] = item.Value
		e.byValue[item.Value] = append(e.byValue[item.Value], item.Name)
	}
	return e, nil
}

// NameOf returns the canonical (first-declared) name for v, if any item of
// the enum carries that value.
func (e *EnumTypeSpec) NameOf(v int32) (string, bool) {
	names := e.byValue[v]
	if len(names) == 0 {
		return "", false
	}
	return names[0], true
}

// ValueOf returns the value associated with name, if declared.
func (e *EnumTypeSpec) ValueOf(name string) (int32, bool) {
	v, ok := e.byName[name]
	return v, ok
}

func (e *EnumTypeSpec) Validate(v interface{}) error {
	n, err := asInt64(v, e.Name)
	if err != nil {
		return err
	}
	return checkRange(e.Name, n, 32)
}

func (e *EnumTypeSpec) ToWire(v interface{}) (wire.Value, error) {
	if err := e.Validate(v); err != nil {
		return wire.Value{}, err
	}
	n, _ := asInt64(v, e.Name)
	return wire.NewValueI32(int32(n)), nil
}

func (e *EnumTypeSpec) FromWire(v wire.Value) (interface{}, error) {
	if v.Type() != wire.TI32 {
		return nil, &TypeMismatch{Spec: e.Name, Value: v}
	}
	return v.GetI32(), nil
}

func (e *EnumTypeSpec) ToPrimitive(v interface{}) (interface{}, error) {
	n, err := asInt64(v, e.Name)
	if err != nil {
		return nil, err
	}
	if e.Mode == EnumAsName {
		if name, ok := e.NameOf(int32(n)); ok {
			return name, nil
		}
	}
	return int32(n), nil
}

func (e *EnumTypeSpec) FromPrimitive(p interface{}) (interface{}, error) {
	if name, ok := p.(string); ok {
		v, ok := e.ValueOf(name)
		if !ok {
			return nil, &TypeMismatch{Spec: e.Name, Value: p}
		}
		return v, nil
	}
	n, err := asInt64(p, e.Name)
	if err != nil {
		return nil, err
	}
	return int32(n), nil
}
