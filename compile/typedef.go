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

import "go.uber.org/thriftrw/wire"

// TypedefTypeSpec is a transparent alias for another type (§4.4.6). It has
// no wire presence of its own: Link eliminates it from the tree by
// returning its linked target directly, so nothing downstream ever holds a
// *TypedefTypeSpec after linking.
type TypedefTypeSpec struct {
	Name   string
	Target TypeSpec
}

func (t *TypedefTypeSpec) TypeName() string { return t.Name }
func (t *TypedefTypeSpec) TType() wire.Type { return t.Target.TType() }

func (t *TypedefTypeSpec) Link(scope *Scope) (TypeSpec, error) {
	return t.Target.Link(scope)
}

func (t *TypedefTypeSpec) Validate(v interface{}) error             { return t.Target.Validate(v) }
func (t *TypedefTypeSpec) ToWire(v interface{}) (wire.Value, error) { return t.Target.ToWire(v) }
func (t *TypedefTypeSpec) FromWire(v wire.Value) (interface{}, error) {
	return t.Target.FromWire(v)
}
func (t *TypedefTypeSpec) ToPrimitive(v interface{}) (interface{}, error) {
	return t.Target.ToPrimitive(v)
}
func (t *TypedefTypeSpec) FromPrimitive(p interface{}) (interface{}, error) {
	return t.Target.FromPrimitive(p)
}

// TypeReference is an unresolved reference to a named type, used only
// before linking (§4.4.7). Every other TypeSpec method panics: a
// TypeReference that survives to serialization time is a programmer bug,
// per the spec's own design note ("fail loudly").
type TypeReference struct {
	Name string
	Line int
}

func (r *TypeReference) TypeName() string { return r.Name }

func (r *TypeReference) TType() wire.Type {
	panic("compile: TypeReference " + r.Name + " was never linked")
}

// Link resolves the reference and immediately links the result: this is
// what makes cyclic type graphs (Tree -> Leaf|Branch -> Tree) safe no
// matter what order Compile's top-level loop happens to visit the scope's
// types in. Each TypeSpec variant's own "linked" flag absorbs the
// reentrancy: resolving a struct already in the middle of linking itself
// just returns it as-is.
func (r *TypeReference) Link(scope *Scope) (TypeSpec, error) {
	target, err := scope.ResolveType(r.Name, r.Line)
	if err != nil {
		return nil, err
	}
	return target.Link(scope)
}

func (r *TypeReference) Validate(interface{}) error {
	panic("compile: TypeReference " + r.Name + " was never linked")
}

func (r *TypeReference) ToWire(interface{}) (wire.Value, error) {
	panic("compile: TypeReference " + r.Name + " was never linked")
}

func (r *TypeReference) FromWire(wire.Value) (interface{}, error) {
	panic("compile: TypeReference " + r.Name + " was never linked")
}

func (r *TypeReference) ToPrimitive(interface{}) (interface{}, error) {
	panic("compile: TypeReference " + r.Name + " was never linked")
}

func (r *TypeReference) FromPrimitive(interface{}) (interface{}, error) {
	panic("compile: TypeReference " + r.Name + " was never linked")
}
