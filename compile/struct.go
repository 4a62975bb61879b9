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
	"fmt"

	"go.uber.org/atomic"

	"go.uber.org/thriftrw/compile/dynamic"
	"go.uber.org/thriftrw/protocol/binary"
	"go.uber.org/thriftrw/wire"
)

// StructKind distinguishes the three struct-shaped declarations Thrift
// supports. They share an identical wire shape and linking algorithm;
// only validation (union cardinality) and surface intent (exception ==
// error-like) differ.
type StructKind int

// The kinds of struct-like specs.
const (
	PlainStruct StructKind = iota
	UnionStruct
	ExceptionStruct
)

// FieldSpec describes one field of a StructTypeSpec (§3.3).
type FieldSpec struct {
	ID       int16
	Name     string
	Spec     TypeSpec
	Required bool
	Default  interface{} // nil if the field has no default

	// HasDefault records whether the IDL gave this field a default
	// literal, independent of whether Default has been resolved yet:
	// Compile fills in Default only after every type is linked, but the
	// union-field-may-not-have-a-default check (§6.1) runs during Link,
	// before that happens.
	HasDefault bool
}

// StructTypeSpec is the spec for a struct, union, or exception declaration
// (§4.4.4/§4.4.5). UnionTypeSpec and ExceptionTypeSpec are not distinct Go
// types: Kind tells them apart, exactly as ast.Struct's StructureType does
// for the AST these specs are compiled from.
type StructTypeSpec struct {
	Name       string
	Kind       StructKind
	Fields     []*FieldSpec
	AllowEmpty bool // only meaningful when Kind == UnionStruct

	linked atomic.Bool
	index  map[int16]*FieldSpec
}

func (s *StructTypeSpec) TypeName() string { return s.Name }
func (s *StructTypeSpec) TType() wire.Type { return wire.TStruct }

// IsException reports whether this spec's generated surface should be
// error-like.
func (s *StructTypeSpec) IsException() bool { return s.Kind == ExceptionStruct }

// FieldFor returns the FieldSpec with the given ID, the O(1) index §3.3
// asks every struct spec to maintain.
func (s *StructTypeSpec) FieldFor(id int16) (*FieldSpec, bool) {
	f, ok := s.index[id]
	return f, ok
}

// Link resolves every field's TypeSpec. The "linked" flag is set before
// recursing so a cyclic type graph (Tree -> Leaf|Branch -> Tree) terminates:
// a struct re-entered while already linking returns itself immediately,
// yielding the partially-linked object its own fields will still finish
// populating as the outer call unwinds.
func (s *StructTypeSpec) Link(scope *Scope) (TypeSpec, error) {
	if s.linked.Swap(true) {
		return s, nil
	}
	seen := make(map[int16]bool, len(s.Fields))
	names := make(map[string]bool, len(s.Fields))
	s.index = make(map[int16]*FieldSpec, len(s.Fields))
	for _, f := range s.Fields {
		if seen[f.ID] {
			return nil, newCompileError(0, "%s: duplicate field id %d", s.Name, f.ID)
		}
		if names[f.Name] {
			return nil, newCompileError(0, "%s: duplicate field name %q", s.Name, f.Name)
		}
		seen[f.ID] = true
		names[f.Name] = true

		linked, err := f.Spec.Link(scope)
		if err != nil {
			return nil, err
		}
		f.Spec = linked
		s.index[f.ID] = f

		if s.Kind == UnionStruct && f.Required {
			return nil, newCompileError(0, "%s.%s: union fields may not be required", s.Name, f.Name)
		}
		if s.Kind == UnionStruct && f.HasDefault {
			return nil, newCompileError(0, "%s.%s: union fields may not have a default", s.Name, f.Name)
		}
	}
	return s, nil
}

// Validate checks field presence/absence and per-field validity, enforcing
// union cardinality and required-field presence.
func (s *StructTypeSpec) Validate(v interface{}) error {
	inst, ok := v.(*dynamic.Instance)
	if !ok {
		return &TypeMismatch{Spec: s.Name, Value: v}
	}
	present := 0
	for _, f := range s.Fields {
		fv, ok := inst.Get(f.Name)
		if !ok {
			if f.Required {
				return &MissingRequired{Struct: s.Name, Field: f.Name}
			}
			continue
		}
		present++
		if err := f.Spec.Validate(fv); err != nil {
			return err
		}
	}
	if s.Kind == UnionStruct {
		if present > 1 || (present == 0 && !s.AllowEmpty) {
			return &TypeMismatch{Spec: s.Name, Value: v}
		}
	}
	return nil
}

func (s *StructTypeSpec) ToWire(v interface{}) (wire.Value, error) {
	if err := s.Validate(v); err != nil {
		return wire.Value{}, err
	}
	inst := v.(*dynamic.Instance)
	var fields []wire.Field
	for _, f := range s.Fields {
		fv, ok := inst.Get(f.Name)
		if !ok {
			continue
		}
		wv, err := f.Spec.ToWire(fv)
		if err != nil {
			return wire.Value{}, err
		}
		fields = append(fields, wire.Field{ID: f.ID, Value: wv})
	}
	return wire.NewValueStruct(wire.Struct{Fields: fields}), nil
}

// FromWire reads every wire field, dispatching by id through the O(1)
// index; a field absent from the spec, or present with a mismatched
// ttype, is silently skipped per §9 open question (a) — the caller already
// has the raw wire.Value skipped over, so nothing is lost, just ignored.
func (s *StructTypeSpec) FromWire(v wire.Value) (interface{}, error) {
	if v.Type() != wire.TStruct {
		return nil, &TypeMismatch{Spec: s.Name, Value: v}
	}
	inst := dynamic.NewInstance(s.Name)
	for _, wf := range v.GetStruct().Fields {
		f, ok := s.index[wf.ID]
		if !ok || f.Spec.TType() != wf.Value.Type() {
			continue
		}
		fv, err := f.Spec.FromWire(wf.Value)
		if err != nil {
			return nil, err
		}
		inst.Set(f.Name, fv)
	}
	for _, f := range s.Fields {
		if _, ok := inst.Get(f.Name); !ok && f.Default != nil {
			inst.Set(f.Name, f.Default)
		}
	}
	if err := s.Validate(inst); err != nil {
		return nil, err
	}
	return inst, nil
}

// FromWireResult decodes v as function FunctionSpec's result union. It
// differs from FromWire in exactly one way (§4.4.5): a field id that is
// neither 0 (success) nor a declared exception raises UnknownExceptionError
// instead of being silently skipped, since an unrecognized field here means
// the peer returned something this result spec cannot represent. Field id 0
// itself is still skipped when absent from the spec, matching a void
// function whose result gains a return value on a future widening.
func (s *StructTypeSpec) FromWireResult(v wire.Value, function string) (interface{}, error) {
	if v.Type() != wire.TStruct {
		return nil, &TypeMismatch{Spec: s.Name, Value: v}
	}
	inst := dynamic.NewInstance(s.Name)
	for _, wf := range v.GetStruct().Fields {
		f, ok := s.index[wf.ID]
		if !ok {
			if wf.ID == 0 {
				continue
			}
			return nil, &UnknownExceptionError{Function: function, FieldID: wf.ID}
		}
		if f.Spec.TType() != wf.Value.Type() {
			continue
		}
		fv, err := f.Spec.FromWire(wf.Value)
		if err != nil {
			return nil, err
		}
		inst.Set(f.Name, fv)
	}
	if err := s.Validate(inst); err != nil {
		return nil, err
	}
	return inst, nil
}

// FromReader decodes a struct directly from r instead of from an
// already-materialized wire.Value. A field id absent from the spec, or
// present with a mismatched ttype, is discarded with r.Skip — the reader
// never builds a wire.Value for bytes nothing will use, unlike FromWire,
// which is handed a tree that has already paid that cost.
func (s *StructTypeSpec) FromReader(r *binary.Reader) (interface{}, error) {
	inst := dynamic.NewInstance(s.Name)
	for {
		h, isEnd, err := r.ReadFieldBegin()
		if err != nil {
			return nil, err
		}
		if isEnd {
			break
		}
		f, ok := s.index[h.ID]
		if !ok || f.Spec.TType() != h.Type {
			if err := r.Skip(h.Type); err != nil {
				return nil, err
			}
			continue
		}
		fv, err := ReadValue(r, f.Spec)
		if err != nil {
			return nil, err
		}
		inst.Set(f.Name, fv)
		if err := r.ReadFieldEnd(); err != nil {
			return nil, err
		}
	}
	for _, f := range s.Fields {
		if _, ok := inst.Get(f.Name); !ok && f.Default != nil {
			inst.Set(f.Name, f.Default)
		}
	}
	if err := s.Validate(inst); err != nil {
		return nil, err
	}
	return inst, nil
}

// FromReaderResult is FromReader's counterpart for a function's result
// union: an id neither 0 nor a declared exception raises
// UnknownExceptionError instead of being skipped, mirroring FromWireResult.
func (s *StructTypeSpec) FromReaderResult(r *binary.Reader, function string) (interface{}, error) {
	inst := dynamic.NewInstance(s.Name)
	for {
		h, isEnd, err := r.ReadFieldBegin()
		if err != nil {
			return nil, err
		}
		if isEnd {
			break
		}
		f, ok := s.index[h.ID]
		if !ok {
			if h.ID != 0 {
				return nil, &UnknownExceptionError{Function: function, FieldID: h.ID}
			}
			if err := r.Skip(h.Type); err != nil {
				return nil, err
			}
			continue
		}
		if f.Spec.TType() != h.Type {
			if err := r.Skip(h.Type); err != nil {
				return nil, err
			}
			continue
		}
		fv, err := ReadValue(r, f.Spec)
		if err != nil {
			return nil, err
		}
		inst.Set(f.Name, fv)
		if err := r.ReadFieldEnd(); err != nil {
			return nil, err
		}
	}
	if err := s.Validate(inst); err != nil {
		return nil, err
	}
	return inst, nil
}

// ToWriter is FromReader's write-side counterpart: it emits v's field
// headers itself and defers each field's value to WriteValue, rather than
// building a wire.Value tree first and handing it to a generic Writer.Write.
func (s *StructTypeSpec) ToWriter(w *binary.Writer, v interface{}) error {
	if err := s.Validate(v); err != nil {
		return err
	}
	inst := v.(*dynamic.Instance)
	for _, f := range s.Fields {
		fv, ok := inst.Get(f.Name)
		if !ok {
			continue
		}
		if err := w.WriteFieldBegin(binary.FieldHeader{Type: f.Spec.TType(), ID: f.ID}); err != nil {
			return err
		}
		if err := WriteValue(w, f.Spec, fv); err != nil {
			return err
		}
		if err := w.WriteFieldEnd(); err != nil {
			return err
		}
	}
	return w.WriteStructEnd()
}

func (s *StructTypeSpec) ToPrimitive(v interface{}) (interface{}, error) {
	inst, ok := v.(*dynamic.Instance)
	if !ok {
		return nil, &TypeMismatch{Spec: s.Name, Value: v}
	}
	out := make(map[string]interface{})
	for _, f := range s.Fields {
		fv, ok := inst.Get(f.Name)
		if !ok {
			continue
		}
		p, err := f.Spec.ToPrimitive(fv)
		if err != nil {
			return nil, err
		}
		out[f.Name] = p
	}
	return out, nil
}

func (s *StructTypeSpec) FromPrimitive(p interface{}) (interface{}, error) {
	in, ok := p.(map[string]interface{})
	if !ok {
		return nil, &TypeMismatch{Spec: s.Name, Value: p}
	}
	inst := dynamic.NewInstance(s.Name)
	for _, f := range s.Fields {
		raw, ok := in[f.Name]
		if !ok {
			if f.Default != nil {
				inst.Set(f.Name, f.Default)
			}
			continue
		}
		fv, err := f.Spec.FromPrimitive(raw)
		if err != nil {
			return nil, err
		}
		inst.Set(f.Name, fv)
	}
	if err := s.Validate(inst); err != nil {
		return nil, err
	}
	return inst, nil
}

func (s *StructTypeSpec) String() string {
	return fmt.Sprintf("StructTypeSpec(%s)", s.Name)
}
