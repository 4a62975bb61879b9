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

// Package compile builds the typed intermediate representation (the spec
// tree) of a Thrift program from its AST, resolves named references via a
// Scope, and implements the value<->host bridge: validation, wire encoding,
// and JSON-ish primitive conversion for every TypeSpec variant.
package compile

import (
	"fmt"
	"math"
	"unicode/utf8"

	"go.uber.org/thriftrw/protocol/binary"
	"go.uber.org/thriftrw/wire"
)

// TypeSpec is the typed, linked representation of a Thrift type: a
// primitive, a parameterized container, or a named user declaration.
//
// ReadValue/WriteValue round-trip a host value through a Reader/Writer by
// going through ToWire/FromWire. StructTypeSpec additionally exposes
// FromReader/FromReaderResult/ToWriter, which decode or encode a struct's
// known fields the same way but let an unknown or ttype-mismatched field on
// read be discarded with the Reader's own Skip instead of first being
// materialized into a wire.Value.
type TypeSpec interface {
	// TypeName is the Thrift name of the type ("string", "list<i32>",
	// "MyStruct", ...).
	TypeName() string

	// TType is the TType this spec puts on the wire.
	TType() wire.Type

	// Link resolves any TypeReference reachable from this spec and
	// returns the TypeSpec that should replace it in its parent. For
	// everything but TypedefTypeSpec and TypeReference, that is the
	// receiver itself.
	Link(scope *Scope) (TypeSpec, error)

	// Validate reports whether v is an acceptable host value for this
	// spec.
	Validate(v interface{}) error

	// ToWire converts a host value to its wire.Value representation.
	ToWire(v interface{}) (wire.Value, error)

	// FromWire converts a decoded wire.Value back to a host value.
	FromWire(v wire.Value) (interface{}, error)

	// ToPrimitive converts a host value to its JSON-compatible form
	// (§6.3).
	ToPrimitive(v interface{}) (interface{}, error)

	// FromPrimitive is the inverse of ToPrimitive.
	FromPrimitive(p interface{}) (interface{}, error)
}

// WriteValue serializes v according to spec onto w.
func WriteValue(w *binary.Writer, spec TypeSpec, v interface{}) error {
	wv, err := spec.ToWire(v)
	if err != nil {
		return err
	}
	return w.Write(wv)
}

// ReadValue deserializes a host value of the given spec from r.
func ReadValue(r *binary.Reader, spec TypeSpec) (interface{}, error) {
	wv, err := r.Read(spec.TType())
	if err != nil {
		return nil, err
	}
	return spec.FromWire(wv)
}

func asInt64(v interface{}, spec string) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int32:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int:
		return int64(n), nil
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, &TypeMismatch{Spec: spec, Value: v}
	}
}

func checkRange(spec string, n int64, bits int) error {
	var lo, hi int64
	switch bits {
	case 8:
		lo, hi = math.MinInt8, math.MaxInt8
	case 16:
		lo, hi = math.MinInt16, math.MaxInt16
	case 32:
		lo, hi = math.MinInt32, math.MaxInt32
	case 64:
		return nil
	default:
		panic(fmt.Sprintf("compile: unsupported integer width %d", bits))
	}
	if n < lo || n > hi {
		return &OutOfRange{Spec: spec, Value: n}
	}
	return nil
}

// primitiveSpec implements every variant of §4.4.1.
type primitiveSpec struct {
	name   string
	ttype  wire.Type
	bits   int // 0 for bool/double/binary/string
	isText bool
}

func (p *primitiveSpec) TypeName() string { return p.name }
func (p *primitiveSpec) TType() wire.Type { return p.ttype }

func (p *primitiveSpec) Link(*Scope) (TypeSpec, error) { return p, nil }

func (p *primitiveSpec) Validate(v interface{}) error {
	switch p.ttype {
	case wire.TBool:
		switch n := v.(type) {
		case bool:
			return nil
		case int, int8, int16, int32, int64:
			i, _ := asInt64(n, p.name)
			if i == 0 || i == 1 {
				return nil
			}
			return &TypeMismatch{Spec: p.name, Value: v}
		default:
			return &TypeMismatch{Spec: p.name, Value: v}
		}
	case wire.TDouble:
		switch v.(type) {
		case float64, float32, int, int8, int16, int32, int64:
			return nil
		default:
			return &TypeMismatch{Spec: p.name, Value: v}
		}
	case wire.TBinary:
		switch v.(type) {
		case []byte, string:
			return nil
		default:
			return &TypeMismatch{Spec: p.name, Value: v}
		}
	default:
		n, err := asInt64(v, p.name)
		if err != nil {
			return err
		}
		return checkRange(p.name, n, p.bits)
	}
}

func (p *primitiveSpec) ToWire(v interface{}) (wire.Value, error) {
	if err := p.Validate(v); err != nil {
		return wire.Value{}, err
	}
	switch p.ttype {
	case wire.TBool:
		switch n := v.(type) {
		case bool:
			return wire.NewValueBool(n), nil
		default:
			i, _ := asInt64(v, p.name)
			return wire.NewValueBool(i != 0), nil
		}
	case wire.TI8:
		n, _ := asInt64(v, p.name)
		return wire.NewValueI8(int8(n)), nil
	case wire.TI16:
		n, _ := asInt64(v, p.name)
		return wire.NewValueI16(int16(n)), nil
	case wire.TI32:
		n, _ := asInt64(v, p.name)
		return wire.NewValueI32(int32(n)), nil
	case wire.TI64:
		n, _ := asInt64(v, p.name)
		return wire.NewValueI64(n), nil
	case wire.TDouble:
		switch n := v.(type) {
		case float64:
			return wire.NewValueDouble(n), nil
		case float32:
			return wire.NewValueDouble(float64(n)), nil
		default:
			i, _ := asInt64(v, p.name)
			return wire.NewValueDouble(float64(i)), nil
		}
	case wire.TBinary:
		switch n := v.(type) {
		case []byte:
			return wire.NewValueBinary(n), nil
		case string:
			return wire.NewValueBinary([]byte(n)), nil
		}
	}
	return wire.Value{}, &TypeMismatch{Spec: p.name, Value: v}
}

func (p *primitiveSpec) FromWire(v wire.Value) (interface{}, error) {
	if v.Type() != p.ttype {
		return nil, &TypeMismatch{Spec: p.name, Value: v}
	}
	switch p.ttype {
	case wire.TBool:
		return v.GetBool(), nil
	case wire.TI8:
		return int8(v.GetI8()), nil
	case wire.TI16:
		return v.GetI16(), nil
	case wire.TI32:
		return v.GetI32(), nil
	case wire.TI64:
		return v.GetI64(), nil
	case wire.TDouble:
		return v.GetDouble(), nil
	case wire.TBinary:
		if p.isText {
			s := v.GetString()
			if !utf8.ValidString(s) {
				return nil, &InvalidUTF8{Spec: p.name}
			}
			return s, nil
		}
		return v.GetBinary(), nil
	}
	return nil, &TypeMismatch{Spec: p.name, Value: v}
}

// ToPrimitive returns v unchanged: every primitive host form (bool, integer,
// float64, []byte, string) is already its own JSON-compatible primitive
// form per §6.3.
func (p *primitiveSpec) ToPrimitive(v interface{}) (interface{}, error) {
	if err := p.Validate(v); err != nil {
		return nil, err
	}
	return v, nil
}

// FromPrimitive accepts any value ToWire accepts and returns it in the
// spec's canonical host form (int32 for i32, []byte for binary, and so on).
func (p *primitiveSpec) FromPrimitive(v interface{}) (interface{}, error) {
	wv, err := p.ToWire(v)
	if err != nil {
		return nil, err
	}
	return p.FromWire(wv)
}

// The eight primitive specs are singletons, registered into every Scope.
var (
	BoolSpec   TypeSpec = &primitiveSpec{name: "bool", ttype: wire.TBool}
	ByteSpec   TypeSpec = &primitiveSpec{name: "byte", ttype: wire.TI8, bits: 8}
	I16Spec    TypeSpec = &primitiveSpec{name: "i16", ttype: wire.TI16, bits: 16}
	I32Spec    TypeSpec = &primitiveSpec{name: "i32", ttype: wire.TI32, bits: 32}
	I64Spec    TypeSpec = &primitiveSpec{name: "i64", ttype: wire.TI64, bits: 64}
	DoubleSpec TypeSpec = &primitiveSpec{name: "double", ttype: wire.TDouble}
	BinarySpec TypeSpec = &primitiveSpec{name: "binary", ttype: wire.TBinary}
	StringSpec TypeSpec = &primitiveSpec{name: "string", ttype: wire.TBinary, isText: true}
)
