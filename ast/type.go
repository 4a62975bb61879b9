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

package ast

import "fmt"

// Type unifies the different things that may appear as a field, parameter,
// or return type reference in Thrift source.
type Type interface {
	fieldType()
	fmt.Stringer
}

// BaseTypeID identifies one of the eight Thrift primitive types.
type BaseTypeID int

// The primitive types supported by Thrift.
const (
	BoolTypeID BaseTypeID = iota + 1
	ByteTypeID
	I16TypeID
	I32TypeID
	I64TypeID
	DoubleTypeID
	StringTypeID
	BinaryTypeID
)

func (id BaseTypeID) String() string {
	switch id {
	case BoolTypeID:
		return "bool"
	case ByteTypeID:
		return "byte"
	case I16TypeID:
		return "i16"
	case I32TypeID:
		return "i32"
	case I64TypeID:
		return "i64"
	case DoubleTypeID:
		return "double"
	case StringTypeID:
		return "string"
	case BinaryTypeID:
		return "binary"
	default:
		return fmt.Sprintf("BaseTypeID(%d)", int(id))
	}
}

// BaseType is a reference to a Thrift primitive type, e.g. "string".
type BaseType struct {
	ID          BaseTypeID
	Annotations []*Annotation
}

func (BaseType) fieldType()    {}
func (bt BaseType) String() string { return bt.ID.String() }

// MapType is a reference to "map<k, v>".
type MapType struct {
	KeyType, ValueType Type
	Annotations        []*Annotation
}

func (MapType) fieldType() {}
func (mt MapType) String() string {
	return fmt.Sprintf("map<%s, %s>", mt.KeyType, mt.ValueType)
}

// ListType is a reference to "list<a>".
type ListType struct {
	ValueType   Type
	Annotations []*Annotation
}

func (ListType) fieldType() {}
func (lt ListType) String() string {
	return fmt.Sprintf("list<%s>", lt.ValueType)
}

// SetType is a reference to "set<a>".
type SetType struct {
	ValueType   Type
	Annotations []*Annotation
}

func (SetType) fieldType() {}
func (st SetType) String() string {
	return fmt.Sprintf("set<%s>", st.ValueType)
}

// TypeReference is a reference to a user-defined type by name: a typedef,
// enum, struct, union, or exception declared elsewhere in the program (or
// in an included program, as "other.TypeName").
type TypeReference struct {
	Name string
	Line int
}

func (TypeReference) fieldType()      {}
func (tr TypeReference) String() string { return tr.Name }
