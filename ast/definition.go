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

// Definition unifies the different things that may be declared at the top
// level of a Thrift file.
type Definition interface {
	DefinitionName() string
	DefinitionLine() int
	definition()
}

// ConstantValue is whatever a "const" statement's literal parsed to: a
// bool, string, int64, float64, []ConstantValue (list/set literal), or
// map[ConstantValue]ConstantValue (map literal, including the string-keyed
// maps used to initialize struct/union-typed constants).
type ConstantValue interface{}

// Const is a constant declared with a "const" statement.
//
//	const i32 foo = 42
type Const struct {
	Name  string
	Type  Type
	Value ConstantValue
	Line  int
}

func (c *Const) definition()            {}
func (c *Const) DefinitionName() string { return c.Name }
func (c *Const) DefinitionLine() int    { return c.Line }

// Typedef defines an alias for another type.
//
//	typedef string UUID
type Typedef struct {
	Name        string
	Type        Type
	Annotations []*Annotation
	Line        int
}

func (t *Typedef) definition()            {}
func (t *Typedef) DefinitionName() string { return t.Name }
func (t *Typedef) DefinitionLine() int    { return t.Line }

// Enum is a set of named integer values.
//
//	enum Status { Queued, Running, Done }
type Enum struct {
	Name        string
	Items       []*EnumItem
	Annotations []*Annotation
	Line        int
}

func (e *Enum) definition()            {}
func (e *Enum) DefinitionName() string { return e.Name }
func (e *Enum) DefinitionLine() int    { return e.Line }

// EnumItem is a single name/value pair inside an Enum.
type EnumItem struct {
	Name string
	// Value is nil if the IDL did not specify one explicitly.
	Value       *int
	Annotations []*Annotation
	Line        int
}

// StructureType distinguishes the three struct-shaped declarations Thrift
// supports. They share an identical AST and spec-tree shape.
type StructureType int

// The kinds of struct-like declarations.
const (
	StructType StructureType = iota + 1
	UnionType
	ExceptionType
)

// Struct is a collection of named, numbered fields. It models struct,
// union, and exception declarations alike; Type tells them apart.
//
//	struct User {
//		1: required string name
//		2: optional Status status = Queued
//	}
type Struct struct {
	Name        string
	Type        StructureType
	Fields      []*Field
	Annotations []*Annotation
	Line        int
}

func (s *Struct) definition()            {}
func (s *Struct) DefinitionName() string { return s.Name }
func (s *Struct) DefinitionLine() int    { return s.Line }

// Requiredness records whether a field was explicitly marked required or
// optional, or left unspecified.
type Requiredness int

// The requiredness levels a field may carry.
const (
	Unspecified Requiredness = iota
	Required
	Optional
)

// Field is a single field inside a Struct, or a single parameter or
// exception entry in a Function.
//
//	1: required i32 foo = 0
type Field struct {
	ID           int
	Name         string
	Type         Type
	Requiredness Requiredness
	Default      ConstantValue
	Annotations  []*Annotation
	Line         int
}

// ServiceReference names a service this one inherits from.
type ServiceReference struct {
	Name string
	Line int
}

// Function is a single function inside a Service.
//
//	binary getValue(1: string key) throws (1: KeyNotFoundError notFound)
type Function struct {
	Name        string
	Parameters  []*Field
	ReturnType  Type // nil for void
	Exceptions  []*Field
	OneWay      bool
	Annotations []*Annotation
	Line        int
}

// Service is a named collection of functions, optionally inheriting from
// another service.
//
//	service KeyValue {
//		void setValue(1: string key, 2: binary value)
//		binary getValue(1: string key)
//	}
type Service struct {
	Name        string
	Functions   []*Function
	Parent      *ServiceReference
	Annotations []*Annotation
	Line        int
}

func (s *Service) definition()            {}
func (s *Service) DefinitionName() string { return s.Name }
func (s *Service) DefinitionLine() int    { return s.Line }
