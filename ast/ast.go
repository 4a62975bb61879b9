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

// Package ast defines the abstract syntax tree produced by parsing a Thrift
// IDL file. Nothing in this package parses ".thrift" text; it is the
// contract an external lexer/parser must satisfy so that package compile
// can build a spec tree from it.
package ast

// Program is the top-level result of parsing a single Thrift file.
type Program struct {
	Headers     []Header
	Definitions []Definition
}

// Header unifies the different things that may appear before a Program's
// definitions: includes and namespace declarations.
type Header interface {
	header()
}

// Include is a reference to another Thrift file whose definitions become
// reachable under the given name (the file's base name, sans extension,
// unless overridden).
type Include struct {
	Path string
	Name string
	Line int
}

func (*Include) header() {}

// Namespace specifies the target-language-specific namespace/package to
// use for generated code in one language.
type Namespace struct {
	Language string
	Name     string
	Line     int
}

func (*Namespace) header() {}

// Annotation is a Thrift type/field annotation, e.g. (go.type = "int64").
type Annotation struct {
	Name  string
	Value string
	Line  int
}
