// Copyright (c) 2020 Uber Technologies, Inc.
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

// Package thriftrw provides a runtime Thrift IDL compiler and Thrift Binary
// Protocol codec.
//
// Given a parsed Thrift AST (package ast), Compile builds a linked spec tree
// (package compile) describing every type, constant, and service declared in
// the IDL. The spec tree knows how to validate, construct, and serialize
// values of its own types; this package exposes that as Dumps and Loads,
// which move values between the Go host representation and the Thrift
// Binary Protocol wire format (package protocol/binary), with optional
// strict-envelope message framing for request/response/exception dispatch.
//
// 	scope, err := compile.Compile(program)
// 	spec, ok := scope.LookupType("MyStruct")
// 	bytes, err := thriftrw.Dumps(spec, value)
// 	value, err := thriftrw.Loads(spec, bytes)
//
// This package does not parse Thrift IDL text into an AST, resolve
// "include" paths across files, or generate Go source from a spec tree.
// Those are the responsibility of an external parser/loader/codegen, and
// the ast package is exactly the contract such a tool produces.
package thriftrw
