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

import "fmt"

// CompileError reports a problem found while compiling or linking an IDL
// program: a duplicate identifier, an unresolved reference, or a malformed
// declaration (bad oneway function, union field with a default, and so on).
type CompileError struct {
	Line    int
	Message string
}

func (e *CompileError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

func newCompileError(line int, format string, args ...interface{}) *CompileError {
	return &CompileError{Line: line, Message: fmt.Sprintf(format, args...)}
}

// TypeMismatch is raised when a host value does not have the type a spec
// expects it to have, or, for a union, does not set the number of fields the
// union permits.
type TypeMismatch struct {
	Spec  string
	Value interface{}
}

func (e *TypeMismatch) Error() string {
	return fmt.Sprintf("type mismatch: %#v is not a valid value for %s", e.Value, e.Spec)
}

// OutOfRange is raised when an integer value falls outside the range its
// spec's width permits.
type OutOfRange struct {
	Spec  string
	Value int64
}

func (e *OutOfRange) Error() string {
	return fmt.Sprintf("out of range: %d does not fit in %s", e.Value, e.Spec)
}

// MissingRequired is raised when a required field is absent at construction
// or serialization time.
type MissingRequired struct {
	Struct string
	Field  string
}

func (e *MissingRequired) Error() string {
	return fmt.Sprintf("%s.%s is required but was not set", e.Struct, e.Field)
}

// InvalidUTF8 is raised when a string field's wire bytes are not valid
// UTF-8 (§4.4.1 requires string values, unlike binary, to be valid UTF-8 on
// read).
type InvalidUTF8 struct {
	Spec string
}

func (e *InvalidUTF8) Error() string {
	return fmt.Sprintf("%s: wire bytes are not valid UTF-8", e.Spec)
}

// UnknownExceptionError is raised when a deserialized function result
// contains an exception id unrecognized by the function's result spec. It
// carries the function name and the unrecognized field id; the field's value
// is not kept.
type UnknownExceptionError struct {
	Function string
	FieldID  int16
}

func (e *UnknownExceptionError) Error() string {
	return fmt.Sprintf("%s: unknown exception field id %d in response", e.Function, e.FieldID)
}
