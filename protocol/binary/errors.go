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

package binary

import (
	"fmt"

	"go.uber.org/thriftrw/wire"
)

// ThriftProtocolError reports a malformed envelope, an unsupported strict
// version, or any other structural violation of the Thrift Binary
// Protocol's framing.
type ThriftProtocolError struct {
	Reason string
}

func (e *ThriftProtocolError) Error() string {
	return "thrift protocol error: " + e.Reason
}

// UnsupportedVersionError is a ThriftProtocolError raised when a strict
// message envelope's version nibble is not 1.
type UnsupportedVersionError struct {
	Version int32
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("thrift protocol error: unsupported strict envelope version %#x", e.Version)
}

// UnknownTTypeError is raised when a Writer or Reader encounters a TType
// code it does not recognize.
type UnknownTTypeError struct {
	Type wire.Type
}

func (e *UnknownTTypeError) Error() string {
	return fmt.Sprintf("thrift protocol error: unknown ttype %v", e.Type)
}
