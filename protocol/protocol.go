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

// Package protocol defines the seam between an encoding scheme (only
// Thrift Binary Protocol is implemented; compact and JSON are non-goals)
// and anything that needs to move wire.Values to and from an io.Reader or
// io.Writer, with or without a message envelope.
package protocol

import (
	"io"

	"go.uber.org/thriftrw/wire"
)

// Protocol defines a Thrift encoding. Binary is the only implementation
// provided by this module.
type Protocol interface {
	Encode(v wire.Value, w io.Writer) error
	Decode(r io.Reader, t wire.Type) (wire.Value, error)

	EncodeEnveloped(e wire.Envelope, w io.Writer) error
	DecodeEnveloped(r io.Reader) (wire.Envelope, error)
}
