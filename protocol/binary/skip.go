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

import "go.uber.org/thriftrw/wire"

// maxSkipDepth bounds the recursion of Skip against maliciously or
// accidentally deeply-nested wire data.
const maxSkipDepth = 64

// errSkipDepthExceeded is returned when a value is nested deeper than
// maxSkipDepth allows.
type errSkipDepthExceeded struct{}

func (errSkipDepthExceeded) Error() string {
	return "thrift protocol error: skip recursion depth exceeded"
}

// Skip discards a value of the given TType using the protocol's own
// structure, without ever materializing a wire.Value. It is how a struct
// reader ignores a field present on the wire but absent from its spec.
func (r *Reader) Skip(t wire.Type) error {
	return r.skip(t, maxSkipDepth)
}

func (r *Reader) skip(t wire.Type, depth int) error {
	if depth <= 0 {
		return errSkipDepthExceeded{}
	}
	switch t {
	case wire.TBool, wire.TI8:
		return r.buf.Skip(1)
	case wire.TI16:
		return r.buf.Skip(2)
	case wire.TI32:
		return r.buf.Skip(4)
	case wire.TI64, wire.TDouble:
		return r.buf.Skip(8)
	case wire.TBinary:
		size, err := r.ReadI32()
		if err != nil {
			return err
		}
		if size < 0 {
			return &ThriftProtocolError{Reason: "negative binary length"}
		}
		return r.buf.Skip(int(size))
	case wire.TStruct:
		for {
			h, isEnd, err := r.ReadFieldBegin()
			if err != nil {
				return err
			}
			if isEnd {
				return nil
			}
			if err := r.skip(h.Type, depth-1); err != nil {
				return err
			}
		}
	case wire.TMap:
		kt, vt, size, err := r.ReadMapBegin()
		if err != nil {
			return err
		}
		for i := 0; i < size; i++ {
			if err := r.skip(kt, depth-1); err != nil {
				return err
			}
			if err := r.skip(vt, depth-1); err != nil {
				return err
			}
		}
		return nil
	case wire.TSet, wire.TList:
		et, size, err := r.ReadSetBegin()
		if err != nil {
			return err
		}
		for i := 0; i < size; i++ {
			if err := r.skip(et, depth-1); err != nil {
				return err
			}
		}
		return nil
	default:
		return &UnknownTTypeError{Type: t}
	}
}
