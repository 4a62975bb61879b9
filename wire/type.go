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

package wire

import "fmt"

// Type is a TType: the closed set of on-wire type codes used by the Thrift
// Binary Protocol. These values are wire-compatible with Apache Thrift and
// must never change.
type Type int8

// The complete set of TType codes. 0 is reserved on the wire as the
// end-of-struct sentinel and is never a valid Value's Type.
const (
	TBool   Type = 2
	TI8     Type = 3
	TDouble Type = 4
	TI16    Type = 6
	TI32    Type = 8
	TI64    Type = 10
	TBinary Type = 11
	TStruct Type = 12
	TMap    Type = 13
	TSet    Type = 14
	TList   Type = 15
)

func (t Type) String() string {
	switch t {
	case TBool:
		return "TBool"
	case TI8:
		return "TI8"
	case TDouble:
		return "TDouble"
	case TI16:
		return "TI16"
	case TI32:
		return "TI32"
	case TI64:
		return "TI64"
	case TBinary:
		return "TBinary"
	case TStruct:
		return "TStruct"
	case TMap:
		return "TMap"
	case TSet:
		return "TSet"
	case TList:
		return "TList"
	default:
		return fmt.Sprintf("Type(%d)", int8(t))
	}
}
