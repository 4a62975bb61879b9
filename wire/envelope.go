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

// EnvelopeType defines the type of message inside an Envelope.
type EnvelopeType int8

const (
	// Call represents outgoing request messages.
	Call EnvelopeType = 1
	// Reply represents response messages to a successful request.
	Reply EnvelopeType = 2
	// Exception represents response messages to an unsuccessful request.
	Exception EnvelopeType = 3
	// OneWay represents requests which have no response.
	OneWay EnvelopeType = 4
)

func (t EnvelopeType) String() string {
	switch t {
	case Call:
		return "Call"
	case Reply:
		return "Reply"
	case Exception:
		return "Exception"
	case OneWay:
		return "OneWay"
	default:
		return fmt.Sprintf("EnvelopeType(%d)", int8(t))
	}
}

// Envelope is a wrapper around a Struct value that tags it with a method
// name, a message type, and a sequence ID, as used by Thrift's RPC message
// framing.
type Envelope struct {
	Name  string
	Type  EnvelopeType
	SeqID int32
	Value Value
}
