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

package thriftrw

import (
	"bytes"

	"go.uber.org/thriftrw/compile"
	"go.uber.org/thriftrw/protocol"
	"go.uber.org/thriftrw/protocol/binary"
	"go.uber.org/thriftrw/wire"
)

// Message is the result of unwrapping a Thrift message envelope: a method
// name, the kind of message it carries, its sequence id, and its body
// already decoded to spec's host representation (§6.4).
type Message struct {
	Name  string
	SeqID int32
	Type  wire.EnvelopeType
	Body  interface{}
}

// Dumps serializes value, which must be valid per spec, to Thrift Binary
// Protocol bytes. A struct/union/exception value is written field-by-field
// directly onto the Writer (StructTypeSpec.ToWriter); anything else goes
// through the generic ToWire+Protocol.Encode path.
func Dumps(spec compile.TypeSpec, value interface{}) ([]byte, error) {
	if ss, ok := spec.(*compile.StructTypeSpec); ok {
		w := binary.NewWriter(0)
		if err := ss.ToWriter(w, value); err != nil {
			return nil, err
		}
		return w.Bytes(), nil
	}
	wv, err := spec.ToWire(value)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := protocol.Binary.Encode(wv, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Loads deserializes data as a value of spec's type. A struct/union/
// exception spec decodes directly off the Reader (StructTypeSpec.FromReader),
// letting unknown or ttype-mismatched fields be skipped at the wire level
// instead of first being materialized into a wire.Value.
func Loads(spec compile.TypeSpec, data []byte) (interface{}, error) {
	if ss, ok := spec.(*compile.StructTypeSpec); ok {
		return ss.FromReader(binary.NewReader(data))
	}
	wv, err := protocol.Binary.Decode(bytes.NewReader(data), spec.TType())
	if err != nil {
		return nil, err
	}
	return spec.FromWire(wv)
}

// DumpsMessage wraps value in a strict message envelope addressed to name,
// tagged with msgType and seqID (§6.4). value is the request or response
// struct/union for the function being called. Most callers should prefer
// DumpsRequest/DumpsResponse, which select msgType for them; DumpsMessage
// stays available for callers that aren't driving a *compile.FunctionSpec.
func DumpsMessage(name string, msgType wire.EnvelopeType, seqID int32, spec compile.TypeSpec, value interface{}) ([]byte, error) {
	w := binary.NewWriter(0)
	if err := w.WriteMessageBegin(binary.MessageHeader{Name: name, Type: msgType, SeqID: seqID}); err != nil {
		return nil, err
	}
	if ss, ok := spec.(*compile.StructTypeSpec); ok {
		if err := ss.ToWriter(w, value); err != nil {
			return nil, err
		}
	} else {
		wv, err := spec.ToWire(value)
		if err != nil {
			return nil, err
		}
		if err := w.Write(wv); err != nil {
			return nil, err
		}
	}
	if err := w.WriteMessageEnd(); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// DumpsRequest wraps args in a message envelope for a call to fn, choosing
// Call or OneWay from fn.Oneway the way §6.4 specifies, rather than making
// the caller supply the envelope type.
func DumpsRequest(fn *compile.FunctionSpec, name string, seqID int32, args interface{}) ([]byte, error) {
	msgType := wire.Call
	if fn.Oneway {
		msgType = wire.OneWay
	}
	return DumpsMessage(name, msgType, seqID, fn.ArgsSpec, args)
}

// DumpsResponse wraps result in a Reply envelope for fn. §6.4 calls a
// response carrying a declared exception field REPLY, not EXCEPTION — that
// envelope type is reserved for protocol-level failures a decoder may
// produce, never something this side writes — so the result union's own
// shape is what distinguishes success from a declared exception, and the
// envelope type here is always Reply.
func DumpsResponse(fn *compile.FunctionSpec, name string, seqID int32, result interface{}) ([]byte, error) {
	return DumpsMessage(name, wire.Reply, seqID, fn.ResultSpec, result)
}

// LoadsMessage unwraps a message envelope and dispatches its body to the
// named function's request spec (for Call/OneWay) or result spec (for
// Reply/Exception), per §6.4. A Call or OneWay body decodes through the
// function's ordinary argument struct; a Reply or Exception body decodes
// through FromReaderResult, which raises UnknownExceptionError for a field
// id the result spec does not recognize as either "success" or a declared
// exception — the one place an unrecognized field is surfaced rather than
// skipped.
func LoadsMessage(service *compile.ServiceSpec, data []byte) (Message, error) {
	r := binary.NewReader(data)
	h, err := r.ReadMessageBegin()
	if err != nil {
		return Message{}, err
	}

	fn, ok := service.Function(h.Name)
	if !ok {
		return Message{}, &binary.ThriftProtocolError{Reason: "unknown method " + h.Name}
	}

	var body interface{}
	switch h.Type {
	case wire.Call, wire.OneWay:
		body, err = fn.ArgsSpec.FromReader(r)
	case wire.Reply, wire.Exception:
		if fn.ResultSpec == nil {
			return Message{}, &binary.ThriftProtocolError{Reason: "oneway method " + h.Name + " has no result"}
		}
		body, err = fn.ResultSpec.FromReaderResult(r, h.Name)
	default:
		return Message{}, &binary.ThriftProtocolError{Reason: "unknown envelope type"}
	}
	if err != nil {
		return Message{}, err
	}
	if err := r.ReadMessageEnd(); err != nil {
		return Message{}, err
	}

	return Message{Name: h.Name, SeqID: h.SeqID, Type: h.Type, Body: body}, nil
}
