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

package protocol

import (
	"io"

	"go.uber.org/thriftrw/protocol/binary"
	"go.uber.org/thriftrw/wire"
)

// Binary is the Thrift Binary Protocol implementation of Protocol. It
// always writes strict (versioned) message envelopes but reads both strict
// and non-strict ones.
var Binary Protocol = binaryProtocol{}

type binaryProtocol struct{}

func (binaryProtocol) Encode(v wire.Value, w io.Writer) error {
	bw := binary.NewWriter(0)
	if err := bw.Write(v); err != nil {
		return err
	}
	_, err := w.Write(bw.Bytes())
	return err
}

func (binaryProtocol) Decode(r io.Reader, t wire.Type) (wire.Value, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return wire.Value{}, err
	}
	return binary.NewReader(buf).Read(t)
}

func (binaryProtocol) EncodeEnveloped(e wire.Envelope, w io.Writer) error {
	bw := binary.NewWriter(0)
	if err := bw.WriteMessageBegin(binary.MessageHeader{Name: e.Name, Type: e.Type, SeqID: e.SeqID}); err != nil {
		return err
	}
	if err := bw.Write(e.Value); err != nil {
		return err
	}
	if err := bw.WriteMessageEnd(); err != nil {
		return err
	}
	_, err := w.Write(bw.Bytes())
	return err
}

func (binaryProtocol) DecodeEnveloped(r io.Reader) (wire.Envelope, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return wire.Envelope{}, err
	}
	br := binary.NewReader(buf)
	h, err := br.ReadMessageBegin()
	if err != nil {
		return wire.Envelope{}, err
	}
	v, err := br.Read(wire.TStruct)
	if err != nil {
		return wire.Envelope{}, err
	}
	if err := br.ReadMessageEnd(); err != nil {
		return wire.Envelope{}, err
	}
	return wire.Envelope{Name: h.Name, Type: h.Type, SeqID: h.SeqID, Value: v}, nil
}
