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

// Package binary implements the Thrift Binary Protocol (TBinary): streaming
// encode/decode of wire.Value trees, struct/container framing, message
// envelopes, and skip-on-unknown-field support.
package binary

import (
	"encoding/binary"
	"math"

	"go.uber.org/thriftrw/wire"
)

// FieldHeader is the type/id pair written before every struct field.
type FieldHeader struct {
	Type wire.Type
	ID   int16
}

// MessageHeader identifies a Thrift RPC message.
type MessageHeader struct {
	Name  string
	Type  wire.EnvelopeType
	SeqID int32
}

// strictVersion1 is 0x80010000 written as its int32 two's-complement value:
// the hex literal itself overflows a positive int32 constant.
const (
	strictVersion1    int32 = -2147418112
	strictVersionMask int32 = 0x7fff0000
	strictTypeMask    int32 = 0xff
)

// Writer serializes Thrift values onto a WriteBuffer using the Thrift
// Binary Protocol. All integers and floats are big-endian.
type Writer struct {
	buf *WriteBuffer
}

// NewWriter constructs a Writer over a fresh WriteBuffer with the given
// initial capacity (0 selects the default).
func NewWriter(capacity int) *Writer {
	return &Writer{buf: NewWriteBuffer(capacity)}
}

// Bytes returns the bytes written so far.
func (w *Writer) Bytes() []byte {
	return w.buf.Value()
}

func (w *Writer) WriteBool(v bool) error {
	if v {
		w.buf.Write([]byte{1})
	} else {
		w.buf.Write([]byte{0})
	}
	return nil
}

func (w *Writer) WriteByte(v int8) error {
	w.buf.Write([]byte{byte(v)})
	return nil
}

func (w *Writer) WriteI16(v int16) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], uint16(v))
	w.buf.Write(b[:])
	return nil
}

func (w *Writer) WriteI32(v int32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	w.buf.Write(b[:])
	return nil
}

func (w *Writer) WriteI64(v int64) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	w.buf.Write(b[:])
	return nil
}

func (w *Writer) WriteDouble(v float64) error {
	return w.WriteI64(int64(math.Float64bits(v)))
}

func (w *Writer) WriteBinary(v []byte) error {
	if err := w.WriteI32(int32(len(v))); err != nil {
		return err
	}
	w.buf.Write(v)
	return nil
}

// WriteFieldBegin emits a struct field's type/id header.
func (w *Writer) WriteFieldBegin(h FieldHeader) error {
	if err := w.WriteByte(int8(h.Type)); err != nil {
		return err
	}
	return w.WriteI16(h.ID)
}

// WriteFieldEnd is a no-op: TBinary has no per-field trailer.
func (w *Writer) WriteFieldEnd() error { return nil }

// WriteStructBegin is a no-op: TBinary has no struct header.
func (w *Writer) WriteStructBegin() error { return nil }

// WriteStructEnd emits the STOP byte marking the end of a struct's fields.
func (w *Writer) WriteStructEnd() error {
	return w.WriteByte(0)
}

// WriteMapBegin emits a map's key type, value type, and size.
func (w *Writer) WriteMapBegin(keyType, valType wire.Type, size int) error {
	if err := w.WriteByte(int8(keyType)); err != nil {
		return err
	}
	if err := w.WriteByte(int8(valType)); err != nil {
		return err
	}
	return w.WriteI32(int32(size))
}

// WriteSetBegin emits a set's element type and size.
func (w *Writer) WriteSetBegin(elemType wire.Type, size int) error {
	if err := w.WriteByte(int8(elemType)); err != nil {
		return err
	}
	return w.WriteI32(int32(size))
}

// WriteListBegin emits a list's element type and size.
func (w *Writer) WriteListBegin(elemType wire.Type, size int) error {
	if err := w.WriteByte(int8(elemType)); err != nil {
		return err
	}
	return w.WriteI32(int32(size))
}

// WriteMessageBegin always emits the strict, versioned envelope form:
// (0x80010000 | type):i32 | name | seqid:i32.
func (w *Writer) WriteMessageBegin(h MessageHeader) error {
	version := int32(strictVersion1 | (int32(h.Type) & strictTypeMask))
	if err := w.WriteI32(version); err != nil {
		return err
	}
	if err := w.WriteBinary([]byte(h.Name)); err != nil {
		return err
	}
	return w.WriteI32(h.SeqID)
}

// WriteMessageEnd is a no-op: TBinary has no message trailer.
func (w *Writer) WriteMessageEnd() error { return nil }

// Write emits a fully-formed wire.Value, recursing through containers and
// struct fields as needed.
func (w *Writer) Write(v wire.Value) error {
	switch v.Type() {
	case wire.TBool:
		return w.WriteBool(v.GetBool())
	case wire.TI8:
		return w.WriteByte(v.GetI8())
	case wire.TDouble:
		return w.WriteDouble(v.GetDouble())
	case wire.TI16:
		return w.WriteI16(v.GetI16())
	case wire.TI32:
		return w.WriteI32(v.GetI32())
	case wire.TI64:
		return w.WriteI64(v.GetI64())
	case wire.TBinary:
		return w.WriteBinary(v.GetBinary())
	case wire.TStruct:
		return w.writeStruct(v.GetStruct())
	case wire.TMap:
		return w.writeMap(v.GetMap())
	case wire.TSet:
		return w.writeSet(v.GetSet())
	case wire.TList:
		return w.writeList(v.GetList())
	default:
		return &UnknownTTypeError{Type: v.Type()}
	}
}

func (w *Writer) writeStruct(s wire.Struct) error {
	for _, f := range s.Fields {
		if err := w.WriteFieldBegin(FieldHeader{Type: f.Value.Type(), ID: f.ID}); err != nil {
			return err
		}
		if err := w.Write(f.Value); err != nil {
			return err
		}
		if err := w.WriteFieldEnd(); err != nil {
			return err
		}
	}
	return w.WriteStructEnd()
}

func (w *Writer) writeMap(m wire.Map) error {
	if err := w.WriteMapBegin(m.KeyType, m.ValueType, len(m.Items)); err != nil {
		return err
	}
	for _, item := range m.Items {
		if err := w.Write(item.Key); err != nil {
			return err
		}
		if err := w.Write(item.Value); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeSet(s wire.Set) error {
	if err := w.WriteSetBegin(s.ValueType, len(s.Items)); err != nil {
		return err
	}
	for _, item := range s.Items {
		if err := w.Write(item); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeList(l wire.List) error {
	if err := w.WriteListBegin(l.ValueType, len(l.Items)); err != nil {
		return err
	}
	for _, item := range l.Items {
		if err := w.Write(item); err != nil {
			return err
		}
	}
	return nil
}
