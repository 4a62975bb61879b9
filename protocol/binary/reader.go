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
	"encoding/binary"
	"math"

	"go.uber.org/thriftrw/wire"
)

// Reader deserializes Thrift Binary Protocol bytes into wire.Value trees.
// Package compile's StructTypeSpec.FromReader reads struct field headers off
// a Reader directly and skips unknown fields without building a wire.Value
// for them; each known field's value is still decoded through a wire.Value.
type Reader struct {
	buf *ReadBuffer
}

// NewReader wraps buf for Thrift Binary Protocol decoding.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: NewReadBuffer(buf)}
}

func (r *Reader) ReadBool() (bool, error) {
	b, err := r.buf.Read(1)
	if err != nil {
		return false, err
	}
	return b[0] != 0, nil
}

func (r *Reader) ReadByte() (int8, error) {
	b, err := r.buf.Read(1)
	if err != nil {
		return 0, err
	}
	return int8(b[0]), nil
}

func (r *Reader) ReadI16() (int16, error) {
	b, err := r.buf.Read(2)
	if err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(b)), nil
}

func (r *Reader) ReadI32() (int32, error) {
	b, err := r.buf.Read(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b)), nil
}

func (r *Reader) ReadI64() (int64, error) {
	b, err := r.buf.Read(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

func (r *Reader) ReadDouble() (float64, error) {
	v, err := r.ReadI64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(uint64(v)), nil
}

func (r *Reader) ReadBinary() ([]byte, error) {
	size, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	if size < 0 {
		return nil, &ThriftProtocolError{Reason: "negative binary length"}
	}
	return r.buf.Take(int(size))
}

// ReadFieldBegin reads the next field header. isEnd reports whether the
// struct-end sentinel (the 0 STOP byte) was encountered instead; callers
// must stop looping as soon as isEnd is true and must not interpret header
// in that case.
func (r *Reader) ReadFieldBegin() (header FieldHeader, isEnd bool, err error) {
	t, err := r.ReadByte()
	if err != nil {
		return FieldHeader{}, false, err
	}
	if t == 0 {
		return FieldHeader{}, true, nil
	}
	id, err := r.ReadI16()
	if err != nil {
		return FieldHeader{}, false, err
	}
	return FieldHeader{Type: wire.Type(t), ID: id}, false, nil
}

// ReadFieldEnd is a no-op: TBinary has no per-field trailer.
func (r *Reader) ReadFieldEnd() error { return nil }

// ReadStructBegin is a no-op: TBinary has no struct header.
func (r *Reader) ReadStructBegin() error { return nil }

// ReadMapBegin reads a map's key type, value type, and size.
func (r *Reader) ReadMapBegin() (keyType, valType wire.Type, size int, err error) {
	kt, err := r.ReadByte()
	if err != nil {
		return 0, 0, 0, err
	}
	vt, err := r.ReadByte()
	if err != nil {
		return 0, 0, 0, err
	}
	sz, err := r.ReadI32()
	if err != nil {
		return 0, 0, 0, err
	}
	if sz < 0 {
		return 0, 0, 0, &ThriftProtocolError{Reason: "negative map size"}
	}
	return wire.Type(kt), wire.Type(vt), int(sz), nil
}

// ReadSetBegin reads a set's element type and size.
func (r *Reader) ReadSetBegin() (elemType wire.Type, size int, err error) {
	t, err := r.ReadByte()
	if err != nil {
		return 0, 0, err
	}
	sz, err := r.ReadI32()
	if err != nil {
		return 0, 0, err
	}
	if sz < 0 {
		return 0, 0, &ThriftProtocolError{Reason: "negative set size"}
	}
	return wire.Type(t), int(sz), nil
}

// ReadListBegin reads a list's element type and size.
func (r *Reader) ReadListBegin() (elemType wire.Type, size int, err error) {
	t, sz, err := r.ReadSetBegin()
	return t, sz, err
}

const strictMessageVersion = 1

// ReadMessageBegin accepts both strict (versioned) and non-strict message
// envelopes, distinguishing them by the sign of the first i32 on the wire.
func (r *Reader) ReadMessageBegin() (MessageHeader, error) {
	first, err := r.ReadI32()
	if err != nil {
		return MessageHeader{}, err
	}
	if first < 0 {
		version := (first & strictVersionMask) >> 16
		if version != strictMessageVersion {
			return MessageHeader{}, &UnsupportedVersionError{Version: first}
		}
		msgType := wire.EnvelopeType(first & strictTypeMask)
		name, err := r.ReadBinary()
		if err != nil {
			return MessageHeader{}, err
		}
		seqID, err := r.ReadI32()
		if err != nil {
			return MessageHeader{}, err
		}
		return MessageHeader{Name: string(name), Type: msgType, SeqID: seqID}, nil
	}

	// Non-strict: the first i32 is the name length.
	nameBytes, err := r.buf.Take(int(first))
	if err != nil {
		return MessageHeader{}, err
	}
	msgTypeByte, err := r.ReadByte()
	if err != nil {
		return MessageHeader{}, err
	}
	seqID, err := r.ReadI32()
	if err != nil {
		return MessageHeader{}, err
	}
	return MessageHeader{Name: string(nameBytes), Type: wire.EnvelopeType(msgTypeByte), SeqID: seqID}, nil
}

// ReadMessageEnd is a no-op: TBinary has no message trailer.
func (r *Reader) ReadMessageEnd() error { return nil }

// Read decodes a wire.Value of the given TType.
func (r *Reader) Read(t wire.Type) (wire.Value, error) {
	switch t {
	case wire.TBool:
		v, err := r.ReadBool()
		return wire.NewValueBool(v), err
	case wire.TI8:
		v, err := r.ReadByte()
		return wire.NewValueI8(v), err
	case wire.TDouble:
		v, err := r.ReadDouble()
		return wire.NewValueDouble(v), err
	case wire.TI16:
		v, err := r.ReadI16()
		return wire.NewValueI16(v), err
	case wire.TI32:
		v, err := r.ReadI32()
		return wire.NewValueI32(v), err
	case wire.TI64:
		v, err := r.ReadI64()
		return wire.NewValueI64(v), err
	case wire.TBinary:
		v, err := r.ReadBinary()
		return wire.NewValueBinary(v), err
	case wire.TStruct:
		return r.readStruct()
	case wire.TMap:
		return r.readMap()
	case wire.TSet:
		return r.readSet()
	case wire.TList:
		return r.readList()
	default:
		return wire.Value{}, &UnknownTTypeError{Type: t}
	}
}

func (r *Reader) readStruct() (wire.Value, error) {
	var fields []wire.Field
	for {
		h, isEnd, err := r.ReadFieldBegin()
		if err != nil {
			return wire.Value{}, err
		}
		if isEnd {
			break
		}
		v, err := r.Read(h.Type)
		if err != nil {
			return wire.Value{}, err
		}
		fields = append(fields, wire.Field{ID: h.ID, Value: v})
	}
	return wire.NewValueStruct(wire.Struct{Fields: fields}), nil
}

func (r *Reader) readMap() (wire.Value, error) {
	kt, vt, size, err := r.ReadMapBegin()
	if err != nil {
		return wire.Value{}, err
	}
	items := make([]wire.MapItem, 0, size)
	for i := 0; i < size; i++ {
		k, err := r.Read(kt)
		if err != nil {
			return wire.Value{}, err
		}
		v, err := r.Read(vt)
		if err != nil {
			return wire.Value{}, err
		}
		items = append(items, wire.MapItem{Key: k, Value: v})
	}
	return wire.NewValueMap(wire.Map{KeyType: kt, ValueType: vt, Items: items}), nil
}

func (r *Reader) readSet() (wire.Value, error) {
	et, size, err := r.ReadSetBegin()
	if err != nil {
		return wire.Value{}, err
	}
	items := make([]wire.Value, 0, size)
	for i := 0; i < size; i++ {
		v, err := r.Read(et)
		if err != nil {
			return wire.Value{}, err
		}
		items = append(items, v)
	}
	return wire.NewValueSet(wire.Set{ValueType: et, Items: items}), nil
}

func (r *Reader) readList() (wire.Value, error) {
	et, size, err := r.ReadListBegin()
	if err != nil {
		return wire.Value{}, err
	}
	items := make([]wire.Value, 0, size)
	for i := 0; i < size; i++ {
		v, err := r.Read(et)
		if err != nil {
			return wire.Value{}, err
		}
		items = append(items, v)
	}
	return wire.NewValueList(wire.List{ValueType: et, Items: items}), nil
}
