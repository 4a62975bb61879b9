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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/thriftrw/protocol/binary"
	"go.uber.org/thriftrw/wire"
)

func TestPrimitiveRangeValidation(t *testing.T) {
	require.NoError(t, I32Spec.Validate(int64(65537)))
	require.Error(t, I16Spec.Validate(int64(70000)))
	require.Error(t, ByteSpec.Validate(int64(300)))
	require.NoError(t, ByteSpec.Validate(int64(-128)))
}

func TestI32RoundTripBitExact(t *testing.T) {
	// §8: I32(65537) -> 00 01 00 01
	wv, err := I32Spec.ToWire(int64(65537))
	require.NoError(t, err)
	assert.Equal(t, int32(65537), wv.GetI32())
	assert.Equal(t, wire.TI32, wv.Type())

	w := binary.NewWriter(0)
	require.NoError(t, WriteValue(w, I32Spec, int64(65537)))
	assert.Equal(t, []byte{0x00, 0x01, 0x00, 0x01}, w.Bytes())

	back, err := ReadValue(binary.NewReader(w.Bytes()), I32Spec)
	require.NoError(t, err)
	assert.Equal(t, int32(65537), back)
}

func TestStringRoundTrip(t *testing.T) {
	wv, err := StringSpec.ToWire("Hi")
	require.NoError(t, err)
	assert.Equal(t, wire.TBinary, wv.Type())
	assert.Equal(t, "Hi", wv.GetString())

	back, err := StringSpec.FromWire(wv)
	require.NoError(t, err)
	assert.Equal(t, "Hi", back)
}

func TestStringFromWireRejectsInvalidUTF8(t *testing.T) {
	// §4.4.1: string values must be valid UTF-8 on read; binary has no such
	// requirement.
	wv := wire.NewValueBinary([]byte{0xFF, 0xFE})

	_, err := StringSpec.FromWire(wv)
	require.Error(t, err)
	assert.IsType(t, &InvalidUTF8{}, err)

	back, err := BinarySpec.FromWire(wv)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xFE}, back)
}

func TestBoolAcceptsIntegerZeroOrOne(t *testing.T) {
	require.NoError(t, BoolSpec.Validate(int64(1)))
	require.NoError(t, BoolSpec.Validate(int64(0)))
	require.Error(t, BoolSpec.Validate(int64(2)))
}

func TestPrimitiveToPrimitiveIsIdentity(t *testing.T) {
	p, err := I64Spec.ToPrimitive(int64(42))
	require.NoError(t, err)
	assert.Equal(t, int64(42), p)
}
