package protocol

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/thriftrw/wire"
)

func TestBinaryEncodeDecode(t *testing.T) {
	v := wire.NewValueStruct(wire.Struct{Fields: []wire.Field{
		{ID: 1, Value: wire.NewValueBinary([]byte("Hi"))},
	}})

	var buf bytes.Buffer
	require.NoError(t, Binary.Encode(v, &buf))

	got, err := Binary.Decode(bytes.NewReader(buf.Bytes()), wire.TStruct)
	require.NoError(t, err)
	assert.True(t, v.Equals(got))
}

func TestBinaryEnvelopeRoundTrip(t *testing.T) {
	env := wire.Envelope{
		Name:  "getValue",
		Type:  wire.Call,
		SeqID: 42,
		Value: wire.NewValueStruct(wire.Struct{}),
	}

	var buf bytes.Buffer
	require.NoError(t, Binary.EncodeEnveloped(env, &buf))

	got, err := Binary.DecodeEnveloped(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, env.Name, got.Name)
	assert.Equal(t, env.Type, got.Type)
	assert.Equal(t, env.SeqID, got.SeqID)
	assert.True(t, env.Value.Equals(got.Value))
}
