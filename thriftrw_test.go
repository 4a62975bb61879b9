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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/thriftrw/ast"
	"go.uber.org/thriftrw/compile"
	"go.uber.org/thriftrw/compile/dynamic"
	"go.uber.org/thriftrw/protocol/binary"
	"go.uber.org/thriftrw/wire"
)

func echoServiceProgram() *ast.Program {
	return &ast.Program{
		Definitions: []ast.Definition{
			&ast.Service{
				Name: "Echo",
				Functions: []*ast.Function{
					{
						Name:       "echo",
						Parameters: []*ast.Field{{ID: 1, Name: "message", Type: ast.BaseType{ID: ast.StringTypeID}}},
						ReturnType: ast.BaseType{ID: ast.StringTypeID},
						Exceptions: []*ast.Field{{ID: 1, Name: "failure", Type: ast.BaseType{ID: ast.StringTypeID}}},
					},
				},
			},
		},
	}
}

func TestDumpsLoadsPrimitive(t *testing.T) {
	data, err := Dumps(compile.I32Spec, int64(65537))
	require.NoError(t, err)

	v, err := Loads(compile.I32Spec, data)
	require.NoError(t, err)
	assert.Equal(t, int32(65537), v)
}

func TestDumpsMessageLoadsMessageCallAndReply(t *testing.T) {
	scope, err := compile.Compile(echoServiceProgram())
	require.NoError(t, err)
	svc, ok := scope.Service("Echo")
	require.True(t, ok)
	fn, ok := svc.Function("echo")
	require.True(t, ok)

	args := dynamic.NewInstance(fn.ArgsSpec.TypeName())
	args.Set("message", "hello")
	data, err := DumpsRequest(fn, "echo", 1, args)
	require.NoError(t, err)

	msg, err := LoadsMessage(svc, data)
	require.NoError(t, err)
	assert.Equal(t, "echo", msg.Name)
	assert.Equal(t, int32(1), msg.SeqID)
	assert.Equal(t, wire.Call, msg.Type)
	body := msg.Body.(*dynamic.Instance)
	m, _ := body.Get("message")
	assert.Equal(t, "hello", m)

	result := dynamic.NewInstance(fn.ResultSpec.TypeName())
	result.Set("success", "hello")
	replyData, err := DumpsResponse(fn, "echo", 1, result)
	require.NoError(t, err)

	reply, err := LoadsMessage(svc, replyData)
	require.NoError(t, err)
	replyBody := reply.Body.(*dynamic.Instance)
	success, _ := replyBody.Get("success")
	assert.Equal(t, "hello", success)
}

func TestDumpsRequestSelectsOnewayEnvelopeType(t *testing.T) {
	program := &ast.Program{
		Definitions: []ast.Definition{
			&ast.Service{
				Name: "Notifier",
				Functions: []*ast.Function{
					{
						Name:       "notify",
						OneWay:     true,
						Parameters: []*ast.Field{{ID: 1, Name: "id", Type: ast.BaseType{ID: ast.I64TypeID}}},
					},
				},
			},
		},
	}
	scope, err := compile.Compile(program)
	require.NoError(t, err)
	svc, ok := scope.Service("Notifier")
	require.True(t, ok)
	fn, ok := svc.Function("notify")
	require.True(t, ok)

	args := dynamic.NewInstance(fn.ArgsSpec.TypeName())
	args.Set("id", int64(9))
	data, err := DumpsRequest(fn, "notify", 1, args)
	require.NoError(t, err)

	msg, err := LoadsMessage(svc, data)
	require.NoError(t, err)
	assert.Equal(t, wire.OneWay, msg.Type)
}

func TestLoadsMessageUnknownMethodIsProtocolError(t *testing.T) {
	scope, err := compile.Compile(echoServiceProgram())
	require.NoError(t, err)
	svc, _ := scope.Service("Echo")

	data, err := DumpsMessage("nonexistent", wire.Call, 1, compile.I32Spec, int64(1))
	require.NoError(t, err)

	_, err = LoadsMessage(svc, data)
	require.Error(t, err)
	assert.IsType(t, &binary.ThriftProtocolError{}, err)
}

func TestLoadsMessageReplyWithUnknownFieldIsUnknownException(t *testing.T) {
	scope, err := compile.Compile(echoServiceProgram())
	require.NoError(t, err)
	svc, _ := scope.Service("Echo")
	fn, _ := svc.Function("echo")

	// Hand-build a reply envelope whose body carries a field id the
	// result spec doesn't recognize as either success or a declared
	// exception.
	bogus := &bogusResultSpec{inner: fn.ResultSpec}
	data, err := DumpsMessage("echo", wire.Reply, 1, bogus, nil)
	require.NoError(t, err)

	_, err = LoadsMessage(svc, data)
	require.Error(t, err)
	assert.IsType(t, &compile.UnknownExceptionError{}, err)
}

// bogusResultSpec writes a struct with a field id unknown to fn's real
// result spec, simulating a peer returning something this side can't
// represent.
type bogusResultSpec struct {
	inner compile.TypeSpec
}

func (b *bogusResultSpec) TypeName() string { return b.inner.TypeName() }
func (b *bogusResultSpec) TType() wire.Type { return b.inner.TType() }
func (b *bogusResultSpec) Link(scope *compile.Scope) (compile.TypeSpec, error) {
	return b, nil
}
func (b *bogusResultSpec) Validate(v interface{}) error { return nil }
func (b *bogusResultSpec) ToWire(v interface{}) (wire.Value, error) {
	return wire.NewValueStruct(wire.Struct{Fields: []wire.Field{
		{ID: 99, Value: wire.NewValueString("unexpected")},
	}}), nil
}
func (b *bogusResultSpec) FromWire(v wire.Value) (interface{}, error) { return b.inner.FromWire(v) }
func (b *bogusResultSpec) ToPrimitive(v interface{}) (interface{}, error) {
	return nil, nil
}
func (b *bogusResultSpec) FromPrimitive(p interface{}) (interface{}, error) {
	return nil, nil
}
