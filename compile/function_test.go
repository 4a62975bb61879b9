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
)

func newArgsSpec(name string) *StructTypeSpec {
	return &StructTypeSpec{Name: name, Kind: PlainStruct}
}

func TestServiceFunctionInheritsFromParent(t *testing.T) {
	scope := NewScope("")

	base := &ServiceSpec{
		Name: "Base",
		Functions: map[string]*FunctionSpec{
			"ping": {Name: "ping", ArgsSpec: newArgsSpec("Base_ping_request"), Oneway: true},
		},
	}
	derived := &ServiceSpec{
		Name:       "Derived",
		ParentName: "Base",
		Functions: map[string]*FunctionSpec{
			"echo": {
				Name:       "echo",
				ArgsSpec:   newArgsSpec("Derived_echo_request"),
				ResultSpec: &StructTypeSpec{Name: "Derived_echo_response", Kind: UnionStruct, AllowEmpty: true},
			},
		},
	}
	scope.AddService("Base", base)
	scope.AddService("Derived", derived)

	require.NoError(t, derived.Link(scope))

	_, ok := derived.Function("echo")
	assert.True(t, ok)
	fn, ok := derived.Function("ping")
	require.True(t, ok, "should fall back to the parent's function")
	assert.True(t, fn.Oneway)

	assert.Same(t, base, derived.Parent())
}

func TestServiceLinkIsIdempotent(t *testing.T) {
	scope := NewScope("")
	svc := &ServiceSpec{
		Name: "Base",
		Functions: map[string]*FunctionSpec{
			"ping": {Name: "ping", ArgsSpec: newArgsSpec("Base_ping_request"), Oneway: true},
		},
	}
	scope.AddService("Base", svc)
	require.NoError(t, svc.Link(scope))
	require.NoError(t, svc.Link(scope)) // must not re-process or error
}
