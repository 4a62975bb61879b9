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

func TestScopePreRegistersPrimitives(t *testing.T) {
	scope := NewScope("main")
	spec, ok := scope.LookupType("string")
	require.True(t, ok)
	assert.Same(t, StringSpec, spec)
}

func TestScopeResolvesQualifiedIncludeReferences(t *testing.T) {
	common := NewScope("common")
	common.AddType("UUID", &TypedefTypeSpec{Name: "UUID", Target: StringSpec})

	main := NewScope("main")
	main.Include("common", common)

	spec, err := main.ResolveType("common.UUID", 0)
	require.NoError(t, err)
	assert.Equal(t, "UUID", spec.TypeName())
}

func TestScopeUnresolvedReferenceIsCompileError(t *testing.T) {
	scope := NewScope("main")
	_, err := scope.ResolveType("Nonexistent", 12)
	require.Error(t, err)
	ce, ok := err.(*CompileError)
	require.True(t, ok)
	assert.Equal(t, 12, ce.Line)
}

func TestScopeUnknownIncludeIsCompileError(t *testing.T) {
	scope := NewScope("main")
	_, err := scope.ResolveType("other.Thing", 0)
	require.Error(t, err)
}
