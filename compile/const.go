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
	"fmt"

	"github.com/uber-go/mapdecode"
)

// ConstSpec is a compiled "const" declaration (§3.3). Value already holds
// the spec's host representation; for struct/union-typed constants the
// IDL's string-keyed literal map is reconstructed through Spec's own
// FromPrimitive so the constant is validated exactly like any other value
// of that spec.
type ConstSpec struct {
	Name  string
	Spec  TypeSpec
	Value interface{}
}

// NewConstSpec builds a ConstSpec, converting literal into Spec's host
// representation. literal is whatever the AST's ConstantValue parsed to:
// a bool, string, int64, float64, []interface{}, or a map keyed by
// arbitrary ConstantValues (as produced by a map/struct literal). The map
// case is normalized to map[string]interface{} via mapdecode before being
// handed to Spec.FromPrimitive, since struct/union FromPrimitive expects
// string keys but the AST's literal map may be keyed by any ConstantValue
// (numbers, other literals).
func NewConstSpec(name string, spec TypeSpec, literal interface{}) (*ConstSpec, error) {
	normalized, err := normalizeConstLiteral(literal)
	if err != nil {
		return nil, newCompileError(0, "const %s: %s", name, err)
	}
	value, err := spec.FromPrimitive(normalized)
	if err != nil {
		return nil, newCompileError(0, "const %s: %s", name, err)
	}
	return &ConstSpec{Name: name, Spec: spec, Value: value}, nil
}

func normalizeConstLiteral(literal interface{}) (interface{}, error) {
	switch lit := literal.(type) {
	case map[string]interface{}:
		return lit, nil
	case map[interface{}]interface{}:
		var out map[string]interface{}
		if err := mapdecode.Decode(&out, lit); err != nil {
			return nil, fmt.Errorf("invalid struct/union literal: %w", err)
		}
		return out, nil
	default:
		return literal, nil
	}
}
