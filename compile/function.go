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

import "go.uber.org/atomic"

// FunctionSpec is one function of a service (§3.3/§4.4.8). ArgsSpec is
// always a plain struct named "<service>_<function>_request" whose fields
// are the function's parameters. ResultSpec is a union named
// "<service>_<function>_response" with field 0 "success" (absent for void
// oneway-or-not functions) plus one field per declared exception; it is nil
// for oneway functions, which may not return a value or declare
// exceptions.
type FunctionSpec struct {
	Name       string
	ArgsSpec   *StructTypeSpec
	ResultSpec *StructTypeSpec // Kind == UnionStruct; nil iff Oneway
	Oneway     bool
}

// ServiceSpec is a named collection of functions, inheriting from at most
// one parent (§3.3/§4.4.8).
type ServiceSpec struct {
	Name       string
	Functions  map[string]*FunctionSpec
	ParentName string // empty if no parent

	linked atomic.Bool
	parent *ServiceSpec
}

// Parent returns the linked parent service, if any.
func (s *ServiceSpec) Parent() *ServiceSpec { return s.parent }

// Function looks up a function by name, falling back to the parent chain.
func (s *ServiceSpec) Function(name string) (*FunctionSpec, bool) {
	if f, ok := s.Functions[name]; ok {
		return f, true
	}
	if s.parent != nil {
		return s.parent.Function(name)
	}
	return nil, false
}

// Link resolves the parent (if any, which may recurse into the parent's
// own Link) and every function's args/result structs. The "linked" flag
// guards against inheritance cycles the same way StructTypeSpec's does.
func (s *ServiceSpec) Link(scope *Scope) error {
	if s.linked.Swap(true) {
		return nil
	}
	if s.ParentName != "" {
		parent, err := scope.ResolveService(s.ParentName, 0)
		if err != nil {
			return newCompileError(0, "%s: %s", s.Name, err)
		}
		if err := parent.Link(scope); err != nil {
			return err
		}
		s.parent = parent
	}
	for _, fn := range s.Functions {
		if _, err := fn.ArgsSpec.Link(scope); err != nil {
			return err
		}
		if fn.ResultSpec != nil {
			if _, err := fn.ResultSpec.Link(scope); err != nil {
				return err
			}
		}
	}
	return nil
}
