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

	"go.uber.org/thriftrw/compile/dynamic"
	"go.uber.org/thriftrw/wire"
)

// ListTypeSpec is "list<Elem>".
type ListTypeSpec struct {
	Elem TypeSpec
}

func (l *ListTypeSpec) TypeName() string { return fmt.Sprintf("list<%s>", l.Elem.TypeName()) }
func (l *ListTypeSpec) TType() wire.Type { return wire.TList }

func (l *ListTypeSpec) Link(scope *Scope) (TypeSpec, error) {
	elem, err := l.Elem.Link(scope)
	if err != nil {
		return nil, err
	}
	l.Elem = elem
	return l, nil
}

func (l *ListTypeSpec) Validate(v interface{}) error {
	items, ok := v.([]interface{})
	if !ok {
		return &TypeMismatch{Spec: l.TypeName(), Value: v}
	}
	for _, item := range items {
		if err := l.Elem.Validate(item); err != nil {
			return err
		}
	}
	return nil
}

func (l *ListTypeSpec) ToWire(v interface{}) (wire.Value, error) {
	items, ok := v.([]interface{})
	if !ok {
		return wire.Value{}, &TypeMismatch{Spec: l.TypeName(), Value: v}
	}
	wireItems := make([]wire.Value, len(items))
	for i, item := range items {
		wv, err := l.Elem.ToWire(item)
		if err != nil {
			return wire.Value{}, err
		}
		wireItems[i] = wv
	}
	return wire.NewValueList(wire.List{ValueType: l.Elem.TType(), Items: wireItems}), nil
}

func (l *ListTypeSpec) FromWire(v wire.Value) (interface{}, error) {
	if v.Type() != wire.TList {
		return nil, &TypeMismatch{Spec: l.TypeName(), Value: v}
	}
	wlist := v.GetList()
	items := make([]interface{}, len(wlist.Items))
	for i, wv := range wlist.Items {
		item, err := l.Elem.FromWire(wv)
		if err != nil {
			return nil, err
		}
		items[i] = item
	}
	return items, nil
}

func (l *ListTypeSpec) ToPrimitive(v interface{}) (interface{}, error) {
	items, ok := v.([]interface{})
	if !ok {
		return nil, &TypeMismatch{Spec: l.TypeName(), Value: v}
	}
	out := make([]interface{}, len(items))
	for i, item := range items {
		p, err := l.Elem.ToPrimitive(item)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

func (l *ListTypeSpec) FromPrimitive(p interface{}) (interface{}, error) {
	items, ok := p.([]interface{})
	if !ok {
		return nil, &TypeMismatch{Spec: l.TypeName(), Value: p}
	}
	out := make([]interface{}, len(items))
	for i, item := range items {
		v, err := l.Elem.FromPrimitive(item)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// SetTypeSpec is "set<Elem>".
type SetTypeSpec struct {
	Elem TypeSpec
}

func (s *SetTypeSpec) TypeName() string { return fmt.Sprintf("set<%s>", s.Elem.TypeName()) }
func (s *SetTypeSpec) TType() wire.Type { return wire.TSet }

func (s *SetTypeSpec) Link(scope *Scope) (TypeSpec, error) {
	elem, err := s.Elem.Link(scope)
	if err != nil {
		return nil, err
	}
	s.Elem = elem
	return s, nil
}

func (s *SetTypeSpec) Validate(v interface{}) error {
	set, ok := v.(*dynamic.OrderedSet)
	if !ok {
		return &TypeMismatch{Spec: s.TypeName(), Value: v}
	}
	for _, item := range set.Items() {
		if err := s.Elem.Validate(item); err != nil {
			return err
		}
	}
	return nil
}

func (s *SetTypeSpec) ToWire(v interface{}) (wire.Value, error) {
	set, ok := v.(*dynamic.OrderedSet)
	if !ok {
		return wire.Value{}, &TypeMismatch{Spec: s.TypeName(), Value: v}
	}
	items := set.Items()
	wireItems := make([]wire.Value, len(items))
	for i, item := range items {
		wv, err := s.Elem.ToWire(item)
		if err != nil {
			return wire.Value{}, err
		}
		wireItems[i] = wv
	}
	return wire.NewValueSet(wire.Set{ValueType: s.Elem.TType(), Items: wireItems}), nil
}

// FromWire materializes a set, deduplicating by host equality as §4.4.2
// requires.
func (s *SetTypeSpec) FromWire(v wire.Value) (interface{}, error) {
	if v.Type() != wire.TSet {
		return nil, &TypeMismatch{Spec: s.TypeName(), Value: v}
	}
	wset := v.GetSet()
	out := dynamic.NewOrderedSet()
	for _, wv := range wset.Items {
		item, err := s.Elem.FromWire(wv)
		if err != nil {
			return nil, err
		}
		out.Add(item)
	}
	return out, nil
}

func (s *SetTypeSpec) ToPrimitive(v interface{}) (interface{}, error) {
	set, ok := v.(*dynamic.OrderedSet)
	if !ok {
		return nil, &TypeMismatch{Spec: s.TypeName(), Value: v}
	}
	items := set.Items()
	out := make([]interface{}, len(items))
	for i, item := range items {
		p, err := s.Elem.ToPrimitive(item)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

func (s *SetTypeSpec) FromPrimitive(p interface{}) (interface{}, error) {
	items, ok := p.([]interface{})
	if !ok {
		return nil, &TypeMismatch{Spec: s.TypeName(), Value: p}
	}
	out := dynamic.NewOrderedSet()
	for _, item := range items {
		v, err := s.Elem.FromPrimitive(item)
		if err != nil {
			return nil, err
		}
		out.Add(v)
	}
	return out, nil
}

// MapTypeSpec is "map<Key, Value>".
type MapTypeSpec struct {
	Key   TypeSpec
	Value TypeSpec
}

func (m *MapTypeSpec) TypeName() string {
	return fmt.Sprintf("map<%s, %s>", m.Key.TypeName(), m.Value.TypeName())
}
func (m *MapTypeSpec) TType() wire.Type { return wire.TMap }

func (m *MapTypeSpec) Link(scope *Scope) (TypeSpec, error) {
	k, err := m.Key.Link(scope)
	if err != nil {
		return nil, err
	}
	v, err := m.Value.Link(scope)
	if err != nil {
		return nil, err
	}
	m.Key, m.Value = k, v
	return m, nil
}

func (m *MapTypeSpec) Validate(v interface{}) error {
	om, ok := v.(*dynamic.OrderedMap)
	if !ok {
		return &TypeMismatch{Spec: m.TypeName(), Value: v}
	}
	for _, e := range om.Entries() {
		if err := m.Key.Validate(e.Key); err != nil {
			return err
		}
		if err := m.Value.Validate(e.Value); err != nil {
			return err
		}
	}
	return nil
}

func (m *MapTypeSpec) ToWire(v interface{}) (wire.Value, error) {
	om, ok := v.(*dynamic.OrderedMap)
	if !ok {
		return wire.Value{}, &TypeMismatch{Spec: m.TypeName(), Value: v}
	}
	entries := om.Entries()
	items := make([]wire.MapItem, len(entries))
	for i, e := range entries {
		k, err := m.Key.ToWire(e.Key)
		if err != nil {
			return wire.Value{}, err
		}
		val, err := m.Value.ToWire(e.Value)
		if err != nil {
			return wire.Value{}, err
		}
		items[i] = wire.MapItem{Key: k, Value: val}
	}
	return wire.NewValueMap(wire.Map{KeyType: m.Key.TType(), ValueType: m.Value.TType(), Items: items}), nil
}

func (m *MapTypeSpec) FromWire(v wire.Value) (interface{}, error) {
	if v.Type() != wire.TMap {
		return nil, &TypeMismatch{Spec: m.TypeName(), Value: v}
	}
	wmap := v.GetMap()
	out := dynamic.NewOrderedMap()
	for _, item := range wmap.Items {
		k, err := m.Key.FromWire(item.Key)
		if err != nil {
			return nil, err
		}
		val, err := m.Value.FromWire(item.Value)
		if err != nil {
			return nil, err
		}
		out.Append(k, val)
	}
	return out, nil
}

func (m *MapTypeSpec) ToPrimitive(v interface{}) (interface{}, error) {
	om, ok := v.(*dynamic.OrderedMap)
	if !ok {
		return nil, &TypeMismatch{Spec: m.TypeName(), Value: v}
	}
	out := make(map[string]interface{}, om.Len())
	for _, e := range om.Entries() {
		k, err := m.Key.ToPrimitive(e.Key)
		if err != nil {
			return nil, err
		}
		val, err := m.Value.ToPrimitive(e.Value)
		if err != nil {
			return nil, err
		}
		out[fmt.Sprint(k)] = val
	}
	return out, nil
}

func (m *MapTypeSpec) FromPrimitive(p interface{}) (interface{}, error) {
	in, ok := p.(map[string]interface{})
	if !ok {
		return nil, &TypeMismatch{Spec: m.TypeName(), Value: p}
	}
	out := dynamic.NewOrderedMap()
	for k, val := range in {
		key, err := m.Key.FromPrimitive(k)
		if err != nil {
			return nil, err
		}
		v, err := m.Value.FromPrimitive(val)
		if err != nil {
			return nil, err
		}
		out.Append(key, v)
	}
	return out, nil
}
