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

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"go.uber.org/thriftrw/ast"
)

// Compile builds and links a Scope from a parsed Program (§4.5). It runs
// the two-phase compile->link protocol: every definition is first
// registered with its child references left as *TypeReference, then every
// root (types, services, constants) is linked. Every CompileError found
// along the way is collected and returned together via multierr instead of
// aborting on the first one, the same way the teacher's dispatcher start
// path aggregates independent transport failures.
func Compile(program *ast.Program, opts ...Option) (*Scope, error) {
	scope := NewScope("", opts...)

	var errs error
	defaults := make(map[*FieldSpec]ast.ConstantValue)
	var constDefs []*ast.Const

	for _, def := range program.Definitions {
		switch d := def.(type) {
		case *ast.Typedef:
			scope.AddType(d.Name, &TypedefTypeSpec{Name: d.Name, Target: convertType(d.Type)})

		case *ast.Enum:
			spec, err := buildEnum(d)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			scope.AddType(d.Name, spec)

		case *ast.Struct:
			spec, fieldDefaults, err := buildStruct(d, scope.strict)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			scope.AddType(d.Name, spec)
			for f, raw := range fieldDefaults {
				defaults[f] = raw
			}

		case *ast.Service:
			svc, fieldDefaults, err := buildService(d)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			scope.AddService(d.Name, svc)
			for f, raw := range fieldDefaults {
				defaults[f] = raw
			}

		case *ast.Const:
			constDefs = append(constDefs, d)
		}
	}
	if errs != nil {
		return nil, errs
	}

	for name, t := range scope.types {
		linked, err := t.Link(scope)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		scope.types[name] = linked
	}
	if errs != nil {
		return scope, errs
	}

	for f, raw := range defaults {
		norm, err := normalizeConstLiteral(raw)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		// Function parameters are not linked until their service is, below.
		spec, err := f.Spec.Link(scope)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		v, err := spec.FromPrimitive(norm)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		f.Default = v
	}
	if errs != nil {
		return scope, errs
	}

	for _, svc := range scope.services {
		if err := svc.Link(scope); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	if errs != nil {
		return scope, errs
	}

	for _, c := range constDefs {
		spec, err := convertType(c.Type).Link(scope)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		cs, err := NewConstSpec(c.Name, spec, c.Value)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		scope.AddConstant(c.Name, cs)
	}
	if errs != nil {
		return scope, errs
	}

	scope.logger.Debug("compiled thrift program",
		zap.Int("types", len(scope.types)),
		zap.Int("services", len(scope.services)),
		zap.Int("constants", len(scope.constants)),
	)
	return scope, nil
}

func buildEnum(d *ast.Enum) (*EnumTypeSpec, error) {
	items := make([]EnumItem, 0, len(d.Items))
	seen := make(map[string]bool, len(d.Items))
	next := int32(0)
	for _, it := range d.Items {
		if seen[it.Name] {
			return nil, newCompileError(it.Line, "%s: duplicate enum item name %q", d.Name, it.Name)
		}
		seen[it.Name] = true
		v := next
		if it.Value != nil {
			v = int32(*it.Value)
		}
		items = append(items, EnumItem{Name: it.Name, Value: v})
		next = v + 1
	}
	mode := EnumAsInteger
	for _, a := range d.Annotations {
		if a.Name == "go.primitive" && a.Value == "name" {
			mode = EnumAsName
		}
	}
	return &EnumTypeSpec{Name: d.Name, Items: items, Mode: mode}, nil
}

func buildStruct(d *ast.Struct, strict bool) (*StructTypeSpec, map[*FieldSpec]ast.ConstantValue, error) {
	kind := PlainStruct
	switch d.Type {
	case ast.UnionType:
		kind = UnionStruct
	case ast.ExceptionType:
		kind = ExceptionStruct
	}

	defaults := make(map[*FieldSpec]ast.ConstantValue)
	fields := make([]*FieldSpec, 0, len(d.Fields))
	for _, f := range d.Fields {
		fs, err := convertField(d.Name, f, strict)
		if err != nil {
			return nil, nil, err
		}
		if f.Default != nil {
			defaults[fs] = f.Default
		}
		fields = append(fields, fs)
	}
	return &StructTypeSpec{Name: d.Name, Kind: kind, Fields: fields}, defaults, nil
}

func convertField(owner string, f *ast.Field, strict bool) (*FieldSpec, error) {
	if f.ID == 0 {
		return nil, newCompileError(f.Line, "%s.%s: missing explicit field id", owner, f.Name)
	}
	if strict && f.Requiredness == ast.Unspecified {
		return nil, newCompileError(f.Line, "%s.%s: requiredness must be explicit in strict mode", owner, f.Name)
	}
	return &FieldSpec{
		ID:         int16(f.ID),
		Name:       f.Name,
		Spec:       convertType(f.Type),
		Required:   f.Requiredness == ast.Required,
		HasDefault: f.Default != nil,
	}, nil
}

func buildService(d *ast.Service) (*ServiceSpec, map[*FieldSpec]ast.ConstantValue, error) {
	functions := make(map[string]*FunctionSpec, len(d.Functions))
	defaults := make(map[*FieldSpec]ast.ConstantValue)

	for _, fn := range d.Functions {
		if _, dup := functions[fn.Name]; dup {
			return nil, nil, newCompileError(fn.Line, "%s: duplicate function name %q", d.Name, fn.Name)
		}
		if fn.OneWay && (fn.ReturnType != nil || len(fn.Exceptions) > 0) {
			return nil, nil, newCompileError(fn.Line, "%s.%s: oneway functions may not return a value or declare exceptions", d.Name, fn.Name)
		}

		argFields := make([]*FieldSpec, 0, len(fn.Parameters))
		for _, p := range fn.Parameters {
			fs, err := convertField(fmt.Sprintf("%s.%s", d.Name, fn.Name), p, false)
			if err != nil {
				return nil, nil, err
			}
			if p.Default != nil {
				defaults[fs] = p.Default
			}
			argFields = append(argFields, fs)
		}
		argsSpec := &StructTypeSpec{
			Name:   fmt.Sprintf("%s_%s_request", d.Name, fn.Name),
			Kind:   PlainStruct,
			Fields: argFields,
		}

		var resultSpec *StructTypeSpec
		if !fn.OneWay {
			var resultFields []*FieldSpec
			if fn.ReturnType != nil {
				resultFields = append(resultFields, &FieldSpec{ID: 0, Name: "success", Spec: convertType(fn.ReturnType)})
			}
			for _, ex := range fn.Exceptions {
				if ex.ID == 0 {
					return nil, nil, newCompileError(ex.Line, "%s.%s.%s: missing explicit field id", d.Name, fn.Name, ex.Name)
				}
				resultFields = append(resultFields, &FieldSpec{ID: int16(ex.ID), Name: ex.Name, Spec: convertType(ex.Type)})
			}
			resultSpec = &StructTypeSpec{
				Name:       fmt.Sprintf("%s_%s_response", d.Name, fn.Name),
				Kind:       UnionStruct,
				Fields:     resultFields,
				AllowEmpty: fn.ReturnType == nil,
			}
		}

		functions[fn.Name] = &FunctionSpec{
			Name:       fn.Name,
			ArgsSpec:   argsSpec,
			ResultSpec: resultSpec,
			Oneway:     fn.OneWay,
		}
	}

	var parentName string
	if d.Parent != nil {
		parentName = d.Parent.Name
	}
	return &ServiceSpec{Name: d.Name, Functions: functions, ParentName: parentName}, defaults, nil
}

func convertType(t ast.Type) TypeSpec {
	switch v := t.(type) {
	case ast.BaseType:
		return baseTypeSpec(v.ID)
	case *ast.BaseType:
		return baseTypeSpec(v.ID)
	case ast.MapType:
		return &MapTypeSpec{Key: convertType(v.KeyType), Value: convertType(v.ValueType)}
	case *ast.MapType:
		return &MapTypeSpec{Key: convertType(v.KeyType), Value: convertType(v.ValueType)}
	case ast.ListType:
		return &ListTypeSpec{Elem: convertType(v.ValueType)}
	case *ast.ListType:
		return &ListTypeSpec{Elem: convertType(v.ValueType)}
	case ast.SetType:
		return &SetTypeSpec{Elem: convertType(v.ValueType)}
	case *ast.SetType:
		return &SetTypeSpec{Elem: convertType(v.ValueType)}
	case ast.TypeReference:
		return &TypeReference{Name: v.Name, Line: v.Line}
	case *ast.TypeReference:
		return &TypeReference{Name: v.Name, Line: v.Line}
	default:
		panic(fmt.Sprintf("compile: unknown ast.Type %T", t))
	}
}

func baseTypeSpec(id ast.BaseTypeID) TypeSpec {
	switch id {
	case ast.BoolTypeID:
		return BoolSpec
	case ast.ByteTypeID:
		return ByteSpec
	case ast.I16TypeID:
		return I16Spec
	case ast.I32TypeID:
		return I32Spec
	case ast.I64TypeID:
		return I64Spec
	case ast.DoubleTypeID:
		return DoubleSpec
	case ast.StringTypeID:
		return StringSpec
	case ast.BinaryTypeID:
		return BinarySpec
	default:
		panic(fmt.Sprintf("compile: unknown base type id %d", id))
	}
}
