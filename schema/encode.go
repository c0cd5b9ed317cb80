package schema

import (
	"encoding/json"
	"fmt"
	"maps"
	"reflect"
	"strconv"
)

type encoder struct {
	reg *Registry

	// json is set when the output is headed straight for json.Marshal and
	// cannot carry pending uploads.
	json bool
}

func (e *encoder) root(v any) (any, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, fmt.Errorf("%w: cannot encode nil", ErrUnsupportedType)
	}
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, fmt.Errorf("%w: cannot encode nil %s", ErrUnsupportedType, rv.Type())
		}
		rv = rv.Elem()
	}
	d, err := e.reg.describe(rv.Type())
	if err != nil {
		return nil, err
	}
	return e.value("", d, rv)
}

func (e *encoder) entity(path string, ent *Entity, v reflect.Value) (*Object, error) {
	obj := newObject(len(ent.Fields) + 1)
	if ent.family != nil && ent.family.Key != "" {
		obj.set(ent.family.Key, ent.discriminator)
	}

	for i := range ent.Fields {
		f := &ent.Fields[i]
		fv := v.FieldByIndex(f.index)
		fpath := joinPath(path, f.Name)

		if unset(f, fv) {
			if f.Required {
				return nil, &MissingRequiredFieldError{Entity: ent.Name, Field: f.Name, Path: fpath}
			}
			continue
		}

		out, err := e.value(fpath, f.Type, fv)
		if err != nil {
			return nil, err
		}
		obj.set(f.Name, out)
	}
	return obj, nil
}

// unset reports whether a field holds no value. Pointers, slices and
// interfaces are unset when nil; optional plain values when zero.
func unset(f *Field, v reflect.Value) bool {
	switch {
	case f.Type.Pointer:
		return v.IsNil()
	case f.Type.Kind == KindArray, f.Type.Kind == KindAny:
		return v.IsNil()
	case f.Type.Kind == KindVariant && v.Kind() == reflect.Interface:
		return v.IsNil()
	case f.Type.Kind == KindFile:
		return v.IsZero()
	default:
		return !f.Required && v.IsZero()
	}
}

func (e *encoder) value(path string, d *Type, v reflect.Value) (any, error) {
	if d.Pointer {
		if v.IsNil() {
			return nil, &MissingRequiredFieldError{Entity: d.GoType.Name(), Path: path}
		}
		v = v.Elem()
	}

	switch d.Kind {
	case KindString:
		return v.String(), nil
	case KindInt:
		return v.Int(), nil
	case KindFloat:
		return v.Float(), nil
	case KindBool:
		return v.Bool(), nil
	case KindEntity:
		return e.entity(path, d.Entity, v)
	case KindArray:
		return e.array(path, d, v)
	case KindVariant:
		return e.variant(path, d.Family, v)
	case KindFile:
		return e.file(path, v)
	case KindAny:
		return e.scalar(path, v)
	}
	return nil, fmt.Errorf("%w: %s at %s", ErrUnsupportedType, d.GoType, pathOrRoot(path))
}

func (e *encoder) array(path string, d *Type, v reflect.Value) ([]any, error) {
	out := make([]any, v.Len())
	for i := range out {
		el := v.Index(i)
		ipath := indexPath(path, i)
		if isNilValue(el) {
			return nil, &MissingRequiredFieldError{Entity: d.Elem.GoType.Name(), Path: ipath}
		}
		item, err := e.value(ipath, d.Elem, el)
		if err != nil {
			return nil, err
		}
		out[i] = item
	}
	return out, nil
}

func (e *encoder) variant(path string, fam *Family, v reflect.Value) (any, error) {
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, &MissingRequiredFieldError{Entity: fam.Name, Field: fam.Key, Path: path}
		}
		v = v.Elem()
	}
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, &MissingRequiredFieldError{Entity: fam.Name, Field: fam.Key, Path: path}
		}
		v = v.Elem()
	}

	if u, ok := v.Interface().(Unknown); ok {
		raw := maps.Clone(u.RawFields())
		if raw == nil {
			raw = make(map[string]any, 1)
		}
		if fam.Key != "" {
			raw[fam.Key] = u.Discriminator()
		}
		return raw, nil
	}

	ent, err := e.reg.Entity(v.Type())
	if err != nil {
		return nil, err
	}
	if ent.family != fam {
		return nil, fmt.Errorf("%w: %s is not a variant of %s (at %s)", ErrUnsupportedType, v.Type(), fam.Name, pathOrRoot(path))
	}
	return e.entity(path, ent, v)
}

func (e *encoder) file(path string, v reflect.Value) (any, error) {
	f := v.Interface().(File)
	if ref, ok := f.FileRef(); ok {
		return ref, nil
	}
	if e.json {
		return nil, fmt.Errorf("%w (at %s)", ErrPendingUpload, pathOrRoot(path))
	}
	return f, nil
}

// scalar writes an integer-or-string value. Integral floats are written as
// integers; booleans and fractions are rejected.
func (e *encoder) scalar(path string, v reflect.Value) (any, error) {
	if v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.String:
		if n, ok := v.Interface().(json.Number); ok {
			if id, ok := toInt64(n); ok {
				return id, nil
			}
			break
		}
		return v.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), nil
	case reflect.Float32, reflect.Float64:
		if id, ok := floatToInt(v.Float()); ok {
			return id, nil
		}
	}
	return nil, &TypeMismatchError{Path: path, Want: KindAny.String(), Got: describeGo(v)}
}

func describeGo(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}
	if v.Kind() == reflect.Float32 || v.Kind() == reflect.Float64 {
		return "float " + strconv.FormatFloat(v.Float(), 'g', -1, 64)
	}
	return v.Type().String()
}

func isNilValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice:
		return v.IsNil()
	}
	return false
}
