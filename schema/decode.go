package schema

import (
	"encoding"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
)

type decoder struct {
	c *Codec
}

// location identifies the field being decoded, for error reporting.
type location struct {
	entity string
	field  string
	path   string
}

func (l location) mismatch(want string, raw any) error {
	return &TypeMismatchError{Entity: l.entity, Field: l.field, Path: l.path, Want: want, Got: describeRaw(raw)}
}

// assign decodes raw into v, allocating when the type is held by pointer.
func (d *decoder) assign(at location, t *Type, raw any, v reflect.Value) error {
	if !t.Pointer {
		return d.fill(at, t, raw, v)
	}
	p := reflect.New(t.GoType)
	if err := d.fill(at, t, raw, p.Elem()); err != nil {
		return err
	}
	v.Set(p)
	return nil
}

func (d *decoder) fill(at location, t *Type, raw any, v reflect.Value) error {
	switch t.Kind {
	case KindString:
		s, ok := raw.(string)
		if !ok {
			return at.mismatch("string", raw)
		}
		v.SetString(s)

	case KindInt:
		n, ok := toInt64(raw)
		if !ok || v.OverflowInt(n) {
			return at.mismatch("integer", raw)
		}
		v.SetInt(n)

	case KindFloat:
		f, ok := toFloat64(raw)
		if !ok || v.OverflowFloat(f) {
			return at.mismatch("float", raw)
		}
		v.SetFloat(f)

	case KindBool:
		b, ok := raw.(bool)
		if !ok {
			return at.mismatch("boolean", raw)
		}
		v.SetBool(b)

	case KindEntity:
		m, ok := raw.(map[string]any)
		if !ok {
			return at.mismatch("object", raw)
		}
		return d.entity(at.path, t.Entity, m, v)

	case KindArray:
		return d.array(at, t, raw, v)

	case KindVariant:
		m, ok := raw.(map[string]any)
		if !ok {
			return at.mismatch("object", raw)
		}
		variant, err := d.variant(at, t.Family, m)
		if err != nil {
			return err
		}
		rv := reflect.ValueOf(variant)
		if !rv.Type().AssignableTo(v.Type()) {
			return at.mismatch(v.Type().Name(), m)
		}
		v.Set(rv)

	case KindFile:
		s, ok := raw.(string)
		if !ok {
			return at.mismatch("string", raw)
		}
		if !v.CanAddr() || !v.Addr().Type().Implements(textUnmarshalerType) {
			return fmt.Errorf("%w: %s cannot be decoded from a reference (at %s)", ErrUnsupportedType, v.Type(), pathOrRoot(at.path))
		}
		if err := v.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s)); err != nil {
			return fmt.Errorf("tgtypes: %s: %w", pathOrRoot(at.path), err)
		}

	case KindAny:
		id, ok := intOrString(raw)
		if !ok {
			return at.mismatch(KindAny.String(), raw)
		}
		v.Set(reflect.ValueOf(id))

	default:
		return fmt.Errorf("%w: %s (at %s)", ErrUnsupportedType, t.GoType, pathOrRoot(at.path))
	}
	return nil
}

func (d *decoder) entity(path string, ent *Entity, raw map[string]any, v reflect.Value) error {
	if fam := ent.family; fam != nil && fam.Key != "" {
		if got, ok := raw[fam.Key].(string); ok && got != ent.discriminator {
			return &TypeMismatchError{
				Entity: ent.Name,
				Field:  fam.Key,
				Path:   joinPath(path, fam.Key),
				Want:   strconv.Quote(ent.discriminator),
				Got:    strconv.Quote(got),
			}
		}
	}

	v.SetZero()
	for i := range ent.Fields {
		f := &ent.Fields[i]
		at := location{entity: ent.Name, field: f.Name, path: joinPath(path, f.Name)}

		rv, present := raw[f.Name]
		if !present || rv == nil {
			if f.Required {
				return &MissingRequiredFieldError{Entity: ent.Name, Field: f.Name, Path: at.path}
			}
			continue
		}
		if err := d.assign(at, f.Type, rv, v.FieldByIndex(f.index)); err != nil {
			return err
		}
	}
	return nil
}

func (d *decoder) array(at location, t *Type, raw any, v reflect.Value) error {
	items, ok := raw.([]any)
	if !ok {
		return at.mismatch("array", raw)
	}
	s := reflect.MakeSlice(t.GoType, len(items), len(items))
	for i, item := range items {
		el := location{entity: at.entity, field: at.field, path: indexPath(at.path, i)}
		if item == nil {
			return &MissingRequiredFieldError{Entity: at.entity, Field: at.field, Path: el.path}
		}
		if err := d.assign(el, t.Elem, item, s.Index(i)); err != nil {
			return err
		}
	}
	v.Set(s)
	return nil
}

func (d *decoder) variant(at location, fam *Family, raw map[string]any) (Variant, error) {
	var value string
	if fam.Key != "" {
		k, present := raw[fam.Key]
		if !present || k == nil {
			return nil, &MissingRequiredFieldError{Entity: fam.Name, Field: fam.Key, Path: joinPath(at.path, fam.Key)}
		}
		s, ok := k.(string)
		if !ok {
			return nil, (location{entity: fam.Name, field: fam.Key, path: joinPath(at.path, fam.Key)}).mismatch("string", k)
		}
		value = s
	} else {
		value = fam.discriminate(raw)
	}

	t, ok := fam.variants[value]
	if !ok {
		if d.c.strict || fam.unknown == nil {
			return nil, &UnknownVariantError{Family: fam.Name, Key: fam.Key, Value: value, Path: at.path}
		}
		d.c.logger.Debug("unknown variant, keeping raw object",
			"family", fam.Name,
			"value", value,
			"path", pathOrRoot(at.path),
		)
		return fam.unknown(value, normalizeRaw(raw)), nil
	}

	ent, err := d.c.reg.Entity(t)
	if err != nil {
		return nil, err
	}
	p := reflect.New(t).Elem()
	if err := d.entity(at.path, ent, raw, p); err != nil {
		return nil, err
	}
	return p.Interface().(Variant), nil
}

func toInt64(raw any) (int64, bool) {
	switch n := raw.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case float64:
		return floatToInt(n)
	}
	return 0, false
}

func floatToInt(f float64) (int64, bool) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func toFloat64(raw any) (float64, bool) {
	switch n := raw.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}

// intOrString accepts a string or an integral number, returned as int64.
func intOrString(raw any) (any, bool) {
	if s, ok := raw.(string); ok {
		return s, true
	}
	n, ok := toInt64(raw)
	if !ok {
		return nil, false
	}
	return n, true
}

// normalizeNumber converts json.Number into int64 or float64.
func normalizeNumber(n json.Number) any {
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}

// normalizeRaw deep-copies a raw object, resolving json.Number values.
func normalizeRaw(raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		return normalizeRaw(x)
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = normalizeValue(item)
		}
		return out
	case json.Number:
		return normalizeNumber(x)
	}
	return v
}

func describeRaw(raw any) string {
	switch x := raw.(type) {
	case nil:
		return "null"
	case string:
		return "string " + strconv.Quote(x)
	case json.Number:
		return "number " + x.String()
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	}
	return fmt.Sprintf("%T", raw)
}
