package schema

import (
	"fmt"
	"reflect"
	"slices"
)

// Variant is implemented by every concrete member of a polymorphic family.
type Variant interface {
	// Discriminator returns the literal value of the family's discriminator
	// field ("emoji", "administrator", "gift_code", ...).
	Discriminator() string
}

// Unknown is implemented by the fallback holder of a family. It keeps the
// raw object of a variant this version does not know about so it can be
// passed through unchanged.
type Unknown interface {
	Variant
	RawFields() map[string]any
}

// Family is a closed set of variants sharing one interface type.
type Family struct {
	Name string

	// Key is the discriminator wire name ("type", "status", "source").
	// Empty for families told apart by shape.
	Key string

	iface       reflect.Type
	variants    map[string]reflect.Type
	kindOf      map[reflect.Type]string
	order       []string
	classify    func(raw map[string]any) string
	unknown     func(value string, raw map[string]any) Variant
	unknownType reflect.Type
}

// NewFamily declares a family whose variants are selected by the string
// value of the key field. unknown builds the fallback holder for values no
// variant claims; it may be nil, in which case such values fail to decode.
//
// NewFamily panics if two variants report the same discriminator.
func NewFamily[I Variant](name, key string, unknown func(value string, raw map[string]any) I, variants ...I) *Family {
	f := newFamily(name, unknown, variants)
	f.Key = key
	return f
}

// NewShapeFamily declares a family whose variants carry no discriminator on
// the wire. classify inspects the raw object and returns the discriminator
// of the matching variant, or "" when none matches.
func NewShapeFamily[I Variant](name string, classify func(raw map[string]any) string, unknown func(value string, raw map[string]any) I, variants ...I) *Family {
	f := newFamily(name, unknown, variants)
	f.classify = classify
	return f
}

func newFamily[I Variant](name string, unknown func(string, map[string]any) I, variants []I) *Family {
	f := &Family{
		Name:     name,
		iface:    reflect.TypeFor[I](),
		variants: make(map[string]reflect.Type, len(variants)),
		kindOf:   make(map[reflect.Type]string, len(variants)),
	}
	for _, v := range variants {
		t := reflect.TypeOf(v)
		if t == nil || t.Kind() != reflect.Struct {
			panic(fmt.Sprintf("tgtypes: family %s: variant %v is not a struct value", name, t))
		}
		value := v.Discriminator()
		if prev, dup := f.variants[value]; dup {
			panic(fmt.Sprintf("tgtypes: family %s: %s and %s share discriminator %q", name, prev, t, value))
		}
		f.variants[value] = t
		f.kindOf[t] = value
		f.order = append(f.order, value)
	}
	if unknown != nil {
		f.unknown = func(value string, raw map[string]any) Variant { return unknown(value, raw) }
		f.unknownType = reflect.TypeOf(unknown("", nil))
	}
	return f
}

// Values returns the known discriminator values in registration order.
func (f *Family) Values() []string {
	return slices.Clone(f.order)
}

// Interface returns the Go interface type shared by the variants.
func (f *Family) Interface() reflect.Type { return f.iface }

// VariantType returns the Go type registered for a discriminator value.
func (f *Family) VariantType(value string) (reflect.Type, bool) {
	t, ok := f.variants[value]
	return t, ok
}

func (f *Family) discriminate(raw map[string]any) string {
	if f.classify != nil {
		return f.classify(raw)
	}
	s, _ := raw[f.Key].(string)
	return s
}
