package schema

import (
	"cmp"
	"encoding"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"
)

var (
	fileType            = reflect.TypeFor[File]()
	unknownType         = reflect.TypeFor[Unknown]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

// File is implemented by raw-file values: a file_id or URL reference, or a
// local stream waiting to be uploaded.
type File interface {
	// FileRef returns the wire string of a file_id or URL reference.
	// ok is false when the value is a pending upload.
	FileRef() (ref string, ok bool)
}

// Registry holds the schemas of entity types and the polymorphic families
// they reference. Schemas are derived from struct declarations once and
// cached. A Registry is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	types     map[reflect.Type]*Type
	entities  map[reflect.Type]*Entity
	byName    map[string]*Entity
	families  map[reflect.Type]*Family
	byFamily  map[string]*Family
	variantOf map[reflect.Type]*Family
}

// NewRegistry creates a registry over the given families and builds the
// schema of every variant.
func NewRegistry(families ...*Family) (*Registry, error) {
	r := &Registry{
		types:     make(map[reflect.Type]*Type),
		entities:  make(map[reflect.Type]*Entity),
		byName:    make(map[string]*Entity),
		families:  make(map[reflect.Type]*Family),
		byFamily:  make(map[string]*Family),
		variantOf: make(map[reflect.Type]*Family),
	}

	for _, f := range families {
		if _, dup := r.families[f.iface]; dup {
			return nil, fmt.Errorf("tgtypes: family %s registered twice", f.Name)
		}
		r.families[f.iface] = f
		r.byFamily[f.Name] = f
		for t := range f.kindOf {
			if other, dup := r.variantOf[t]; dup {
				return nil, fmt.Errorf("tgtypes: %s is a variant of both %s and %s", t, other.Name, f.Name)
			}
			r.variantOf[t] = f
		}
		if f.unknownType != nil {
			r.variantOf[f.unknownType] = f
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range families {
		for _, value := range f.order {
			e, err := r.entityLocked(f.variants[value])
			if err != nil {
				return nil, fmt.Errorf("tgtypes: family %s: %w", f.Name, err)
			}
			if f.Key != "" {
				if _, clash := e.Field(f.Key); clash {
					return nil, fmt.Errorf("tgtypes: family %s: variant %s declares discriminator %q as a field", f.Name, e.Name, f.Key)
				}
			}
		}
	}
	return r, nil
}

// Register builds and caches the schemas of the given values' types and of
// every entity reachable from them.
func (r *Registry) Register(values ...any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range values {
		t := reflect.TypeOf(v)
		if t == nil {
			return fmt.Errorf("%w: nil value", ErrUnsupportedType)
		}
		if _, err := r.describeLocked(t); err != nil {
			return err
		}
	}
	return nil
}

// Entity returns the schema of a struct type.
func (r *Registry) Entity(t reflect.Type) (*Entity, error) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is not a struct", ErrUnsupportedType, t)
	}

	r.mu.RLock()
	e, ok := r.entities[t]
	r.mu.RUnlock()
	if ok {
		return e, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.entityLocked(t)
}

// Lookup returns a registered entity schema by its type name.
func (r *Registry) Lookup(name string) (*Entity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byName[name]
	return e, ok
}

// Family returns a family by name.
func (r *Registry) Family(name string) (*Family, bool) {
	f, ok := r.byFamily[name]
	return f, ok
}

// Families returns all families sorted by name.
func (r *Registry) Families() []*Family {
	out := make([]*Family, 0, len(r.byFamily))
	for _, f := range r.byFamily {
		out = append(out, f)
	}
	slices.SortFunc(out, func(a, b *Family) int { return cmp.Compare(a.Name, b.Name) })
	return out
}

// Entities returns every entity schema built so far, sorted by name.
func (r *Registry) Entities() []*Entity {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Entity, 0, len(r.byName))
	for _, e := range r.byName {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b *Entity) int { return cmp.Compare(a.Name, b.Name) })
	return out
}

// describe returns the wire description of a Go type.
func (r *Registry) describe(t reflect.Type) (*Type, error) {
	r.mu.RLock()
	d, ok := r.types[t]
	r.mu.RUnlock()
	if ok {
		return d, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.describeLocked(t)
}

func (r *Registry) describeLocked(t reflect.Type) (*Type, error) {
	if d, ok := r.types[t]; ok {
		return d, nil
	}

	d := &Type{GoType: t}
	if t.Kind() == reflect.Pointer {
		d.Pointer = true
		d.GoType = t.Elem()
		switch d.GoType.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Interface, reflect.Map:
			return nil, fmt.Errorf("%w: pointer to %s", ErrUnsupportedType, d.GoType.Kind())
		}
	}
	gt := d.GoType

	switch {
	case gt.Implements(fileType):
		d.Kind = KindFile
	case gt.Kind() == reflect.Struct && gt.Implements(unknownType):
		f, ok := r.variantOf[gt]
		if !ok {
			return nil, fmt.Errorf("%w: %s is not the unknown holder of any family", ErrUnsupportedType, gt)
		}
		d.Kind = KindVariant
		d.Family = f
	default:
		switch gt.Kind() {
		case reflect.String:
			d.Kind = KindString
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			d.Kind = KindInt
		case reflect.Float32, reflect.Float64:
			d.Kind = KindFloat
		case reflect.Bool:
			d.Kind = KindBool
		case reflect.Struct:
			e, err := r.entityLocked(gt)
			if err != nil {
				return nil, err
			}
			d.Kind = KindEntity
			d.Entity = e
		case reflect.Slice:
			if gt.Elem().Kind() == reflect.Uint8 {
				return nil, fmt.Errorf("%w: byte slice %s", ErrUnsupportedType, gt)
			}
			elem, err := r.describeLocked(gt.Elem())
			if err != nil {
				return nil, err
			}
			d.Kind = KindArray
			d.Elem = elem
		case reflect.Interface:
			if gt.NumMethod() == 0 {
				d.Kind = KindAny
				break
			}
			f, ok := r.families[gt]
			if !ok {
				return nil, fmt.Errorf("%w: interface %s is not a registered family", ErrUnsupportedType, gt)
			}
			d.Kind = KindVariant
			d.Family = f
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, gt)
		}
	}

	r.types[t] = d
	return d, nil
}

func (r *Registry) entityLocked(t reflect.Type) (*Entity, error) {
	if e, ok := r.entities[t]; ok {
		return e, nil
	}

	e := &Entity{Name: t.Name(), GoType: t}
	if f, ok := r.variantOf[t]; ok {
		e.family = f
		e.discriminator = f.kindOf[t]
	}
	// Registered before its fields so self-referencing types terminate.
	r.entities[t] = e

	if err := r.collectFields(e, t, nil); err != nil {
		delete(r.entities, t)
		return nil, err
	}
	if e.Name != "" {
		r.byName[e.Name] = e
	}
	return e, nil
}

func (r *Registry) collectFields(e *Entity, t reflect.Type, index []int) error {
	for i := range t.NumField() {
		sf := t.Field(i)
		tag, hasTag := sf.Tag.Lookup("json")
		if tag == "-" {
			continue
		}
		idx := append(slices.Clip(index), i)

		if sf.Anonymous && !hasTag && sf.Type.Kind() == reflect.Struct {
			if err := r.collectFields(e, sf.Type, idx); err != nil {
				return err
			}
			continue
		}
		if !sf.IsExported() {
			continue
		}

		name, opts, _ := strings.Cut(tag, ",")
		if name == "" {
			return fmt.Errorf("%w: %s.%s has no wire name", ErrUnsupportedType, e.Name, sf.Name)
		}
		if _, dup := e.Field(name); dup {
			return fmt.Errorf("%w: %s declares %q twice", ErrUnsupportedType, e.Name, name)
		}

		d, err := r.describeLocked(sf.Type)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", e.Name, sf.Name, err)
		}
		e.Fields = append(e.Fields, Field{
			Name:     name,
			GoName:   sf.Name,
			Required: !hasOption(opts, "omitempty"),
			Type:     d,
			index:    idx,
		})
	}
	return nil
}

func hasOption(opts, want string) bool {
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if opt == want {
			return true
		}
	}
	return false
}
