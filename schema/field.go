package schema

import (
	"reflect"
	"strconv"
)

// Kind is the semantic type of a schema field.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindEntity
	KindArray
	KindVariant
	KindFile
	KindAny
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindString:  "string",
	KindInt:     "integer",
	KindFloat:   "float",
	KindBool:    "boolean",
	KindEntity:  "object",
	KindArray:   "array",
	KindVariant: "variant",
	KindFile:    "file",
	KindAny:     "integer or string",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Type describes how a Go type maps onto the wire.
type Type struct {
	Kind Kind

	// GoType is the Go type with any pointer stripped.
	GoType reflect.Type

	// Pointer is set when values are held behind a pointer; nil means unset.
	Pointer bool

	Elem   *Type   // KindArray
	Entity *Entity // KindEntity
	Family *Family // KindVariant
}

// Field is one named slot of an entity.
type Field struct {
	Name     string // wire name, snake_case
	GoName   string
	Required bool
	Type     *Type

	index []int
}

// Kind returns the field's semantic type.
func (f Field) Kind() Kind { return f.Type.Kind }

// Entity is the schema of one record type: its fields in wire order.
type Entity struct {
	Name   string
	GoType reflect.Type
	Fields []Field

	// Set when the entity is a variant of a keyed or shape family.
	family        *Family
	discriminator string
}

// Field returns the field with the given wire name.
func (e *Entity) Field(name string) (Field, bool) {
	for _, f := range e.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// FieldNames returns the wire names in schema order.
func (e *Entity) FieldNames() []string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Name
	}
	return names
}

// Variant reports the family and discriminator value when the entity is a
// concrete variant of a polymorphic family.
func (e *Entity) Variant() (family *Family, value string, ok bool) {
	if e.family == nil {
		return nil, "", false
	}
	return e.family, e.discriminator, true
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func indexPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}
