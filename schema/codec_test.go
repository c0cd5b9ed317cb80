package schema

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- test entities ---

type person struct {
	ID        int64   `json:"id"`
	IsBot     bool    `json:"is_bot"`
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name,omitempty"`
	Age       *int32  `json:"age,omitempty"`
}

type shape interface {
	Variant
	shape()
}

type circle struct {
	Radius float64 `json:"radius"`
}

func (circle) Discriminator() string { return "circle" }
func (circle) shape()                {}

type square struct {
	Side  int     `json:"side"`
	Label *string `json:"label,omitempty"`
}

func (square) Discriminator() string { return "square" }
func (square) shape()                {}

type shapeUnknown struct {
	Kind string
	Raw  map[string]any
}

func (u shapeUnknown) Discriminator() string     { return u.Kind }
func (u shapeUnknown) RawFields() map[string]any { return u.Raw }
func (shapeUnknown) shape()                      {}

type drawing struct {
	Title  string     `json:"title"`
	Main   shape      `json:"main"`
	Extra  []shape    `json:"extra,omitempty"`
	Owner  *person    `json:"owner,omitempty"`
	Points []int64    `json:"points,omitempty"`
	Tags   [][]string `json:"tags,omitempty"`
	Target any        `json:"target,omitempty"`
	Image  *picture   `json:"image,omitempty"`
}

type node struct {
	Name  string `json:"name"`
	Child *node  `json:"child,omitempty"`
}

type content interface {
	Variant
	content()
}

type textContent struct {
	Text string `json:"text"`
}

func (textContent) Discriminator() string { return "text" }
func (textContent) content()              {}

type geoContent struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (geoContent) Discriminator() string { return "geo" }
func (geoContent) content()              {}

type picture struct {
	Ref  string
	Body io.Reader
}

func (p picture) FileRef() (string, bool) { return p.Ref, p.Ref != "" }

func (p *picture) UnmarshalText(b []byte) error {
	p.Ref = string(b)
	return nil
}

type post struct {
	Body content `json:"body"`
}

type base struct {
	Who *person `json:"who"`
}

type member struct {
	base
	Since int64 `json:"since,omitempty"`
}

var (
	shapes = NewFamily[shape]("Shape", "kind",
		func(value string, raw map[string]any) shape { return shapeUnknown{Kind: value, Raw: raw} },
		circle{}, square{},
	)
	contents = NewShapeFamily[content]("Content",
		func(raw map[string]any) string {
			switch {
			case raw["text"] != nil:
				return "text"
			case raw["lat"] != nil:
				return "geo"
			}
			return ""
		},
		nil,
		textContent{}, geoContent{},
	)
)

func newTestCodec(t *testing.T, opts ...Option) *Codec {
	t.Helper()
	reg, err := NewRegistry(shapes, contents)
	require.NoError(t, err)
	return NewCodec(reg, opts...)
}

func ptr[T any](v T) *T { return &v }

// --- registry ---

func TestRegistry_FieldsKeepDeclarationOrder(t *testing.T) {
	c := newTestCodec(t)

	e, err := c.Registry().Entity(reflect.TypeFor[person]())
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "is_bot", "first_name", "last_name", "age"}, e.FieldNames())

	id, ok := e.Field("id")
	require.True(t, ok)
	assert.True(t, id.Required)
	assert.Equal(t, KindInt, id.Kind())

	last, ok := e.Field("last_name")
	require.True(t, ok)
	assert.False(t, last.Required)
	assert.Equal(t, KindString, last.Kind())
}

func TestRegistry_Lookup(t *testing.T) {
	c := newTestCodec(t)
	require.NoError(t, c.Registry().Register(drawing{}))

	for _, name := range []string{"drawing", "person", "circle", "square"} {
		_, ok := c.Registry().Lookup(name)
		assert.True(t, ok, name)
	}

	e, _ := c.Registry().Lookup("drawing")
	main, _ := e.Field("main")
	assert.Equal(t, KindVariant, main.Kind())
	assert.Equal(t, "Shape", main.Type.Family.Name)

	tags, _ := e.Field("tags")
	assert.Equal(t, KindArray, tags.Kind())
	assert.Equal(t, KindArray, tags.Type.Elem.Kind)
	assert.Equal(t, KindString, tags.Type.Elem.Elem.Kind)

	image, _ := e.Field("image")
	assert.Equal(t, KindFile, image.Kind())

	fam, value, ok := mustEntity(t, c, circle{}).Variant()
	require.True(t, ok)
	assert.Equal(t, "Shape", fam.Name)
	assert.Equal(t, "circle", value)
}

func mustEntity(t *testing.T, c *Codec, v any) *Entity {
	t.Helper()
	e, err := c.Registry().Entity(reflect.TypeOf(v))
	require.NoError(t, err)
	return e
}

func TestRegistry_EmbeddedStructIsFlattened(t *testing.T) {
	c := newTestCodec(t)
	assert.Equal(t, []string{"who", "since"}, mustEntity(t, c, member{}).FieldNames())

	m := member{base: base{Who: &person{ID: 1, FirstName: "A"}}, Since: 5}
	data, err := c.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"who":{"id":1,"is_bot":false,"first_name":"A"},"since":5}`, string(data))

	var back member
	require.NoError(t, c.Unmarshal(data, &back))
	assert.Equal(t, m, back)
}

func TestRegistry_RejectsUnsupportedTypes(t *testing.T) {
	c := newTestCodec(t)

	type withMap struct {
		Meta map[string]string `json:"meta"`
	}
	type withBytes struct {
		Blob []byte `json:"blob"`
	}
	type withUnknownIface struct {
		W io.Writer `json:"w"`
	}
	type withoutTag struct {
		Name string
	}

	for _, v := range []any{withMap{}, withBytes{}, withUnknownIface{}, withoutTag{}} {
		err := c.Registry().Register(v)
		assert.ErrorIs(t, err, ErrUnsupportedType, "%T", v)
	}
}

type badVariant struct {
	Kind string `json:"kind"`
}

func (badVariant) Discriminator() string { return "bad" }
func (badVariant) shape()                {}

func TestNewRegistry_DiscriminatorDeclaredAsField(t *testing.T) {
	fam := NewFamily[shape]("BadShape", "kind", nil, badVariant{})
	_, err := NewRegistry(fam)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "declares discriminator")
}

func TestNewFamily_DuplicateDiscriminatorPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewFamily[shape]("Twice", "kind", nil, circle{}, circle{})
	})
}

func TestFamily_Values(t *testing.T) {
	assert.Equal(t, []string{"circle", "square"}, shapes.Values())
	typ, ok := shapes.VariantType("square")
	require.True(t, ok)
	assert.Equal(t, reflect.TypeFor[square](), typ)
	assert.Equal(t, reflect.TypeFor[shape](), shapes.Interface())
}

// --- encode ---

func TestEncode_OmitsUnsetOptionalFields(t *testing.T) {
	c := newTestCodec(t)

	m, err := c.Encode(person{ID: 42, FirstName: "Ann"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": int64(42), "is_bot": false, "first_name": "Ann"}, m)
	assert.NotContains(t, m, "last_name")
	assert.NotContains(t, m, "age")
}

func TestEncode_KeepsExplicitZeroOptionals(t *testing.T) {
	c := newTestCodec(t)

	m, err := c.Encode(person{ID: 0, FirstName: "", LastName: ptr(""), Age: ptr[int32](0)})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"id": int64(0), "is_bot": false, "first_name": "", "last_name": "", "age": int64(0),
	}, m)
}

func TestEncode_MissingRequiredField(t *testing.T) {
	c := newTestCodec(t)

	_, err := c.Encode(drawing{Title: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingRequiredField)

	var missing *MissingRequiredFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "drawing", missing.Entity)
	assert.Equal(t, "main", missing.Field)
	assert.Equal(t, "main", missing.Path)
}

func TestEncode_NilArrayElement(t *testing.T) {
	c := newTestCodec(t)

	_, err := c.Encode(drawing{Title: "x", Main: circle{}, Extra: []shape{circle{}, nil}})
	var missing *MissingRequiredFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "extra[1]", missing.Path)
}

func TestEncode_VariantWritesDiscriminatorFirst(t *testing.T) {
	c := newTestCodec(t)

	data, err := c.Marshal(square{Side: 3, Label: ptr("s")})
	require.NoError(t, err)
	assert.Equal(t, `{"kind":"square","side":3,"label":"s"}`, string(data))

	data, err = c.Marshal(&circle{Radius: 1.5})
	require.NoError(t, err)
	assert.Equal(t, `{"kind":"circle","radius":1.5}`, string(data))
}

func TestMarshal_KeyOrderFollowsSchema(t *testing.T) {
	c := newTestCodec(t)

	d := drawing{
		Title:  "t",
		Main:   circle{Radius: 2},
		Owner:  &person{ID: 7, FirstName: "Bo"},
		Points: []int64{3, 1, 2},
		Tags:   [][]string{{"a"}, {}},
		Target: "@chan",
	}
	data, err := c.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t,
		`{"title":"t","main":{"kind":"circle","radius":2},"owner":{"id":7,"is_bot":false,"first_name":"Bo"},"points":[3,1,2],"tags":[["a"],[]],"target":"@chan"}`,
		string(data))
}

func TestEncodeValue_Slice(t *testing.T) {
	c := newTestCodec(t)

	out, err := c.EncodeValue([]shape{circle{Radius: 1}, square{Side: 2}})
	require.NoError(t, err)
	assert.Equal(t, []any{
		map[string]any{"kind": "circle", "radius": float64(1)},
		map[string]any{"kind": "square", "side": int64(2)},
	}, out)

	_, err = c.Encode([]shape{circle{}})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestEncode_NilValues(t *testing.T) {
	c := newTestCodec(t)

	_, err := c.Encode(post{Body: nil})
	assert.ErrorIs(t, err, ErrMissingRequiredField)

	_, err = c.Encode(nil)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestEncode_FileReferenceAndPendingUpload(t *testing.T) {
	c := newTestCodec(t)

	m, err := c.Encode(drawing{Title: "t", Main: circle{}, Image: &picture{Ref: "AgAD"}})
	require.NoError(t, err)
	assert.Equal(t, "AgAD", m["image"])

	upload := &picture{Body: strings.NewReader("bytes")}
	m, err = c.Encode(drawing{Title: "t", Main: circle{}, Image: upload})
	require.NoError(t, err)
	assert.Equal(t, *upload, m["image"])

	_, err = c.Marshal(drawing{Title: "t", Main: circle{}, Image: upload})
	assert.ErrorIs(t, err, ErrPendingUpload)
	assert.Contains(t, err.Error(), "image")
}

// --- decode ---

func TestDecode_MinimalEntity(t *testing.T) {
	c := newTestCodec(t)

	var p person
	require.NoError(t, c.Unmarshal([]byte(`{"id":42,"is_bot":false,"first_name":"Ann"}`), &p))
	assert.Equal(t, person{ID: 42, FirstName: "Ann"}, p)
	assert.Nil(t, p.LastName)
	assert.Nil(t, p.Age)
}

func TestDecode_MissingRequiredField(t *testing.T) {
	c := newTestCodec(t)

	tests := []struct {
		name string
		json string
		path string
	}{
		{"absent", `{"id":1,"is_bot":true}`, "first_name"},
		{"null", `{"id":1,"is_bot":true,"first_name":null}`, "first_name"},
		{"nested", `{"title":"t","main":{"kind":"circle","radius":1},"owner":{"id":1,"first_name":"x"}}`, "owner.is_bot"},
		{"discriminator", `{"title":"t","main":{"radius":1}}`, "main.kind"},
		{"array element", `{"title":"t","main":{"kind":"circle","radius":1},"points":[1,null]}`, "points[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var target any = &person{}
			if strings.Contains(tt.json, "title") {
				target = &drawing{}
			}
			err := c.Unmarshal([]byte(tt.json), target)
			var missing *MissingRequiredFieldError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.path, missing.Path)
			assert.ErrorIs(t, err, ErrMissingRequiredField)
		})
	}
}

func TestDecode_OptionalNullIsUnset(t *testing.T) {
	c := newTestCodec(t)

	var p person
	require.NoError(t, c.Unmarshal([]byte(`{"id":1,"is_bot":false,"first_name":"A","last_name":null}`), &p))
	assert.Nil(t, p.LastName)
}

func TestDecode_TypeMismatch(t *testing.T) {
	c := newTestCodec(t)

	tests := []struct {
		name string
		json string
		path string
	}{
		{"string for integer", `{"id":"42","is_bot":false,"first_name":"A"}`, "id"},
		{"fraction for integer", `{"id":4.5,"is_bot":false,"first_name":"A"}`, "id"},
		{"number for boolean", `{"id":1,"is_bot":0,"first_name":"A"}`, "is_bot"},
		{"number for string", `{"id":1,"is_bot":false,"first_name":7}`, "first_name"},
		{"int32 overflow", `{"id":1,"is_bot":false,"first_name":"A","age":4294967296}`, "age"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p person
			err := c.Unmarshal([]byte(tt.json), &p)
			var mismatch *TypeMismatchError
			require.ErrorAs(t, err, &mismatch)
			assert.Equal(t, tt.path, mismatch.Path)
			assert.Equal(t, "person", mismatch.Entity)
			assert.ErrorIs(t, err, ErrTypeMismatch)
		})
	}
}

func TestDecode_IntegralFloatAcceptedForInteger(t *testing.T) {
	c := newTestCodec(t)

	var p person
	require.NoError(t, c.Decode(map[string]any{"id": float64(42), "is_bot": true, "first_name": "A"}, &p))
	assert.Equal(t, int64(42), p.ID)

	require.NoError(t, c.Unmarshal([]byte(`{"id":1e3,"is_bot":true,"first_name":"A"}`), &p))
	assert.Equal(t, int64(1000), p.ID)
}

func TestDecode_LargeIntegersAreExact(t *testing.T) {
	c := newTestCodec(t)

	for _, id := range []int64{1 << 52, 1<<53 + 1, 1 << 62, -1002003004005} {
		p := person{ID: id, FirstName: "x"}
		data, err := c.Marshal(p)
		require.NoError(t, err)

		var back person
		require.NoError(t, c.Unmarshal(data, &back))
		assert.Equal(t, id, back.ID)
	}
}

func TestDecode_ResetsReusedTarget(t *testing.T) {
	c := newTestCodec(t)

	p := person{ID: 1, FirstName: "Old", LastName: ptr("Stale")}
	require.NoError(t, c.Unmarshal([]byte(`{"id":2,"is_bot":false,"first_name":"New"}`), &p))
	assert.Equal(t, person{ID: 2, FirstName: "New"}, p)
}

func TestDecode_VariantDispatch(t *testing.T) {
	c := newTestCodec(t)

	var d drawing
	in := `{"title":"t","main":{"kind":"square","side":4},"extra":[{"kind":"circle","radius":0.5},{"kind":"square","side":1,"label":"x"}]}`
	require.NoError(t, c.Unmarshal([]byte(in), &d))

	assert.Equal(t, square{Side: 4}, d.Main)
	require.Len(t, d.Extra, 2)
	assert.Equal(t, circle{Radius: 0.5}, d.Extra[0])
	assert.Equal(t, square{Side: 1, Label: ptr("x")}, d.Extra[1])

	out, err := c.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))
}

func TestDecode_IntoInterfaceAndConcreteTargets(t *testing.T) {
	c := newTestCodec(t)

	var s shape
	require.NoError(t, c.Unmarshal([]byte(`{"kind":"circle","radius":3}`), &s))
	assert.Equal(t, circle{Radius: 3}, s)

	var sq square
	require.NoError(t, c.Unmarshal([]byte(`{"kind":"square","side":2}`), &sq))
	assert.Equal(t, 2, sq.Side)

	err := c.Unmarshal([]byte(`{"kind":"circle","radius":3}`), &sq)
	var mismatch *TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "kind", mismatch.Field)

	var list []shape
	require.NoError(t, c.Unmarshal([]byte(`[{"kind":"circle","radius":1},{"kind":"hexagon"}]`), &list))
	require.Len(t, list, 2)
	assert.IsType(t, shapeUnknown{}, list[1])
}

func TestDecode_UnknownVariantIsKept(t *testing.T) {
	c := newTestCodec(t)

	in := `{"title":"t","main":{"kind":"hexagon","sides":6,"meta":{"n":[1,2.5]}}}`
	var d drawing
	require.NoError(t, c.Unmarshal([]byte(in), &d))

	u, ok := d.Main.(shapeUnknown)
	require.True(t, ok)
	assert.Equal(t, "hexagon", u.Discriminator())
	assert.Equal(t, int64(6), u.Raw["sides"])
	assert.Equal(t, map[string]any{"n": []any{int64(1), 2.5}}, u.Raw["meta"])

	out, err := c.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))
}

func TestDecode_StrictRejectsUnknownVariant(t *testing.T) {
	c := newTestCodec(t, WithStrictVariants())

	var d drawing
	err := c.Unmarshal([]byte(`{"title":"t","main":{"kind":"hexagon"}}`), &d)

	var unknown *UnknownVariantError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Shape", unknown.Family)
	assert.Equal(t, "kind", unknown.Key)
	assert.Equal(t, "hexagon", unknown.Value)
	assert.Equal(t, "main", unknown.Path)
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestDecode_UnknownVariantIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := newTestCodec(t, WithLogger(logger))

	var s shape
	require.NoError(t, c.Unmarshal([]byte(`{"kind":"hexagon"}`), &s))
	assert.Contains(t, buf.String(), "unknown variant")
	assert.Contains(t, buf.String(), "family=Shape")
	assert.Contains(t, buf.String(), "value=hexagon")
}

func TestDecode_ShapeFamily(t *testing.T) {
	c := newTestCodec(t)

	var p post
	require.NoError(t, c.Unmarshal([]byte(`{"body":{"lat":1.5,"lon":2}}`), &p))
	assert.Equal(t, geoContent{Lat: 1.5, Lon: 2}, p.Body)

	data, err := c.Marshal(post{Body: textContent{Text: "hi"}})
	require.NoError(t, err)
	assert.Equal(t, `{"body":{"text":"hi"}}`, string(data))

	// No unknown holder: unmatched shapes always fail.
	err = c.Unmarshal([]byte(`{"body":{"foo":1}}`), &p)
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestDecode_SelfReferencingEntity(t *testing.T) {
	c := newTestCodec(t)

	in := `{"name":"a","child":{"name":"b","child":{"name":"c"}}}`
	var n node
	require.NoError(t, c.Unmarshal([]byte(in), &n))
	require.NotNil(t, n.Child)
	require.NotNil(t, n.Child.Child)
	assert.Equal(t, "c", n.Child.Child.Name)
	assert.Nil(t, n.Child.Child.Child)

	out, err := c.Marshal(n)
	require.NoError(t, err)
	assert.Equal(t, in, string(out))
}

func TestDecode_AnyScalar(t *testing.T) {
	c := newTestCodec(t)

	var d drawing
	require.NoError(t, c.Unmarshal([]byte(`{"title":"t","main":{"kind":"circle","radius":1},"target":-100123}`), &d))
	assert.Equal(t, int64(-100123), d.Target)

	err := c.Unmarshal([]byte(`{"title":"t","main":{"kind":"circle","radius":1},"target":{"x":1}}`), &d)
	assert.ErrorIs(t, err, ErrTypeMismatch)

	for _, raw := range []string{`false`, `2.25`} {
		err := c.Unmarshal([]byte(`{"title":"t","main":{"kind":"circle","radius":1},"target":`+raw+`}`), &d)
		var mismatch *TypeMismatchError
		require.ErrorAs(t, err, &mismatch, raw)
		assert.Equal(t, "target", mismatch.Path)
	}
}

func TestEncode_AnyScalar(t *testing.T) {
	c := newTestCodec(t)

	out, err := c.Encode(drawing{Title: "t", Main: circle{Radius: 1}, Target: 3.0})
	require.NoError(t, err)
	assert.Equal(t, int64(3), out["target"])

	_, err = c.Encode(drawing{Title: "t", Main: circle{Radius: 1}, Target: true})
	var mismatch *TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "target", mismatch.Path)
	assert.Equal(t, "bool", mismatch.Got)

	_, err = c.Encode(drawing{Title: "t", Main: circle{Radius: 1}, Target: 0.5})
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "float 0.5", mismatch.Got)
}

func TestDecode_FileReference(t *testing.T) {
	c := newTestCodec(t)

	var d drawing
	require.NoError(t, c.Unmarshal([]byte(`{"title":"t","main":{"kind":"circle","radius":1},"image":"AgAD"}`), &d))
	require.NotNil(t, d.Image)
	assert.Equal(t, "AgAD", d.Image.Ref)
}

func TestDecode_BadTargets(t *testing.T) {
	c := newTestCodec(t)

	var p person
	assert.ErrorIs(t, c.Decode(map[string]any{}, p), ErrUnsupportedType)
	assert.ErrorIs(t, c.Decode(map[string]any{}, (*person)(nil)), ErrUnsupportedType)
	assert.ErrorIs(t, c.Decode(nil, &p), ErrTypeMismatch)
	assert.ErrorIs(t, c.Decode([]any{}, &p), ErrTypeMismatch)
}

func TestUnmarshal_RejectsInvalidJSON(t *testing.T) {
	c := newTestCodec(t)

	var p person
	assert.Error(t, c.Unmarshal([]byte(`{invalid`), &p))

	err := c.Unmarshal([]byte(`{"id":1,"is_bot":false,"first_name":"A"} {}`), &p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trailing data")
}

func TestErrors_Messages(t *testing.T) {
	assert.Equal(t,
		`tgtypes: User: missing required field "id" (at message.from.id)`,
		(&MissingRequiredFieldError{Entity: "User", Field: "id", Path: "message.from.id"}).Error())
	assert.Equal(t,
		`tgtypes: User.id: want integer, got string "x" (at id)`,
		(&TypeMismatchError{Entity: "User", Field: "id", Path: "id", Want: "integer", Got: `string "x"`}).Error())
	assert.Equal(t,
		`tgtypes: ReactionType: unknown type "paid_v2" (at <root>)`,
		(&UnknownVariantError{Family: "ReactionType", Key: "type", Value: "paid_v2"}).Error())
	assert.True(t, errors.Is(&UnknownVariantError{}, ErrUnknownVariant))
}

func TestObject_KeysAndMap(t *testing.T) {
	c := newTestCodec(t)
	e := &encoder{reg: c.Registry()}

	out, err := e.root(drawing{Title: "t", Main: square{Side: 1}})
	require.NoError(t, err)
	obj, ok := out.(*Object)
	require.True(t, ok)

	assert.Equal(t, []string{"title", "main"}, obj.Keys())
	assert.Equal(t, 2, obj.Len())
	v, ok := obj.Get("title")
	require.True(t, ok)
	assert.Equal(t, "t", v)
	assert.Equal(t, map[string]any{
		"title": "t",
		"main":  map[string]any{"kind": "square", "side": int64(1)},
	}, obj.Map())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "integer", KindInt.String())
	assert.Equal(t, "variant", KindVariant.String())
	assert.Equal(t, "Kind(200)", Kind(200).String())
}
