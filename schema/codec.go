package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"
)

// Codec converts entity graphs to and from their wire representation using
// the schemas of a Registry. A Codec is immutable and safe for concurrent use;
// the values passed to it are not.
type Codec struct {
	reg    *Registry
	strict bool
	logger *slog.Logger
}

// Option configures a Codec.
type Option func(*Codec)

// WithStrictVariants makes unknown discriminator values fail with
// *UnknownVariantError instead of decoding into the family's unknown holder.
func WithStrictVariants() Option {
	return func(c *Codec) {
		c.strict = true
	}
}

// WithLogger sets a logger. The codec logs unknown-variant fallbacks at
// Debug level and nothing else.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Codec) {
		c.logger = logger
	}
}

// NewCodec creates a codec over reg.
func NewCodec(reg *Registry, opts ...Option) *Codec {
	c := &Codec{reg: reg}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	return c
}

// Registry returns the registry the codec was built over.
func (c *Codec) Registry() *Registry { return c.reg }

// Encode serializes an entity into a plain map ready for JSON encoding.
// Unset optional fields are omitted; unset required fields fail with
// *MissingRequiredFieldError. Files pending upload are left in place as
// File values for the upload layer.
func (c *Codec) Encode(v any) (map[string]any, error) {
	out, err := c.EncodeValue(v)
	if err != nil {
		return nil, err
	}
	m, ok := out.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %T does not encode to an object", ErrUnsupportedType, v)
	}
	return m, nil
}

// EncodeValue is like Encode but also accepts slices of entities and
// variants, returning whatever JSON shape the value has.
func (c *Codec) EncodeValue(v any) (any, error) {
	e := &encoder{reg: c.reg}
	out, err := e.root(v)
	if err != nil {
		return nil, err
	}
	return plain(out), nil
}

// Marshal serializes v to JSON with keys in schema order.
func (c *Codec) Marshal(v any) ([]byte, error) {
	e := &encoder{reg: c.reg, json: true}
	out, err := e.root(v)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("tgtypes: marshal: %w", err)
	}
	return data, nil
}

// Decode populates out from a JSON-decoded value (map[string]any for
// entities and variants, []any for arrays). out must be a non-nil pointer to
// an entity struct, a family interface or a slice of those.
func (c *Codec) Decode(raw any, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: decode target must be a non-nil pointer, got %T", ErrUnsupportedType, out)
	}
	target := rv.Elem()
	t, err := c.reg.describe(target.Type())
	if err != nil {
		return err
	}

	at := location{entity: target.Type().Name()}
	if raw == nil {
		return at.mismatch(t.Kind.String(), raw)
	}
	d := &decoder{c: c}
	return d.assign(at, t, raw, target)
}

// Unmarshal parses JSON and decodes it into out. Numbers are kept exact, so
// 64-bit identifiers survive.
func (c *Codec) Unmarshal(data []byte, out any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("tgtypes: unmarshal: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("tgtypes: unmarshal: trailing data after JSON value")
	}
	return c.Decode(raw, out)
}
