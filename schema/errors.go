package schema

import (
	"errors"
	"fmt"
)

// Sentinel errors - use with errors.Is()
var (
	ErrMissingRequiredField = errors.New("tgtypes: missing required field")
	ErrTypeMismatch         = errors.New("tgtypes: type mismatch")
	ErrUnknownVariant       = errors.New("tgtypes: unknown variant")

	// ErrPendingUpload is returned when a file that still has to be uploaded
	// is serialized as plain JSON. Such payloads go through package attach.
	ErrPendingUpload = errors.New("tgtypes: pending upload cannot be encoded as JSON")

	// ErrUnsupportedType is returned for Go types the schema cannot describe.
	ErrUnsupportedType = errors.New("tgtypes: unsupported type")
)

// MissingRequiredFieldError reports a required field that is absent (decode)
// or unset (encode).
type MissingRequiredFieldError struct {
	Entity string
	Field  string
	Path   string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("tgtypes: %s: missing required field %q (at %s)", e.Entity, e.Field, pathOrRoot(e.Path))
}

// Unwrap returns ErrMissingRequiredField for errors.Is() support.
func (e *MissingRequiredFieldError) Unwrap() error { return ErrMissingRequiredField }

// TypeMismatchError reports a raw value whose shape does not match the
// declared semantic type of its field.
type TypeMismatchError struct {
	Entity string
	Field  string
	Path   string
	Want   string
	Got    string
}

func (e *TypeMismatchError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("tgtypes: %s: want %s, got %s (at %s)", e.Entity, e.Want, e.Got, pathOrRoot(e.Path))
	}
	return fmt.Sprintf("tgtypes: %s.%s: want %s, got %s (at %s)", e.Entity, e.Field, e.Want, e.Got, pathOrRoot(e.Path))
}

// Unwrap returns ErrTypeMismatch for errors.Is() support.
func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// UnknownVariantError reports a discriminator value that matches no variant
// of a family. Only returned by codecs built WithStrictVariants.
type UnknownVariantError struct {
	Family string
	Key    string // discriminator wire name, empty for shape families
	Value  string
	Path   string
}

func (e *UnknownVariantError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("tgtypes: %s: object matches no known variant (at %s)", e.Family, pathOrRoot(e.Path))
	}
	return fmt.Sprintf("tgtypes: %s: unknown %s %q (at %s)", e.Family, e.Key, e.Value, pathOrRoot(e.Path))
}

// Unwrap returns ErrUnknownVariant for errors.Is() support.
func (e *UnknownVariantError) Unwrap() error { return ErrUnknownVariant }

func pathOrRoot(path string) string {
	if path == "" {
		return "<root>"
	}
	return path
}
