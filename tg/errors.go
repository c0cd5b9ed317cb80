package tg

import (
	"errors"

	"github.com/prilive-com/tgtypes/schema"
)

// Sentinel errors - use with errors.Is()
var (
	// Codec errors, shared with the schema package so callers of this
	// package need not import it.
	ErrMissingRequiredField = schema.ErrMissingRequiredField
	ErrTypeMismatch         = schema.ErrTypeMismatch
	ErrUnknownVariant       = schema.ErrUnknownVariant
	ErrPendingUpload        = schema.ErrPendingUpload
	ErrUnsupportedType      = schema.ErrUnsupportedType

	// File errors
	ErrEmptyFile    = errors.New("tgtypes: input file has no content")
	ErrEmptyFileRef = errors.New("tgtypes: empty file reference")
)

// Typed codec errors - use with errors.As()
type (
	MissingRequiredFieldError = schema.MissingRequiredFieldError
	TypeMismatchError         = schema.TypeMismatchError
	UnknownVariantError       = schema.UnknownVariantError
)
