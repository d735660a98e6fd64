// Package codec holds the primitive and secondary field codecs used to turn loosely typed wire
// JSON values into typed Go values.
//
// A codec never sees an absent value: presence is decided by the entity layer before Decode is
// called. Decode failures are reported with one of the Err* sentinels so the entity layer can
// attach the field name and decide whether the failure is recoverable.
package codec

import (
	"errors"
	"fmt"
)

// decode failure reasons
var (
	ErrInvalidAddress = errors.New("invalid-address")
	ErrInvalidAmount  = errors.New("invalid-amount")
	ErrInvalidHash    = errors.New("invalid-hash")
	ErrInvalidInteger = errors.New("invalid-integer")
	ErrInvalidBlob    = errors.New("invalid-blob")
	ErrInvalidArray   = errors.New("invalid-array")
	ErrInvalidTime    = errors.New("invalid-time")
	ErrInvalidString  = errors.New("invalid-string")
	ErrInvalidObject  = errors.New("invalid-object")
)

var reasons = []error{
	ErrInvalidAddress,
	ErrInvalidAmount,
	ErrInvalidHash,
	ErrInvalidInteger,
	ErrInvalidBlob,
	ErrInvalidArray,
	ErrInvalidTime,
	ErrInvalidString,
	ErrInvalidObject,
}

// FieldDecodeError is a malformed primitive in one field.
// It never aborts the decoding of sibling fields.
type FieldDecodeError struct {
	Field  string
	Reason string
	Err    error
}

// NewFieldDecodeError wraps a codec error with the field it was raised for
func NewFieldDecodeError(field string, err error) *FieldDecodeError {
	reason := "invalid-field"
	for _, r := range reasons {
		if errors.Is(err, r) {
			reason = r.Error()
			break
		}
	}
	return &FieldDecodeError{Field: field, Reason: reason, Err: err}
}

func (e *FieldDecodeError) Error() string {
	if e.Err != nil && e.Err.Error() != e.Reason {
		return fmt.Sprintf("decode field %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("decode field %s: %s", e.Field, e.Reason)
}

func (e *FieldDecodeError) Unwrap() error {
	return e.Err
}

// Codec converts between a raw wire value and T.
// Encode is nil for read-only codecs.
type Codec[T any] struct {
	Decode func(raw interface{}) (T, error)
	Encode func(value T) interface{}
}

// Secondary is a codec layered on top of a primitive codec's typed output.
type Secondary[T, U any] struct {
	Decode func(value T) (U, error)
	Encode func(value U) T
}

// Chain layers a secondary codec on a primitive one
func Chain[T, U any](primary Codec[T], secondary Secondary[T, U]) Codec[U] {
	c := Codec[U]{
		Decode: func(raw interface{}) (U, error) {
			var zero U
			v, err := primary.Decode(raw)
			if err != nil {
				return zero, err
			}
			return secondary.Decode(v)
		},
	}
	if primary.Encode != nil && secondary.Encode != nil {
		c.Encode = func(value U) interface{} {
			return primary.Encode(secondary.Encode(value))
		}
	}
	return c
}

func invalid(reason error, raw interface{}) error {
	return fmt.Errorf("%w: %v", reason, raw)
}
