package entity

import (
	"errors"
	"fmt"
)

// entity level errors
var (
	ErrRequiredFieldMissing = errors.New("required field missing")
	ErrReadOnly             = errors.New("ledger entity is read only")
	ErrNoEncoder            = errors.New("field has no encoder")
	ErrInvalidRecord        = errors.New("invalid record")
	ErrUnknownField         = errors.New("field not declared by schema")
)

// RequiredFieldMissing is raised for a required field absent from a ledger sourced entity
type RequiredFieldMissing struct {
	Entity string
	Field  string
}

func (e *RequiredFieldMissing) Error() string {
	return fmt.Sprintf("%s: required field %s missing", e.Entity, e.Field)
}

func (e *RequiredFieldMissing) Unwrap() error {
	return ErrRequiredFieldMissing
}
