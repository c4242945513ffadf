package store

import (
	"errors"
	"fmt"
)

// Code classifies a rejected operation
type Code string

const (
	// CodeNotFound means a referenced id does not exist
	CodeNotFound Code = "not_found"
	// CodeInvalidInput means a required field is missing or malformed
	CodeInvalidInput Code = "invalid_input"
	// CodeInvalidTarget means a move or attach points somewhere it cannot go
	CodeInvalidTarget Code = "invalid_target"
)

// Error is the error type every rejected operation returns.
//
// A value with an empty Message acts as a class when used as an errors.Is
// target: it matches any Error with the same Code and, if set, the same Entity.
type Error struct {
	Code    Code
	Entity  string
	ID      string
	Message string
}

// Taxonomy sentinels, matched by code through errors.Is
var (
	ErrNotFound      = &Error{Code: CodeNotFound}
	ErrInvalidInput  = &Error{Code: CodeInvalidInput}
	ErrInvalidTarget = &Error{Code: CodeInvalidTarget}
)

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	switch {
	case e.Entity != "" && e.ID != "":
		return fmt.Sprintf("%s %s %s", e.Entity, e.ID, e.Code.text())
	case e.Entity != "":
		return fmt.Sprintf("%s %s", e.Entity, e.Code.text())
	default:
		return e.Code.text()
	}
}

// Is reports whether target is e itself or a class that covers e.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if e == t {
		return true
	}
	if t.Message != "" || t.ID != "" {
		return false
	}
	return t.Code == e.Code && (t.Entity == "" || t.Entity == e.Entity)
}

func (c Code) text() string {
	switch c {
	case CodeNotFound:
		return "not found"
	case CodeInvalidInput:
		return "invalid input"
	case CodeInvalidTarget:
		return "invalid target"
	default:
		return string(c)
	}
}

// NotFound returns the error for a missing entity
func NotFound[ID ~string](entity string, id ID) *Error {
	return &Error{Code: CodeNotFound, Entity: entity, ID: string(id)}
}

// InvalidInput returns an input-validation error with a fixed message
func InvalidInput(msg string) *Error {
	return &Error{Code: CodeInvalidInput, Message: msg}
}

// InvalidTarget returns an invalid-target error with a fixed message
func InvalidTarget(msg string) *Error {
	return &Error{Code: CodeInvalidTarget, Message: msg}
}

// CodeOf extracts the code of the first *Error in err's chain.
func CodeOf(err error) (Code, bool) {
	var se *Error
	if errors.As(err, &se) {
		return se.Code, true
	}
	return "", false
}
