package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownConstruct is returned when a route element has no registered handler.
var ErrUnknownConstruct = errors.New("unknown route construct")

// ErrUnresolvedReference is returned when an indirection names an identifier that was never registered.
var ErrUnresolvedReference = errors.New("unresolved reference")

// ErrMissingAttribute is returned when a construct lacks a required attribute.
var ErrMissingAttribute = errors.New("missing required attribute")

// ErrUnexpectedConstruct is returned when a known construct appears where another kind is required.
var ErrUnexpectedConstruct = errors.New("construct not allowed here")

// ErrMalformedDocument is returned when the input is not well-formed XML.
var ErrMalformedDocument = errors.New("malformed route document")

// ConstructError locates a failure on a route element.
type ConstructError struct {
	Tag  string
	Line int
	Err  error
}

func (e *ConstructError) Error() string {
	return fmt.Sprintf("<%s> at line %d: %v", e.Tag, e.Line, e.Err)
}

func (e *ConstructError) Unwrap() error {
	return e.Err
}

// LookupKind names the symbol table a LookupError refers to.
type LookupKind string

const (
	LookupEndpoint     LookupKind = "endpoint"
	LookupCollaborator LookupKind = "collaborator"
)

// LookupError is returned by the registry when an identifier is absent.
type LookupError struct {
	Kind LookupKind
	ID   string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s %q was never registered", e.Kind, e.ID)
}

func (e *LookupError) Unwrap() error {
	return ErrUnresolvedReference
}

// AttributeError is returned when an element lacks a required attribute.
type AttributeError struct {
	Tag  string
	Attr string
	Line int
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("<%s> at line %d: attribute %q is required", e.Tag, e.Line, e.Attr)
}

func (e *AttributeError) Unwrap() error {
	return ErrMissingAttribute
}

// Locate extracts the tag and line of the innermost located error, if any.
func Locate(err error) (tag string, line int, ok bool) {
	var attrErr *AttributeError
	if errors.As(err, &attrErr) {
		return attrErr.Tag, attrErr.Line, true
	}
	var cErr *ConstructError
	if errors.As(err, &cErr) {
		return cErr.Tag, cErr.Line, true
	}
	return "", 0, false
}
