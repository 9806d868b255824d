package subtitle

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingSection is returned when a required bracketed header is
	// absent from the decoded text.
	ErrMissingSection = errors.New("missing section")
	// ErrMalformedFixedArity is returned when a positional record has the
	// wrong number of fields.
	ErrMalformedFixedArity = errors.New("malformed fixed-arity record")
	// ErrMissingField is returned when a required field is absent.
	ErrMissingField = errors.New("missing field")
	// ErrIndexOutOfRange is returned by dialogue table operations that
	// address a position that does not exist.
	ErrIndexOutOfRange = errors.New("index out of range")
)

type SectionError struct {
	Section string
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("section %s not found", e.Section)
}

func (e *SectionError) Unwrap() error {
	return ErrMissingSection
}

type ArityError struct {
	Record string
	Line   int
	Want   int
	Got    int
}

func (e *ArityError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf(
			"%s record %d: expected %d fields, got %d",
			e.Record,
			e.Line,
			e.Want,
			e.Got,
		)
	}
	return fmt.Sprintf(
		"%s record: expected %d fields, got %d",
		e.Record,
		e.Want,
		e.Got,
	)
}

func (e *ArityError) Unwrap() error {
	return ErrMalformedFixedArity
}

type FieldError struct {
	Record string
	Field  string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: field %s is not set", e.Record, e.Field)
}

func (e *FieldError) Unwrap() error {
	return ErrMissingField
}

type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	if e.Len == 0 {
		return fmt.Sprintf("index %d out of range (no dialogues)", e.Index)
	}
	return fmt.Sprintf("index %d out of range (0-%d)", e.Index, e.Len-1)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
