package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnexpectedArgument is matched by errors for flags missing from the schema.
	ErrUnexpectedArgument = errors.New("unexpected argument")
	// ErrMissingValue is matched by errors for value flags at the end of the tokens.
	ErrMissingValue = errors.New("missing value")
	// ErrInvalidValue is matched by errors for values that fail conversion.
	ErrInvalidValue = errors.New("invalid value")
	// ErrNoError is returned when a message is requested from a parse that recorded no error.
	ErrNoError = errors.New("no error recorded")
)

// ErrorCode identifies the category of a recorded parse error.
type ErrorCode int

const (
	OK ErrorCode = iota
	UnexpectedArgument
	MissingString
	InvalidInteger
	MissingInteger
	InvalidDouble
	MissingDouble
)

var codeNames = map[ErrorCode]string{
	OK:                 "ok",
	UnexpectedArgument: "unexpected_argument",
	MissingString:      "missing_string",
	InvalidInteger:     "invalid_integer",
	MissingInteger:     "missing_integer",
	InvalidDouble:      "invalid_double",
	MissingDouble:      "missing_double",
}

func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("error_code(%d)", int(c))
}

// MissingCode returns the missing-value code for a value-taking kind.
func MissingCode(k Kind) ErrorCode {
	switch k {
	case KindString:
		return MissingString
	case KindInteger:
		return MissingInteger
	case KindDouble:
		return MissingDouble
	default:
		return OK
	}
}

// InvalidCode returns the invalid-value code for a numeric kind.
func InvalidCode(k Kind) ErrorCode {
	switch k {
	case KindInteger:
		return InvalidInteger
	case KindDouble:
		return InvalidDouble
	default:
		return OK
	}
}

// ValueError is returned by a marshaller that could not store a value.
// Parameter holds the offending raw token for invalid values.
type ValueError struct {
	Code      ErrorCode
	Parameter string
}

func (e *ValueError) Error() string {
	if e.Parameter == "" {
		return e.Code.String()
	}
	return fmt.Sprintf("%s: %q", e.Code, e.Parameter)
}

func (e *ValueError) Unwrap() error {
	return sentinelFor(e.Code)
}

// ArgsError is the error recorded by a parse.
// Unexpected carries every unknown identifier seen before the parse ended, sorted.
type ArgsError struct {
	Code       ErrorCode
	ArgumentID rune
	Parameter  string
	Unexpected []rune
}

func (e *ArgsError) Error() string {
	return e.Message()
}

func (e *ArgsError) Unwrap() error {
	return sentinelFor(e.Code)
}

// Message renders the user-facing description of the error.
func (e *ArgsError) Message() string {
	switch e.Code {
	case UnexpectedArgument:
		var b strings.Builder
		b.WriteString("Argument(s) -")
		for _, id := range e.Unexpected {
			b.WriteRune(id)
		}
		b.WriteString(" unexpected.")
		return b.String()
	case MissingString:
		return fmt.Sprintf("Could not find string parameter for -%c.", e.ArgumentID)
	case InvalidInteger:
		return fmt.Sprintf("Argument -%c expects an integer but was '%s'.", e.ArgumentID, e.Parameter)
	case MissingInteger:
		return fmt.Sprintf("Could not find integer parameter for -%c.", e.ArgumentID)
	case InvalidDouble:
		return fmt.Sprintf("Argument -%c expects a double but was '%s'.", e.ArgumentID, e.Parameter)
	case MissingDouble:
		return fmt.Sprintf("Could not find double parameter for -%c.", e.ArgumentID)
	default:
		return ""
	}
}

func sentinelFor(code ErrorCode) error {
	switch code {
	case UnexpectedArgument:
		return ErrUnexpectedArgument
	case MissingString, MissingInteger, MissingDouble:
		return ErrMissingValue
	case InvalidInteger, InvalidDouble:
		return ErrInvalidValue
	default:
		return nil
	}
}
