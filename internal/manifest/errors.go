package manifest

import (
	"errors"
	"fmt"
	"strings"
)

var errInvalidUTF8 = errors.New("invalid UTF-8")

// DecodeError reports a manifest source that could not be read or is not
// well-formed JSON.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("decoding manifest: %v", e.Err)
	}
	return fmt.Sprintf("decoding manifest %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// SchemaError reports a well-formed document that breaks a manifest rule.
// Fields names the offending field(s), e.g. "permissions" or
// "quality_profile.audio".
type SchemaError struct {
	Fields []string
	Msg    string
}

func (e *SchemaError) Error() string { return e.Msg }

func missingFieldsError(missing []string) *SchemaError {
	return &SchemaError{
		Fields: missing,
		Msg:    "manifest is missing required fields: " + strings.Join(missing, ", "),
	}
}

func fieldError(field, format string, args ...any) *SchemaError {
	return &SchemaError{
		Fields: []string{field},
		Msg:    fmt.Sprintf(format, args...),
	}
}
