// Package schema defines the request payloads accepted by the catalog and the
// rules they must satisfy before any domain code runs.
//
// Decoding and validation produce either a typed input or a *ValidationError
// listing every invalid field:
//
//	in, err := schema.DecodeCreateBook(body)
//	if err != nil {
//		// err is a *schema.ValidationError, err.Error() == "authorId: must be a positive integer, title: is required"
//	}
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// BodyField is the pseudo-field used when the request body itself is unusable.
const BodyField = "body"

// FieldError describes a single invalid field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every field that failed validation, ordered by field name.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return strings.Join(parts, ", ")
}

// Messages returns the failures keyed by field name, for re-rendering forms.
func (e *ValidationError) Messages() map[string]string {
	out := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		out[f.Field] = f.Message
	}
	return out
}

// BodyError reports a request body that could not be read at all.
func BodyError(message string) *ValidationError {
	return newValidationError(map[string]string{BodyField: message})
}

func newValidationError(fields map[string]string) *ValidationError {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	verr := &ValidationError{Fields: make([]FieldError, 0, len(names))}
	for _, name := range names {
		verr.Fields = append(verr.Fields, FieldError{Field: name, Message: fields[name]})
	}
	return verr
}

// convert turns ozzo-validation output into a *ValidationError, merging any
// decode-time failures. Decode failures win over rule failures for the same field.
func convert(err error, decodeFailures map[string]string) error {
	fields := make(map[string]string, len(decodeFailures))

	if err != nil {
		var verrs validation.Errors
		if !errors.As(err, &verrs) {
			// validation.InternalError or a rule misconfiguration
			return err
		}
		for name, ferr := range verrs {
			if ferr != nil {
				fields[name] = ferr.Error()
			}
		}
	}
	for name, msg := range decodeFailures {
		fields[name] = msg
	}

	if len(fields) == 0 {
		return nil
	}
	return newValidationError(fields)
}

// decodeJSON unmarshals body into v. Type mismatches on individual fields are
// collected instead of aborting, so they can be reported alongside rule failures.
func decodeJSON(body []byte, v any) (map[string]string, error) {
	failures := map[string]string{}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil, newValidationError(map[string]string{BodyField: "must be a JSON object"})
	}

	err := json.Unmarshal(body, v)
	if err == nil {
		return failures, nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		failures[typeErr.Field] = typeMessage(typeErr.Type)
		return failures, nil
	}
	return nil, newValidationError(map[string]string{BodyField: "must be a JSON object"})
}

func typeMessage(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return msgPositiveInt
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "must be an integer"
	case reflect.String:
		return "must be a string"
	default:
		return "has an invalid type"
	}
}
