// Package validation checks inbound requests before any domain logic runs.
package validation

import (
	"fmt"
	"strings"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// RequiredFieldError reports the first required field missing from a request.
type RequiredFieldError struct {
	Field string
}

func (e *RequiredFieldError) Error() string {
	return fmt.Sprintf("%s is required", fieldTitle(e.Field))
}

// CheckRequired inspects the named fields of req in order and returns a
// RequiredFieldError for the first one that is unset, without looking at the
// rest. Presence follows proto3 semantics: zero values (empty string, zero
// number, false) count as missing. An unknown field name is treated as
// missing as well.
func CheckRequired(req proto.Message, fields ...string) error {
	m := req.ProtoReflect()
	descFields := m.Descriptor().Fields()

	for _, name := range fields {
		fd := descFields.ByName(protoreflect.Name(name))
		if fd == nil || !m.Has(fd) {
			return &RequiredFieldError{Field: name}
		}
	}

	return nil
}

// fieldTitle turns a snake_case field name into the human-readable form used
// in validation messages: "first_name" becomes "First Name".
func fieldTitle(field string) string {
	words := strings.Split(field, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
