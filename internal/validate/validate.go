package validate

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Result is the outcome of validating a payload.
type Result struct {
	OK      bool
	Message string
}

// Payload is a decoded JSON object.
type Payload map[string]interface{}

var checker = validator.New()

func pass(msg string) Result { return Result{OK: true, Message: msg} }

func fail(format string, args ...interface{}) Result {
	return Result{Message: fmt.Sprintf(format, args...)}
}

// field classifies a single payload entry.
type field struct {
	value   string
	present bool // key exists and is non-null
	isStr   bool
}

func lookup(p Payload, key string) field {
	raw, ok := p[key]
	if !ok || raw == nil {
		return field{}
	}
	s, isStr := raw.(string)
	return field{value: s, present: true, isStr: isStr}
}

// blank reports whether the field counts as missing: absent, null or a
// whitespace-only string.
func (f field) blank() bool {
	return !f.present || (f.isStr && strings.TrimSpace(f.value) == "")
}

// ToPayload converts a decoded JSON value into a Payload. Anything other than
// an object yields an empty Payload.
func ToPayload(v interface{}) Payload {
	if m, ok := v.(map[string]interface{}); ok {
		return m
	}
	return Payload{}
}
