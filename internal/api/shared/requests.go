package shared

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/phrazzld/bucketlist-api/internal/validate"
)

// MaxBodyBytes caps the size of a request body.
const MaxBodyBytes = 1 << 20

// ErrMalformedBody is returned when a request body is present but is not valid JSON.
var ErrMalformedBody = errors.New("malformed JSON body")

// DecodePayload reads the request body as a JSON document. An empty body,
// or a document that is not an object, yields an empty Payload so that the
// validators report the fields as missing.
func DecodePayload(w http.ResponseWriter, r *http.Request) (validate.Payload, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return validate.Payload{}, nil
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}
	return validate.ToPayload(v), nil
}

// StringField returns payload[key] when it is a string.
func StringField(p validate.Payload, key string) string {
	s, _ := p[key].(string)
	return s
}
