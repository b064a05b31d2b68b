package translator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
)

var (
	// ErrMissingField is returned when a request lacks a subject or verb.
	ErrMissingField = errors.New("missing required field")
	// ErrMalformedRequest is returned when a request body is not valid JSON.
	ErrMalformedRequest = errors.New("malformed request")
)

// Decode parses a JSON request body.
func Decode(data []byte) (Request, error) {
	var req Request
	if err := sonic.Unmarshal(data, &req); err != nil {
		return Request{}, fmt.Errorf("%w: %v (body: %.200s)", ErrMalformedRequest, err, string(data))
	}
	return normalize(req)
}

// normalize trims whitespace and checks required fields.
func normalize(req Request) (Request, error) {
	req.Subject = strings.TrimSpace(req.Subject)
	req.Verb = strings.TrimSpace(req.Verb)
	req.Object = strings.TrimSpace(req.Object)
	req.Tense = strings.TrimSpace(req.Tense)
	req.Aspect = strings.TrimSpace(req.Aspect)

	if req.Subject == "" {
		return req, fmt.Errorf("%w: subject", ErrMissingField)
	}
	if req.Verb == "" {
		return req, fmt.Errorf("%w: verb", ErrMissingField)
	}
	return req, nil
}
