package pkg

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const maxRequestBodyBytes = 1 << 20

// DecodeJSONBody decodes the request body into dst. Malformed or empty bodies
// are reported as validation errors.
func DecodeJSONBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return fmt.Errorf("%w: request body is required", ErrValidation)
	}
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is required", ErrValidation)
		}
		return fmt.Errorf("%w: invalid JSON body: %s", ErrValidation, err)
	}
	return nil
}
