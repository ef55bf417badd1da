package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const maxBodyBytes = 1 << 20

// Decoder reads a JSON request body into a payload and validates it.
type Decoder struct{}

// DecodeJSONPayload rejects unknown fields. An empty body decodes to the zero
// payload so optional bodies can be left out.
func (d Decoder) DecodeJSONPayload(r *http.Request, object any) error {
	body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	defer body.Close()

	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()
	decoder.UseNumber()

	err := decoder.Decode(object)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	return validatePayload(object)
}
