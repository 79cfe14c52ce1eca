package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var ErrInvalidBody = errors.New("invalid request body")

type RequestDecoder interface {
	Decode(w http.ResponseWriter, r *http.Request, req any) error
}

// JSONDecoder rejects unknown fields and bodies larger than limit bytes.
type JSONDecoder struct {
	limit int64
}

func NewJSONDecoder(limit int64) RequestDecoder {
	return &JSONDecoder{limit: limit}
}

func (d *JSONDecoder) Decode(w http.ResponseWriter, r *http.Request, req any) error {
	defer r.Body.Close()

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, d.limit))
	dec.DisallowUnknownFields()

	if err := dec.Decode(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}

	return nil
}
