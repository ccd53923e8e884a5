// internal/app/features/shared/body.go

// Package shared holds helpers used across the API feature packages.
package shared

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// maxBodyBytes caps JSON request bodies at 1 MiB.
const maxBodyBytes = 1 << 20

// DecodeBody reads the request body once and unmarshals it into both a
// typed destination and a raw map. The map feeds required-field checks;
// the struct feeds the store.
func DecodeBody(r *http.Request, dst any, raw *map[string]any) error {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return errors.New("empty request body")
	}
	if raw != nil {
		if err := json.Unmarshal(data, raw); err != nil {
			return err
		}
	}
	if dst != nil {
		if err := json.Unmarshal(data, dst); err != nil {
			return err
		}
	}
	return nil
}

// PathID parses the {id} route param as an ObjectID. The bool is false
// when the param is missing or malformed; callers treat that as a
// not-found target, not a server error.
func PathID(r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}
