package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/autofiltro/catalog/pkg/vehiclefilter"
)

// jsonEnvelope is the standard JSON response structure.
type jsonEnvelope struct {
	Data  any          `json:"data,omitempty"`
	Error *errorDetail `json:"error,omitempty"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(jsonEnvelope{Data: data})
}

// respondError maps domain errors onto HTTP statuses. Unrecognized errors
// are reported as a generic 500 without leaking their message.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := "internal_error"
	msg := "internal server error"

	switch {
	case errors.Is(err, ErrNotFound):
		status, code, msg = http.StatusNotFound, "not_found", err.Error()
	case errors.Is(err, ErrAlreadyExists):
		status, code, msg = http.StatusConflict, "already_exists", err.Error()
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrInvalidReference),
		errors.Is(err, vehiclefilter.ErrEmptyInput),
		errors.Is(err, vehiclefilter.ErrUnknownDimension),
		errors.Is(err, vehiclefilter.ErrValueNotInVocabulary),
		errors.Is(err, vehiclefilter.ErrIncompatibleCombination):
		status, code, msg = http.StatusBadRequest, "invalid_input", err.Error()
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(jsonEnvelope{Error: &errorDetail{Code: code, Message: msg}})
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.Join(ErrInvalidInput, err)
	}
	return nil
}
