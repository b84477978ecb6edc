package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alpha-code/activity-service/internal/domain"
)

// errorResponse is the JSON error envelope. Kind distinguishes the failure
// class beyond the status code: the resolution pipeline alone has three
// kinds behind 404/400.
type errorResponse struct {
	Error  string       `json:"error"`
	Kind   string       `json:"kind"`
	Fields []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// writeError maps the domain error taxonomy onto HTTP statuses:
// not found 404, conflict 409, invariant violation 422, invalid input 400,
// already deleted 410. Anything unrecognized is a 500 with no detail.
func writeError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		fields := make([]fieldError, 0, len(verr.Errors))
		for _, fe := range verr.Errors {
			fields = append(fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  verr.Error(),
			Kind:   "invalid_input",
			Fields: fields,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrAlreadyDeleted):
		writeJSON(w, http.StatusGone, errorResponse{Error: err.Error(), Kind: "already_deleted"})
	case errors.Is(err, domain.ErrConflict):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error(), Kind: "conflict"})
	case errors.Is(err, domain.ErrInvariant):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Kind: "invariant_violation"})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error(), Kind: errorKind(err, "not_found")})
	case errors.Is(err, domain.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Kind: errorKind(err, "invalid_input")})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error", Kind: "internal"})
	}
}

// errorKind refines the envelope kind for pipeline stages so clients can
// tell, say, "no symbol in the photo" from "code not registered".
func errorKind(err error, fallback string) string {
	var perr *domain.PipelineError
	if errors.As(err, &perr) {
		return perr.Stage()
	}
	return fallback
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close() //nolint:errcheck
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return domain.NewValidationError("body", "malformed json: "+err.Error())
	}
	return nil
}
