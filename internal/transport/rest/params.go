package rest

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/alpha-code/activity-service/internal/domain"
)

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a uuid")
	}
	return id, nil
}

func queryInt(r *http.Request, name string) int {
	v, _ := strconv.Atoi(r.URL.Query().Get(name))
	return v
}

func queryStringPtr(r *http.Request, name string) *string {
	if !r.URL.Query().Has(name) {
		return nil
	}
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	return &v
}

func queryIntPtr(r *http.Request, name string) (*int, error) {
	if !r.URL.Query().Has(name) {
		return nil, nil
	}
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return nil, domain.NewValidationError(name, "must be an integer")
	}
	return &v, nil
}

func queryBoolPtr(r *http.Request, name string) (*bool, error) {
	if !r.URL.Query().Has(name) {
		return nil, nil
	}
	v, err := strconv.ParseBool(r.URL.Query().Get(name))
	if err != nil {
		return nil, domain.NewValidationError(name, "must be a boolean")
	}
	return &v, nil
}

func queryUUIDPtr(r *http.Request, name string) (*uuid.UUID, error) {
	if !r.URL.Query().Has(name) {
		return nil, nil
	}
	v, err := uuid.Parse(r.URL.Query().Get(name))
	if err != nil {
		return nil, domain.NewValidationError(name, "must be a uuid")
	}
	return &v, nil
}

func queryUUID(r *http.Request, name string) (uuid.UUID, error) {
	v, err := uuid.Parse(r.URL.Query().Get(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a uuid")
	}
	return v, nil
}
