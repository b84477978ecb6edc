package robotcatalog

import "github.com/google/uuid"

// batchGetRequest is the wire shape of the catalog's batch lookup.
type batchGetRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

// batchGetResponse is the catalog's batch lookup result.
type batchGetResponse struct {
	Models []modelInfo `json:"models"`
}

type modelInfo struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
