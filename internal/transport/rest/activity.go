package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/alpha-code/activity-service/internal/domain"
	"github.com/alpha-code/activity-service/internal/service/activity"
)

type activityService interface {
	Search(ctx context.Context, f domain.ActivityFilter) (*activity.SearchResult, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error)
	Create(ctx context.Context, input activity.CreateActivityInput) (*domain.Activity, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ActivityHandler serves playable activities.
type ActivityHandler struct {
	activities activityService
	log        *slog.Logger
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(activities activityService, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{
		activities: activities,
		log:        logger.With("handler", "activity"),
	}
}

// Search returns one page of activities. The keyword matches name or
// description.
// GET /activities?page=&size=&keyword=&accountId=&robotModelId=&status=
func (h *ActivityHandler) Search(w http.ResponseWriter, r *http.Request) {
	f := domain.ActivityFilter{
		Page:    queryInt(r, "page"),
		Size:    queryInt(r, "size"),
		Keyword: queryStringPtr(r, "keyword"),
	}

	var err error
	if f.AccountID, err = queryUUIDPtr(r, "accountId"); err != nil {
		writeError(w, err)
		return
	}
	if f.RobotModelID, err = queryUUIDPtr(r, "robotModelId"); err != nil {
		writeError(w, err)
		return
	}
	if f.Status, err = queryIntPtr(r, "status"); err != nil {
		writeError(w, err)
		return
	}

	res, err := h.activities.Search(r.Context(), f)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]activityResponse, 0, len(res.Items))
	for i := range res.Items {
		out = append(out, toActivityResponse(&res.Items[i]))
	}
	writeJSON(w, http.StatusOK, pageResponse[activityResponse]{
		Items: out,
		Total: res.Total,
		Page:  res.Page,
		Size:  res.Size,
	})
}

// Get returns an activity by id.
// GET /activities/{id}
func (h *ActivityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	a, err := h.activities.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toActivityResponse(a))
}

type createActivityRequest struct {
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Data         json.RawMessage `json:"data"`
	Type         string          `json:"type"`
	AccountID    uuid.UUID       `json:"accountId"`
	RobotModelID *uuid.UUID      `json:"robotModelId"`
}

// Create stores an activity. The data payload is kept verbatim.
// POST /activities
func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createActivityRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	a, err := h.activities.Create(r.Context(), activity.CreateActivityInput{
		Name:         req.Name,
		Description:  req.Description,
		Data:         req.Data,
		Type:         req.Type,
		AccountID:    req.AccountID,
		RobotModelID: req.RobotModelID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toActivityResponse(a))
}

// Delete soft-deletes an activity. Codes pointing at it stay in place and
// resolve as dangling afterwards.
// DELETE /activities/{id}
func (h *ActivityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.activities.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
