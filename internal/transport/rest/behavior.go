package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/alpha-code/activity-service/internal/domain"
	"github.com/alpha-code/activity-service/internal/service/behavior"
)

type behaviorService interface {
	Search(ctx context.Context, kind domain.BehaviorKind, f domain.BehaviorFilter) (*behavior.SearchResult, error)
	GetByID(ctx context.Context, kind domain.BehaviorKind, id uuid.UUID) (*domain.Behavior, error)
	GetByName(ctx context.Context, kind domain.BehaviorKind, name string) (*domain.Behavior, error)
	GetByCode(ctx context.Context, kind domain.BehaviorKind, code string) (*domain.Behavior, error)
	Create(ctx context.Context, kind domain.BehaviorKind, input behavior.CreateBehaviorInput) (*domain.Behavior, error)
	Update(ctx context.Context, kind domain.BehaviorKind, input behavior.UpdateBehaviorInput) (*domain.Behavior, error)
	Patch(ctx context.Context, kind domain.BehaviorKind, input behavior.PatchBehaviorInput) (*domain.Behavior, error)
	ChangeStatus(ctx context.Context, kind domain.BehaviorKind, id uuid.UUID, status int) (*domain.Behavior, error)
	Delete(ctx context.Context, kind domain.BehaviorKind, id uuid.UUID) error
}

// BehaviorHandler serves the five behavior collections. The kind path
// segment selects the collection; unknown kinds are rejected downstream.
type BehaviorHandler struct {
	behaviors behaviorService
	log       *slog.Logger
}

// NewBehaviorHandler creates a BehaviorHandler.
func NewBehaviorHandler(behaviors behaviorService, logger *slog.Logger) *BehaviorHandler {
	return &BehaviorHandler{
		behaviors: behaviors,
		log:       logger.With("handler", "behavior"),
	}
}

func pathKind(r *http.Request) domain.BehaviorKind {
	return domain.BehaviorKind(chi.URLParam(r, "kind"))
}

// Search returns one page of behaviors of a kind.
// GET /behaviors/{kind}?page=&size=&name=&code=&status=&robotModelId=&canInterrupt=&duration=
func (h *BehaviorHandler) Search(w http.ResponseWriter, r *http.Request) {
	f := domain.BehaviorFilter{
		Page: queryInt(r, "page"),
		Size: queryInt(r, "size"),
		Name: queryStringPtr(r, "name"),
		Code: queryStringPtr(r, "code"),
	}

	var err error
	if f.Status, err = queryIntPtr(r, "status"); err != nil {
		writeError(w, err)
		return
	}
	if f.RobotModelID, err = queryUUIDPtr(r, "robotModelId"); err != nil {
		writeError(w, err)
		return
	}
	if f.CanInterrupt, err = queryBoolPtr(r, "canInterrupt"); err != nil {
		writeError(w, err)
		return
	}
	if f.Duration, err = queryIntPtr(r, "duration"); err != nil {
		writeError(w, err)
		return
	}

	res, err := h.behaviors.Search(r.Context(), pathKind(r), f)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toBehaviorPage(res.Items, res.Total, res.Page, res.Size))
}

// Get returns a behavior by id.
// GET /behaviors/{kind}/{id}
func (h *BehaviorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	b, err := h.behaviors.GetByID(r.Context(), pathKind(r), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toBehaviorResponse(b))
}

// GetByName returns a behavior by exact name, case-insensitive.
// GET /behaviors/{kind}/by-name/{name}
func (h *BehaviorHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	b, err := h.behaviors.GetByName(r.Context(), pathKind(r), chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toBehaviorResponse(b))
}

// GetByCode returns a behavior by exact code, case-insensitive.
// GET /behaviors/{kind}/by-code/{code}
func (h *BehaviorHandler) GetByCode(w http.ResponseWriter, r *http.Request) {
	b, err := h.behaviors.GetByCode(r.Context(), pathKind(r), chi.URLParam(r, "code"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toBehaviorResponse(b))
}

type createBehaviorRequest struct {
	Name         string    `json:"name"`
	Code         string    `json:"code"`
	Description  *string   `json:"description"`
	Duration     int       `json:"duration"`
	CanInterrupt bool      `json:"canInterrupt"`
	Icon         *string   `json:"icon"`
	Type         *string   `json:"type"`
	RobotModelID uuid.UUID `json:"robotModelId"`
	Status       *int      `json:"status"`
}

// Create registers a new behavior.
// POST /behaviors/{kind}
func (h *BehaviorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBehaviorRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	b, err := h.behaviors.Create(r.Context(), pathKind(r), behavior.CreateBehaviorInput{
		Name:         req.Name,
		Code:         req.Code,
		Description:  req.Description,
		Duration:     req.Duration,
		CanInterrupt: req.CanInterrupt,
		Icon:         req.Icon,
		Type:         req.Type,
		RobotModelID: req.RobotModelID,
		Status:       req.Status,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toBehaviorResponse(b))
}

type updateBehaviorRequest struct {
	Name         string    `json:"name"`
	Code         string    `json:"code"`
	Description  *string   `json:"description"`
	Duration     int       `json:"duration"`
	CanInterrupt bool      `json:"canInterrupt"`
	Icon         *string   `json:"icon"`
	Type         *string   `json:"type"`
	RobotModelID uuid.UUID `json:"robotModelId"`
}

// Update replaces every mutable field of a behavior.
// PUT /behaviors/{kind}/{id}
func (h *BehaviorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req updateBehaviorRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	b, err := h.behaviors.Update(r.Context(), pathKind(r), behavior.UpdateBehaviorInput{
		ID:           id,
		Name:         req.Name,
		Code:         req.Code,
		Description:  req.Description,
		Duration:     req.Duration,
		CanInterrupt: req.CanInterrupt,
		Icon:         req.Icon,
		Type:         req.Type,
		RobotModelID: req.RobotModelID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toBehaviorResponse(b))
}

type patchBehaviorRequest struct {
	Name         *string    `json:"name"`
	Code         *string    `json:"code"`
	Description  *string    `json:"description"`
	Duration     *int       `json:"duration"`
	CanInterrupt *bool      `json:"canInterrupt"`
	Icon         *string    `json:"icon"`
	Type         *string    `json:"type"`
	Status       *int       `json:"status"`
	RobotModelID *uuid.UUID `json:"robotModelId"`
}

// Patch updates only the provided fields of a behavior.
// PATCH /behaviors/{kind}/{id}
func (h *BehaviorHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req patchBehaviorRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	b, err := h.behaviors.Patch(r.Context(), pathKind(r), behavior.PatchBehaviorInput{
		ID: id,
		Params: domain.BehaviorUpdateParams{
			Name:         req.Name,
			Code:         req.Code,
			Description:  req.Description,
			Duration:     req.Duration,
			CanInterrupt: req.CanInterrupt,
			Icon:         req.Icon,
			Type:         req.Type,
			Status:       req.Status,
			RobotModelID: req.RobotModelID,
		},
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toBehaviorResponse(b))
}

type changeStatusRequest struct {
	Status int `json:"status"`
}

// ChangeStatus sets the status of a behavior. Deleting this way is rejected.
// PUT /behaviors/{kind}/{id}/status
func (h *BehaviorHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req changeStatusRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	b, err := h.behaviors.ChangeStatus(r.Context(), pathKind(r), id, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toBehaviorResponse(b))
}

// Delete soft-deletes a behavior.
// DELETE /behaviors/{kind}/{id}
func (h *BehaviorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.behaviors.Delete(r.Context(), pathKind(r), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
