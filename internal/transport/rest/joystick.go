package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/alpha-code/activity-service/internal/domain"
	"github.com/alpha-code/activity-service/internal/service/joystick"
)

type joystickService interface {
	ListByOwner(ctx context.Context, accountID, robotID uuid.UUID) ([]domain.Joystick, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Joystick, error)
	Create(ctx context.Context, input joystick.CreateJoystickInput) (*domain.Joystick, error)
	Update(ctx context.Context, input joystick.UpdateJoystickInput) (*domain.Joystick, error)
	Patch(ctx context.Context, input joystick.PatchJoystickInput) (*domain.Joystick, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// JoystickHandler serves joystick button bindings.
type JoystickHandler struct {
	joysticks joystickService
	log       *slog.Logger
}

// NewJoystickHandler creates a JoystickHandler.
func NewJoystickHandler(joysticks joystickService, logger *slog.Logger) *JoystickHandler {
	return &JoystickHandler{
		joysticks: joysticks,
		log:       logger.With("handler", "joystick"),
	}
}

// List returns all active bindings of one account/robot pair.
// GET /bindings/joystick?accountId=&robotId=
func (h *JoystickHandler) List(w http.ResponseWriter, r *http.Request) {
	accountID, err := queryUUID(r, "accountId")
	if err != nil {
		writeError(w, err)
		return
	}
	robotID, err := queryUUID(r, "robotId")
	if err != nil {
		writeError(w, err)
		return
	}

	items, err := h.joysticks.ListByOwner(r.Context(), accountID, robotID)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]joystickResponse, 0, len(items))
	for i := range items {
		out = append(out, toJoystickResponse(&items[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get returns a binding by id.
// GET /bindings/joystick/{id}
func (h *JoystickHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	j, err := h.joysticks.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toJoystickResponse(j))
}

type createJoystickRequest struct {
	AccountID  uuid.UUID     `json:"accountId"`
	RobotID    uuid.UUID     `json:"robotId"`
	ButtonCode string        `json:"buttonCode"`
	Type       string        `json:"type"`
	Ref        actionRefBody `json:"ref"`
}

// Create binds a button to exactly one behavior.
// POST /bindings/joystick
func (h *JoystickHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createJoystickRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	j, err := h.joysticks.Create(r.Context(), joystick.CreateJoystickInput{
		AccountID:  req.AccountID,
		RobotID:    req.RobotID,
		ButtonCode: req.ButtonCode,
		Type:       req.Type,
		Ref:        req.Ref.toDomain(),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toJoystickResponse(j))
}

type updateJoystickRequest struct {
	ButtonCode string        `json:"buttonCode"`
	Type       string        `json:"type"`
	Ref        actionRefBody `json:"ref"`
}

// Update replaces the button, type and binding. The owner pair is immutable.
// PUT /bindings/joystick/{id}
func (h *JoystickHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req updateJoystickRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	j, err := h.joysticks.Update(r.Context(), joystick.UpdateJoystickInput{
		ID:         id,
		ButtonCode: req.ButtonCode,
		Type:       req.Type,
		Ref:        req.Ref.toDomain(),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toJoystickResponse(j))
}

type patchJoystickRequest struct {
	ButtonCode *string       `json:"buttonCode"`
	Type       *string       `json:"type"`
	Ref        actionRefBody `json:"ref"`
}

// Patch updates only the provided fields. An empty ref keeps the binding;
// any bound slot replaces it wholesale.
// PATCH /bindings/joystick/{id}
func (h *JoystickHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req patchJoystickRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	j, err := h.joysticks.Patch(r.Context(), joystick.PatchJoystickInput{
		ID: id,
		Params: domain.JoystickUpdateParams{
			ButtonCode: req.ButtonCode,
			Type:       req.Type,
			Ref:        req.Ref.toDomain(),
		},
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toJoystickResponse(j))
}

// Delete soft-deletes a binding, freeing its button for rebinding.
// DELETE /bindings/joystick/{id}
func (h *JoystickHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.joysticks.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
