package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/alpha-code/activity-service/internal/domain"
	"github.com/alpha-code/activity-service/internal/service/osmocard"
)

type cardService interface {
	List(ctx context.Context, f domain.ListFilter) (*osmocard.ListResult, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.OsmoCard, error)
	Create(ctx context.Context, input osmocard.CreateCardInput) (*domain.OsmoCard, error)
	Update(ctx context.Context, input osmocard.UpdateCardInput) (*domain.OsmoCard, error)
	Patch(ctx context.Context, input osmocard.PatchCardInput) (*domain.OsmoCard, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// OsmoCardHandler serves printed-card bindings.
type OsmoCardHandler struct {
	cards cardService
	log   *slog.Logger
}

// NewOsmoCardHandler creates an OsmoCardHandler.
func NewOsmoCardHandler(cards cardService, logger *slog.Logger) *OsmoCardHandler {
	return &OsmoCardHandler{
		cards: cards,
		log:   logger.With("handler", "osmocard"),
	}
}

// List returns one page of cards, newest first.
// GET /bindings/card?page=&size=&status=
func (h *OsmoCardHandler) List(w http.ResponseWriter, r *http.Request) {
	f := domain.ListFilter{
		Page: queryInt(r, "page"),
		Size: queryInt(r, "size"),
	}

	var err error
	if f.Status, err = queryIntPtr(r, "status"); err != nil {
		writeError(w, err)
		return
	}

	res, err := h.cards.List(r.Context(), f)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]cardResponse, 0, len(res.Items))
	for i := range res.Items {
		out = append(out, toCardResponse(&res.Items[i]))
	}
	writeJSON(w, http.StatusOK, pageResponse[cardResponse]{
		Items: out,
		Total: res.Total,
		Page:  res.Page,
		Size:  res.Size,
	})
}

// Get returns a card by id.
// GET /bindings/card/{id}
func (h *OsmoCardHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	c, err := h.cards.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponse(c))
}

type createCardRequest struct {
	Name  string        `json:"name"`
	Color string        `json:"color"`
	Ref   actionRefBody `json:"ref"`
}

// Create binds a card to exactly one behavior.
// POST /bindings/card
func (h *OsmoCardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCardRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	c, err := h.cards.Create(r.Context(), osmocard.CreateCardInput{
		Name:  req.Name,
		Color: req.Color,
		Ref:   req.Ref.toDomain(),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCardResponse(c))
}

type updateCardRequest struct {
	Name  string        `json:"name"`
	Color string        `json:"color"`
	Ref   actionRefBody `json:"ref"`
}

// Update replaces every mutable field of a card.
// PUT /bindings/card/{id}
func (h *OsmoCardHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req updateCardRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	c, err := h.cards.Update(r.Context(), osmocard.UpdateCardInput{
		ID:    id,
		Name:  req.Name,
		Color: req.Color,
		Ref:   req.Ref.toDomain(),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponse(c))
}

type patchCardRequest struct {
	Name  *string       `json:"name"`
	Color *string       `json:"color"`
	Ref   actionRefBody `json:"ref"`
}

// Patch updates only the provided fields. An empty ref keeps the binding.
// PATCH /bindings/card/{id}
func (h *OsmoCardHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req patchCardRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	c, err := h.cards.Patch(r.Context(), osmocard.PatchCardInput{
		ID: id,
		Params: domain.OsmoCardUpdateParams{
			Name:  req.Name,
			Color: req.Color,
			Ref:   req.Ref.toDomain(),
		},
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponse(c))
}

// Delete soft-deletes a card binding.
// DELETE /bindings/card/{id}
func (h *OsmoCardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.cards.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
