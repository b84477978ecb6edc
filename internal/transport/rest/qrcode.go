package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/alpha-code/activity-service/internal/domain"
	"github.com/alpha-code/activity-service/internal/service/qrcode"
)

// maxImageSize caps uploaded photos at 10 MiB.
const maxImageSize = 10 << 20

type qrCodeService interface {
	List(ctx context.Context, f domain.ListFilter) (*qrcode.ListResult, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.QrCode, error)
	GetByCode(ctx context.Context, code string) (*domain.QrCode, error)
	Create(ctx context.Context, input qrcode.CreateQrCodeInput) (*domain.QrCode, error)
	Update(ctx context.Context, input qrcode.UpdateQrCodeInput) (*domain.QrCode, error)
	Patch(ctx context.Context, input qrcode.PatchQrCodeInput) (*domain.QrCode, error)
	ChangeStatus(ctx context.Context, id uuid.UUID, status int) (*domain.QrCode, error)
	Disable(ctx context.Context, id uuid.UUID) (*domain.QrCode, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ResolveImage(ctx context.Context, image []byte) (*domain.Activity, error)
}

// QrCodeHandler serves code records and the photo resolution endpoint.
type QrCodeHandler struct {
	codes qrCodeService
	log   *slog.Logger
}

// NewQrCodeHandler creates a QrCodeHandler.
func NewQrCodeHandler(codes qrCodeService, logger *slog.Logger) *QrCodeHandler {
	return &QrCodeHandler{
		codes: codes,
		log:   logger.With("handler", "qrcode"),
	}
}

// List returns one page of code records, newest first.
// GET /qr-codes?page=&size=&status=
func (h *QrCodeHandler) List(w http.ResponseWriter, r *http.Request) {
	f := domain.ListFilter{
		Page: queryInt(r, "page"),
		Size: queryInt(r, "size"),
	}

	var err error
	if f.Status, err = queryIntPtr(r, "status"); err != nil {
		writeError(w, err)
		return
	}

	res, err := h.codes.List(r.Context(), f)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]qrCodeResponse, 0, len(res.Items))
	for i := range res.Items {
		out = append(out, toQrCodeResponse(&res.Items[i]))
	}
	writeJSON(w, http.StatusOK, pageResponse[qrCodeResponse]{
		Items: out,
		Total: res.Total,
		Page:  res.Page,
		Size:  res.Size,
	})
}

// Get returns a code record by id.
// GET /qr-codes/{id}
func (h *QrCodeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	c, err := h.codes.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toQrCodeResponse(c))
}

// GetByCode returns a code record by its exact code string, case-sensitive.
// GET /qr-codes/by-code/{code}
func (h *QrCodeHandler) GetByCode(w http.ResponseWriter, r *http.Request) {
	c, err := h.codes.GetByCode(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toQrCodeResponse(c))
}

type createQrCodeRequest struct {
	Name       string    `json:"name"`
	Code       string    `json:"code"`
	Color      *string   `json:"color"`
	AccountID  uuid.UUID `json:"accountId"`
	ActivityID uuid.UUID `json:"activityId"`
}

// Create registers a code, generates its PNG and uploads it.
// POST /qr-codes
func (h *QrCodeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createQrCodeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	c, err := h.codes.Create(r.Context(), qrcode.CreateQrCodeInput{
		Name:       req.Name,
		Code:       req.Code,
		Color:      req.Color,
		AccountID:  req.AccountID,
		ActivityID: req.ActivityID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toQrCodeResponse(c))
}

type updateQrCodeRequest struct {
	Name       string    `json:"name"`
	Code       string    `json:"code"`
	Color      *string   `json:"color"`
	AccountID  uuid.UUID `json:"accountId"`
	ActivityID uuid.UUID `json:"activityId"`
}

// Update replaces every mutable field. The image is regenerated only when
// the code string changes.
// PUT /qr-codes/{id}
func (h *QrCodeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req updateQrCodeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	c, err := h.codes.Update(r.Context(), qrcode.UpdateQrCodeInput{
		ID:         id,
		Name:       req.Name,
		Code:       req.Code,
		Color:      req.Color,
		AccountID:  req.AccountID,
		ActivityID: req.ActivityID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toQrCodeResponse(c))
}

type patchQrCodeRequest struct {
	Name       *string    `json:"name"`
	Code       *string    `json:"code"`
	Color      *string    `json:"color"`
	AccountID  *uuid.UUID `json:"accountId"`
	ActivityID *uuid.UUID `json:"activityId"`
}

// Patch updates only the provided fields.
// PATCH /qr-codes/{id}
func (h *QrCodeHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req patchQrCodeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	c, err := h.codes.Patch(r.Context(), qrcode.PatchQrCodeInput{
		ID: id,
		Params: domain.QrCodeUpdateParams{
			Name:       req.Name,
			Code:       req.Code,
			Color:      req.Color,
			AccountID:  req.AccountID,
			ActivityID: req.ActivityID,
		},
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toQrCodeResponse(c))
}

// ChangeStatus sets the status of a code record to active or disabled.
// PUT /qr-codes/{id}/status
func (h *QrCodeHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
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

	c, err := h.codes.ChangeStatus(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toQrCodeResponse(c))
}

// Disable takes a code out of circulation without deleting it.
// POST /qr-codes/{id}/disable
func (h *QrCodeHandler) Disable(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	c, err := h.codes.Disable(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toQrCodeResponse(c))
}

// Delete soft-deletes a code record.
// DELETE /qr-codes/{id}
func (h *QrCodeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.codes.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ResolveImage runs the full photo-to-activity pipeline: decode the QR
// symbol out of the uploaded image, look up the code, return its activity.
// POST /qr-codes/by-image, multipart field "image".
func (h *QrCodeHandler) ResolveImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize)
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		writeError(w, domain.NewValidationError("image", "multipart form required, max 10 MiB"))
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		writeError(w, domain.NewValidationError("image", "file field required"))
		return
	}
	defer file.Close() //nolint:errcheck

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, domain.NewValidationError("image", "unreadable upload"))
		return
	}

	a, err := h.codes.ResolveImage(r.Context(), data)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toActivityResponse(a))
}
