package qrcode

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/alpha-code/activity-service/internal/cache"
	"github.com/alpha-code/activity-service/internal/domain"
)

func newTestService(t *testing.T, repo *qrRepoMock, activities *activityRepoMock, blob *blobStoreMock) *Service {
	t.Helper()
	if activities == nil {
		activities = &activityRepoMock{
			GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
				return &domain.Activity{ID: id, Status: domain.StatusActive}, nil
			},
		}
	}
	if blob == nil {
		blob = okBlobMock()
	}
	return NewService(slog.Default(), repo, activities, blob, cache.New(64))
}

func okBlobMock() *blobStoreMock {
	return &blobStoreMock{
		UploadFunc: func(ctx context.Context, key string, data []byte, contentType string) (string, error) {
			return "https://cdn.example.com/alpha-code/" + key, nil
		},
	}
}

func freeCodeRepo() *qrRepoMock {
	return &qrRepoMock{
		FindByCodeFunc: func(ctx context.Context, code string) (*domain.QrCode, error) {
			return nil, nil
		},
	}
}

func activeQrCode() *domain.QrCode {
	return &domain.QrCode{
		ID:         uuid.New(),
		Name:       "Zoo visit",
		Code:       "ZOO-2024",
		ImageURL:   "https://cdn.example.com/alpha-code/qrcodes/qr_ZOO-2024_1.png",
		AccountID:  uuid.New(),
		ActivityID: uuid.New(),
		Status:     domain.StatusActive,
		CreatedAt:  time.Now(),
	}
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestCreate_GeneratesAndUploadsImage(t *testing.T) {
	t.Parallel()

	repo := freeCodeRepo()
	repo.CreateFunc = func(ctx context.Context, c *domain.QrCode) (*domain.QrCode, error) {
		created := *c
		created.ID = uuid.New()
		return &created, nil
	}
	blob := okBlobMock()
	svc := newTestService(t, repo, nil, blob)

	got, err := svc.Create(context.Background(), CreateQrCodeInput{
		Name:       "Zoo visit",
		Code:       "ZOO-2024",
		AccountID:  uuid.New(),
		ActivityID: uuid.New(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	uploads := blob.UploadCalls()
	if len(uploads) != 1 {
		t.Fatalf("uploads: got %d, want 1", len(uploads))
	}
	up := uploads[0]
	if !strings.HasPrefix(up.Key, "qrcodes/qr_ZOO-2024_") || !strings.HasSuffix(up.Key, ".png") {
		t.Errorf("upload key %q does not match qrcodes/qr_<code>_<millis>.png", up.Key)
	}
	if up.ContentType != "image/png" {
		t.Errorf("content type: got %q, want image/png", up.ContentType)
	}
	if up.Size == 0 {
		t.Error("uploaded image must not be empty")
	}
	if !strings.Contains(got.ImageURL, up.Key) {
		t.Errorf("image url %q must point at the uploaded object", got.ImageURL)
	}
}

func TestCreate_DuplicateCode(t *testing.T) {
	t.Parallel()

	holder := activeQrCode()
	repo := &qrRepoMock{
		FindByCodeFunc: func(ctx context.Context, code string) (*domain.QrCode, error) {
			return holder, nil
		},
	}
	blob := okBlobMock()
	svc := newTestService(t, repo, nil, blob)

	_, err := svc.Create(context.Background(), CreateQrCodeInput{
		Name:       "Dup",
		Code:       holder.Code,
		AccountID:  uuid.New(),
		ActivityID: uuid.New(),
	})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("got %v, want ErrConflict", err)
	}
	if len(blob.UploadCalls()) != 0 {
		t.Error("no image may be uploaded for a conflicting code")
	}
}

func TestCreate_MissingActivity(t *testing.T) {
	t.Parallel()

	repo := freeCodeRepo()
	activities := &activityRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
			return nil, domain.ErrNotFound
		},
	}
	svc := newTestService(t, repo, activities, nil)

	_, err := svc.Create(context.Background(), CreateQrCodeInput{
		Name:       "Orphan",
		Code:       "ORPHAN-1",
		AccountID:  uuid.New(),
		ActivityID: uuid.New(),
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

// ---------------------------------------------------------------------------
// Update / Patch regeneration
// ---------------------------------------------------------------------------

func TestUpdate_RegeneratesImageOnlyWhenCodeChanges(t *testing.T) {
	t.Parallel()

	stored := activeQrCode()
	repo := freeCodeRepo()
	repo.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.QrCode, error) {
		c := *stored
		return &c, nil
	}
	repo.UpdateFunc = func(ctx context.Context, c *domain.QrCode) (*domain.QrCode, error) {
		updated := *c
		return &updated, nil
	}
	blob := okBlobMock()
	svc := newTestService(t, repo, nil, blob)
	ctx := context.Background()

	// Same code: the stored URL must survive untouched.
	got, err := svc.Update(ctx, UpdateQrCodeInput{
		ID:         stored.ID,
		Name:       "Renamed",
		Code:       stored.Code,
		AccountID:  stored.AccountID,
		ActivityID: stored.ActivityID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(blob.UploadCalls()) != 0 {
		t.Error("an unchanged code must not regenerate the image")
	}
	if got.ImageURL != stored.ImageURL {
		t.Errorf("image url: got %q, want stored %q", got.ImageURL, stored.ImageURL)
	}

	// New code: one upload, new URL.
	got, err = svc.Update(ctx, UpdateQrCodeInput{
		ID:         stored.ID,
		Name:       "Renamed",
		Code:       "ZOO-2025",
		AccountID:  stored.AccountID,
		ActivityID: stored.ActivityID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(blob.UploadCalls()) != 1 {
		t.Fatalf("uploads after code change: got %d, want 1", len(blob.UploadCalls()))
	}
	if got.ImageURL == stored.ImageURL {
		t.Error("a changed code must produce a fresh image url")
	}
}

func TestPatch_CodeChangeRegenerates(t *testing.T) {
	t.Parallel()

	stored := activeQrCode()
	repo := freeCodeRepo()
	repo.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.QrCode, error) {
		c := *stored
		return &c, nil
	}
	repo.UpdateFunc = func(ctx context.Context, c *domain.QrCode) (*domain.QrCode, error) {
		updated := *c
		return &updated, nil
	}
	blob := okBlobMock()
	svc := newTestService(t, repo, nil, blob)
	ctx := context.Background()

	name := "Renamed"
	if _, err := svc.Patch(ctx, PatchQrCodeInput{
		ID:     stored.ID,
		Params: domain.QrCodeUpdateParams{Name: &name},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(blob.UploadCalls()) != 0 {
		t.Error("a name-only patch must not regenerate the image")
	}

	newCode := "ZOO-2025"
	got, err := svc.Patch(ctx, PatchQrCodeInput{
		ID:     stored.ID,
		Params: domain.QrCodeUpdateParams{Code: &newCode},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(blob.UploadCalls()) != 1 {
		t.Fatalf("uploads after code patch: got %d, want 1", len(blob.UploadCalls()))
	}
	if got.Code != newCode {
		t.Errorf("code: got %q, want %q", got.Code, newCode)
	}
}

// ---------------------------------------------------------------------------
// Status transitions
// ---------------------------------------------------------------------------

func TestChangeStatus_RejectsDeletedStatus(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &qrRepoMock{}, nil, nil)

	_, err := svc.ChangeStatus(context.Background(), uuid.New(), domain.StatusDeleted)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("got %v, want ErrInvalidInput", err)
	}
}

func TestDelete_TwiceFails(t *testing.T) {
	t.Parallel()

	stored := activeQrCode()
	status := stored.Status
	repo := &qrRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.QrCode, error) {
			c := *stored
			c.Status = status
			return &c, nil
		},
		UpdateFunc: func(ctx context.Context, c *domain.QrCode) (*domain.QrCode, error) {
			status = c.Status
			updated := *c
			return &updated, nil
		},
	}
	svc := newTestService(t, repo, nil, nil)
	ctx := context.Background()

	if err := svc.Delete(ctx, stored.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	err := svc.Delete(ctx, stored.ID)
	if !errors.Is(err, domain.ErrAlreadyDeleted) {
		t.Fatalf("second delete: got %v, want ErrAlreadyDeleted", err)
	}
}

// ---------------------------------------------------------------------------
// GetByCode caching
// ---------------------------------------------------------------------------

func TestGetByCode_SecondCallServedFromCache(t *testing.T) {
	t.Parallel()

	stored := activeQrCode()
	repo := &qrRepoMock{
		GetByCodeFunc: func(ctx context.Context, code string) (*domain.QrCode, error) {
			c := *stored
			return &c, nil
		},
	}
	svc := newTestService(t, repo, nil, nil)
	ctx := context.Background()

	for range 2 {
		if _, err := svc.GetByCode(ctx, stored.Code); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if got := len(repo.GetByCodeCalls()); got != 1 {
		t.Errorf("GetByCode calls: got %d, want 1", got)
	}
}
