package osmocard

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/alpha-code/activity-service/internal/cache"
	"github.com/alpha-code/activity-service/internal/domain"
)

func newTestService(t *testing.T, repo *cardRepoMock) *Service {
	t.Helper()
	return NewService(slog.Default(), repo, cache.New(64))
}

func ptr[T any](v T) *T { return &v }

func activeCard() *domain.OsmoCard {
	return &domain.OsmoCard{
		ID:        uuid.New(),
		Name:      "Red Circle",
		Color:     "red",
		Ref:       domain.ActionRef{ExpressionID: ptr(uuid.New())},
		Status:    domain.StatusActive,
		CreatedAt: time.Now(),
	}
}

func TestCreate_Success(t *testing.T) {
	t.Parallel()

	repo := &cardRepoMock{
		CreateFunc: func(ctx context.Context, c *domain.OsmoCard) (*domain.OsmoCard, error) {
			created := *c
			created.ID = uuid.New()
			return &created, nil
		},
	}
	svc := newTestService(t, repo)

	got, err := svc.Create(context.Background(), CreateCardInput{
		Name:  "Red Circle",
		Color: "red",
		Ref:   domain.ActionRef{SkillID: ptr(uuid.New())},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != domain.StatusActive {
		t.Errorf("status: got %d, want %d", got.Status, domain.StatusActive)
	}
}

func TestCreate_NoActionBound(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &cardRepoMock{})

	_, err := svc.Create(context.Background(), CreateCardInput{Name: "Red Circle"})
	if !errors.Is(err, domain.ErrInvariant) {
		t.Fatalf("got %v, want ErrInvariant", err)
	}
}

func TestUpdate_NewSlotClearsPrevious(t *testing.T) {
	t.Parallel()

	stored := activeCard()
	repo := &cardRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.OsmoCard, error) {
			c := *stored
			return &c, nil
		},
		UpdateFunc: func(ctx context.Context, c *domain.OsmoCard) (*domain.OsmoCard, error) {
			updated := *c
			return &updated, nil
		},
	}
	svc := newTestService(t, repo)

	actionID := uuid.New()
	got, err := svc.Update(context.Background(), UpdateCardInput{
		ID:    stored.ID,
		Name:  stored.Name,
		Color: stored.Color,
		Ref:   domain.ActionRef{ActionID: &actionID},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Ref.ExpressionID != nil {
		t.Error("binding an action must clear the previous expression slot")
	}
	if got.Ref.ActionID == nil || *got.Ref.ActionID != actionID {
		t.Errorf("action slot: got %v, want %v", got.Ref.ActionID, actionID)
	}
}

func TestPatch_EmptyRefKeepsBinding(t *testing.T) {
	t.Parallel()

	stored := activeCard()
	repo := &cardRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.OsmoCard, error) {
			c := *stored
			return &c, nil
		},
		UpdateFunc: func(ctx context.Context, c *domain.OsmoCard) (*domain.OsmoCard, error) {
			updated := *c
			return &updated, nil
		},
	}
	svc := newTestService(t, repo)

	got, err := svc.Patch(context.Background(), PatchCardInput{
		ID:     stored.ID,
		Params: domain.OsmoCardUpdateParams{Color: ptr("blue")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Color != "blue" {
		t.Errorf("color: got %q, want %q", got.Color, "blue")
	}
	if got.Ref != stored.Ref {
		t.Error("a patch that binds nothing must keep the stored ref")
	}
}

func TestPatch_MultiSlotRefRejected(t *testing.T) {
	t.Parallel()

	stored := activeCard()
	repo := &cardRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.OsmoCard, error) {
			c := *stored
			return &c, nil
		},
	}
	svc := newTestService(t, repo)

	_, err := svc.Patch(context.Background(), PatchCardInput{
		ID: stored.ID,
		Params: domain.OsmoCardUpdateParams{
			Ref: domain.ActionRef{
				ActionID: ptr(uuid.New()),
				DanceID:  ptr(uuid.New()),
			},
		},
	})
	if !errors.Is(err, domain.ErrInvariant) {
		t.Fatalf("got %v, want ErrInvariant", err)
	}
}

func TestList_SecondCallServedFromCache(t *testing.T) {
	t.Parallel()

	repo := &cardRepoMock{
		ListFunc: func(ctx context.Context, f domain.ListFilter) ([]domain.OsmoCard, int, error) {
			return []domain.OsmoCard{*activeCard()}, 1, nil
		},
	}
	svc := newTestService(t, repo)
	ctx := context.Background()

	for range 2 {
		if _, err := svc.List(ctx, domain.ListFilter{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if got := len(repo.ListCalls()); got != 1 {
		t.Errorf("List calls: got %d, want 1", got)
	}
}

func TestDelete_InvalidatesListCache(t *testing.T) {
	t.Parallel()

	stored := activeCard()
	status := stored.Status
	repo := &cardRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.OsmoCard, error) {
			c := *stored
			c.Status = status
			return &c, nil
		},
		UpdateFunc: func(ctx context.Context, c *domain.OsmoCard) (*domain.OsmoCard, error) {
			status = c.Status
			updated := *c
			return &updated, nil
		},
		ListFunc: func(ctx context.Context, f domain.ListFilter) ([]domain.OsmoCard, int, error) {
			return []domain.OsmoCard{}, 0, nil
		},
	}
	svc := newTestService(t, repo)
	ctx := context.Background()

	if _, err := svc.List(ctx, domain.ListFilter{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Delete(ctx, stored.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.List(ctx, domain.ListFilter{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := len(repo.ListCalls()); got != 2 {
		t.Errorf("List calls: got %d, want 2 (delete must drop the list cache)", got)
	}

	err := svc.Delete(ctx, stored.ID)
	if !errors.Is(err, domain.ErrAlreadyDeleted) {
		t.Fatalf("second delete: got %v, want ErrAlreadyDeleted", err)
	}
}
