package behavior

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/alpha-code/activity-service/internal/domain"
)

func createInput() CreateBehaviorInput {
	return CreateBehaviorInput{
		Name:         "Wave",
		Code:         "WAVE_01",
		Duration:     1500,
		RobotModelID: uuid.New(),
	}
}

func notFoundRepo() *behaviorRepoMock {
	return &behaviorRepoMock{
		GetByNameFunc: func(ctx context.Context, kind domain.BehaviorKind, name string) (*domain.Behavior, error) {
			return nil, domain.ErrNotFound
		},
		GetByCodeFunc: func(ctx context.Context, kind domain.BehaviorKind, code string) (*domain.Behavior, error) {
			return nil, domain.ErrNotFound
		},
	}
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestCreate_Success_DefaultsToActive(t *testing.T) {
	t.Parallel()

	repo := notFoundRepo()
	repo.CreateFunc = func(ctx context.Context, kind domain.BehaviorKind, b *domain.Behavior) (*domain.Behavior, error) {
		created := *b
		created.ID = uuid.New()
		created.Kind = kind
		return &created, nil
	}
	svc := newTestService(t, repo, nil)

	got, err := svc.Create(context.Background(), domain.KindAction, createInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != domain.StatusActive {
		t.Errorf("status: got %d, want %d", got.Status, domain.StatusActive)
	}
	if got.RobotModelName != UnknownRobotModel {
		t.Errorf("model name: got %q, want %q", got.RobotModelName, UnknownRobotModel)
	}
	if len(repo.GetByCodeCalls()) != 1 || len(repo.GetByNameCalls()) != 1 {
		t.Error("both uniqueness checks must run")
	}
}

func TestCreate_DuplicateCode(t *testing.T) {
	t.Parallel()

	repo := notFoundRepo()
	repo.GetByCodeFunc = func(ctx context.Context, kind domain.BehaviorKind, code string) (*domain.Behavior, error) {
		return activeBehavior(kind), nil
	}
	svc := newTestService(t, repo, nil)

	_, err := svc.Create(context.Background(), domain.KindAction, createInput())
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("got %v, want ErrConflict", err)
	}
	if len(repo.GetByNameCalls()) != 0 {
		t.Error("code is checked first; the name check must not run")
	}
}

func TestCreate_DuplicateName(t *testing.T) {
	t.Parallel()

	repo := notFoundRepo()
	repo.GetByNameFunc = func(ctx context.Context, kind domain.BehaviorKind, name string) (*domain.Behavior, error) {
		return activeBehavior(kind), nil
	}
	svc := newTestService(t, repo, nil)

	_, err := svc.Create(context.Background(), domain.KindAction, createInput())
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("got %v, want ErrConflict", err)
	}
}

func TestCreate_InvalidInput(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &behaviorRepoMock{}, nil)

	_, err := svc.Create(context.Background(), domain.KindAction, CreateBehaviorInput{})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("got %v, want ErrInvalidInput", err)
	}
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %T, want *domain.ValidationError", err)
	}
}

func TestCreate_InvalidatesSearchCache(t *testing.T) {
	t.Parallel()

	repo := notFoundRepo()
	repo.SearchFunc = func(ctx context.Context, kind domain.BehaviorKind, f domain.BehaviorFilter) ([]domain.Behavior, int, error) {
		return []domain.Behavior{}, 0, nil
	}
	repo.CreateFunc = func(ctx context.Context, kind domain.BehaviorKind, b *domain.Behavior) (*domain.Behavior, error) {
		created := *b
		created.ID = uuid.New()
		return &created, nil
	}
	svc := newTestService(t, repo, nil)
	ctx := context.Background()

	if _, err := svc.Search(ctx, domain.KindAction, domain.BehaviorFilter{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Create(ctx, domain.KindAction, createInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Search(ctx, domain.KindAction, domain.BehaviorFilter{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := len(repo.SearchCalls()); got != 2 {
		t.Errorf("Search calls: got %d, want 2 (create must drop the list cache)", got)
	}
}

func TestCreate_WritesThroughIDEntry(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	repo := notFoundRepo()
	repo.CreateFunc = func(ctx context.Context, kind domain.BehaviorKind, b *domain.Behavior) (*domain.Behavior, error) {
		created := *b
		created.ID = id
		return &created, nil
	}
	repo.GetByIDFunc = func(ctx context.Context, kind domain.BehaviorKind, gid uuid.UUID) (*domain.Behavior, error) {
		t.Error("GetByID must be served from the write-through entry")
		return nil, domain.ErrNotFound
	}
	svc := newTestService(t, repo, nil)
	ctx := context.Background()

	if _, err := svc.Create(ctx, domain.KindAction, createInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := svc.GetByID(ctx, domain.KindAction, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != id {
		t.Errorf("id: got %v, want %v", got.ID, id)
	}
}

// ---------------------------------------------------------------------------
// Update / Patch
// ---------------------------------------------------------------------------

func TestUpdate_AlreadyDeleted(t *testing.T) {
	t.Parallel()

	deleted := activeBehavior(domain.KindAction)
	deleted.Status = domain.StatusDeleted
	repo := &behaviorRepoMock{
		GetByIDFunc: func(ctx context.Context, kind domain.BehaviorKind, id uuid.UUID) (*domain.Behavior, error) {
			b := *deleted
			return &b, nil
		},
	}
	svc := newTestService(t, repo, nil)

	_, err := svc.Update(context.Background(), domain.KindAction, UpdateBehaviorInput{
		ID:           deleted.ID,
		Name:         "Wave",
		Code:         "WAVE_01",
		RobotModelID: uuid.New(),
	})
	if !errors.Is(err, domain.ErrAlreadyDeleted) {
		t.Fatalf("got %v, want ErrAlreadyDeleted", err)
	}
}

func TestUpdate_UnchangedCodeSkipsUniquenessCheck(t *testing.T) {
	t.Parallel()

	stored := activeBehavior(domain.KindAction)
	repo := &behaviorRepoMock{
		GetByIDFunc: func(ctx context.Context, kind domain.BehaviorKind, id uuid.UUID) (*domain.Behavior, error) {
			b := *stored
			return &b, nil
		},
		UpdateFunc: func(ctx context.Context, kind domain.BehaviorKind, b *domain.Behavior) (*domain.Behavior, error) {
			updated := *b
			return &updated, nil
		},
	}
	svc := newTestService(t, repo, nil)

	_, err := svc.Update(context.Background(), domain.KindAction, UpdateBehaviorInput{
		ID:           stored.ID,
		Name:         stored.Name,
		Code:         "wave_01", // same code, different case
		Duration:     2000,
		RobotModelID: stored.RobotModelID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.GetByCodeCalls()) != 0 || len(repo.GetByNameCalls()) != 0 {
		t.Error("keeping name and code must not trigger uniqueness checks")
	}
}

func TestPatch_OverlaysOnlyProvidedFields(t *testing.T) {
	t.Parallel()

	stored := activeBehavior(domain.KindDance)
	repo := &behaviorRepoMock{
		GetByIDFunc: func(ctx context.Context, kind domain.BehaviorKind, id uuid.UUID) (*domain.Behavior, error) {
			b := *stored
			return &b, nil
		},
		UpdateFunc: func(ctx context.Context, kind domain.BehaviorKind, b *domain.Behavior) (*domain.Behavior, error) {
			updated := *b
			return &updated, nil
		},
	}
	svc := newTestService(t, repo, nil)

	duration := 9000
	got, err := svc.Patch(context.Background(), domain.KindDance, PatchBehaviorInput{
		ID:     stored.ID,
		Params: domain.BehaviorUpdateParams{Duration: &duration},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Duration != duration {
		t.Errorf("duration: got %d, want %d", got.Duration, duration)
	}
	if got.Name != stored.Name || got.Code != stored.Code {
		t.Error("untouched fields must keep their stored values")
	}
}

func TestPatch_EmptyPatchRejected(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &behaviorRepoMock{}, nil)

	_, err := svc.Patch(context.Background(), domain.KindDance, PatchBehaviorInput{ID: uuid.New()})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("got %v, want ErrInvalidInput", err)
	}
}

// ---------------------------------------------------------------------------
// ChangeStatus / Delete
// ---------------------------------------------------------------------------

func TestChangeStatus_RejectsDeletedStatus(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &behaviorRepoMock{}, nil)

	_, err := svc.ChangeStatus(context.Background(), domain.KindAction, uuid.New(), domain.StatusDeleted)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("got %v, want ErrInvalidInput", err)
	}
}

func TestDelete_SoftDeletesOnce(t *testing.T) {
	t.Parallel()

	stored := activeBehavior(domain.KindSkill)
	status := stored.Status
	repo := &behaviorRepoMock{
		GetByIDFunc: func(ctx context.Context, kind domain.BehaviorKind, id uuid.UUID) (*domain.Behavior, error) {
			b := *stored
			b.Status = status
			return &b, nil
		},
		UpdateFunc: func(ctx context.Context, kind domain.BehaviorKind, b *domain.Behavior) (*domain.Behavior, error) {
			status = b.Status
			updated := *b
			return &updated, nil
		},
	}
	svc := newTestService(t, repo, nil)
	ctx := context.Background()

	if err := svc.Delete(ctx, domain.KindSkill, stored.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if status != domain.StatusDeleted {
		t.Fatalf("status after delete: got %d, want %d", status, domain.StatusDeleted)
	}

	err := svc.Delete(ctx, domain.KindSkill, stored.ID)
	if !errors.Is(err, domain.ErrAlreadyDeleted) {
		t.Fatalf("second delete: got %v, want ErrAlreadyDeleted", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	t.Parallel()

	repo := &behaviorRepoMock{
		GetByIDFunc: func(ctx context.Context, kind domain.BehaviorKind, id uuid.UUID) (*domain.Behavior, error) {
			return nil, domain.ErrNotFound
		},
	}
	svc := newTestService(t, repo, nil)

	err := svc.Delete(context.Background(), domain.KindSkill, uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}
