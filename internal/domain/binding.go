package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActionRef is the closed variant both binding owners carry: at most one of
// the five slots is set. A zero ActionRef ("none bound") is only legal while
// a binding is being assembled; Validate rejects it on every bind operation.
type ActionRef struct {
	ActionID         *uuid.UUID
	DanceID          *uuid.UUID
	ExpressionID     *uuid.UUID
	SkillID          *uuid.UUID
	ExtendedActionID *uuid.UUID
}

// BoundCount returns the number of non-nil slots.
func (r ActionRef) BoundCount() int {
	n := 0
	for _, id := range []*uuid.UUID{r.ActionID, r.DanceID, r.ExpressionID, r.SkillID, r.ExtendedActionID} {
		if id != nil {
			n++
		}
	}
	return n
}

// Validate enforces the exactly-one-of-five invariant.
// Called identically on create, full update and patch (after Merge).
func (r ActionRef) Validate() error {
	switch n := r.BoundCount(); {
	case n == 0:
		return ErrNoActionBound
	case n > 1:
		return ErrMultipleActionsBound
	}
	return nil
}

// Merge overlays patch onto r. A patch that binds nothing keeps the current
// ref. A patch that binds anything replaces the ref wholesale: setting one
// slot clears the other four, because a trigger represents a single behavior.
// A patch with several slots set survives the merge so that Validate can
// reject it against the resulting state.
func (r ActionRef) Merge(patch ActionRef) ActionRef {
	if patch.BoundCount() == 0 {
		return r
	}
	return patch
}

// Kind returns the bound behavior kind and id. ok is false when no slot is set.
func (r ActionRef) Kind() (kind BehaviorKind, id uuid.UUID, ok bool) {
	switch {
	case r.ActionID != nil:
		return KindAction, *r.ActionID, true
	case r.DanceID != nil:
		return KindDance, *r.DanceID, true
	case r.ExpressionID != nil:
		return KindExpression, *r.ExpressionID, true
	case r.SkillID != nil:
		return KindSkill, *r.SkillID, true
	case r.ExtendedActionID != nil:
		return KindExtendedAction, *r.ExtendedActionID, true
	}
	return "", uuid.Nil, false
}

// Joystick binds a physical controller button of one robot to one behavior.
// (AccountID, RobotID, ButtonCode) is unique among active bindings;
// soft-deleted rows do not count against the constraint.
type Joystick struct {
	ID         uuid.UUID
	AccountID  uuid.UUID
	RobotID    uuid.UUID
	ButtonCode string
	Type       string
	Ref        ActionRef
	Status     int
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

// JoystickUpdateParams carries a partial update; nil means "leave as is".
// Ref slots follow ActionRef.Merge semantics.
type JoystickUpdateParams struct {
	ButtonCode *string
	Type       *string
	Ref        ActionRef
}

// OsmoCard binds a printed card to one behavior. Cards have no owning
// account or robot and no trigger-key uniqueness; only the action-slot
// invariant applies.
type OsmoCard struct {
	ID        uuid.UUID
	Name      string
	Color     string
	Ref       ActionRef
	Status    int
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// OsmoCardUpdateParams carries a partial update; nil means "leave as is".
type OsmoCardUpdateParams struct {
	Name  *string
	Color *string
	Ref   ActionRef
}
