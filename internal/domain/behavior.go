package domain

import (
	"time"

	"github.com/google/uuid"
)

// Behavior is one reusable content record of any of the five kinds.
// The payload fields (icon, duration, ...) are display-only; the service
// stores them verbatim and never interprets them.
type Behavior struct {
	ID           uuid.UUID
	Kind         BehaviorKind
	Name         string
	Code         string
	Description  *string
	Duration     int
	CanInterrupt bool
	Icon         *string
	Type         *string
	Status       int
	RobotModelID uuid.UUID

	// RobotModelName is resolved per request from the robot catalog and is
	// never persisted or cached. "Unknown" when the catalog cannot name it.
	RobotModelName string

	CreatedAt time.Time
	UpdatedAt *time.Time
}

// BehaviorUpdateParams carries a partial update: nil means "leave as is".
type BehaviorUpdateParams struct {
	Name         *string
	Code         *string
	Description  *string
	Duration     *int
	CanInterrupt *bool
	Icon         *string
	Type         *string
	Status       *int
	RobotModelID *uuid.UUID
}

// RobotModel is an external catalog record, fetched on demand.
type RobotModel struct {
	ID   uuid.UUID
	Name string
}
