package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Activity is a playable unit of content. Data is an opaque structured
// payload: stored and returned verbatim, never interpreted here.
type Activity struct {
	ID           uuid.UUID
	Name         string
	Description  string
	Data         json.RawMessage
	Type         string
	AccountID    uuid.UUID
	RobotModelID *uuid.UUID
	Status       int
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
