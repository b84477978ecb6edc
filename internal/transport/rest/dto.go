package rest

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/alpha-code/activity-service/internal/domain"
)

type pageResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Size  int `json:"size"`
}

type behaviorResponse struct {
	ID             uuid.UUID  `json:"id"`
	Kind           string     `json:"kind"`
	Name           string     `json:"name"`
	Code           string     `json:"code"`
	Description    *string    `json:"description,omitempty"`
	Duration       int        `json:"duration"`
	CanInterrupt   bool       `json:"canInterrupt"`
	Icon           *string    `json:"icon,omitempty"`
	Type           *string    `json:"type,omitempty"`
	Status         int        `json:"status"`
	RobotModelID   uuid.UUID  `json:"robotModelId"`
	RobotModelName string     `json:"robotModelName"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
}

func toBehaviorResponse(b *domain.Behavior) behaviorResponse {
	return behaviorResponse{
		ID:             b.ID,
		Kind:           string(b.Kind),
		Name:           b.Name,
		Code:           b.Code,
		Description:    b.Description,
		Duration:       b.Duration,
		CanInterrupt:   b.CanInterrupt,
		Icon:           b.Icon,
		Type:           b.Type,
		Status:         b.Status,
		RobotModelID:   b.RobotModelID,
		RobotModelName: b.RobotModelName,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func toBehaviorPage(items []domain.Behavior, total, page, size int) pageResponse[behaviorResponse] {
	out := make([]behaviorResponse, 0, len(items))
	for i := range items {
		out = append(out, toBehaviorResponse(&items[i]))
	}
	return pageResponse[behaviorResponse]{Items: out, Total: total, Page: page, Size: size}
}

// actionRefBody carries the five-slot binding in requests and responses.
type actionRefBody struct {
	ActionID         *uuid.UUID `json:"actionId,omitempty"`
	DanceID          *uuid.UUID `json:"danceId,omitempty"`
	ExpressionID     *uuid.UUID `json:"expressionId,omitempty"`
	SkillID          *uuid.UUID `json:"skillId,omitempty"`
	ExtendedActionID *uuid.UUID `json:"extendedActionId,omitempty"`
}

func (b actionRefBody) toDomain() domain.ActionRef {
	return domain.ActionRef{
		ActionID:         b.ActionID,
		DanceID:          b.DanceID,
		ExpressionID:     b.ExpressionID,
		SkillID:          b.SkillID,
		ExtendedActionID: b.ExtendedActionID,
	}
}

func toActionRefBody(r domain.ActionRef) actionRefBody {
	return actionRefBody{
		ActionID:         r.ActionID,
		DanceID:          r.DanceID,
		ExpressionID:     r.ExpressionID,
		SkillID:          r.SkillID,
		ExtendedActionID: r.ExtendedActionID,
	}
}

type joystickResponse struct {
	ID         uuid.UUID     `json:"id"`
	AccountID  uuid.UUID     `json:"accountId"`
	RobotID    uuid.UUID     `json:"robotId"`
	ButtonCode string        `json:"buttonCode"`
	Type       string        `json:"type"`
	Ref        actionRefBody `json:"ref"`
	Status     int           `json:"status"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  *time.Time    `json:"updatedAt,omitempty"`
}

func toJoystickResponse(j *domain.Joystick) joystickResponse {
	return joystickResponse{
		ID:         j.ID,
		AccountID:  j.AccountID,
		RobotID:    j.RobotID,
		ButtonCode: j.ButtonCode,
		Type:       j.Type,
		Ref:        toActionRefBody(j.Ref),
		Status:     j.Status,
		CreatedAt:  j.CreatedAt,
		UpdatedAt:  j.UpdatedAt,
	}
}

type cardResponse struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Color     string        `json:"color"`
	Ref       actionRefBody `json:"ref"`
	Status    int           `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt *time.Time    `json:"updatedAt,omitempty"`
}

func toCardResponse(c *domain.OsmoCard) cardResponse {
	return cardResponse{
		ID:        c.ID,
		Name:      c.Name,
		Color:     c.Color,
		Ref:       toActionRefBody(c.Ref),
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type qrCodeResponse struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Code       string     `json:"code"`
	Color      *string    `json:"color,omitempty"`
	ImageURL   string     `json:"imageUrl"`
	AccountID  uuid.UUID  `json:"accountId"`
	ActivityID uuid.UUID  `json:"activityId"`
	Status     int        `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}

func toQrCodeResponse(c *domain.QrCode) qrCodeResponse {
	return qrCodeResponse{
		ID:         c.ID,
		Name:       c.Name,
		Code:       c.Code,
		Color:      c.Color,
		ImageURL:   c.ImageURL,
		AccountID:  c.AccountID,
		ActivityID: c.ActivityID,
		Status:     c.Status,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

type activityResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Data         json.RawMessage `json:"data,omitempty"`
	Type         string          `json:"type,omitempty"`
	AccountID    uuid.UUID       `json:"accountId"`
	RobotModelID *uuid.UUID      `json:"robotModelId,omitempty"`
	Status       int             `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    *time.Time      `json:"updatedAt,omitempty"`
}

func toActivityResponse(a *domain.Activity) activityResponse {
	return activityResponse{
		ID:           a.ID,
		Name:         a.Name,
		Description:  a.Description,
		Data:         a.Data,
		Type:         a.Type,
		AccountID:    a.AccountID,
		RobotModelID: a.RobotModelID,
		Status:       a.Status,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
