package domain

import "github.com/google/uuid"

const (
	defaultPageSize = 20
	maxPageSize     = 200
)

// BehaviorFilter defines parameters for the paginated behavior search.
// Pointer fields are optional: nil means "no filter on this field".
type BehaviorFilter struct {
	Page         int
	Size         int
	Name         *string
	Code         *string
	Status       *int
	RobotModelID *uuid.UUID
	CanInterrupt *bool
	Duration     *int
}

// Normalize applies paging defaults and clamps the page size.
func (f *BehaviorFilter) Normalize() {
	f.Page, f.Size = normalizePage(f.Page, f.Size)
}

// ActivityFilter defines parameters for the paginated activity search.
type ActivityFilter struct {
	Page         int
	Size         int
	Keyword      *string
	AccountID    *uuid.UUID
	RobotModelID *uuid.UUID
	Status       *int
}

// Normalize applies paging defaults and clamps the page size.
func (f *ActivityFilter) Normalize() {
	f.Page, f.Size = normalizePage(f.Page, f.Size)
}

// ListFilter is the paging + status filter shared by card and code listings.
type ListFilter struct {
	Page   int
	Size   int
	Status *int
}

// Normalize applies paging defaults and clamps the page size.
func (f *ListFilter) Normalize() {
	f.Page, f.Size = normalizePage(f.Page, f.Size)
}

func normalizePage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}
