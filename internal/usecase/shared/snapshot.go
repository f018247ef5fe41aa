package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TimeSlotSpec mirrors the stored jsonb recurrence slot.
type TimeSlotSpec struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// PromotionSnapshot is the raw campaign row as read from the store, before
// domain validation. The store has already filtered on is_active and window
// containment for ListActive; recurrence and eligibility stay in the domain.
type PromotionSnapshot struct {
	ID               uuid.UUID
	Name             string
	Code             *string
	Kind             string
	ShapeKind        string
	ShapeValue       float64
	ScopeKind        string
	ItemIDs          []uuid.UUID
	CategoryIDs      []uuid.UUID
	StartDate        time.Time
	EndDate          time.Time
	TimeSlots        []TimeSlotSpec
	DaysOfWeek       []int
	Priority         int
	UsageLimit       *int32
	UsageCount       int32
	PerCustomerLimit *int32
	MinOrderAmount   float64
	MaxOrderAmount   *float64
	IsActive         bool
}

type PromotionReadStore interface {
	ListActive(ctx context.Context, asOf time.Time) ([]*PromotionSnapshot, error)
	FindByCode(ctx context.Context, code string) (*PromotionSnapshot, error)
}
