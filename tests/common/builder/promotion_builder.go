//go:build unit || e2e

package builder

import (
	"encoding/json"
	"time"

	"promo-pricing-service/internal/domain/promotion"
	sqlc "promo-pricing-service/internal/infra/sqlc/generated"
	"promo-pricing-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PromotionBuilder struct {
	ID             uuid.UUID
	Name           string
	Code           *string
	Kind           promotion.Kind
	ShapeKind      promotion.ShapeKind
	ShapeValue     float64
	ScopeKind      promotion.ScopeKind
	ItemIDs        []uuid.UUID
	CategoryIDs    []uuid.UUID
	StartDate      time.Time
	EndDate        time.Time
	Slots          []shared.TimeSlotSpec
	DaysOfWeek     []time.Weekday
	Priority       int
	UsageLimit     *int32
	UsageCount     int32
	MinOrderAmount float64
	MaxOrderAmount *float64
	Active         bool
}

func NewPromotionBuilder() *PromotionBuilder {
	return &PromotionBuilder{
		ID:         uuid.New(),
		Name:       "Test Campaign",
		Kind:       promotion.KindItemPercentage,
		ShapeKind:  promotion.ShapePercentage,
		ShapeValue: 10,
		ScopeKind:  promotion.ScopeAllOrder,
		StartDate:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Priority:   0,
		Active:     true,
	}
}

func (b *PromotionBuilder) With(mutate func(*PromotionBuilder)) *PromotionBuilder {
	mutate(b)
	return b
}

func (b *PromotionBuilder) WithKind(kind promotion.Kind) *PromotionBuilder {
	b.Kind = kind
	return b
}

func (b *PromotionBuilder) WithCode(code string) *PromotionBuilder {
	b.Code = &code
	return b
}

func (b *PromotionBuilder) WithPercentage(percent float64) *PromotionBuilder {
	b.ShapeKind = promotion.ShapePercentage
	b.ShapeValue = percent
	return b
}

func (b *PromotionBuilder) WithFixedAmount(amount float64) *PromotionBuilder {
	b.ShapeKind = promotion.ShapeFixedAmount
	b.ShapeValue = amount
	return b
}

func (b *PromotionBuilder) WithUniformPrice(price float64) *PromotionBuilder {
	b.ShapeKind = promotion.ShapeUniformPrice
	b.ShapeValue = price
	return b
}

func (b *PromotionBuilder) WithItemScope(itemIDs ...uuid.UUID) *PromotionBuilder {
	b.ScopeKind = promotion.ScopeSpecificItems
	b.ItemIDs = itemIDs
	return b
}

func (b *PromotionBuilder) WithCategoryScope(categoryIDs ...uuid.UUID) *PromotionBuilder {
	b.ScopeKind = promotion.ScopeCategories
	b.CategoryIDs = categoryIDs
	return b
}

func (b *PromotionBuilder) WithSlot(start, end string) *PromotionBuilder {
	b.Slots = append(b.Slots, shared.TimeSlotSpec{Start: start, End: end})
	return b
}

func (b *PromotionBuilder) WithDays(days ...time.Weekday) *PromotionBuilder {
	b.DaysOfWeek = days
	return b
}

func (b *PromotionBuilder) WithPriority(priority int) *PromotionBuilder {
	b.Priority = priority
	return b
}

func (b *PromotionBuilder) WithUsage(count, limit int32) *PromotionBuilder {
	b.UsageCount = count
	b.UsageLimit = &limit
	return b
}

func (b *PromotionBuilder) WithWindow(start, end time.Time) *PromotionBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *PromotionBuilder) WithOrderAmountGate(minAmount float64, maxAmount *float64) *PromotionBuilder {
	b.MinOrderAmount = minAmount
	b.MaxOrderAmount = maxAmount
	return b
}

func (b *PromotionBuilder) Inactive() *PromotionBuilder {
	b.Active = false
	return b
}

func (b *PromotionBuilder) buildShape() (promotion.DiscountShape, error) {
	switch b.ShapeKind {
	case promotion.ShapeFixedAmount:
		return promotion.NewFixedAmountShape(b.ShapeValue)
	case promotion.ShapeUniformPrice:
		return promotion.NewUniformPriceShape(b.ShapeValue)
	default:
		return promotion.NewPercentageShape(b.ShapeValue)
	}
}

func (b *PromotionBuilder) buildScope() (promotion.Scope, error) {
	switch b.ScopeKind {
	case promotion.ScopeSpecificItems:
		return promotion.NewSpecificItemsScope(b.ItemIDs)
	case promotion.ScopeCategories:
		return promotion.NewCategoriesScope(b.CategoryIDs)
	default:
		return promotion.NewAllOrderScope(), nil
	}
}

func (b *PromotionBuilder) BuildDomain() (*promotion.Promotion, error) {
	shape, err := b.buildShape()
	if err != nil {
		return nil, err
	}
	scope, err := b.buildScope()
	if err != nil {
		return nil, err
	}

	spans := make([]promotion.ClockSpan, 0, len(b.Slots))
	for _, slot := range b.Slots {
		span, err := promotion.NewClockSpan(slot.Start, slot.End)
		if err != nil {
			return nil, err
		}
		spans = append(spans, span)
	}

	return promotion.New(promotion.Params{
		ID:             b.ID,
		Name:           b.Name,
		Code:           b.Code,
		Kind:           b.Kind,
		Shape:          shape,
		Scope:          scope,
		StartDate:      b.StartDate,
		EndDate:        b.EndDate,
		Recurrence:     promotion.NewRecurrence(spans, b.DaysOfWeek),
		Priority:       b.Priority,
		UsageLimit:     b.UsageLimit,
		UsageCount:     b.UsageCount,
		MinOrderAmount: b.MinOrderAmount,
		MaxOrderAmount: b.MaxOrderAmount,
		Active:         b.Active,
	})
}

func (b *PromotionBuilder) BuildSnapshot() *shared.PromotionSnapshot {
	days := make([]int, 0, len(b.DaysOfWeek))
	for _, d := range b.DaysOfWeek {
		days = append(days, int(d))
	}

	return &shared.PromotionSnapshot{
		ID:             b.ID,
		Name:           b.Name,
		Code:           b.Code,
		Kind:           string(b.Kind),
		ShapeKind:      string(b.ShapeKind),
		ShapeValue:     b.ShapeValue,
		ScopeKind:      string(b.ScopeKind),
		ItemIDs:        b.ItemIDs,
		CategoryIDs:    b.CategoryIDs,
		StartDate:      b.StartDate,
		EndDate:        b.EndDate,
		TimeSlots:      b.Slots,
		DaysOfWeek:     days,
		Priority:       b.Priority,
		UsageLimit:     b.UsageLimit,
		UsageCount:     b.UsageCount,
		MinOrderAmount: b.MinOrderAmount,
		MaxOrderAmount: b.MaxOrderAmount,
		IsActive:       b.Active,
	}
}

func (b *PromotionBuilder) BuildInfra() sqlc.Promotions {
	now := time.Now()

	slots, _ := json.Marshal(b.Slots)
	if len(b.Slots) == 0 {
		slots = []byte("[]")
	}

	days := make([]int32, 0, len(b.DaysOfWeek))
	for _, d := range b.DaysOfWeek {
		days = append(days, int32(d))
	}

	var code pgtype.Text
	if b.Code != nil {
		code = pgtype.Text{String: *b.Code, Valid: true}
	}

	var usageLimit pgtype.Int4
	if b.UsageLimit != nil {
		usageLimit = pgtype.Int4{Int32: *b.UsageLimit, Valid: true}
	}

	var maxOrderAmount pgtype.Float8
	if b.MaxOrderAmount != nil {
		maxOrderAmount = pgtype.Float8{Float64: *b.MaxOrderAmount, Valid: true}
	}

	return sqlc.Promotions{
		ID:             b.ID,
		Name:           b.Name,
		Code:           code,
		Kind:           string(b.Kind),
		ShapeKind:      string(b.ShapeKind),
		ShapeValue:     b.ShapeValue,
		ScopeKind:      string(b.ScopeKind),
		ItemIds:        b.ItemIDs,
		CategoryIds:    b.CategoryIDs,
		StartDate:      pgtype.Timestamptz{Time: b.StartDate, Valid: true},
		EndDate:        pgtype.Timestamptz{Time: b.EndDate, Valid: true},
		TimeSlots:      slots,
		DaysOfWeek:     days,
		Priority:       int32(b.Priority),
		UsageLimit:     usageLimit,
		UsageCount:     b.UsageCount,
		MinOrderAmount: b.MinOrderAmount,
		MaxOrderAmount: maxOrderAmount,
		IsActive:       b.Active,
		CreatedAt:      pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:      pgtype.Timestamptz{Time: now, Valid: true},
	}
}
