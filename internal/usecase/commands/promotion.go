package commands

import (
	"time"

	"promo-pricing-service/internal/domain/promotion"
	"promo-pricing-service/internal/pkg/errs"
	"promo-pricing-service/internal/usecase/shared"
)

// buildPromotion validates a raw store row into a domain campaign. Rows that
// fail here are malformed data, not client errors.
func buildPromotion(rm *shared.PromotionSnapshot) (*promotion.Promotion, error) {
	shape, err := buildShape(rm.ShapeKind, rm.ShapeValue)
	if err != nil {
		return nil, err
	}

	scope, err := buildScope(rm)
	if err != nil {
		return nil, err
	}

	spans := make([]promotion.ClockSpan, 0, len(rm.TimeSlots))
	for _, slot := range rm.TimeSlots {
		span, err := promotion.NewClockSpan(slot.Start, slot.End)
		if err != nil {
			return nil, err
		}
		spans = append(spans, span)
	}

	days := make([]time.Weekday, 0, len(rm.DaysOfWeek))
	for _, d := range rm.DaysOfWeek {
		if d < 0 || d > 6 {
			return nil, errs.Newf("invalid weekday %d", d)
		}
		days = append(days, time.Weekday(d))
	}

	return promotion.New(promotion.Params{
		ID:               rm.ID,
		Name:             rm.Name,
		Code:             rm.Code,
		Kind:             promotion.Kind(rm.Kind),
		Shape:            shape,
		Scope:            scope,
		StartDate:        rm.StartDate,
		EndDate:          rm.EndDate,
		Recurrence:       promotion.NewRecurrence(spans, days),
		Priority:         rm.Priority,
		UsageLimit:       rm.UsageLimit,
		UsageCount:       rm.UsageCount,
		PerCustomerLimit: rm.PerCustomerLimit,
		MinOrderAmount:   rm.MinOrderAmount,
		MaxOrderAmount:   rm.MaxOrderAmount,
		Active:           rm.IsActive,
	})
}

func buildShape(kind string, value float64) (promotion.DiscountShape, error) {
	switch promotion.ShapeKind(kind) {
	case promotion.ShapePercentage:
		return promotion.NewPercentageShape(value)
	case promotion.ShapeFixedAmount:
		return promotion.NewFixedAmountShape(value)
	case promotion.ShapeUniformPrice:
		return promotion.NewUniformPriceShape(value)
	default:
		return promotion.DiscountShape{}, errs.Newf("unknown discount shape %q", kind)
	}
}

func buildScope(rm *shared.PromotionSnapshot) (promotion.Scope, error) {
	switch promotion.ScopeKind(rm.ScopeKind) {
	case promotion.ScopeAllOrder:
		return promotion.NewAllOrderScope(), nil
	case promotion.ScopeSpecificItems:
		return promotion.NewSpecificItemsScope(rm.ItemIDs)
	case promotion.ScopeCategories:
		return promotion.NewCategoriesScope(rm.CategoryIDs)
	default:
		return promotion.Scope{}, errs.Newf("unknown promotion scope %q", rm.ScopeKind)
	}
}
