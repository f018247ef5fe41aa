package pricing

import (
	"promo-pricing-service/internal/domain/promotion"

	"github.com/google/uuid"
)

// AppliedPromotion is the per-campaign aggregate across all lines it touched.
type AppliedPromotion struct {
	PromotionID     uuid.UUID
	Name            string
	Kind            promotion.Kind
	TotalDiscount   float64
	AffectedLineIDs []uuid.UUID
}

// Result is the full engine output for one pricing pass.
type Result struct {
	Subtotal          float64
	PromotionDiscount float64
	Total             float64
	Lines             []PricedLine
	Applied           []AppliedPromotion
}

func (r Result) AppliedPromotionIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(r.Applied))
	for _, a := range r.Applied {
		ids = append(ids, a.PromotionID)
	}
	return ids
}
