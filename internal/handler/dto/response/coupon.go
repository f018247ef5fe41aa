package response

import (
	"promo-pricing-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type CouponPromotionResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Code     string    `json:"code"`
	Kind     string    `json:"kind"`
	Priority int       `json:"priority"`
}

type CouponValidationResponse struct {
	Valid     bool                     `json:"valid"`
	Reason    string                   `json:"reason,omitempty"`
	Promotion *CouponPromotionResponse `json:"promotion,omitempty"`
}

func FromCouponValidation(v *queries.CouponValidation) CouponValidationResponse {
	resp := CouponValidationResponse{
		Valid:  v.Valid,
		Reason: v.Reason,
	}
	if v.Promotion != nil {
		resp.Promotion = &CouponPromotionResponse{
			ID:       v.Promotion.ID,
			Name:     v.Promotion.Name,
			Code:     v.Promotion.Code,
			Kind:     v.Promotion.Kind,
			Priority: v.Promotion.Priority,
		}
	}
	return resp
}
