package request

import (
	"strings"

	"promo-pricing-service/internal/usecase/commands"

	"github.com/google/uuid"
)

type OrderLineRequest struct {
	ItemID     uuid.UUID `json:"itemId" binding:"required"`
	CategoryID uuid.UUID `json:"categoryId" binding:"required"`
	Quantity   int       `json:"quantity" binding:"required,gt=0"`
	UnitPrice  float64   `json:"unitPrice" binding:"gte=0"`
}

type BillsRequest struct {
	Subtotal     float64 `json:"subtotal" binding:"gte=0"`
	Total        float64 `json:"total" binding:"gte=0"`
	TotalWithTax float64 `json:"totalWithTax" binding:"gte=0"`
}

type PriceOrderRequest struct {
	Items      []OrderLineRequest `json:"items" binding:"required,min=1,dive"`
	CouponCode *string            `json:"couponCode,omitempty"`
	Bills      BillsRequest       `json:"bills" binding:"required"`
}

func (r PriceOrderRequest) GetCouponCode() *string {
	if r.CouponCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.CouponCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (r PriceOrderRequest) ToParams() commands.PriceOrderParams {
	items := make([]commands.LineInput, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, commands.LineInput{
			ItemID:     it.ItemID,
			CategoryID: it.CategoryID,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
		})
	}

	return commands.PriceOrderParams{
		Items:      items,
		CouponCode: r.GetCouponCode(),
		Bills: commands.BillSummary{
			Subtotal:     r.Bills.Subtotal,
			Total:        r.Bills.Total,
			TotalWithTax: r.Bills.TotalWithTax,
		},
	}
}
