package response

import (
	"time"

	"promo-pricing-service/internal/domain/pricing"
	"promo-pricing-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PricedLineResponse struct {
	LineID        uuid.UUID  `json:"lineId"`
	ItemID        uuid.UUID  `json:"itemId"`
	Quantity      int        `json:"quantity"`
	UnitPrice     float64    `json:"unitPrice"`
	OriginalTotal float64    `json:"originalTotal"`
	FinalTotal    float64    `json:"finalTotal"`
	PromotionID   *uuid.UUID `json:"promotionId,omitempty"`
	Discount      float64    `json:"discount"`
}

type AppliedPromotionResponse struct {
	PromotionID     uuid.UUID   `json:"promotionId"`
	Name            string      `json:"name"`
	Kind            string      `json:"kind"`
	TotalDiscount   float64     `json:"totalDiscount"`
	AffectedLineIDs []uuid.UUID `json:"affectedLineIds"`
}

type PricingResponse struct {
	Subtotal          float64                    `json:"subtotal"`
	PromotionDiscount float64                    `json:"promotionDiscount"`
	Total             float64                    `json:"total"`
	Lines             []PricedLineResponse       `json:"lines"`
	Promotions        []AppliedPromotionResponse `json:"promotions"`
}

type CreateOrderResponse struct {
	OrderID uuid.UUID       `json:"orderId"`
	Pricing PricingResponse `json:"pricing"`
}

func FromPricingResult(result *pricing.Result) PricingResponse {
	resp := PricingResponse{
		Subtotal:          result.Subtotal,
		PromotionDiscount: result.PromotionDiscount,
		Total:             result.Total,
	}

	resp.Lines = make([]PricedLineResponse, 0, len(result.Lines))
	for i := range result.Lines {
		line := &result.Lines[i]
		lr := PricedLineResponse{
			LineID:        line.LineID,
			ItemID:        line.ItemID,
			Quantity:      line.Quantity,
			UnitPrice:     line.UnitPrice,
			OriginalTotal: line.OriginalTotal(),
			FinalTotal:    line.FinalTotal,
		}
		if line.Applied != nil {
			id := line.Applied.PromotionID
			lr.PromotionID = &id
			lr.Discount = line.Applied.Discount
		}
		resp.Lines = append(resp.Lines, lr)
	}

	resp.Promotions = make([]AppliedPromotionResponse, 0, len(result.Applied))
	for _, a := range result.Applied {
		resp.Promotions = append(resp.Promotions, AppliedPromotionResponse{
			PromotionID:     a.PromotionID,
			Name:            a.Name,
			Kind:            string(a.Kind),
			TotalDiscount:   a.TotalDiscount,
			AffectedLineIDs: a.AffectedLineIDs,
		})
	}

	return resp
}

type OrderLineResponse struct {
	LineID     uuid.UUID `json:"lineId"`
	ItemID     uuid.UUID `json:"itemId"`
	Quantity   int       `json:"quantity"`
	UnitPrice  float64   `json:"unitPrice"`
	FinalPrice float64   `json:"finalPrice"`
}

type OrderPromotionResponse struct {
	PromotionID   uuid.UUID `json:"promotionId"`
	Name          string    `json:"name"`
	Kind          string    `json:"kind"`
	TotalDiscount float64   `json:"totalDiscount"`
}

type OrderResponse struct {
	ID                uuid.UUID                `json:"id"`
	Subtotal          float64                  `json:"subtotal"`
	PromotionDiscount float64                  `json:"promotionDiscount"`
	Total             float64                  `json:"total"`
	Lines             []OrderLineResponse      `json:"lines"`
	Promotions        []OrderPromotionResponse `json:"promotions"`
	CreatedAt         time.Time                `json:"createdAt"`
}

func FromOrderView(view *queries.OrderView) (*OrderResponse, error) {
	var resp OrderResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}
