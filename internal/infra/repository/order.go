package repository

import (
	"context"

	"promo-pricing-service/internal/domain/pricing"
	"promo-pricing-service/internal/infra"
	sqlc "promo-pricing-service/internal/infra/sqlc/generated"
	"promo-pricing-service/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OrderWriteQueries interface {
	CreateOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderParams) (uuid.UUID, error)
	CreateOrderItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderItemParams) error
	CreateOrderPromotion(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderPromotionParams) error
}

type OrderRepository struct {
	queries OrderWriteQueries
}

func NewOrderRepository(queries OrderWriteQueries) *OrderRepository {
	return &OrderRepository{
		queries: queries,
	}
}

// Create persists the priced order with its lines and the promotion
// breakdown in one shot; callers run it inside a transaction.
func (r *OrderRepository) Create(ctx context.Context, tx sqlc.DBTX, orderID uuid.UUID, result *pricing.Result) error {
	_, err := r.queries.CreateOrder(ctx, tx, sqlc.CreateOrderParams{
		ID:                orderID,
		Subtotal:          result.Subtotal,
		PromotionDiscount: result.PromotionDiscount,
		Total:             result.Total,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}

	for i := range result.Lines {
		line := &result.Lines[i]

		var promoID *uuid.UUID
		var discount float64
		if line.Applied != nil {
			promoID = &line.Applied.PromotionID
			discount = line.Applied.Discount
		}

		err := r.queries.CreateOrderItem(ctx, tx, sqlc.CreateOrderItemParams{
			ID:             line.LineID,
			OrderID:        orderID,
			ItemID:         line.ItemID,
			CategoryID:     line.CategoryID,
			Quantity:       int32(line.Quantity),
			UnitPrice:      line.UnitPrice,
			OriginalTotal:  line.OriginalTotal(),
			FinalUnitPrice: line.FinalUnitPrice,
			FinalTotal:     line.FinalTotal,
			PromotionID:    pgconv.UUIDPtrToPgtype(promoID),
			DiscountAmount: discount,
		})
		if err != nil {
			return infra.WrapRepoErr("failed to create order item", err)
		}
	}

	for _, applied := range result.Applied {
		err := r.queries.CreateOrderPromotion(ctx, tx, sqlc.CreateOrderPromotionParams{
			ID:            uuid.New(),
			OrderID:       orderID,
			PromotionID:   applied.PromotionID,
			PromotionName: applied.Name,
			PromotionKind: string(applied.Kind),
			TotalDiscount: applied.TotalDiscount,
			AffectedLines: applied.AffectedLineIDs,
		})
		if err != nil {
			return infra.WrapRepoErr("failed to record applied promotion", err)
		}
	}

	return nil
}
