package readstore

import (
	"context"

	"promo-pricing-service/internal/infra"
	sqlc "promo-pricing-service/internal/infra/sqlc/generated"
	"promo-pricing-service/internal/pkg/pgconv"
	"promo-pricing-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderViewQueries interface {
	GetOrderByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Orders, error)
	GetOrderItemsByOrderID(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]sqlc.OrderItems, error)
	GetOrderPromotionsByOrderID(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]sqlc.OrderPromotions, error)
}

type OrderReadStore struct {
	db      sqlc.DBTX
	queries OrderViewQueries
}

func NewOrderReadStore(db sqlc.DBTX, queries OrderViewQueries) *OrderReadStore {
	return &OrderReadStore{
		db:      db,
		queries: queries,
	}
}

func (r *OrderReadStore) FindByID(ctx context.Context, orderID uuid.UUID) (*queries.OrderView, error) {
	order, err := r.queries.GetOrderByID(ctx, r.db, orderID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by ID", err)
	}

	items, err := r.queries.GetOrderItemsByOrderID(ctx, r.db, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load order items", err)
	}

	promos, err := r.queries.GetOrderPromotionsByOrderID(ctx, r.db, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load order promotions", err)
	}

	return toOrderView(order, items, promos), nil
}

func toOrderView(order sqlc.Orders, items []sqlc.OrderItems, promos []sqlc.OrderPromotions) *queries.OrderView {
	view := &queries.OrderView{
		ID:                order.ID,
		Subtotal:          order.Subtotal,
		PromotionDiscount: order.PromotionDiscount,
		Total:             order.Total,
		CreatedAt:         pgconv.TimeFromPgtype(order.CreatedAt),
	}

	view.Lines = make([]queries.OrderLineView, 0, len(items))
	for _, it := range items {
		view.Lines = append(view.Lines, queries.OrderLineView{
			LineID:     it.ID,
			ItemID:     it.ItemID,
			Quantity:   int(it.Quantity),
			UnitPrice:  it.UnitPrice,
			FinalPrice: it.FinalTotal,
		})
	}

	view.Promotions = make([]queries.OrderPromotionView, 0, len(promos))
	for _, p := range promos {
		view.Promotions = append(view.Promotions, queries.OrderPromotionView{
			PromotionID:   p.PromotionID,
			Name:          p.PromotionName,
			Kind:          p.PromotionKind,
			TotalDiscount: p.TotalDiscount,
		})
	}

	return view
}
