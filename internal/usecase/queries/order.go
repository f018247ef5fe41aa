package queries

import (
	"context"
	"time"

	"promo-pricing-service/internal/infra"
	"promo-pricing-service/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound     = errs.New("order not found")
	ErrOrderLookupFailed = errs.New("order lookup failed")
)

type OrderLineView struct {
	LineID     uuid.UUID
	ItemID     uuid.UUID
	Quantity   int
	UnitPrice  float64
	FinalPrice float64
}

type OrderPromotionView struct {
	PromotionID   uuid.UUID
	Name          string
	Kind          string
	TotalDiscount float64
}

type OrderView struct {
	ID                uuid.UUID
	Subtotal          float64
	PromotionDiscount float64
	Total             float64
	Lines             []OrderLineView
	Promotions        []OrderPromotionView
	CreatedAt         time.Time
}

type OrderReadStore interface {
	FindByID(ctx context.Context, orderID uuid.UUID) (*OrderView, error)
}

type OrderQueries interface {
	GetByID(ctx context.Context, orderID uuid.UUID) (*OrderView, error)
}

type orderQueriesImpl struct {
	orders OrderReadStore
}

func NewOrderQueries(orders OrderReadStore) OrderQueries {
	return &orderQueriesImpl{orders: orders}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, orderID uuid.UUID) (*OrderView, error) {
	view, err := q.orders.FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrOrderNotFound)
		}
		return nil, errs.Mark(err, ErrOrderLookupFailed)
	}
	return view, nil
}
