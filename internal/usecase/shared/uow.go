package shared

import (
	"context"

	"promo-pricing-service/internal/domain/pricing"
	sqlc "promo-pricing-service/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Orders() OrderRepository
	Promotions() PromotionRepository
	DB() sqlc.DBTX
}

type OrderRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, orderID uuid.UUID, result *pricing.Result) error
}

type PromotionRepository interface {
	// IncrementUsage performs the atomic conditional increment: the counter
	// only moves when it is still under the cap, as one statement.
	IncrementUsage(ctx context.Context, tx sqlc.DBTX, promotionID uuid.UUID) error
}
