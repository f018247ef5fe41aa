package repository

import (
	"context"

	"promo-pricing-service/internal/infra"
	sqlc "promo-pricing-service/internal/infra/sqlc/generated"
	"promo-pricing-service/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PromotionWriteQueries interface {
	IncrementPromotionUsage(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	GetPromotionByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Promotions, error)
}

type PromotionRepository struct {
	queries PromotionWriteQueries
}

func NewPromotionRepository(queries PromotionWriteQueries) *PromotionRepository {
	return &PromotionRepository{
		queries: queries,
	}
}

// IncrementUsage bumps the usage counter only while it is still under the
// limit. The guard and the increment run as a single statement, so two
// concurrent orders can never both consume the last slot.
func (r *PromotionRepository) IncrementUsage(ctx context.Context, tx sqlc.DBTX, promotionID uuid.UUID) error {
	affected, err := r.queries.IncrementPromotionUsage(ctx, tx, promotionID)
	if err != nil {
		return infra.WrapRepoErr("failed to increment promotion usage", err)
	}
	if affected > 0 {
		return nil
	}

	// Zero rows means either the promotion vanished or the limit is hit;
	// re-read to tell the two apart.
	_, err = r.queries.GetPromotionByID(ctx, tx, promotionID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("promotion not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to check promotion usage", err)
	}
	return infra.WrapRepoErr("promotion usage limit exceeded", nil, infra.KindUsageExceeded)
}
