//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	sqlc "promo-pricing-service/internal/infra/sqlc/generated"
	"promo-pricing-service/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// the minimal interface required for test DB operations.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ResetDB truncates all mutable tables between sub-tests.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx,
		"TRUNCATE order_promotions, order_items, orders, promotions CASCADE")
	return err
}

// InsertPromotion seeds one promotion row. Rows are usually produced with
// builder.PromotionBuilder.BuildInfra so seed data and unit fixtures agree.
func InsertPromotion(t *testing.T, db DBLike, row sqlc.Promotions) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO promotions (
			id, name, code, kind, shape_kind, shape_value, scope_kind,
			item_ids, category_ids, start_date, end_date, time_slots,
			days_of_week, priority, usage_limit, usage_count,
			per_customer_limit, min_order_amount, max_order_amount, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`,
		row.ID, row.Name, pgconv.StringPtrFromPgtype(row.Code), row.Kind,
		row.ShapeKind, row.ShapeValue, row.ScopeKind,
		row.ItemIds, row.CategoryIds, row.StartDate.Time, row.EndDate.Time,
		row.TimeSlots, row.DaysOfWeek, row.Priority,
		pgconv.Int32PtrFromPgtype(row.UsageLimit), row.UsageCount,
		pgconv.Int32PtrFromPgtype(row.PerCustomerLimit),
		row.MinOrderAmount, pgconv.Float64PtrFromPgtype(row.MaxOrderAmount),
		row.IsActive)
	require.NoError(t, err)
}

// PromotionUsageCount reads back usage_count for assertions on concurrency
// sensitive paths.
func PromotionUsageCount(t *testing.T, db DBLike, promotionID any) int32 {
	t.Helper()

	var count int32
	err := db.QueryRow(context.Background(),
		"SELECT usage_count FROM promotions WHERE id = $1", promotionID).Scan(&count)
	require.NoError(t, err)
	return count
}
