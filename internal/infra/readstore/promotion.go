package readstore

import (
	"context"
	"encoding/json"
	"time"

	"promo-pricing-service/internal/infra"
	sqlc "promo-pricing-service/internal/infra/sqlc/generated"
	"promo-pricing-service/internal/pkg/pgconv"
	"promo-pricing-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PromotionReadQueries interface {
	GetPromotionByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Promotions, error)
	ListActivePromotions(ctx context.Context, db sqlc.DBTX, asOf pgtype.Timestamptz) ([]sqlc.Promotions, error)
}

type PromotionReadStore struct {
	db      sqlc.DBTX
	queries PromotionReadQueries
}

func NewPromotionReadStore(db sqlc.DBTX, queries PromotionReadQueries) *PromotionReadStore {
	return &PromotionReadStore{
		db:      db,
		queries: queries,
	}
}

func (r *PromotionReadStore) ListActive(ctx context.Context, asOf time.Time) ([]*shared.PromotionSnapshot, error) {
	rows, err := r.queries.ListActivePromotions(ctx, r.db, pgconv.TimeToPgtype(asOf))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active promotions", err)
	}

	snapshots := make([]*shared.PromotionSnapshot, 0, len(rows))
	for i := range rows {
		snap, err := toPromotionSnapshot(rows[i])
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode promotion row", err)
		}
		snapshots = append(snapshots, snap)
	}
	return snapshots, nil
}

func (r *PromotionReadStore) FindByCode(ctx context.Context, code string) (*shared.PromotionSnapshot, error) {
	row, err := r.queries.GetPromotionByCode(ctx, r.db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("promotion not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find promotion by code", err)
	}
	return toPromotionSnapshot(row)
}

func toPromotionSnapshot(row sqlc.Promotions) (*shared.PromotionSnapshot, error) {
	var slots []shared.TimeSlotSpec
	if len(row.TimeSlots) > 0 {
		if err := json.Unmarshal(row.TimeSlots, &slots); err != nil {
			return nil, err
		}
	}

	days := make([]int, 0, len(row.DaysOfWeek))
	for _, d := range row.DaysOfWeek {
		days = append(days, int(d))
	}

	itemIDs := make([]uuid.UUID, len(row.ItemIds))
	copy(itemIDs, row.ItemIds)
	categoryIDs := make([]uuid.UUID, len(row.CategoryIds))
	copy(categoryIDs, row.CategoryIds)

	return &shared.PromotionSnapshot{
		ID:               row.ID,
		Name:             row.Name,
		Code:             pgconv.StringPtrFromPgtype(row.Code),
		Kind:             row.Kind,
		ShapeKind:        row.ShapeKind,
		ShapeValue:       row.ShapeValue,
		ScopeKind:        row.ScopeKind,
		ItemIDs:          itemIDs,
		CategoryIDs:      categoryIDs,
		StartDate:        pgconv.TimeFromPgtype(row.StartDate),
		EndDate:          pgconv.TimeFromPgtype(row.EndDate),
		TimeSlots:        slots,
		DaysOfWeek:       days,
		Priority:         int(row.Priority),
		UsageLimit:       pgconv.Int32PtrFromPgtype(row.UsageLimit),
		UsageCount:       row.UsageCount,
		PerCustomerLimit: pgconv.Int32PtrFromPgtype(row.PerCustomerLimit),
		MinOrderAmount:   row.MinOrderAmount,
		MaxOrderAmount:   pgconv.Float64PtrFromPgtype(row.MaxOrderAmount),
		IsActive:         row.IsActive,
	}, nil
}
