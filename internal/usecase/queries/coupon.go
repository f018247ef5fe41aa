package queries

import (
	"context"
	"time"

	"promo-pricing-service/internal/infra"
	"promo-pricing-service/internal/pkg/clock"
	"promo-pricing-service/internal/pkg/errs"
	"promo-pricing-service/internal/usecase/shared"

	"github.com/google/uuid"
)

// Negative coupon outcomes are routine results, not errors; only store
// failures surface as errors.
const (
	ReasonNotFound       = "coupon code not found"
	ReasonInactive       = "coupon is not active"
	ReasonNotStarted     = "coupon is not yet valid"
	ReasonExpired        = "coupon has expired"
	ReasonUsageExhausted = "coupon usage limit reached"
)

var ErrCouponLookupFailed = errs.New("coupon lookup failed")

type CouponPromotionView struct {
	ID       uuid.UUID
	Name     string
	Code     string
	Kind     string
	Priority int
}

type CouponValidation struct {
	Valid     bool
	Reason    string
	Promotion *CouponPromotionView
}

type CouponQueries interface {
	Validate(ctx context.Context, code string) (*CouponValidation, error)
}

type couponQueriesImpl struct {
	promotions shared.PromotionReadStore
	clock      clock.Clock
}

func NewCouponQueries(promotions shared.PromotionReadStore, clock clock.Clock) CouponQueries {
	return &couponQueriesImpl{
		promotions: promotions,
		clock:      clock,
	}
}

// Validate is read-only: checking a code never consumes usage.
func (q *couponQueriesImpl) Validate(ctx context.Context, code string) (*CouponValidation, error) {
	snap, err := q.promotions.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &CouponValidation{Valid: false, Reason: ReasonNotFound}, nil
		}
		return nil, errs.Mark(err, ErrCouponLookupFailed)
	}

	now := q.clock.Now()

	if reason := invalidReason(snap, now); reason != "" {
		return &CouponValidation{Valid: false, Reason: reason}, nil
	}

	view := &CouponPromotionView{
		ID:       snap.ID,
		Name:     snap.Name,
		Kind:     snap.Kind,
		Priority: snap.Priority,
	}
	if snap.Code != nil {
		view.Code = *snap.Code
	}
	return &CouponValidation{Valid: true, Promotion: view}, nil
}

func invalidReason(snap *shared.PromotionSnapshot, now time.Time) string {
	switch {
	case !snap.IsActive:
		return ReasonInactive
	case now.Before(snap.StartDate):
		return ReasonNotStarted
	case now.After(snap.EndDate):
		return ReasonExpired
	case snap.UsageLimit != nil && snap.UsageCount >= *snap.UsageLimit:
		return ReasonUsageExhausted
	default:
		return ""
	}
}
