package commands

import (
	"context"
	"log/slog"
	"time"

	"promo-pricing-service/internal/domain/pricing"
	"promo-pricing-service/internal/domain/promotion"
	"promo-pricing-service/internal/infra"
	sqlc "promo-pricing-service/internal/infra/sqlc/generated"
	"promo-pricing-service/internal/pkg/clock"
	"promo-pricing-service/internal/pkg/errs"
	"promo-pricing-service/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidOrder            = errs.New("invalid order")
	ErrCouponNotFound          = errs.New("coupon not found")
	ErrInvalidCoupon           = errs.New("invalid coupon")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type LineInput struct {
	ItemID     uuid.UUID
	CategoryID uuid.UUID
	Quantity   int
	UnitPrice  float64
}

// BillSummary is the client-computed totals submitted with the order.
// TotalWithTax is carried for the order record; tax itself is computed by an
// external collaborator and never enters reconciliation.
type BillSummary struct {
	Subtotal     float64
	Total        float64
	TotalWithTax float64
}

type PriceOrderParams struct {
	Items      []LineInput
	CouponCode *string
	Bills      BillSummary
}

type CreateOrderResult struct {
	OrderID uuid.UUID
	Pricing *pricing.Result
}

type PricingCommands interface {
	// PriceOrder recomputes and reconciles without persisting anything.
	PriceOrder(ctx context.Context, params PriceOrderParams) (*pricing.Result, error)
	// CreateOrder prices, reconciles, persists the accepted order and
	// increments usage counters of the applied campaigns, atomically.
	CreateOrder(ctx context.Context, params PriceOrderParams) (*CreateOrderResult, error)
	// RecordOrderAcceptance increments usage for an order accepted elsewhere.
	RecordOrderAcceptance(ctx context.Context, promotionIDs []uuid.UUID) error
}

type pricingCommandsImpl struct {
	promotions shared.PromotionReadStore
	uow        shared.UnitOfWork
	selector   *pricing.Selector
	clock      clock.Clock
}

func NewPricingCommands(
	promotions shared.PromotionReadStore,
	uow shared.UnitOfWork,
	clock clock.Clock,
) PricingCommands {
	return &pricingCommandsImpl{
		promotions: promotions,
		uow:        uow,
		selector:   pricing.NewSelector(),
		clock:      clock,
	}
}

func (u *pricingCommandsImpl) PriceOrder(ctx context.Context, params PriceOrderParams) (*pricing.Result, error) {
	result, err := u.price(ctx, params)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (u *pricingCommandsImpl) CreateOrder(ctx context.Context, params PriceOrderParams) (*CreateOrderResult, error) {
	result, err := u.price(ctx, params)
	if err != nil {
		return nil, err
	}

	orderID := uuid.New()
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Orders().Create(ctx, tx.DB(), orderID, result); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return u.incrementUsage(ctx, tx.Promotions(), tx.DB(), result.AppliedPromotionIDs())
	})
	if err != nil {
		return nil, err
	}

	return &CreateOrderResult{OrderID: orderID, Pricing: result}, nil
}

func (u *pricingCommandsImpl) RecordOrderAcceptance(ctx context.Context, promotionIDs []uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return u.incrementUsage(ctx, tx.Promotions(), tx.DB(), promotionIDs)
	})
}

// incrementUsage is best-effort per campaign: a vanished or exhausted counter
// must not sink an order the customer already accepted.
func (u *pricingCommandsImpl) incrementUsage(ctx context.Context, repo shared.PromotionRepository, db sqlc.DBTX, ids []uuid.UUID) error {
	for _, id := range ids {
		if err := repo.IncrementUsage(ctx, db, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) || infra.IsKind(err, infra.KindUsageExceeded) {
				slog.Warn("skipping usage increment", "promotion_id", id, "error", err.Error())
				continue
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return nil
}

func (u *pricingCommandsImpl) price(ctx context.Context, params PriceOrderParams) (*pricing.Result, error) {
	lines, err := toLines(params.Items)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidOrder)
	}

	now := u.clock.Now()

	active, err := u.fetchActive(ctx, now)
	if err != nil {
		return nil, err
	}

	var coupon *promotion.Promotion
	if params.CouponCode != nil {
		coupon, err = u.resolveCoupon(ctx, *params.CouponCode, now)
		if err != nil {
			return nil, err
		}
	}

	var result pricing.Result
	if coupon != nil && coupon.Kind().IsOrderLevel() {
		// Order-level and item-level families are mutually exclusive per
		// order; a coupon for the whole order suppresses line campaigns.
		candidates := u.selector.OrderCandidates([]*promotion.Promotion{coupon}, now)
		result = u.selector.PriceOrderLevel(lines, candidates)
	} else {
		pool := active
		if coupon != nil {
			pool = appendUnique(pool, coupon)
		}
		candidates := u.selector.ItemCandidates(pool, now)
		result = u.selector.PriceLines(lines, candidates)
	}

	if err := pricing.Reconcile(params.Bills.Total, result.Total); err != nil {
		return nil, err
	}
	return &result, nil
}

func (u *pricingCommandsImpl) fetchActive(ctx context.Context, now time.Time) ([]*promotion.Promotion, error) {
	snaps, err := u.promotions.ListActive(ctx, now)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	promos := make([]*promotion.Promotion, 0, len(snaps))
	for _, snap := range snaps {
		p, buildErr := buildPromotion(snap)
		if buildErr != nil {
			// Malformed campaign data must not block pricing of the order.
			slog.Warn("skipping malformed promotion", "promotion_id", snap.ID, "error", buildErr.Error())
			continue
		}
		promos = append(promos, p)
	}
	return promos, nil
}

func (u *pricingCommandsImpl) resolveCoupon(ctx context.Context, code string, now time.Time) (*promotion.Promotion, error) {
	snap, err := u.promotions.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	p, err := buildPromotion(snap)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCoupon)
	}
	if !p.IsRunningAt(now) || !p.HasUsageRemaining() {
		return nil, ErrInvalidCoupon
	}
	return p, nil
}

func toLines(items []LineInput) ([]pricing.LineItem, error) {
	lines := make([]pricing.LineItem, 0, len(items))
	for _, item := range items {
		lines = append(lines, pricing.LineItem{
			LineID:     uuid.New(),
			ItemID:     item.ItemID,
			CategoryID: item.CategoryID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
		})
	}
	if err := pricing.ValidateLines(lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func appendUnique(promos []*promotion.Promotion, p *promotion.Promotion) []*promotion.Promotion {
	for _, existing := range promos {
		if existing.ID() == p.ID() {
			return promos
		}
	}
	return append(promos, p)
}
