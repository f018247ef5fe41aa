package pricing

import (
	"sort"
	"time"

	"promo-pricing-service/internal/domain/promotion"

	"github.com/google/uuid"
)

// Selector resolves which campaign, if any, prices each part of an order.
// Item-level and order-level families are never mixed in one pass; the caller
// decides which family an order uses.
type Selector struct{}

func NewSelector() *Selector {
	return &Selector{}
}

// ItemCandidates filters to item-level campaigns usable right now and orders
// them by priority descending. The sort is stable: campaigns with equal
// priority keep store order, which later makes first-match-wins deterministic.
func (s *Selector) ItemCandidates(promos []*promotion.Promotion, now time.Time) []*promotion.Promotion {
	return s.candidates(promos, now, promotion.Kind.IsItemLevel)
}

func (s *Selector) OrderCandidates(promos []*promotion.Promotion, now time.Time) []*promotion.Promotion {
	return s.candidates(promos, now, promotion.Kind.IsOrderLevel)
}

func (s *Selector) candidates(promos []*promotion.Promotion, now time.Time, family func(promotion.Kind) bool) []*promotion.Promotion {
	out := make([]*promotion.Promotion, 0, len(promos))
	for _, p := range promos {
		if family(p.Kind()) && p.IsRunningAt(now) && p.HasUsageRemaining() {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority() > out[j].Priority()
	})
	return out
}

// PriceLines applies at most one campaign per line: scanning candidates in
// priority order, the first one that covers the line and yields a positive
// discount wins and the scan stops. This is deliberately not a best-of-N
// search; a lower-priority campaign with a larger discount never displaces an
// earlier match. A zero discount falls through to the next candidate.
func (s *Selector) PriceLines(lines []LineItem, candidates []*promotion.Promotion) Result {
	result := Result{Lines: make([]PricedLine, 0, len(lines))}

	merged := make(map[uuid.UUID]int) // promotion id -> index into result.Applied

	for _, line := range lines {
		priced := PricedLine{
			LineItem:       line,
			FinalUnitPrice: line.UnitPrice,
			FinalTotal:     line.OriginalTotal(),
		}
		result.Subtotal += line.OriginalTotal()

		for _, cand := range candidates {
			if !cand.CoversLine(line.ItemID, line.CategoryID) {
				continue
			}
			discount := cand.LineDiscount(line.UnitPrice, line.Quantity)
			if discount <= 0 {
				continue
			}

			priced.FinalTotal = line.OriginalTotal() - discount
			priced.FinalUnitPrice = priced.FinalTotal / float64(line.Quantity)
			priced.Applied = &AppliedLine{
				PromotionID:   cand.ID(),
				PromotionName: cand.Name(),
				Discount:      discount,
			}
			result.PromotionDiscount += discount

			if idx, ok := merged[cand.ID()]; ok {
				result.Applied[idx].TotalDiscount += discount
				result.Applied[idx].AffectedLineIDs = append(result.Applied[idx].AffectedLineIDs, line.LineID)
			} else {
				merged[cand.ID()] = len(result.Applied)
				result.Applied = append(result.Applied, AppliedPromotion{
					PromotionID:     cand.ID(),
					Name:            cand.Name(),
					Kind:            cand.Kind(),
					TotalDiscount:   discount,
					AffectedLineIDs: []uuid.UUID{line.LineID},
				})
			}
			break
		}

		result.Lines = append(result.Lines, priced)
	}

	result.Total = result.Subtotal - result.PromotionDiscount
	if result.Total < 0 {
		result.Total = 0
	}
	return result
}

// PriceOrderLevel applies the single highest-priority order-level campaign
// whose min/max gates pass and whose discount is positive. Lines keep their
// original prices; the discount lands on the order total only.
func (s *Selector) PriceOrderLevel(lines []LineItem, candidates []*promotion.Promotion) Result {
	result := Result{Lines: make([]PricedLine, 0, len(lines))}

	lineIDs := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		result.Subtotal += line.OriginalTotal()
		result.Lines = append(result.Lines, PricedLine{
			LineItem:       line,
			FinalUnitPrice: line.UnitPrice,
			FinalTotal:     line.OriginalTotal(),
		})
		lineIDs = append(lineIDs, line.LineID)
	}

	for _, cand := range candidates {
		discount := cand.OrderDiscount(result.Subtotal)
		if discount <= 0 {
			continue
		}
		result.PromotionDiscount = discount
		result.Applied = append(result.Applied, AppliedPromotion{
			PromotionID:     cand.ID(),
			Name:            cand.Name(),
			Kind:            cand.Kind(),
			TotalDiscount:   discount,
			AffectedLineIDs: lineIDs,
		})
		break
	}

	result.Total = result.Subtotal - result.PromotionDiscount
	if result.Total < 0 {
		result.Total = 0
	}
	return result
}
