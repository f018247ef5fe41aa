//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"promo-pricing-service/internal/domain/pricing"
	"promo-pricing-service/internal/domain/promotion"
	"promo-pricing-service/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

func mustBuild(t *testing.T, b *builder.PromotionBuilder) *promotion.Promotion {
	t.Helper()
	p, err := b.BuildDomain()
	require.NoError(t, err)
	return p
}

func line(itemID, categoryID uuid.UUID, qty int, unitPrice float64) pricing.LineItem {
	return pricing.LineItem{
		LineID:     uuid.New(),
		ItemID:     itemID,
		CategoryID: categoryID,
		Quantity:   qty,
		UnitPrice:  unitPrice,
	}
}

func TestItemCandidates(t *testing.T) {
	selector := pricing.NewSelector()

	t.Run("filters by family, schedule and usage", func(t *testing.T) {
		running := mustBuild(t, builder.NewPromotionBuilder().WithKind(promotion.KindItemPercentage))
		orderLevel := mustBuild(t, builder.NewPromotionBuilder().
			WithKind(promotion.KindOrderPercentage))
		inactive := mustBuild(t, builder.NewPromotionBuilder().Inactive())
		exhausted := mustBuild(t, builder.NewPromotionBuilder().WithUsage(10, 10))
		offHours := mustBuild(t, builder.NewPromotionBuilder().WithSlot("20:00", "22:00"))

		got := selector.ItemCandidates(
			[]*promotion.Promotion{running, orderLevel, inactive, exhausted, offHours}, now)

		require.Len(t, got, 1)
		assert.Equal(t, running.ID(), got[0].ID())
	})

	t.Run("sorts by priority descending, stable on ties", func(t *testing.T) {
		low := mustBuild(t, builder.NewPromotionBuilder().WithPriority(1))
		highA := mustBuild(t, builder.NewPromotionBuilder().WithPriority(5))
		highB := mustBuild(t, builder.NewPromotionBuilder().WithPriority(5))

		got := selector.ItemCandidates([]*promotion.Promotion{low, highA, highB}, now)

		require.Len(t, got, 3)
		assert.Equal(t, highA.ID(), got[0].ID())
		assert.Equal(t, highB.ID(), got[1].ID(), "equal priority keeps input order")
		assert.Equal(t, low.ID(), got[2].ID())
	})
}

func TestPriceLines(t *testing.T) {
	selector := pricing.NewSelector()
	itemID := uuid.New()
	categoryID := uuid.New()

	t.Run("uniform price discounts a 43000 item to 35000", func(t *testing.T) {
		happyHour := mustBuild(t, builder.NewPromotionBuilder().
			WithKind(promotion.KindHappyHour).
			WithUniformPrice(35000))

		lines := []pricing.LineItem{line(itemID, categoryID, 1, 43000)}
		result := selector.PriceLines(lines, []*promotion.Promotion{happyHour})

		assert.Equal(t, 43000.0, result.Subtotal)
		assert.Equal(t, 8000.0, result.PromotionDiscount)
		assert.Equal(t, 35000.0, result.Total)
		require.Len(t, result.Applied, 1)
		assert.Equal(t, happyHour.ID(), result.Applied[0].PromotionID)
		require.NotNil(t, result.Lines[0].Applied)
		assert.Equal(t, 35000.0, result.Lines[0].FinalTotal)
	})

	t.Run("percentage discounts 20 percent off 40000", func(t *testing.T) {
		pct := mustBuild(t, builder.NewPromotionBuilder().WithPercentage(20))

		lines := []pricing.LineItem{line(itemID, categoryID, 1, 40000)}
		result := selector.PriceLines(lines, []*promotion.Promotion{pct})

		assert.Equal(t, 8000.0, result.PromotionDiscount)
		assert.Equal(t, 32000.0, result.Total)
	})

	t.Run("fixed amount takes 5000 off 43000", func(t *testing.T) {
		fixed := mustBuild(t, builder.NewPromotionBuilder().
			WithKind(promotion.KindItemFixed).
			WithFixedAmount(5000))

		lines := []pricing.LineItem{line(itemID, categoryID, 1, 43000)}
		result := selector.PriceLines(lines, []*promotion.Promotion{fixed})

		assert.Equal(t, 5000.0, result.PromotionDiscount)
		assert.Equal(t, 38000.0, result.Total)
	})

	t.Run("first match wins even when a later campaign discounts more", func(t *testing.T) {
		smallHigh := mustBuild(t, builder.NewPromotionBuilder().
			WithPercentage(5).
			WithPriority(5))
		bigLow := mustBuild(t, builder.NewPromotionBuilder().
			WithPercentage(50).
			WithPriority(1))

		lines := []pricing.LineItem{line(itemID, categoryID, 1, 40000)}
		candidates := selector.ItemCandidates([]*promotion.Promotion{bigLow, smallHigh}, now)
		result := selector.PriceLines(lines, candidates)

		require.Len(t, result.Applied, 1)
		assert.Equal(t, smallHigh.ID(), result.Applied[0].PromotionID)
		assert.Equal(t, 2000.0, result.PromotionDiscount, "5% of 40000, not 50%")
	})

	t.Run("campaigns never stack on one line", func(t *testing.T) {
		first := mustBuild(t, builder.NewPromotionBuilder().WithPercentage(10).WithPriority(2))
		second := mustBuild(t, builder.NewPromotionBuilder().WithPercentage(10).WithPriority(1))

		lines := []pricing.LineItem{line(itemID, categoryID, 1, 40000)}
		result := selector.PriceLines(lines, []*promotion.Promotion{first, second})

		assert.Equal(t, 4000.0, result.PromotionDiscount)
		require.Len(t, result.Applied, 1)
	})

	t.Run("zero discount falls through to the next candidate", func(t *testing.T) {
		// Uniform price above the line price yields zero and must not
		// block the lower-priority percentage.
		noOp := mustBuild(t, builder.NewPromotionBuilder().
			WithKind(promotion.KindHappyHour).
			WithUniformPrice(50000).
			WithPriority(5))
		pct := mustBuild(t, builder.NewPromotionBuilder().WithPercentage(10).WithPriority(1))

		lines := []pricing.LineItem{line(itemID, categoryID, 1, 40000)}
		result := selector.PriceLines(lines, []*promotion.Promotion{noOp, pct})

		require.Len(t, result.Applied, 1)
		assert.Equal(t, pct.ID(), result.Applied[0].PromotionID)
		assert.Equal(t, 4000.0, result.PromotionDiscount)
	})

	t.Run("scope limits which lines a campaign prices", func(t *testing.T) {
		coffee := uuid.New()
		cake := uuid.New()
		coffeeOnly := mustBuild(t, builder.NewPromotionBuilder().
			WithPercentage(50).
			WithItemScope(coffee))

		lines := []pricing.LineItem{
			line(coffee, categoryID, 1, 10000),
			line(cake, categoryID, 1, 20000),
		}
		result := selector.PriceLines(lines, []*promotion.Promotion{coffeeOnly})

		assert.Equal(t, 5000.0, result.PromotionDiscount)
		require.NotNil(t, result.Lines[0].Applied)
		assert.Nil(t, result.Lines[1].Applied)
	})

	t.Run("one campaign across several lines is merged in the summary", func(t *testing.T) {
		all := mustBuild(t, builder.NewPromotionBuilder().WithPercentage(10))

		lines := []pricing.LineItem{
			line(uuid.New(), categoryID, 1, 10000),
			line(uuid.New(), categoryID, 2, 5000),
		}
		result := selector.PriceLines(lines, []*promotion.Promotion{all})

		require.Len(t, result.Applied, 1)
		assert.Equal(t, 2000.0, result.Applied[0].TotalDiscount)
		assert.Len(t, result.Applied[0].AffectedLineIDs, 2)
	})

	t.Run("no candidates leaves prices untouched", func(t *testing.T) {
		lines := []pricing.LineItem{line(itemID, categoryID, 2, 15000)}
		result := selector.PriceLines(lines, nil)

		assert.Equal(t, 30000.0, result.Subtotal)
		assert.Equal(t, 0.0, result.PromotionDiscount)
		assert.Equal(t, 30000.0, result.Total)
		assert.Empty(t, result.Applied)
	})
}

func TestPriceOrderLevel(t *testing.T) {
	selector := pricing.NewSelector()
	categoryID := uuid.New()

	t.Run("ten percent off the whole order", func(t *testing.T) {
		orderPct := mustBuild(t, builder.NewPromotionBuilder().
			WithKind(promotion.KindOrderPercentage).
			WithPercentage(10))

		lines := []pricing.LineItem{
			line(uuid.New(), categoryID, 1, 20000),
			line(uuid.New(), categoryID, 1, 18000),
		}
		result := selector.PriceOrderLevel(lines, []*promotion.Promotion{orderPct})

		assert.Equal(t, 38000.0, result.Subtotal)
		assert.Equal(t, 3800.0, result.PromotionDiscount)
		assert.Equal(t, 34200.0, result.Total)
		require.Len(t, result.Applied, 1)
		assert.Len(t, result.Applied[0].AffectedLineIDs, 2)

		for _, l := range result.Lines {
			assert.Equal(t, l.OriginalTotal(), l.FinalTotal, "lines keep original prices")
			assert.Nil(t, l.Applied)
		}
	})

	t.Run("minimum order gate suppresses the discount", func(t *testing.T) {
		gated := mustBuild(t, builder.NewPromotionBuilder().
			WithKind(promotion.KindOrderPercentage).
			WithPercentage(10).
			WithOrderAmountGate(50000, nil))

		lines := []pricing.LineItem{line(uuid.New(), categoryID, 1, 38000)}
		result := selector.PriceOrderLevel(lines, []*promotion.Promotion{gated})

		assert.Equal(t, 0.0, result.PromotionDiscount)
		assert.Empty(t, result.Applied)
	})

	t.Run("fixed discount larger than subtotal clamps total at zero", func(t *testing.T) {
		big := mustBuild(t, builder.NewPromotionBuilder().
			WithKind(promotion.KindOrderFixed).
			WithFixedAmount(100000))

		lines := []pricing.LineItem{line(uuid.New(), categoryID, 1, 38000)}
		result := selector.PriceOrderLevel(lines, []*promotion.Promotion{big})

		assert.Equal(t, 0.0, result.Total)
		assert.GreaterOrEqual(t, result.Total, 0.0)
	})
}
