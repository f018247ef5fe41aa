//go:build unit

package promotion_test

import (
	"testing"

	"promo-pricing-service/internal/domain/promotion"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPercentageShape(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
		errIs   error
	}{
		{name: "valid percentage", percent: 20},
		{name: "full discount", percent: 100},
		{name: "zero percent rejected", percent: 0, errIs: promotion.ErrInvalidPercentage},
		{name: "negative rejected", percent: -5, errIs: promotion.ErrInvalidPercentage},
		{name: "over 100 rejected", percent: 101, errIs: promotion.ErrInvalidPercentage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape, err := promotion.NewPercentageShape(tt.percent)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, promotion.ShapePercentage, shape.Kind())
			assert.Equal(t, tt.percent, shape.Value())
		})
	}
}

func TestNewFixedAmountShape(t *testing.T) {
	_, err := promotion.NewFixedAmountShape(-1)
	assert.ErrorIs(t, err, promotion.ErrInvalidFixedAmount)

	shape, err := promotion.NewFixedAmountShape(5000)
	require.NoError(t, err)
	assert.Equal(t, promotion.ShapeFixedAmount, shape.Kind())
}

func TestNewUniformPriceShape(t *testing.T) {
	_, err := promotion.NewUniformPriceShape(-1)
	assert.ErrorIs(t, err, promotion.ErrInvalidUniformPrice)

	shape, err := promotion.NewUniformPriceShape(35000)
	require.NoError(t, err)
	assert.Equal(t, promotion.ShapeUniformPrice, shape.Kind())
}

func TestLineDiscount(t *testing.T) {
	t.Run("uniform price brings a 43000 item to 35000", func(t *testing.T) {
		shape, err := promotion.NewUniformPriceShape(35000)
		require.NoError(t, err)

		assert.Equal(t, 8000.0, shape.LineDiscount(43000, 1))
	})

	t.Run("uniform price scales with quantity", func(t *testing.T) {
		shape, err := promotion.NewUniformPriceShape(35000)
		require.NoError(t, err)

		assert.Equal(t, 16000.0, shape.LineDiscount(43000, 2))
	})

	t.Run("uniform price above unit price never surcharges", func(t *testing.T) {
		shape, err := promotion.NewUniformPriceShape(50000)
		require.NoError(t, err)

		assert.Equal(t, 0.0, shape.LineDiscount(43000, 1))
	})

	t.Run("percentage takes a share of the line total", func(t *testing.T) {
		shape, err := promotion.NewPercentageShape(20)
		require.NoError(t, err)

		assert.Equal(t, 8000.0, shape.LineDiscount(40000, 1))
		assert.Equal(t, 16000.0, shape.LineDiscount(40000, 2))
	})

	t.Run("fixed amount applies per unit", func(t *testing.T) {
		shape, err := promotion.NewFixedAmountShape(5000)
		require.NoError(t, err)

		assert.Equal(t, 5000.0, shape.LineDiscount(43000, 1))
		assert.Equal(t, 10000.0, shape.LineDiscount(43000, 2))
	})

	t.Run("fixed amount clamps at the line total", func(t *testing.T) {
		shape, err := promotion.NewFixedAmountShape(5000)
		require.NoError(t, err)

		assert.Equal(t, 3000.0, shape.LineDiscount(3000, 1))
	})

	t.Run("non-positive inputs yield zero", func(t *testing.T) {
		shape, err := promotion.NewPercentageShape(50)
		require.NoError(t, err)

		assert.Equal(t, 0.0, shape.LineDiscount(0, 1))
		assert.Equal(t, 0.0, shape.LineDiscount(1000, 0))
	})
}

func TestOrderDiscount(t *testing.T) {
	t.Run("percentage of subtotal", func(t *testing.T) {
		shape, err := promotion.NewPercentageShape(10)
		require.NoError(t, err)

		assert.Equal(t, 3800.0, shape.OrderDiscount(38000))
	})

	t.Run("fixed amount clamps at subtotal", func(t *testing.T) {
		shape, err := promotion.NewFixedAmountShape(50000)
		require.NoError(t, err)

		assert.Equal(t, 38000.0, shape.OrderDiscount(38000))
	})

	t.Run("uniform price has no order-level meaning", func(t *testing.T) {
		shape, err := promotion.NewUniformPriceShape(35000)
		require.NoError(t, err)

		assert.Equal(t, 0.0, shape.OrderDiscount(38000))
	})
}
