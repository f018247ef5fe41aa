//go:build unit

package pricing_test

import (
	"testing"

	"promo-pricing-service/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcile(t *testing.T) {
	t.Run("exact match passes", func(t *testing.T) {
		assert.NoError(t, pricing.Reconcile(34200, 34200))
	})

	t.Run("difference within tolerance passes", func(t *testing.T) {
		assert.NoError(t, pricing.Reconcile(34200.009, 34200))
		assert.NoError(t, pricing.Reconcile(34200, 34200.01))
	})

	t.Run("difference past tolerance fails", func(t *testing.T) {
		err := pricing.Reconcile(34200.011, 34200)
		require.Error(t, err)

		var reconciliationErr *pricing.ReconciliationError
		require.ErrorAs(t, err, &reconciliationErr)
		assert.Equal(t, 34200.011, reconciliationErr.Submitted)
		assert.Equal(t, 34200.0, reconciliationErr.Calculated)
	})

	t.Run("client total from stale promotions is rejected", func(t *testing.T) {
		// Client applied a discount the engine no longer grants.
		err := pricing.Reconcile(30000, 34200)
		require.Error(t, err)

		var reconciliationErr *pricing.ReconciliationError
		require.ErrorAs(t, err, &reconciliationErr)
		assert.Equal(t,
			"Bill total (30000) does not match calculated total (34200)",
			reconciliationErr.Error())
	})

	t.Run("message keeps fractional amounts exact", func(t *testing.T) {
		err := pricing.Reconcile(100.5, 200.25)
		require.Error(t, err)
		assert.Equal(t,
			"Bill total (100.5) does not match calculated total (200.25)",
			err.Error())
	})

	t.Run("never auto-corrects in either direction", func(t *testing.T) {
		assert.Error(t, pricing.Reconcile(100, 200), "client under")
		assert.Error(t, pricing.Reconcile(200, 100), "client over")
	})
}
