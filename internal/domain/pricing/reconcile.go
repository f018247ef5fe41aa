package pricing

import (
	"fmt"
	"math"
	"strconv"
)

// ReconciliationTolerance absorbs rounding from percentage math. Monetary
// values are integer-valued in practice, so anything past this is tampering
// or a client-side calculation bug, never a currency-unit artifact.
const ReconciliationTolerance = 0.01

// ReconciliationError carries both totals so callers can show a precise
// diagnostic. It is never auto-corrected: silently trusting either number
// risks revenue loss or an overcharge.
type ReconciliationError struct {
	Submitted  float64
	Calculated float64
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("Bill total (%s) does not match calculated total (%s)",
		formatAmount(e.Submitted), formatAmount(e.Calculated))
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Reconcile compares the client-submitted total against the recomputed one.
// It runs unconditionally, discounts or not.
func Reconcile(submitted, calculated float64) error {
	if math.Abs(submitted-calculated) <= ReconciliationTolerance {
		return nil
	}
	return &ReconciliationError{Submitted: submitted, Calculated: calculated}
}
