package pricing

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNoLineItems     = errors.New("order must contain at least one line item")
	ErrInvalidQuantity = errors.New("line quantity must be at least 1")
	ErrNegativePrice   = errors.New("line unit price cannot be negative")
)

// LineItem is one submitted order line, taken as given from the catalog.
type LineItem struct {
	LineID     uuid.UUID
	ItemID     uuid.UUID
	CategoryID uuid.UUID
	Quantity   int
	UnitPrice  float64
}

func (l LineItem) OriginalTotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

func ValidateLines(lines []LineItem) error {
	if len(lines) == 0 {
		return ErrNoLineItems
	}
	for _, l := range lines {
		if l.Quantity < 1 {
			return ErrInvalidQuantity
		}
		if l.UnitPrice < 0 {
			return ErrNegativePrice
		}
	}
	return nil
}

// AppliedLine records the single campaign applied to a line. No stacking: a
// priced line carries at most one of these.
type AppliedLine struct {
	PromotionID   uuid.UUID
	PromotionName string
	Discount      float64
}

type PricedLine struct {
	LineItem
	FinalUnitPrice float64
	FinalTotal     float64
	Applied        *AppliedLine
}
