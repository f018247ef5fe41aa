package promotion

import "errors"

var (
	ErrInvalidPercentage   = errors.New("percentage must be greater than 0 and at most 100")
	ErrInvalidFixedAmount  = errors.New("fixed amount cannot be negative")
	ErrInvalidUniformPrice = errors.New("uniform price cannot be negative")
)

type ShapeKind string

const (
	ShapePercentage   ShapeKind = "percentage"
	ShapeFixedAmount  ShapeKind = "fixed_amount"
	ShapeUniformPrice ShapeKind = "uniform_price"
)

// DiscountShape is a tagged variant: exactly one of the three shapes, each
// carrying only its own parameter. Invalid combinations are unrepresentable.
type DiscountShape struct {
	kind  ShapeKind
	value float64
}

func NewPercentageShape(percent float64) (DiscountShape, error) {
	if percent <= 0 || percent > 100 {
		return DiscountShape{}, ErrInvalidPercentage
	}
	return DiscountShape{kind: ShapePercentage, value: percent}, nil
}

func NewFixedAmountShape(amount float64) (DiscountShape, error) {
	if amount < 0 {
		return DiscountShape{}, ErrInvalidFixedAmount
	}
	return DiscountShape{kind: ShapeFixedAmount, value: amount}, nil
}

func NewUniformPriceShape(price float64) (DiscountShape, error) {
	if price < 0 {
		return DiscountShape{}, ErrInvalidUniformPrice
	}
	return DiscountShape{kind: ShapeUniformPrice, value: price}, nil
}

func (s DiscountShape) Kind() ShapeKind {
	return s.kind
}

func (s DiscountShape) Value() float64 {
	return s.value
}

// LineDiscount computes the discount for one order line. The result is always
// within [0, unitPrice*quantity].
func (s DiscountShape) LineDiscount(unitPrice float64, quantity int) float64 {
	if unitPrice <= 0 || quantity <= 0 {
		return 0
	}
	lineTotal := unitPrice * float64(quantity)

	switch s.kind {
	case ShapePercentage:
		return lineTotal * s.value / 100

	case ShapeFixedAmount:
		discount := s.value * float64(quantity)
		if discount > lineTotal {
			return lineTotal
		}
		return discount

	case ShapeUniformPrice:
		// A uniform price above the original price is not a surcharge.
		target := s.value * float64(quantity)
		if target >= lineTotal {
			return 0
		}
		return lineTotal - target

	default:
		return 0
	}
}

// OrderDiscount applies the shape once against the whole order subtotal.
// Uniform price has no order-level meaning and yields zero.
func (s DiscountShape) OrderDiscount(subtotal float64) float64 {
	if subtotal <= 0 {
		return 0
	}

	switch s.kind {
	case ShapePercentage:
		return subtotal * s.value / 100

	case ShapeFixedAmount:
		if s.value > subtotal {
			return subtotal
		}
		return s.value

	default:
		return 0
	}
}
