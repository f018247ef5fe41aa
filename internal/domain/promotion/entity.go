package promotion

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidActiveWindow = errors.New("campaign end date must be after start date")
	ErrShapeKindMismatch   = errors.New("discount shape does not match promotion kind")
	ErrInvalidUsageLimit   = errors.New("usage limit cannot be negative")
)

type Kind string

const (
	KindOrderPercentage Kind = "order_percentage"
	KindOrderFixed      Kind = "order_fixed"
	KindItemPercentage  Kind = "item_percentage"
	KindItemFixed       Kind = "item_fixed"
	KindHappyHour       Kind = "happy_hour"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindOrderPercentage, KindOrderFixed, KindItemPercentage, KindItemFixed, KindHappyHour:
		return true
	default:
		return false
	}
}

// IsOrderLevel reports whether the kind discounts the whole order subtotal
// rather than individual lines.
func (k Kind) IsOrderLevel() bool {
	return k == KindOrderPercentage || k == KindOrderFixed
}

func (k Kind) IsItemLevel() bool {
	return k == KindItemPercentage || k == KindItemFixed || k == KindHappyHour
}

// Promotion is a discount campaign. Only HappyHour may carry any of the three
// discount shapes; the other kinds are pinned to the shape their name implies,
// so a percentage campaign with a uniform-price payload cannot be built.
type Promotion struct {
	id               uuid.UUID
	name             string
	code             *string
	kind             Kind
	shape            DiscountShape
	scope            Scope
	startDate        time.Time
	endDate          time.Time
	recurrence       Recurrence
	priority         int
	usageLimit       *int32
	usageCount       int32
	perCustomerLimit *int32 // declared in the data model, not consulted anywhere yet
	minOrderAmount   float64
	maxOrderAmount   *float64
	active           bool
}

type Params struct {
	ID               uuid.UUID
	Name             string
	Code             *string
	Kind             Kind
	Shape            DiscountShape
	Scope            Scope
	StartDate        time.Time
	EndDate          time.Time
	Recurrence       Recurrence
	Priority         int
	UsageLimit       *int32
	UsageCount       int32
	PerCustomerLimit *int32
	MinOrderAmount   float64
	MaxOrderAmount   *float64
	Active           bool
}

func New(p Params) (*Promotion, error) {
	if !p.Kind.IsValid() {
		return nil, errors.New("unknown promotion kind")
	}
	if !p.EndDate.After(p.StartDate) {
		return nil, ErrInvalidActiveWindow
	}
	if err := validateShapeForKind(p.Kind, p.Shape); err != nil {
		return nil, err
	}
	if p.UsageLimit != nil && *p.UsageLimit < 0 {
		return nil, ErrInvalidUsageLimit
	}

	return &Promotion{
		id:               p.ID,
		name:             p.Name,
		code:             p.Code,
		kind:             p.Kind,
		shape:            p.Shape,
		scope:            p.Scope,
		startDate:        p.StartDate,
		endDate:          p.EndDate,
		recurrence:       p.Recurrence,
		priority:         p.Priority,
		usageLimit:       p.UsageLimit,
		usageCount:       p.UsageCount,
		perCustomerLimit: p.PerCustomerLimit,
		minOrderAmount:   p.MinOrderAmount,
		maxOrderAmount:   p.MaxOrderAmount,
		active:           p.Active,
	}, nil
}

func validateShapeForKind(kind Kind, shape DiscountShape) error {
	switch kind {
	case KindOrderPercentage, KindItemPercentage:
		if shape.Kind() != ShapePercentage {
			return ErrShapeKindMismatch
		}
	case KindOrderFixed, KindItemFixed:
		if shape.Kind() != ShapeFixedAmount {
			return ErrShapeKindMismatch
		}
	case KindHappyHour:
		// any shape
	}
	return nil
}

func (p *Promotion) ID() uuid.UUID            { return p.id }
func (p *Promotion) Name() string             { return p.name }
func (p *Promotion) Code() *string            { return p.code }
func (p *Promotion) Kind() Kind               { return p.kind }
func (p *Promotion) Shape() DiscountShape     { return p.shape }
func (p *Promotion) Scope() Scope             { return p.scope }
func (p *Promotion) StartDate() time.Time     { return p.startDate }
func (p *Promotion) EndDate() time.Time       { return p.endDate }
func (p *Promotion) Recurrence() Recurrence   { return p.recurrence }
func (p *Promotion) Priority() int            { return p.priority }
func (p *Promotion) UsageLimit() *int32       { return p.usageLimit }
func (p *Promotion) UsageCount() int32        { return p.usageCount }
func (p *Promotion) PerCustomerLimit() *int32 { return p.perCustomerLimit }
func (p *Promotion) MinOrderAmount() float64  { return p.minOrderAmount }
func (p *Promotion) MaxOrderAmount() *float64 { return p.maxOrderAmount }
func (p *Promotion) IsActive() bool           { return p.active }

func (p *Promotion) IsWithinWindow(t time.Time) bool {
	return !t.Before(p.startDate) && !t.After(p.endDate)
}

// IsRunningAt combines the active flag, the absolute window, and the
// recurrence check against one injected moment.
func (p *Promotion) IsRunningAt(t time.Time) bool {
	return p.active && p.IsWithinWindow(t) && p.recurrence.Matches(t)
}

func (p *Promotion) HasUsageRemaining() bool {
	if p.usageLimit == nil {
		return true
	}
	return p.usageCount < *p.usageLimit
}

// CoversLine is the eligibility check for one order line.
func (p *Promotion) CoversLine(itemID, categoryID uuid.UUID) bool {
	return p.scope.Covers(itemID, categoryID)
}

// LineDiscount computes this campaign's discount for one line. Callers apply
// it only after CoversLine and IsRunningAt hold.
func (p *Promotion) LineDiscount(unitPrice float64, quantity int) float64 {
	return p.shape.LineDiscount(unitPrice, quantity)
}

// OrderDiscount computes the order-level discount, gated on the campaign's
// min/max order amount. Zero when the subtotal falls outside the gate.
func (p *Promotion) OrderDiscount(subtotal float64) float64 {
	if subtotal < p.minOrderAmount {
		return 0
	}
	if p.maxOrderAmount != nil && subtotal > *p.maxOrderAmount {
		return 0
	}
	return p.shape.OrderDiscount(subtotal)
}
