package order

import (
	"errors"
	"time"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoLines is returned when attempting to create an order without lines.
	// Checkout of an empty cart must be rejected before reaching this constructor,
	// but the aggregate enforces the invariant regardless.
	ErrOrderHasNoLines = errors.New("order must contain at least one line")

	// ErrOrderAlreadyDelivered is returned when attempting to assign delivery crew
	// to an order that has already been delivered.
	ErrOrderAlreadyDelivered = errors.New("order is already delivered")
)

// Order represents a placed customer order. It is the aggregate root that
// owns the immutable line snapshots created at checkout and manages the
// delivery lifecycle.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and customer identifier
//   - Contains at least one line
//   - total equals the sum of its lines' prices and never changes after creation
//   - Customer and lines are immutable after creation
//   - Only delivery crew assignment and status may change, via validated methods
//   - Status transitions follow the Status state machine
type Order struct {
	id kernel.UUID

	// customerID is the user whose cart produced this order
	customerID kernel.UUID

	// deliveryCrewID is the assigned delivery crew member (nil if unassigned)
	deliveryCrewID *kernel.UUID

	status    Status
	total     kernel.Money
	createdAt time.Time

	// lines are the immutable per-item snapshots taken at checkout
	lines []Line

	isConstructed bool
}

// NewOrder creates an order from checkout line snapshots.
// The total is computed as the sum of the lines' prices; the order starts
// in Placed status with no delivery crew assigned.
//
// Parameters:
//   - id: unique identifier for the order
//   - customerID: the user checking out
//   - createdAt: checkout timestamp
//   - lines: at least one line snapshot
//
// Returns a validation error if any identifier is invalid or lines is empty.
func NewOrder(id, customerID kernel.UUID, createdAt time.Time, lines []Line) (*Order, error) {
	if err := errors.Join(id.Validate(), customerID.Validate()); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrOrderHasNoLines
	}

	total := kernel.ZeroMoney()
	for _, line := range lines {
		total = total.Add(line.Price())
	}

	return &Order{
		id:            id,
		customerID:    customerID,
		status:        Placed,
		total:         total,
		createdAt:     createdAt,
		lines:         append([]Line(nil), lines...),
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order aggregate from persistent storage.
// The stored total is verified against the sum of the restored lines so a
// corrupted row cannot silently re-enter the domain.
func RestoreOrder(
	id, customerID kernel.UUID,
	deliveryCrewID *kernel.UUID,
	status Status,
	total kernel.Money,
	createdAt time.Time,
	lines []Line,
) (*Order, error) {
	order, err := NewOrder(id, customerID, createdAt, lines)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if !order.total.IsEqual(total) {
		return nil, errs.NewValueIsInvalidErrorWithCause("total",
			errors.New("stored total does not equal the sum of line prices"))
	}
	if deliveryCrewID != nil {
		if err = deliveryCrewID.Validate(); err != nil {
			return nil, err
		}
		crewID := *deliveryCrewID
		order.deliveryCrewID = &crewID
	}

	order.status = status
	return order, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// DeliveryCrew returns the assigned delivery crew member's ID.
// Returns nil if no crew is assigned.
func (o *Order) DeliveryCrew() *kernel.UUID {
	return o.deliveryCrewID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Total returns the order total computed at checkout.
func (o *Order) Total() kernel.Money {
	return o.total
}

// CreatedAt returns the checkout timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Lines returns the immutable line snapshots.
func (o *Order) Lines() []Line {
	return o.lines
}

// AssignDeliveryCrew assigns the order to a delivery crew member.
// Reassignment is allowed while the order is not yet delivered; assigning
// the same crew member again is a harmless no-op. The caller is responsible
// for verifying that the target identity actually holds the delivery crew
// role — that is an access-control concern, not an aggregate one.
//
// Returns ErrOrderAlreadyDelivered if the order has been delivered.
func (o *Order) AssignDeliveryCrew(crewID kernel.UUID) error {
	if err := crewID.Validate(); err != nil {
		return err
	}
	if o.status == Delivered {
		return ErrOrderAlreadyDelivered
	}

	o.deliveryCrewID = &crewID
	return nil
}

// StartDelivery transitions the order to OutForDelivery.
// Re-applying the current status succeeds as a no-op; a delivered order
// cannot regress.
func (o *Order) StartDelivery() error {
	newStatus, err := o.status.StartDelivery()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// CompleteDelivery transitions the order to Delivered.
// Delivered is a final state; completing an already delivered order is a no-op.
func (o *Order) CompleteDelivery() error {
	newStatus, err := o.status.CompleteDelivery()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}
