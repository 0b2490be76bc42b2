package order

import (
	"fmt"

	"littlelemon/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct delivery workflow.
//
// State transitions:
//
//	Placed ──> OutForDelivery ──> Delivered
//	   └──────────────────────────────┘
//	  (staff may mark delivered directly)
//
// Transitions never regress: a delivered order stays delivered.
// Re-applying the current state is a no-op that succeeds, so repeated
// updates with the same value are harmless.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status assigned at checkout.
	// Orders in this status await delivery crew assignment and dispatch.
	Placed

	// OutForDelivery indicates the order has left the restaurant.
	OutForDelivery

	// Delivered indicates the order reached the customer.
	// This is a final state with no further transitions allowed.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Placed:         "Placed",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:         "Placed",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Placed, OutForDelivery, Delivered.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StartDelivery transitions the status to OutForDelivery.
//
// Valid transitions:
//   - Placed -> OutForDelivery (dispatch)
//   - OutForDelivery -> OutForDelivery (no-op re-apply)
//
// Invalid transitions:
//   - Delivered -> OutForDelivery (no regression)
//   - Unknown -> OutForDelivery (invalid initial state)
//
// Returns (OutForDelivery, nil) on a valid transition, or (0, error)
// when the transition is not allowed from the current status.
func (s Status) StartDelivery() (Status, error) {
	if s != Placed && s != OutForDelivery {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start delivery", s.String()),
		)
	}

	return OutForDelivery, nil
}

// CompleteDelivery transitions the status to Delivered.
//
// Valid transitions:
//   - OutForDelivery -> Delivered (normal completion)
//   - Placed -> Delivered (staff may close an order directly)
//   - Delivered -> Delivered (no-op re-apply)
//
// Invalid transitions:
//   - Unknown -> Delivered (invalid initial state)
//
// Returns (Delivered, nil) on a valid transition, or (0, error)
// when the transition is not allowed from the current status.
func (s Status) CompleteDelivery() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	return Delivered, nil
}
