// Package order implements the Order aggregate for the ordering system.
//
// An Order is created exactly once, at checkout, from the snapshot of a
// user's cart. Its lines record quantity and unit price as they were at
// that moment; subsequent menu price changes never alter an existing order.
// The aggregate exposes only three mutations — delivery crew assignment,
// StartDelivery, and CompleteDelivery — and the Status state machine keeps
// the lifecycle linear: Placed, OutForDelivery, Delivered, with no
// regression from the final state.
package order
