package services

import (
	"errors"
	"fmt"

	"littlelemon/internal/core/domain/model/identity"
)

// ErrForbidden is returned when the caller's roles do not permit the requested action.
// Transport adapters distinguish anonymous callers (401) from authenticated callers
// that lack the required role (403).
var ErrForbidden = errors.New("caller is not allowed to perform this action")

// Action enumerates the protected operations of the ordering platform.
type Action int

const (
	ActionUnknown Action = iota
	// ActionMenuRead covers browsing menu items and categories.
	ActionMenuRead
	// ActionMenuWrite covers creating, updating and deleting menu items.
	ActionMenuWrite
	// ActionGroupAdmin covers managing manager and delivery crew membership.
	ActionGroupAdmin
	// ActionCartManage covers reading, filling and clearing the caller's own cart.
	ActionCartManage
	// ActionOrderList covers listing orders. Visibility scoping is applied by the query.
	ActionOrderList
	// ActionOrderRead covers reading a single order. Ownership is checked by the handler.
	ActionOrderRead
	// ActionOrderUpdate covers crew assignment and status transitions.
	ActionOrderUpdate
	// ActionOrderDelete covers removing an order entirely.
	ActionOrderDelete
)

// AccessPolicy is a domain service deciding whether a caller may perform an action.
//
// Business rules:
//   - Menu reads are open to everyone, including anonymous callers.
//   - Menu writes and group administration require the manager role or staff flag.
//   - Carts belong to ordinary customers: managers and delivery crew have no cart.
//   - Order listing and reading are open to every authenticated caller; the
//     query layer narrows visibility per role.
//   - Order updates require the manager or delivery crew role. Crew members may
//     only change status, which the update handler enforces.
//   - Order deletion requires the manager role.
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// Decide returns nil when the caller may perform the action and ErrForbidden otherwise.
// Menu reads are the only action open to anonymous callers; everything else
// requires an authenticated identity.
func (p AccessPolicy) Decide(caller identity.Caller, action Action) error {
	switch action {
	case ActionMenuRead:
		return nil
	case ActionOrderList, ActionOrderRead:
		if caller.IsAnonymous() {
			return ErrForbidden
		}
		return nil
	case ActionMenuWrite, ActionGroupAdmin, ActionOrderDelete:
		if p.isManager(caller) {
			return nil
		}
		return ErrForbidden
	case ActionCartManage:
		if caller.IsAnonymous() || p.isManager(caller) || caller.HasRole(identity.RoleDeliveryCrew) {
			return ErrForbidden
		}
		return nil
	case ActionOrderUpdate:
		if p.isManager(caller) || caller.HasRole(identity.RoleDeliveryCrew) {
			return nil
		}
		return ErrForbidden
	default:
		panic(fmt.Sprintf("unknown action: %d", action))
	}
}

func (p AccessPolicy) isManager(caller identity.Caller) bool {
	return caller.IsStaff() || caller.HasRole(identity.RoleManager)
}
