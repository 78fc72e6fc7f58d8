package services

import (
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/user"
	"laundry/internal/pkg/errs"
)

// AccessPolicy is a domain service that decides which actors may perform
// which operations on orders.
//
// Business rules:
//   - Business actors are platform staff and may see and manage every order
//   - Customer actors may create orders and see only their own
//   - Delivery actors may see only orders assigned to them and never
//     change anything
//
// The policy is pure and synchronous: it inspects the actor and the order
// and returns an error without side effects. Callers decide whether a
// denial surfaces as forbidden or is collapsed into not-found.
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// CanCreateOrder reports whether the actor may place a new order.
// Only customers place orders; staff and couriers act on existing ones.
func (p AccessPolicy) CanCreateOrder(actor user.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	if actor.Role() != user.Customer {
		return errs.NewAccessForbiddenError("create order")
	}
	return nil
}

// CanReadOrder reports whether the actor may see the given order.
//
// Business sees everything. A customer sees an order they placed. A courier
// sees an order assigned to them.
func (p AccessPolicy) CanReadOrder(actor user.Actor, o *order.Order) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}

	//nolint:exhaustive
	switch actor.Role() {
	case user.Business:
		return nil
	case user.Customer:
		if o.CustomerID().IsEqual(actor.ID()) {
			return nil
		}
	case user.Delivery:
		if deliveryID := o.DeliveryID(); deliveryID != nil && deliveryID.IsEqual(actor.ID()) {
			return nil
		}
	}
	return errs.NewAccessForbiddenError("read order")
}

// CanChangeStatus reports whether the actor may move the order through its
// lifecycle. Status changes are centralized at the business side.
func (p AccessPolicy) CanChangeStatus(actor user.Actor, o *order.Order) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}

	if actor.Role() != user.Business {
		return errs.NewAccessForbiddenError("change order status")
	}
	return nil
}

// CanAssignDelivery reports whether the actor may assign a courier to an
// order. Only business staff dispatch couriers.
func (p AccessPolicy) CanAssignDelivery(actor user.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	if actor.Role() != user.Business {
		return errs.NewAccessForbiddenError("assign delivery")
	}
	return nil
}

// CanRateOrder reports whether the actor may leave a rating on the order.
// Only parties to the order (its customer, business or assigned courier)
// may rate each other.
func (p AccessPolicy) CanRateOrder(actor user.Actor, o *order.Order) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}

	if !o.IsParty(actor.ID()) {
		return errs.NewAccessForbiddenError("rate order")
	}
	return nil
}
