package parcel

import (
	"fmt"

	"smartlogi/internal/pkg/errs"
)

// ErrInvalidTransition is reserved for a stricter status machine variant.
// The current policy permits every transition between defined statuses, so
// this error is never returned today; it exists so that an explicit
// allowed-transition table can be introduced without changing callers.
var ErrInvalidTransition = errs.NewValueIsInvalidError("status transition is not allowed")

// Status represents the delivery lifecycle state of a parcel.
//
// The tracking workflow records what operators report rather than enforcing
// a fixed progression: any defined status may follow any other, including
// moves out of Delivered or Cancelled. See TransitionTo.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusCreated is the initial status assigned at parcel registration.
	StatusCreated

	// StatusCollected indicates the parcel was picked up from the sender.
	StatusCollected

	// StatusInStock indicates the parcel is held in a warehouse.
	StatusInStock

	// StatusInTransit indicates the parcel is on its way to the destination.
	StatusInTransit

	// StatusDelivered indicates the parcel reached its recipient.
	StatusDelivered

	// StatusCancelled indicates the shipment was cancelled.
	StatusCancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "UNKNOWN",
		StatusCreated:   "CREATED",
		StatusCollected: "COLLECTED",
		StatusInStock:   "IN_STOCK",
		StatusInTransit: "IN_TRANSIT",
		StatusDelivered: "DELIVERED",
		StatusCancelled: "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusCreated:   "CREATED",
		StatusCollected: "COLLECTED",
		StatusInStock:   "IN_STOCK",
		StatusInTransit: "IN_TRANSIT",
		StatusDelivered: "DELIVERED",
		StatusCancelled: "CANCELLED",
	}
}

// StatusFromString parses the canonical upper-snake representation of a
// status. Returns an error for anything that is not a defined status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the six defined statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical upper-snake name of the status, or "UNKNOWN"
// for undefined values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// TransitionTo applies a requested status transition and returns the new status.
//
// Policy: every pair of defined statuses is permitted, including re-entering
// the current status and leaving Delivered or Cancelled. The machine only
// rejects targets that are not defined statuses. A stricter variant would
// consult an allowed-transition table here and return ErrInvalidTransition
// for disallowed pairs.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return StatusUnknown, err
	}
	return next, nil
}
