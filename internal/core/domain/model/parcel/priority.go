package parcel

import (
	"fmt"

	"smartlogi/internal/pkg/errs"
)

// Priority represents the handling priority of a parcel.
// Urgent and Express parcels surface in the unassigned-priority report
// until a courier is assigned.
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	PriorityUnknown Priority = iota

	// PriorityNormal is the default handling priority.
	PriorityNormal

	// PriorityUrgent marks parcels that should be assigned ahead of normal ones.
	PriorityUrgent

	// PriorityExpress marks parcels with the fastest promised handling.
	PriorityExpress
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityUnknown: "UNKNOWN",
		PriorityNormal:  "NORMAL",
		PriorityUrgent:  "URGENT",
		PriorityExpress: "EXPRESS",
	}
}

func getValidPriorityStrings() map[Priority]string {
	//nolint:exhaustive // PriorityUnknown is intentionally excluded as it's invalid
	return map[Priority]string{
		PriorityNormal:  "NORMAL",
		PriorityUrgent:  "URGENT",
		PriorityExpress: "EXPRESS",
	}
}

// PriorityFromString parses the canonical upper-case representation of a
// priority. Returns an error for anything that is not a defined priority.
func PriorityFromString(s string) (Priority, error) {
	for priority, str := range getValidPriorityStrings() {
		if str == s {
			return priority, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause("priority is invalid",
		fmt.Errorf("%q is not a valid priority", s))
}

// Validate checks if the Priority value is one of the three defined priorities.
func (p Priority) Validate() error {
	if _, ok := getValidPriorityStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priority is invalid",
			fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

// String returns the canonical name of the priority, or "UNKNOWN" for
// undefined values. Implements fmt.Stringer.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "UNKNOWN"
}
