package queries

import (
	"errors"

	"smartlogi/internal/pkg/guard"
)

var (
	ErrUnassignedPriorityQueryIsNotConstructed = errors.New(
		"UnassignedPriorityQuery must be created via NewUnassignedPriorityQuery constructor",
	)
)

// UnassignedPriorityQuery retrieves urgent and express parcels that have no
// courier yet. Dispatchers work this list to keep priority promises.
type UnassignedPriorityQuery struct {
	guard guard.ConstructorGuard
}

// NewUnassignedPriorityQuery creates a query for unassigned priority parcels.
// This is a parameterless query.
func NewUnassignedPriorityQuery() UnassignedPriorityQuery {
	return UnassignedPriorityQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q UnassignedPriorityQuery) Validate() error {
	return q.guard.Validate(ErrUnassignedPriorityQueryIsNotConstructed)
}
