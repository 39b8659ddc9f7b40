package queries

import (
	"errors"
	"time"

	"smartlogi/internal/pkg/guard"
)

var (
	ErrOverdueParcelsQueryIsNotConstructed = errors.New(
		"OverdueParcelsQuery must be created via NewOverdueParcelsQuery constructor",
	)
)

// OverdueThreshold is how long a parcel may stay in transit before it is
// reported as overdue.
const OverdueThreshold = 72 * time.Hour

// OverdueParcelsQuery retrieves parcels stuck in transit: still in the
// in-transit status and created more than OverdueThreshold ago.
//
// Example:
//
//	query := NewOverdueParcelsQuery(time.Now().UTC())
//	handler := NewOverdueParcelsQueryHandler(db)
//	overdue, err := handler.Handle(ctx, query)
type OverdueParcelsQuery struct {
	now time.Time

	guard guard.ConstructorGuard
}

// NewOverdueParcelsQuery creates a query for overdue parcels, evaluated
// against the given reference time.
func NewOverdueParcelsQuery(now time.Time) OverdueParcelsQuery {
	return OverdueParcelsQuery{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q OverdueParcelsQuery) Validate() error {
	return q.guard.Validate(ErrOverdueParcelsQueryIsNotConstructed)
}

// Now returns the reference time the threshold is evaluated against.
func (q OverdueParcelsQuery) Now() time.Time {
	return q.now
}
