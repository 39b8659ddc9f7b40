package queries

import (
	"errors"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/pkg/guard"
)

var (
	ErrCourierStatsQueryIsNotConstructed = errors.New(
		"CourierStatsQuery must be created via NewCourierStatsQuery constructor",
	)
)

// CourierStatsQuery retrieves workload statistics for one courier: how many
// parcels are assigned to them and their combined weight. A courier with no
// parcels reports zeros, not an error; a courier that does not exist is an
// error.
type CourierStatsQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCourierStatsQuery creates a query for one courier's statistics.
func NewCourierStatsQuery(courierID kernel.UUID) (CourierStatsQuery, error) {
	q := CourierStatsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setCourierID(courierID); err != nil {
		return CourierStatsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q CourierStatsQuery) Validate() error {
	return q.guard.Validate(ErrCourierStatsQueryIsNotConstructed)
}

// CourierID returns the courier whose statistics are requested.
func (q CourierStatsQuery) CourierID() kernel.UUID {
	return q.courierID
}

func (q *CourierStatsQuery) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	q.courierID = courierID
	return nil
}

// CourierStatsQueryResponse is the workload read model for one courier.
type CourierStatsQueryResponse struct {
	CourierID   kernel.UUID
	CourierName string
	ParcelCount int64
	TotalWeight float64
}
