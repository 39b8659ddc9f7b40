package queries

import (
	"errors"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/pkg/guard"
)

var (
	ErrListHistoryQueryIsNotConstructed = errors.New(
		"ListHistoryQuery must be created via NewListHistoryQuery constructor",
	)
)

// ListHistoryQuery retrieves a page of a parcel's audit trail, newest first.
// Querying history for a parcel that does not exist is an error, not an
// empty page.
type ListHistoryQuery struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	page     Page

	guard guard.ConstructorGuard
}

// NewListHistoryQuery creates a query for a parcel's audit trail.
func NewListHistoryQuery(parcelID kernel.UUID, page Page) (ListHistoryQuery, error) {
	q := ListHistoryQuery{
		page:  page,
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setParcelID(parcelID); err != nil {
		return ListHistoryQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListHistoryQuery) Validate() error {
	return q.guard.Validate(ErrListHistoryQueryIsNotConstructed)
}

// ParcelID returns the parcel whose history is requested.
func (q ListHistoryQuery) ParcelID() kernel.UUID {
	return q.parcelID
}

// Page returns the normalized pagination request.
func (q ListHistoryQuery) Page() Page {
	return q.page
}

func (q *ListHistoryQuery) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	q.parcelID = parcelID
	return nil
}
