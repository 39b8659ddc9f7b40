package parcel

import (
	"time"

	"smartlogi/internal/core/domain/model/kernel"
)

// SearchCriteria is a sparse filter specification for querying parcels.
// Every field is independently optional: nil pointers and empty strings
// impose no constraint, so the zero value matches every parcel.
//
// Present fields are combined conjunctively (logical AND, never OR) by the
// filter compiler in the domain services package.
type SearchCriteria struct {
	// Status restricts results to parcels with this exact status.
	Status *Status

	// Priority restricts results to parcels with this exact priority.
	Priority *Priority

	// ZoneID restricts results to parcels in this delivery zone.
	ZoneID *kernel.UUID

	// CourierID restricts results to parcels assigned to this courier.
	CourierID *kernel.UUID

	// SenderID restricts results to parcels shipped by this client.
	SenderID *kernel.UUID

	// City, when non-empty, is matched as a case-insensitive substring of
	// the destination city.
	City string

	// Keyword, when non-empty, is matched as a case-insensitive substring
	// of the description.
	Keyword string

	// CreatedFrom is an inclusive lower bound on the creation timestamp.
	CreatedFrom *time.Time

	// CreatedTo is an inclusive upper bound on the creation timestamp.
	CreatedTo *time.Time
}

// IsEmpty reports whether no field imposes any constraint.
func (c SearchCriteria) IsEmpty() bool {
	return c.Status == nil &&
		c.Priority == nil &&
		c.ZoneID == nil &&
		c.CourierID == nil &&
		c.SenderID == nil &&
		c.City == "" &&
		c.Keyword == "" &&
		c.CreatedFrom == nil &&
		c.CreatedTo == nil
}
