package queries

import (
	"errors"

	"smartlogi/internal/core/domain/model/parcel"
	"smartlogi/internal/pkg/guard"
)

var (
	ErrSearchParcelsQueryIsNotConstructed = errors.New(
		"SearchParcelsQuery must be created via NewSearchParcelsQuery constructor",
	)
)

// SearchParcelsQuery retrieves a page of parcels matching a sparse criteria
// value. Absent criteria fields do not constrain the result, so an empty
// criteria lists every parcel.
//
// Example:
//
//	status := parcel.StatusInTransit
//	query := NewSearchParcelsQuery(
//	    parcel.SearchCriteria{Status: &status, City: "casa"},
//	    NewPage(1, 20),
//	)
//	handler := NewSearchParcelsQueryHandler(db)
//	result, err := handler.Handle(ctx, query)
type SearchParcelsQuery struct {
	criteria parcel.SearchCriteria
	page     Page

	guard guard.ConstructorGuard
}

// NewSearchParcelsQuery creates a query to search parcels.
// The criteria may be empty; pagination input is normalized by NewPage.
func NewSearchParcelsQuery(criteria parcel.SearchCriteria, page Page) SearchParcelsQuery {
	return SearchParcelsQuery{
		criteria: criteria,
		page:     page,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q SearchParcelsQuery) Validate() error {
	return q.guard.Validate(ErrSearchParcelsQueryIsNotConstructed)
}

// Criteria returns the search criteria.
func (q SearchParcelsQuery) Criteria() parcel.SearchCriteria {
	return q.criteria
}

// Page returns the normalized pagination request.
func (q SearchParcelsQuery) Page() Page {
	return q.page
}

// SearchParcelsQueryResponse is one page of matching parcels together with
// the total match count across all pages.
type SearchParcelsQueryResponse struct {
	Items []ParcelSummary
	Total int64
	Page  int
	Size  int
}
