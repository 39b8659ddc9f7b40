package queries

import (
	"errors"

	"smartlogi/internal/pkg/errs"
	"smartlogi/internal/pkg/guard"
)

var (
	ErrGroupCountsQueryIsNotConstructed = errors.New(
		"GroupCountsQuery must be created via NewGroupCountsQuery constructor",
	)
)

// GroupDimension selects the attribute parcels are counted by.
type GroupDimension int

const (
	// GroupByStatus counts parcels per delivery status.
	GroupByStatus GroupDimension = iota + 1

	// GroupByZone counts parcels per delivery zone, keyed by zone name.
	GroupByZone

	// GroupByPriority counts parcels per handling priority.
	GroupByPriority
)

// GroupDimensionFromString parses a dimension name as used on the API:
// "status", "zone", or "priority".
func GroupDimensionFromString(s string) (GroupDimension, error) {
	switch s {
	case "status":
		return GroupByStatus, nil
	case "zone":
		return GroupByZone, nil
	case "priority":
		return GroupByPriority, nil
	}
	return 0, errs.NewValueIsInvalidError("dimension must be status, zone, or priority")
}

// GroupCountsQuery counts parcels grouped by one dimension. Groups with no
// parcels are omitted; the result is sparse.
type GroupCountsQuery struct { //nolint:recvcheck //using for validation
	dimension GroupDimension

	guard guard.ConstructorGuard
}

// NewGroupCountsQuery creates a grouped count query for the given dimension.
func NewGroupCountsQuery(dimension GroupDimension) (GroupCountsQuery, error) {
	q := GroupCountsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setDimension(dimension); err != nil {
		return GroupCountsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GroupCountsQuery) Validate() error {
	return q.guard.Validate(ErrGroupCountsQueryIsNotConstructed)
}

// Dimension returns the grouping dimension.
func (q GroupCountsQuery) Dimension() GroupDimension {
	return q.dimension
}

func (q *GroupCountsQuery) setDimension(dimension GroupDimension) error {
	switch dimension {
	case GroupByStatus, GroupByZone, GroupByPriority:
		q.dimension = dimension
		return nil
	}
	return errs.NewValueIsInvalidError("dimension must be status, zone, or priority")
}

// GroupCount is one bucket of a grouped count: the group key (status name,
// zone name, or priority name) and how many parcels fall into it.
type GroupCount struct {
	Key   string
	Count int64
}
