package services

import (
	"strings"
	"time"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/core/domain/model/parcel"
)

// FilterField identifies the parcel attribute a clause applies to.
type FilterField int

const (
	// FieldStatus filters on the parcel status.
	FieldStatus FilterField = iota

	// FieldPriority filters on the handling priority.
	FieldPriority

	// FieldZone filters on the delivery zone reference.
	FieldZone

	// FieldCourier filters on the assigned courier reference.
	FieldCourier

	// FieldSender filters on the sending client reference.
	FieldSender

	// FieldDestinationCity filters on the destination city text.
	FieldDestinationCity

	// FieldDescription filters on the description text.
	FieldDescription

	// FieldCreatedAt filters on the creation timestamp.
	FieldCreatedAt
)

// FilterOp is the comparison a clause performs.
type FilterOp int

const (
	// OpEqual is an exact match.
	OpEqual FilterOp = iota

	// OpContainsFold is a case-insensitive substring match.
	OpContainsFold

	// OpAtLeast is an inclusive lower bound.
	OpAtLeast

	// OpAtMost is an inclusive upper bound.
	OpAtMost
)

// FilterClause is one conjunct of a compiled parcel filter.
type FilterClause struct {
	Field FilterField
	Op    FilterOp
	Value any
}

// ParcelFilter is a compiled, conjunctive parcel predicate: a parcel matches
// when every clause holds. An empty filter matches every parcel, so an
// all-absent criteria value yields full-scan semantics rather than an error.
type ParcelFilter struct {
	clauses []FilterClause
}

// CompileFilter translates a sparse SearchCriteria into a ParcelFilter.
// Each present criteria field contributes exactly one clause; absent fields
// contribute nothing. Compilation is pure: it only builds the filter,
// execution and pagination belong to the store.
func CompileFilter(criteria parcel.SearchCriteria) ParcelFilter {
	var clauses []FilterClause

	if criteria.Status != nil {
		clauses = append(clauses, FilterClause{FieldStatus, OpEqual, *criteria.Status})
	}
	if criteria.Priority != nil {
		clauses = append(clauses, FilterClause{FieldPriority, OpEqual, *criteria.Priority})
	}
	if criteria.ZoneID != nil {
		clauses = append(clauses, FilterClause{FieldZone, OpEqual, *criteria.ZoneID})
	}
	if criteria.CourierID != nil {
		clauses = append(clauses, FilterClause{FieldCourier, OpEqual, *criteria.CourierID})
	}
	if criteria.SenderID != nil {
		clauses = append(clauses, FilterClause{FieldSender, OpEqual, *criteria.SenderID})
	}
	if criteria.City != "" {
		clauses = append(clauses, FilterClause{FieldDestinationCity, OpContainsFold, criteria.City})
	}
	if criteria.Keyword != "" {
		clauses = append(clauses, FilterClause{FieldDescription, OpContainsFold, criteria.Keyword})
	}
	if criteria.CreatedFrom != nil {
		clauses = append(clauses, FilterClause{FieldCreatedAt, OpAtLeast, *criteria.CreatedFrom})
	}
	if criteria.CreatedTo != nil {
		clauses = append(clauses, FilterClause{FieldCreatedAt, OpAtMost, *criteria.CreatedTo})
	}

	return ParcelFilter{clauses: clauses}
}

// Clauses returns the compiled conjuncts in a stable order.
func (f ParcelFilter) Clauses() []FilterClause {
	return append([]FilterClause(nil), f.clauses...)
}

// IsEmpty reports whether the filter matches every parcel.
func (f ParcelFilter) IsEmpty() bool {
	return len(f.clauses) == 0
}

// Matches evaluates the filter against a parcel in memory.
// All clauses must hold (logical AND).
func (f ParcelFilter) Matches(p *parcel.Parcel) bool {
	for _, clause := range f.clauses {
		if !clauseMatches(clause, p) {
			return false
		}
	}
	return true
}

func clauseMatches(clause FilterClause, p *parcel.Parcel) bool {
	switch clause.Field {
	case FieldStatus:
		return p.Status() == clause.Value.(parcel.Status)
	case FieldPriority:
		return p.Priority() == clause.Value.(parcel.Priority)
	case FieldZone:
		return p.ZoneID().IsEqual(clause.Value.(kernel.UUID))
	case FieldCourier:
		courier := p.Courier()
		return courier != nil && courier.IsEqual(clause.Value.(kernel.UUID))
	case FieldSender:
		return p.SenderID().IsEqual(clause.Value.(kernel.UUID))
	case FieldDestinationCity:
		return containsFold(p.DestinationCity(), clause.Value.(string))
	case FieldDescription:
		return containsFold(p.Description(), clause.Value.(string))
	case FieldCreatedAt:
		bound := clause.Value.(time.Time)
		if clause.Op == OpAtLeast {
			return !p.CreatedAt().Before(bound)
		}
		return !p.CreatedAt().After(bound)
	}
	return false
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
