package queries

import (
	"errors"
	"time"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/core/domain/model/parcel"
	"smartlogi/internal/pkg/guard"
)

var (
	ErrGetParcelQueryIsNotConstructed = errors.New(
		"GetParcelQuery must be created via NewGetParcelQuery constructor",
	)
)

// GetParcelQuery retrieves a single parcel with its product lines and
// complete audit trail.
type GetParcelQuery struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetParcelQuery creates a query to fetch one parcel by identifier.
func NewGetParcelQuery(parcelID kernel.UUID) (GetParcelQuery, error) {
	q := GetParcelQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setParcelID(parcelID); err != nil {
		return GetParcelQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelQueryIsNotConstructed)
}

// ParcelID returns the parcel to fetch.
func (q GetParcelQuery) ParcelID() kernel.UUID {
	return q.parcelID
}

func (q *GetParcelQuery) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	q.parcelID = parcelID
	return nil
}

// ProductLineView is one product association on a parcel detail view.
type ProductLineView struct {
	ProductID kernel.UUID
	Quantity  int
	UnitPrice float64
	AddedAt   time.Time
}

// HistoryEntryView is one audit trail entry on a parcel detail or history view.
type HistoryEntryView struct {
	ID         kernel.UUID
	Status     parcel.Status
	RecordedAt time.Time
	Comment    string
}

// GetParcelQueryResponse is the full parcel detail read model.
type GetParcelQueryResponse struct {
	ParcelSummary
	Products []ProductLineView
	History  []HistoryEntryView
}
