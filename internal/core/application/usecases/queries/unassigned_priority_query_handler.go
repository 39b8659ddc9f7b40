package queries

import (
	"context"

	"smartlogi/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// UnassignedPriorityQueryHandler finds priority parcels awaiting assignment.
type UnassignedPriorityQueryHandler struct {
	db *gorm.DB
}

// NewUnassignedPriorityQueryHandler creates a handler for unassigned
// priority parcel queries.
func NewUnassignedPriorityQueryHandler(db *gorm.DB) UnassignedPriorityQueryHandler {
	return UnassignedPriorityQueryHandler{db: db}
}

// Handle executes the query.
// Returns urgent and express parcels with no courier, oldest first so the
// longest-waiting parcels are assigned before newer ones.
func (h UnassignedPriorityQueryHandler) Handle(
	ctx context.Context,
	query UnassignedPriorityQuery,
) ([]ParcelSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		"SELECT "+parcelSummaryColumns+`
		FROM parcels
		WHERE priority IN (?, ?) AND courier_id IS NULL
		ORDER BY created_at, id
	`, parcel.PriorityUrgent.String(), parcel.PriorityExpress.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanParcelSummaries(rows)
}
