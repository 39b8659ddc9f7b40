package queries

import (
	"context"

	"smartlogi/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// OverdueParcelsQueryHandler finds parcels that have been in transit too
// long. Feeds both the reporting endpoint and the periodic overdue report
// job.
type OverdueParcelsQueryHandler struct {
	db *gorm.DB
}

// NewOverdueParcelsQueryHandler creates a handler for overdue parcel queries.
func NewOverdueParcelsQueryHandler(db *gorm.DB) OverdueParcelsQueryHandler {
	return OverdueParcelsQueryHandler{db: db}
}

// Handle executes the overdue query.
// Returns in-transit parcels created before now minus OverdueThreshold,
// oldest first so the longest-stuck parcels lead the report.
func (h OverdueParcelsQueryHandler) Handle(
	ctx context.Context,
	query OverdueParcelsQuery,
) ([]ParcelSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := query.Now().Add(-OverdueThreshold)

	rows, err := h.db.WithContext(ctx).Raw(
		"SELECT "+parcelSummaryColumns+`
		FROM parcels
		WHERE status = ? AND created_at < ?
		ORDER BY created_at, id
	`, parcel.StatusInTransit.String(), cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanParcelSummaries(rows)
}
