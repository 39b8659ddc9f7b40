package queries

import (
	"context"

	"smartlogi/internal/pkg/errs"

	"gorm.io/gorm"
)

// ZoneStatsQueryHandler computes per-zone load statistics.
type ZoneStatsQueryHandler struct {
	db *gorm.DB
}

// NewZoneStatsQueryHandler creates a handler for zone statistics.
func NewZoneStatsQueryHandler(db *gorm.DB) ZoneStatsQueryHandler {
	return ZoneStatsQueryHandler{db: db}
}

// Handle executes the statistics query.
// Resolves the zone first so a missing zone surfaces as
// errs.ErrObjectNotFound rather than an all-zero response.
func (h ZoneStatsQueryHandler) Handle(
	ctx context.Context,
	query ZoneStatsQuery,
) (ZoneStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ZoneStatsQueryResponse{}, err
	}

	id := query.ZoneID().Bytes()

	var name string
	rows, err := h.db.WithContext(ctx).Raw("SELECT name FROM zones WHERE id = ?", id).Rows()
	if err != nil {
		return ZoneStatsQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ZoneStatsQueryResponse{}, err
		}
		return ZoneStatsQueryResponse{}, errs.NewObjectNotFoundError("zoneId", query.ZoneID())
	}
	if err = rows.Scan(&name); err != nil {
		return ZoneStatsQueryResponse{}, err
	}
	rows.Close()

	response := ZoneStatsQueryResponse{
		ZoneID:   query.ZoneID(),
		ZoneName: name,
	}

	err = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) AS parcel_count, COALESCE(SUM(weight), 0) AS total_weight
		FROM parcels
		WHERE zone_id = ?
	`, id).Row().Scan(&response.ParcelCount, &response.TotalWeight)
	if err != nil {
		return ZoneStatsQueryResponse{}, err
	}

	return response, nil
}
