package queries

import (
	"context"

	"smartlogi/internal/pkg/errs"

	"gorm.io/gorm"
)

// CourierStatsQueryHandler computes per-courier workload statistics.
// The aggregation runs in SQL; missing parcels collapse to zero via COALESCE
// so an idle courier still gets a well-formed response.
type CourierStatsQueryHandler struct {
	db *gorm.DB
}

// NewCourierStatsQueryHandler creates a handler for courier statistics.
func NewCourierStatsQueryHandler(db *gorm.DB) CourierStatsQueryHandler {
	return CourierStatsQueryHandler{db: db}
}

// Handle executes the statistics query.
// Resolves the courier first so a missing courier surfaces as
// errs.ErrObjectNotFound rather than an all-zero response.
func (h CourierStatsQueryHandler) Handle(
	ctx context.Context,
	query CourierStatsQuery,
) (CourierStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CourierStatsQueryResponse{}, err
	}

	id := query.CourierID().Bytes()

	var firstName, lastName string
	rows, err := h.db.WithContext(ctx).
		Raw("SELECT first_name, last_name FROM couriers WHERE id = ?", id).Rows()
	if err != nil {
		return CourierStatsQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return CourierStatsQueryResponse{}, err
		}
		return CourierStatsQueryResponse{}, errs.NewObjectNotFoundError("courierId", query.CourierID())
	}
	if err = rows.Scan(&firstName, &lastName); err != nil {
		return CourierStatsQueryResponse{}, err
	}
	rows.Close()

	response := CourierStatsQueryResponse{
		CourierID:   query.CourierID(),
		CourierName: firstName + " " + lastName,
	}

	err = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) AS parcel_count, COALESCE(SUM(weight), 0) AS total_weight
		FROM parcels
		WHERE courier_id = ?
	`, id).Row().Scan(&response.ParcelCount, &response.TotalWeight)
	if err != nil {
		return CourierStatsQueryResponse{}, err
	}

	return response, nil
}
