package queries

import (
	"context"
	"database/sql"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/core/domain/model/parcel"
	"smartlogi/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetParcelQueryHandler retrieves a single parcel detail from the database:
// the parcel row, its product lines, and the full audit trail in recording
// order.
type GetParcelQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelQueryHandler creates a handler for parcel detail queries.
func NewGetParcelQueryHandler(db *gorm.DB) GetParcelQueryHandler {
	return GetParcelQueryHandler{db: db}
}

// Handle executes the detail query.
// Returns errs.ErrObjectNotFound when the parcel does not exist.
func (h GetParcelQueryHandler) Handle(
	ctx context.Context,
	query GetParcelQuery,
) (GetParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetParcelQueryResponse{}, err
	}

	id := query.ParcelID().Bytes()

	rows, err := h.db.WithContext(ctx).Raw(
		"SELECT "+parcelSummaryColumns+" FROM parcels WHERE id = ?", id,
	).Rows()
	if err != nil {
		return GetParcelQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetParcelQueryResponse{}, err
		}
		return GetParcelQueryResponse{}, errs.NewObjectNotFoundError("parcelId", query.ParcelID())
	}

	summary, err := scanParcelSummary(rows)
	if err != nil {
		return GetParcelQueryResponse{}, err
	}
	rows.Close()

	products, err := h.loadProducts(ctx, id)
	if err != nil {
		return GetParcelQueryResponse{}, err
	}

	history, err := loadHistory(ctx, h.db, id, "ASC", 0, 0)
	if err != nil {
		return GetParcelQueryResponse{}, err
	}

	return GetParcelQueryResponse{
		ParcelSummary: summary,
		Products:      products,
		History:       history,
	}, nil
}

func (h GetParcelQueryHandler) loadProducts(ctx context.Context, parcelID uuid.UUID) ([]ProductLineView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity,
			unit_price,
			added_at
		FROM parcel_products
		WHERE parcel_id = ?
		ORDER BY added_at, product_id
	`, parcelID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]ProductLineView, 0)
	for rows.Next() {
		var view ProductLineView
		var productID uuid.UUID

		if err = rows.Scan(&productID, &view.Quantity, &view.UnitPrice, &view.AddedAt); err != nil {
			return nil, err
		}
		if view.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		products = append(products, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

// loadHistory fetches audit entries for one parcel. Direction must be
// "ASC" or "DESC"; a non-positive limit disables pagination.
func loadHistory(
	ctx context.Context,
	db *gorm.DB,
	parcelID uuid.UUID,
	direction string,
	limit, offset int,
) ([]HistoryEntryView, error) {
	sqlText := `
		SELECT
			id,
			status,
			recorded_at,
			comment
		FROM parcel_history
		WHERE parcel_id = ?
		ORDER BY recorded_at ` + direction + `, id`
	args := []any{parcelID}

	if limit > 0 {
		sqlText += " LIMIT ? OFFSET ?"
		args = append(args, limit, offset)
	}

	rows, err := db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanHistoryEntries(rows)
}

func scanHistoryEntries(rows *sql.Rows) ([]HistoryEntryView, error) {
	entries := make([]HistoryEntryView, 0)

	for rows.Next() {
		var view HistoryEntryView
		var id uuid.UUID
		var status string

		if err := rows.Scan(&id, &status, &view.RecordedAt, &view.Comment); err != nil {
			return nil, err
		}

		entryID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		view.ID = entryID

		if view.Status, err = parcel.StatusFromString(status); err != nil {
			return nil, err
		}
		entries = append(entries, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
