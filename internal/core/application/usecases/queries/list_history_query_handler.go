package queries

import (
	"context"

	"smartlogi/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListHistoryQueryHandler retrieves pages of a parcel's audit trail.
// Entries come back newest first, matching how tracking views display them.
type ListHistoryQueryHandler struct {
	db *gorm.DB
}

// NewListHistoryQueryHandler creates a handler for audit trail queries.
func NewListHistoryQueryHandler(db *gorm.DB) ListHistoryQueryHandler {
	return ListHistoryQueryHandler{db: db}
}

// Handle executes the history query.
// The parcel's existence is checked first so a missing parcel surfaces as
// errs.ErrObjectNotFound instead of an empty page.
func (h ListHistoryQueryHandler) Handle(
	ctx context.Context,
	query ListHistoryQuery,
) ([]HistoryEntryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	id := query.ParcelID().Bytes()

	var exists bool
	err := h.db.WithContext(ctx).
		Raw("SELECT EXISTS (SELECT 1 FROM parcels WHERE id = ?)", id).
		Scan(&exists).Error
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("parcelId", query.ParcelID())
	}

	page := query.Page()
	return loadHistory(ctx, h.db, id, "DESC", page.Size(), page.Offset())
}
