package queries

import (
	"context"

	"gorm.io/gorm"
)

// GroupCountsQueryHandler computes grouped parcel counts in SQL.
type GroupCountsQueryHandler struct {
	db *gorm.DB
}

// NewGroupCountsQueryHandler creates a handler for grouped count queries.
func NewGroupCountsQueryHandler(db *gorm.DB) GroupCountsQueryHandler {
	return GroupCountsQueryHandler{db: db}
}

// Handle executes the grouped count.
// Zone grouping joins the zones table so buckets are keyed by zone name.
// Only groups with at least one parcel appear in the result.
func (h GroupCountsQueryHandler) Handle(
	ctx context.Context,
	query GroupCountsQuery,
) ([]GroupCount, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var sqlText string
	switch query.Dimension() {
	case GroupByStatus:
		sqlText = `
			SELECT status AS key, COUNT(*) AS count
			FROM parcels
			GROUP BY status
			ORDER BY status`
	case GroupByZone:
		sqlText = `
			SELECT z.name AS key, COUNT(*) AS count
			FROM parcels p
			JOIN zones z ON z.id = p.zone_id
			GROUP BY z.name
			ORDER BY z.name`
	case GroupByPriority:
		sqlText = `
			SELECT priority AS key, COUNT(*) AS count
			FROM parcels
			GROUP BY priority
			ORDER BY priority`
	}

	rows, err := h.db.WithContext(ctx).Raw(sqlText).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]GroupCount, 0)
	for rows.Next() {
		var bucket GroupCount
		if err = rows.Scan(&bucket.Key, &bucket.Count); err != nil {
			return nil, err
		}
		counts = append(counts, bucket)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
