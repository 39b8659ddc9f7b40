package queries

import (
	"context"
	"fmt"
	"strings"
	"time"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/core/domain/model/parcel"
	"smartlogi/internal/core/domain/services"

	"gorm.io/gorm"
)

// SearchParcelsQueryHandler executes parcel searches against the database.
// The criteria is compiled into a neutral filter by the domain and translated
// clause by clause into a parameterized WHERE conjunction here, so the SQL
// shape always mirrors the domain's matching semantics.
type SearchParcelsQueryHandler struct {
	db *gorm.DB
}

// NewSearchParcelsQueryHandler creates a handler for parcel searches.
// Requires a GORM database connection for query execution.
func NewSearchParcelsQueryHandler(db *gorm.DB) SearchParcelsQueryHandler {
	return SearchParcelsQueryHandler{db: db}
}

// Handle executes the search.
// Counts all matches first, then fetches the requested page ordered by
// creation time, newest first.
func (h SearchParcelsQueryHandler) Handle(
	ctx context.Context,
	query SearchParcelsQuery,
) (SearchParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return SearchParcelsQueryResponse{}, err
	}

	where, args, err := buildParcelWhere(services.CompileFilter(query.Criteria()))
	if err != nil {
		return SearchParcelsQueryResponse{}, err
	}

	var total int64
	countSQL := "SELECT COUNT(*) FROM parcels" + where
	if err = h.db.WithContext(ctx).Raw(countSQL, args...).Scan(&total).Error; err != nil {
		return SearchParcelsQueryResponse{}, err
	}

	page := query.Page()
	pageSQL := fmt.Sprintf(
		"SELECT %s FROM parcels%s ORDER BY created_at DESC, id LIMIT ? OFFSET ?",
		parcelSummaryColumns, where,
	)
	pageArgs := append(append([]any(nil), args...), page.Size(), page.Offset())

	rows, err := h.db.WithContext(ctx).Raw(pageSQL, pageArgs...).Rows()
	if err != nil {
		return SearchParcelsQueryResponse{}, err
	}
	defer rows.Close()

	items, err := scanParcelSummaries(rows)
	if err != nil {
		return SearchParcelsQueryResponse{}, err
	}

	return SearchParcelsQueryResponse{
		Items: items,
		Total: total,
		Page:  page.Number(),
		Size:  page.Size(),
	}, nil
}

// buildParcelWhere translates a compiled filter into a SQL WHERE fragment
// with positional arguments. An empty filter yields an empty fragment.
func buildParcelWhere(filter services.ParcelFilter) (string, []any, error) {
	clauses := filter.Clauses()
	if len(clauses) == 0 {
		return "", nil, nil
	}

	conditions := make([]string, 0, len(clauses))
	args := make([]any, 0, len(clauses))

	for _, clause := range clauses {
		condition, arg, err := translateClause(clause)
		if err != nil {
			return "", nil, err
		}
		conditions = append(conditions, condition)
		args = append(args, arg)
	}

	return " WHERE " + strings.Join(conditions, " AND "), args, nil
}

func translateClause(clause services.FilterClause) (string, any, error) {
	switch clause.Field {
	case services.FieldStatus:
		return "status = ?", clause.Value.(parcel.Status).String(), nil
	case services.FieldPriority:
		return "priority = ?", clause.Value.(parcel.Priority).String(), nil
	case services.FieldZone:
		return "zone_id = ?", clause.Value.(kernel.UUID).Bytes(), nil
	case services.FieldCourier:
		return "courier_id = ?", clause.Value.(kernel.UUID).Bytes(), nil
	case services.FieldSender:
		return "sender_id = ?", clause.Value.(kernel.UUID).Bytes(), nil
	case services.FieldDestinationCity:
		return "destination_city ILIKE ?", "%" + clause.Value.(string) + "%", nil
	case services.FieldDescription:
		return "description ILIKE ?", "%" + clause.Value.(string) + "%", nil
	case services.FieldCreatedAt:
		if clause.Op == services.OpAtLeast {
			return "created_at >= ?", clause.Value.(time.Time), nil
		}
		return "created_at <= ?", clause.Value.(time.Time), nil
	}
	return "", nil, fmt.Errorf("unsupported filter field: %d", clause.Field)
}
