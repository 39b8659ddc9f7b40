package queries

import (
	"database/sql"
	"time"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelSummary is the flat read model shared by the parcel listing queries.
type ParcelSummary struct {
	ID              kernel.UUID
	Description     string
	Weight          float64
	Status          parcel.Status
	Priority        parcel.Priority
	DestinationCity string
	CreatedAt       time.Time
	CourierID       *kernel.UUID
	SenderID        kernel.UUID
	RecipientID     kernel.UUID
	ZoneID          kernel.UUID
}

// parcelSummaryColumns is the SELECT list scanParcelSummary expects,
// in scan order.
const parcelSummaryColumns = `
	id,
	description,
	weight,
	status,
	priority,
	destination_city,
	created_at,
	courier_id,
	sender_id,
	recipient_id,
	zone_id
`

func scanParcelSummary(rows *sql.Rows) (ParcelSummary, error) {
	var summary ParcelSummary
	var id, senderID, recipientID, zoneID uuid.UUID
	var courierID uuid.NullUUID
	var status, priority string

	err := rows.Scan(
		&id,
		&summary.Description,
		&summary.Weight,
		&status,
		&priority,
		&summary.DestinationCity,
		&summary.CreatedAt,
		&courierID,
		&senderID,
		&recipientID,
		&zoneID,
	)
	if err != nil {
		return ParcelSummary{}, err
	}

	if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return ParcelSummary{}, err
	}
	if summary.SenderID, err = kernel.UUIDFromBytes(senderID[:]); err != nil {
		return ParcelSummary{}, err
	}
	if summary.RecipientID, err = kernel.UUIDFromBytes(recipientID[:]); err != nil {
		return ParcelSummary{}, err
	}
	if summary.ZoneID, err = kernel.UUIDFromBytes(zoneID[:]); err != nil {
		return ParcelSummary{}, err
	}
	if courierID.Valid {
		cid, idErr := kernel.UUIDFromBytes(courierID.UUID[:])
		if idErr != nil {
			return ParcelSummary{}, idErr
		}
		summary.CourierID = &cid
	}

	if summary.Status, err = parcel.StatusFromString(status); err != nil {
		return ParcelSummary{}, err
	}
	if summary.Priority, err = parcel.PriorityFromString(priority); err != nil {
		return ParcelSummary{}, err
	}

	return summary, nil
}

func scanParcelSummaries(rows *sql.Rows) ([]ParcelSummary, error) {
	summaries := make([]ParcelSummary, 0)

	for rows.Next() {
		summary, err := scanParcelSummary(rows)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
