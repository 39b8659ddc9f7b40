// Package parcelrepo provides data transfer objects and mapping functions for
// parcel persistence. It implements the repository pattern for the parcel
// aggregate, converting between domain entities and database rows.
package parcelrepo

import (
	"time"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel
// aggregates. Status and priority are stored as their canonical upper-case
// strings so rows stay readable and the query side can filter without joins.
type ParcelDTO struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Description     string            `gorm:"type:text"`
	Weight          float64           `gorm:"type:numeric;not null"`
	Status          string            `gorm:"type:varchar(32);not null;index"`
	Priority        string            `gorm:"type:varchar(32);not null;index"`
	DestinationCity string            `gorm:"type:varchar(255);not null"`
	CreatedAt       time.Time         `gorm:"not null;index"`
	CourierID       *uuid.UUID        `gorm:"type:uuid;index"`
	SenderID        uuid.UUID         `gorm:"type:uuid;not null;index"`
	RecipientID     uuid.UUID         `gorm:"type:uuid;not null"`
	ZoneID          uuid.UUID         `gorm:"type:uuid;not null;index"`
	Products        []ProductLineDTO  `gorm:"foreignKey:ParcelID;constraint:OnDelete:CASCADE"`
	History         []HistoryEntryDTO `gorm:"foreignKey:ParcelID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for parcel rows.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// ProductLineDTO represents one product association row. The pair of parcel
// and product identifies a line, so re-running an insert for the same pair is
// a no-op rather than a duplicate.
type ProductLineDTO struct {
	ParcelID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity  int       `gorm:"type:int;not null"`
	UnitPrice float64   `gorm:"type:numeric;not null"`
	AddedAt   time.Time `gorm:"not null"`
}

// TableName specifies the database table name for product line rows.
func (ProductLineDTO) TableName() string {
	return "parcel_products"
}

// HistoryEntryDTO represents one audit trail row. Rows are append-only:
// the repository inserts new entries and never updates or removes stored ones.
type HistoryEntryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Status     string    `gorm:"type:varchar(32);not null"`
	RecordedAt time.Time `gorm:"not null;index"`
	Comment    string    `gorm:"type:text"`
}

// TableName specifies the database table name for audit trail rows.
func (HistoryEntryDTO) TableName() string {
	return "parcel_history"
}

// fromDomain converts a parcel aggregate to its database representation,
// including product lines and the full audit trail.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	parcelID := aggregate.ID().Bytes()

	var courierID *uuid.UUID
	if aggregate.Courier() != nil {
		raw := aggregate.Courier().Bytes()
		courierID = &raw
	}

	products := make([]ProductLineDTO, 0, len(aggregate.Products()))
	for _, line := range aggregate.Products() {
		products = append(products, ProductLineDTO{
			ParcelID:  parcelID,
			ProductID: line.ProductID().Bytes(),
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice(),
			AddedAt:   line.AddedAt(),
		})
	}

	history := make([]HistoryEntryDTO, 0, len(aggregate.History()))
	for _, entry := range aggregate.History() {
		history = append(history, HistoryEntryDTO{
			ID:         entry.ID().Bytes(),
			ParcelID:   parcelID,
			Status:     entry.Status().String(),
			RecordedAt: entry.RecordedAt(),
			Comment:    entry.Comment(),
		})
	}

	return ParcelDTO{
		ID:              parcelID,
		Description:     aggregate.Description(),
		Weight:          aggregate.Weight(),
		Status:          aggregate.Status().String(),
		Priority:        aggregate.Priority().String(),
		DestinationCity: aggregate.DestinationCity(),
		CreatedAt:       aggregate.CreatedAt(),
		CourierID:       courierID,
		SenderID:        aggregate.SenderID().Bytes(),
		RecipientID:     aggregate.RecipientID().Bytes(),
		ZoneID:          aggregate.ZoneID().Bytes(),
		Products:        products,
		History:         history,
	}
}

// toDomain converts a database DTO back to a parcel aggregate.
// History rows must be preloaded in recording order.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}
	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}
	zoneID, err := kernel.UUIDFromBytes(dto.ZoneID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cid, cErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if cErr != nil {
			return nil, cErr
		}
		courierID = &cid
	}

	status, err := parcel.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	priority, err := parcel.PriorityFromString(dto.Priority)
	if err != nil {
		return nil, err
	}

	products := make([]parcel.ProductLine, 0, len(dto.Products))
	for _, lineDto := range dto.Products {
		line, lineErr := productLineToDomain(lineDto)
		if lineErr != nil {
			return nil, lineErr
		}
		products = append(products, line)
	}

	history := make([]parcel.HistoryEntry, 0, len(dto.History))
	for _, entryDto := range dto.History {
		entry, entryErr := historyEntryToDomain(entryDto, id)
		if entryErr != nil {
			return nil, entryErr
		}
		history = append(history, entry)
	}

	return parcel.RestoreParcel(
		id,
		dto.Description,
		dto.Weight,
		status,
		priority,
		dto.DestinationCity,
		senderID,
		recipientID,
		zoneID,
		courierID,
		dto.CreatedAt,
		products,
		history,
	)
}

func productLineToDomain(dto ProductLineDTO) (parcel.ProductLine, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return parcel.ProductLine{}, err
	}

	return parcel.NewProductLine(productID, dto.Quantity, dto.UnitPrice, dto.AddedAt)
}

func historyEntryToDomain(dto HistoryEntryDTO, parcelID kernel.UUID) (parcel.HistoryEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return parcel.HistoryEntry{}, err
	}

	status, err := parcel.StatusFromString(dto.Status)
	if err != nil {
		return parcel.HistoryEntry{}, err
	}

	return parcel.RestoreHistoryEntry(id, parcelID, status, dto.RecordedAt, dto.Comment)
}
