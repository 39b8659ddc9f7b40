// Package courierrepo provides data transfer objects and mapping functions
// for courier persistence.
package courierrepo

import (
	"smartlogi/internal/core/domain/model/courier"
	"smartlogi/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting couriers.
type CourierDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FirstName string     `gorm:"type:varchar(255);not null"`
	LastName  string     `gorm:"type:varchar(255);not null"`
	Phone     string     `gorm:"type:varchar(64);not null"`
	Vehicle   string     `gorm:"type:varchar(255)"`
	ZoneID    *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for courier rows.
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier entity to its database representation.
func fromDomain(entity *courier.Courier) CourierDTO {
	var zoneID *uuid.UUID
	if entity.ZoneID() != nil {
		raw := entity.ZoneID().Bytes()
		zoneID = &raw
	}

	return CourierDTO{
		ID:        entity.ID().Bytes(),
		FirstName: entity.FirstName(),
		LastName:  entity.LastName(),
		Phone:     entity.Phone(),
		Vehicle:   entity.Vehicle(),
		ZoneID:    zoneID,
	}
}

// toDomain converts a database DTO back to a courier entity.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var zoneID *kernel.UUID
	if dto.ZoneID != nil {
		zid, zErr := kernel.UUIDFromBytes((*dto.ZoneID)[:])
		if zErr != nil {
			return nil, zErr
		}
		zoneID = &zid
	}

	return courier.RestoreCourier(id, dto.FirstName, dto.LastName, dto.Phone, dto.Vehicle, zoneID)
}
