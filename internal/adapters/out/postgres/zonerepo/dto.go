// Package zonerepo provides data transfer objects and mapping functions for
// delivery zone persistence. The lifecycle engine only reads zones; rows are
// seeded by zone management outside this service.
package zonerepo

import (
	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/core/domain/model/zone"

	"github.com/google/uuid"
)

// ZoneDTO represents the database structure for persisting delivery zones.
type ZoneDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"type:varchar(255);not null"`
	PostalCode string    `gorm:"type:varchar(32);not null"`
}

// TableName specifies the database table name for zone rows.
func (ZoneDTO) TableName() string {
	return "zones"
}

func toDomain(dto ZoneDTO) (*zone.Zone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return zone.RestoreZone(id, dto.Name, dto.PostalCode)
}
