// Package clientrepo provides data transfer objects and mapping functions
// for shipment party persistence. Senders and recipients are managed outside
// the lifecycle engine; this repository only resolves references.
package clientrepo

import (
	"smartlogi/internal/core/domain/model/client"
	"smartlogi/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// SenderDTO represents the database structure for sending clients.
type SenderDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"type:varchar(255);not null"`
	Email   string    `gorm:"type:varchar(255)"`
	Phone   string    `gorm:"type:varchar(64)"`
	Address string    `gorm:"type:text"`
}

// TableName specifies the database table name for sender rows.
func (SenderDTO) TableName() string {
	return "senders"
}

// RecipientDTO represents the database structure for recipients.
type RecipientDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"type:varchar(255);not null"`
	Email   string    `gorm:"type:varchar(255)"`
	Phone   string    `gorm:"type:varchar(64)"`
	Address string    `gorm:"type:text"`
}

// TableName specifies the database table name for recipient rows.
func (RecipientDTO) TableName() string {
	return "recipients"
}

func senderToDomain(dto SenderDTO) (*client.Sender, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return client.RestoreSender(id, dto.Name, dto.Email, dto.Phone, dto.Address)
}

func recipientToDomain(dto RecipientDTO) (*client.Recipient, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return client.RestoreRecipient(id, dto.Name, dto.Email, dto.Phone, dto.Address)
}
