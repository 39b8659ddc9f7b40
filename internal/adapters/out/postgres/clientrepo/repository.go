package clientrepo

import (
	"context"
	"errors"

	"smartlogi/internal/core/domain/model/client"
	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormClientRepository implements ClientRepository using GORM.
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GORM client repository.
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// GetSender retrieves a sending client by ID.
func (r *GormClientRepository) GetSender(ctx context.Context, id kernel.UUID) (*client.Sender, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SenderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("senderId", id.String())
		}
		return nil, err
	}

	return senderToDomain(dto)
}

// GetRecipient retrieves a recipient by ID.
func (r *GormClientRepository) GetRecipient(ctx context.Context, id kernel.UUID) (*client.Recipient, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RecipientDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("recipientId", id.String())
		}
		return nil, err
	}

	return recipientToDomain(dto)
}
