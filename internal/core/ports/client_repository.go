package ports

import (
	"context"

	"smartlogi/internal/core/domain/model/client"
	"smartlogi/internal/core/domain/model/kernel"
)

// ClientRepository defines the read contract for shipment parties.
// Sender and recipient management is handled outside the lifecycle engine;
// the engine only resolves references at parcel creation.
type ClientRepository interface {
	// GetSender retrieves a sending client by its identifier.
	// Returns errs.ErrObjectNotFound when no such sender exists.
	GetSender(ctx context.Context, id kernel.UUID) (*client.Sender, error)

	// GetRecipient retrieves a recipient by its identifier.
	// Returns errs.ErrObjectNotFound when no such recipient exists.
	GetRecipient(ctx context.Context, id kernel.UUID) (*client.Recipient, error)
}
