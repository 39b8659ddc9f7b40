package ports

import (
	"context"

	"smartlogi/internal/core/domain/model/courier"
	"smartlogi/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for couriers.
type CourierRepository interface {
	// Add persists a new courier. The courier must not already exist.
	Add(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier by its identifier.
	// Returns errs.ErrObjectNotFound when no such courier exists.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)
}
