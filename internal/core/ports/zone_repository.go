package ports

import (
	"context"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/core/domain/model/zone"
)

// ZoneRepository defines the read contract for delivery zones.
// Zone management itself is handled outside the lifecycle engine; the engine
// only resolves zone references.
type ZoneRepository interface {
	// Get retrieves a zone by its identifier.
	// Returns errs.ErrObjectNotFound when no such zone exists.
	Get(ctx context.Context, id kernel.UUID) (*zone.Zone, error)
}
