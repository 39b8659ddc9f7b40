// Package ports defines the persistence contracts consumed by the parcel
// lifecycle engine. These interfaces sit between the application layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
// Implementations persist the full aggregate: the parcel row, its product
// lines, and every not-yet-stored history entry.
type ParcelRepository interface {
	// Add persists a new parcel aggregate, including its initial history
	// entry and product lines. The parcel must not already exist.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate and appends
	// any history entries recorded since it was loaded. History rows are
	// never updated or removed by this method.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel aggregate by its identifier, with product
	// lines and the complete history in recording order.
	// Returns errs.ErrObjectNotFound when no such parcel exists.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// Exists reports whether a parcel with the given identifier is stored.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// Delete removes the parcel together with all its product lines and
	// history entries in one atomic operation (children first).
	// Returns errs.ErrObjectNotFound when no such parcel exists.
	Delete(ctx context.Context, id kernel.UUID) error
}
