// Package zone contains the Zone entity: a geographic grouping used for
// routing and statistics.
package zone

import (
	"errors"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/pkg/errs"
)

// ErrZoneIsNotConstructed is returned when a Zone instance was not created
// through NewZone or RestoreZone.
var ErrZoneIsNotConstructed = errors.New("Zone must be created via NewZone constructor")

// Zone is a geographic delivery area. Its name keys the per-zone grouped
// counts report.
type Zone struct {
	id         kernel.UUID
	name       string
	postalCode string

	isConstructed bool
}

// NewZone creates a zone. Name and postal code are required.
func NewZone(id kernel.UUID, name, postalCode string) (*Zone, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if postalCode == "" {
		return nil, errs.NewValueIsRequiredError("postalCode")
	}

	return &Zone{
		id:            id,
		name:          name,
		postalCode:    postalCode,
		isConstructed: true,
	}, nil
}

// RestoreZone reconstructs a zone from persistence.
func RestoreZone(id kernel.UUID, name, postalCode string) (*Zone, error) {
	return NewZone(id, name, postalCode)
}

// Validate ensures the Zone instance was properly constructed.
func (z *Zone) Validate() error {
	if z == nil || !z.isConstructed {
		return ErrZoneIsNotConstructed
	}
	return nil
}

// ID returns the zone's unique identifier.
func (z *Zone) ID() kernel.UUID {
	return z.id
}

// Name returns the zone's display name.
func (z *Zone) Name() string {
	return z.name
}

// PostalCode returns the zone's postal code.
func (z *Zone) PostalCode() string {
	return z.postalCode
}
