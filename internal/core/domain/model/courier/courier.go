// Package courier contains the Courier entity: the agent responsible for
// delivering parcels once assigned.
package courier

import (
	"errors"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/pkg/errs"
)

// ErrCourierIsNotConstructed is returned when a Courier instance was not
// created through NewCourier or RestoreCourier.
var ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")

// Courier is the delivery agent parcels get assigned to. The optional zone
// reference records the courier's usual service area; it does not restrict
// which parcels can be assigned.
type Courier struct {
	id        kernel.UUID
	firstName string
	lastName  string
	phone     string
	vehicle   string
	zoneID    *kernel.UUID

	isConstructed bool
}

// NewCourier registers a courier. First name, last name, and phone are
// required; vehicle is optional free text; zoneID may be nil.
func NewCourier(id kernel.UUID, firstName, lastName, phone, vehicle string, zoneID *kernel.UUID) (*Courier, error) {
	c := &Courier{
		vehicle:       vehicle,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setFirstName(firstName),
		c.setLastName(lastName),
		c.setPhone(phone),
		c.setZoneID(zoneID),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier reconstructs a courier from persistence.
func RestoreCourier(id kernel.UUID, firstName, lastName, phone, vehicle string, zoneID *kernel.UUID) (*Courier, error) {
	return NewCourier(id, firstName, lastName, phone, vehicle, zoneID)
}

// Validate ensures the Courier instance was properly constructed.
func (c *Courier) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCourierIsNotConstructed
	}
	return nil
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// FirstName returns the courier's first name.
func (c *Courier) FirstName() string {
	return c.firstName
}

// LastName returns the courier's last name.
func (c *Courier) LastName() string {
	return c.lastName
}

// Phone returns the courier's phone number.
func (c *Courier) Phone() string {
	return c.phone
}

// Vehicle returns the courier's vehicle description, which may be empty.
func (c *Courier) Vehicle() string {
	return c.vehicle
}

// ZoneID returns the courier's usual service zone, or nil when unset.
func (c *Courier) ZoneID() *kernel.UUID {
	return c.zoneID
}

// DisplayName returns the name used in audit comments and statistics,
// "FirstName LastName".
func (c *Courier) DisplayName() string {
	return c.firstName + " " + c.lastName
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setFirstName(firstName string) error {
	if firstName == "" {
		return errs.NewValueIsRequiredError("firstName")
	}
	c.firstName = firstName
	return nil
}

func (c *Courier) setLastName(lastName string) error {
	if lastName == "" {
		return errs.NewValueIsRequiredError("lastName")
	}
	c.lastName = lastName
	return nil
}

func (c *Courier) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}

func (c *Courier) setZoneID(zoneID *kernel.UUID) error {
	if zoneID == nil {
		return nil
	}
	if err := zoneID.Validate(); err != nil {
		return err
	}
	zid := *zoneID
	c.zoneID = &zid
	return nil
}
