package commands

import (
	"errors"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/pkg/errs"
	"smartlogi/internal/pkg/guard"
)

var (
	ErrCreateCourierCommandIsNotConstructed = errors.New(
		"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
	)
)

// CreateCourierCommand represents a request to register a courier.
// The vehicle description is optional free text; the service zone reference
// may be nil.
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	firstName string
	lastName  string
	phone     string
	vehicle   string
	zoneID    *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand creates a command to register a courier.
// First name, last name, and phone are required.
func NewCreateCourierCommand(
	courierID kernel.UUID,
	firstName, lastName, phone, vehicle string,
	zoneID *kernel.UUID,
) (CreateCourierCommand, error) {
	cmd := CreateCourierCommand{
		vehicle: vehicle,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCourierID(courierID),
		cmd.setFirstName(firstName),
		cmd.setLastName(lastName),
		cmd.setPhone(phone),
		cmd.setZoneID(zoneID),
	); err != nil {
		return CreateCourierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

// CourierID returns the unique identifier for the new courier.
func (c CreateCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// FirstName returns the courier's first name.
func (c CreateCourierCommand) FirstName() string {
	return c.firstName
}

// LastName returns the courier's last name.
func (c CreateCourierCommand) LastName() string {
	return c.lastName
}

// Phone returns the courier's phone number.
func (c CreateCourierCommand) Phone() string {
	return c.phone
}

// Vehicle returns the optional vehicle description.
func (c CreateCourierCommand) Vehicle() string {
	return c.vehicle
}

// ZoneID returns the optional service zone reference.
func (c CreateCourierCommand) ZoneID() *kernel.UUID {
	return c.zoneID
}

func (c *CreateCourierCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *CreateCourierCommand) setFirstName(firstName string) error {
	if firstName == "" {
		return errs.NewValueIsRequiredError("firstName")
	}

	c.firstName = firstName
	return nil
}

func (c *CreateCourierCommand) setLastName(lastName string) error {
	if lastName == "" {
		return errs.NewValueIsRequiredError("lastName")
	}

	c.lastName = lastName
	return nil
}

func (c *CreateCourierCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}

	c.phone = phone
	return nil
}

func (c *CreateCourierCommand) setZoneID(zoneID *kernel.UUID) error {
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
