package commands

import (
	"errors"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/core/domain/model/parcel"
	"smartlogi/internal/pkg/errs"
	"smartlogi/internal/pkg/guard"
)

var (
	ErrUpdateParcelCommandIsNotConstructed = errors.New(
		"UpdateParcelCommand must be created via NewUpdateParcelCommand constructor",
	)
)

// UpdateParcelCommand represents a request to replace a parcel's mutable
// descriptive fields. Status, references, and the audit trail are untouched.
type UpdateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID        kernel.UUID
	description     string
	weight          float64
	priority        parcel.Priority
	destinationCity string

	guard guard.ConstructorGuard
}

// NewUpdateParcelCommand creates a command to edit parcel details.
func NewUpdateParcelCommand(
	parcelID kernel.UUID,
	description string,
	weight float64,
	priority parcel.Priority,
	destinationCity string,
) (UpdateParcelCommand, error) {
	cmd := UpdateParcelCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setWeight(weight),
		cmd.setPriority(priority),
		cmd.setDestinationCity(destinationCity),
	); err != nil {
		return UpdateParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateParcelCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelCommandIsNotConstructed)
}

// ParcelID returns the parcel to edit.
func (c UpdateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Description returns the replacement description.
func (c UpdateParcelCommand) Description() string {
	return c.description
}

// Weight returns the replacement weight in kilograms.
func (c UpdateParcelCommand) Weight() float64 {
	return c.weight
}

// Priority returns the replacement handling priority.
func (c UpdateParcelCommand) Priority() parcel.Priority {
	return c.priority
}

// DestinationCity returns the replacement destination city.
func (c UpdateParcelCommand) DestinationCity() string {
	return c.destinationCity
}

func (c *UpdateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *UpdateParcelCommand) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidError("weight must be greater than 0")
	}

	c.weight = weight
	return nil
}

func (c *UpdateParcelCommand) setPriority(priority parcel.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	c.priority = priority
	return nil
}

func (c *UpdateParcelCommand) setDestinationCity(destinationCity string) error {
	if destinationCity == "" {
		return errs.NewValueIsRequiredError("destinationCity")
	}

	c.destinationCity = destinationCity
	return nil
}
