package commands

import (
	"errors"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/core/domain/model/parcel"
	"smartlogi/internal/pkg/errs"
	"smartlogi/internal/pkg/guard"
)

var (
	ErrCreateParcelCommandIsNotConstructed = errors.New(
		"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
	)
)

// ProductLineInput is one product association requested at parcel creation.
type ProductLineInput struct {
	ProductID kernel.UUID
	Quantity  int
	UnitPrice float64
}

// CreateParcelCommand represents a request to register a new parcel.
// The parcel always starts in the created status; the initial audit entry is
// recorded by the aggregate itself.
//
// Example:
//
//	parcelID := kernel.NewUUID()
//	cmd, err := NewCreateParcelCommand(parcelID, "two books", 1.2,
//	    parcel.PriorityNormal, "Casablanca", senderID, recipientID, zoneID, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid parcel data: %w", err)
//	}
//
//	handler := NewCreateParcelCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create parcel: %w", err)
//	}
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID        kernel.UUID
	description     string
	weight          float64
	priority        parcel.Priority
	destinationCity string
	senderID        kernel.UUID
	recipientID     kernel.UUID
	zoneID          kernel.UUID
	products        []ProductLineInput

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a new parcel.
// Validates identifiers, weight, priority, destination city, and each
// product line. Returns an error if any validation fails.
func NewCreateParcelCommand(
	parcelID kernel.UUID,
	description string,
	weight float64,
	priority parcel.Priority,
	destinationCity string,
	senderID, recipientID, zoneID kernel.UUID,
	products []ProductLineInput,
) (CreateParcelCommand, error) {
	cmd := CreateParcelCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setWeight(weight),
		cmd.setPriority(priority),
		cmd.setDestinationCity(destinationCity),
		cmd.setSenderID(senderID),
		cmd.setRecipientID(recipientID),
		cmd.setZoneID(zoneID),
		cmd.setProducts(products),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateParcelCommandIsNotConstructed if validation fails.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the unique identifier for the new parcel.
func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Description returns the optional free-text description.
func (c CreateParcelCommand) Description() string {
	return c.description
}

// Weight returns the parcel weight in kilograms.
func (c CreateParcelCommand) Weight() float64 {
	return c.weight
}

// Priority returns the requested handling priority.
func (c CreateParcelCommand) Priority() parcel.Priority {
	return c.priority
}

// DestinationCity returns the destination city.
func (c CreateParcelCommand) DestinationCity() string {
	return c.destinationCity
}

// SenderID returns the sending client reference.
func (c CreateParcelCommand) SenderID() kernel.UUID {
	return c.senderID
}

// RecipientID returns the recipient reference.
func (c CreateParcelCommand) RecipientID() kernel.UUID {
	return c.recipientID
}

// ZoneID returns the delivery zone reference.
func (c CreateParcelCommand) ZoneID() kernel.UUID {
	return c.zoneID
}

// Products returns the requested product associations in input order.
func (c CreateParcelCommand) Products() []ProductLineInput {
	return append([]ProductLineInput(nil), c.products...)
}

func (c *CreateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *CreateParcelCommand) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidError("weight must be greater than 0")
	}

	c.weight = weight
	return nil
}

func (c *CreateParcelCommand) setPriority(priority parcel.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	c.priority = priority
	return nil
}

func (c *CreateParcelCommand) setDestinationCity(destinationCity string) error {
	if destinationCity == "" {
		return errs.NewValueIsRequiredError("destinationCity")
	}

	c.destinationCity = destinationCity
	return nil
}

func (c *CreateParcelCommand) setSenderID(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("senderId", err)
	}

	c.senderID = senderID
	return nil
}

func (c *CreateParcelCommand) setRecipientID(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("recipientId", err)
	}

	c.recipientID = recipientID
	return nil
}

func (c *CreateParcelCommand) setZoneID(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("zoneId", err)
	}

	c.zoneID = zoneID
	return nil
}

func (c *CreateParcelCommand) setProducts(products []ProductLineInput) error {
	for _, line := range products {
		if err := line.ProductID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("productId", err)
		}
		if line.Quantity <= 0 {
			return errs.NewValueIsInvalidError("quantity must be greater than 0")
		}
		if line.UnitPrice < 0 {
			return errs.NewValueIsInvalidError("unitPrice must not be negative")
		}
	}

	c.products = append([]ProductLineInput(nil), products...)
	return nil
}
