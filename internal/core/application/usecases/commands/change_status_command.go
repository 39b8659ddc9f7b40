package commands

import (
	"errors"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/core/domain/model/parcel"
	"smartlogi/internal/pkg/guard"
)

var (
	ErrChangeStatusCommandIsNotConstructed = errors.New(
		"ChangeStatusCommand must be created via NewChangeStatusCommand constructor",
	)
)

// ChangeStatusCommand represents a request to move a parcel to a new status.
// The optional comment is stored verbatim on the resulting audit entry.
type ChangeStatusCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	status   parcel.Status
	comment  string

	guard guard.ConstructorGuard
}

// NewChangeStatusCommand creates a command to change a parcel's status.
// The target status must be one of the defined statuses; the comment may be
// empty.
func NewChangeStatusCommand(parcelID kernel.UUID, status parcel.Status, comment string) (ChangeStatusCommand, error) {
	cmd := ChangeStatusCommand{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setStatus(status),
	); err != nil {
		return ChangeStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeStatusCommandIsNotConstructed)
}

// ParcelID returns the parcel to update.
func (c ChangeStatusCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Status returns the target status.
func (c ChangeStatusCommand) Status() parcel.Status {
	return c.status
}

// Comment returns the audit comment, which may be empty.
func (c ChangeStatusCommand) Comment() string {
	return c.comment
}

func (c *ChangeStatusCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *ChangeStatusCommand) setStatus(status parcel.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
