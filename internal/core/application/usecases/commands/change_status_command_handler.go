package commands

import (
	"context"
	"time"
)

// ChangeStatusCommandHandler applies status transitions to parcels.
// The status machine on the aggregate decides whether the transition is
// allowed; the handler only supplies the transaction boundary.
type ChangeStatusCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewChangeStatusCommandHandler creates a handler for status change operations.
func NewChangeStatusCommandHandler(uowFactory ParcelUoWFactory) ChangeStatusCommandHandler {
	return ChangeStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
// Loads the parcel, applies the transition with its audit comment, and
// persists the updated aggregate so the status change and its audit entry
// commit together.
func (h ChangeStatusCommandHandler) Handle(ctx context.Context, cmd ChangeStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()

	aggregate, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeStatus(cmd.Status(), cmd.Comment(), time.Now().UTC()); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
