package commands

import (
	"context"

	"smartlogi/internal/pkg/errs"
)

// DeleteParcelCommandHandler removes parcels together with their children.
// The repository deletes product lines and history entries before the parcel
// row, all within the handler's transaction.
type DeleteParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewDeleteParcelCommandHandler creates a handler for parcel deletion.
func NewDeleteParcelCommandHandler(uowFactory ParcelUoWFactory) DeleteParcelCommandHandler {
	return DeleteParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
// Verifies the parcel exists before deleting so a missing parcel surfaces as
// errs.ErrObjectNotFound rather than a silent no-op.
func (h DeleteParcelCommandHandler) Handle(ctx context.Context, cmd DeleteParcelCommand) error {
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

	exists, err := parcelRepo.Exists(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("parcelId", cmd.ParcelID())
	}

	if err = parcelRepo.Delete(ctx, cmd.ParcelID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
