package commands

import (
	"context"
	"time"

	"smartlogi/internal/core/domain/model/parcel"
)

// CreateParcelCommandHandler handles the business logic for parcel registration.
// Resolves the sender, recipient, and zone references before constructing the
// aggregate so a parcel can never point at parties that do not exist.
type CreateParcelCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateParcelCommandHandler creates a handler for parcel registration.
// Requires a UoWFactory because reference resolution spans repositories.
func NewCreateParcelCommandHandler(uowFactory UoWFactory) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the parcel creation command.
// Resolves every reference, builds the aggregate in the created status with
// its initial audit entry, and persists it. A missing reference surfaces as
// errs.ErrObjectNotFound naming the offending parameter.
func (h CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) error {
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

	clientRepo := uow.ClientRepository()
	if _, err := clientRepo.GetSender(ctx, cmd.SenderID()); err != nil {
		return err
	}
	if _, err := clientRepo.GetRecipient(ctx, cmd.RecipientID()); err != nil {
		return err
	}
	if _, err := uow.ZoneRepository().Get(ctx, cmd.ZoneID()); err != nil {
		return err
	}

	now := time.Now().UTC()
	newParcel, err := parcel.NewParcel(
		cmd.ParcelID(),
		cmd.Description(),
		cmd.Weight(),
		cmd.Priority(),
		cmd.DestinationCity(),
		cmd.SenderID(),
		cmd.RecipientID(),
		cmd.ZoneID(),
		now,
	)
	if err != nil {
		return err
	}

	for _, input := range cmd.Products() {
		line, err := parcel.NewProductLine(input.ProductID, input.Quantity, input.UnitPrice, now)
		if err != nil {
			return err
		}
		if err := newParcel.AddProductLine(line); err != nil {
			return err
		}
	}

	if err = uow.ParcelRepository().Add(ctx, newParcel); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
