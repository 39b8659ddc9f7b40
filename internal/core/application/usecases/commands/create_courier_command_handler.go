package commands

import (
	"context"

	"smartlogi/internal/core/domain/model/courier"
)

// CreateCourierCommandHandler handles courier registration.
// When a service zone is referenced it is resolved inside the transaction so
// a courier can never point at a zone that does not exist.
type CreateCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewCreateCourierCommandHandler creates a handler for courier registration.
func NewCreateCourierCommandHandler(uowFactory CourierUoWFactory) CreateCourierCommandHandler {
	return CreateCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the courier registration command.
func (h CreateCourierCommandHandler) Handle(ctx context.Context, cmd CreateCourierCommand) error {
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

	if cmd.ZoneID() != nil {
		if _, err := uow.ZoneRepository().Get(ctx, *cmd.ZoneID()); err != nil {
			return err
		}
	}

	newCourier, err := courier.NewCourier(
		cmd.CourierID(),
		cmd.FirstName(),
		cmd.LastName(),
		cmd.Phone(),
		cmd.Vehicle(),
		cmd.ZoneID(),
	)
	if err != nil {
		return err
	}

	if err = uow.CourierRepository().Add(ctx, newCourier); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
