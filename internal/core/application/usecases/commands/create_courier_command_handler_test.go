package commands_test

import (
	"testing"

	"smartlogi/internal/core/application/usecases/commands"
	"smartlogi/internal/core/domain/model/courier"
	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateCourierCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateCourierCommand(kernel.NewUUID(), "Sara", "Alami", "+212600000001", "scooter", nil)
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Add", mock.Anything, mock.AnythingOfType("*courier.Courier")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCourierCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	courierRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateCourierCommandHandler_Handle_ZoneIsResolved(t *testing.T) {
	ctx := t.Context()
	zoneID := kernel.NewUUID()
	cmd, err := commands.NewCreateCourierCommand(kernel.NewUUID(), "Sara", "Alami", "+212600000001", "", &zoneID)
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	zoneRepo := new(MockZoneRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ZoneRepository").Return(zoneRepo).Once(),
		zoneRepo.On("Get", mock.Anything, zoneID).Return(restoredZone(t, zoneID), nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Add", mock.Anything, mock.MatchedBy(func(c *courier.Courier) bool {
			return c.ZoneID() != nil && c.ZoneID().IsEqual(zoneID)
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCourierCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	zoneRepo.AssertExpectations(t)
	courierRepo.AssertExpectations(t)
}

func TestCreateCourierCommandHandler_Handle_ZoneNotFound(t *testing.T) {
	ctx := t.Context()
	zoneID := kernel.NewUUID()
	cmd, err := commands.NewCreateCourierCommand(kernel.NewUUID(), "Sara", "Alami", "+212600000001", "", &zoneID)
	require.NoError(t, err)

	zoneRepo := new(MockZoneRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ZoneRepository").Return(zoneRepo).Once(),
		zoneRepo.On("Get", mock.Anything, zoneID).
			Return(nil, errs.NewObjectNotFoundError("zoneId", zoneID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCourierCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestNewCreateCourierCommand_ValidationErrors(t *testing.T) {
	id := kernel.NewUUID()

	_, err := commands.NewCreateCourierCommand(id, "", "Alami", "+212600000001", "", nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewCreateCourierCommand(id, "Sara", "Alami", "", "", nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
