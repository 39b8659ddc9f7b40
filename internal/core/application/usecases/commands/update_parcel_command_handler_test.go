package commands_test

import (
	"testing"

	"smartlogi/internal/core/application/usecases/commands"
	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/core/domain/model/parcel"
	"smartlogi/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	target := storedParcel(t)
	cmd, err := commands.NewUpdateParcelCommand(
		target.ID(), "winter catalog", 3.2, parcel.PriorityUrgent, "Rabat",
	)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		parcelRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *parcel.Parcel) bool {
			// Detail edits replace fields without touching the audit trail.
			return p.Description() == "winter catalog" &&
				p.Weight() == 3.2 &&
				p.Priority() == parcel.PriorityUrgent &&
				p.DestinationCity() == "Rabat" &&
				len(p.History()) == 1
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateParcelCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	parcelRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateParcelCommandHandler_Handle_ParcelNotFound(t *testing.T) {
	ctx := t.Context()
	parcelID := kernel.NewUUID()
	cmd, err := commands.NewUpdateParcelCommand(parcelID, "", 1.0, parcel.PriorityNormal, "Fes")
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", mock.Anything, parcelID).
			Return(nil, errs.NewObjectNotFoundError("parcelId", parcelID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateParcelCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestNewUpdateParcelCommand_RejectsNonPositiveWeight(t *testing.T) {
	_, err := commands.NewUpdateParcelCommand(kernel.NewUUID(), "", 0, parcel.PriorityNormal, "Fes")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
