package commands_test

import (
	"testing"

	"smartlogi/internal/core/application/usecases/commands"
	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/core/domain/model/parcel"
	"smartlogi/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateParcelCommand_Success(t *testing.T) {
	parcelID := kernel.NewUUID()
	products := []commands.ProductLineInput{
		{ProductID: kernel.NewUUID(), Quantity: 2, UnitPrice: 9.5},
	}

	cmd, err := commands.NewCreateParcelCommand(parcelID, "books", 1.5, parcel.PriorityNormal,
		"Casablanca", kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), products)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.True(t, cmd.ParcelID().IsEqual(parcelID))
	assert.Equal(t, "books", cmd.Description())
	assert.InDelta(t, 1.5, cmd.Weight(), 0.001)
	assert.Len(t, cmd.Products(), 1)
}

func TestNewCreateParcelCommand_ValidationErrors(t *testing.T) {
	id := kernel.NewUUID()
	ref := kernel.NewUUID()

	_, err := commands.NewCreateParcelCommand(id, "", 0, parcel.PriorityNormal, "Fes", ref, ref, ref, nil)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewCreateParcelCommand(id, "", 1, parcel.PriorityUnknown, "Fes", ref, ref, ref, nil)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewCreateParcelCommand(id, "", 1, parcel.PriorityNormal, "", ref, ref, ref, nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	var missing kernel.UUID
	_, err = commands.NewCreateParcelCommand(id, "", 1, parcel.PriorityNormal, "Fes", missing, ref, ref, nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	badLine := []commands.ProductLineInput{{ProductID: kernel.NewUUID(), Quantity: 0, UnitPrice: 1}}
	_, err = commands.NewCreateParcelCommand(id, "", 1, parcel.PriorityNormal, "Fes", ref, ref, ref, badLine)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateParcelCommand_ValidateRejectsZeroValue(t *testing.T) {
	var cmd commands.CreateParcelCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateParcelCommandIsNotConstructed)
}
