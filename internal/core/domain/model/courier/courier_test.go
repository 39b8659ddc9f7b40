package courier_test

import (
	"testing"

	"smartlogi/internal/core/domain/model/courier"
	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCourier_Success(t *testing.T) {
	id := kernel.NewUUID()
	zoneID := kernel.NewUUID()

	c, err := courier.NewCourier(id, "Sara", "Alami", "+212600000001", "scooter", &zoneID)

	require.NoError(t, err)
	assert.True(t, c.ID().IsEqual(id))
	assert.Equal(t, "Sara", c.FirstName())
	assert.Equal(t, "Alami", c.LastName())
	assert.Equal(t, "+212600000001", c.Phone())
	assert.Equal(t, "scooter", c.Vehicle())
	require.NotNil(t, c.ZoneID())
	assert.True(t, c.ZoneID().IsEqual(zoneID))
}

func TestNewCourier_OptionalFields(t *testing.T) {
	c, err := courier.NewCourier(kernel.NewUUID(), "Omar", "Idrissi", "+212600000002", "", nil)

	require.NoError(t, err)
	assert.Empty(t, c.Vehicle())
	assert.Nil(t, c.ZoneID())
}

func TestNewCourier_ValidationErrors(t *testing.T) {
	id := kernel.NewUUID()

	_, err := courier.NewCourier(id, "", "Alami", "+212600000001", "", nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = courier.NewCourier(id, "Sara", "", "+212600000001", "", nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = courier.NewCourier(id, "Sara", "Alami", "", "", nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	var missing kernel.UUID
	_, err = courier.NewCourier(missing, "Sara", "Alami", "+212600000001", "", nil)
	require.Error(t, err)
}

func TestCourier_DisplayName(t *testing.T) {
	c, err := courier.NewCourier(kernel.NewUUID(), "Sara", "Alami", "+212600000001", "", nil)
	require.NoError(t, err)

	assert.Equal(t, "Sara Alami", c.DisplayName())
}

func TestCourier_Validate(t *testing.T) {
	var notConstructed courier.Courier
	require.ErrorIs(t, notConstructed.Validate(), courier.ErrCourierIsNotConstructed)

	var nilCourier *courier.Courier
	require.ErrorIs(t, nilCourier.Validate(), courier.ErrCourierIsNotConstructed)
}
