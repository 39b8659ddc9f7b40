package parcel_test

import (
	"testing"
	"time"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/core/domain/model/parcel"
	"smartlogi/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParcel(t *testing.T) *parcel.Parcel {
	t.Helper()

	p, err := parcel.NewParcel(
		kernel.NewUUID(),
		"a box of books",
		2.5,
		parcel.PriorityNormal,
		"Casablanca",
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return p
}

func TestNewParcel_Success(t *testing.T) {
	id := kernel.NewUUID()
	senderID := kernel.NewUUID()
	recipientID := kernel.NewUUID()
	zoneID := kernel.NewUUID()
	createdAt := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	p, err := parcel.NewParcel(id, "fragile", 1.2, parcel.PriorityUrgent, "Rabat",
		senderID, recipientID, zoneID, createdAt)

	require.NoError(t, err)
	assert.True(t, p.ID().IsEqual(id))
	assert.Equal(t, parcel.StatusCreated, p.Status())
	assert.Equal(t, parcel.PriorityUrgent, p.Priority())
	assert.Equal(t, "Rabat", p.DestinationCity())
	assert.Equal(t, createdAt, p.CreatedAt())
	assert.Nil(t, p.Courier())

	history := p.History()
	require.Len(t, history, 1)
	assert.Equal(t, parcel.StatusCreated, history[0].Status())
	assert.Equal(t, parcel.CreatedComment, history[0].Comment())
	assert.Equal(t, createdAt, history[0].RecordedAt())
	assert.True(t, history[0].ParcelID().IsEqual(id))
}

func TestNewParcel_ValidationErrors(t *testing.T) {
	id := kernel.NewUUID()
	ref := kernel.NewUUID()
	now := time.Now().UTC()

	t.Run("non-positive weight", func(t *testing.T) {
		_, err := parcel.NewParcel(id, "", 0, parcel.PriorityNormal, "Fes", ref, ref, ref, now)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = parcel.NewParcel(id, "", -1.5, parcel.PriorityNormal, "Fes", ref, ref, ref, now)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("missing destination city", func(t *testing.T) {
		_, err := parcel.NewParcel(id, "", 1, parcel.PriorityNormal, "", ref, ref, ref, now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("missing references", func(t *testing.T) {
		var missing kernel.UUID

		_, err := parcel.NewParcel(id, "", 1, parcel.PriorityNormal, "Fes", missing, ref, ref, now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = parcel.NewParcel(id, "", 1, parcel.PriorityNormal, "Fes", ref, missing, ref, now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = parcel.NewParcel(id, "", 1, parcel.PriorityNormal, "Fes", ref, ref, missing, now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid priority", func(t *testing.T) {
		_, err := parcel.NewParcel(id, "", 1, parcel.PriorityUnknown, "Fes", ref, ref, ref, now)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("empty description is allowed", func(t *testing.T) {
		p, err := parcel.NewParcel(id, "", 1, parcel.PriorityNormal, "Fes", ref, ref, ref, now)
		require.NoError(t, err)
		assert.Empty(t, p.Description())
	})
}

func TestParcel_Validate(t *testing.T) {
	var notConstructed parcel.Parcel
	require.ErrorIs(t, notConstructed.Validate(), parcel.ErrParcelIsNotConstructed)

	var nilParcel *parcel.Parcel
	require.ErrorIs(t, nilParcel.Validate(), parcel.ErrParcelIsNotConstructed)

	require.NoError(t, newTestParcel(t).Validate())
}

func TestParcel_AssignCourier(t *testing.T) {
	p := newTestParcel(t)
	courierID := kernel.NewUUID()

	err := p.AssignCourier(courierID, "Sara Alami", time.Now().UTC())
	require.NoError(t, err)

	require.NotNil(t, p.Courier())
	assert.True(t, p.Courier().IsEqual(courierID))
	assert.Equal(t, parcel.StatusCreated, p.Status(), "assignment must not alter status")

	history := p.History()
	require.Len(t, history, 2)
	assert.Equal(t, parcel.StatusCreated, history[1].Status())
	assert.Contains(t, history[1].Comment(), "Sara Alami")
}

func TestParcel_AssignCourier_ReassignmentIsPermitted(t *testing.T) {
	p := newTestParcel(t)
	first := kernel.NewUUID()
	second := kernel.NewUUID()

	require.NoError(t, p.AssignCourier(first, "Sara Alami", time.Now().UTC()))
	require.NoError(t, p.AssignCourier(second, "Omar Idrissi", time.Now().UTC()))

	assert.True(t, p.Courier().IsEqual(second))
	assert.Len(t, p.History(), 3)
}

func TestParcel_AssignCourier_InvalidID(t *testing.T) {
	p := newTestParcel(t)
	var missing kernel.UUID

	err := p.AssignCourier(missing, "Nobody", time.Now().UTC())
	require.Error(t, err)
	assert.Nil(t, p.Courier())
	assert.Len(t, p.History(), 1, "failed assignment must not record history")
}

func TestParcel_ChangeStatus(t *testing.T) {
	p := newTestParcel(t)

	err := p.ChangeStatus(parcel.StatusInTransit, "left the warehouse", time.Now().UTC())
	require.NoError(t, err)

	assert.Equal(t, parcel.StatusInTransit, p.Status())
	history := p.History()
	require.Len(t, history, 2)
	assert.Equal(t, parcel.StatusInTransit, history[1].Status())
	assert.Equal(t, "left the warehouse", history[1].Comment())
}

func TestParcel_ChangeStatus_EmptyCommentIsAllowed(t *testing.T) {
	p := newTestParcel(t)

	require.NoError(t, p.ChangeStatus(parcel.StatusCollected, "", time.Now().UTC()))
	assert.Empty(t, p.History()[1].Comment())
}

func TestParcel_ChangeStatus_UndefinedStatus(t *testing.T) {
	p := newTestParcel(t)

	err := p.ChangeStatus(parcel.Status(42), "", time.Now().UTC())
	require.Error(t, err)
	assert.Equal(t, parcel.StatusCreated, p.Status())
	assert.Len(t, p.History(), 1)
}

func TestParcel_HistoryGrowsByOnePerMutation(t *testing.T) {
	p := newTestParcel(t)

	mutations := []func() error{
		func() error { return p.ChangeStatus(parcel.StatusCollected, "picked up", time.Now().UTC()) },
		func() error { return p.AssignCourier(kernel.NewUUID(), "Sara Alami", time.Now().UTC()) },
		func() error { return p.ChangeStatus(parcel.StatusInTransit, "", time.Now().UTC()) },
		func() error { return p.ChangeStatus(parcel.StatusDelivered, "signed for", time.Now().UTC()) },
	}

	for i, mutate := range mutations {
		require.NoError(t, mutate())
		assert.Len(t, p.History(), i+2)
	}

	history := p.History()
	for i := 1; i < len(history); i++ {
		assert.False(t, history[i].RecordedAt().Before(history[i-1].RecordedAt()),
			"history timestamps must be non-decreasing")
	}
}

func TestParcel_HistoryTimestampIsClamped(t *testing.T) {
	p := newTestParcel(t)
	future := time.Now().UTC().Add(time.Hour)

	require.NoError(t, p.ChangeStatus(parcel.StatusCollected, "", future))
	require.NoError(t, p.ChangeStatus(parcel.StatusInTransit, "", time.Now().UTC()))

	history := p.History()
	require.Len(t, history, 3)
	assert.Equal(t, future, history[2].RecordedAt(),
		"an earlier wall clock reading must be clamped to the last entry's timestamp")
}

func TestParcel_UpdateDetails(t *testing.T) {
	p := newTestParcel(t)

	err := p.UpdateDetails("replacement contents", 4.0, parcel.PriorityExpress, "Tangier")
	require.NoError(t, err)

	assert.Equal(t, "replacement contents", p.Description())
	assert.InDelta(t, 4.0, p.Weight(), 0.001)
	assert.Equal(t, parcel.PriorityExpress, p.Priority())
	assert.Equal(t, "Tangier", p.DestinationCity())
	assert.Len(t, p.History(), 1, "detail edits must not record history")
}

func TestParcel_UpdateDetails_InvalidWeight(t *testing.T) {
	p := newTestParcel(t)

	err := p.UpdateDetails("x", -1, parcel.PriorityNormal, "Tangier")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestParcel_AddProductLine(t *testing.T) {
	p := newTestParcel(t)

	line, err := parcel.NewProductLine(kernel.NewUUID(), 3, 19.99, time.Now().UTC())
	require.NoError(t, err)

	require.NoError(t, p.AddProductLine(line))
	require.Len(t, p.Products(), 1)
	assert.Equal(t, 3, p.Products()[0].Quantity())
}

func TestNewProductLine_Validation(t *testing.T) {
	now := time.Now().UTC()

	_, err := parcel.NewProductLine(kernel.NewUUID(), 0, 1, now)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = parcel.NewProductLine(kernel.NewUUID(), 1, -0.01, now)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	var missing kernel.UUID
	_, err = parcel.NewProductLine(missing, 1, 1, now)
	require.Error(t, err)
}

func TestRestoreParcel_RoundTrip(t *testing.T) {
	p := newTestParcel(t)
	require.NoError(t, p.ChangeStatus(parcel.StatusInTransit, "rolling", time.Now().UTC()))
	courierID := kernel.NewUUID()
	require.NoError(t, p.AssignCourier(courierID, "Sara Alami", time.Now().UTC()))

	restored, err := parcel.RestoreParcel(
		p.ID(), p.Description(), p.Weight(), p.Status(), p.Priority(), p.DestinationCity(),
		p.SenderID(), p.RecipientID(), p.ZoneID(), p.Courier(), p.CreatedAt(),
		p.Products(), p.History(),
	)

	require.NoError(t, err)
	assert.True(t, restored.IsEqual(p))
	assert.Equal(t, p.Status(), restored.Status())
	assert.Len(t, restored.History(), 3)
	assert.True(t, restored.Courier().IsEqual(courierID))
}
