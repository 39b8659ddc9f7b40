package queries

import (
	"errors"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/pkg/guard"
)

var (
	ErrZoneStatsQueryIsNotConstructed = errors.New(
		"ZoneStatsQuery must be created via NewZoneStatsQuery constructor",
	)
)

// ZoneStatsQuery retrieves load statistics for one delivery zone: how many
// parcels target it and their combined weight. An empty zone reports zeros;
// a zone that does not exist is an error.
type ZoneStatsQuery struct { //nolint:recvcheck //using for validation
	zoneID kernel.UUID

	guard guard.ConstructorGuard
}

// NewZoneStatsQuery creates a query for one zone's statistics.
func NewZoneStatsQuery(zoneID kernel.UUID) (ZoneStatsQuery, error) {
	q := ZoneStatsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setZoneID(zoneID); err != nil {
		return ZoneStatsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ZoneStatsQuery) Validate() error {
	return q.guard.Validate(ErrZoneStatsQueryIsNotConstructed)
}

// ZoneID returns the zone whose statistics are requested.
func (q ZoneStatsQuery) ZoneID() kernel.UUID {
	return q.zoneID
}

func (q *ZoneStatsQuery) setZoneID(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}

	q.zoneID = zoneID
	return nil
}

// ZoneStatsQueryResponse is the load read model for one zone.
type ZoneStatsQueryResponse struct {
	ZoneID      kernel.UUID
	ZoneName    string
	ParcelCount int64
	TotalWeight float64
}
