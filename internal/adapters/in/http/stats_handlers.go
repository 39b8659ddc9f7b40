package http

import (
	"net/http"

	"smartlogi/internal/core/application/usecases/commands"
	"smartlogi/internal/core/application/usecases/queries"
	"smartlogi/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateCourier handles POST /api/v1/couriers - registers a new courier.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var request createCourierRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	var zoneID *kernel.UUID
	if request.ZoneID != nil {
		id, err := kernel.UUIDFromBytes(request.ZoneID[:])
		if err != nil {
			return badRequest(ctx, "invalid zone id")
		}
		zoneID = &id
	}

	courierID := kernel.NewUUID()
	cmd, err := commands.NewCreateCourierCommand(
		courierID,
		request.FirstName,
		request.LastName,
		request.Phone,
		request.Vehicle,
		zoneID,
	)
	if err != nil {
		return mapError(ctx, err)
	}

	if handleErr := s.createCourierHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: courierID.Bytes()})
}

// GetCourierStats handles GET /api/v1/stats/couriers/:id - workload summary
// for one courier.
func (s *Server) GetCourierStats(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid courier id")
	}

	query, err := queries.NewCourierStatsQuery(courierID)
	if err != nil {
		return mapError(ctx, err)
	}

	stats, err := s.courierStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, courierStatsResponse{
		CourierID:   stats.CourierID.Bytes(),
		CourierName: stats.CourierName,
		ParcelCount: stats.ParcelCount,
		TotalWeight: stats.TotalWeight,
	})
}

// GetZoneStats handles GET /api/v1/stats/zones/:id - load summary for one
// delivery zone.
func (s *Server) GetZoneStats(ctx echo.Context) error {
	zoneID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid zone id")
	}

	query, err := queries.NewZoneStatsQuery(zoneID)
	if err != nil {
		return mapError(ctx, err)
	}

	stats, err := s.zoneStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, zoneStatsResponse{
		ZoneID:      stats.ZoneID.Bytes(),
		ZoneName:    stats.ZoneName,
		ParcelCount: stats.ParcelCount,
		TotalWeight: stats.TotalWeight,
	})
}

// GetGroupedCounts handles GET /api/v1/stats/group/:dimension - parcel
// counts grouped by status, zone, or priority.
func (s *Server) GetGroupedCounts(ctx echo.Context) error {
	dimension, err := queries.GroupDimensionFromString(ctx.Param("dimension"))
	if err != nil {
		return mapError(ctx, err)
	}

	query, err := queries.NewGroupCountsQuery(dimension)
	if err != nil {
		return mapError(ctx, err)
	}

	counts, err := s.groupCountsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]groupCountResponse, len(counts))
	for i, bucket := range counts {
		response[i] = groupCountResponse{Key: bucket.Key, Count: bucket.Count}
	}

	return ctx.JSON(http.StatusOK, response)
}
