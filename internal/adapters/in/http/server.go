package http

import (
	"errors"
	"net/http"

	"smartlogi/internal/core/application/usecases/commands"
	"smartlogi/internal/core/application/usecases/queries"
	"smartlogi/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server exposes the parcel lifecycle and query operations over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createParcelHandler  commands.CreateParcelCommandHandler
	updateParcelHandler  commands.UpdateParcelCommandHandler
	deleteParcelHandler  commands.DeleteParcelCommandHandler
	assignCourierHandler commands.AssignCourierCommandHandler
	changeStatusHandler  commands.ChangeStatusCommandHandler
	createCourierHandler commands.CreateCourierCommandHandler

	// Query handlers
	searchParcelsHandler      queries.SearchParcelsQueryHandler
	getParcelHandler          queries.GetParcelQueryHandler
	listHistoryHandler        queries.ListHistoryQueryHandler
	overdueParcelsHandler     queries.OverdueParcelsQueryHandler
	unassignedPriorityHandler queries.UnassignedPriorityQueryHandler
	courierStatsHandler       queries.CourierStatsQueryHandler
	zoneStatsHandler          queries.ZoneStatsQueryHandler
	groupCountsHandler        queries.GroupCountsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createParcelHandler commands.CreateParcelCommandHandler,
	updateParcelHandler commands.UpdateParcelCommandHandler,
	deleteParcelHandler commands.DeleteParcelCommandHandler,
	assignCourierHandler commands.AssignCourierCommandHandler,
	changeStatusHandler commands.ChangeStatusCommandHandler,
	createCourierHandler commands.CreateCourierCommandHandler,
	searchParcelsHandler queries.SearchParcelsQueryHandler,
	getParcelHandler queries.GetParcelQueryHandler,
	listHistoryHandler queries.ListHistoryQueryHandler,
	overdueParcelsHandler queries.OverdueParcelsQueryHandler,
	unassignedPriorityHandler queries.UnassignedPriorityQueryHandler,
	courierStatsHandler queries.CourierStatsQueryHandler,
	zoneStatsHandler queries.ZoneStatsQueryHandler,
	groupCountsHandler queries.GroupCountsQueryHandler,
) *Server {
	return &Server{
		createParcelHandler:       createParcelHandler,
		updateParcelHandler:       updateParcelHandler,
		deleteParcelHandler:       deleteParcelHandler,
		assignCourierHandler:      assignCourierHandler,
		changeStatusHandler:       changeStatusHandler,
		createCourierHandler:      createCourierHandler,
		searchParcelsHandler:      searchParcelsHandler,
		getParcelHandler:          getParcelHandler,
		listHistoryHandler:        listHistoryHandler,
		overdueParcelsHandler:     overdueParcelsHandler,
		unassignedPriorityHandler: unassignedPriorityHandler,
		courierStatsHandler:       courierStatsHandler,
		zoneStatsHandler:          zoneStatsHandler,
		groupCountsHandler:        groupCountsHandler,
	}
}

// RegisterRoutes mounts all API routes under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/parcels", s.CreateParcel)
	api.GET("/parcels", s.SearchParcels)
	api.GET("/parcels/overdue", s.GetOverdueParcels)
	api.GET("/parcels/unassigned-priority", s.GetUnassignedPriorityParcels)
	api.GET("/parcels/:id", s.GetParcel)
	api.PUT("/parcels/:id", s.UpdateParcel)
	api.DELETE("/parcels/:id", s.DeleteParcel)
	api.POST("/parcels/:id/assign", s.AssignCourier)
	api.POST("/parcels/:id/status", s.ChangeStatus)
	api.GET("/parcels/:id/history", s.GetParcelHistory)

	api.POST("/couriers", s.CreateCourier)

	api.GET("/stats/couriers/:id", s.GetCourierStats)
	api.GET("/stats/zones/:id", s.GetZoneStats)
	api.GET("/stats/group/:dimension", s.GetGroupedCounts)

	e.GET("/health", s.GetHealth)
}

// GetHealth handles GET /health - liveness probe.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// errorResponse is the uniform error payload.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// mapError translates use case errors into HTTP responses. Not-found errors
// become 404, validation errors 400, anything else 500.
func mapError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}
	return ctx.JSON(http.StatusInternalServerError, errorResponse{
		Code:    http.StatusInternalServerError,
		Message: "internal server error",
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
