package http

import (
	"net/http"
	"strconv"
	"time"

	"smartlogi/internal/core/application/usecases/commands"
	"smartlogi/internal/core/application/usecases/queries"
	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/core/domain/model/parcel"
	"smartlogi/internal/pkg/errs"

	"github.com/jinzhu/now"
	"github.com/labstack/echo/v4"
)

// CreateParcel handles POST /api/v1/parcels - registers a new parcel.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var request createParcelRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	priority, err := parcel.PriorityFromString(request.Priority)
	if err != nil {
		return mapError(ctx, err)
	}

	senderID, err := kernel.UUIDFromBytes(request.SenderID[:])
	if err != nil {
		return badRequest(ctx, "senderId is required")
	}
	recipientID, err := kernel.UUIDFromBytes(request.RecipientID[:])
	if err != nil {
		return badRequest(ctx, "recipientId is required")
	}
	zoneID, err := kernel.UUIDFromBytes(request.ZoneID[:])
	if err != nil {
		return badRequest(ctx, "zoneId is required")
	}

	products := make([]commands.ProductLineInput, len(request.Products))
	for i, line := range request.Products {
		productID, lineErr := kernel.UUIDFromBytes(line.ProductID[:])
		if lineErr != nil {
			return badRequest(ctx, "productId is required")
		}
		products[i] = commands.ProductLineInput{
			ProductID: productID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		}
	}

	parcelID := kernel.NewUUID()
	cmd, err := commands.NewCreateParcelCommand(
		parcelID,
		request.Description,
		request.Weight,
		priority,
		request.DestinationCity,
		senderID, recipientID, zoneID,
		products,
	)
	if err != nil {
		return mapError(ctx, err)
	}

	if handleErr := s.createParcelHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: parcelID.Bytes()})
}

// GetParcel handles GET /api/v1/parcels/:id - retrieves one parcel with
// its products and full audit trail.
func (s *Server) GetParcel(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid parcel id")
	}

	query, err := queries.NewGetParcelQuery(parcelID)
	if err != nil {
		return mapError(ctx, err)
	}

	detail, err := s.getParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, parcelDetailResponse{
		parcelSummaryResponse: toParcelSummaryResponse(detail.ParcelSummary),
		Products:              toProductLineResponses(detail.Products),
		History:               toHistoryEntryResponses(detail.History),
	})
}

// UpdateParcel handles PUT /api/v1/parcels/:id - edits mutable parcel details.
func (s *Server) UpdateParcel(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid parcel id")
	}

	var request updateParcelRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	priority, err := parcel.PriorityFromString(request.Priority)
	if err != nil {
		return mapError(ctx, err)
	}

	cmd, err := commands.NewUpdateParcelCommand(
		parcelID,
		request.Description,
		request.Weight,
		priority,
		request.DestinationCity,
	)
	if err != nil {
		return mapError(ctx, err)
	}

	if handleErr := s.updateParcelHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteParcel handles DELETE /api/v1/parcels/:id - removes a parcel and
// its dependent rows.
func (s *Server) DeleteParcel(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid parcel id")
	}

	cmd, err := commands.NewDeleteParcelCommand(parcelID)
	if err != nil {
		return mapError(ctx, err)
	}

	if handleErr := s.deleteParcelHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignCourier handles POST /api/v1/parcels/:id/assign - assigns a courier.
func (s *Server) AssignCourier(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid parcel id")
	}

	var request assignCourierRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	courierID, err := kernel.UUIDFromBytes(request.CourierID[:])
	if err != nil {
		return badRequest(ctx, "courierId is required")
	}

	cmd, err := commands.NewAssignCourierCommand(parcelID, courierID)
	if err != nil {
		return mapError(ctx, err)
	}

	if handleErr := s.assignCourierHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeStatus handles POST /api/v1/parcels/:id/status - moves a parcel to
// a new status with an optional comment.
func (s *Server) ChangeStatus(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid parcel id")
	}

	var request changeStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	status, err := parcel.StatusFromString(request.Status)
	if err != nil {
		return mapError(ctx, err)
	}

	cmd, err := commands.NewChangeStatusCommand(parcelID, status, request.Comment)
	if err != nil {
		return mapError(ctx, err)
	}

	if handleErr := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SearchParcels handles GET /api/v1/parcels - pages through parcels matching
// the criteria query params. Absent params impose no constraint.
func (s *Server) SearchParcels(ctx echo.Context) error {
	criteria, err := parseSearchCriteria(ctx)
	if err != nil {
		return mapError(ctx, err)
	}

	query := queries.NewSearchParcelsQuery(criteria, parsePage(ctx))

	result, err := s.searchParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, searchParcelsResponse{
		Items: toParcelSummaryResponses(result.Items),
		Total: result.Total,
		Page:  result.Page,
		Size:  result.Size,
	})
}

// GetParcelHistory handles GET /api/v1/parcels/:id/history - pages through
// the audit trail, newest first.
func (s *Server) GetParcelHistory(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid parcel id")
	}

	query, err := queries.NewListHistoryQuery(parcelID, parsePage(ctx))
	if err != nil {
		return mapError(ctx, err)
	}

	entries, err := s.listHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toHistoryEntryResponses(entries))
}

// GetOverdueParcels handles GET /api/v1/parcels/overdue - lists in-transit
// parcels past the overdue threshold.
func (s *Server) GetOverdueParcels(ctx echo.Context) error {
	query := queries.NewOverdueParcelsQuery(time.Now().UTC())

	parcels, err := s.overdueParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toParcelSummaryResponses(parcels))
}

// GetUnassignedPriorityParcels handles GET /api/v1/parcels/unassigned-priority -
// lists urgent and express parcels with no courier.
func (s *Server) GetUnassignedPriorityParcels(ctx echo.Context) error {
	parcels, err := s.unassignedPriorityHandler.Handle(
		ctx.Request().Context(), queries.NewUnassignedPriorityQuery(),
	)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toParcelSummaryResponses(parcels))
}

// parsePage reads page and size query params, falling back to the
// normalized defaults for absent or malformed values.
func parsePage(ctx echo.Context) queries.Page {
	number, _ := strconv.Atoi(ctx.QueryParam("page"))
	size, _ := strconv.Atoi(ctx.QueryParam("size"))
	return queries.NewPage(number, size)
}

// parseSearchCriteria builds a sparse criteria object from query params.
// dateFrom and dateTo are calendar dates expanded to the beginning and end
// of their day so both bounds stay inclusive.
func parseSearchCriteria(ctx echo.Context) (parcel.SearchCriteria, error) {
	var criteria parcel.SearchCriteria

	if v := ctx.QueryParam("status"); v != "" {
		status, err := parcel.StatusFromString(v)
		if err != nil {
			return parcel.SearchCriteria{}, err
		}
		criteria.Status = &status
	}
	if v := ctx.QueryParam("priority"); v != "" {
		priority, err := parcel.PriorityFromString(v)
		if err != nil {
			return parcel.SearchCriteria{}, err
		}
		criteria.Priority = &priority
	}
	if v := ctx.QueryParam("zoneId"); v != "" {
		zoneID, err := kernel.UUIDFromString(v)
		if err != nil {
			return parcel.SearchCriteria{}, errs.NewValueIsInvalidErrorWithCause("zoneId", err)
		}
		criteria.ZoneID = &zoneID
	}
	if v := ctx.QueryParam("courierId"); v != "" {
		courierID, err := kernel.UUIDFromString(v)
		if err != nil {
			return parcel.SearchCriteria{}, errs.NewValueIsInvalidErrorWithCause("courierId", err)
		}
		criteria.CourierID = &courierID
	}
	if v := ctx.QueryParam("senderId"); v != "" {
		senderID, err := kernel.UUIDFromString(v)
		if err != nil {
			return parcel.SearchCriteria{}, errs.NewValueIsInvalidErrorWithCause("senderId", err)
		}
		criteria.SenderID = &senderID
	}

	criteria.City = ctx.QueryParam("city")
	criteria.Keyword = ctx.QueryParam("keyword")

	if v := ctx.QueryParam("dateFrom"); v != "" {
		day, err := time.ParseInLocation("2006-01-02", v, time.UTC)
		if err != nil {
			return parcel.SearchCriteria{}, errs.NewValueIsInvalidErrorWithCause("dateFrom", err)
		}
		from := now.New(day).BeginningOfDay()
		criteria.CreatedFrom = &from
	}
	if v := ctx.QueryParam("dateTo"); v != "" {
		day, err := time.ParseInLocation("2006-01-02", v, time.UTC)
		if err != nil {
			return parcel.SearchCriteria{}, errs.NewValueIsInvalidErrorWithCause("dateTo", err)
		}
		to := now.New(day).EndOfDay()
		criteria.CreatedTo = &to
	}

	return criteria, nil
}
