package http

import (
	"time"

	"smartlogi/internal/core/application/usecases/queries"

	"github.com/google/uuid"
)

// Request payloads.

type productLinePayload struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unitPrice"`
}

type createParcelRequest struct {
	Description     string               `json:"description"`
	Weight          float64              `json:"weight"`
	Priority        string               `json:"priority"`
	DestinationCity string               `json:"destinationCity"`
	SenderID        uuid.UUID            `json:"senderId"`
	RecipientID     uuid.UUID            `json:"recipientId"`
	ZoneID          uuid.UUID            `json:"zoneId"`
	Products        []productLinePayload `json:"products"`
}

type updateParcelRequest struct {
	Description     string  `json:"description"`
	Weight          float64 `json:"weight"`
	Priority        string  `json:"priority"`
	DestinationCity string  `json:"destinationCity"`
}

type assignCourierRequest struct {
	CourierID uuid.UUID `json:"courierId"`
}

type changeStatusRequest struct {
	Status  string `json:"status"`
	Comment string `json:"comment"`
}

type createCourierRequest struct {
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Phone     string     `json:"phone"`
	Vehicle   string     `json:"vehicle"`
	ZoneID    *uuid.UUID `json:"zoneId"`
}

// Response payloads.

type createdResponse struct {
	ID uuid.UUID `json:"id"`
}

type parcelSummaryResponse struct {
	ID              uuid.UUID  `json:"id"`
	Description     string     `json:"description"`
	Weight          float64    `json:"weight"`
	Status          string     `json:"status"`
	Priority        string     `json:"priority"`
	DestinationCity string     `json:"destinationCity"`
	CreatedAt       time.Time  `json:"createdAt"`
	CourierID       *uuid.UUID `json:"courierId"`
	SenderID        uuid.UUID  `json:"senderId"`
	RecipientID     uuid.UUID  `json:"recipientId"`
	ZoneID          uuid.UUID  `json:"zoneId"`
}

type productLineResponse struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unitPrice"`
	AddedAt   time.Time `json:"addedAt"`
}

type historyEntryResponse struct {
	ID         uuid.UUID `json:"id"`
	Status     string    `json:"status"`
	RecordedAt time.Time `json:"recordedAt"`
	Comment    string    `json:"comment"`
}

type parcelDetailResponse struct {
	parcelSummaryResponse
	Products []productLineResponse  `json:"products"`
	History  []historyEntryResponse `json:"history"`
}

type searchParcelsResponse struct {
	Items []parcelSummaryResponse `json:"items"`
	Total int64                   `json:"total"`
	Page  int                     `json:"page"`
	Size  int                     `json:"size"`
}

type courierStatsResponse struct {
	CourierID   uuid.UUID `json:"courierId"`
	CourierName string    `json:"courierName"`
	ParcelCount int64     `json:"parcelCount"`
	TotalWeight float64   `json:"totalWeight"`
}

type zoneStatsResponse struct {
	ZoneID      uuid.UUID `json:"zoneId"`
	ZoneName    string    `json:"zoneName"`
	ParcelCount int64     `json:"parcelCount"`
	TotalWeight float64   `json:"totalWeight"`
}

type groupCountResponse struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

func toParcelSummaryResponse(summary queries.ParcelSummary) parcelSummaryResponse {
	response := parcelSummaryResponse{
		ID:              summary.ID.Bytes(),
		Description:     summary.Description,
		Weight:          summary.Weight,
		Status:          summary.Status.String(),
		Priority:        summary.Priority.String(),
		DestinationCity: summary.DestinationCity,
		CreatedAt:       summary.CreatedAt,
		SenderID:        summary.SenderID.Bytes(),
		RecipientID:     summary.RecipientID.Bytes(),
		ZoneID:          summary.ZoneID.Bytes(),
	}
	if summary.CourierID != nil {
		courierID := summary.CourierID.Bytes()
		response.CourierID = &courierID
	}
	return response
}

func toParcelSummaryResponses(summaries []queries.ParcelSummary) []parcelSummaryResponse {
	responses := make([]parcelSummaryResponse, len(summaries))
	for i, summary := range summaries {
		responses[i] = toParcelSummaryResponse(summary)
	}
	return responses
}

func toHistoryEntryResponses(entries []queries.HistoryEntryView) []historyEntryResponse {
	responses := make([]historyEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = historyEntryResponse{
			ID:         entry.ID.Bytes(),
			Status:     entry.Status.String(),
			RecordedAt: entry.RecordedAt,
			Comment:    entry.Comment,
		}
	}
	return responses
}

func toProductLineResponses(lines []queries.ProductLineView) []productLineResponse {
	responses := make([]productLineResponse, len(lines))
	for i, line := range lines {
		responses[i] = productLineResponse{
			ProductID: line.ProductID.Bytes(),
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			AddedAt:   line.AddedAt,
		}
	}
	return responses
}
