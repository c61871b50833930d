package response

import (
	"time"

	"court-booking/internal/domain/pricing"
	"court-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID            uuid.UUID               `json:"id"`
	UserID        uuid.UUID               `json:"userId"`
	UserName      string                  `json:"userName"`
	UserEmail     string                  `json:"userEmail"`
	CourtID       uuid.UUID               `json:"courtId"`
	CourtName     string                  `json:"courtName"`
	CoachID       *uuid.UUID              `json:"coachId,omitempty"`
	CoachName     *string                 `json:"coachName,omitempty"`
	BookingDate   time.Time               `json:"bookingDate"`
	StartTime     string                  `json:"startTime"`
	EndTime       string                  `json:"endTime"`
	Equipment     []EquipmentLineResponse `json:"equipment"`
	Breakdown     pricing.Breakdown       `json:"priceBreakdown"`
	Status        string                  `json:"status"`
	PaymentStatus string                  `json:"paymentStatus"`
	Notes         *string                 `json:"notes,omitempty"`
	CreatedAt     time.Time               `json:"createdAt"`
	UpdatedAt     time.Time               `json:"updatedAt"`
}

type EquipmentLineResponse struct {
	EquipmentID uuid.UUID `json:"equipmentId"`
	Quantity    int       `json:"quantity"`
}

func FromBookingView(view *queries.BookingView) (*BookingResponse, error) {
	var resp BookingResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromBookingViews(views []*queries.BookingView) ([]*BookingResponse, error) {
	responses := make([]*BookingResponse, 0, len(views))
	for _, v := range views {
		resp, err := FromBookingView(v)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

type AvailabilityResponse struct {
	Available bool     `json:"available"`
	Messages  []string `json:"messages"`
}

type QuoteResponse struct {
	Breakdown pricing.Breakdown `json:"priceBreakdown"`
}
