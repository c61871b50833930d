package response

import (
	"encoding/json"
	"time"

	"court-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CourtResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Sport       string    `json:"sport"`
	BasePrice   float64   `json:"basePrice"`
	Capacity    int       `json:"capacity"`
	Description *string   `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CoachResponse struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Specialization string          `json:"specialization"`
	Experience     int             `json:"experience"`
	PricePerHour   float64         `json:"pricePerHour"`
	Availability   json.RawMessage `json:"availability"`
	IsActive       bool            `json:"isActive"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

type EquipmentResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	TotalStock   int       `json:"totalStock"`
	PricePerHour float64   `json:"pricePerHour"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func FromCourtView(view *queries.CourtView) (*CourtResponse, error) {
	var resp CourtResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromCourtViews(views []*queries.CourtView) ([]*CourtResponse, error) {
	responses := make([]*CourtResponse, 0, len(views))
	for _, v := range views {
		resp, err := FromCourtView(v)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func FromCoachView(view *queries.CoachView) (*CoachResponse, error) {
	var resp CoachResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromCoachViews(views []*queries.CoachView) ([]*CoachResponse, error) {
	responses := make([]*CoachResponse, 0, len(views))
	for _, v := range views {
		resp, err := FromCoachView(v)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func FromEquipmentView(view *queries.EquipmentView) (*EquipmentResponse, error) {
	var resp EquipmentResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromEquipmentViews(views []*queries.EquipmentView) ([]*EquipmentResponse, error) {
	responses := make([]*EquipmentResponse, 0, len(views))
	for _, v := range views {
		resp, err := FromEquipmentView(v)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}
