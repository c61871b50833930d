package request

import (
	"time"

	"court-booking/internal/usecase/commands"
)

type CourtRequest struct {
	Name        string  `json:"name" binding:"required"`
	Type        string  `json:"type" binding:"required,oneof=indoor outdoor"`
	Sport       string  `json:"sport" binding:"required"`
	BasePrice   float64 `json:"base_price" binding:"required,gte=0"`
	Capacity    int     `json:"capacity,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func (r CourtRequest) ToInput() commands.CourtInput {
	capacity := r.Capacity
	if capacity == 0 {
		capacity = 10
	}
	return commands.CourtInput{
		Name:        r.Name,
		Type:        r.Type,
		Sport:       r.Sport,
		BasePrice:   r.BasePrice,
		Capacity:    capacity,
		Description: r.Description,
		IsActive:    activeOrDefault(r.IsActive),
	}
}

type CoachRequest struct {
	Name           string  `json:"name" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	Specialization string  `json:"specialization" binding:"required"`
	Experience     int     `json:"experience" binding:"gte=0"`
	PricePerHour   float64 `json:"price_per_hour" binding:"required,gte=0"`
	IsActive       *bool   `json:"is_active,omitempty"`
}

func (r CoachRequest) ToInput() commands.CoachInput {
	return commands.CoachInput{
		Name:           r.Name,
		Email:          r.Email,
		Specialization: r.Specialization,
		Experience:     r.Experience,
		PricePerHour:   r.PricePerHour,
		IsActive:       activeOrDefault(r.IsActive),
	}
}

type AvailabilitySlotRequest struct {
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
	IsBooked  bool   `json:"isBooked"`
}

type AvailabilityDayRequest struct {
	Date  string                    `json:"date" binding:"required"`
	Slots []AvailabilitySlotRequest `json:"slots" binding:"dive"`
}

// CoachAvailabilityRequest replaces a coach's published calendar wholesale.
// An empty list clears it.
type CoachAvailabilityRequest struct {
	Availability []AvailabilityDayRequest `json:"availability" binding:"dive"`
}

func (r CoachAvailabilityRequest) ToDays() ([]commands.CoachAvailabilityDay, error) {
	days := make([]commands.CoachAvailabilityDay, 0, len(r.Availability))
	for _, d := range r.Availability {
		date, err := time.Parse("2006-01-02", d.Date)
		if err != nil {
			return nil, err
		}
		day := commands.CoachAvailabilityDay{Date: date}
		for _, s := range d.Slots {
			day.Slots = append(day.Slots, commands.CoachAvailabilitySlot{
				StartTime: s.StartTime,
				EndTime:   s.EndTime,
				IsBooked:  s.IsBooked,
			})
		}
		days = append(days, day)
	}
	return days, nil
}

type EquipmentRequest struct {
	Name         string  `json:"name" binding:"required"`
	Category     string  `json:"category" binding:"required"`
	TotalStock   int     `json:"total_stock" binding:"required,gte=0"`
	PricePerHour float64 `json:"price_per_hour" binding:"required,gte=0"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

func (r EquipmentRequest) ToInput() commands.EquipmentInput {
	return commands.EquipmentInput{
		Name:         r.Name,
		Category:     r.Category,
		TotalStock:   r.TotalStock,
		PricePerHour: r.PricePerHour,
		IsActive:     activeOrDefault(r.IsActive),
	}
}

// Catalog resources default to active when the flag is omitted.
func activeOrDefault(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}
