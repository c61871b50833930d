package commands

import (
	"context"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingRepository interface {
	Create(ctx context.Context, tx pgx.Tx, b *booking.Booking) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
}

// LockManager serializes writers competing for the same court-day so the
// availability check and the insert happen in one critical section.
type LockManager interface {
	AcquireCourtDay(ctx context.Context, tx pgx.Tx, courtID uuid.UUID, day time.Time) error
}

type CourtInput struct {
	Name        string
	Type        string
	Sport       string
	BasePrice   float64
	Capacity    int
	Description *string
	IsActive    bool
}

type CoachInput struct {
	Name           string
	Email          string
	Specialization string
	Experience     int
	PricePerHour   float64
	IsActive       bool
}

type EquipmentInput struct {
	Name         string
	Category     string
	TotalStock   int
	PricePerHour float64
	IsActive     bool
}

// CoachAvailabilitySlot is one published time slot on a coach's calendar.
// Slots are informational for clients; booking conflicts are still decided
// against actual reservations.
type CoachAvailabilitySlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsBooked  bool   `json:"isBooked"`
}

type CoachAvailabilityDay struct {
	Date  time.Time               `json:"date"`
	Slots []CoachAvailabilitySlot `json:"slots"`
}

type CatalogRepository interface {
	CreateCourt(ctx context.Context, in CourtInput) (uuid.UUID, error)
	UpdateCourt(ctx context.Context, id uuid.UUID, in CourtInput) error
	DeleteCourt(ctx context.Context, id uuid.UUID) error

	CreateCoach(ctx context.Context, in CoachInput) (uuid.UUID, error)
	UpdateCoach(ctx context.Context, id uuid.UUID, in CoachInput) error
	UpdateCoachAvailability(ctx context.Context, id uuid.UUID, days []CoachAvailabilityDay) error
	DeleteCoach(ctx context.Context, id uuid.UUID) error

	CreateEquipment(ctx context.Context, in EquipmentInput) (uuid.UUID, error)
	UpdateEquipment(ctx context.Context, id uuid.UUID, in EquipmentInput) error
	DeleteEquipment(ctx context.Context, id uuid.UUID) error
}

type PricingRuleInput struct {
	Name       string
	Type       pricing.RuleType
	Multiplier float64
	Conditions pricing.Conditions
	IsActive   bool
}

type PricingRuleRepository interface {
	Create(ctx context.Context, in PricingRuleInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, in PricingRuleInput) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RuleCacheInvalidator drops the cached active-rule set after any rule
// write so the next evaluation reloads from the store.
type RuleCacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

type UserRecord struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         string
	Role         string
	IsActive     bool
}

type UserRepository interface {
	Create(ctx context.Context, u UserRecord) error
	FindByEmail(ctx context.Context, email string) (*UserRecord, error)
	FindByID(ctx context.Context, id uuid.UUID) (*UserRecord, error)
}
