//go:build unit

package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"court-booking/internal/domain/pricing"
	"court-booking/internal/handler/dto/response"
	"court-booking/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBookingView(t *testing.T) {
	coachID := uuid.New()
	coachName := "Coach Carter"
	view := &queries.BookingView{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		UserName:    "Test Player",
		UserEmail:   "player@example.com",
		CourtID:     uuid.New(),
		CourtName:   "Center Court",
		CoachID:     &coachID,
		CoachName:   &coachName,
		BookingDate: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:00",
		EndTime:     "12:00",
		Equipment: []queries.EquipmentLineView{
			{EquipmentID: uuid.New(), Quantity: 2},
		},
		Breakdown: pricing.Breakdown{
			BasePrice:    2000,
			PeakHourFee:  600,
			Total:        2600,
			AppliedRules: []string{"Evening Peak"},
		},
		Status:        "confirmed",
		PaymentStatus: "pending",
		CreatedAt:     time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
		UpdatedAt:     time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
	}

	resp, err := response.FromBookingView(view)
	require.NoError(t, err)

	assert.Equal(t, view.ID, resp.ID)
	assert.Equal(t, view.CourtName, resp.CourtName)
	assert.Equal(t, &coachName, resp.CoachName)
	assert.Equal(t, view.StartTime, resp.StartTime)
	require.Len(t, resp.Equipment, 1)
	assert.Equal(t, view.Equipment[0].EquipmentID, resp.Equipment[0].EquipmentID)
	assert.Equal(t, 2, resp.Equipment[0].Quantity)
	if diff := cmp.Diff(view.Breakdown, resp.Breakdown); diff != "" {
		t.Errorf("breakdown mismatch (-want +got):\n%s", diff)
	}
}

func TestFromBookingViews(t *testing.T) {
	views := []*queries.BookingView{
		{ID: uuid.New(), CourtName: "Court A"},
		{ID: uuid.New(), CourtName: "Court B"},
	}

	resps, err := response.FromBookingViews(views)
	require.NoError(t, err)
	require.Len(t, resps, 2)
	assert.Equal(t, views[0].ID, resps[0].ID)
	assert.Equal(t, "Court B", resps[1].CourtName)
}

func TestFromCoachView(t *testing.T) {
	doc := json.RawMessage(`[{"date":"2025-06-20T00:00:00Z","slots":[{"startTime":"09:00","endTime":"10:00","isBooked":false}]}]`)
	view := &queries.CoachView{
		ID:             uuid.New(),
		Name:           "Coach Carter",
		Email:          "carter@example.com",
		Specialization: "tennis",
		Experience:     8,
		PricePerHour:   1000,
		Availability:   doc,
		IsActive:       true,
	}

	resp, err := response.FromCoachView(view)
	require.NoError(t, err)

	assert.Equal(t, view.Name, resp.Name)
	assert.Equal(t, view.PricePerHour, resp.PricePerHour)
	assert.JSONEq(t, string(doc), string(resp.Availability))
}

func TestFromPricingRuleView(t *testing.T) {
	view := &queries.PricingRuleView{
		ID:         uuid.New(),
		Name:       "Evening Peak",
		Type:       "peak_hour",
		Multiplier: 1.3,
		Conditions: json.RawMessage(`{"startHour":17,"endHour":21}`),
		IsActive:   true,
	}

	resp, err := response.FromPricingRuleView(view)
	require.NoError(t, err)

	assert.Equal(t, view.Name, resp.Name)
	assert.InDelta(t, 1.3, resp.Multiplier, 1e-9)
	assert.JSONEq(t, string(view.Conditions), string(resp.Conditions))
}
