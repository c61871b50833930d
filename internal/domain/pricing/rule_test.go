//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"court-booking/internal/domain/pricing"
	"court-booking/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRule_AppliesTo(t *testing.T) {
	at := schedule.MustParseTimeOfDay
	monday := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2025, 6, 21, 0, 0, 0, 0, time.UTC)

	t.Run("peak hour boundaries", func(t *testing.T) {
		rule := pricing.Rule{
			Type:       pricing.RulePeakHour,
			Conditions: pricing.PeakHourConditions{StartHour: 17, EndHour: 21},
		}

		assert.False(t, rule.AppliesTo(monday, at("16:59"), "outdoor"))
		assert.True(t, rule.AppliesTo(monday, at("17:00"), "outdoor"))
		assert.True(t, rule.AppliesTo(monday, at("20:59"), "outdoor"))
		assert.False(t, rule.AppliesTo(monday, at("21:00"), "outdoor"))
	})

	t.Run("weekend matches by weekday name", func(t *testing.T) {
		rule := pricing.Rule{
			Type:       pricing.RuleWeekend,
			Conditions: pricing.WeekendConditions{Days: []string{"Saturday", "Sunday"}},
		}

		assert.True(t, rule.AppliesTo(saturday, at("10:00"), "outdoor"))
		assert.False(t, rule.AppliesTo(monday, at("10:00"), "outdoor"))
	})

	t.Run("holiday matches by calendar day", func(t *testing.T) {
		rule := pricing.Rule{
			Type: pricing.RuleHoliday,
			Conditions: pricing.HolidayConditions{
				Dates: []time.Time{time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)},
			},
		}

		assert.True(t, rule.AppliesTo(time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC), at("10:00"), "outdoor"))
		assert.False(t, rule.AppliesTo(time.Date(2025, 12, 26, 0, 0, 0, 0, time.UTC), at("10:00"), "outdoor"))
	})

	t.Run("indoor premium keys on court type only", func(t *testing.T) {
		rule := pricing.Rule{Type: pricing.RuleIndoorPremium, Conditions: pricing.NoConditions{}}

		assert.True(t, rule.AppliesTo(monday, at("10:00"), "indoor"))
		assert.False(t, rule.AppliesTo(monday, at("10:00"), "outdoor"))
	})

	t.Run("mismatched conditions payload never applies", func(t *testing.T) {
		rule := pricing.Rule{
			Type:       pricing.RulePeakHour,
			Conditions: pricing.WeekendConditions{Days: []string{"Saturday"}},
		}

		assert.False(t, rule.AppliesTo(monday, at("18:00"), "indoor"))
	})

	t.Run("unknown rule type never applies", func(t *testing.T) {
		rule := pricing.Rule{Type: pricing.RuleType("full_moon"), Conditions: pricing.NoConditions{}}

		assert.False(t, rule.AppliesTo(monday, at("10:00"), "indoor"))
	})
}

func TestDecodeConditions(t *testing.T) {
	t.Run("peak hour", func(t *testing.T) {
		actual, err := pricing.DecodeConditions(pricing.RulePeakHour, []byte(`{"startHour":17,"endHour":21}`))
		require.NoError(t, err)
		assert.Equal(t, pricing.PeakHourConditions{StartHour: 17, EndHour: 21}, actual)
	})

	t.Run("weekend", func(t *testing.T) {
		actual, err := pricing.DecodeConditions(pricing.RuleWeekend, []byte(`{"days":["Saturday","Sunday"]}`))
		require.NoError(t, err)
		assert.Equal(t, pricing.WeekendConditions{Days: []string{"Saturday", "Sunday"}}, actual)
	})

	t.Run("holiday dates are parsed", func(t *testing.T) {
		actual, err := pricing.DecodeConditions(pricing.RuleHoliday, []byte(`{"specificDates":["2025-12-25"]}`))
		require.NoError(t, err)

		holiday, ok := actual.(pricing.HolidayConditions)
		require.True(t, ok)
		require.Len(t, holiday.Dates, 1)
		assert.True(t, schedule.SameDay(holiday.Dates[0], time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("missing required fields decode to NoConditions", func(t *testing.T) {
		for _, ruleType := range []pricing.RuleType{pricing.RulePeakHour, pricing.RuleWeekend, pricing.RuleHoliday} {
			actual, err := pricing.DecodeConditions(ruleType, []byte(`{}`))
			require.NoError(t, err)
			assert.Equal(t, pricing.NoConditions{}, actual, "rule type %s", ruleType)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		actual, err := pricing.DecodeConditions(pricing.RuleIndoorPremium, nil)
		require.NoError(t, err)
		assert.Equal(t, pricing.NoConditions{}, actual)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := pricing.DecodeConditions(pricing.RulePeakHour, []byte(`{`))
		require.Error(t, err)
	})

	t.Run("bad date string", func(t *testing.T) {
		_, err := pricing.DecodeConditions(pricing.RuleHoliday, []byte(`{"specificDates":["December 25"]}`))
		require.Error(t, err)
	})
}

func TestEncodeConditions_RoundTrip(t *testing.T) {
	testCases := []struct {
		name       string
		ruleType   pricing.RuleType
		conditions pricing.Conditions
	}{
		{
			name:       "peak hour",
			ruleType:   pricing.RulePeakHour,
			conditions: pricing.PeakHourConditions{StartHour: 6, EndHour: 9},
		},
		{
			name:       "weekend",
			ruleType:   pricing.RuleWeekend,
			conditions: pricing.WeekendConditions{Days: []string{"Sunday"}},
		},
		{
			name:     "holiday",
			ruleType: pricing.RuleHoliday,
			conditions: pricing.HolidayConditions{
				Dates: []time.Time{time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			raw, err := pricing.EncodeConditions(tc.conditions)
			require.NoError(t, err)

			decoded, err := pricing.DecodeConditions(tc.ruleType, raw)
			require.NoError(t, err)
			assert.Equal(t, tc.conditions, decoded)
		})
	}
}

func TestRuleType_IsValid(t *testing.T) {
	assert.True(t, pricing.RulePeakHour.IsValid())
	assert.True(t, pricing.RuleIndoorPremium.IsValid())
	assert.False(t, pricing.RuleType("surge").IsValid())
	assert.False(t, pricing.RuleType("").IsValid())
}
