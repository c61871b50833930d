package pricing

import (
	"time"

	"court-booking/internal/domain/schedule"
)

// EquipmentCharge is one priced equipment line item.
type EquipmentCharge struct {
	RatePerHour float64
	Quantity    int
}

// QuoteInput is everything Compute needs. Rules are passed in explicitly
// (the active set, in store order) rather than read from ambient state, so
// the computation is a pure function of its arguments.
type QuoteInput struct {
	BasePrice     float64 // per hour
	Date          time.Time
	Start         schedule.TimeOfDay
	CourtType     string
	DurationHours float64
	Rules         []Rule
	CoachRate     *float64 // per hour, nil when no coach
	Equipment     []EquipmentCharge
}

// Compute builds the price breakdown for a candidate booking. Each applying
// rule contributes basePrice*duration*(multiplier-1) to its fee bucket and
// to the total; multiple rules of the same type stack. Rule order affects
// only the AppliedRules listing, never the numbers.
func Compute(in QuoteInput) Breakdown {
	base := in.BasePrice * in.DurationHours
	breakdown := Breakdown{
		BasePrice:    base,
		Total:        base,
		AppliedRules: []string{},
	}

	for _, rule := range in.Rules {
		if !rule.AppliesTo(in.Date, in.Start, in.CourtType) {
			continue
		}

		fee := in.BasePrice * in.DurationHours * (rule.Multiplier - 1)
		switch rule.Type {
		case RulePeakHour:
			breakdown.PeakHourFee += fee
		case RuleWeekend:
			breakdown.WeekendFee += fee
		case RuleHoliday:
			breakdown.HolidayFee += fee
		case RuleIndoorPremium:
			breakdown.IndoorPremium += fee
		}

		breakdown.Total += fee
		breakdown.AppliedRules = append(breakdown.AppliedRules, rule.Name)
	}

	if in.CoachRate != nil {
		breakdown.CoachFee = *in.CoachRate * in.DurationHours
		breakdown.Total += breakdown.CoachFee
	}

	for _, item := range in.Equipment {
		breakdown.EquipmentFee += item.RatePerHour * float64(item.Quantity) * in.DurationHours
	}
	breakdown.Total += breakdown.EquipmentFee

	return breakdown
}
