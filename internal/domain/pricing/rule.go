package pricing

import (
	"encoding/json"
	"time"

	"court-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

type RuleType string

const (
	RulePeakHour      RuleType = "peak_hour"
	RuleWeekend       RuleType = "weekend"
	RuleHoliday       RuleType = "holiday"
	RuleIndoorPremium RuleType = "indoor_premium"
)

func (t RuleType) IsValid() bool {
	switch t {
	case RulePeakHour, RuleWeekend, RuleHoliday, RuleIndoorPremium:
		return true
	default:
		return false
	}
}

// Conditions is the variant payload of a rule, keyed by rule type. One
// variant per type keeps new rule types exhaustiveness-checked instead of
// one struct of optional fields.
type Conditions interface {
	isConditions()
}

type PeakHourConditions struct {
	StartHour int
	EndHour   int
}

type WeekendConditions struct {
	Days []string // weekday names, e.g. "Saturday"
}

type HolidayConditions struct {
	Dates []time.Time // compared by year+month+day only
}

type NoConditions struct{}

func (PeakHourConditions) isConditions() {}
func (WeekendConditions) isConditions()  {}
func (HolidayConditions) isConditions()  {}
func (NoConditions) isConditions()       {}

// Rule is a single dynamic-pricing rule. Multiplier is the final-price
// factor for the segment the rule covers; the effective surcharge rate is
// multiplier-1. Rules are independent and stack additively.
type Rule struct {
	ID         uuid.UUID
	Name       string
	Type       RuleType
	Multiplier float64
	Conditions Conditions
	IsActive   bool
}

// AppliesTo evaluates the rule's type-specific predicate against a booking
// context. Rules whose conditions payload does not match their type, and
// rules of unrecognized type, never apply.
func (r Rule) AppliesTo(date time.Time, start schedule.TimeOfDay, courtType string) bool {
	switch r.Type {
	case RulePeakHour:
		c, ok := r.Conditions.(PeakHourConditions)
		if !ok {
			return false
		}
		hour := start.Hour()
		return hour >= c.StartHour && hour < c.EndHour

	case RuleWeekend:
		c, ok := r.Conditions.(WeekendConditions)
		if !ok {
			return false
		}
		day := date.Weekday().String()
		for _, d := range c.Days {
			if d == day {
				return true
			}
		}
		return false

	case RuleHoliday:
		c, ok := r.Conditions.(HolidayConditions)
		if !ok {
			return false
		}
		for _, holiday := range c.Dates {
			if schedule.SameDay(holiday, date) {
				return true
			}
		}
		return false

	case RuleIndoorPremium:
		return courtType == "indoor"

	default:
		return false
	}
}

// conditionsDoc is the wire/storage shape of Conditions: a single object
// with optional fields, as persisted in the pricing_rules.conditions jsonb
// column and the rule cache.
type conditionsDoc struct {
	StartHour     *int     `json:"startHour,omitempty"`
	EndHour       *int     `json:"endHour,omitempty"`
	Days          []string `json:"days,omitempty"`
	SpecificDates []string `json:"specificDates,omitempty"`
}

const dateLayout = "2006-01-02"

// DecodeConditions maps a stored conditions document onto the variant for
// the given rule type. Payloads missing the fields their type needs decode
// to NoConditions, which never applies.
func DecodeConditions(t RuleType, raw []byte) (Conditions, error) {
	var doc conditionsDoc
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
	}

	switch t {
	case RulePeakHour:
		if doc.StartHour == nil || doc.EndHour == nil {
			return NoConditions{}, nil
		}
		return PeakHourConditions{StartHour: *doc.StartHour, EndHour: *doc.EndHour}, nil

	case RuleWeekend:
		if len(doc.Days) == 0 {
			return NoConditions{}, nil
		}
		return WeekendConditions{Days: doc.Days}, nil

	case RuleHoliday:
		if len(doc.SpecificDates) == 0 {
			return NoConditions{}, nil
		}
		dates := make([]time.Time, 0, len(doc.SpecificDates))
		for _, s := range doc.SpecificDates {
			d, err := time.Parse(dateLayout, s)
			if err != nil {
				return nil, err
			}
			dates = append(dates, d)
		}
		return HolidayConditions{Dates: dates}, nil

	default:
		return NoConditions{}, nil
	}
}

// EncodeConditions is the inverse of DecodeConditions.
func EncodeConditions(c Conditions) ([]byte, error) {
	var doc conditionsDoc
	switch v := c.(type) {
	case PeakHourConditions:
		start, end := v.StartHour, v.EndHour
		doc.StartHour = &start
		doc.EndHour = &end
	case WeekendConditions:
		doc.Days = v.Days
	case HolidayConditions:
		for _, d := range v.Dates {
			doc.SpecificDates = append(doc.SpecificDates, d.Format(dateLayout))
		}
	}
	return json.Marshal(doc)
}
