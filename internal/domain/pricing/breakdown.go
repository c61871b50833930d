package pricing

// Breakdown is the itemized fee structure for a single priced booking.
// All monetary values are plain floats; rounding to currency precision is a
// presentation-layer concern. Once a booking is created the breakdown is
// frozen with it, so later rule changes never touch existing bookings.
type Breakdown struct {
	BasePrice     float64  `json:"basePrice"`
	PeakHourFee   float64  `json:"peakHourFee"`
	WeekendFee    float64  `json:"weekendFee"`
	HolidayFee    float64  `json:"holidayFee"`
	IndoorPremium float64  `json:"indoorPremium"`
	CoachFee      float64  `json:"coachFee"`
	EquipmentFee  float64  `json:"equipmentFee"`
	Total         float64  `json:"total"`
	AppliedRules  []string `json:"appliedRules"`
}
