package request

import (
	"encoding/json"

	"court-booking/internal/domain/pricing"
	"court-booking/internal/usecase/commands"
)

// ConditionsRequest mirrors the stored conditions document. Fields are
// interpreted by rule type; irrelevant ones are ignored.
type ConditionsRequest struct {
	StartHour     *int     `json:"startHour,omitempty"`
	EndHour       *int     `json:"endHour,omitempty"`
	Days          []string `json:"days,omitempty"`
	SpecificDates []string `json:"specificDates,omitempty"`
}

type PricingRuleRequest struct {
	Name       string            `json:"name" binding:"required"`
	Type       string            `json:"type" binding:"required"`
	Multiplier *float64          `json:"multiplier" binding:"required,gte=0"`
	Conditions ConditionsRequest `json:"conditions"`
	IsActive   *bool             `json:"is_active,omitempty"`
}

func (r PricingRuleRequest) ToInput() (commands.PricingRuleInput, error) {
	raw, err := json.Marshal(r.Conditions)
	if err != nil {
		return commands.PricingRuleInput{}, err
	}

	ruleType := pricing.RuleType(r.Type)
	conditions, err := pricing.DecodeConditions(ruleType, raw)
	if err != nil {
		return commands.PricingRuleInput{}, err
	}

	return commands.PricingRuleInput{
		Name:       r.Name,
		Type:       ruleType,
		Multiplier: *r.Multiplier,
		Conditions: conditions,
		IsActive:   activeOrDefault(r.IsActive),
	}, nil
}
