package response

import (
	"encoding/json"
	"time"

	"court-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PricingRuleResponse struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Type       string          `json:"type"`
	Multiplier float64         `json:"multiplier"`
	Conditions json.RawMessage `json:"conditions"`
	IsActive   bool            `json:"isActive"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

func FromPricingRuleView(view *queries.PricingRuleView) (*PricingRuleResponse, error) {
	var resp PricingRuleResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromPricingRuleViews(views []*queries.PricingRuleView) ([]*PricingRuleResponse, error) {
	responses := make([]*PricingRuleResponse, 0, len(views))
	for _, v := range views {
		resp, err := FromPricingRuleView(v)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}
