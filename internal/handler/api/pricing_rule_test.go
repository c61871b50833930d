//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"court-booking/internal/domain/pricing"
	"court-booking/internal/handler/api"
	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"
	"court-booking/tests/common/httptest"
	"court-booking/tests/common/testutil"
	commandsmock "court-booking/tests/mock/commands"
	queriesmock "court-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PricingRuleHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPricingRuleCommands
	mockQueries  *queriesmock.MockPricingRuleQueries
	handler      *api.PricingRuleHandler
}

func (s *PricingRuleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPricingRuleCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPricingRuleQueries(s.mockCtrl)
	s.handler = api.NewPricingRuleHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/api/pricing-rules", s.handler.CreateRule)
	s.router.PUT("/api/pricing-rules/:id", s.handler.UpdateRule)
}

func (s *PricingRuleHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPricingRuleHandlerSuite(t *testing.T) {
	suite.Run(t, new(PricingRuleHandlerTestSuite))
}

func (s *PricingRuleHandlerTestSuite) ruleView(id uuid.UUID, name string, multiplier float64) *queries.PricingRuleView {
	return &queries.PricingRuleView{
		ID:         id,
		Name:       name,
		Type:       string(pricing.RulePeakHour),
		Multiplier: multiplier,
		Conditions: json.RawMessage(`{"startHour":17,"endHour":21}`),
		IsActive:   true,
		CreatedAt:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *PricingRuleHandlerTestSuite) TestCreateRule() {
	url := "/api/pricing-rules"
	startHour := 17
	endHour := 21

	validBody := func() map[string]any {
		return map[string]any{
			"name":       "Evening Peak",
			"type":       "peak_hour",
			"multiplier": 1.3,
			"conditions": map[string]any{
				"startHour": startHour,
				"endHour":   endHour,
			},
		}
	}

	s.Run("creates rule", func() {
		ruleID := uuid.New()
		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in commands.PricingRuleInput) (*queries.PricingRuleView, error) {
				s.Equal("Evening Peak", in.Name)
				s.Equal(pricing.RulePeakHour, in.Type)
				s.InDelta(1.3, in.Multiplier, 1e-9)
				return s.ruleView(ruleID, in.Name, in.Multiplier), nil
			})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody(), "")

		var resp resdto.PricingRuleResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(ruleID, resp.ID)
	})

	s.Run("zero multiplier is a legal free-slot rule", func() {
		ruleID := uuid.New()
		body := validBody()
		body["name"] = "Free Community Hour"
		body["multiplier"] = 0

		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in commands.PricingRuleInput) (*queries.PricingRuleView, error) {
				s.Zero(in.Multiplier)
				return s.ruleView(ruleID, in.Name, 0), nil
			})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var resp resdto.PricingRuleResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Zero(resp.Multiplier)
	})

	s.Run("validation failures", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{"missing name", testutil.Field("name", "")},
			{"missing type", testutil.Field("type", "")},
			{"negative multiplier", testutil.Field("multiplier", -0.5)},
			{"missing multiplier", func(m map[string]any) { delete(m, "multiplier") }},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := validBody()
				tc.mutate(body)

				w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

				httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("duplicate name returns 409", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrDuplicateName)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody(), "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Rule name already exists")
	})
}

func (s *PricingRuleHandlerTestSuite) TestUpdateRule() {
	body := map[string]any{
		"name":       "Weekend Rate",
		"type":       "weekend",
		"multiplier": 0,
		"conditions": map[string]any{"days": []string{"Saturday", "Sunday"}},
	}

	s.Run("accepts zero multiplier on update", func() {
		ruleID := uuid.New()
		s.mockCommands.EXPECT().
			Update(gomock.Any(), ruleID, gomock.Any()).
			DoAndReturn(func(_ any, id uuid.UUID, in commands.PricingRuleInput) (*queries.PricingRuleView, error) {
				s.Zero(in.Multiplier)
				return s.ruleView(id, in.Name, 0), nil
			})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/pricing-rules/"+ruleID.String(), body, "")

		var resp resdto.PricingRuleResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	})

	s.Run("unknown rule returns 404", func() {
		ruleID := uuid.New()
		s.mockCommands.EXPECT().
			Update(gomock.Any(), ruleID, gomock.Any()).
			Return(nil, errs.ErrRuleNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/pricing-rules/"+ruleID.String(), body, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Pricing rule not found")
	})
}
