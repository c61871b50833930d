package api

import (
	"errors"
	"net/http"

	reqdto "court-booking/internal/handler/dto/request"
	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PricingRuleHandler struct {
	ruleCommands commands.PricingRuleCommands
	ruleQueries  queries.PricingRuleQueries
}

func NewPricingRuleHandler(ruleCommands commands.PricingRuleCommands, ruleQueries queries.PricingRuleQueries) *PricingRuleHandler {
	return &PricingRuleHandler{
		ruleCommands: ruleCommands,
		ruleQueries:  ruleQueries,
	}
}

// @Summary List pricing rules
// @Tags pricing-rules
// @Produce json
// @Param type query string false "Rule type"
// @Param is_active query boolean false "Active flag"
// @Success 200 {array} resdto.PricingRuleResponse
// @Router /pricing-rules [get]
func (h *PricingRuleHandler) ListRules(c *gin.Context) {
	var filter queries.PricingRuleListFilter
	if ruleType := c.Query("type"); ruleType != "" {
		filter.Type = &ruleType
	}
	if activeStr := c.Query("is_active"); activeStr != "" {
		active := activeStr == "true"
		filter.IsActive = &active
	}

	views, err := h.ruleQueries.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp, err := resdto.FromPricingRuleViews(views)
	respondView(c, http.StatusOK, resp, err)
}

// @Summary Get pricing rule
// @Tags pricing-rules
// @Produce json
// @Param id path string true "Rule ID"
// @Success 200 {object} resdto.PricingRuleResponse
// @Failure 404 {object} map[string]string
// @Router /pricing-rules/{id} [get]
func (h *PricingRuleHandler) GetRule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid rule ID format",
		})
		return
	}

	view, err := h.ruleQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeRuleError(c, err)
		return
	}

	resp, err := resdto.FromPricingRuleView(view)
	respondView(c, http.StatusOK, resp, err)
}

// @Summary Create pricing rule
// @Description Create a pricing rule (admin); the active-rule cache is invalidated
// @Tags pricing-rules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PricingRuleRequest true "Rule request"
// @Success 201 {object} resdto.PricingRuleResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /pricing-rules [post]
func (h *PricingRuleHandler) CreateRule(c *gin.Context) {
	var req reqdto.PricingRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	input, err := req.ToInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid rule conditions",
		})
		return
	}

	view, err := h.ruleCommands.Create(c.Request.Context(), input)
	if err != nil {
		h.writeRuleError(c, err)
		return
	}

	resp, err := resdto.FromPricingRuleView(view)
	respondView(c, http.StatusCreated, resp, err)
}

// @Summary Update pricing rule
// @Description Update a pricing rule (admin); existing bookings keep their frozen prices
// @Tags pricing-rules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rule ID"
// @Param request body reqdto.PricingRuleRequest true "Rule request"
// @Success 200 {object} resdto.PricingRuleResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /pricing-rules/{id} [put]
func (h *PricingRuleHandler) UpdateRule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid rule ID format",
		})
		return
	}

	var req reqdto.PricingRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	input, err := req.ToInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid rule conditions",
		})
		return
	}

	view, err := h.ruleCommands.Update(c.Request.Context(), id, input)
	if err != nil {
		h.writeRuleError(c, err)
		return
	}

	resp, err := resdto.FromPricingRuleView(view)
	respondView(c, http.StatusOK, resp, err)
}

// @Summary Delete pricing rule
// @Description Delete a pricing rule (admin); existing bookings keep their frozen prices
// @Tags pricing-rules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rule ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /pricing-rules/{id} [delete]
func (h *PricingRuleHandler) DeleteRule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid rule ID format",
		})
		return
	}

	if err := h.ruleCommands.Delete(c.Request.Context(), id); err != nil {
		h.writeRuleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PricingRuleHandler) writeRuleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrRuleNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Pricing rule not found",
		})
	case errors.Is(err, errs.ErrDuplicateName):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Rule name already exists",
		})
	case errors.Is(err, errs.ErrInvalidRuleType):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid rule type",
		})
	case errors.Is(err, errs.ErrInvalidMultiplier):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Multiplier must be non-negative",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
