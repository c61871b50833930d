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

type CoachHandler struct {
	catalogCommands commands.CatalogCommands
	catalogQueries  queries.CatalogQueries
}

func NewCoachHandler(catalogCommands commands.CatalogCommands, catalogQueries queries.CatalogQueries) *CoachHandler {
	return &CoachHandler{
		catalogCommands: catalogCommands,
		catalogQueries:  catalogQueries,
	}
}

// @Summary List coaches
// @Tags coaches
// @Produce json
// @Success 200 {array} resdto.CoachResponse
// @Router /coaches [get]
func (h *CoachHandler) ListCoaches(c *gin.Context) {
	views, err := h.catalogQueries.ListCoaches(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp, err := resdto.FromCoachViews(views)
	respondView(c, http.StatusOK, resp, err)
}

// @Summary Get coach
// @Tags coaches
// @Produce json
// @Param id path string true "Coach ID"
// @Success 200 {object} resdto.CoachResponse
// @Failure 404 {object} map[string]string
// @Router /coaches/{id} [get]
func (h *CoachHandler) GetCoach(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid coach ID format",
		})
		return
	}

	view, err := h.catalogQueries.GetCoach(c.Request.Context(), id)
	if err != nil {
		h.writeCoachError(c, err)
		return
	}

	resp, err := resdto.FromCoachView(view)
	respondView(c, http.StatusOK, resp, err)
}

// @Summary Create coach
// @Description Create a new coach (admin)
// @Tags coaches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CoachRequest true "Coach request"
// @Success 201 {object} resdto.CoachResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /coaches [post]
func (h *CoachHandler) CreateCoach(c *gin.Context) {
	var req reqdto.CoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.catalogCommands.CreateCoach(c.Request.Context(), req.ToInput())
	if err != nil {
		h.writeCoachError(c, err)
		return
	}

	resp, err := resdto.FromCoachView(view)
	respondView(c, http.StatusCreated, resp, err)
}

// @Summary Update coach
// @Description Update a coach (admin)
// @Tags coaches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coach ID"
// @Param request body reqdto.CoachRequest true "Coach request"
// @Success 200 {object} resdto.CoachResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /coaches/{id} [put]
func (h *CoachHandler) UpdateCoach(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid coach ID format",
		})
		return
	}

	var req reqdto.CoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.catalogCommands.UpdateCoach(c.Request.Context(), id, req.ToInput())
	if err != nil {
		h.writeCoachError(c, err)
		return
	}

	resp, err := resdto.FromCoachView(view)
	respondView(c, http.StatusOK, resp, err)
}

// @Summary Update coach availability
// @Description Replace a coach's published availability calendar (admin)
// @Tags coaches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coach ID"
// @Param request body reqdto.CoachAvailabilityRequest true "Availability request"
// @Success 200 {object} resdto.CoachResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /coaches/{id}/availability [put]
func (h *CoachHandler) UpdateAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid coach ID format",
		})
		return
	}

	var req reqdto.CoachAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	days, err := req.ToDays()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid availability date format, expected YYYY-MM-DD",
		})
		return
	}

	view, err := h.catalogCommands.UpdateCoachAvailability(c.Request.Context(), id, days)
	if err != nil {
		h.writeCoachError(c, err)
		return
	}

	resp, err := resdto.FromCoachView(view)
	respondView(c, http.StatusOK, resp, err)
}

// @Summary Delete coach
// @Description Delete a coach (admin)
// @Tags coaches
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coach ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /coaches/{id} [delete]
func (h *CoachHandler) DeleteCoach(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid coach ID format",
		})
		return
	}

	if err := h.catalogCommands.DeleteCoach(c.Request.Context(), id); err != nil {
		h.writeCoachError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CoachHandler) writeCoachError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrCoachNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Coach not found",
		})
	case errors.Is(err, errs.ErrDuplicateName):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Coach email already exists",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
