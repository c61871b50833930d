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

type CourtHandler struct {
	catalogCommands commands.CatalogCommands
	catalogQueries  queries.CatalogQueries
}

func NewCourtHandler(catalogCommands commands.CatalogCommands, catalogQueries queries.CatalogQueries) *CourtHandler {
	return &CourtHandler{
		catalogCommands: catalogCommands,
		catalogQueries:  catalogQueries,
	}
}

// @Summary List courts
// @Description List courts with optional type and sport filters
// @Tags courts
// @Produce json
// @Param type query string false "Court type (indoor|outdoor)"
// @Param sport query string false "Sport"
// @Success 200 {array} resdto.CourtResponse
// @Router /courts [get]
func (h *CourtHandler) ListCourts(c *gin.Context) {
	var filter queries.CourtListFilter
	if courtType := c.Query("type"); courtType != "" {
		filter.Type = &courtType
	}
	if sport := c.Query("sport"); sport != "" {
		filter.Sport = &sport
	}

	views, err := h.catalogQueries.ListCourts(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp, err := resdto.FromCourtViews(views)
	respondView(c, http.StatusOK, resp, err)
}

// @Summary Get court
// @Description Get a court by ID
// @Tags courts
// @Produce json
// @Param id path string true "Court ID"
// @Success 200 {object} resdto.CourtResponse
// @Failure 404 {object} map[string]string
// @Router /courts/{id} [get]
func (h *CourtHandler) GetCourt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid court ID format",
		})
		return
	}

	view, err := h.catalogQueries.GetCourt(c.Request.Context(), id)
	if err != nil {
		h.writeCourtError(c, err)
		return
	}

	resp, err := resdto.FromCourtView(view)
	respondView(c, http.StatusOK, resp, err)
}

// @Summary Create court
// @Description Create a new court (admin)
// @Tags courts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CourtRequest true "Court request"
// @Success 201 {object} resdto.CourtResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /courts [post]
func (h *CourtHandler) CreateCourt(c *gin.Context) {
	var req reqdto.CourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.catalogCommands.CreateCourt(c.Request.Context(), req.ToInput())
	if err != nil {
		h.writeCourtError(c, err)
		return
	}

	resp, err := resdto.FromCourtView(view)
	respondView(c, http.StatusCreated, resp, err)
}

// @Summary Update court
// @Description Update a court (admin)
// @Tags courts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Court ID"
// @Param request body reqdto.CourtRequest true "Court request"
// @Success 200 {object} resdto.CourtResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /courts/{id} [put]
func (h *CourtHandler) UpdateCourt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid court ID format",
		})
		return
	}

	var req reqdto.CourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.catalogCommands.UpdateCourt(c.Request.Context(), id, req.ToInput())
	if err != nil {
		h.writeCourtError(c, err)
		return
	}

	resp, err := resdto.FromCourtView(view)
	respondView(c, http.StatusOK, resp, err)
}

// @Summary Delete court
// @Description Delete a court (admin); existing bookings keep their frozen prices
// @Tags courts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Court ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /courts/{id} [delete]
func (h *CourtHandler) DeleteCourt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid court ID format",
		})
		return
	}

	if err := h.catalogCommands.DeleteCourt(c.Request.Context(), id); err != nil {
		h.writeCourtError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CourtHandler) writeCourtError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrCourtNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Court not found",
		})
	case errors.Is(err, errs.ErrDuplicateName):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Court name already exists",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
