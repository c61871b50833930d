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

type EquipmentHandler struct {
	catalogCommands commands.CatalogCommands
	catalogQueries  queries.CatalogQueries
}

func NewEquipmentHandler(catalogCommands commands.CatalogCommands, catalogQueries queries.CatalogQueries) *EquipmentHandler {
	return &EquipmentHandler{
		catalogCommands: catalogCommands,
		catalogQueries:  catalogQueries,
	}
}

// @Summary List equipment
// @Tags equipment
// @Produce json
// @Success 200 {array} resdto.EquipmentResponse
// @Router /equipment [get]
func (h *EquipmentHandler) ListEquipment(c *gin.Context) {
	views, err := h.catalogQueries.ListEquipment(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp, err := resdto.FromEquipmentViews(views)
	respondView(c, http.StatusOK, resp, err)
}

// @Summary Get equipment
// @Tags equipment
// @Produce json
// @Param id path string true "Equipment ID"
// @Success 200 {object} resdto.EquipmentResponse
// @Failure 404 {object} map[string]string
// @Router /equipment/{id} [get]
func (h *EquipmentHandler) GetEquipment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid equipment ID format",
		})
		return
	}

	view, err := h.catalogQueries.GetEquipment(c.Request.Context(), id)
	if err != nil {
		h.writeEquipmentError(c, err)
		return
	}

	resp, err := resdto.FromEquipmentView(view)
	respondView(c, http.StatusOK, resp, err)
}

// @Summary Create equipment
// @Description Create new equipment (admin)
// @Tags equipment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.EquipmentRequest true "Equipment request"
// @Success 201 {object} resdto.EquipmentResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /equipment [post]
func (h *EquipmentHandler) CreateEquipment(c *gin.Context) {
	var req reqdto.EquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.catalogCommands.CreateEquipment(c.Request.Context(), req.ToInput())
	if err != nil {
		h.writeEquipmentError(c, err)
		return
	}

	resp, err := resdto.FromEquipmentView(view)
	respondView(c, http.StatusCreated, resp, err)
}

// @Summary Update equipment
// @Description Update equipment (admin); stock changes apply to future availability checks only
// @Tags equipment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Equipment ID"
// @Param request body reqdto.EquipmentRequest true "Equipment request"
// @Success 200 {object} resdto.EquipmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /equipment/{id} [put]
func (h *EquipmentHandler) UpdateEquipment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid equipment ID format",
		})
		return
	}

	var req reqdto.EquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.catalogCommands.UpdateEquipment(c.Request.Context(), id, req.ToInput())
	if err != nil {
		h.writeEquipmentError(c, err)
		return
	}

	resp, err := resdto.FromEquipmentView(view)
	respondView(c, http.StatusOK, resp, err)
}

// @Summary Delete equipment
// @Description Delete equipment (admin)
// @Tags equipment
// @Produce json
// @Security BearerAuth
// @Param id path string true "Equipment ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /equipment/{id} [delete]
func (h *EquipmentHandler) DeleteEquipment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid equipment ID format",
		})
		return
	}

	if err := h.catalogCommands.DeleteEquipment(c.Request.Context(), id); err != nil {
		h.writeEquipmentError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *EquipmentHandler) writeEquipmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrEquipmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Equipment not found",
		})
	case errors.Is(err, errs.ErrDuplicateName):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Equipment name already exists",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
