package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tejaIG/sevak-ai-poc/internal/services"
	"github.com/tejaIG/sevak-ai-poc/internal/services/dto"
)

type RequirementsHandler struct {
	*BaseHandler
	intakeService services.IntakeService
}

func NewRequirementsHandler(base *BaseHandler, intakeService services.IntakeService) *RequirementsHandler {
	return &RequirementsHandler{
		BaseHandler:   base,
		intakeService: intakeService,
	}
}

func (h *RequirementsHandler) RegisterRoutes(r *gin.RouterGroup) {
	reqs := r.Group("/requirements")
	{
		reqs.POST("/:userId", h.CreateRequirements)
		reqs.GET("/:userId", h.GetRequirements)
		reqs.PATCH("/:userId", h.UpdateRequirements)
		reqs.POST("/:userId/submit", h.SubmitRequirements)
	}
}

// CreateRequirements godoc
// @Summary Create the requirements record for a user
// @Description One record per user; a second create is rejected, use PATCH instead
// @Tags requirements
// @Accept json
// @Produce json
// @Param userId path int true "User ID"
// @Param requirements body dto.CreateRequirementsRequest true "Requirements payload"
// @Success 201 {object} models.Requirements
// @Failure 404 {object} apperrors.ErrorResponse "user not found"
// @Failure 409 {object} apperrors.ErrorResponse "requirements already exist"
// @Router /requirements/{userId} [post]
func (h *RequirementsHandler) CreateRequirements(c *gin.Context) {
	userID, err := ParseParamUint(c, "userId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.CreateRequirementsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	reqs, err := h.intakeService.CreateRequirements(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reqs)
}

// GetRequirements godoc
// @Summary Get the requirements record for a user
// @Tags requirements
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} models.Requirements
// @Failure 404 {object} apperrors.ErrorResponse "requirements not found"
// @Router /requirements/{userId} [get]
func (h *RequirementsHandler) GetRequirements(c *gin.Context) {
	userID, err := ParseParamUint(c, "userId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	reqs, err := h.intakeService.GetRequirements(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reqs)
}

// UpdateRequirements godoc
// @Summary Update the requirements record for a user
// @Description Merges the patch into the stored draft; submitted records reject edits
// @Tags requirements
// @Accept json
// @Produce json
// @Param userId path int true "User ID"
// @Param update body dto.UpdateRequirementsRequest true "Fields to update"
// @Success 200 {object} models.Requirements
// @Failure 404 {object} apperrors.ErrorResponse "requirements not found"
// @Failure 409 {object} apperrors.ErrorResponse "already submitted"
// @Router /requirements/{userId} [patch]
func (h *RequirementsHandler) UpdateRequirements(c *gin.Context) {
	userID, err := ParseParamUint(c, "userId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateRequirementsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	reqs, err := h.intakeService.UpdateRequirements(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reqs)
}

// SubmitRequirements godoc
// @Summary Submit the requirements for matching
// @Description Moves the draft to submitted and sends a confirmation email
// @Tags requirements
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} dto.SubmitResponse
// @Failure 404 {object} apperrors.ErrorResponse "requirements not found"
// @Failure 409 {object} apperrors.ErrorResponse "already submitted"
// @Router /requirements/{userId}/submit [post]
func (h *RequirementsHandler) SubmitRequirements(c *gin.Context) {
	userID, err := ParseParamUint(c, "userId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	resp, err := h.intakeService.SubmitRequirements(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
