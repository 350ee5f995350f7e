package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tejaIG/sevak-ai-poc/internal/auth"
	"github.com/tejaIG/sevak-ai-poc/internal/config"
	"github.com/tejaIG/sevak-ai-poc/internal/middleware"
	"github.com/tejaIG/sevak-ai-poc/internal/services"
	"github.com/tejaIG/sevak-ai-poc/internal/services/dto"
)

type UserHandler struct {
	*BaseHandler
	intakeService services.IntakeService
}

func NewUserHandler(base *BaseHandler, intakeService services.IntakeService) *UserHandler {
	return &UserHandler{
		BaseHandler:   base,
		intakeService: intakeService,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	{
		users.POST("", h.CreateUser)
		users.GET("/:userId", h.GetUser)
		users.PATCH("/:userId", h.UpdateUser)
		users.GET("/:userId/with-requirements", h.GetUserWithRequirements)
	}

	admin := r.Group("/admin/users")
	admin.Use(middleware.AuthMiddleware(config.GetConfig().Auth.JWTSecret), middleware.RequireRoles(auth.RoleAdmin))
	{
		admin.GET("", h.ListUsers)
	}
}

// CreateUser godoc
// @Summary Register a new user
// @Description Creates a user from the registration stage of the hiring wizard
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "Registration payload"
// @Success 201 {object} models.User
// @Failure 400 {object} apperrors.ErrorResponse "validation failed"
// @Failure 409 {object} apperrors.ErrorResponse "duplicate email or mobile"
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.intakeService.CreateUser(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetUser godoc
// @Summary Get a user by ID
// @Tags users
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} apperrors.ErrorResponse "user not found"
// @Router /users/{userId} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := ParseParamUint(c, "userId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	user, err := h.intakeService.GetUser(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUser godoc
// @Summary Update a user profile
// @Description Applies a partial update; email and mobile stay unique across users
// @Tags users
// @Accept json
// @Produce json
// @Param userId path int true "User ID"
// @Param update body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} models.User
// @Failure 404 {object} apperrors.ErrorResponse "user not found"
// @Failure 409 {object} apperrors.ErrorResponse "duplicate email or mobile"
// @Router /users/{userId} [patch]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := ParseParamUint(c, "userId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.intakeService.UpdateUser(c.Request.Context(), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetUserWithRequirements godoc
// @Summary Get a user together with their requirements
// @Description Returns the combined wizard state; requirements is null until stage 2 is saved
// @Tags users
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} dto.UserWithRequirements
// @Failure 404 {object} apperrors.ErrorResponse "user not found"
// @Router /users/{userId}/with-requirements [get]
func (h *UserHandler) GetUserWithRequirements(c *gin.Context) {
	id, err := ParseParamUint(c, "userId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	combined, err := h.intakeService.GetUserWithRequirements(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, combined)
}

// ListUsers godoc
// @Summary List registered users
// @Description Paginated listing for the operations team
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {object} dto.UserListResponse
// @Failure 401 {object} apperrors.ErrorResponse "missing or invalid token"
// @Router /admin/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	list, err := h.intakeService.ListUsers(c.Request.Context(), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}
