package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gestio-app/gestio/internal/application/user/usecases"
	"github.com/gestio-app/gestio/internal/shared/logger"
	"github.com/gestio-app/gestio/internal/shared/utils"
)

// AuthHandler handles operator authentication requests
type AuthHandler struct {
	loginUC      *usecases.LoginUseCase
	getProfileUC *usecases.GetProfileUseCase
	logger       logger.Interface
}

func NewAuthHandler(
	loginUC *usecases.LoginUseCase,
	getProfileUC *usecases.GetProfileUseCase,
) *AuthHandler {
	return &AuthHandler{
		loginUC:      loginUC,
		getProfileUC: getProfileUC,
		logger:       logger.NewLogger(),
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates the operator and returns an access token
// @Summary Log in
// @Description Authenticate with email and password and receive an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} utils.Response{data=dto.LoginResultDTO}
// @Failure 401 {object} utils.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid login request body", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "email and password are required")
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetProfile returns the authenticated operator's profile
// @Summary Get current user
// @Description Return the profile of the authenticated operator
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response{data=dto.UserDTO}
// @Failure 401 {object} utils.Response
// @Router /auth/me [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	result, err := h.getProfileUC.Execute(c.Request.Context(), usecases.GetProfileQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
