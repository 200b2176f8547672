package v1

import (
	"net/http"

	"talentflow-backend/internal/delivery/http/response"
	"talentflow-backend/internal/domain"
	"talentflow-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public, protected *gin.RouterGroup, authUC domain.AuthUsecase, loginDelay gin.HandlerFunc) {
	handler := &AuthHandler{authUC: authUC}

	public.POST("/auth/login", loginDelay, handler.Login)
	protected.GET("/auth/me", handler.Me)
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary      Log in with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      LoginRequest  true  "Credentials"
// @Success      200          {object}  domain.LoginResult
// @Failure      401          {object}  response.Response
// @Failure      500          {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Unauthorized("Invalid email or password"))
		return
	}

	result, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, result)
}

// Me godoc
// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.UserProfile
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	profile, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, profile)
}
