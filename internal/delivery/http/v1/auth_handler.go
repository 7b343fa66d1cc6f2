package v1

import (
	"net/http"

	"go-talent-directory/internal/domain"
	"go-talent-directory/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

type tokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Register godoc
// @Summary      Register a new student account
// @Description  Creates the account together with its talent profile
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      domain.RegisterInput  true  "Registration payload"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /accounts/auth/register/ [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input domain.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	user, err := h.authUC.Register(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary      Obtain an access/refresh token pair
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  tokenPairResponse
// @Failure      401   {object}  response.Response
// @Router       /accounts/auth/login/ [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Email dan password wajib diisi"))
		return
	}

	access, refresh, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, tokenPairResponse{Access: access, Refresh: refresh})
}

// Refresh godoc
// @Summary      Exchange a refresh token for a new access token
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      refreshRequest  true  "Refresh token"
// @Success      200   {object}  map[string]string
// @Failure      401   {object}  response.Response
// @Router       /accounts/auth/refresh/ [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Refresh token wajib diisi"))
		return
	}

	access, err := h.authUC.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"access": access})
}

// Me godoc
// @Summary      Current account
// @Tags         accounts
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  response.Response
// @Router       /accounts/me/ [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	user, err := h.authUC.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, user)
}
