package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atendemei/painel/internal/middleware"
	"github.com/atendemei/painel/internal/pkg/response"
	"github.com/atendemei/painel/internal/service"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.LoginError(c, "Invalid credentials")
		return
	}
	token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.LoginError(c, "Invalid credentials")
		return
	}
	c.SetCookie(middleware.SessionCookie, token, int(h.auth.TokenTTL().Seconds()), "/", "", false, true)
	response.Success(c)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil {
		h.auth.Logout(token)
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	response.Success(c)
}

func (h *AuthHandler) CheckAuth(c *gin.Context) {
	token, _ := c.Cookie(middleware.SessionCookie)
	c.JSON(http.StatusOK, gin.H{"authenticated": h.auth.Authenticated(token)})
}
