package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErr "github.com/atendemei/painel/internal/pkg/errors"
	"github.com/atendemei/painel/internal/pkg/response"
	"github.com/atendemei/painel/internal/service"
)

type ResetHandler struct {
	reset *service.ResetService
}

func NewResetHandler(reset *service.ResetService) *ResetHandler {
	return &ResetHandler{reset: reset}
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type verifyCodeRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"newPassword"`
}

func (h *ResetHandler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request")
		return
	}
	if err := h.reset.Request(c.Request.Context(), req.Email); err != nil {
		if appErr.IsNotFound(err) {
			response.Error(c, http.StatusNotFound, "Email not found.")
			return
		}
		handleError(c, err)
		return
	}
	response.SuccessMessage(c, "If the email exists, a code has been sent (check the server log when testing).")
}

func (h *ResetHandler) VerifyCode(c *gin.Context) {
	var req verifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request")
		return
	}
	if err := h.reset.Verify(req.Email, req.Code); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c)
}

func (h *ResetHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request")
		return
	}
	if err := h.reset.Consume(c.Request.Context(), req.Email, req.Code, req.NewPassword); err != nil {
		// an unknown email here means the pending code outlived the account
		if appErr.IsNotFound(err) {
			response.Error(c, http.StatusBadRequest, "Could not reset password. Invalid or expired code.")
			return
		}
		handleError(c, err)
		return
	}
	response.SuccessMessage(c, "Your password has been reset.")
}
