package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErr "github.com/atendemei/painel/internal/pkg/errors"
	"github.com/atendemei/painel/internal/pkg/response"
	"github.com/atendemei/painel/internal/service"
)

type ContactHandler struct {
	contact *service.ContactService
}

func NewContactHandler(contact *service.ContactService) *ContactHandler {
	return &ContactHandler{contact: contact}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var input service.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "Please fill in all fields correctly.")
		return
	}
	if err := h.contact.Submit(input); err != nil {
		if err == appErr.ErrInvalid {
			response.Error(c, http.StatusBadRequest, "Please fill in all fields correctly.")
			return
		}
		handleError(c, err)
		return
	}
	response.SuccessMessage(c, "Your message has been sent, we will get in touch soon.")
}
