package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	appErr "github.com/atendemei/painel/internal/pkg/errors"
	"github.com/atendemei/painel/internal/pkg/response"
)

func handleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	requestID, _ := c.Get("request_id")
	logutil.GetLogger(c.Request.Context()).Warn("request failed",
		zap.Any("request_id", requestID),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	switch err {
	case appErr.ErrUnauthorized:
		response.Error(c, http.StatusUnauthorized, "Unauthorized")
	case appErr.ErrNotFound:
		response.Error(c, http.StatusNotFound, "Not found")
	case appErr.ErrInvalid:
		response.Error(c, http.StatusBadRequest, "Invalid request")
	case appErr.ErrCodeInvalid:
		response.Error(c, http.StatusBadRequest, "Invalid code.")
	case appErr.ErrCodeExpired:
		response.Error(c, http.StatusBadRequest, "Code expired (older than 15 minutes).")
	default:
		response.Error(c, http.StatusInternalServerError, "Internal error")
	}
}

// paramID parses the numeric :id segment; garbage ids read as unknown posts.
func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
