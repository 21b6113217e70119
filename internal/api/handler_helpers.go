package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/Ashish-Code-01/internshp-project/internal"
	"github.com/Ashish-Code-01/internshp-project/internal/response"
	"github.com/gin-gonic/gin"
)

// HandleError logs err with the request id and writes a one-field error
// body. An *internal.AppError in the chain decides status and message;
// otherwise status and msg are used.
func HandleError(c *gin.Context, logger internal.Logger, err error, status int, msg string) {
	requestID := c.GetString(requestIDKey)

	var appErr *internal.AppError
	switch {
	case errors.As(err, &appErr):
		status, msg = appErr.Code, appErr.Message
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		status, msg = http.StatusRequestTimeout, "Request cancelled"
	}

	if status >= http.StatusInternalServerError {
		logger.Errorf("[request_id=%s] %s: %v", requestID, msg, err)
	} else {
		logger.Warnf("[request_id=%s] %s: %v", requestID, msg, err)
	}
	c.AbortWithStatusJSON(status, response.Error(msg))
}

func HandleSuccess(c *gin.Context, logger internal.Logger, data interface{}) {
	requestID := c.GetString(requestIDKey)
	logger.Debugf("[request_id=%s] Success", requestID)
	c.JSON(http.StatusOK, data)
}
