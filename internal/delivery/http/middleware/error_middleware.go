package middleware

import (
	"errors"
	"net/http"

	"go-talent-directory/internal/delivery/http/response"
	"go-talent-directory/pkg/apperror"
	"go-talent-directory/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				// Never expose internal error details to clients. Log the
				// actual error server-side and send a generic message.
				reqID, _ := c.Get("RequestID")
				logger.Log.Error("internal server error",
					"error", err,
					"path", c.FullPath(),
					"request_id", reqID,
				)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
