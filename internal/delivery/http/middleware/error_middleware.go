package middleware

import (
	"errors"
	"net/http"

	"go-transfer-backend/internal/delivery/http/response"
	"go-transfer-backend/pkg/apperror"
	"go-transfer-backend/pkg/logger"

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
				if appErr.Err != nil {
					logger.Log.Error("request failed", "status", appErr.Code, "error", appErr.Err, "path", c.Request.URL.Path)
				}
				response.Error(c, appErr.Code, appErr.Message)
			} else {
				// Unknown error types get a generic message; the real error
				// stays server-side.
				logger.Log.Error("unhandled error", "error", err, "path", c.Request.URL.Path)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.")
			}
		}
	}
}
