package middleware

import (
	"errors"
	"net/http"

	"knk-builders-backend/internal/delivery/http/response"
	"knk-builders-backend/pkg/apperror"
	"knk-builders-backend/pkg/logger"

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
				// Detail is logged server-side only; the client sees
				// the curated message.
				if appErr.Err != nil {
					logger.Log.Error("request failed", "status", appErr.Code, "message", appErr.Message, "error", appErr.Err)
				}
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				logger.Log.Error("unhandled request error", "error", err)
				response.Error(c, http.StatusInternalServerError, "An error occurred. Please try again later.", nil)
			}
		}
	}
}
