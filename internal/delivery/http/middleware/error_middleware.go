package middleware

import (
	"errors"
	"net/http"

	"go-contact-manager/internal/delivery/http/response"
	"go-contact-manager/pkg/apperror"
	"go-contact-manager/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler translates errors attached to the gin context into the
// standard response envelope. AppErrors map to their status code and may
// carry per-field details; anything else becomes a generic 500 so internal
// detail never reaches the client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			} else {
				logger.Log.Error("unhandled error", "error", err, "path", c.FullPath())
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
