package response

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"postbase-backend/pkg/apperror"
	"postbase-backend/pkg/config"
)

// ErrorHandler funnels every error attached to the context into the uniform
// error envelope. Operational errors surface their message verbatim;
// everything else is logged with request context and masked.
func ErrorHandler(cfg *config.Config, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		if c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := apperror.Status(err)

		var appErr *apperror.Error
		operational := errors.As(err, &appErr) && appErr.Operational

		message := err.Error()
		var details any
		if operational {
			if appErr != nil && len(appErr.Details) > 0 {
				details = appErr.Details
			}
		} else {
			logger.WithFields(logrus.Fields{
				"url":        c.Request.URL.String(),
				"method":     c.Request.Method,
				"ip":         c.ClientIP(),
				"user_agent": c.Request.UserAgent(),
			}).WithError(err).Error("request failed")

			message = "Internal server error"
			if !cfg.IsProduction() {
				details = fmt.Sprintf("%v", err)
			}
		}

		c.JSON(status, ErrorBody{
			Success: false,
			Error: ErrorDetail{
				Message:    message,
				StatusCode: status,
				Timestamp:  time.Now().UTC().Format(time.RFC3339),
				Details:    details,
			},
		})
	}
}

// NotFoundHandler handles unmatched routes.
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		_ = c.Error(apperror.NotFound(fmt.Sprintf("Route %s not found", c.Request.URL.Path)))
	}
}
