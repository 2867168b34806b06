package middleware

import (
	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorReporter logs errors attached by httperr.Respond and forwards them to
// Sentry when a client is configured.
func ErrorReporter(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, ginErr := range c.Errors {
			log.Error("request error",
				zap.String("request_id", c.GetString(ContextRequestID)),
				zap.String("path", c.FullPath()),
				zap.Error(ginErr.Err),
			)

			if hub := sentry.CurrentHub(); hub != nil && hub.Client() != nil {
				hub.WithScope(func(scope *sentry.Scope) {
					scope.SetExtra("request_id", c.GetString(ContextRequestID))
					scope.SetExtra("route", c.FullPath())
					hub.CaptureException(ginErr.Err)
				})
			}
		}
	}
}
