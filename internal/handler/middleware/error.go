package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"floorplan-service/internal/handler/httperr"
	"floorplan-service/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last public error left on the context when the
// handler did not write a body itself. Private errors become a plain 500.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		if last := c.Errors.ByType(gin.ErrorTypePublic).Last(); last != nil {
			if resp, ok := last.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}

		logger.Error("unhandled request error",
			"request_id", GetRequestID(c),
			"route", c.FullPath(),
			"errors", c.Errors.String(),
			"stack", errs.ExtractStackLines(c.Errors.Last().Err, 12),
		)
		resp := httperr.NewResponse(http.StatusInternalServerError, "", "Internal server error", nil)
		c.JSON(resp.Status, resp)
	}
}

func CustomRecovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("recovered from panic",
					"panic", rec,
					"request_id", GetRequestID(c),
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"stack", string(debug.Stack()),
				)

				resp := httperr.NewResponse(http.StatusInternalServerError, "", "Internal server error", nil)
				c.AbortWithStatusJSON(resp.Status, resp)
			}
		}()
		c.Next()
	}
}
