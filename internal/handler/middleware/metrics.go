package middleware

import (
	"github.com/gin-gonic/gin"
)

type HTTPObserver interface {
	ObserveHTTPRequest(method, route string, status int)
}

// HTTPMetrics counts requests by matched route template.
func HTTPMetrics(observer HTTPObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		observer.ObserveHTTPRequest(c.Request.Method, routeOf(c), c.Writer.Status())
	}
}
