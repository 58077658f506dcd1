package middleware

import (
	"checkout-gateway/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const requestIDLength = 16

// RequestInit tags every request with an id and logs the inbound line.
// Client-supplied ids are kept so the frontend can correlate retries.
func RequestInit() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			id, err := gonanoid.New(requestIDLength)
			if err == nil {
				requestID = id
			}
		}

		c.Set("requestID", requestID)
		c.Header("X-Request-ID", requestID)

		logger.HTTP.Printf("[%s] %s %s", requestID, c.Request.Method, c.Request.URL.Path)
		c.Next()
	}
}
