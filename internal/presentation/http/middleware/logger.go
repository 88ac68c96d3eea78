package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LoggerMiddleware logs one line per request, tagged with a request id that
// is also echoed back in the X-Request-ID header.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		// The restaurant id is only set after AuthMiddleware has run.
		line := "[%s] %s | %d | %v | %s | %s"
		args := []interface{}{
			requestID[:8],
			c.Request.Method,
			statusCode,
			latency,
			c.ClientIP(),
			path,
		}
		if restaurantID := GetTenantID(c); restaurantID != uuid.Nil {
			line += " | restaurant=%s"
			args = append(args, restaurantID.String()[:8])
		}
		log.Printf(line, args...)

		if len(c.Errors) > 0 {
			for _, e := range c.Errors {
				log.Printf("[%s] Error: %v", requestID[:8], e.Err)
			}
		}
	}
}
