package http

import (
	"time"

	metrics "github.com/aescanero/webstart/pkg/adapters/metrics/prometheus"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// requestIDMiddleware tags every request with an X-Request-ID, keeping
// the caller's id when one is supplied
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)

		c.Next()
	}
}

// metricsMiddleware records request counts, durations and in-flight gauge
func metricsMiddleware(collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		collector.IncRequestsInFlight()
		defer collector.DecRequestsInFlight()

		c.Next()

		// Route template keeps the path label cardinality bounded
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		collector.ObserveRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}

// CORS middleware (placeholder for MVP)
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
