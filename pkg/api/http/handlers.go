package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Item represents the record exchanged with the items endpoints
type Item struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail represents error details
type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// handleRoot handles the root greeting
func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"Hello": "World",
	})
}

// handleReadItem echoes the path id and optional query string back
func (s *Server) handleReadItem(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("item_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: ErrorDetail{
				Code:    "INVALID_ITEM_ID",
				Message: "item_id must be an integer",
			},
		})
		return
	}

	// q stays null in the response when the parameter is absent
	var q *string
	if v, ok := c.GetQuery("q"); ok {
		q = &v
	}

	if s.metrics != nil {
		s.metrics.IncItemsRead()
	}

	c.JSON(http.StatusOK, gin.H{
		"item_id": itemID,
		"q":       q,
	})
}

// handleCreateItem binds the request body to an Item and echoes it back.
// Nothing is stored.
func (s *Server) handleCreateItem(c *gin.Context) {
	var item Item
	if err := c.ShouldBindJSON(&item); err != nil {
		s.logger.Error("invalid request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	if s.metrics != nil {
		s.metrics.IncItemsCreated()
	}

	c.JSON(http.StatusOK, item)
}

// handleHealthz handles liveness probe requests
func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// handleReadyz handles readiness probe requests.
// elapsed_ms spans only the response assembly below, so it reports ~0.
func (s *Server) handleReadyz(c *gin.Context) {
	start := time.Now()
	c.JSON(http.StatusOK, gin.H{
		"ready":      true,
		"elapsed_ms": time.Since(start).Milliseconds(),
	})
}
