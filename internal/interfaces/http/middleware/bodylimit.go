package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dropship/backend/internal/interfaces/http/dto"
)

// BodyLimit restricts the maximum size of request bodies. Requests whose
// Content-Length already exceeds the limit are rejected up front; otherwise
// the body reader is wrapped so oversized streamed bodies fail on read.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes <= 0 {
			c.Next()
			return
		}

		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge,
				dto.NewErrorResponse(dto.ErrCodeInvalidInput, "Request body too large"))
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
