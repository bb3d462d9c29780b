package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-users-api/internal/transport/http/contract"
	"go-users-api/internal/validation"
)

// ErrorMapping translates errors recorded on the context into wire
// responses: an aggregated validation error becomes a 400 carrying every
// failure, anything else a 500. Handlers record errors with c.Error and
// return without writing.
func ErrorMapping(l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var verr *validation.Error
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, contract.ToValidationFailureResponse(verr))
			return
		}

		l.Error("request failed", zap.String("rid", c.GetString("rid")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
