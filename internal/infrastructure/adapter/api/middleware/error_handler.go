package middleware

import (
	"fmt"
	"net/http"

	domainerr "github.com/amirhossein-jamali/cfgstore-diag/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cfgstore-diag/internal/domain/port/core"
	"github.com/amirhossein-jamali/cfgstore-diag/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ErrorHandler middleware recovers from panics and returns an internal error response
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.LogMsg(coreport.SeverityError, fmt.Sprintf("Panic recovered in API request (%s: %v).", c.Request.Method, err), c.Request.URL.Path)

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:    int(domainerr.CodeInternal),
					Message: domainerr.CodeInternal.String(),
				})
			}
		}()

		c.Next()
	}
}
