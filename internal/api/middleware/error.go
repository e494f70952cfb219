package middleware

import (
	"context"
	"errors"
	"iex-companies/internal/api/constant"
	"iex-companies/internal/api/dto"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Error turns the first error a handler attached with c.Error into a JSON
// response. Unknown errors, such as a failed database read, become a 500.
func Error(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if errors.Is(c.Request.Context().Err(), context.DeadlineExceeded) {
			// the handler beat the deadline to the writer
			if c.Writer.Written() {
				return
			}
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, dto.Res{
				Success: false,
				Error:   "request timed out",
			})
			return
		}

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors[0]

		// - Validation error from request binding
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			validationErrors := make([]dto.ErrorType, 0, len(ve))
			for _, fe := range ve {
				validationErrors = append(validationErrors, dto.ErrorType{
					Field:   fe.Field(),
					Message: fe.Error(),
				})
			}
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.Res{
				Success: false,
				Error:   validationErrors,
			})
			return
		}

		var ce constant.CustomError
		if errors.As(err, &ce) {
			c.AbortWithStatusJSON(ce.StatusCode, dto.Res{
				Success: false,
				Error:   ce.Error(),
			})
			return
		}

		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err.Err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Res{
			Success: false,
			Error:   err.Error(),
		})
	}
}
