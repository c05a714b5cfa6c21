package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qtcyy/practice-system/internal/apperr"
	"github.com/qtcyy/practice-system/internal/dto"
	"github.com/rs/zerolog/log"
)

// ErrorHandler turns errors attached via c.Error into the uniform
// {code, message} body. Business errors keep their code and message;
// anything else is a 500 with the detail kept server-side.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		if be, ok := apperr.As(err); ok {
			c.JSON(be.Code, dto.ErrorResponse{Code: be.Code, Message: be.Message})
			return
		}

		log.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error")
		resp := dto.ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "An unexpected error occurred",
		}
		if gin.Mode() == gin.DebugMode {
			resp.Details = err.Error()
		}
		c.JSON(http.StatusInternalServerError, resp)
	}
}
