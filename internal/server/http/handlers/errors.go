package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/logidash/internal/domain/errors"
	"github.com/polkiloo/logidash/internal/server/http/dto"
)

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, domainErrors.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domainErrors.ErrUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, domainErrors.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError aborts the request with a JSON error body. Validation details are
// exposed to the caller; everything else stays in the request log.
func writeError(c *gin.Context, err error, message string) {
	_ = c.Error(err)
	status := statusFor(err)
	body := dto.ErrorResponse{Error: message}
	if status == http.StatusBadRequest {
		body.Details = err.Error()
	}
	c.AbortWithStatusJSON(status, body)
}

func badRequest(c *gin.Context, err error, message string) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: message, Details: err.Error()})
}

// bindPatch decodes a partial update. An empty body is an empty patch.
func bindPatch(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
