package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inkvoice/inkvoice/internal/export"
	invoicedomain "github.com/inkvoice/inkvoice/internal/invoice/domain"
	"github.com/inkvoice/inkvoice/internal/invoice/render/raster"
	"github.com/inkvoice/inkvoice/internal/profile"
)

type errorPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrInvalidRequest = errors.New("invalid_request")
	ErrInternal       = errors.New("internal_error")
)

// ErrorHandlingMiddleware converts errors attached to the gin context
// into a uniform JSON error body. Handlers report failures through
// AbortWithError and never write error bodies themselves.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorPayload) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	case isBadRequest(err):
		return http.StatusBadRequest, errorPayload{
			Type:    "invalid_request",
			Message: err.Error(),
		}
	case isNotFound(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	case errors.Is(err, export.ErrExportInFlight):
		return http.StatusConflict, errorPayload{
			Type:    "export_in_flight",
			Message: "an export is already generating",
		}
	case errors.Is(err, raster.ErrRasterizerUnavailable):
		return http.StatusServiceUnavailable, errorPayload{
			Type:    "rasterizer_unavailable",
			Message: "no capture backend is configured",
		}
	case errors.Is(err, raster.ErrEmptyCapture):
		return http.StatusBadGateway, errorPayload{
			Type:    "capture_failed",
			Message: "capture produced an empty bitmap",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func isBadRequest(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, invoicedomain.ErrInvalidInvoiceID),
		errors.Is(err, export.ErrUnsupportedFormat):
		return true
	default:
		return false
	}
}

func isNotFound(err error) bool {
	switch {
	case errors.Is(err, invoicedomain.ErrInvoiceNotFound),
		errors.Is(err, profile.ErrClientNotFound),
		errors.Is(err, profile.ErrSavedItemNotFound):
		return true
	default:
		return false
	}
}
