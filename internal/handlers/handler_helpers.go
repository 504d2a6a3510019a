package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/BDF-Tech/BDF-Mobile/internal/apperrors"
	portssvc "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/services"
	"github.com/BDF-Tech/BDF-Mobile/internal/dto"
	"github.com/BDF-Tech/BDF-Mobile/internal/middleware"
	"github.com/gin-gonic/gin"
)

// resolveCustomerID maps the authenticated portal user on the request to the
// customer it acts for. It writes the error response itself and returns false
// when the caller should stop.
func resolveCustomerID(c *gin.Context, resolver portssvc.CustomerResolverSvc) (string, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	portalUser, ok := middleware.GetPortalUserFromContext(c)
	if !ok {
		logger.Error("Portal user not found in context")
		c.JSON(http.StatusUnauthorized, dto.StatusResponse{Status: "unauthorized", Message: "Authentication required"})
		return "", false
	}

	customerID, err := resolver.ResolveCustomer(c.Request.Context(), portalUser)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnauthenticated):
			c.JSON(http.StatusUnauthorized, dto.StatusResponse{Status: "unauthorized", Message: "Authentication required"})
		case errors.Is(err, apperrors.ErrNotLinked):
			logger.Warn("Portal user has no linked customer", slog.String("portal_user", portalUser))
			c.JSON(http.StatusNotFound, dto.StatusResponse{Status: "error", Message: "No customer is linked to this account"})
		default:
			logger.Error("Failed to resolve customer", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.StatusResponse{Status: "error", Message: "Something went wrong"})
		}
		return "", false
	}
	return customerID, true
}

// respondServiceError translates service-layer sentinels into the standard
// envelope. Unexpected errors are logged and masked with a 500.
func respondServiceError(c *gin.Context, err error, notFoundMessage string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.StatusResponse{Status: "error", Message: err.Error()})
	case errors.Is(err, apperrors.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, dto.StatusResponse{Status: "unauthorized", Message: "Authentication required"})
	case errors.Is(err, apperrors.ErrNotLinked):
		c.JSON(http.StatusNotFound, dto.StatusResponse{Status: "error", Message: "No customer is linked to this account"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.StatusResponse{Status: "error", Message: notFoundMessage})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.StatusResponse{Status: "error", Message: "Access to this document is not allowed"})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, dto.StatusResponse{Status: "error", Message: err.Error()})
	default:
		logger.Error("Service call failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.StatusResponse{Status: "error", Message: "Something went wrong"})
	}
}
