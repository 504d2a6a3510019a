package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/BDF-Tech/BDF-Mobile/internal/apperrors"
	portssvc "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/services"
	"github.com/BDF-Tech/BDF-Mobile/internal/dto"
	"github.com/BDF-Tech/BDF-Mobile/internal/middleware"
	"github.com/gin-gonic/gin"
)

// scaleHandler handles readings pushed by weighing-scale hardware.
type scaleHandler struct {
	scaleService portssvc.ScaleSvc
}

func newScaleHandler(ss portssvc.ScaleSvc) *scaleHandler {
	return &scaleHandler{scaleService: ss}
}

// registerScaleRoutes registers the device ingestion route. Devices cannot
// carry bearer tokens; the device registry is the authentication.
func registerScaleRoutes(rg *gin.Engine, ss portssvc.ScaleSvc) {
	h := newScaleHandler(ss)
	rg.POST("/api/v1/scale/ingest", h.ingest)
}

// ingest godoc
// @Summary Ingest a scale reading
// @Description Accepts one pipe-delimited reading, either as JSON {"payload": "..."} or as a raw text body.
// @Tags scale
// @Accept json
// @Accept plain
// @Produce json
// @Param reading body dto.ScaleIngestRequest true "Reading payload"
// @Success 200 {string} string "OK"
// @Failure 400 {object} dto.StatusResponse
// @Failure 401 {object} dto.StatusResponse
// @Failure 403 {object} dto.StatusResponse
// @Failure 500 {object} dto.StatusResponse
// @Router /scale/ingest [post]
func (h *scaleHandler) ingest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	payload, ok := readScalePayload(c)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.StatusResponse{Status: "error", Message: "Empty payload"})
		return
	}

	err := h.scaleService.Ingest(c.Request.Context(), payload)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrMalformed):
			c.JSON(http.StatusBadRequest, dto.StatusResponse{Status: "error", Message: "Malformed payload"})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Reading from unregistered device rejected")
			c.JSON(http.StatusUnauthorized, dto.StatusResponse{Status: "unauthorized", Message: "Unknown device"})
		case errors.Is(err, apperrors.ErrInactive):
			logger.Warn("Reading from inactive device rejected")
			c.JSON(http.StatusForbidden, dto.StatusResponse{Status: "inactive", Message: "Device is deactivated"})
		default:
			logger.Error("Failed to ingest scale reading", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.StatusResponse{Status: "error", Message: "Something went wrong"})
		}
		return
	}

	// Firmware in the field string-matches the body; it must stay exactly "OK".
	c.String(http.StatusOK, "OK")
}

// readScalePayload accepts both request shapes scale firmware sends: a JSON
// body with a payload field, or the bare reading as text.
func readScalePayload(c *gin.Context) (string, bool) {
	if strings.HasPrefix(c.ContentType(), "application/json") {
		var req dto.ScaleIngestRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return "", false
		}
		return req.Payload, true
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return "", false
	}
	payload := strings.TrimSpace(string(body))
	return payload, payload != ""
}
