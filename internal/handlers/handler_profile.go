package handlers

import (
	"net/http"

	portssvc "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/services"
	"github.com/BDF-Tech/BDF-Mobile/internal/dto"
	"github.com/BDF-Tech/BDF-Mobile/internal/middleware"
	"github.com/gin-gonic/gin"
)

// profileHandler handles profile and dashboard requests.
type profileHandler struct {
	profileService portssvc.ProfileSvc
}

func newProfileHandler(ps portssvc.ProfileSvc) *profileHandler {
	return &profileHandler{profileService: ps}
}

// registerProfileRoutes registers profile routes on the authenticated group.
func registerProfileRoutes(rg *gin.RouterGroup, ps portssvc.ProfileSvc) {
	h := newProfileHandler(ps)
	rg.GET("/profile", h.getProfile)
	rg.GET("/dashboard", h.getDashboard)
}

// getProfile godoc
// @Summary Portal user profile
// @Description Returns the portal user's profile. Customer contract and license details are included when a customer is linked.
// @Tags profile
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} dto.StatusResponse
// @Failure 500 {object} dto.StatusResponse
// @Security BearerAuth
// @Router /profile [get]
func (h *profileHandler) getProfile(c *gin.Context) {
	portalUser, ok := middleware.GetPortalUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.StatusResponse{Status: "unauthorized", Message: "Authentication required"})
		return
	}

	user, customer, err := h.profileService.GetProfile(c.Request.Context(), portalUser)
	if err != nil {
		respondServiceError(c, err, "Profile not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(user, customer))
}

// getDashboard godoc
// @Summary Customer dashboard
// @Description Returns year-to-date billing, total unpaid and open order count for the linked customer.
// @Tags profile
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} dto.StatusResponse
// @Failure 404 {object} dto.StatusResponse
// @Failure 500 {object} dto.StatusResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *profileHandler) getDashboard(c *gin.Context) {
	portalUser, ok := middleware.GetPortalUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.StatusResponse{Status: "unauthorized", Message: "Authentication required"})
		return
	}

	userName, customerID, stats, err := h.profileService.GetDashboard(c.Request.Context(), portalUser)
	if err != nil {
		respondServiceError(c, err, "No customer is linked to this account")
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(userName, customerID, stats))
}
