package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/services"
	"github.com/BDF-Tech/BDF-Mobile/internal/dto"
	"github.com/BDF-Tech/BDF-Mobile/internal/middleware"
	"github.com/gin-gonic/gin"
)

// catalogHandler handles catalog browsing requests.
type catalogHandler struct {
	catalogService portssvc.CatalogSvc
	resolver       portssvc.CustomerResolverSvc
}

func newCatalogHandler(cs portssvc.CatalogSvc, resolver portssvc.CustomerResolverSvc) *catalogHandler {
	return &catalogHandler{catalogService: cs, resolver: resolver}
}

// registerCatalogRoutes registers catalog routes on the authenticated group.
func registerCatalogRoutes(rg *gin.RouterGroup, cs portssvc.CatalogSvc, resolver portssvc.CustomerResolverSvc) {
	h := newCatalogHandler(cs, resolver)
	rg.GET("/catalog/items", h.listCatalog)
}

// listCatalog godoc
// @Summary List the item catalog
// @Description Returns sellable items priced for the calling customer, with available units per item.
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.CatalogResponse
// @Failure 401 {object} dto.StatusResponse
// @Failure 404 {object} dto.StatusResponse
// @Failure 500 {object} dto.StatusResponse
// @Security BearerAuth
// @Router /catalog/items [get]
func (h *catalogHandler) listCatalog(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	customerID, ok := resolveCustomerID(c, h.resolver)
	if !ok {
		return
	}

	items, priceList, err := h.catalogService.ListItems(c.Request.Context(), customerID)
	if err != nil {
		respondServiceError(c, err, "Catalog unavailable")
		return
	}

	logger.Info("Catalog served",
		slog.String("customer_id", customerID),
		slog.String("price_list", priceList),
		slog.Int("item_count", len(items)))
	c.JSON(http.StatusOK, dto.ToCatalogResponse(items, priceList))
}
