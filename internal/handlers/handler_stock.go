package handlers

import (
	"net/http"

	"github.com/BDF-Tech/BDF-Mobile/internal/core/domain"
	portssvc "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/services"
	"github.com/BDF-Tech/BDF-Mobile/internal/dto"
	"github.com/gin-gonic/gin"
)

// stockHandler handles the internal stock dashboard.
type stockHandler struct {
	stockService portssvc.StockSvc
}

func newStockHandler(ss portssvc.StockSvc) *stockHandler {
	return &stockHandler{stockService: ss}
}

// registerStockRoutes registers stock routes on the authenticated group.
func registerStockRoutes(rg *gin.RouterGroup, ss portssvc.StockSvc) {
	h := newStockHandler(ss)
	rg.GET("/stock", h.listStock)
}

// listStock godoc
// @Summary Stock dashboard
// @Description Returns per item and warehouse quantities with reorder levels, filterable by health status.
// @Tags stock
// @Produce json
// @Param warehouse query string false "Restrict to one warehouse"
// @Param itemCode query string false "Restrict to one item"
// @Param itemGroup query string false "Restrict to one item group"
// @Param status query string false "All, Critical or Healthy"
// @Param sort query string false "asc (default) or desc by quantity"
// @Success 200 {array} dto.StockRowResponse
// @Failure 401 {object} dto.StatusResponse
// @Failure 500 {object} dto.StatusResponse
// @Security BearerAuth
// @Router /stock [get]
func (h *stockHandler) listStock(c *gin.Context) {
	filter := domain.StockFilter{
		Warehouse: c.Query("warehouse"),
		ItemCode:  c.Query("itemCode"),
		ItemGroup: c.Query("itemGroup"),
		Status:    domain.StockStatus(c.DefaultQuery("status", string(domain.StockStatusAll))),
		SortDesc:  c.Query("sort") == "desc",
	}

	rows, err := h.stockService.ListStock(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err, "Stock not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToStockRowResponses(rows))
}
