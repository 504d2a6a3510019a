package handlers

import (
	"net/http"

	portssvc "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/services"
	"github.com/BDF-Tech/BDF-Mobile/internal/dto"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles customer ledger requests.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvc
	resolver      portssvc.CustomerResolverSvc
}

func newLedgerHandler(ls portssvc.LedgerSvc, resolver portssvc.CustomerResolverSvc) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls, resolver: resolver}
}

// registerLedgerRoutes registers ledger routes on the authenticated group.
func registerLedgerRoutes(rg *gin.RouterGroup, ls portssvc.LedgerSvc, resolver portssvc.CustomerResolverSvc) {
	h := newLedgerHandler(ls, resolver)
	rg.GET("/ledger", h.getStatement)
}

// getStatement godoc
// @Summary Customer ledger statement
// @Description Returns the calling customer's ledger for the window with an opening balance and a running balance per row.
// @Tags ledger
// @Produce json
// @Param filterType query string false "Custom, This Week, This Month or This Year"
// @Param startDate query string false "Window start (YYYY-MM-DD, Custom only)"
// @Param endDate query string false "Window end (YYYY-MM-DD, Custom only)"
// @Param voucherType query string false "Restrict rows to one voucher type"
// @Success 200 {object} dto.LedgerStatementResponse
// @Failure 400 {object} dto.StatusResponse
// @Failure 401 {object} dto.StatusResponse
// @Failure 500 {object} dto.StatusResponse
// @Security BearerAuth
// @Router /ledger [get]
func (h *ledgerHandler) getStatement(c *gin.Context) {
	customerID, ok := resolveCustomerID(c, h.resolver)
	if !ok {
		return
	}

	statement, err := h.ledgerService.Statement(
		c.Request.Context(),
		customerID,
		c.Query("filterType"),
		c.Query("startDate"),
		c.Query("endDate"),
		c.Query("voucherType"),
	)
	if err != nil {
		respondServiceError(c, err, "Ledger not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerStatementResponse(statement))
}
