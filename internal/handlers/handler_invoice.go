package handlers

import (
	"net/http"

	portssvc "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/services"
	"github.com/BDF-Tech/BDF-Mobile/internal/dto"
	"github.com/gin-gonic/gin"
)

// invoiceHandler handles sales invoice requests.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvc
	resolver       portssvc.CustomerResolverSvc
}

func newInvoiceHandler(is portssvc.InvoiceSvc, resolver portssvc.CustomerResolverSvc) *invoiceHandler {
	return &invoiceHandler{invoiceService: is, resolver: resolver}
}

// registerInvoiceRoutes registers invoice routes on the authenticated group.
func registerInvoiceRoutes(rg *gin.RouterGroup, is portssvc.InvoiceSvc, resolver portssvc.CustomerResolverSvc) {
	h := newInvoiceHandler(is, resolver)

	invoices := rg.Group("/invoices")
	{
		invoices.GET("", h.listInvoices)
		invoices.GET("/:name", h.getInvoice)
	}
}

// listInvoices godoc
// @Summary List sales invoices
// @Description Lists the calling customer's submitted invoices in the requested date window, newest first.
// @Tags invoices
// @Produce json
// @Param filterType query string false "Custom, This Week, This Month or This Year"
// @Param startDate query string false "Window start (YYYY-MM-DD, Custom only)"
// @Param endDate query string false "Window end (YYYY-MM-DD, Custom only)"
// @Success 200 {array} dto.InvoiceSummaryResponse
// @Failure 400 {object} dto.StatusResponse
// @Failure 401 {object} dto.StatusResponse
// @Failure 500 {object} dto.StatusResponse
// @Security BearerAuth
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	customerID, ok := resolveCustomerID(c, h.resolver)
	if !ok {
		return
	}

	invoices, err := h.invoiceService.ListInvoices(
		c.Request.Context(),
		customerID,
		c.Query("filterType"),
		c.Query("startDate"),
		c.Query("endDate"),
	)
	if err != nil {
		respondServiceError(c, err, "Invoices not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceSummaryResponses(invoices))
}

// getInvoice godoc
// @Summary Get a sales invoice
// @Description Returns the full invoice with lines. Invoices of other customers are not accessible.
// @Tags invoices
// @Produce json
// @Param name path string true "Invoice name"
// @Success 200 {object} dto.InvoiceDetailsResponse
// @Failure 401 {object} dto.StatusResponse
// @Failure 403 {object} dto.StatusResponse
// @Failure 404 {object} dto.StatusResponse
// @Failure 500 {object} dto.StatusResponse
// @Security BearerAuth
// @Router /invoices/{name} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	customerID, ok := resolveCustomerID(c, h.resolver)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.GetInvoiceDetails(c.Request.Context(), customerID, c.Param("name"))
	if err != nil {
		respondServiceError(c, err, "Invoice not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceDetailsResponse(invoice))
}
