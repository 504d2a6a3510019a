package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/services"
	"github.com/BDF-Tech/BDF-Mobile/internal/dto"
	"github.com/BDF-Tech/BDF-Mobile/internal/middleware"
	"github.com/gin-gonic/gin"
)

// orderHandler handles sales order requests.
type orderHandler struct {
	orderService portssvc.OrderSvc
	resolver     portssvc.CustomerResolverSvc
}

func newOrderHandler(os portssvc.OrderSvc, resolver portssvc.CustomerResolverSvc) *orderHandler {
	return &orderHandler{orderService: os, resolver: resolver}
}

// registerOrderRoutes registers order routes on the authenticated group.
func registerOrderRoutes(rg *gin.RouterGroup, os portssvc.OrderSvc, resolver portssvc.CustomerResolverSvc) {
	h := newOrderHandler(os, resolver)

	orders := rg.Group("/orders")
	{
		orders.POST("", h.placeOrder)
		orders.GET("", h.listOrders)
		orders.GET("/:name", h.getOrder)
	}
}

// placeOrder godoc
// @Summary Place a sales order
// @Description Creates a draft sales order for the calling customer. A non-cancelled order for the same delivery date and shift blocks placement.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body dto.PlaceOrderRequest true "Order lines"
// @Success 201 {object} dto.PlaceOrderResponse
// @Failure 400 {object} dto.StatusResponse
// @Failure 401 {object} dto.StatusResponse
// @Failure 409 {object} dto.StatusResponse
// @Failure 500 {object} dto.StatusResponse
// @Security BearerAuth
// @Router /orders [post]
func (h *orderHandler) placeOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.StatusResponse{Status: "error", Message: "Invalid request body: " + err.Error()})
		return
	}

	customerID, ok := resolveCustomerID(c, h.resolver)
	if !ok {
		return
	}

	orderName, err := h.orderService.PlaceOrder(c.Request.Context(), customerID, req)
	if err != nil {
		respondServiceError(c, err, "Order not found")
		return
	}

	logger.Info("Order placed", slog.String("customer_id", customerID), slog.String("order_name", orderName))
	c.JSON(http.StatusCreated, dto.PlaceOrderResponse{Status: "success", OrderName: orderName})
}

// listOrders godoc
// @Summary List sales orders
// @Description Lists the calling customer's orders in the requested date window, newest first.
// @Tags orders
// @Produce json
// @Param filterType query string false "Custom, This Week, This Month or This Year"
// @Param startDate query string false "Window start (YYYY-MM-DD, Custom only)"
// @Param endDate query string false "Window end (YYYY-MM-DD, Custom only)"
// @Success 200 {array} dto.OrderSummaryResponse
// @Failure 400 {object} dto.StatusResponse
// @Failure 401 {object} dto.StatusResponse
// @Failure 500 {object} dto.StatusResponse
// @Security BearerAuth
// @Router /orders [get]
func (h *orderHandler) listOrders(c *gin.Context) {
	customerID, ok := resolveCustomerID(c, h.resolver)
	if !ok {
		return
	}

	orders, err := h.orderService.ListOrders(
		c.Request.Context(),
		customerID,
		c.Query("filterType"),
		c.Query("startDate"),
		c.Query("endDate"),
	)
	if err != nil {
		respondServiceError(c, err, "Orders not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderSummaryResponses(orders))
}

// getOrder godoc
// @Summary Get a sales order
// @Description Returns the full order with lines. Orders of other customers are not accessible.
// @Tags orders
// @Produce json
// @Param name path string true "Order name"
// @Success 200 {object} dto.OrderDetailsResponse
// @Failure 401 {object} dto.StatusResponse
// @Failure 403 {object} dto.StatusResponse
// @Failure 404 {object} dto.StatusResponse
// @Failure 500 {object} dto.StatusResponse
// @Security BearerAuth
// @Router /orders/{name} [get]
func (h *orderHandler) getOrder(c *gin.Context) {
	customerID, ok := resolveCustomerID(c, h.resolver)
	if !ok {
		return
	}

	order, err := h.orderService.GetOrderDetails(c.Request.Context(), customerID, c.Param("name"))
	if err != nil {
		respondServiceError(c, err, "Order not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderDetailsResponse(order))
}
