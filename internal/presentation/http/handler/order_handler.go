package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dguedes/marmitaria-api/internal/application/service"
	"github.com/dguedes/marmitaria-api/internal/domain/enum"
	"github.com/dguedes/marmitaria-api/internal/domain/repository"
	"github.com/dguedes/marmitaria-api/internal/presentation/http/dto/request"
	"github.com/dguedes/marmitaria-api/internal/presentation/http/dto/response"
	"github.com/dguedes/marmitaria-api/pkg/pagination"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService   *service.OrderService
	printerService *service.PrinterService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, printerService *service.PrinterService) *OrderHandler {
	return &OrderHandler{
		orderService:   orderService,
		printerService: printerService,
	}
}

// CreateOrder handles order creation
// @Summary Create Order
// @Description Validate and persist a new order, assigning its sequential number
// @Tags orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateOrderRequest true "Order data"
// @Success 201 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items := make([]service.OrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, service.OrderItemInput{
			EmployeeName:   it.EmployeeName,
			Size:           it.Size,
			Protein:        it.Protein,
			Proteins:       it.Proteins,
			Accompaniments: it.Accompaniments,
		})
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), &service.CreateOrderInput{
		CustomerName:   req.CustomerName,
		IsCompanyOrder: req.IsCompanyOrder,
		OrderType:      req.OrderType,
		DeliveryAddr:   req.DeliveryAddress,
		Items:          items,
		Salads:         req.Salads,
		Beverages:      req.Beverages,
		Coffees:        req.Coffees,
		Snacks:         req.Snacks,
		Desserts:       req.Desserts,
		Others:         req.Others,
		Observations:   req.Observations,
		TotalPrice:     req.TotalPrice,
		PaymentMethod:  req.PaymentMethod,
		AmountPaid:     req.AmountPaid,
		AttendantCode:  GetUserCode(c),
		AttendantName:  GetUserName(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// ListOrders handles listing orders
// @Summary List Orders
// @Description List orders newest first, optionally filtered by status or customer name
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param status query string false "Order status filter"
// @Param search query string false "Customer name search"
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} response.APIResponse
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	var req request.OrderFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.OrderFilterParams{
		Pagination: &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
		Search:     req.Search,
	}
	if req.Status != "" {
		status := enum.OrderStatus(req.Status)
		if !status.Valid() {
			response.BadRequest(c, "Unknown order status")
			return
		}
		params.Status = &status
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// GetOrder handles fetching a single order
// @Summary Get Order
// @Description Get an order by ID with its items
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// UpdateOrderStatus handles order status transitions
// @Summary Update Order Status
// @Description Move an order through its workflow (pending, preparing, ready, delivered)
// @Tags orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body request.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /orders/{id}/status [patch]
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.orderService.UpdateOrderStatus(c.Request.Context(), id, enum.OrderStatus(req.Status)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order status updated successfully", nil)
}

// GetReceipts handles fetching receipt texts without printing
// @Summary Get Order Receipts
// @Description Render the receipt texts for an order
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /orders/{id}/receipt [get]
func (h *OrderHandler) GetReceipts(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	receipts, err := h.orderService.GetReceipts(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipts rendered successfully", receipts)
}

// PrintOrder handles printing an order's receipts
// @Summary Print Order
// @Description Render and send the order's receipts to the configured printer
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /orders/{id}/print [post]
func (h *OrderHandler) PrintOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	result, err := h.printerService.PrintOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result.Message, result)
}
