package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/logidash/internal/domain/model"
	"github.com/polkiloo/logidash/internal/server/http/dto"
)

// OrderHandler manages order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to fetch orders")
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, response)
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Failed to create order")
		return
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), toOrder(req))
	if err != nil {
		writeError(c, err, "Failed to create order")
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// Update handles PUT /api/orders/:id. The id in the body, if any, is ignored.
func (h *OrderHandler) Update(c *gin.Context) {
	var req dto.OrderRequest
	if err := bindPatch(c, &req); err != nil {
		badRequest(c, err, "Failed to update order")
		return
	}

	order, err := h.facade.UpdateOrder(c.Request.Context(), c.Param("id"), toOrderPatch(req))
	if err != nil {
		writeError(c, err, "Failed to update order")
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Delete handles DELETE /api/orders/:id.
func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err, "Failed to delete order")
		return
	}
	c.Status(http.StatusNoContent)
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:       order.ID,
		Customer: order.Customer,
		Location: order.Location,
		Product:  order.Product,
		Quantity: order.Quantity,
		Total:    order.Total,
		Status:   string(order.Status),
		Date:     order.Date,
	}
}

func toOrder(req dto.OrderRequest) model.Order {
	return model.Order{
		ID:       deref(req.ID),
		Customer: deref(req.Customer),
		Location: deref(req.Location),
		Product:  deref(req.Product),
		Quantity: deref(req.Quantity),
		Total:    deref(req.Total),
		Status:   model.OrderStatus(deref(req.Status)),
		Date:     deref(req.Date),
	}
}

func toOrderPatch(req dto.OrderRequest) model.OrderPatch {
	patch := model.OrderPatch{
		Customer: req.Customer,
		Location: req.Location,
		Product:  req.Product,
		Quantity: req.Quantity,
		Total:    req.Total,
		Date:     req.Date,
	}
	if req.Status != nil {
		status := model.OrderStatus(*req.Status)
		patch.Status = &status
	}
	return patch
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
