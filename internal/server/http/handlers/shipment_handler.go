package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/logidash/internal/domain/model"
	"github.com/polkiloo/logidash/internal/server/http/dto"
)

// ShipmentHandler manages shipment endpoints.
type ShipmentHandler struct {
	facade ShipmentFacade
}

// NewShipmentHandler constructs ShipmentHandler.
func NewShipmentHandler(facade ShipmentFacade) *ShipmentHandler {
	return &ShipmentHandler{facade: facade}
}

// List handles GET /api/shipments.
func (h *ShipmentHandler) List(c *gin.Context) {
	shipments, err := h.facade.Shipments(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to fetch shipments")
		return
	}

	response := make([]dto.ShipmentResponse, 0, len(shipments))
	for _, s := range shipments {
		response = append(response, toShipmentResponse(s))
	}
	c.JSON(http.StatusOK, response)
}

// Create handles POST /api/shipments.
func (h *ShipmentHandler) Create(c *gin.Context) {
	var req dto.ShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Failed to create shipment")
		return
	}

	shipment := model.Shipment{
		ID:       deref(req.ID),
		Status:   deref(req.Status),
		ETA:      req.ETA.Value,
		Courier:  req.Courier.Value,
		Progress: deref(req.Progress),
		Color:    deref(req.Color),
	}
	created, err := h.facade.CreateShipment(c.Request.Context(), shipment)
	if err != nil {
		writeError(c, err, "Failed to create shipment")
		return
	}
	c.JSON(http.StatusCreated, toShipmentResponse(*created))
}

// Update handles PUT /api/shipments/:id.
func (h *ShipmentHandler) Update(c *gin.Context) {
	var req dto.ShipmentRequest
	if err := bindPatch(c, &req); err != nil {
		badRequest(c, err, "Failed to update shipment")
		return
	}

	patch := model.ShipmentPatch{
		Status:   req.Status,
		ETA:      nullable(req.ETA),
		Courier:  nullable(req.Courier),
		Progress: req.Progress,
		Color:    req.Color,
	}
	updated, err := h.facade.UpdateShipment(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeError(c, err, "Failed to update shipment")
		return
	}
	c.JSON(http.StatusOK, toShipmentResponse(*updated))
}

// Delete handles DELETE /api/shipments/:id.
func (h *ShipmentHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteShipment(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err, "Failed to delete shipment")
		return
	}
	c.Status(http.StatusNoContent)
}

func toShipmentResponse(s model.Shipment) dto.ShipmentResponse {
	return dto.ShipmentResponse{
		ID:       s.ID,
		Status:   s.Status,
		ETA:      s.ETA,
		Courier:  s.Courier,
		Progress: s.Progress,
		Color:    s.Color,
	}
}

func nullable[T any](n dto.Nullable[T]) model.Nullable[T] {
	return model.Nullable[T]{Set: n.Set, Value: n.Value}
}
