package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jredd/mouse-tracks-backend/internal/service"
)

// ListItineraryItems обработчик для GET /api/trips/:trip_id/itinerary-items.
func (h *Handler) ListItineraryItems(c *gin.Context) {
	user, ok := h.caller(c)
	if !ok {
		return
	}
	tripID, ok := h.pathID(c, "trip_id")
	if !ok {
		return
	}
	items, err := h.ItineraryService.List(user, tripID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetItineraryItem обработчик для GET /api/trips/:trip_id/itinerary-items/:pk.
func (h *Handler) GetItineraryItem(c *gin.Context) {
	user, ok := h.caller(c)
	if !ok {
		return
	}
	tripID, ok := h.pathID(c, "trip_id")
	if !ok {
		return
	}
	itemID, ok := h.pathID(c, "pk")
	if !ok {
		return
	}
	item, err := h.ItineraryService.Get(user, tripID, itemID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateItineraryItem обработчик для POST /api/trips/:trip_id/itinerary-items.
func (h *Handler) CreateItineraryItem(c *gin.Context) {
	user, ok := h.caller(c)
	if !ok {
		return
	}
	tripID, ok := h.pathID(c, "trip_id")
	if !ok {
		return
	}
	var req service.ItemInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректное тело запроса"})
		return
	}
	item, err := h.ItineraryService.Create(user, tripID, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateItineraryItem обработчик для PATCH /api/trips/:trip_id/itinerary-items/:pk.
func (h *Handler) UpdateItineraryItem(c *gin.Context) {
	user, ok := h.caller(c)
	if !ok {
		return
	}
	tripID, ok := h.pathID(c, "trip_id")
	if !ok {
		return
	}
	itemID, ok := h.pathID(c, "pk")
	if !ok {
		return
	}
	var req service.ItemInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректное тело запроса"})
		return
	}
	item, err := h.ItineraryService.Update(user, tripID, itemID, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteItineraryItem обработчик для DELETE /api/trips/:trip_id/itinerary-items/:pk.
func (h *Handler) DeleteItineraryItem(c *gin.Context) {
	user, ok := h.caller(c)
	if !ok {
		return
	}
	tripID, ok := h.pathID(c, "trip_id")
	if !ok {
		return
	}
	itemID, ok := h.pathID(c, "pk")
	if !ok {
		return
	}
	if err := h.ItineraryService.Delete(user, tripID, itemID); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// BulkCreateItineraryItems обработчик для POST .../itinerary-items/bulk-create.
// Партия сохраняется целиком либо не сохраняется вовсе.
func (h *Handler) BulkCreateItineraryItems(c *gin.Context) {
	user, ok := h.caller(c)
	if !ok {
		return
	}
	tripID, ok := h.pathID(c, "trip_id")
	if !ok {
		return
	}
	var req []service.ItemInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректное тело запроса"})
		return
	}
	items, err := h.ItineraryService.BulkCreate(user, tripID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, items)
}

// BulkUpdateItineraryItems обработчик для POST .../itinerary-items/bulk-update.
func (h *Handler) BulkUpdateItineraryItems(c *gin.Context) {
	user, ok := h.caller(c)
	if !ok {
		return
	}
	tripID, ok := h.pathID(c, "trip_id")
	if !ok {
		return
	}
	var req []service.ItemInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректное тело запроса"})
		return
	}
	items, err := h.ItineraryService.BulkUpdate(user, tripID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// BulkDeleteItineraryItems обработчик для POST .../itinerary-items/bulk-delete.
// Весь список идентификаторов обязан принадлежать поездке.
func (h *Handler) BulkDeleteItineraryItems(c *gin.Context) {
	user, ok := h.caller(c)
	if !ok {
		return
	}
	tripID, ok := h.pathID(c, "trip_id")
	if !ok {
		return
	}
	var req struct {
		IDs []uuid.UUID `json:"ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректное тело запроса"})
		return
	}
	if err := h.ItineraryService.BulkDelete(user, tripID, req.IDs); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
