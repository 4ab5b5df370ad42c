package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jredd/mouse-tracks-backend/internal/service"
)

// ListTrips обработчик для GET /api/trips - поездки вызывающего (staff видит все).
func (h *Handler) ListTrips(c *gin.Context) {
	user, ok := h.caller(c)
	if !ok {
		return
	}
	trips, err := h.TripService.List(user)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

// CreateTrip обработчик для POST /api/trips.
func (h *Handler) CreateTrip(c *gin.Context) {
	user, ok := h.caller(c)
	if !ok {
		return
	}
	var req service.TripInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректное тело запроса"})
		return
	}
	trip, err := h.TripService.Create(user, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trip)
}

// GetTrip обработчик для GET /api/trips/:trip_id.
func (h *Handler) GetTrip(c *gin.Context) {
	user, ok := h.caller(c)
	if !ok {
		return
	}
	tripID, ok := h.pathID(c, "trip_id")
	if !ok {
		return
	}
	trip, err := h.TripService.Get(user, tripID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// UpdateTrip обработчик для PATCH /api/trips/:trip_id.
func (h *Handler) UpdateTrip(c *gin.Context) {
	user, ok := h.caller(c)
	if !ok {
		return
	}
	tripID, ok := h.pathID(c, "trip_id")
	if !ok {
		return
	}
	var req service.TripInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректное тело запроса"})
		return
	}
	trip, err := h.TripService.Update(user, tripID, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// DeleteTrip обработчик для DELETE /api/trips/:trip_id.
func (h *Handler) DeleteTrip(c *gin.Context) {
	user, ok := h.caller(c)
	if !ok {
		return
	}
	tripID, ok := h.pathID(c, "trip_id")
	if !ok {
		return
	}
	if err := h.TripService.Delete(user, tripID); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
