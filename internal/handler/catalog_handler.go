package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jredd/mouse-tracks-backend/internal/service"
)

// ListDestinations обработчик для GET /api/destinations.
func (h *Handler) ListDestinations(c *gin.Context) {
	ds, err := h.CatalogService.ListDestinations()
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ds)
}

// GetDestination обработчик для GET /api/destinations/:dest_id.
func (h *Handler) GetDestination(c *gin.Context) {
	id, ok := h.pathID(c, "dest_id")
	if !ok {
		return
	}
	d, err := h.CatalogService.GetDestination(id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// CreateDestination обработчик для POST /api/destinations (только staff).
func (h *Handler) CreateDestination(c *gin.Context) {
	user, ok := h.caller(c)
	if !ok {
		return
	}
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректное тело запроса"})
		return
	}
	d, err := h.CatalogService.CreateDestination(user, req.Name)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

// ListLocations обработчик для GET /api/destinations/:dest_id/locations.
func (h *Handler) ListLocations(c *gin.Context) {
	destID, ok := h.pathID(c, "dest_id")
	if !ok {
		return
	}
	locs, err := h.CatalogService.ListLocations(destID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, locs)
}

// GetLocation обработчик для GET /api/destinations/:dest_id/locations/:pk.
func (h *Handler) GetLocation(c *gin.Context) {
	destID, ok := h.pathID(c, "dest_id")
	if !ok {
		return
	}
	id, ok := h.pathID(c, "pk")
	if !ok {
		return
	}
	loc, err := h.CatalogService.GetLocation(destID, id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, loc)
}

// CreateLocation обработчик для POST /api/destinations/:dest_id/locations (только staff).
func (h *Handler) CreateLocation(c *gin.Context) {
	user, ok := h.caller(c)
	if !ok {
		return
	}
	destID, ok := h.pathID(c, "dest_id")
	if !ok {
		return
	}
	var req struct {
		Name         string `json:"name"`
		LocationType string `json:"location_type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректное тело запроса"})
		return
	}
	loc, err := h.CatalogService.CreateLocation(user, destID, req.Name, req.LocationType)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, loc)
}

// ListLands обработчик для GET /api/locations/:loc_id/lands.
func (h *Handler) ListLands(c *gin.Context) {
	parkID, ok := h.pathID(c, "loc_id")
	if !ok {
		return
	}
	lands, err := h.CatalogService.ListLands(parkID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, lands)
}

// GetLand обработчик для GET /api/locations/:loc_id/lands/:pk.
func (h *Handler) GetLand(c *gin.Context) {
	parkID, ok := h.pathID(c, "loc_id")
	if !ok {
		return
	}
	id, ok := h.pathID(c, "pk")
	if !ok {
		return
	}
	land, err := h.CatalogService.GetLand(parkID, id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, land)
}

// CreateLand обработчик для POST /api/locations/:loc_id/lands (только staff).
func (h *Handler) CreateLand(c *gin.Context) {
	user, ok := h.caller(c)
	if !ok {
		return
	}
	parkID, ok := h.pathID(c, "loc_id")
	if !ok {
		return
	}
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректное тело запроса"})
		return
	}
	land, err := h.CatalogService.CreateLand(user, parkID, req.Name)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, land)
}

// ListExperiences обработчик для GET /api/locations/:loc_id/experiences.
func (h *Handler) ListExperiences(c *gin.Context) {
	locID, ok := h.pathID(c, "loc_id")
	if !ok {
		return
	}
	exps, err := h.CatalogService.ListExperiences(locID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, exps)
}

// GetExperience обработчик для GET /api/locations/:loc_id/experiences/:pk.
func (h *Handler) GetExperience(c *gin.Context) {
	if _, ok := h.pathID(c, "loc_id"); !ok {
		return
	}
	id, ok := h.pathID(c, "pk")
	if !ok {
		return
	}
	exp, err := h.CatalogService.GetExperience(id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, exp)
}

// CreateExperience обработчик для POST /api/locations/:loc_id/experiences (только staff).
func (h *Handler) CreateExperience(c *gin.Context) {
	user, ok := h.caller(c)
	if !ok {
		return
	}
	if _, ok := h.pathID(c, "loc_id"); !ok {
		return
	}
	var req service.ExperienceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректное тело запроса"})
		return
	}
	exp, err := h.CatalogService.CreateExperience(user, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, exp)
}
