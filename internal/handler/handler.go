package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jredd/mouse-tracks-backend/internal/apperr"
	"github.com/jredd/mouse-tracks-backend/internal/auth"
	"github.com/jredd/mouse-tracks-backend/internal/model"
	"github.com/jredd/mouse-tracks-backend/internal/service"
)

// Handler структурирует зависимости сервисов для обработки HTTP-запросов.
type Handler struct {
	CatalogService   *service.CatalogService
	TripService      *service.TripService
	ItineraryService *service.ItineraryService
	Log              *zap.Logger
}

// NewHandler создает новый Handler с внедрением зависимостей (сервисов).
func NewHandler(cs *service.CatalogService, ts *service.TripService, is *service.ItineraryService, log *zap.Logger) *Handler {
	return &Handler{
		CatalogService:   cs,
		TripService:      ts,
		ItineraryService: is,
		Log:              log,
	}
}

// RegisterRoutes регистрирует маршруты API на переданной группе.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/destinations", h.ListDestinations)
	api.POST("/destinations", h.CreateDestination)
	api.GET("/destinations/:dest_id", h.GetDestination)
	api.GET("/destinations/:dest_id/locations", h.ListLocations)
	api.POST("/destinations/:dest_id/locations", h.CreateLocation)
	api.GET("/destinations/:dest_id/locations/:pk", h.GetLocation)
	api.GET("/locations/:loc_id/lands", h.ListLands)
	api.POST("/locations/:loc_id/lands", h.CreateLand)
	api.GET("/locations/:loc_id/lands/:pk", h.GetLand)
	api.GET("/locations/:loc_id/experiences", h.ListExperiences)
	api.POST("/locations/:loc_id/experiences", h.CreateExperience)
	api.GET("/locations/:loc_id/experiences/:pk", h.GetExperience)

	api.GET("/trips", h.ListTrips)
	api.POST("/trips", h.CreateTrip)
	api.GET("/trips/:trip_id", h.GetTrip)
	api.PATCH("/trips/:trip_id", h.UpdateTrip)
	api.DELETE("/trips/:trip_id", h.DeleteTrip)

	api.GET("/trips/:trip_id/itinerary-items", h.ListItineraryItems)
	api.POST("/trips/:trip_id/itinerary-items", h.CreateItineraryItem)
	api.GET("/trips/:trip_id/itinerary-items/:pk", h.GetItineraryItem)
	api.PATCH("/trips/:trip_id/itinerary-items/:pk", h.UpdateItineraryItem)
	api.DELETE("/trips/:trip_id/itinerary-items/:pk", h.DeleteItineraryItem)
	api.POST("/trips/:trip_id/itinerary-items/bulk-create", h.BulkCreateItineraryItems)
	api.POST("/trips/:trip_id/itinerary-items/bulk-update", h.BulkUpdateItineraryItems)
	api.POST("/trips/:trip_id/itinerary-items/bulk-delete", h.BulkDeleteItineraryItems)
}

// caller извлекает аутентифицированного пользователя из контекста запроса.
func (h *Handler) caller(c *gin.Context) (*model.User, bool) {
	user, ok := auth.Caller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "требуется аутентификация"})
		return nil, false
	}
	return user, true
}

// pathID разбирает UUID из параметра пути.
func (h *Handler) pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{name: "некорректный идентификатор"}})
		return uuid.Nil, false
	}
	return id, true
}

// writeError отображает ошибку таксономии в HTTP-ответ.
// Ошибки валидации возвращаются с привязкой к полю запроса.
func (h *Handler) writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperr.ErrNotFound), errors.Is(err, apperr.ErrOwnershipMismatch):
		status = http.StatusNotFound
	case errors.Is(err, apperr.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, apperr.ErrUnknownActivityKind),
		errors.Is(err, apperr.ErrInvalidActivity),
		errors.Is(err, apperr.ErrInvalidArgument):
		status = http.StatusBadRequest
	default:
		h.Log.Error("внутренняя ошибка обработки запроса", zap.Error(err))
	}
	var fieldErr *apperr.FieldError
	if errors.As(err, &fieldErr) {
		c.JSON(status, gin.H{"errors": gin.H{fieldErr.Field: fieldErr.Message}})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
