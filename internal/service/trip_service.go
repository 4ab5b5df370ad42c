package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/jredd/mouse-tracks-backend/internal/apperr"
	"github.com/jredd/mouse-tracks-backend/internal/model"
	"github.com/jredd/mouse-tracks-backend/internal/repository"
)

// TripInput - входные данные создания или частичного обновления поездки.
type TripInput struct {
	Title         *string    `json:"title,omitempty"`
	DestinationID *uuid.UUID `json:"destination_id,omitempty"`
	StartDate     *string    `json:"start_date,omitempty"`
	EndDate       *string    `json:"end_date,omitempty"`
}

// TripView - ответное представление поездки с датами в формате ГГГГ-ММ-ДД.
type TripView struct {
	ID                uuid.UUID `json:"id"`
	Title             string    `json:"title"`
	CreatedBy         uuid.UUID `json:"created_by"`
	DestinationID     uuid.UUID `json:"destination_id"`
	StartDate         string    `json:"start_date"`
	EndDate           string    `json:"end_date"`
	LastContentUpdate time.Time `json:"last_content_update"`
}

// TripService содержит бизнес-логику, связанную с поездками пользователей.
type TripService struct {
	tripRepo *repository.TripRepository
	catalog  *repository.CatalogRepository
}

// NewTripService создает новый сервис поездок.
func NewTripService(tripRepo *repository.TripRepository, catalog *repository.CatalogRepository) *TripService {
	return &TripService{tripRepo: tripRepo, catalog: catalog}
}

// Create создает новую поездку. Владельцем становится вызывающий пользователь.
func (s *TripService) Create(caller *model.User, in *TripInput) (*TripView, error) {
	if in.Title == nil || *in.Title == "" {
		return nil, apperr.Field(apperr.ErrInvalidArgument, "title", "название обязательно")
	}
	if in.DestinationID == nil {
		return nil, apperr.Field(apperr.ErrInvalidArgument, "destination_id", "дестинация обязательна")
	}
	if in.StartDate == nil || in.EndDate == nil {
		return nil, apperr.Field(apperr.ErrInvalidArgument, "start_date", "даты поездки обязательны")
	}
	start, end, err := parseDateRange(*in.StartDate, *in.EndDate)
	if err != nil {
		return nil, err
	}
	if _, err := s.catalog.GetDestination(*in.DestinationID); err != nil {
		return nil, notFoundOr(err, "дестинация")
	}
	trip := &model.Trip{
		Title:         *in.Title,
		CreatedBy:     caller.ID,
		DestinationID: *in.DestinationID,
		StartDate:     start,
		EndDate:       end,
	}
	if _, err := s.tripRepo.Create(trip); err != nil {
		return nil, err
	}
	return renderTrip(trip), nil
}

// List возвращает поездки вызывающего; staff видит все поездки.
func (s *TripService) List(caller *model.User) ([]TripView, error) {
	var trips []model.Trip
	var err error
	if caller.IsPrivileged() {
		trips, err = s.tripRepo.ListAll()
	} else {
		trips, err = s.tripRepo.ListByUser(caller.ID)
	}
	if err != nil {
		return nil, err
	}
	views := make([]TripView, 0, len(trips))
	for i := range trips {
		views = append(views, *renderTrip(&trips[i]))
	}
	return views, nil
}

// Get возвращает поездку; доступ имеют владелец и staff.
func (s *TripService) Get(caller *model.User, id uuid.UUID) (*TripView, error) {
	trip, err := s.authorize(caller, id)
	if err != nil {
		return nil, err
	}
	return renderTrip(trip), nil
}

// Update частично обновляет поездку владельца.
func (s *TripService) Update(caller *model.User, id uuid.UUID, in *TripInput) (*TripView, error) {
	trip, err := s.authorize(caller, id)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		if *in.Title == "" {
			return nil, apperr.Field(apperr.ErrInvalidArgument, "title", "название не может быть пустым")
		}
		trip.Title = *in.Title
	}
	if in.DestinationID != nil {
		if _, err := s.catalog.GetDestination(*in.DestinationID); err != nil {
			return nil, notFoundOr(err, "дестинация")
		}
		trip.DestinationID = *in.DestinationID
	}
	startStr := trip.StartDate.Format(dayLayout)
	endStr := trip.EndDate.Format(dayLayout)
	if in.StartDate != nil {
		startStr = *in.StartDate
	}
	if in.EndDate != nil {
		endStr = *in.EndDate
	}
	start, end, err := parseDateRange(startStr, endStr)
	if err != nil {
		return nil, err
	}
	trip.StartDate = start
	trip.EndDate = end
	if err := s.tripRepo.Update(trip); err != nil {
		return nil, err
	}
	return renderTrip(trip), nil
}

// Delete помечает поездку удаленной.
func (s *TripService) Delete(caller *model.User, id uuid.UUID) error {
	if _, err := s.authorize(caller, id); err != nil {
		return err
	}
	return s.tripRepo.SoftDelete(id)
}

func (s *TripService) authorize(caller *model.User, id uuid.UUID) (*model.Trip, error) {
	trip, err := s.tripRepo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err, "поездка")
	}
	if !trip.OwnedBy(caller.ID) && !caller.IsPrivileged() {
		return nil, apperr.ErrForbidden
	}
	return trip, nil
}

// parseDateRange разбирает даты поездки и проверяет, что начало не позже окончания.
func parseDateRange(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.Parse(dayLayout, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperr.Field(apperr.ErrInvalidArgument, "start_date", "ожидается дата в формате ГГГГ-ММ-ДД")
	}
	end, err := time.Parse(dayLayout, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperr.Field(apperr.ErrInvalidArgument, "end_date", "ожидается дата в формате ГГГГ-ММ-ДД")
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, apperr.Field(apperr.ErrInvalidArgument, "end_date", "дата окончания не может быть раньше даты начала")
	}
	return start, end, nil
}

func renderTrip(trip *model.Trip) *TripView {
	return &TripView{
		ID:                trip.ID,
		Title:             trip.Title,
		CreatedBy:         trip.CreatedBy,
		DestinationID:     trip.DestinationID,
		StartDate:         trip.StartDate.Format(dayLayout),
		EndDate:           trip.EndDate.Format(dayLayout),
		LastContentUpdate: trip.LastContentUpdate,
	}
}
