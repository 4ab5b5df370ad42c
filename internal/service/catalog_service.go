package service

import (
	"github.com/google/uuid"

	"github.com/jredd/mouse-tracks-backend/internal/apperr"
	"github.com/jredd/mouse-tracks-backend/internal/model"
	"github.com/jredd/mouse-tracks-backend/internal/repository"
)

// ExperienceInput - входные данные создания активности каталога.
type ExperienceInput struct {
	Name           string      `json:"name"`
	ExperienceType string      `json:"experience_type"`
	LandID         *uuid.UUID  `json:"land_id,omitempty"`
	DestinationID  *uuid.UUID  `json:"destination_id,omitempty"`
	LocationIDs    []uuid.UUID `json:"locations,omitempty"`
}

// CatalogService содержит бизнес-логику каталога. Чтение доступно всем
// аутентифицированным пользователям, запись - только staff и superuser.
type CatalogService struct {
	catalog *repository.CatalogRepository
}

// NewCatalogService создает новый сервис каталога.
func NewCatalogService(catalog *repository.CatalogRepository) *CatalogService {
	return &CatalogService{catalog: catalog}
}

func requireStaff(caller *model.User) error {
	if !caller.IsPrivileged() {
		return apperr.ErrForbidden
	}
	return nil
}

// --- Дестинации ---

// ListDestinations возвращает все дестинации.
func (s *CatalogService) ListDestinations() ([]model.Destination, error) {
	return s.catalog.ListDestinations()
}

// GetDestination возвращает дестинацию по идентификатору.
func (s *CatalogService) GetDestination(id uuid.UUID) (*model.Destination, error) {
	d, err := s.catalog.GetDestination(id)
	if err != nil {
		return nil, notFoundOr(err, "дестинация")
	}
	return d, nil
}

// CreateDestination добавляет дестинацию с уникальным именем.
func (s *CatalogService) CreateDestination(caller *model.User, name string) (*model.Destination, error) {
	if err := requireStaff(caller); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, apperr.Field(apperr.ErrInvalidArgument, "name", "название обязательно")
	}
	taken, err := s.catalog.DestinationNameTaken(name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Field(apperr.ErrInvalidArgument, "name", "название уже занято")
	}
	d := &model.Destination{Name: name}
	if _, err := s.catalog.CreateDestination(d); err != nil {
		return nil, err
	}
	return d, nil
}

// --- Локации ---

// ListLocations возвращает локации дестинации.
func (s *CatalogService) ListLocations(destID uuid.UUID) ([]model.Location, error) {
	if _, err := s.catalog.GetDestination(destID); err != nil {
		return nil, notFoundOr(err, "дестинация")
	}
	return s.catalog.ListLocationsByDestination(destID)
}

// GetLocation возвращает локацию, принадлежащую указанной дестинации.
func (s *CatalogService) GetLocation(destID, id uuid.UUID) (*model.Location, error) {
	loc, err := s.catalog.GetLocation(id)
	if err != nil {
		return nil, notFoundOr(err, "локация")
	}
	if loc.DestinationID != destID {
		return nil, apperr.NotFound("локация")
	}
	return loc, nil
}

// CreateLocation добавляет локацию в дестинацию.
func (s *CatalogService) CreateLocation(caller *model.User, destID uuid.UUID, name string, locType string) (*model.Location, error) {
	if err := requireStaff(caller); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, apperr.Field(apperr.ErrInvalidArgument, "name", "название обязательно")
	}
	if !model.ValidLocationType(model.LocationType(locType)) {
		return nil, apperr.Field(apperr.ErrInvalidArgument, "location_type", "недопустимый тип локации")
	}
	if _, err := s.catalog.GetDestination(destID); err != nil {
		return nil, notFoundOr(err, "дестинация")
	}
	loc := &model.Location{Name: name, LocationType: model.LocationType(locType), DestinationID: destID}
	if _, err := s.catalog.CreateLocation(loc); err != nil {
		return nil, err
	}
	return loc, nil
}

// --- Земли ---

// ListLands возвращает земли указанного парка.
func (s *CatalogService) ListLands(parkID uuid.UUID) ([]model.Land, error) {
	if _, err := s.catalog.GetLocation(parkID); err != nil {
		return nil, notFoundOr(err, "локация")
	}
	return s.catalog.ListLandsByPark(parkID)
}

// GetLand возвращает землю, принадлежащую указанному парку.
func (s *CatalogService) GetLand(parkID, id uuid.UUID) (*model.Land, error) {
	land, err := s.catalog.GetLand(id)
	if err != nil {
		return nil, notFoundOr(err, "земля")
	}
	if land.ParkID != parkID {
		return nil, apperr.NotFound("земля")
	}
	return land, nil
}

// CreateLand добавляет землю в парк. Родительская локация обязана быть
// тематическим парком или аквапарком.
func (s *CatalogService) CreateLand(caller *model.User, parkID uuid.UUID, name string) (*model.Land, error) {
	if err := requireStaff(caller); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, apperr.Field(apperr.ErrInvalidArgument, "name", "название обязательно")
	}
	park, err := s.catalog.GetLocation(parkID)
	if err != nil {
		return nil, notFoundOr(err, "локация")
	}
	if !park.IsPark() {
		return nil, apperr.Field(apperr.ErrInvalidArgument, "park_id",
			"земля может принадлежать только тематическому парку или аквапарку")
	}
	land := &model.Land{Name: name, ParkID: parkID}
	if _, err := s.catalog.CreateLand(land); err != nil {
		return nil, err
	}
	return land, nil
}

// --- Активности ---

// ListExperiences возвращает активности, доступные из локации.
func (s *CatalogService) ListExperiences(locID uuid.UUID) ([]model.Experience, error) {
	if _, err := s.catalog.GetLocation(locID); err != nil {
		return nil, notFoundOr(err, "локация")
	}
	return s.catalog.ListExperiencesByLocation(locID)
}

// GetExperience возвращает активность каталога по идентификатору.
func (s *CatalogService) GetExperience(id uuid.UUID) (*model.Experience, error) {
	exp, err := s.catalog.GetExperience(id)
	if err != nil {
		return nil, notFoundOr(err, "активность каталога")
	}
	return exp, nil
}

// CreateExperience добавляет активность каталога.
// Активность обязана быть достижима хотя бы из одной локации либо дестинации;
// если указана земля, её парк должен входить в список локаций.
func (s *CatalogService) CreateExperience(caller *model.User, in *ExperienceInput) (*model.Experience, error) {
	if err := requireStaff(caller); err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, apperr.Field(apperr.ErrInvalidArgument, "name", "название обязательно")
	}
	if !model.ValidExperienceType(model.ExperienceType(in.ExperienceType)) {
		return nil, apperr.Field(apperr.ErrInvalidArgument, "experience_type", "недопустимый тип активности")
	}
	if len(in.LocationIDs) == 0 && in.DestinationID == nil {
		return nil, apperr.Field(apperr.ErrInvalidArgument, "locations",
			"активность должна быть связана хотя бы с одной локацией или дестинацией")
	}
	for _, locID := range in.LocationIDs {
		ok, err := s.catalog.LocationExists(locID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperr.NotFound("локация каталога")
		}
	}
	if in.DestinationID != nil {
		if _, err := s.catalog.GetDestination(*in.DestinationID); err != nil {
			return nil, notFoundOr(err, "дестинация")
		}
	}
	if in.LandID != nil {
		land, err := s.catalog.GetLand(*in.LandID)
		if err != nil {
			return nil, notFoundOr(err, "земля")
		}
		parkListed := false
		for _, locID := range in.LocationIDs {
			if locID == land.ParkID {
				parkListed = true
				break
			}
		}
		if !parkListed {
			return nil, apperr.Field(apperr.ErrInvalidArgument, "land_id",
				"парк земли должен входить в список локаций активности")
		}
	}
	exp := &model.Experience{
		Name:           in.Name,
		ExperienceType: model.ExperienceType(in.ExperienceType),
		LandID:         in.LandID,
		DestinationID:  in.DestinationID,
		LocationIDs:    in.LocationIDs,
	}
	if _, err := s.catalog.CreateExperience(exp); err != nil {
		return nil, err
	}
	return exp, nil
}
