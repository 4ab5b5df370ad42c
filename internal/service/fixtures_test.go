package service_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/jredd/mouse-tracks-backend/internal/model"
	"github.com/jredd/mouse-tracks-backend/internal/repository"
	"github.com/jredd/mouse-tracks-backend/internal/service"
	"github.com/jredd/mouse-tracks-backend/internal/testdb"
)

// fixture - общее тестовое окружение: база в памяти, репозитории, сервисы
// и небольшой каталог с одной поездкой.
type fixture struct {
	db       *sqlx.DB
	catRepo  *repository.CatalogRepository
	tripRepo *repository.TripRepository
	itemRepo *repository.ItineraryRepository
	registry *service.ActivityRegistry
	catalog  *service.CatalogService
	trips    *service.TripService
	itin     *service.ItineraryService

	owner    *model.User
	staff    *model.User
	stranger *model.User

	dest       *model.Destination
	resort     *model.Location
	park       *model.Location
	land       *model.Land
	attraction *model.Experience
	restaurant *model.Experience
	trip       *model.Trip
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testdb.New(t)
	users := repository.NewUserRepository(db)
	catRepo := repository.NewCatalogRepository(db)
	tripRepo := repository.NewTripRepository(db)
	itemRepo := repository.NewItineraryRepository(db)
	registry := service.NewActivityRegistry(catRepo)

	f := &fixture{
		db:       db,
		catRepo:  catRepo,
		tripRepo: tripRepo,
		itemRepo: itemRepo,
		registry: registry,
		catalog:  service.NewCatalogService(catRepo),
		trips:    service.NewTripService(tripRepo, catRepo),
		itin:     service.NewItineraryService(db, registry, tripRepo, itemRepo, catRepo),
	}

	f.owner = seedUser(t, users, "owner@example.com", false)
	f.staff = seedUser(t, users, "staff@example.com", true)
	f.stranger = seedUser(t, users, "stranger@example.com", false)

	f.dest = &model.Destination{Name: "Walt Disney World"}
	_, err := catRepo.CreateDestination(f.dest)
	require.NoError(t, err)

	f.resort = &model.Location{Name: "Grand Floridian", LocationType: model.LocationResort, DestinationID: f.dest.ID}
	_, err = catRepo.CreateLocation(f.resort)
	require.NoError(t, err)
	f.park = &model.Location{Name: "Magic Kingdom", LocationType: model.LocationThemePark, DestinationID: f.dest.ID}
	_, err = catRepo.CreateLocation(f.park)
	require.NoError(t, err)

	f.land = &model.Land{Name: "Fantasyland", ParkID: f.park.ID}
	_, err = catRepo.CreateLand(f.land)
	require.NoError(t, err)

	f.attraction = &model.Experience{
		Name:           "Space Mountain",
		ExperienceType: model.ExperienceAttraction,
		LocationIDs:    []uuid.UUID{f.park.ID},
	}
	_, err = catRepo.CreateExperience(f.attraction)
	require.NoError(t, err)
	f.restaurant = &model.Experience{
		Name:           "Be Our Guest",
		ExperienceType: model.ExperienceRestaurant,
		LandID:         &f.land.ID,
		LocationIDs:    []uuid.UUID{f.park.ID},
	}
	_, err = catRepo.CreateExperience(f.restaurant)
	require.NoError(t, err)

	f.trip = f.seedTrip(t, f.owner, "Осенняя поездка")
	return f
}

func seedUser(t *testing.T, users *repository.UserRepository, email string, staff bool) *model.User {
	t.Helper()
	u := &model.User{Email: email, FirstName: "Тест", IsStaff: staff}
	_, err := users.Create(u)
	require.NoError(t, err)
	return u
}

func (f *fixture) seedTrip(t *testing.T, owner *model.User, title string) *model.Trip {
	t.Helper()
	start, _ := time.Parse("2006-01-02", "2026-09-10")
	end, _ := time.Parse("2006-01-02", "2026-09-17")
	trip := &model.Trip{
		Title:         title,
		CreatedBy:     owner.ID,
		DestinationID: f.dest.ID,
		StartDate:     start,
		EndDate:       end,
	}
	_, err := f.tripRepo.Create(trip)
	require.NoError(t, err)
	return trip
}

// noteInput собирает минимальный корректный вход пункта-заметки.
func noteInput(day string, order int, notes string) service.ItemInput {
	return service.ItemInput{
		Day:           str(day),
		ActivityOrder: num(order),
		Notes:         str(notes),
	}
}

func str(s string) *string       { return &s }
func num(n int) *int             { return &n }
func uid(u uuid.UUID) *uuid.UUID { return &u }
