package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jredd/mouse-tracks-backend/internal/apperr"
	"github.com/jredd/mouse-tracks-backend/internal/model"
	"github.com/jredd/mouse-tracks-backend/internal/service"
)

func TestCatalogWriteRequiresStaff(t *testing.T) {
	f := newFixture(t)

	_, err := f.catalog.CreateDestination(f.owner, "Disneyland Paris")
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = f.catalog.CreateLocation(f.owner, f.dest.ID, "Новый отель", "resort")
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = f.catalog.CreateLand(f.owner, f.park.ID, "Tomorrowland")
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = f.catalog.CreateExperience(f.owner, &service.ExperienceInput{
		Name: "Новый аттракцион", ExperienceType: "attraction", LocationIDs: []uuid.UUID{f.park.ID},
	})
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestCreateDestination(t *testing.T) {
	f := newFixture(t)

	d, err := f.catalog.CreateDestination(f.staff, "Disneyland Paris")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, d.ID)

	// имя дестинации уникально
	_, err = f.catalog.CreateDestination(f.staff, "Walt Disney World")
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	_, err = f.catalog.CreateDestination(f.staff, "")
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestCreateLocation(t *testing.T) {
	f := newFixture(t)

	loc, err := f.catalog.CreateLocation(f.staff, f.dest.ID, "Typhoon Lagoon", "water-park")
	require.NoError(t, err)
	assert.Equal(t, model.LocationWaterPark, loc.LocationType)

	_, err = f.catalog.CreateLocation(f.staff, f.dest.ID, "Стоянка", "parking-lot")
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	_, err = f.catalog.CreateLocation(f.staff, uuid.New(), "Отель", "resort")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCreateLandRequiresPark(t *testing.T) {
	f := newFixture(t)

	land, err := f.catalog.CreateLand(f.staff, f.park.ID, "Tomorrowland")
	require.NoError(t, err)
	assert.Equal(t, f.park.ID, land.ParkID)

	// отель не может содержать земли
	_, err = f.catalog.CreateLand(f.staff, f.resort.ID, "Лобби")
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestCreateExperienceReachability(t *testing.T) {
	f := newFixture(t)

	// без локаций и дестинации активность недостижима
	_, err := f.catalog.CreateExperience(f.staff, &service.ExperienceInput{
		Name: "Потерянный аттракцион", ExperienceType: "attraction",
	})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	// достаточно прямой привязки к дестинации
	exp, err := f.catalog.CreateExperience(f.staff, &service.ExperienceInput{
		Name: "Фейерверк", ExperienceType: "event", DestinationID: uid(f.dest.ID),
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, exp.ID)

	_, err = f.catalog.CreateExperience(f.staff, &service.ExperienceInput{
		Name: "Неправильный тип", ExperienceType: "spa", LocationIDs: []uuid.UUID{f.park.ID},
	})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestCreateExperienceLandPark(t *testing.T) {
	f := newFixture(t)

	// парк земли обязан входить в список локаций
	_, err := f.catalog.CreateExperience(f.staff, &service.ExperienceInput{
		Name:           "Карусель",
		ExperienceType: "attraction",
		LandID:         uid(f.land.ID),
		LocationIDs:    []uuid.UUID{f.resort.ID},
	})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	exp, err := f.catalog.CreateExperience(f.staff, &service.ExperienceInput{
		Name:           "Карусель",
		ExperienceType: "attraction",
		LandID:         uid(f.land.ID),
		LocationIDs:    []uuid.UUID{f.park.ID},
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{f.park.ID}, exp.LocationIDs)
}

func TestCatalogScopedReads(t *testing.T) {
	f := newFixture(t)

	locs, err := f.catalog.ListLocations(f.dest.ID)
	require.NoError(t, err)
	assert.Len(t, locs, 2)

	// локация читается только в своей дестинации
	other, err := f.catalog.CreateDestination(f.staff, "Disneyland Paris")
	require.NoError(t, err)
	_, err = f.catalog.GetLocation(other.ID, f.park.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	got, err := f.catalog.GetLocation(f.dest.ID, f.park.ID)
	require.NoError(t, err)
	assert.Equal(t, f.park.Name, got.Name)

	exps, err := f.catalog.ListExperiences(f.park.ID)
	require.NoError(t, err)
	assert.Len(t, exps, 2)
}
