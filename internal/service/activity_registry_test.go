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

func TestResolveKind(t *testing.T) {
	f := newFixture(t)

	kind, err := f.registry.ResolveKind(nil)
	require.NoError(t, err)
	assert.Equal(t, model.KindNote, kind)

	kind, err = f.registry.ResolveKind(str(""))
	require.NoError(t, err)
	assert.Equal(t, model.KindNote, kind)

	kind, err = f.registry.ResolveKind(str("note"))
	require.NoError(t, err)
	assert.Equal(t, model.KindNote, kind)

	for _, tag := range []string{"experience", "break", "travelevent", "meal"} {
		kind, err = f.registry.ResolveKind(str(tag))
		require.NoError(t, err)
		assert.Equal(t, model.ActivityKind(tag), kind)
	}

	_, err = f.registry.ResolveKind(str("hotel"))
	assert.ErrorIs(t, err, apperr.ErrUnknownActivityKind)
}

func TestBuildNote(t *testing.T) {
	f := newFixture(t)

	act, err := f.registry.BuildForCreate(model.KindNote, nil, nil, str("не забыть билеты"))
	require.NoError(t, err)
	assert.Equal(t, model.KindNote, act.Kind)

	_, err = f.registry.BuildForCreate(model.KindNote, nil, nil, str(""))
	assert.ErrorIs(t, err, apperr.ErrInvalidActivity)

	_, err = f.registry.BuildForCreate(model.KindNote, nil, nil, nil)
	assert.ErrorIs(t, err, apperr.ErrInvalidActivity)

	_, err = f.registry.BuildForCreate(model.KindNote, nil, &service.ActivityInput{LocationID: uid(f.park.ID)}, str("текст"))
	assert.ErrorIs(t, err, apperr.ErrInvalidActivity)

	_, err = f.registry.BuildForCreate(model.KindNote, uid(f.attraction.ID), nil, str("текст"))
	assert.ErrorIs(t, err, apperr.ErrInvalidActivity)
}

func TestBuildExperience(t *testing.T) {
	f := newFixture(t)

	act, err := f.registry.BuildForCreate(model.KindExperience, uid(f.attraction.ID), nil, nil)
	require.NoError(t, err)
	require.NotNil(t, act.Experience)
	assert.Equal(t, f.attraction.ID, act.Experience.ID)

	_, err = f.registry.BuildForCreate(model.KindExperience, nil, nil, nil)
	assert.ErrorIs(t, err, apperr.ErrInvalidActivity)

	_, err = f.registry.BuildForCreate(model.KindExperience, uid(uuid.New()), nil, nil)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = f.registry.BuildForCreate(model.KindExperience, uid(f.attraction.ID),
		&service.ActivityInput{LocationID: uid(f.park.ID)}, nil)
	assert.ErrorIs(t, err, apperr.ErrInvalidActivity)
}

func TestBuildBreak(t *testing.T) {
	f := newFixture(t)

	act, err := f.registry.BuildForCreate(model.KindBreak, nil, &service.ActivityInput{LocationID: uid(f.resort.ID)}, nil)
	require.NoError(t, err)
	require.NotNil(t, act.Break)
	assert.Equal(t, f.resort.ID, act.Break.LocationID)

	_, err = f.registry.BuildForCreate(model.KindBreak, nil, nil, nil)
	assert.ErrorIs(t, err, apperr.ErrInvalidActivity)

	_, err = f.registry.BuildForCreate(model.KindBreak, nil, &service.ActivityInput{LocationID: uid(uuid.New())}, nil)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestBuildTravelEvent(t *testing.T) {
	f := newFixture(t)

	// для каждой точки заполнено ровно одно из двух полей
	act, err := f.registry.BuildForCreate(model.KindTravelEvent, nil, &service.ActivityInput{
		FromLocationID:   uid(f.resort.ID),
		CustomToLocation: str("Аэропорт Орландо"),
		TravelType:       str("check-out"),
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, act.TravelEvent)
	assert.Equal(t, model.TravelCheckOut, act.TravelEvent.TravelType)

	// обе стороны точки отправления
	_, err = f.registry.BuildForCreate(model.KindTravelEvent, nil, &service.ActivityInput{
		FromLocationID:     uid(f.resort.ID),
		CustomFromLocation: str("дом"),
		ToLocationID:       uid(f.park.ID),
		TravelType:         str("park-hop"),
	}, nil)
	assert.ErrorIs(t, err, apperr.ErrInvalidActivity)

	// ни одной стороны точки прибытия
	_, err = f.registry.BuildForCreate(model.KindTravelEvent, nil, &service.ActivityInput{
		FromLocationID: uid(f.resort.ID),
		TravelType:     str("park-hop"),
	}, nil)
	assert.ErrorIs(t, err, apperr.ErrInvalidActivity)

	_, err = f.registry.BuildForCreate(model.KindTravelEvent, nil, &service.ActivityInput{
		FromLocationID: uid(f.resort.ID),
		ToLocationID:   uid(f.park.ID),
		TravelType:     str("teleport"),
	}, nil)
	assert.ErrorIs(t, err, apperr.ErrInvalidActivity)

	_, err = f.registry.BuildForCreate(model.KindTravelEvent, nil, &service.ActivityInput{
		FromLocationID: uid(uuid.New()),
		ToLocationID:   uid(f.park.ID),
		TravelType:     str("park-hop"),
	}, nil)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestBuildMeal(t *testing.T) {
	f := newFixture(t)

	act, err := f.registry.BuildForCreate(model.KindMeal, nil, &service.ActivityInput{
		MealExperienceID: uid(f.restaurant.ID),
		MealType:         str("lunch"),
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, act.Meal)
	assert.Equal(t, model.MealLunch, act.Meal.MealType)

	_, err = f.registry.BuildForCreate(model.KindMeal, nil, &service.ActivityInput{
		MealExperienceID: uid(f.restaurant.ID),
		MealType:         str("brunch"),
	}, nil)
	assert.ErrorIs(t, err, apperr.ErrInvalidActivity)

	_, err = f.registry.BuildForCreate(model.KindMeal, nil, &service.ActivityInput{
		MealExperienceID: uid(uuid.New()),
		MealType:         str("dinner"),
	}, nil)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = f.registry.BuildForCreate(model.KindMeal, nil, &service.ActivityInput{MealType: str("dinner")}, nil)
	assert.ErrorIs(t, err, apperr.ErrInvalidActivity)
}
