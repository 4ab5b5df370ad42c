package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jredd/mouse-tracks-backend/internal/apperr"
	"github.com/jredd/mouse-tracks-backend/internal/service"
)

func tripInput(f *fixture, title string) *service.TripInput {
	return &service.TripInput{
		Title:         str(title),
		DestinationID: uid(f.dest.ID),
		StartDate:     str("2026-10-01"),
		EndDate:       str("2026-10-08"),
	}
}

func TestCreateTrip(t *testing.T) {
	f := newFixture(t)

	view, err := f.trips.Create(f.owner, tripInput(f, "Октябрьская поездка"))
	require.NoError(t, err)
	assert.Equal(t, f.owner.ID, view.CreatedBy)
	assert.Equal(t, "2026-10-01", view.StartDate)
	assert.False(t, view.LastContentUpdate.IsZero())

	in := tripInput(f, "")
	_, err = f.trips.Create(f.owner, in)
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	in = tripInput(f, "Без дестинации")
	in.DestinationID = nil
	_, err = f.trips.Create(f.owner, in)
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	in = tripInput(f, "Чужая дестинация")
	in.DestinationID = uid(uuid.New())
	_, err = f.trips.Create(f.owner, in)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCreateTripDateRange(t *testing.T) {
	f := newFixture(t)

	in := tripInput(f, "Перепутанные даты")
	in.StartDate = str("2026-10-08")
	in.EndDate = str("2026-10-01")
	_, err := f.trips.Create(f.owner, in)
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	in = tripInput(f, "Кривая дата")
	in.StartDate = str("01.10.2026")
	_, err = f.trips.Create(f.owner, in)
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	// однодневная поездка допустима
	in = tripInput(f, "Один день")
	in.StartDate = str("2026-10-01")
	in.EndDate = str("2026-10-01")
	_, err = f.trips.Create(f.owner, in)
	require.NoError(t, err)
}

func TestListTripsVisibility(t *testing.T) {
	f := newFixture(t)
	f.seedTrip(t, f.stranger, "Чужая поездка")

	own, err := f.trips.List(f.owner)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, f.trip.ID, own[0].ID)

	all, err := f.trips.List(f.staff)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestTripOwnership(t *testing.T) {
	f := newFixture(t)

	_, err := f.trips.Get(f.stranger, f.trip.ID)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = f.trips.Get(f.staff, f.trip.ID)
	require.NoError(t, err)

	_, err = f.trips.Update(f.stranger, f.trip.ID, &service.TripInput{Title: str("взлом")})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	err = f.trips.Delete(f.stranger, f.trip.ID)
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestUpdateTrip(t *testing.T) {
	f := newFixture(t)

	view, err := f.trips.Update(f.owner, f.trip.ID, &service.TripInput{Title: str("Новое название")})
	require.NoError(t, err)
	assert.Equal(t, "Новое название", view.Title)
	// незатронутые поля сохраняются
	assert.Equal(t, "2026-09-10", view.StartDate)

	// частичное изменение дат проверяется против сохраненной пары
	_, err = f.trips.Update(f.owner, f.trip.ID, &service.TripInput{EndDate: str("2026-09-01")})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	_, err = f.trips.Update(f.owner, f.trip.ID, &service.TripInput{Title: str("")})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestDeleteTrip(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.trips.Delete(f.owner, f.trip.ID))

	_, err := f.trips.Get(f.owner, f.trip.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	list, err := f.trips.List(f.owner)
	require.NoError(t, err)
	assert.Empty(t, list)
}
