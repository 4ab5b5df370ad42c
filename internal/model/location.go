package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationType определяет тип локации каталога.
type LocationType string

const (
	LocationResort             LocationType = "resort"
	LocationThemePark          LocationType = "theme-park"
	LocationWaterPark          LocationType = "water-park"
	LocationEntertainmentVenue LocationType = "entertainment-venue"
)

// ValidLocationType проверяет, входит ли значение в список допустимых типов локаций.
func ValidLocationType(t LocationType) bool {
	switch t {
	case LocationResort, LocationThemePark, LocationWaterPark, LocationEntertainmentVenue:
		return true
	}
	return false
}

// Location представляет локацию внутри дестинации: парк, отель или развлекательную зону.
type Location struct {
	ID            uuid.UUID    `db:"id" json:"id"`
	Name          string       `db:"name" json:"name"`
	LocationType  LocationType `db:"location_type" json:"location_type"`
	DestinationID uuid.UUID    `db:"destination_id" json:"destination_id"`
	DateCreated   time.Time    `db:"date_created" json:"-"`
	DateUpdated   time.Time    `db:"date_updated" json:"date_updated"`
	IsDeleted     bool         `db:"is_deleted" json:"-"`
}

// IsPark сообщает, является ли локация парком (тематическим или аквапарком).
// Только парки могут содержать земли (Land).
func (l *Location) IsPark() bool {
	return l.LocationType == LocationThemePark || l.LocationType == LocationWaterPark
}
