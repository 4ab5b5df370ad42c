package model

import (
	"time"

	"github.com/google/uuid"
)

// ExperienceType определяет тип активности каталога.
type ExperienceType string

const (
	ExperienceAttraction    ExperienceType = "attraction"
	ExperienceEntertainment ExperienceType = "entertainment"
	ExperienceEvent         ExperienceType = "event"
	ExperienceRestaurant    ExperienceType = "restaurant"
	ExperienceDiningEvent   ExperienceType = "dining-event"
	ExperienceDinnerShow    ExperienceType = "dinner-show"
)

// ValidExperienceType проверяет, входит ли значение в список допустимых типов.
func ValidExperienceType(t ExperienceType) bool {
	switch t {
	case ExperienceAttraction, ExperienceEntertainment, ExperienceEvent,
		ExperienceRestaurant, ExperienceDiningEvent, ExperienceDinnerShow:
		return true
	}
	return false
}

// Experience представляет активность каталога: аттракцион, шоу, ресторан и т.п.
// Активность должна быть достижима хотя бы из одной локации либо напрямую из дестинации;
// если указана земля, её парк обязан входить в список локаций активности.
type Experience struct {
	ID             uuid.UUID      `db:"id" json:"id"`
	Name           string         `db:"name" json:"name"`
	ExperienceType ExperienceType `db:"experience_type" json:"experience_type"`
	LandID         *uuid.UUID     `db:"land_id" json:"land_id"`
	DestinationID  *uuid.UUID     `db:"destination_id" json:"destination_id"`
	LocationIDs    []uuid.UUID    `db:"-" json:"locations"` // связь многие-ко-многим, загружается отдельно
	DateCreated    time.Time      `db:"date_created" json:"-"`
	DateUpdated    time.Time      `db:"date_updated" json:"date_updated"`
	IsDeleted      bool           `db:"is_deleted" json:"-"`
}
