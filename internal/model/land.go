package model

import (
	"time"

	"github.com/google/uuid"
)

// Land представляет тематическую «землю» внутри парка.
// Родительская локация обязана быть тематическим парком или аквапарком.
type Land struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	ParkID      uuid.UUID `db:"park_id" json:"park_id"`
	DateCreated time.Time `db:"date_created" json:"-"`
	DateUpdated time.Time `db:"date_updated" json:"date_updated"`
	IsDeleted   bool      `db:"is_deleted" json:"-"`
}
