package model

import (
	"time"

	"github.com/google/uuid"
)

// Destination представляет дестинацию - корневой объект каталога (например, курортный комплекс).
type Destination struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"` // название, уникальное в пределах каталога
	DateCreated time.Time `db:"date_created" json:"-"`
	DateUpdated time.Time `db:"date_updated" json:"date_updated"`
	IsDeleted   bool      `db:"is_deleted" json:"-"`
}
