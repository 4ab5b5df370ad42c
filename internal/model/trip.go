package model

import (
	"time"

	"github.com/google/uuid"
)

// Trip представляет планируемую поездку пользователя в выбранную дестинацию.
type Trip struct {
	ID                uuid.UUID `db:"id" json:"id"`
	Title             string    `db:"title" json:"title"`
	CreatedBy         uuid.UUID `db:"created_by" json:"created_by"`
	DestinationID     uuid.UUID `db:"destination_id" json:"destination_id"`
	StartDate         time.Time `db:"start_date" json:"start_date"`
	EndDate           time.Time `db:"end_date" json:"end_date"`
	LastContentUpdate time.Time `db:"last_content_update" json:"last_content_update"` // обновляется при каждом изменении маршрута
	DateCreated       time.Time `db:"date_created" json:"-"`
	DateUpdated       time.Time `db:"date_updated" json:"date_updated"`
	IsDeleted         bool      `db:"is_deleted" json:"-"`
}

// OwnedBy сообщает, принадлежит ли поездка указанному пользователю.
func (t *Trip) OwnedBy(userID uuid.UUID) bool {
	return t.CreatedBy == userID
}
