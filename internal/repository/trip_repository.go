package repository

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jredd/mouse-tracks-backend/internal/model"
)

// TripRepository обеспечивает доступ к данным поездок в базе данных.
type TripRepository struct {
	db *sqlx.DB
}

// NewTripRepository создает новый репозиторий для поездок.
func NewTripRepository(db *sqlx.DB) *TripRepository {
	return &TripRepository{db: db}
}

// Create создает новую поездку. Возвращает ID созданной записи.
func (r *TripRepository) Create(trip *model.Trip) (uuid.UUID, error) {
	trip.ID = uuid.New()
	now := time.Now().UTC()
	trip.LastContentUpdate = now
	query := r.db.Rebind(`INSERT INTO trips (id, title, created_by, destination_id, start_date, end_date, last_content_update, date_created, date_updated, is_deleted)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, FALSE)`)
	_, err := r.db.Exec(query, trip.ID, trip.Title, trip.CreatedBy, trip.DestinationID,
		trip.StartDate, trip.EndDate, trip.LastContentUpdate, now, now)
	if err != nil {
		return uuid.Nil, fmt.Errorf("не удалось создать поездку: %w", err)
	}
	return trip.ID, nil
}

// GetByID возвращает поездку по идентификатору.
func (r *TripRepository) GetByID(id uuid.UUID) (*model.Trip, error) {
	var trip model.Trip
	err := r.db.Get(&trip, r.db.Rebind("SELECT * FROM trips WHERE id = ? AND is_deleted = FALSE"), id)
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

// ListByUser возвращает поездки, созданные указанным пользователем.
func (r *TripRepository) ListByUser(userID uuid.UUID) ([]model.Trip, error) {
	trips := []model.Trip{}
	err := r.db.Select(&trips,
		r.db.Rebind("SELECT * FROM trips WHERE created_by = ? AND is_deleted = FALSE ORDER BY start_date"), userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка поездок: %w", err)
	}
	return trips, nil
}

// ListAll возвращает все поездки (для staff-пользователей).
func (r *TripRepository) ListAll() ([]model.Trip, error) {
	trips := []model.Trip{}
	err := r.db.Select(&trips, "SELECT * FROM trips WHERE is_deleted = FALSE ORDER BY start_date")
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка поездок: %w", err)
	}
	return trips, nil
}

// Update обновляет изменяемые поля поездки.
func (r *TripRepository) Update(trip *model.Trip) error {
	query := r.db.Rebind(`UPDATE trips SET title = ?, destination_id = ?, start_date = ?, end_date = ?, date_updated = ?
	          WHERE id = ? AND is_deleted = FALSE`)
	_, err := r.db.Exec(query, trip.Title, trip.DestinationID, trip.StartDate, trip.EndDate, time.Now().UTC(), trip.ID)
	if err != nil {
		return fmt.Errorf("не удалось обновить поездку: %w", err)
	}
	return nil
}

// SoftDelete помечает поездку удаленной.
func (r *TripRepository) SoftDelete(id uuid.UUID) error {
	query := r.db.Rebind("UPDATE trips SET is_deleted = TRUE, date_updated = ? WHERE id = ?")
	if _, err := r.db.Exec(query, time.Now().UTC(), id); err != nil {
		return fmt.Errorf("не удалось удалить поездку: %w", err)
	}
	return nil
}

// TouchContentUpdate обновляет отметку последнего изменения маршрута поездки.
// Выполняется внутри транзакции, затрагивающей пункты маршрута.
func (r *TripRepository) TouchContentUpdate(q sqlx.Ext, tripID uuid.UUID, ts time.Time) error {
	query := q.Rebind("UPDATE trips SET last_content_update = ?, date_updated = ? WHERE id = ?")
	if _, err := q.Exec(query, ts, ts, tripID); err != nil {
		return fmt.Errorf("не удалось обновить отметку изменения маршрута: %w", err)
	}
	return nil
}
