package repository

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jredd/mouse-tracks-backend/internal/model"
)

// ItineraryRepository обеспечивает доступ к пунктам маршрута и принадлежащим им
// строкам активностей (Break, TravelEvent, Meal). Методы записи принимают sqlx.Ext,
// чтобы выполняться внутри транзакции вызывающего сервиса.
type ItineraryRepository struct {
	db *sqlx.DB
}

// NewItineraryRepository создает новый репозиторий маршрутов.
func NewItineraryRepository(db *sqlx.DB) *ItineraryRepository {
	return &ItineraryRepository{db: db}
}

// --- Пункты маршрута ---

// GetItem возвращает пункт маршрута по идентификатору.
func (r *ItineraryRepository) GetItem(id uuid.UUID) (*model.ItineraryItem, error) {
	var item model.ItineraryItem
	err := r.db.Get(&item, r.db.Rebind("SELECT * FROM itinerary_items WHERE id = ? AND is_deleted = FALSE"), id)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ListByTrip возвращает пункты маршрута поездки в порядке следования по дням.
func (r *ItineraryRepository) ListByTrip(tripID uuid.UUID) ([]model.ItineraryItem, error) {
	items := []model.ItineraryItem{}
	err := r.db.Select(&items,
		r.db.Rebind(`SELECT * FROM itinerary_items WHERE trip_id = ? AND is_deleted = FALSE
		 ORDER BY day, activity_order`), tripID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении пунктов маршрута: %w", err)
	}
	return items, nil
}

// ListItemIDsByTrip возвращает идентификаторы живых пунктов маршрута поездки.
func (r *ItineraryRepository) ListItemIDsByTrip(tripID uuid.UUID) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	err := r.db.Select(&ids,
		r.db.Rebind("SELECT id FROM itinerary_items WHERE trip_id = ? AND is_deleted = FALSE"), tripID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении идентификаторов пунктов: %w", err)
	}
	return ids, nil
}

// InsertItem добавляет пункт маршрута. Заполняет ID и служебные отметки времени.
func (r *ItineraryRepository) InsertItem(q sqlx.Ext, item *model.ItineraryItem) error {
	item.ID = uuid.New()
	now := time.Now().UTC()
	item.DateCreated = now
	item.DateUpdated = now
	query := q.Rebind(`INSERT INTO itinerary_items (id, trip_id, day, activity_order, start_time, end_time, notes, content_type, activity_id, date_created, date_updated, is_deleted)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, FALSE)`)
	_, err := q.Exec(query, item.ID, item.TripID, item.Day, item.ActivityOrder,
		item.StartTime, item.EndTime, item.Notes, item.ContentType, item.ActivityID, now, now)
	if err != nil {
		return fmt.Errorf("не удалось создать пункт маршрута: %w", err)
	}
	return nil
}

// UpdateItem обновляет изменяемые поля пункта маршрута. Полиморфная ссылка не меняется.
func (r *ItineraryRepository) UpdateItem(q sqlx.Ext, item *model.ItineraryItem) error {
	query := q.Rebind(`UPDATE itinerary_items SET day = ?, activity_order = ?, start_time = ?, end_time = ?, notes = ?, date_updated = ?
	          WHERE id = ? AND is_deleted = FALSE`)
	_, err := q.Exec(query, item.Day, item.ActivityOrder, item.StartTime, item.EndTime,
		item.Notes, time.Now().UTC(), item.ID)
	if err != nil {
		return fmt.Errorf("не удалось обновить пункт маршрута: %w", err)
	}
	return nil
}

// SoftDeleteItem помечает пункт маршрута удаленным.
func (r *ItineraryRepository) SoftDeleteItem(q sqlx.Ext, id uuid.UUID, ts time.Time) error {
	query := q.Rebind("UPDATE itinerary_items SET is_deleted = TRUE, date_updated = ? WHERE id = ?")
	if _, err := q.Exec(query, ts, id); err != nil {
		return fmt.Errorf("не удалось удалить пункт маршрута: %w", err)
	}
	return nil
}

// --- Перерывы ---

// GetBreak возвращает перерыв по идентификатору.
func (r *ItineraryRepository) GetBreak(id uuid.UUID) (*model.Break, error) {
	var b model.Break
	err := r.db.Get(&b, r.db.Rebind("SELECT * FROM breaks WHERE id = ? AND is_deleted = FALSE"), id)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// InsertBreak добавляет строку перерыва. Заполняет ID.
func (r *ItineraryRepository) InsertBreak(q sqlx.Ext, b *model.Break) error {
	b.ID = uuid.New()
	now := time.Now().UTC()
	query := q.Rebind(`INSERT INTO breaks (id, location_id, date_created, date_updated, is_deleted)
	          VALUES (?, ?, ?, ?, FALSE)`)
	if _, err := q.Exec(query, b.ID, b.LocationID, now, now); err != nil {
		return fmt.Errorf("не удалось создать перерыв: %w", err)
	}
	return nil
}

// UpdateBreak обновляет строку перерыва на месте.
func (r *ItineraryRepository) UpdateBreak(q sqlx.Ext, b *model.Break) error {
	query := q.Rebind("UPDATE breaks SET location_id = ?, date_updated = ? WHERE id = ? AND is_deleted = FALSE")
	if _, err := q.Exec(query, b.LocationID, time.Now().UTC(), b.ID); err != nil {
		return fmt.Errorf("не удалось обновить перерыв: %w", err)
	}
	return nil
}

// SoftDeleteBreak помечает перерыв удаленным.
func (r *ItineraryRepository) SoftDeleteBreak(q sqlx.Ext, id uuid.UUID, ts time.Time) error {
	query := q.Rebind("UPDATE breaks SET is_deleted = TRUE, date_updated = ? WHERE id = ?")
	if _, err := q.Exec(query, ts, id); err != nil {
		return fmt.Errorf("не удалось удалить перерыв: %w", err)
	}
	return nil
}

// --- Перемещения ---

// GetTravelEvent возвращает перемещение по идентификатору.
func (r *ItineraryRepository) GetTravelEvent(id uuid.UUID) (*model.TravelEvent, error) {
	var ev model.TravelEvent
	err := r.db.Get(&ev, r.db.Rebind("SELECT * FROM travel_events WHERE id = ? AND is_deleted = FALSE"), id)
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

// InsertTravelEvent добавляет строку перемещения. Заполняет ID.
func (r *ItineraryRepository) InsertTravelEvent(q sqlx.Ext, ev *model.TravelEvent) error {
	ev.ID = uuid.New()
	now := time.Now().UTC()
	query := q.Rebind(`INSERT INTO travel_events (id, from_location_id, to_location_id, custom_from_location, custom_to_location, travel_type, date_created, date_updated, is_deleted)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, FALSE)`)
	_, err := q.Exec(query, ev.ID, ev.FromLocationID, ev.ToLocationID,
		ev.CustomFromLocation, ev.CustomToLocation, ev.TravelType, now, now)
	if err != nil {
		return fmt.Errorf("не удалось создать перемещение: %w", err)
	}
	return nil
}

// UpdateTravelEvent обновляет строку перемещения на месте.
func (r *ItineraryRepository) UpdateTravelEvent(q sqlx.Ext, ev *model.TravelEvent) error {
	query := q.Rebind(`UPDATE travel_events SET from_location_id = ?, to_location_id = ?, custom_from_location = ?, custom_to_location = ?, travel_type = ?, date_updated = ?
	          WHERE id = ? AND is_deleted = FALSE`)
	_, err := q.Exec(query, ev.FromLocationID, ev.ToLocationID, ev.CustomFromLocation,
		ev.CustomToLocation, ev.TravelType, time.Now().UTC(), ev.ID)
	if err != nil {
		return fmt.Errorf("не удалось обновить перемещение: %w", err)
	}
	return nil
}

// SoftDeleteTravelEvent помечает перемещение удаленным.
func (r *ItineraryRepository) SoftDeleteTravelEvent(q sqlx.Ext, id uuid.UUID, ts time.Time) error {
	query := q.Rebind("UPDATE travel_events SET is_deleted = TRUE, date_updated = ? WHERE id = ?")
	if _, err := q.Exec(query, ts, id); err != nil {
		return fmt.Errorf("не удалось удалить перемещение: %w", err)
	}
	return nil
}

// --- Приемы пищи ---

// GetMeal возвращает прием пищи по идентификатору.
func (r *ItineraryRepository) GetMeal(id uuid.UUID) (*model.Meal, error) {
	var m model.Meal
	err := r.db.Get(&m, r.db.Rebind("SELECT * FROM meals WHERE id = ? AND is_deleted = FALSE"), id)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// InsertMeal добавляет строку приема пищи. Заполняет ID.
func (r *ItineraryRepository) InsertMeal(q sqlx.Ext, m *model.Meal) error {
	m.ID = uuid.New()
	now := time.Now().UTC()
	query := q.Rebind(`INSERT INTO meals (id, meal_experience_id, meal_type, date_created, date_updated, is_deleted)
	          VALUES (?, ?, ?, ?, ?, FALSE)`)
	if _, err := q.Exec(query, m.ID, m.MealExperienceID, m.MealType, now, now); err != nil {
		return fmt.Errorf("не удалось создать прием пищи: %w", err)
	}
	return nil
}

// UpdateMeal обновляет строку приема пищи на месте.
func (r *ItineraryRepository) UpdateMeal(q sqlx.Ext, m *model.Meal) error {
	query := q.Rebind("UPDATE meals SET meal_experience_id = ?, meal_type = ?, date_updated = ? WHERE id = ? AND is_deleted = FALSE")
	if _, err := q.Exec(query, m.MealExperienceID, m.MealType, time.Now().UTC(), m.ID); err != nil {
		return fmt.Errorf("не удалось обновить прием пищи: %w", err)
	}
	return nil
}

// SoftDeleteMeal помечает прием пищи удаленным.
func (r *ItineraryRepository) SoftDeleteMeal(q sqlx.Ext, id uuid.UUID, ts time.Time) error {
	query := q.Rebind("UPDATE meals SET is_deleted = TRUE, date_updated = ? WHERE id = ?")
	if _, err := q.Exec(query, ts, id); err != nil {
		return fmt.Errorf("не удалось удалить прием пищи: %w", err)
	}
	return nil
}
