// Команда seed наполняет каталог демонстрационными данными и создает
// staff-пользователя. Повторный запуск безопасен: существующие строки не трогаются.
package main

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/jredd/mouse-tracks-backend/internal/config"
	"github.com/jredd/mouse-tracks-backend/internal/model"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Не удалось загрузить конфигурацию: %v", err)
	}
	db, err := sqlx.Connect("postgres", cfg.DSN())
	if err != nil {
		log.Fatalf("Не удалось подключиться к базе данных: %v", err)
	}
	now := time.Now().UTC()

	// Staff-пользователь для администрирования каталога
	adminID := uuid.New()
	db.Exec(`INSERT INTO users (id, email, first_name, last_name, is_staff, is_superuser, date_created, date_updated, is_deleted)
	         VALUES ($1, $2, $3, $4, TRUE, FALSE, $5, $5, FALSE) ON CONFLICT (email) DO NOTHING`,
		adminID, "admin@mousetracks.test", "Admin", "", now)

	destID := uuid.New()
	if _, err := db.Exec(`INSERT INTO destinations (id, name, date_created, date_updated, is_deleted)
	         VALUES ($1, $2, $3, $3, FALSE) ON CONFLICT (name) DO NOTHING`,
		destID, "Walt Disney World", now); err != nil {
		log.Fatalf("Не удалось создать дестинацию: %v", err)
	}
	// При повторном запуске берем уже существующий идентификатор
	if err := db.Get(&destID, "SELECT id FROM destinations WHERE name = $1", "Walt Disney World"); err != nil {
		log.Fatalf("Не удалось прочитать дестинацию: %v", err)
	}

	locations := []struct {
		name    string
		locType model.LocationType
	}{
		{"Magic Kingdom", model.LocationThemePark},
		{"EPCOT", model.LocationThemePark},
		{"Blizzard Beach", model.LocationWaterPark},
		{"Contemporary Resort", model.LocationResort},
		{"Disney Springs", model.LocationEntertainmentVenue},
	}
	for _, loc := range locations {
		if _, err := db.Exec(`INSERT INTO locations (id, name, location_type, destination_id, date_created, date_updated, is_deleted)
		         VALUES ($1, $2, $3, $4, $5, $5, FALSE) ON CONFLICT (name) DO NOTHING`,
			uuid.New(), loc.name, loc.locType, destID, now); err != nil {
			log.Fatalf("Не удалось создать локацию %q: %v", loc.name, err)
		}
	}

	var parkID uuid.UUID
	if err := db.Get(&parkID, "SELECT id FROM locations WHERE name = $1", "Magic Kingdom"); err != nil {
		log.Fatalf("Не удалось прочитать парк: %v", err)
	}
	landID := uuid.New()
	db.Exec(`INSERT INTO lands (id, name, park_id, date_created, date_updated, is_deleted)
	         VALUES ($1, $2, $3, $4, $4, FALSE)`, landID, "Fantasyland", parkID, now)

	experiences := []struct {
		name    string
		expType model.ExperienceType
	}{
		{"Space Mountain", model.ExperienceAttraction},
		{"Festival of Fantasy Parade", model.ExperienceEntertainment},
		{"Be Our Guest Restaurant", model.ExperienceRestaurant},
	}
	for _, exp := range experiences {
		expID := uuid.New()
		if _, err := db.Exec(`INSERT INTO experiences (id, name, experience_type, land_id, destination_id, date_created, date_updated, is_deleted)
		         VALUES ($1, $2, $3, NULL, NULL, $4, $4, FALSE) ON CONFLICT (name) DO NOTHING`,
			expID, exp.name, exp.expType, now); err != nil {
			log.Fatalf("Не удалось создать активность %q: %v", exp.name, err)
		}
		db.Exec(`INSERT INTO experience_locations (experience_id, location_id)
		         SELECT e.id, $1 FROM experiences e WHERE e.name = $2
		         ON CONFLICT DO NOTHING`, parkID, exp.name)
	}

	log.Println("Каталог заполнен демонстрационными данными.")
}
