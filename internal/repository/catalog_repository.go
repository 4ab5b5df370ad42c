package repository

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jredd/mouse-tracks-backend/internal/model"
)

// CatalogRepository обеспечивает доступ к данным каталога:
// дестинациям, локациям, землям и активностям.
type CatalogRepository struct {
	db *sqlx.DB
}

// NewCatalogRepository создает новый репозиторий каталога.
func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// --- Дестинации ---

// CreateDestination добавляет новую дестинацию. Возвращает ID созданной записи.
func (r *CatalogRepository) CreateDestination(d *model.Destination) (uuid.UUID, error) {
	d.ID = uuid.New()
	now := time.Now().UTC()
	query := r.db.Rebind(`INSERT INTO destinations (id, name, date_created, date_updated, is_deleted)
	          VALUES (?, ?, ?, ?, FALSE)`)
	if _, err := r.db.Exec(query, d.ID, d.Name, now, now); err != nil {
		return uuid.Nil, fmt.Errorf("не удалось создать дестинацию: %w", err)
	}
	return d.ID, nil
}

// GetDestination возвращает дестинацию по идентификатору.
func (r *CatalogRepository) GetDestination(id uuid.UUID) (*model.Destination, error) {
	var d model.Destination
	err := r.db.Get(&d, r.db.Rebind("SELECT * FROM destinations WHERE id = ? AND is_deleted = FALSE"), id)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListDestinations возвращает все дестинации каталога.
func (r *CatalogRepository) ListDestinations() ([]model.Destination, error) {
	ds := []model.Destination{}
	err := r.db.Select(&ds, "SELECT * FROM destinations WHERE is_deleted = FALSE ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка дестинаций: %w", err)
	}
	return ds, nil
}

// DestinationNameTaken проверяет, занято ли имя дестинации.
func (r *CatalogRepository) DestinationNameTaken(name string) (bool, error) {
	var n int
	err := r.db.Get(&n, r.db.Rebind("SELECT COUNT(1) FROM destinations WHERE name = ? AND is_deleted = FALSE"), name)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// --- Локации ---

// CreateLocation добавляет новую локацию. Возвращает ID созданной записи.
func (r *CatalogRepository) CreateLocation(loc *model.Location) (uuid.UUID, error) {
	loc.ID = uuid.New()
	now := time.Now().UTC()
	query := r.db.Rebind(`INSERT INTO locations (id, name, location_type, destination_id, date_created, date_updated, is_deleted)
	          VALUES (?, ?, ?, ?, ?, ?, FALSE)`)
	if _, err := r.db.Exec(query, loc.ID, loc.Name, loc.LocationType, loc.DestinationID, now, now); err != nil {
		return uuid.Nil, fmt.Errorf("не удалось создать локацию: %w", err)
	}
	return loc.ID, nil
}

// GetLocation возвращает локацию по идентификатору.
func (r *CatalogRepository) GetLocation(id uuid.UUID) (*model.Location, error) {
	var loc model.Location
	err := r.db.Get(&loc, r.db.Rebind("SELECT * FROM locations WHERE id = ? AND is_deleted = FALSE"), id)
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

// ListLocationsByDestination возвращает локации указанной дестинации.
func (r *CatalogRepository) ListLocationsByDestination(destID uuid.UUID) ([]model.Location, error) {
	locs := []model.Location{}
	err := r.db.Select(&locs,
		r.db.Rebind("SELECT * FROM locations WHERE destination_id = ? AND is_deleted = FALSE ORDER BY name"), destID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка локаций: %w", err)
	}
	return locs, nil
}

// LocationExists проверяет существование локации каталога.
func (r *CatalogRepository) LocationExists(id uuid.UUID) (bool, error) {
	var n int
	err := r.db.Get(&n, r.db.Rebind("SELECT COUNT(1) FROM locations WHERE id = ? AND is_deleted = FALSE"), id)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// --- Земли ---

// CreateLand добавляет новую землю парка. Возвращает ID созданной записи.
func (r *CatalogRepository) CreateLand(land *model.Land) (uuid.UUID, error) {
	land.ID = uuid.New()
	now := time.Now().UTC()
	query := r.db.Rebind(`INSERT INTO lands (id, name, park_id, date_created, date_updated, is_deleted)
	          VALUES (?, ?, ?, ?, ?, FALSE)`)
	if _, err := r.db.Exec(query, land.ID, land.Name, land.ParkID, now, now); err != nil {
		return uuid.Nil, fmt.Errorf("не удалось создать землю: %w", err)
	}
	return land.ID, nil
}

// GetLand возвращает землю по идентификатору.
func (r *CatalogRepository) GetLand(id uuid.UUID) (*model.Land, error) {
	var land model.Land
	err := r.db.Get(&land, r.db.Rebind("SELECT * FROM lands WHERE id = ? AND is_deleted = FALSE"), id)
	if err != nil {
		return nil, err
	}
	return &land, nil
}

// ListLandsByPark возвращает земли указанного парка.
func (r *CatalogRepository) ListLandsByPark(parkID uuid.UUID) ([]model.Land, error) {
	lands := []model.Land{}
	err := r.db.Select(&lands,
		r.db.Rebind("SELECT * FROM lands WHERE park_id = ? AND is_deleted = FALSE ORDER BY name"), parkID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка земель: %w", err)
	}
	return lands, nil
}

// --- Активности ---

// CreateExperience добавляет новую активность каталога вместе со связями с локациями.
func (r *CatalogRepository) CreateExperience(exp *model.Experience) (uuid.UUID, error) {
	exp.ID = uuid.New()
	now := time.Now().UTC()
	tx, err := r.db.Beginx()
	if err != nil {
		return uuid.Nil, err
	}
	query := tx.Rebind(`INSERT INTO experiences (id, name, experience_type, land_id, destination_id, date_created, date_updated, is_deleted)
	          VALUES (?, ?, ?, ?, ?, ?, ?, FALSE)`)
	if _, err := tx.Exec(query, exp.ID, exp.Name, exp.ExperienceType, exp.LandID, exp.DestinationID, now, now); err != nil {
		tx.Rollback()
		return uuid.Nil, fmt.Errorf("не удалось создать активность: %w", err)
	}
	link := tx.Rebind("INSERT INTO experience_locations (experience_id, location_id) VALUES (?, ?)")
	for _, locID := range exp.LocationIDs {
		if _, err := tx.Exec(link, exp.ID, locID); err != nil {
			tx.Rollback()
			return uuid.Nil, fmt.Errorf("не удалось связать активность с локацией: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return uuid.Nil, err
	}
	return exp.ID, nil
}

// GetExperience возвращает активность по идентификатору вместе со списком её локаций.
func (r *CatalogRepository) GetExperience(id uuid.UUID) (*model.Experience, error) {
	var exp model.Experience
	err := r.db.Get(&exp, r.db.Rebind("SELECT * FROM experiences WHERE id = ? AND is_deleted = FALSE"), id)
	if err != nil {
		return nil, err
	}
	if err := r.loadExperienceLocations(&exp); err != nil {
		return nil, err
	}
	return &exp, nil
}

// ListExperiencesByLocation возвращает активности, доступные из указанной локации.
func (r *CatalogRepository) ListExperiencesByLocation(locID uuid.UUID) ([]model.Experience, error) {
	exps := []model.Experience{}
	err := r.db.Select(&exps,
		r.db.Rebind(`SELECT e.* FROM experiences e
		 JOIN experience_locations el ON el.experience_id = e.id
		 WHERE el.location_id = ? AND e.is_deleted = FALSE
		 ORDER BY e.name`), locID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка активностей: %w", err)
	}
	for i := range exps {
		if err := r.loadExperienceLocations(&exps[i]); err != nil {
			return nil, err
		}
	}
	return exps, nil
}

// ExperienceExists проверяет существование активности каталога.
func (r *CatalogRepository) ExperienceExists(id uuid.UUID) (bool, error) {
	var n int
	err := r.db.Get(&n, r.db.Rebind("SELECT COUNT(1) FROM experiences WHERE id = ? AND is_deleted = FALSE"), id)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *CatalogRepository) loadExperienceLocations(exp *model.Experience) error {
	ids := []uuid.UUID{}
	err := r.db.Select(&ids,
		r.db.Rebind("SELECT location_id FROM experience_locations WHERE experience_id = ?"), exp.ID)
	if err != nil {
		return fmt.Errorf("ошибка при получении локаций активности: %w", err)
	}
	exp.LocationIDs = ids
	return nil
}
