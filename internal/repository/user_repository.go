package repository

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jredd/mouse-tracks-backend/internal/model"
)

// UserRepository обеспечивает доступ к данным пользователей в базе данных.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository создаёт новый репозиторий пользователей.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create добавляет нового пользователя в базу. Возвращает ID созданного пользователя.
func (r *UserRepository) Create(user *model.User) (uuid.UUID, error) {
	user.ID = uuid.New()
	now := time.Now().UTC()
	query := r.db.Rebind(`INSERT INTO users (id, email, first_name, last_name, is_staff, is_superuser, date_created, date_updated, is_deleted)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, FALSE)`)
	_, err := r.db.Exec(query, user.ID, user.Email, user.FirstName, user.LastName, user.IsStaff, user.IsSuperuser, now, now)
	if err != nil {
		return uuid.Nil, fmt.Errorf("не удалось создать пользователя: %w", err)
	}
	return user.ID, nil
}

// GetByID возвращает пользователя по идентификатору.
func (r *UserRepository) GetByID(id uuid.UUID) (*model.User, error) {
	var user model.User
	err := r.db.Get(&user, r.db.Rebind("SELECT * FROM users WHERE id = ? AND is_deleted = FALSE"), id)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail ищет пользователя по email. Возвращает ошибку, если не найдено.
func (r *UserRepository) GetByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.Get(&user, r.db.Rebind("SELECT * FROM users WHERE email = ? AND is_deleted = FALSE"), email)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
