package model

import (
	"time"

	"github.com/google/uuid"
)

// User представляет пользователя сервиса. Выпуск токенов выполняется внешним
// провайдером, здесь хранится только профиль и флаги прав.
type User struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Email       string    `db:"email" json:"email"`
	FirstName   string    `db:"first_name" json:"first_name"`
	LastName    string    `db:"last_name" json:"last_name"`
	IsStaff     bool      `db:"is_staff" json:"is_staff"`
	IsSuperuser bool      `db:"is_superuser" json:"is_superuser"`
	DateCreated time.Time `db:"date_created" json:"-"`
	DateUpdated time.Time `db:"date_updated" json:"-"`
	IsDeleted   bool      `db:"is_deleted" json:"-"`
}

// IsPrivileged сообщает, имеет ли пользователь расширенные права (staff или superuser).
func (u *User) IsPrivileged() bool {
	return u.IsStaff || u.IsSuperuser
}
