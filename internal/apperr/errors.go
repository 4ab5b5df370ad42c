// Package apperr определяет таксономию ошибок предметной области.
// Ошибки валидации привязываются к конкретному полю запроса и никогда
// не проглатываются молча; повторов на стороне сервера не предусмотрено.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownActivityKind - тег активности не входит в число поддерживаемых.
	ErrUnknownActivityKind = errors.New("неизвестный тип активности")
	// ErrInvalidActivity - данные активности не соответствуют правилам её вида.
	ErrInvalidActivity = errors.New("некорректные данные активности")
	// ErrNotFound - запрошенный объект не существует или удален.
	ErrNotFound = errors.New("объект не найден")
	// ErrOwnershipMismatch - поездка в пути запроса не совпадает с поездкой объекта.
	ErrOwnershipMismatch = errors.New("объект не принадлежит указанной поездке")
	// ErrForbidden - у вызывающего нет прав на операцию.
	ErrForbidden = errors.New("доступ запрещен")
	// ErrInvalidArgument - запрос сформирован некорректно.
	ErrInvalidArgument = errors.New("некорректный аргумент запроса")
)

// FieldError - структурированная ошибка, привязанная к полю запроса.
// Разворачивается в один из сентинелов таксономии, чтобы вызывающий код
// мог проверять вид ошибки через errors.Is.
type FieldError struct {
	Kind    error  // сентинел таксономии
	Field   string // поле запроса, к которому относится ошибка
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Kind.Error(), e.Field, e.Message)
}

func (e *FieldError) Unwrap() error {
	return e.Kind
}

// Field создает ошибку таксономии, привязанную к полю запроса.
func Field(kind error, field, message string) error {
	return &FieldError{Kind: kind, Field: field, Message: message}
}

// NotFound создает ошибку отсутствия объекта с указанием сущности.
func NotFound(entity string) error {
	return fmt.Errorf("%s: %w", entity, ErrNotFound)
}
