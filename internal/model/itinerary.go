package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityKind - дискриминант полиморфной связи пункта маршрута с его активностью.
type ActivityKind string

const (
	KindExperience  ActivityKind = "experience"
	KindBreak       ActivityKind = "break"
	KindTravelEvent ActivityKind = "travelevent"
	KindMeal        ActivityKind = "meal"
	KindNote        ActivityKind = "note" // отсутствие реальной активности: пункт-заметка
)

// ItineraryItem представляет пункт маршрута поездки.
// ContentType и ActivityID образуют полиморфную ссылку на активность;
// оба поля пустые, если пункт является простой заметкой.
type ItineraryItem struct {
	ID            uuid.UUID     `db:"id" json:"id"`
	TripID        uuid.UUID     `db:"trip_id" json:"trip_id"`
	Day           time.Time     `db:"day" json:"-"`
	ActivityOrder int           `db:"activity_order" json:"activity_order"`
	StartTime     *string       `db:"start_time" json:"start_time"`
	EndTime       *string       `db:"end_time" json:"end_time"`
	Notes         *string       `db:"notes" json:"notes"`
	ContentType   *ActivityKind `db:"content_type" json:"-"`
	ActivityID    *uuid.UUID    `db:"activity_id" json:"activity_id"`
	DateCreated   time.Time     `db:"date_created" json:"-"`
	DateUpdated   time.Time     `db:"date_updated" json:"-"`
	IsDeleted     bool          `db:"is_deleted" json:"-"`
}

// Kind возвращает вид активности пункта; отсутствие тега означает заметку.
func (i *ItineraryItem) Kind() ActivityKind {
	if i.ContentType == nil || *i.ContentType == "" {
		return KindNote
	}
	return *i.ContentType
}

// Break представляет перерыв в локации. Строка принадлежит ровно одному пункту маршрута.
type Break struct {
	ID          uuid.UUID `db:"id" json:"id"`
	LocationID  uuid.UUID `db:"location_id" json:"location_id"`
	DateCreated time.Time `db:"date_created" json:"-"`
	DateUpdated time.Time `db:"date_updated" json:"-"`
	IsDeleted   bool      `db:"is_deleted" json:"-"`
}

// TravelType определяет тип перемещения.
type TravelType string

const (
	TravelCheckIn  TravelType = "check-in"
	TravelCheckOut TravelType = "check-out"
	TravelParkHop  TravelType = "park-hop"
	TravelOther    TravelType = "other-travel"
)

// ValidTravelType проверяет, входит ли значение в список допустимых типов перемещений.
func ValidTravelType(t TravelType) bool {
	switch t {
	case TravelCheckIn, TravelCheckOut, TravelParkHop, TravelOther:
		return true
	}
	return false
}

// TravelEvent представляет перемещение между двумя точками.
// Для каждой из точек заполняется ровно одно из двух полей:
// ссылка на локацию каталога либо произвольное текстовое название.
type TravelEvent struct {
	ID                 uuid.UUID  `db:"id" json:"id"`
	FromLocationID     *uuid.UUID `db:"from_location_id" json:"from_location_id"`
	ToLocationID       *uuid.UUID `db:"to_location_id" json:"to_location_id"`
	CustomFromLocation *string    `db:"custom_from_location" json:"custom_from_location"`
	CustomToLocation   *string    `db:"custom_to_location" json:"custom_to_location"`
	TravelType         TravelType `db:"travel_type" json:"travel_type"`
	DateCreated        time.Time  `db:"date_created" json:"-"`
	DateUpdated        time.Time  `db:"date_updated" json:"-"`
	IsDeleted          bool       `db:"is_deleted" json:"-"`
}

// MealType определяет тип приема пищи.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// ValidMealType проверяет, входит ли значение в список допустимых типов приема пищи.
func ValidMealType(t MealType) bool {
	switch t {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// Meal представляет прием пищи, привязанный к гастрономической активности каталога.
type Meal struct {
	ID               uuid.UUID `db:"id" json:"id"`
	MealExperienceID uuid.UUID `db:"meal_experience_id" json:"meal_experience_id"`
	MealType         MealType  `db:"meal_type" json:"meal_type"`
	DateCreated      time.Time `db:"date_created" json:"-"`
	DateUpdated      time.Time `db:"date_updated" json:"-"`
	IsDeleted        bool      `db:"is_deleted" json:"-"`
}

// Activity - закрытая сумма по пяти видам активности пункта маршрута.
// Заполнено ровно одно поле, соответствующее Kind; для KindNote все поля пустые.
type Activity struct {
	Kind        ActivityKind
	Experience  *Experience
	Break       *Break
	TravelEvent *TravelEvent
	Meal        *Meal
}
