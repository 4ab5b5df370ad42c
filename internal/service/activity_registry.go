package service

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/jredd/mouse-tracks-backend/internal/apperr"
	"github.com/jredd/mouse-tracks-backend/internal/model"
	"github.com/jredd/mouse-tracks-backend/internal/repository"
)

// ActivityInput - данные активности из поля "activity" запроса.
// Какие поля обязательны, определяется видом активности.
type ActivityInput struct {
	LocationID         *uuid.UUID `json:"location_id,omitempty"`
	FromLocationID     *uuid.UUID `json:"from_location_id,omitempty"`
	ToLocationID       *uuid.UUID `json:"to_location_id,omitempty"`
	CustomFromLocation *string    `json:"custom_from_location,omitempty"`
	CustomToLocation   *string    `json:"custom_to_location,omitempty"`
	TravelType         *string    `json:"travel_type,omitempty"`
	MealExperienceID   *uuid.UUID `json:"meal_experience_id,omitempty"`
	MealType           *string    `json:"meal_type,omitempty"`
}

// ActivityRegistry сопоставляет символьный тег активности её виду и правилам
// валидации. Набор видов закрыт: experience, break, travelevent, meal и note.
type ActivityRegistry struct {
	catalog *repository.CatalogRepository
}

// NewActivityRegistry создает новый реестр активностей.
func NewActivityRegistry(catalog *repository.CatalogRepository) *ActivityRegistry {
	return &ActivityRegistry{catalog: catalog}
}

// ResolveKind определяет вид активности по тегу запроса.
// Отсутствующий или пустой тег означает заметку; явный тег всегда главнее,
// литеральный тег "note" эквивалентен отсутствию. Любой иной тег отклоняется.
func (r *ActivityRegistry) ResolveKind(tag *string) (model.ActivityKind, error) {
	if tag == nil || *tag == "" || model.ActivityKind(*tag) == model.KindNote {
		return model.KindNote, nil
	}
	switch kind := model.ActivityKind(*tag); kind {
	case model.KindExperience, model.KindBreak, model.KindTravelEvent, model.KindMeal:
		return kind, nil
	default:
		return "", apperr.Field(apperr.ErrUnknownActivityKind, "activity_content_type", *tag)
	}
}

// BuildForCreate проверяет входные данные активности и собирает её значение
// для последующего сохранения. Строка каталога (experience) никогда не
// создается, а только разрешается по идентификатору.
func (r *ActivityRegistry) BuildForCreate(kind model.ActivityKind, activityID *uuid.UUID, in *ActivityInput, notes *string) (*model.Activity, error) {
	switch kind {
	case model.KindNote:
		if in != nil {
			return nil, apperr.Field(apperr.ErrInvalidActivity, "activity", "заметка не может содержать данных активности")
		}
		if activityID != nil {
			return nil, apperr.Field(apperr.ErrInvalidActivity, "activity_id", "заметка не может ссылаться на активность")
		}
		if notes == nil || *notes == "" {
			return nil, apperr.Field(apperr.ErrInvalidActivity, "notes", "текст заметки не может быть пустым")
		}
		return &model.Activity{Kind: model.KindNote}, nil

	case model.KindExperience:
		if in != nil {
			return nil, apperr.Field(apperr.ErrInvalidActivity, "activity", "активность каталога задается только идентификатором")
		}
		if activityID == nil {
			return nil, apperr.Field(apperr.ErrInvalidActivity, "activity_id", "требуется идентификатор активности каталога")
		}
		exp, err := r.catalog.GetExperience(*activityID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, apperr.NotFound("активность каталога")
			}
			return nil, err
		}
		return &model.Activity{Kind: model.KindExperience, Experience: exp}, nil

	case model.KindBreak:
		if in == nil || in.LocationID == nil {
			return nil, apperr.Field(apperr.ErrInvalidActivity, "activity.location_id", "требуется локация перерыва")
		}
		b := &model.Break{LocationID: *in.LocationID}
		if err := r.ValidateBreak(b); err != nil {
			return nil, err
		}
		return &model.Activity{Kind: model.KindBreak, Break: b}, nil

	case model.KindTravelEvent:
		if in == nil {
			return nil, apperr.Field(apperr.ErrInvalidActivity, "activity", "требуются данные перемещения")
		}
		ev := &model.TravelEvent{
			FromLocationID:     in.FromLocationID,
			ToLocationID:       in.ToLocationID,
			CustomFromLocation: in.CustomFromLocation,
			CustomToLocation:   in.CustomToLocation,
		}
		if in.TravelType != nil {
			ev.TravelType = model.TravelType(*in.TravelType)
		}
		if err := r.ValidateTravelEvent(ev); err != nil {
			return nil, err
		}
		return &model.Activity{Kind: model.KindTravelEvent, TravelEvent: ev}, nil

	case model.KindMeal:
		if in == nil || in.MealExperienceID == nil {
			return nil, apperr.Field(apperr.ErrInvalidActivity, "activity.meal_experience_id", "требуется гастрономическая активность каталога")
		}
		m := &model.Meal{MealExperienceID: *in.MealExperienceID}
		if in.MealType != nil {
			m.MealType = model.MealType(*in.MealType)
		}
		if err := r.ValidateMeal(m); err != nil {
			return nil, err
		}
		return &model.Activity{Kind: model.KindMeal, Meal: m}, nil
	}
	return nil, apperr.Field(apperr.ErrUnknownActivityKind, "activity_content_type", string(kind))
}

// ValidateBreak проверяет перерыв: локация обязана существовать в каталоге.
func (r *ActivityRegistry) ValidateBreak(b *model.Break) error {
	ok, err := r.catalog.LocationExists(b.LocationID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("локация каталога")
	}
	return nil
}

// ValidateTravelEvent проверяет перемещение: для каждой точки должно быть
// заполнено ровно одно из двух полей, тип перемещения обязателен, а ссылки
// на локации должны существовать в каталоге.
func (r *ActivityRegistry) ValidateTravelEvent(ev *model.TravelEvent) error {
	fromCustom := ev.CustomFromLocation != nil && *ev.CustomFromLocation != ""
	if (ev.FromLocationID != nil) == fromCustom {
		return apperr.Field(apperr.ErrInvalidActivity, "activity.from_location",
			"должно быть заполнено ровно одно из полей from_location_id и custom_from_location")
	}
	toCustom := ev.CustomToLocation != nil && *ev.CustomToLocation != ""
	if (ev.ToLocationID != nil) == toCustom {
		return apperr.Field(apperr.ErrInvalidActivity, "activity.to_location",
			"должно быть заполнено ровно одно из полей to_location_id и custom_to_location")
	}
	if !model.ValidTravelType(ev.TravelType) {
		return apperr.Field(apperr.ErrInvalidActivity, "activity.travel_type", "недопустимый тип перемещения")
	}
	for field, id := range map[string]*uuid.UUID{
		"activity.from_location_id": ev.FromLocationID,
		"activity.to_location_id":   ev.ToLocationID,
	} {
		if id == nil {
			continue
		}
		ok, err := r.catalog.LocationExists(*id)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.Field(apperr.ErrNotFound, field, "локация каталога не найдена")
		}
	}
	return nil
}

// ValidateMeal проверяет прием пищи: активность каталога обязана существовать,
// тип приема пищи должен входить в список допустимых.
func (r *ActivityRegistry) ValidateMeal(m *model.Meal) error {
	if !model.ValidMealType(m.MealType) {
		return apperr.Field(apperr.ErrInvalidActivity, "activity.meal_type", "недопустимый тип приема пищи")
	}
	ok, err := r.catalog.ExperienceExists(m.MealExperienceID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("активность каталога")
	}
	return nil
}
