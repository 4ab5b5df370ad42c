package service

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jredd/mouse-tracks-backend/internal/apperr"
	"github.com/jredd/mouse-tracks-backend/internal/model"
	"github.com/jredd/mouse-tracks-backend/internal/repository"
)

const dayLayout = "2006-01-02"
const timeLayout = "15:04"

// maxNotesLen ограничивает свободный текст пункта (колонка VARCHAR(800)).
const maxNotesLen = 800

// ItemInput - входные данные пункта маршрута. Указатели отличают
// отсутствующее поле от пустого значения при частичном обновлении.
type ItemInput struct {
	ID                  *uuid.UUID     `json:"id,omitempty"`
	Day                 *string        `json:"day,omitempty"`
	ActivityOrder       *int           `json:"activity_order,omitempty"`
	StartTime           *string        `json:"start_time,omitempty"`
	EndTime             *string        `json:"end_time,omitempty"`
	Notes               *string        `json:"notes,omitempty"`
	ActivityContentType *string        `json:"activity_content_type,omitempty"`
	ActivityID          *uuid.UUID     `json:"activity_id,omitempty"`
	Activity            *ActivityInput `json:"activity,omitempty"`
}

// ItemView - представление пункта маршрута с развернутой активностью.
// Для заметки Activity равно nil, а тег отображается как "note".
type ItemView struct {
	ID                  uuid.UUID          `json:"id"`
	TripID              uuid.UUID          `json:"trip_id"`
	Day                 string             `json:"day"`
	ActivityOrder       int                `json:"activity_order"`
	StartTime           *string            `json:"start_time"`
	EndTime             *string            `json:"end_time"`
	Notes               *string            `json:"notes"`
	ActivityContentType model.ActivityKind `json:"activity_content_type"`
	ActivityID          *uuid.UUID         `json:"activity_id"`
	Activity            any                `json:"activity"`
}

// BreakView - представление перерыва с развернутой локацией.
type BreakView struct {
	ID       uuid.UUID      `json:"id"`
	Location model.Location `json:"location"`
}

// TravelEventView - представление перемещения с развернутыми локациями точек.
type TravelEventView struct {
	ID                 uuid.UUID        `json:"id"`
	FromLocation       *model.Location  `json:"from_location"`
	ToLocation         *model.Location  `json:"to_location"`
	CustomFromLocation *string          `json:"custom_from_location"`
	CustomToLocation   *string          `json:"custom_to_location"`
	TravelType         model.TravelType `json:"travel_type"`
}

// MealView - представление приема пищи с развернутой активностью каталога.
type MealView struct {
	ID             uuid.UUID        `json:"id"`
	MealExperience model.Experience `json:"meal_experience"`
	MealType       model.MealType   `json:"meal_type"`
}

// activityRefs - строки каталога, на которые ссылается активность.
// Загружаются до открытия транзакции, поэтому транзакция состоит из одних
// записей, а ответ собирается без обращений к базе.
type activityRefs struct {
	breakLocation  *model.Location
	fromLocation   *model.Location
	toLocation     *model.Location
	mealExperience *model.Experience
}

// ItineraryService реализует операции над пунктами маршрута:
// одиночные и пакетные создание, обновление и удаление.
// Чтения и валидация выполняются до открытия транзакции; сама транзакция
// содержит только записи, и при любой ошибке ни одна строка не сохраняется.
type ItineraryService struct {
	db       *sqlx.DB
	registry *ActivityRegistry
	tripRepo *repository.TripRepository
	itemRepo *repository.ItineraryRepository
	catalog  *repository.CatalogRepository
}

// NewItineraryService создает новый сервис маршрутов.
func NewItineraryService(db *sqlx.DB, registry *ActivityRegistry, tripRepo *repository.TripRepository,
	itemRepo *repository.ItineraryRepository, catalog *repository.CatalogRepository) *ItineraryService {
	return &ItineraryService{db: db, registry: registry, tripRepo: tripRepo, itemRepo: itemRepo, catalog: catalog}
}

// authorizeTrip загружает поездку и проверяет права вызывающего.
func (s *ItineraryService) authorizeTrip(caller *model.User, tripID uuid.UUID) (*model.Trip, error) {
	trip, err := s.tripRepo.GetByID(tripID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("поездка")
		}
		return nil, err
	}
	if !trip.OwnedBy(caller.ID) && !caller.IsPrivileged() {
		return nil, apperr.ErrForbidden
	}
	return trip, nil
}

// getTripItem загружает пункт и проверяет его принадлежность поездке из пути запроса.
func (s *ItineraryService) getTripItem(tripID, itemID uuid.UUID) (*model.ItineraryItem, error) {
	item, err := s.itemRepo.GetItem(itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("пункт маршрута")
		}
		return nil, err
	}
	if item.TripID != tripID {
		return nil, apperr.ErrOwnershipMismatch
	}
	return item, nil
}

// Get возвращает пункт маршрута с развернутой активностью.
func (s *ItineraryService) Get(caller *model.User, tripID, itemID uuid.UUID) (*ItemView, error) {
	if _, err := s.authorizeTrip(caller, tripID); err != nil {
		return nil, err
	}
	item, err := s.getTripItem(tripID, itemID)
	if err != nil {
		return nil, err
	}
	act, err := s.resolveActivity(item)
	if err != nil {
		return nil, err
	}
	refs, err := s.resolveRefs(act)
	if err != nil {
		return nil, err
	}
	return renderItem(item, act, refs), nil
}

// List возвращает пункты маршрута поездки в порядке следования.
func (s *ItineraryService) List(caller *model.User, tripID uuid.UUID) ([]ItemView, error) {
	if _, err := s.authorizeTrip(caller, tripID); err != nil {
		return nil, err
	}
	items, err := s.itemRepo.ListByTrip(tripID)
	if err != nil {
		return nil, err
	}
	views := make([]ItemView, 0, len(items))
	for i := range items {
		act, err := s.resolveActivity(&items[i])
		if err != nil {
			return nil, err
		}
		refs, err := s.resolveRefs(act)
		if err != nil {
			return nil, err
		}
		views = append(views, *renderItem(&items[i], act, refs))
	}
	return views, nil
}

// Create валидирует и сохраняет новый пункт маршрута вместе со строкой его
// активности, затем обновляет отметку изменения поездки. Все записи атомарны.
func (s *ItineraryService) Create(caller *model.User, tripID uuid.UUID, in *ItemInput) (*ItemView, error) {
	trip, err := s.authorizeTrip(caller, tripID)
	if err != nil {
		return nil, err
	}
	kind, act, err := s.validateCreate(in)
	if err != nil {
		return nil, err
	}
	refs, err := s.resolveRefs(act)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return nil, err
	}
	item, err := s.createTx(tx, trip, in, kind, act)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := s.tripRepo.TouchContentUpdate(tx, trip.ID, time.Now().UTC()); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return renderItem(item, act, refs), nil
}

// Update обновляет пункт маршрута. Для заметки меняются только текстовые поля,
// для активности каталога данные активности неизменяемы, для остальных видов
// переданные поля активности накладываются на существующую строку.
func (s *ItineraryService) Update(caller *model.User, tripID, itemID uuid.UUID, in *ItemInput) (*ItemView, error) {
	trip, err := s.authorizeTrip(caller, tripID)
	if err != nil {
		return nil, err
	}
	item, err := s.getTripItem(tripID, itemID)
	if err != nil {
		return nil, err
	}
	act, err := s.prepareUpdate(item, in)
	if err != nil {
		return nil, err
	}
	refs, err := s.resolveRefs(act)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return nil, err
	}
	if err := s.applyUpdate(tx, item, in, act); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := s.tripRepo.TouchContentUpdate(tx, trip.ID, time.Now().UTC()); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return renderItem(item, act, refs), nil
}

// Delete удаляет пункт маршрута и каскадно принадлежащую ему строку активности.
// Активность каталога (experience) каскадом не затрагивается.
func (s *ItineraryService) Delete(caller *model.User, tripID, itemID uuid.UUID) error {
	trip, err := s.authorizeTrip(caller, tripID)
	if err != nil {
		return err
	}
	item, err := s.getTripItem(tripID, itemID)
	if err != nil {
		return err
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	if err := s.deleteTx(tx, item, now); err != nil {
		tx.Rollback()
		return err
	}
	if err := s.tripRepo.TouchContentUpdate(tx, trip.ID, now); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// BulkCreate создает каждый пункт списка по правилам Create.
// Валидация выполняется до записи; при любой ошибке не сохраняется ни один пункт.
func (s *ItineraryService) BulkCreate(caller *model.User, tripID uuid.UUID, ins []ItemInput) ([]ItemView, error) {
	trip, err := s.authorizeTrip(caller, tripID)
	if err != nil {
		return nil, err
	}
	kinds := make([]model.ActivityKind, len(ins))
	acts := make([]*model.Activity, len(ins))
	refs := make([]*activityRefs, len(ins))
	for i := range ins {
		kind, act, err := s.validateCreate(&ins[i])
		if err != nil {
			return nil, err
		}
		r, err := s.resolveRefs(act)
		if err != nil {
			return nil, err
		}
		kinds[i] = kind
		acts[i] = act
		refs[i] = r
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return nil, err
	}
	items := make([]*model.ItineraryItem, len(ins))
	for i := range ins {
		item, err := s.createTx(tx, trip, &ins[i], kinds[i], acts[i])
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		items[i] = item
	}
	if err := s.tripRepo.TouchContentUpdate(tx, trip.ID, time.Now().UTC()); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	views := make([]ItemView, 0, len(items))
	for i := range items {
		views = append(views, *renderItem(items[i], acts[i], refs[i]))
	}
	return views, nil
}

// BulkUpdate обновляет каждый пункт списка по правилам Update.
// Каждый элемент обязан нести свой идентификатор; вся партия валидируется
// до открытия транзакции и записывается атомарно.
func (s *ItineraryService) BulkUpdate(caller *model.User, tripID uuid.UUID, ins []ItemInput) ([]ItemView, error) {
	trip, err := s.authorizeTrip(caller, tripID)
	if err != nil {
		return nil, err
	}
	items := make([]*model.ItineraryItem, len(ins))
	acts := make([]*model.Activity, len(ins))
	refs := make([]*activityRefs, len(ins))
	for i := range ins {
		if ins[i].ID == nil {
			return nil, apperr.Field(apperr.ErrInvalidArgument, "id", "каждый элемент пакета обязан нести идентификатор")
		}
		item, err := s.getTripItem(tripID, *ins[i].ID)
		if err != nil {
			if errors.Is(err, apperr.ErrOwnershipMismatch) {
				return nil, apperr.NotFound("пункт маршрута")
			}
			return nil, err
		}
		act, err := s.prepareUpdate(item, &ins[i])
		if err != nil {
			return nil, err
		}
		r, err := s.resolveRefs(act)
		if err != nil {
			return nil, err
		}
		items[i] = item
		acts[i] = act
		refs[i] = r
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return nil, err
	}
	for i := range ins {
		if err := s.applyUpdate(tx, items[i], &ins[i], acts[i]); err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	if err := s.tripRepo.TouchContentUpdate(tx, trip.ID, time.Now().UTC()); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	views := make([]ItemView, 0, len(items))
	for i := range items {
		views = append(views, *renderItem(items[i], acts[i], refs[i]))
	}
	return views, nil
}

// BulkDelete удаляет перечисленные пункты поездки. Весь набор идентификаторов
// обязан быть подмножеством живых пунктов поездки, иначе партия отклоняется.
func (s *ItineraryService) BulkDelete(caller *model.User, tripID uuid.UUID, ids []uuid.UUID) error {
	trip, err := s.authorizeTrip(caller, tripID)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return apperr.Field(apperr.ErrInvalidArgument, "ids", "список идентификаторов пуст")
	}
	live, err := s.itemRepo.ListItemIDsByTrip(tripID)
	if err != nil {
		return err
	}
	liveSet := make(map[uuid.UUID]bool, len(live))
	for _, id := range live {
		liveSet[id] = true
	}
	items := make([]*model.ItineraryItem, 0, len(ids))
	for _, id := range ids {
		if !liveSet[id] {
			return apperr.Field(apperr.ErrInvalidArgument, "ids",
				fmt.Sprintf("пункт %s не принадлежит поездке", id))
		}
		item, err := s.getTripItem(tripID, id)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	for _, item := range items {
		if err := s.deleteTx(tx, item, now); err != nil {
			tx.Rollback()
			return err
		}
	}
	if err := s.tripRepo.TouchContentUpdate(tx, trip.ID, now); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// validateCreate проверяет входные данные создания пункта и собирает активность.
func (s *ItineraryService) validateCreate(in *ItemInput) (model.ActivityKind, *model.Activity, error) {
	kind, err := s.registry.ResolveKind(in.ActivityContentType)
	if err != nil {
		return "", nil, err
	}
	if in.Day == nil {
		return "", nil, apperr.Field(apperr.ErrInvalidArgument, "day", "день обязателен")
	}
	if _, err := time.Parse(dayLayout, *in.Day); err != nil {
		return "", nil, apperr.Field(apperr.ErrInvalidArgument, "day", "ожидается дата в формате ГГГГ-ММ-ДД")
	}
	if in.ActivityOrder == nil {
		return "", nil, apperr.Field(apperr.ErrInvalidArgument, "activity_order", "порядковый номер обязателен")
	}
	if err := validateTimes(in.StartTime, in.EndTime); err != nil {
		return "", nil, err
	}
	if err := validateNotes(in.Notes); err != nil {
		return "", nil, err
	}
	// Для видов, чья строка принадлежит пункту, готовый идентификатор при
	// создании не принимается: намерение было бы двусмысленным.
	if kind == model.KindBreak || kind == model.KindTravelEvent || kind == model.KindMeal {
		if in.ActivityID != nil {
			return "", nil, apperr.Field(apperr.ErrInvalidArgument, "activity_id",
				"идентификатор активности допустим только при обновлении")
		}
	}
	act, err := s.registry.BuildForCreate(kind, in.ActivityID, in.Activity, in.Notes)
	if err != nil {
		return "", nil, err
	}
	return kind, act, nil
}

// createTx сохраняет строку активности и пункт маршрута внутри транзакции.
func (s *ItineraryService) createTx(tx *sqlx.Tx, trip *model.Trip, in *ItemInput, kind model.ActivityKind, act *model.Activity) (*model.ItineraryItem, error) {
	var activityID *uuid.UUID
	switch kind {
	case model.KindExperience:
		activityID = &act.Experience.ID
	case model.KindBreak:
		if err := s.itemRepo.InsertBreak(tx, act.Break); err != nil {
			return nil, err
		}
		activityID = &act.Break.ID
	case model.KindTravelEvent:
		if err := s.itemRepo.InsertTravelEvent(tx, act.TravelEvent); err != nil {
			return nil, err
		}
		activityID = &act.TravelEvent.ID
	case model.KindMeal:
		if err := s.itemRepo.InsertMeal(tx, act.Meal); err != nil {
			return nil, err
		}
		activityID = &act.Meal.ID
	case model.KindNote:
		// у заметки нет строки активности
	}

	day, _ := time.Parse(dayLayout, *in.Day)
	item := &model.ItineraryItem{
		TripID:        trip.ID,
		Day:           day,
		ActivityOrder: *in.ActivityOrder,
		StartTime:     in.StartTime,
		EndTime:       in.EndTime,
		Notes:         in.Notes,
		ActivityID:    activityID,
	}
	if kind != model.KindNote {
		item.ContentType = &kind
	}
	if err := s.itemRepo.InsertItem(tx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// prepareUpdate накладывает изменения на пункт и его активность в памяти
// и валидирует результат. Выполняется до открытия транзакции, поэтому все
// чтения идут через пул, а транзакции остаются только записи.
// Возвращает актуальное значение активности для ответа.
func (s *ItineraryService) prepareUpdate(item *model.ItineraryItem, in *ItemInput) (*model.Activity, error) {
	kind := item.Kind()
	if in.ActivityContentType != nil {
		newKind, err := s.registry.ResolveKind(in.ActivityContentType)
		if err != nil {
			return nil, err
		}
		if newKind != kind {
			return nil, apperr.Field(apperr.ErrInvalidActivity, "activity_content_type",
				"вид активности пункта не меняется")
		}
	}
	if in.ActivityID != nil && (item.ActivityID == nil || *in.ActivityID != *item.ActivityID) {
		return nil, apperr.Field(apperr.ErrInvalidActivity, "activity_id", "ссылка на активность не меняется")
	}

	if in.Day != nil {
		day, err := time.Parse(dayLayout, *in.Day)
		if err != nil {
			return nil, apperr.Field(apperr.ErrInvalidArgument, "day", "ожидается дата в формате ГГГГ-ММ-ДД")
		}
		item.Day = day
	}
	if in.ActivityOrder != nil {
		item.ActivityOrder = *in.ActivityOrder
	}
	if in.StartTime != nil {
		item.StartTime = in.StartTime
	}
	if in.EndTime != nil {
		item.EndTime = in.EndTime
	}
	if err := validateTimes(item.StartTime, item.EndTime); err != nil {
		return nil, err
	}
	if in.Notes != nil {
		item.Notes = in.Notes
	}
	if err := validateNotes(item.Notes); err != nil {
		return nil, err
	}

	act, err := s.resolveActivity(item)
	if err != nil {
		return nil, err
	}
	switch kind {
	case model.KindNote:
		if in.Activity != nil {
			return nil, apperr.Field(apperr.ErrInvalidActivity, "activity", "заметка не может содержать данных активности")
		}
		if item.Notes == nil || *item.Notes == "" {
			return nil, apperr.Field(apperr.ErrInvalidActivity, "notes", "текст заметки не может быть пустым")
		}
	case model.KindExperience:
		if in.Activity != nil {
			return nil, apperr.Field(apperr.ErrInvalidActivity, "activity", "активность каталога неизменяема")
		}
	case model.KindBreak:
		if in.Activity != nil {
			if in.Activity.LocationID != nil {
				act.Break.LocationID = *in.Activity.LocationID
			}
			if err := s.registry.ValidateBreak(act.Break); err != nil {
				return nil, err
			}
		}
	case model.KindTravelEvent:
		if in.Activity != nil {
			patchTravelEvent(act.TravelEvent, in.Activity)
			if err := s.registry.ValidateTravelEvent(act.TravelEvent); err != nil {
				return nil, err
			}
		}
	case model.KindMeal:
		if in.Activity != nil {
			if in.Activity.MealExperienceID != nil {
				act.Meal.MealExperienceID = *in.Activity.MealExperienceID
			}
			if in.Activity.MealType != nil {
				act.Meal.MealType = model.MealType(*in.Activity.MealType)
			}
			if err := s.registry.ValidateMeal(act.Meal); err != nil {
				return nil, err
			}
		}
	}
	return act, nil
}

// applyUpdate записывает подготовленные изменения пункта и его активности
// внутри транзакции.
func (s *ItineraryService) applyUpdate(tx *sqlx.Tx, item *model.ItineraryItem, in *ItemInput, act *model.Activity) error {
	if in.Activity != nil {
		switch item.Kind() {
		case model.KindBreak:
			if err := s.itemRepo.UpdateBreak(tx, act.Break); err != nil {
				return err
			}
		case model.KindTravelEvent:
			if err := s.itemRepo.UpdateTravelEvent(tx, act.TravelEvent); err != nil {
				return err
			}
		case model.KindMeal:
			if err := s.itemRepo.UpdateMeal(tx, act.Meal); err != nil {
				return err
			}
		}
	}
	return s.itemRepo.UpdateItem(tx, item)
}

// deleteTx удаляет пункт и каскадно принадлежащую ему строку активности.
func (s *ItineraryService) deleteTx(tx *sqlx.Tx, item *model.ItineraryItem, now time.Time) error {
	if err := s.itemRepo.SoftDeleteItem(tx, item.ID, now); err != nil {
		return err
	}
	switch item.Kind() {
	case model.KindBreak:
		return s.itemRepo.SoftDeleteBreak(tx, *item.ActivityID, now)
	case model.KindTravelEvent:
		return s.itemRepo.SoftDeleteTravelEvent(tx, *item.ActivityID, now)
	case model.KindMeal:
		return s.itemRepo.SoftDeleteMeal(tx, *item.ActivityID, now)
	}
	// experience - общие данные каталога, note не имеет строки
	return nil
}

// patchTravelEvent накладывает переданные поля перемещения на существующие.
func patchTravelEvent(ev *model.TravelEvent, in *ActivityInput) {
	if in.FromLocationID != nil {
		ev.FromLocationID = in.FromLocationID
		ev.CustomFromLocation = nil
	}
	if in.CustomFromLocation != nil {
		ev.CustomFromLocation = in.CustomFromLocation
		ev.FromLocationID = nil
	}
	if in.ToLocationID != nil {
		ev.ToLocationID = in.ToLocationID
		ev.CustomToLocation = nil
	}
	if in.CustomToLocation != nil {
		ev.CustomToLocation = in.CustomToLocation
		ev.ToLocationID = nil
	}
	if in.TravelType != nil {
		ev.TravelType = model.TravelType(*in.TravelType)
	}
}

// resolveActivity загружает значение активности пункта по полиморфной ссылке.
func (s *ItineraryService) resolveActivity(item *model.ItineraryItem) (*model.Activity, error) {
	kind := item.Kind()
	if kind == model.KindNote {
		return &model.Activity{Kind: model.KindNote}, nil
	}
	if item.ActivityID == nil {
		return nil, apperr.Field(apperr.ErrInvalidActivity, "activity_id", "у пункта отсутствует ссылка на активность")
	}
	switch kind {
	case model.KindExperience:
		exp, err := s.catalog.GetExperience(*item.ActivityID)
		if err != nil {
			return nil, notFoundOr(err, "активность каталога")
		}
		return &model.Activity{Kind: kind, Experience: exp}, nil
	case model.KindBreak:
		b, err := s.itemRepo.GetBreak(*item.ActivityID)
		if err != nil {
			return nil, notFoundOr(err, "перерыв")
		}
		return &model.Activity{Kind: kind, Break: b}, nil
	case model.KindTravelEvent:
		ev, err := s.itemRepo.GetTravelEvent(*item.ActivityID)
		if err != nil {
			return nil, notFoundOr(err, "перемещение")
		}
		return &model.Activity{Kind: kind, TravelEvent: ev}, nil
	case model.KindMeal:
		m, err := s.itemRepo.GetMeal(*item.ActivityID)
		if err != nil {
			return nil, notFoundOr(err, "прием пищи")
		}
		return &model.Activity{Kind: kind, Meal: m}, nil
	}
	return nil, apperr.Field(apperr.ErrUnknownActivityKind, "activity_content_type", string(kind))
}

// resolveRefs загружает строки каталога, на которые ссылается активность.
func (s *ItineraryService) resolveRefs(act *model.Activity) (*activityRefs, error) {
	refs := &activityRefs{}
	switch act.Kind {
	case model.KindBreak:
		loc, err := s.catalog.GetLocation(act.Break.LocationID)
		if err != nil {
			return nil, notFoundOr(err, "локация каталога")
		}
		refs.breakLocation = loc
	case model.KindTravelEvent:
		if act.TravelEvent.FromLocationID != nil {
			loc, err := s.catalog.GetLocation(*act.TravelEvent.FromLocationID)
			if err != nil {
				return nil, notFoundOr(err, "локация каталога")
			}
			refs.fromLocation = loc
		}
		if act.TravelEvent.ToLocationID != nil {
			loc, err := s.catalog.GetLocation(*act.TravelEvent.ToLocationID)
			if err != nil {
				return nil, notFoundOr(err, "локация каталога")
			}
			refs.toLocation = loc
		}
	case model.KindMeal:
		exp, err := s.catalog.GetExperience(act.Meal.MealExperienceID)
		if err != nil {
			return nil, notFoundOr(err, "активность каталога")
		}
		refs.mealExperience = exp
	}
	return refs, nil
}

// renderItem собирает ответное представление пункта из заранее загруженных
// данных. К базе не обращается.
func renderItem(item *model.ItineraryItem, act *model.Activity, refs *activityRefs) *ItemView {
	view := &ItemView{
		ID:                  item.ID,
		TripID:              item.TripID,
		Day:                 item.Day.Format(dayLayout),
		ActivityOrder:       item.ActivityOrder,
		StartTime:           item.StartTime,
		EndTime:             item.EndTime,
		Notes:               item.Notes,
		ActivityContentType: act.Kind,
		ActivityID:          item.ActivityID,
	}
	switch act.Kind {
	case model.KindNote:
		view.Activity = nil
	case model.KindExperience:
		view.Activity = act.Experience
	case model.KindBreak:
		view.Activity = &BreakView{ID: act.Break.ID, Location: *refs.breakLocation}
	case model.KindTravelEvent:
		ev := act.TravelEvent
		view.Activity = &TravelEventView{
			ID:                 ev.ID,
			FromLocation:       refs.fromLocation,
			ToLocation:         refs.toLocation,
			CustomFromLocation: ev.CustomFromLocation,
			CustomToLocation:   ev.CustomToLocation,
			TravelType:         ev.TravelType,
		}
	case model.KindMeal:
		view.Activity = &MealView{ID: act.Meal.ID, MealExperience: *refs.mealExperience, MealType: act.Meal.MealType}
	}
	return view
}

// validateTimes проверяет формат времени начала и окончания.
func validateTimes(start, end *string) error {
	if start != nil && *start != "" {
		if _, err := time.Parse(timeLayout, *start); err != nil {
			return apperr.Field(apperr.ErrInvalidArgument, "start_time", "ожидается время в формате ЧЧ:ММ")
		}
	}
	if end != nil && *end != "" {
		if _, err := time.Parse(timeLayout, *end); err != nil {
			return apperr.Field(apperr.ErrInvalidArgument, "end_time", "ожидается время в формате ЧЧ:ММ")
		}
	}
	return nil
}

// validateNotes проверяет длину свободного текста пункта.
func validateNotes(notes *string) error {
	if notes != nil && utf8.RuneCountInString(*notes) > maxNotesLen {
		return apperr.Field(apperr.ErrInvalidArgument, "notes",
			fmt.Sprintf("текст не может быть длиннее %d символов", maxNotesLen))
	}
	return nil
}

// notFoundOr превращает sql.ErrNoRows в ошибку таксономии NotFound.
func notFoundOr(err error, entity string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound(entity)
	}
	return err
}
