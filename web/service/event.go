package service

import (
	"fmt"
	"time"

	"nouasseur-portal/database/model"
	"nouasseur-portal/web/entity"

	"gorm.io/gorm"
)

// DefaultEventPageSize is the fixed page size of event listings.
const DefaultEventPageSize = 20

var eventSearchColumns = []string{
	"event_name", "event_subtitle", "event_loc", "event_desc",
}

type EventService struct {
	db *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{db: db}
}

// eventOrder buckets events so that upcoming ones (start date >= today) come
// first, then events without a date, then past ones. Within each bucket
// events sort ascending by start date with name as the tiebreaker.
func eventOrder(today time.Time) string {
	day := today.Format("2006-01-02")
	return fmt.Sprintf(
		"CASE WHEN event_datebeg >= '%s' THEN 0 WHEN event_datebeg IS NULL THEN 1 ELSE 2 END, "+
			"COALESCE(event_datebeg, '9999-12-31'), event_name", day)
}

// List returns one page of events in display order.
func (s *EventService) List(q ListQuery) ([]*model.Event, *entity.Pagination, error) {
	q = q.normalized(DefaultEventPageSize)
	scope := func() *gorm.DB {
		return applySearch(s.db.Model(&model.Event{}), q.Search, eventSearchColumns)
	}
	return paginate[*model.Event](q, scope, eventOrder(time.Now()))
}

// ListUpcoming returns at most limit events that have not yet started or
// carry no start date, soonest first. Used by the home page.
func (s *EventService) ListUpcoming(limit int) ([]*model.Event, error) {
	day := time.Now().Format("2006-01-02")
	var events []*model.Event
	err := s.db.Model(&model.Event{}).
		Where("event_datebeg >= ? OR event_datebeg IS NULL", day).
		Order("COALESCE(event_datebeg, '9999-12-31'), event_name").
		Limit(limit).
		Find(&events).Error
	return events, err
}

func (s *EventService) Get(id int) (*model.Event, error) {
	event := &model.Event{}
	if err := s.db.First(event, id).Error; err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) Create(event *model.Event) error {
	return s.db.Create(event).Error
}

// Update merges the non-zero fields of changes into the stored event and
// stamps the update time. Returns gorm.ErrRecordNotFound for an absent id.
func (s *EventService) Update(id int, changes *model.Event) (*model.Event, error) {
	event, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	changes.Id = 0
	changes.UpdatedAt = time.Now()
	if err := s.db.Model(event).Updates(changes).Error; err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *EventService) Delete(id int) error {
	result := s.db.Delete(&model.Event{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
