package importer

import (
	"nouasseur-portal/database/model"
	"nouasseur-portal/logger"

	"gorm.io/gorm"
)

const (
	defaultEventStatus   = "active"
	defaultEventSortcode = 100
	importModUser        = "import"
)

// ImportEvents rebuilds the events table from a spreadsheet export. Rows
// without an event name are skipped. Returns the number of imported rows.
func ImportEvents(db *gorm.DB, path string) (int, error) {
	records, err := readSheet(path)
	if err != nil {
		return 0, err
	}

	events := make([]*model.Event, 0, len(records))
	skipped := 0
	for _, record := range records {
		event := eventFromRecord(record)
		if event.EventName == "" {
			skipped++
			continue
		}
		events = append(events, event)
	}
	if skipped > 0 {
		logger.Warningf("skipped %d event rows without a name", skipped)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.Event{}).Error; err != nil {
			return err
		}
		if len(events) == 0 {
			return nil
		}
		return tx.CreateInBatches(events, insertBatchSize).Error
	})
	if err != nil {
		return 0, err
	}
	logger.Infof("imported %d events", len(events))
	return len(events), nil
}

// eventFromRecord maps a spreadsheet row onto an Event. The sheets in
// circulation use several header spellings, so each field is resolved
// through its known aliases.
func eventFromRecord(r map[string]string) *model.Event {
	sortcode := parseInt(field(r, "event_sortcode", "eventsortcode", "sortcode"))
	if sortcode == nil {
		def := defaultEventSortcode
		sortcode = &def
	}
	status := field(r, "event_status", "eventstatus", "status")
	if status == "" {
		status = defaultEventStatus
	}
	return &model.Event{
		EventName:     field(r, "event_name", "eventname", "name"),
		EventSubtitle: field(r, "event_subtitle", "eventsubtitle", "subtitle"),
		EventLoc:      field(r, "event_loc", "eventloc", "location"),
		EventDatebeg:  parseDate(field(r, "event_datebeg", "eventdatebeg", "startdate")),
		EventDateend:  parseDate(field(r, "event_dateend", "eventdateend", "enddate")),
		EventTime:     field(r, "event_time", "eventtime", "time"),
		EventDesc:     field(r, "event_desc", "eventdesc", "description"),
		EventPhoto1:   field(r, "event_photo1", "eventphoto1", "photo1"),
		EventPhoto2:   field(r, "event_photo2", "eventphoto2", "photo2"),
		EventPhoto3:   field(r, "event_photo3", "eventphoto3", "photo3"),
		EventPhoto4:   field(r, "event_photo4", "eventphoto4", "photo4"),
		EventStatus:   status,
		EventModuser:  importModUser,
		EventSortcode: sortcode,
	}
}
