package store

import (
	"database/sql"

	"github.com/lib/pq"

	"statehouse/internal/civic/models"
	"statehouse/internal/query"
)

var eventBase = query.Select("opencivicdata_event e",
	"e.id", "e.name", "j.id", "j.name", "j.classification",
	"e.description", "e.classification", "e.start_date", "e.end_date", "e.all_day",
	"e.status", "e.upstream_id", "e.deleted", "l.name", "l.url", "e.links", "e.sources",
).
	Join("JOIN opencivicdata_jurisdiction j ON j.id = e.jurisdiction_id").
	Join("LEFT JOIN opencivicdata_eventlocation l ON l.id = e.location_id")

func scanEvent(row rowScanner) (*models.Event, error) {
	var (
		e               models.Event
		locName, locURL sql.NullString
		links, sources  []byte
	)
	err := row.Scan(&e.ID, &e.Name, &e.Jurisdiction.ID, &e.Jurisdiction.Name, &e.Jurisdiction.Classification,
		&e.Description, &e.Classification, &e.StartDate, &e.EndDate, &e.AllDay,
		&e.Status, &e.UpstreamID, &e.Deleted, &locName, &locURL, &links, &sources)
	if err != nil {
		return nil, err
	}
	if locName.Valid {
		e.Location = &models.EventLocation{Name: locName.String, URL: nullString(locURL)}
	}
	var l, s []models.Link
	if err := decodeJSON(links, &l); err != nil {
		return nil, err
	}
	if err := decodeJSON(sources, &s); err != nil {
		return nil, err
	}
	l, s = orEmpty(l), orEmpty(s)
	e.Links, e.Sources = &l, &s
	return &e, nil
}

func eventID(e *models.Event) string { return e.ID }

func agendaItems(events []*models.Event) []*models.AgendaItem {
	var out []*models.AgendaItem
	for _, e := range events {
		if e.Agenda == nil {
			continue
		}
		for i := range *e.Agenda {
			out = append(out, &(*e.Agenda)[i])
		}
	}
	return out
}

func scanMedia(row rowScanner) (string, models.Media, error) {
	var (
		parent string
		m      models.Media
		offset sql.NullInt64
		links  []byte
	)
	if err := row.Scan(&parent, &m.Note, &m.Date, &offset, &m.Classification, &links); err != nil {
		return "", m, err
	}
	if offset.Valid {
		o := int(offset.Int64)
		m.Offset = &o
	}
	if err := decodeJSON(links, &m.Links); err != nil {
		return "", m, err
	}
	m.Links = orEmpty(m.Links)
	return parent, m, nil
}

func newEvents(db DB) *Table[models.Event] {
	media := hasMany(models.EventMedia,
		`SELECT m.event_id, m.note, m.date, m."offset", m.classification, m.links
		 FROM opencivicdata_eventmedia m
		 WHERE m.event_id = ANY($1)
		 ORDER BY m.date, m.note`,
		eventID, scanMedia,
		func(e *models.Event, c []models.Media) { e.Media = &c },
	)
	documents := hasMany(models.EventDocuments,
		`SELECT d.event_id, d.note, d.date, d.classification, d.links
		 FROM opencivicdata_eventdocument d
		 WHERE d.event_id = ANY($1)
		 ORDER BY d.date, d.note`,
		eventID,
		func(row rowScanner) (string, models.EventDocument, error) {
			var parent string
			var d models.EventDocument
			var links []byte
			if err := row.Scan(&parent, &d.Note, &d.Date, &d.Classification, &links); err != nil {
				return "", d, err
			}
			err := decodeJSON(links, &d.Links)
			d.Links = orEmpty(d.Links)
			return parent, d, err
		},
		func(e *models.Event, c []models.EventDocument) { e.Documents = &c },
	)
	participants := hasMany(models.EventParticipants,
		`SELECT p.event_id, p.note, p.name, p.entity_type
		 FROM opencivicdata_eventparticipant p
		 WHERE p.event_id = ANY($1)
		 ORDER BY p.name`,
		eventID,
		func(row rowScanner) (string, models.EventParticipant, error) {
			var parent string
			var p models.EventParticipant
			err := row.Scan(&parent, &p.Note, &p.Name, &p.EntityType)
			return parent, p, err
		},
		func(e *models.Event, c []models.EventParticipant) { e.Participants = &c },
	)
	agenda := hasMany(models.EventAgenda,
		`SELECT a.event_id, a.id, a.description, a.classification, a."order", a.subjects, a.notes, a.extras
		 FROM opencivicdata_eventagendaitem a
		 WHERE a.event_id = ANY($1)
		 ORDER BY a."order"`,
		eventID,
		func(row rowScanner) (string, models.AgendaItem, error) {
			var (
				parent               string
				a                    models.AgendaItem
				cls, subjects, notes pq.StringArray
				extras               []byte
			)
			if err := row.Scan(&parent, &a.ID, &a.Description, &cls, &a.Order, &subjects, &notes, &extras); err != nil {
				return "", a, err
			}
			a.Classification = orEmpty([]string(cls))
			a.Subjects = orEmpty([]string(subjects))
			a.Notes = orEmpty([]string(notes))
			a.Extras = models.Extras{}
			a.RelatedEntities = []models.RelatedEntity{}
			a.Media = []models.Media{}
			return parent, a, decodeJSON(extras, &a.Extras)
		},
		func(e *models.Event, c []models.AgendaItem) { e.Agenda = &c },
	)
	related := nested(models.EventAgendaRelatedEntities,
		`SELECT r.agenda_item_id, r.note, r.name, r.entity_type
		 FROM opencivicdata_eventrelatedentity r
		 WHERE r.agenda_item_id = ANY($1)
		 ORDER BY r.name`,
		agendaItems, func(a *models.AgendaItem) string { return a.ID },
		func(row rowScanner) (string, models.RelatedEntity, error) {
			var parent string
			var r models.RelatedEntity
			err := row.Scan(&parent, &r.Note, &r.Name, &r.EntityType)
			return parent, r, err
		},
		func(a *models.AgendaItem, c []models.RelatedEntity) { a.RelatedEntities = c },
	)
	agendaMedia := nested(models.EventAgendaMedia,
		`SELECT m.agenda_item_id, m.note, m.date, m."offset", m.classification, m.links
		 FROM opencivicdata_eventagendamedia m
		 WHERE m.agenda_item_id = ANY($1)
		 ORDER BY m.date, m.note`,
		agendaItems, func(a *models.AgendaItem) string { return a.ID },
		scanMedia,
		func(a *models.AgendaItem, c []models.Media) { a.Media = c },
	)
	return newTable("event", db, eventBase, scanEvent, media, documents, participants, agenda, related, agendaMedia)
}
