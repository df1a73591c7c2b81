package service

import (
	"context"

	"statehouse/internal/civic/models"
	"statehouse/internal/jurisdiction"
	"statehouse/internal/pagination"
	"statehouse/internal/query"
	dErrors "statehouse/pkg/domain-errors"
)

// EventFilter narrows the event listing. Jurisdiction is required.
type EventFilter struct {
	Jurisdiction string
	Deleted      bool
	// Before and After bound start_date, exclusive.
	Before       string
	After        string
	RequireBills bool
}

func (s *Service) ListEvents(ctx context.Context, f EventFilter, p ListParams) (*pagination.Page[models.Event], error) {
	if f.Jurisdiction == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "'jurisdiction' is required")
	}

	q := s.tables.Events.Base().Where(
		s.resolver.Resolve(f.Jurisdiction, jurisdiction.IDColumn),
		query.Eq("e.deleted", f.Deleted),
	)
	if f.Before != "" {
		if _, err := parseDate("before", f.Before); err != nil {
			return nil, err
		}
		q = q.Where(query.Lt("e.start_date", f.Before))
	}
	if f.After != "" {
		if _, err := parseDate("after", f.After); err != nil {
			return nil, err
		}
		q = q.Where(query.Gt("e.start_date", f.After))
	}
	if f.RequireBills {
		q = q.Where(query.Raw(
			"EXISTS (SELECT 1 FROM opencivicdata_eventagendaitem a JOIN opencivicdata_eventrelatedentity r ON r.agenda_item_id = a.id WHERE a.event_id = e.id AND r.entity_type = 'bill')",
		))
	}
	q = q.OrderBy("e.start_date", "e.id")
	return list(ctx, s, s.tables.Events, q, s.events, p)
}

func (s *Service) GetEvent(ctx context.Context, id string, include []string) (*models.Event, error) {
	q := s.tables.Events.Base().Where(query.Eq("e.id", id))
	return detail(ctx, s, s.tables.Events, q, s.events, include)
}
