package service

import (
	"context"

	"statehouse/internal/civic/models"
	"statehouse/internal/jurisdiction"
	"statehouse/internal/pagination"
	"statehouse/internal/query"
	dErrors "statehouse/pkg/domain-errors"
)

// PeopleFilter narrows the people listing. At least one of Jurisdiction,
// Name or IDs is required.
type PeopleFilter struct {
	Jurisdiction      string
	Name              string
	IDs               []string
	OrgClassification string
	District          string
}

const (
	roleDivision       = "p.current_role->>'division_id'"
	roleClassification = "p.current_role->>'org_classification'"
	roleDistrict       = "p.current_role->>'district'"
)

func (s *Service) ListPeople(ctx context.Context, f PeopleFilter, p ListParams) (*pagination.Page[models.Person], error) {
	if f.Jurisdiction == "" && f.Name == "" && len(f.IDs) == 0 {
		return nil, dErrors.New(dErrors.CodeBadRequest, "one of 'jurisdiction', 'name', or 'id' is required")
	}

	q := s.tables.People.Base()
	if f.Jurisdiction != "" {
		q = q.Where(
			s.resolver.Resolve(f.Jurisdiction, "p.current_jurisdiction_id"),
			query.NotNull("p.current_role"),
		)
	}
	if f.Name != "" {
		q = q.Where(query.Raw(
			"(lower(p.name) = lower(?) OR EXISTS (SELECT 1 FROM opencivicdata_personname n WHERE n.person_id = p.id AND lower(n.name) = lower(?)))",
			f.Name, f.Name,
		))
	}
	if len(f.IDs) > 0 {
		q = q.Where(query.In("p.id", f.IDs))
	}
	if f.OrgClassification != "" {
		q = q.Where(query.Eq(roleClassification, f.OrgClassification))
	}
	if f.District != "" {
		q = q.Where(query.Eq(roleDistrict, f.District))
	}
	q = q.OrderBy("p.name", "p.id")
	return list(ctx, s, s.tables.People, q, s.people, p)
}

// ListPeopleByLocation lists people representing the divisions containing
// the coordinate: district officeholders by division and executives of the
// governments seated in those divisions. The count query is skipped.
func (s *Service) ListPeopleByLocation(ctx context.Context, lat, lng float64, p ListParams) (*pagination.Page[models.Person], error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, dErrors.New(dErrors.CodeBadRequest, "lat must be in [-90, 90] and lng in [-180, 180]")
	}
	divisions, err := s.geo.Divisions(ctx, lat, lng)
	if err != nil {
		return nil, s.translate(ctx, "lookup divisions", err)
	}

	governments := make([]string, 0, len(divisions))
	for _, d := range divisions {
		governments = append(governments, jurisdiction.IDForDivision(d))
	}
	q := s.tables.People.Base().
		Where(query.Or(
			query.In(roleDivision, divisions),
			query.And(
				query.In(roleClassification, []string{"executive", "government"}),
				query.In("p.current_jurisdiction_id", governments),
			),
		)).
		OrderBy("p.name", "p.id")

	s.incrementCountSkipped(s.people.Name)
	return list(ctx, s, s.tables.People, q, s.people, p, pagination.WithSkipCount())
}
