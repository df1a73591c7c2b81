package service

import (
	"context"

	"statehouse/internal/civic/models"
	"statehouse/internal/jurisdiction"
	"statehouse/internal/pagination"
	"statehouse/internal/query"
	dErrors "statehouse/pkg/domain-errors"
)

// CommitteeFilter narrows the committee listing. Jurisdiction is required.
type CommitteeFilter struct {
	Jurisdiction   string
	Classification string
	Parent         string
	Chamber        string
}

var committeeClassifications = []string{"committee", "subcommittee"}

func (s *Service) ListCommittees(ctx context.Context, f CommitteeFilter, p ListParams) (*pagination.Page[models.Committee], error) {
	if f.Jurisdiction == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "'jurisdiction' is required")
	}

	q := s.tables.Committees.Base().Where(s.resolver.Resolve(f.Jurisdiction, jurisdiction.IDColumn))
	if f.Classification != "" {
		q = q.Where(query.Eq("c.classification", f.Classification))
	} else {
		q = q.Where(query.In("c.classification", committeeClassifications))
	}
	if f.Parent != "" {
		q = q.Where(query.Eq("c.parent_id", f.Parent))
	}
	if f.Chamber != "" {
		q = q.Where(query.Raw(
			"EXISTS (SELECT 1 FROM opencivicdata_organization po WHERE po.id = c.parent_id AND po.classification = ?)",
			f.Chamber,
		))
	}
	q = q.OrderBy("c.name", "c.id")
	return list(ctx, s, s.tables.Committees, q, s.committees, p)
}

func (s *Service) GetCommittee(ctx context.Context, id string, include []string) (*models.Committee, error) {
	q := s.tables.Committees.Base().Where(
		query.Eq("c.id", id),
		query.In("c.classification", committeeClassifications),
	)
	return detail(ctx, s, s.tables.Committees, q, s.committees, include)
}
