package service

import (
	"context"

	"statehouse/internal/civic/models"
	"statehouse/internal/jurisdiction"
	"statehouse/internal/pagination"
	"statehouse/internal/query"
)

// JurisdictionFilter narrows the jurisdiction listing.
type JurisdictionFilter struct {
	Classification string
}

func (s *Service) ListJurisdictions(ctx context.Context, f JurisdictionFilter, p ListParams) (*pagination.Page[models.Jurisdiction], error) {
	q := s.tables.Jurisdictions.Base()
	if f.Classification != "" {
		q = q.Where(query.Eq(jurisdiction.ClassificationColumn, f.Classification))
	}
	q = q.OrderBy("j.name", "j.id")
	return list(ctx, s, s.tables.Jurisdictions, q, s.jurisdictions, p)
}

// GetJurisdiction resolves an abbreviation, id or name to one jurisdiction.
func (s *Service) GetJurisdiction(ctx context.Context, token string, include []string) (*models.Jurisdiction, error) {
	q := s.tables.Jurisdictions.Base().Where(s.resolver.Resolve(token, jurisdiction.IDColumn))
	return detail(ctx, s, s.tables.Jurisdictions, q, s.jurisdictions, include)
}
