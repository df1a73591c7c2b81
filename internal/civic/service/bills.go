package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"statehouse/internal/civic/models"
	"statehouse/internal/identifier"
	"statehouse/internal/jurisdiction"
	"statehouse/internal/pagination"
	"statehouse/internal/query"
	dErrors "statehouse/pkg/domain-errors"
)

// BillFilter narrows the bill listing. Jurisdiction or Q is required.
type BillFilter struct {
	Jurisdiction   string
	Session        string
	Chamber        string
	Classification string
	Subject        []string
	UpdatedSince   string
	CreatedSince   string
	ActionSince    string
	Sponsor        string
	// Q is either a bill identifier or full-text search terms.
	Q    string
	Sort string
}

// DefaultBillSort orders bills by most recent update.
const DefaultBillSort = "updated_desc"

var billSorts = map[string][]string{
	"updated_asc":        {"b.updated_at ASC", "b.id"},
	"updated_desc":       {"b.updated_at DESC", "b.id"},
	"first_action_asc":   {"b.first_action_date ASC", "b.id"},
	"first_action_desc":  {"b.first_action_date DESC", "b.id"},
	"latest_action_asc":  {"b.latest_action_date ASC", "b.id"},
	"latest_action_desc": {"b.latest_action_date DESC", "b.id"},
}

func (s *Service) searchColumns() identifier.Columns {
	return identifier.Columns{
		Identifier:   "b.identifier",
		SearchVector: "sb.search_vector",
		Language:     s.language,
	}
}

func (s *Service) ListBills(ctx context.Context, f BillFilter, p ListParams) (*pagination.Page[models.Bill], error) {
	if f.Jurisdiction == "" && f.Q == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "either 'jurisdiction' or 'q' required")
	}
	sort := f.Sort
	if sort == "" {
		sort = DefaultBillSort
	}
	order, ok := billSorts[sort]
	if !ok {
		return nil, dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("invalid sort '%s'", sort))
	}

	q := s.tables.Bills.Base()
	if f.Jurisdiction != "" {
		q = q.Where(s.resolver.Resolve(f.Jurisdiction, jurisdiction.IDColumn))
	}
	if f.Session != "" {
		q = q.Where(query.Eq("s.identifier", f.Session))
	}
	if f.Chamber != "" {
		q = q.Where(query.Eq("o.classification", f.Chamber))
	}
	if f.Classification != "" {
		q = q.Where(query.Contains("b.classification", f.Classification))
	}
	for _, subject := range f.Subject {
		q = q.Where(query.Contains("b.subject", subject))
	}
	for _, since := range []struct {
		param, column, value string
	}{
		{"updated_since", "b.updated_at", f.UpdatedSince},
		{"created_since", "b.created_at", f.CreatedSince},
	} {
		if since.value == "" {
			continue
		}
		t, err := parseDate(since.param, since.value)
		if err != nil {
			return nil, err
		}
		q = q.Where(query.Gte(since.column, t))
	}
	if f.ActionSince != "" {
		if _, err := parseDate("action_since", f.ActionSince); err != nil {
			return nil, err
		}
		q = q.Where(query.Gte("b.latest_action_date", f.ActionSince))
	}
	if f.Sponsor != "" {
		q = q.Where(query.Raw(
			"EXISTS (SELECT 1 FROM opencivicdata_billsponsorship sp WHERE sp.bill_id = b.id AND (sp.person_id = ? OR sp.name = ?))",
			f.Sponsor, f.Sponsor,
		))
	}
	if f.Q != "" {
		c := identifier.Classify(f.Q)
		if c.Kind == identifier.FullTextSearch {
			q = q.Join("JOIN opencivicdata_searchablebill sb ON sb.bill_id = b.id")
		}
		q = q.Where(c.Predicate(s.searchColumns()))
	}
	q = q.OrderBy(order...)
	return list(ctx, s, s.tables.Bills, q, s.bills, p)
}

// GetBillByID fetches a bill by the UUID part of its ocd-bill id.
func (s *Service) GetBillByID(ctx context.Context, id string, include []string) (*models.Bill, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeNotFound, "no bill found")
	}
	q := s.tables.Bills.Base().Where(query.Eq("b.id", "ocd-bill/"+parsed.String()))
	return detail(ctx, s, s.tables.Bills, q, s.bills, include)
}

// GetBill fetches a bill by jurisdiction, session and identifier. The
// identifier is normalized before matching.
func (s *Service) GetBill(ctx context.Context, jurisdictionToken, session, billIdentifier string, include []string) (*models.Bill, error) {
	q := s.tables.Bills.Base().Where(
		s.resolver.Resolve(jurisdictionToken, jurisdiction.IDColumn),
		query.Eq("s.identifier", session),
		query.Eq("b.identifier", strings.ToUpper(identifier.Normalize(billIdentifier))),
	)
	return detail(ctx, s, s.tables.Bills, q, s.bills, include)
}

// parseDate accepts a calendar date or an RFC 3339 timestamp.
func parseDate(param, value string) (time.Time, error) {
	for _, layout := range []string{time.DateOnly, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, dErrors.New(dErrors.CodeBadRequest,
		fmt.Sprintf("invalid %s '%s', expected YYYY-MM-DD or an RFC 3339 timestamp", param, value))
}
