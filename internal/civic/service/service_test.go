package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"statehouse/internal/civic/models"
	"statehouse/internal/civic/service/mocks"
	"statehouse/internal/jurisdiction"
	"statehouse/internal/query"
	dErrors "statehouse/pkg/domain-errors"
)

//go:generate mockgen -source=deps.go -destination=mocks/mocks.go -package=mocks

type fakeTable[T any] struct {
	base    query.Query
	records []*T
	err     error

	counts  int
	queries []query.Query
}

func newFakeTable[T any](from string, records ...*T) *fakeTable[T] {
	return &fakeTable[T]{
		base: query.Select(from, "id").
			Join("JOIN opencivicdata_jurisdiction j ON j.id = jurisdiction_id"),
		records: records,
	}
}

func (f *fakeTable[T]) Base() query.Query { return f.base }

func (f *fakeTable[T]) Count(_ context.Context, q query.Query) (int, error) {
	f.counts++
	f.queries = append(f.queries, q)
	if f.err != nil {
		return 0, f.err
	}
	return len(f.records), nil
}

func (f *fakeTable[T]) Fetch(_ context.Context, q query.Query, limit, offset int) ([]*T, error) {
	f.queries = append(f.queries, q)
	if f.err != nil {
		return nil, f.err
	}
	if offset >= len(f.records) {
		return nil, nil
	}
	return f.records[offset:min(offset+limit, len(f.records))], nil
}

// lastSQL renders the most recent query the table saw.
func (f *fakeTable[T]) lastSQL() (string, []any) {
	return f.queries[len(f.queries)-1].SQL(0, 0)
}

type ServiceSuite struct {
	suite.Suite
	ctx context.Context

	jurisdictions *fakeTable[models.Jurisdiction]
	people        *fakeTable[models.Person]
	bills         *fakeTable[models.Bill]
	committees    *fakeTable[models.Committee]
	events        *fakeTable[models.Event]
	runs          *mocks.MockRunLister
	geo           *mocks.MockDivisionLookup
	service       *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()
	ctrl := gomock.NewController(s.T())
	s.runs = mocks.NewMockRunLister(ctrl)
	s.geo = mocks.NewMockDivisionLookup(ctrl)

	s.jurisdictions = newFakeTable("opencivicdata_jurisdiction j", &models.Jurisdiction{
		ID:   "ocd-jurisdiction/country:us/state:ne/government",
		Name: "Nebraska",
		Organizations: &[]models.Chamber{
			{ID: "ocd-organization/1", Name: "Nebraska Legislature", Classification: "legislature"},
		},
	})
	s.people = newFakeTable[models.Person]("opencivicdata_person p")
	s.bills = newFakeTable[models.Bill]("opencivicdata_bill b")
	s.committees = newFakeTable[models.Committee]("opencivicdata_organization c")
	s.events = newFakeTable[models.Event]("opencivicdata_event e")

	metadata, err := jurisdiction.LoadMetadata()
	s.Require().NoError(err)
	s.service = New(Tables{
		Jurisdictions: s.jurisdictions,
		People:        s.people,
		Bills:         s.bills,
		Committees:    s.committees,
		Events:        s.events,
	}, s.runs, s.geo, jurisdiction.NewResolver(metadata),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
}

func perPage(n int) *int { return &n }

func (s *ServiceSuite) TestListJurisdictions() {
	s.Run("defaults to the full page and strips unrequested members", func() {
		page, err := s.service.ListJurisdictions(s.ctx, JurisdictionFilter{}, ListParams{Page: 1})
		s.Require().NoError(err)
		s.Equal(52, page.Pagination.PerPage)
		s.Equal(1, page.Pagination.TotalItems)
		s.Require().Len(page.Results, 1)
		s.Nil(page.Results[0].Organizations)
	})

	s.Run("filters by classification", func() {
		_, err := s.service.ListJurisdictions(s.ctx, JurisdictionFilter{Classification: "state"}, ListParams{Page: 1})
		s.Require().NoError(err)
		sql, args := s.jurisdictions.lastSQL()
		s.Contains(sql, "WHERE j.classification = $1 ORDER BY j.name, j.id")
		s.Equal([]any{"state"}, args)
	})

	s.Run("explicit zero per_page is rejected", func() {
		_, err := s.service.ListJurisdictions(s.ctx, JurisdictionFilter{}, ListParams{Page: 1, PerPage: perPage(0)})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
		s.EqualError(err, "invalid per_page, must be in [1, 52]")
	})

	s.Run("latest runs are attached on request", func() {
		runs := []models.RunPlan{{Success: true, StartTime: time.Date(2024, 1, 2, 3, 0, 0, 0, time.UTC)}}
		s.runs.EXPECT().
			LatestRuns(gomock.Any(), "ocd-jurisdiction/country:us/state:ne/government", latestRunsLimit).
			Return(runs, nil)

		page, err := s.service.ListJurisdictions(s.ctx, JurisdictionFilter{}, ListParams{
			Page:    1,
			Include: []string{models.JurisdictionLatestRuns, models.JurisdictionOrganizations},
		})
		s.Require().NoError(err)
		got := page.Results[0]
		s.Require().NotNil(got.LatestRuns)
		s.Equal(runs, *got.LatestRuns)
		s.Require().NotNil(got.Organizations)
		s.Len(*got.Organizations, 1)
		s.Equal(query.LoadEager, s.jurisdictions.queries[len(s.jurisdictions.queries)-1].Load(models.JurisdictionOrganizations))
	})

	s.Run("unknown include is rejected", func() {
		_, err := s.service.ListJurisdictions(s.ctx, JurisdictionFilter{}, ListParams{Page: 1, Include: []string{"bills"}})
		s.Require().Error(err)
		s.EqualError(err, "invalid include 'bills', must be one of: organizations, legislative_sessions, latest_runs")
	})
}

func (s *ServiceSuite) TestGetJurisdiction() {
	s.Run("resolves a postal abbreviation", func() {
		j, err := s.service.GetJurisdiction(s.ctx, "ne", nil)
		s.Require().NoError(err)
		s.Equal("Nebraska", j.Name)
		_, args := s.jurisdictions.lastSQL()
		s.Equal([]any{"ocd-jurisdiction/country:us/state:ne/government"}, args)
	})

	s.Run("display names resolve among states only", func() {
		_, err := s.service.GetJurisdiction(s.ctx, "Nebraska", nil)
		s.Require().NoError(err)
		sql, args := s.jurisdictions.lastSQL()
		s.Contains(sql, "WHERE (j.name = $1 AND j.classification = $2)")
		s.Equal([]any{"Nebraska", "state"}, args)
	})

	s.Run("no match is not found", func() {
		s.jurisdictions.records = nil
		_, err := s.service.GetJurisdiction(s.ctx, "Atlantis", nil)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
		s.EqualError(err, "no jurisdiction found")
	})

	s.Run("store failures are wrapped as internal", func() {
		s.jurisdictions.err = errors.New("connection refused")
		_, err := s.service.GetJurisdiction(s.ctx, "ne", nil)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
		s.ErrorContains(err, "get jurisdiction failed")
	})
}

func (s *ServiceSuite) TestListPeople() {
	s.Run("requires a narrowing filter", func() {
		_, err := s.service.ListPeople(s.ctx, PeopleFilter{District: "1"}, ListParams{Page: 1})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
		s.EqualError(err, "one of 'jurisdiction', 'name', or 'id' is required")
	})

	s.Run("jurisdiction limits to people with a current role", func() {
		_, err := s.service.ListPeople(s.ctx, PeopleFilter{Jurisdiction: "oh", OrgClassification: "upper"}, ListParams{Page: 1})
		s.Require().NoError(err)
		sql, args := s.people.lastSQL()
		s.Contains(sql, "p.current_jurisdiction_id = $1 AND p.current_role IS NOT NULL AND p.current_role->>'org_classification' = $2")
		s.Contains(sql, "ORDER BY p.name, p.id")
		s.Equal([]any{"ocd-jurisdiction/country:us/state:oh/government", "upper"}, args)
	})

	s.Run("name matches other names", func() {
		_, err := s.service.ListPeople(s.ctx, PeopleFilter{Name: "Amy"}, ListParams{Page: 1})
		s.Require().NoError(err)
		sql, args := s.people.lastSQL()
		s.Contains(sql, "lower(p.name) = lower($1)")
		s.Contains(sql, "lower(n.name) = lower($2)")
		s.Equal([]any{"Amy", "Amy"}, args)
	})

	s.Run("per_page ceiling", func() {
		_, err := s.service.ListPeople(s.ctx, PeopleFilter{Name: "Amy"}, ListParams{Page: 1, PerPage: perPage(51)})
		s.Require().Error(err)
		s.EqualError(err, "invalid per_page, must be in [1, 50]")
	})
}

func (s *ServiceSuite) TestListPeopleByLocation() {
	s.Run("skips the count query", func() {
		s.people.records = []*models.Person{{ID: "ocd-person/1"}, {ID: "ocd-person/2"}}
		s.geo.EXPECT().Divisions(gomock.Any(), 41.5, -81.3).
			Return([]string{"ocd-division/country:us/state:oh"}, nil)

		page, err := s.service.ListPeopleByLocation(s.ctx, 41.5, -81.3, ListParams{Page: 1})
		s.Require().NoError(err)
		s.Equal(0, s.people.counts)
		s.Equal(1, page.Pagination.MaxPage)
		s.Equal(2, page.Pagination.TotalItems)

		sql, _ := s.people.lastSQL()
		s.Contains(sql, "(p.current_role->>'division_id' = ANY($1) OR (p.current_role->>'org_classification' = ANY($2) AND p.current_jurisdiction_id = ANY($3)))")
	})

	s.Run("page beyond one is not found", func() {
		s.geo.EXPECT().Divisions(gomock.Any(), 41.5, -81.3).Return([]string{"ocd-division/country:us/state:oh"}, nil)
		_, err := s.service.ListPeopleByLocation(s.ctx, 41.5, -81.3, ListParams{Page: 2})
		s.Require().Error(err)
		s.EqualError(err, "invalid page, must be in [1, 1]")
	})

	s.Run("upstream failures pass through", func() {
		upstream := dErrors.New(dErrors.CodeUpstream, "division lookup failed, try again later")
		s.geo.EXPECT().Divisions(gomock.Any(), 41.5, -81.3).Return(nil, upstream)
		_, err := s.service.ListPeopleByLocation(s.ctx, 41.5, -81.3, ListParams{Page: 1})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeUpstream))
	})

	s.Run("rejects out of range coordinates", func() {
		_, err := s.service.ListPeopleByLocation(s.ctx, 91, 0, ListParams{Page: 1})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})
}

func (s *ServiceSuite) TestListBills() {
	s.Run("requires jurisdiction or q", func() {
		_, err := s.service.ListBills(s.ctx, BillFilter{Session: "2021"}, ListParams{Page: 1})
		s.Require().Error(err)
		s.EqualError(err, "either 'jurisdiction' or 'q' required")
	})

	s.Run("rejects an unknown sort", func() {
		_, err := s.service.ListBills(s.ctx, BillFilter{Jurisdiction: "ne", Sort: "alpha"}, ListParams{Page: 1})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	s.Run("names the malformed date parameter", func() {
		_, err := s.service.ListBills(s.ctx, BillFilter{Jurisdiction: "ne", UpdatedSince: "yesterday"}, ListParams{Page: 1})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
		s.ErrorContains(err, "invalid updated_since 'yesterday'")
	})

	s.Run("identifier-shaped q matches the identifier", func() {
		_, err := s.service.ListBills(s.ctx, BillFilter{Q: "hb1"}, ListParams{Page: 1})
		s.Require().NoError(err)
		sql, args := s.bills.lastSQL()
		s.NotContains(sql, "opencivicdata_searchablebill")
		s.Contains(sql, "b.identifier = $1")
		s.Contains(sql, "ORDER BY b.updated_at DESC, b.id")
		s.Equal([]any{"HB 1"}, args)
	})

	s.Run("other q runs a full-text search", func() {
		_, err := s.service.ListBills(s.ctx, BillFilter{Jurisdiction: "ne", Q: "moose hunting", Sort: "first_action_asc"}, ListParams{Page: 1})
		s.Require().NoError(err)
		sql, args := s.bills.lastSQL()
		s.Contains(sql, "JOIN opencivicdata_searchablebill sb ON sb.bill_id = b.id")
		s.Contains(sql, "sb.search_vector @@ websearch_to_tsquery($2::regconfig, $3)")
		s.Contains(sql, "ORDER BY b.first_action_date ASC, b.id")
		s.Equal([]any{"ocd-jurisdiction/country:us/state:ne/government", "english", "moose hunting"}, args)
	})

	s.Run("array filters use containment", func() {
		_, err := s.service.ListBills(s.ctx, BillFilter{
			Jurisdiction:   "ne",
			Classification: "resolution",
			Subject:        []string{"Taxes", "Budget"},
			ActionSince:    "2021-01-01",
		}, ListParams{Page: 1})
		s.Require().NoError(err)
		sql, args := s.bills.lastSQL()
		s.Contains(sql, "$2 = ANY(b.classification) AND $3 = ANY(b.subject) AND $4 = ANY(b.subject) AND b.latest_action_date >= $5")
		s.Equal([]any{"ocd-jurisdiction/country:us/state:ne/government", "resolution", "Taxes", "Budget", "2021-01-01"}, args)
	})

	s.Run("votes include expands to nested relations", func() {
		_, err := s.service.ListBills(s.ctx, BillFilter{Jurisdiction: "ne"}, ListParams{Page: 1, Include: []string{models.BillVotes}})
		s.Require().NoError(err)
		q := s.bills.queries[len(s.bills.queries)-1]
		s.Equal(query.LoadEager, q.Load(models.BillVoteCounts))
		s.Equal(query.LoadEager, q.Load(models.BillVoteVotes))
		s.Equal(query.LoadSuppress, q.Load(models.BillActions))
	})
}

func (s *ServiceSuite) TestGetBill() {
	s.bills.records = []*models.Bill{{ID: "ocd-bill/9c24aaa2-6acc-53ff-8b57-7bc3b2ab8f0e", Identifier: "HB 1"}}

	s.Run("by id rejects malformed uuids as not found", func() {
		_, err := s.service.GetBillByID(s.ctx, "not-a-uuid", nil)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("by id prefixes the ocd type", func() {
		b, err := s.service.GetBillByID(s.ctx, "9c24aaa2-6acc-53ff-8b57-7bc3b2ab8f0e", nil)
		s.Require().NoError(err)
		s.Equal("HB 1", b.Identifier)
		_, args := s.bills.lastSQL()
		s.Equal([]any{"ocd-bill/9c24aaa2-6acc-53ff-8b57-7bc3b2ab8f0e"}, args)
	})

	s.Run("by identifier normalizes input", func() {
		_, err := s.service.GetBill(s.ctx, "ne", "2021", "hb0001", nil)
		s.Require().NoError(err)
		_, args := s.bills.lastSQL()
		s.Equal([]any{"ocd-jurisdiction/country:us/state:ne/government", "2021", "HB 1"}, args)
	})

	s.Run("more than one match is an internal error", func() {
		s.bills.records = append(s.bills.records, &models.Bill{ID: "ocd-bill/other"})
		_, err := s.service.GetBill(s.ctx, "ne", "2021", "HB 1", nil)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})
}

func (s *ServiceSuite) TestListCommittees() {
	s.Run("requires jurisdiction", func() {
		_, err := s.service.ListCommittees(s.ctx, CommitteeFilter{}, ListParams{Page: 1})
		s.Require().Error(err)
		s.EqualError(err, "'jurisdiction' is required")
	})

	s.Run("chamber filters on the parent", func() {
		_, err := s.service.ListCommittees(s.ctx, CommitteeFilter{Jurisdiction: "oh", Chamber: "upper"}, ListParams{Page: 1})
		s.Require().NoError(err)
		sql, args := s.committees.lastSQL()
		s.Contains(sql, "c.classification = ANY($2)")
		s.Contains(sql, "po.classification = $3")
		s.Equal("upper", args[2])
	})
}

func (s *ServiceSuite) TestListEvents() {
	s.Run("requires jurisdiction", func() {
		_, err := s.service.ListEvents(s.ctx, EventFilter{}, ListParams{Page: 1})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	s.Run("excludes deleted events by default", func() {
		_, err := s.service.ListEvents(s.ctx, EventFilter{Jurisdiction: "ne", After: "2021-01-01"}, ListParams{Page: 1})
		s.Require().NoError(err)
		sql, args := s.events.lastSQL()
		s.Contains(sql, "e.deleted = $2 AND e.start_date > $3")
		s.Equal([]any{"ocd-jurisdiction/country:us/state:ne/government", false, "2021-01-01"}, args)
	})

	s.Run("rejects malformed dates", func() {
		_, err := s.service.ListEvents(s.ctx, EventFilter{Jurisdiction: "ne", Before: "soon"}, ListParams{Page: 1})
		s.Require().Error(err)
		s.ErrorContains(err, "invalid before 'soon'")
	})
}

func TestParseDate(t *testing.T) {
	for _, value := range []string{"2021-03-04", "2021-03-04T05:06:07Z", "2021-03-04T05:06"} {
		_, err := parseDate("since", value)
		require.NoError(t, err, value)
	}
	_, err := parseDate("since", "03/04/2021")
	assert.Error(t, err)
}
