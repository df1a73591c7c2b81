//go:build integration

package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"statehouse/internal/civic/models"
	"statehouse/internal/civic/store"
	"statehouse/internal/identifier"
	"statehouse/internal/jurisdiction"
	"statehouse/internal/query"
	"statehouse/pkg/testutil/containers"
)

const fixtures = `
INSERT INTO opencivicdata_jurisdiction (id, name, classification, division_id) VALUES
  ('ocd-jurisdiction/country:us/state:ne/government', 'Nebraska', 'state', 'ocd-division/country:us/state:ne'),
  ('ocd-jurisdiction/country:us/state:oh/government', 'Ohio', 'state', 'ocd-division/country:us/state:oh'),
  ('ocd-jurisdiction/country:us/state:oh/place:mentor/government', 'Mentor', 'municipality', 'ocd-division/country:us/state:oh/place:mentor');

INSERT INTO opencivicdata_organization (id, name, classification, jurisdiction_id) VALUES
  ('ocd-organization/ne-leg', 'Nebraska Legislature', 'legislature', 'ocd-jurisdiction/country:us/state:ne/government'),
  ('ocd-organization/oh-upper', 'Ohio Senate', 'upper', 'ocd-jurisdiction/country:us/state:oh/government'),
  ('ocd-organization/oh-lower', 'Ohio House', 'lower', 'ocd-jurisdiction/country:us/state:oh/government');

INSERT INTO opencivicdata_legislativesession (id, identifier, name, start_date, jurisdiction_id) VALUES
  ('11111111-1111-1111-1111-111111111111', '2020', '2020 Regular Session', '2020-01-08', 'ocd-jurisdiction/country:us/state:ne/government'),
  ('22222222-2222-2222-2222-222222222222', '2021', '2021 Regular Session', '2021-01-04', 'ocd-jurisdiction/country:us/state:oh/government');

INSERT INTO opencivicdata_bill (id, identifier, title, classification, subject, from_organization_id, legislative_session_id, latest_action_date) VALUES
  ('ocd-bill/aaaaaaaa-0000-0000-0000-000000000001', 'LB 1', 'Property tax relief', '{bill}', '{taxes}', 'ocd-organization/ne-leg', '11111111-1111-1111-1111-111111111111', '2020-02-01'),
  ('ocd-bill/aaaaaaaa-0000-0000-0000-000000000002', 'HB 7', 'School funding', '{bill}', '{education}', 'ocd-organization/oh-lower', '22222222-2222-2222-2222-222222222222', '2021-03-01'),
  ('ocd-bill/aaaaaaaa-0000-0000-0000-000000000003', 'HB 1', 'Lake Erie water quality', '{bill}', '{environment}', 'ocd-organization/oh-lower', '22222222-2222-2222-2222-222222222222', '2021-02-15');

INSERT INTO opencivicdata_searchablebill (bill_id, search_vector) VALUES
  ('ocd-bill/aaaaaaaa-0000-0000-0000-000000000001', to_tsvector('english', 'Property tax relief for homeowners')),
  ('ocd-bill/aaaaaaaa-0000-0000-0000-000000000002', to_tsvector('english', 'School funding formula')),
  ('ocd-bill/aaaaaaaa-0000-0000-0000-000000000003', to_tsvector('english', 'Lake Erie water quality standards'));

INSERT INTO opencivicdata_billsponsorship (bill_id, name, "primary", classification) VALUES
  ('ocd-bill/aaaaaaaa-0000-0000-0000-000000000001', 'Linehan', true, 'primary');

INSERT INTO opencivicdata_voteevent (id, motion_text, start_date, result, organization_id, legislative_session_id, bill_id) VALUES
  ('ocd-vote/v1', 'Final passage', '2020-02-01', 'pass', 'ocd-organization/ne-leg', '11111111-1111-1111-1111-111111111111', 'ocd-bill/aaaaaaaa-0000-0000-0000-000000000001');

INSERT INTO opencivicdata_votecount (vote_event_id, option, value) VALUES
  ('ocd-vote/v1', 'no', 3),
  ('ocd-vote/v1', 'yes', 40);

INSERT INTO opencivicdata_personvote (vote_event_id, option, voter_name) VALUES
  ('ocd-vote/v1', 'yes', 'Linehan');
`

var seededTables = []string{
	"opencivicdata_personvote", "opencivicdata_votecount", "opencivicdata_voteevent",
	"opencivicdata_billsponsorship", "opencivicdata_searchablebill", "opencivicdata_bill",
	"opencivicdata_legislativesession", "opencivicdata_organization", "opencivicdata_jurisdiction",
}

type StoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.Store
	resolver *jurisdiction.Resolver
}

func TestStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T(), store.Schema)
	s.store = store.New(s.postgres.DB)

	metadata, err := jurisdiction.LoadMetadata()
	s.Require().NoError(err)
	s.resolver = jurisdiction.NewResolver(metadata)
}

func (s *StoreSuite) SetupTest() {
	ctx := context.Background()
	s.Require().NoError(s.postgres.TruncateTables(ctx, seededTables...))
	_, err := s.postgres.DB.ExecContext(ctx, fixtures)
	s.Require().NoError(err)
}

func (s *StoreSuite) TestJurisdictionsLoadOrganizationsByDefault() {
	ctx := context.Background()
	t := s.store.Jurisdictions
	q := t.Base().Where(query.Eq("j.classification", "state")).OrderBy("j.name", "j.id")

	n, err := t.Count(ctx, q)
	s.Require().NoError(err)
	s.Equal(2, n)

	rows, err := t.Fetch(ctx, q, 10, 0)
	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Equal("Nebraska", rows[0].Name)
	s.Equal("Ohio", rows[1].Name)

	s.Require().NotNil(rows[1].Organizations)
	s.Len(*rows[1].Organizations, 2)
	s.Nil(rows[1].LegislativeSessions)
}

func (s *StoreSuite) TestJurisdictionDirectives() {
	ctx := context.Background()
	t := s.store.Jurisdictions
	q := t.Base().
		Where(query.Eq("j.name", "Nebraska")).
		OrderBy("j.id").
		Eager(models.JurisdictionLegislativeSessions).
		Suppress(models.JurisdictionOrganizations)

	rows, err := t.Fetch(ctx, q, 10, 0)
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Nil(rows[0].Organizations)
	s.Require().NotNil(rows[0].LegislativeSessions)
	s.Equal("2020", (*rows[0].LegislativeSessions)[0].Identifier)
}

func (s *StoreSuite) TestMunicipalityHasEmptyOrganizations() {
	ctx := context.Background()
	t := s.store.Jurisdictions
	q := t.Base().Where(query.Eq("j.classification", "municipality")).OrderBy("j.id")

	rows, err := t.Fetch(ctx, q, 10, 0)
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Require().NotNil(rows[0].Organizations)
	s.Empty(*rows[0].Organizations)
}

func (s *StoreSuite) TestBillNestedVotes() {
	ctx := context.Background()
	t := s.store.Bills
	q := t.Base().
		Where(query.Eq("j.name", "Nebraska")).
		OrderBy("b.id").
		Eager(models.BillSponsorships, models.BillVotes, models.BillVoteCounts, models.BillVoteVotes)

	rows, err := t.Fetch(ctx, q, 10, 0)
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	b := rows[0]
	s.Equal("2020", b.Session)
	s.Equal([]string{"taxes"}, b.Subject)
	s.Nil(b.Actions)

	s.Require().NotNil(b.Sponsorships)
	s.Equal("Linehan", (*b.Sponsorships)[0].Name)

	s.Require().NotNil(b.Votes)
	s.Require().Len(*b.Votes, 1)
	v := (*b.Votes)[0]
	s.Equal("Final passage", v.MotionText)
	s.Equal([]models.VoteCount{{Option: "no", Value: 3}, {Option: "yes", Value: 40}}, v.Counts)
	s.Require().Len(v.Votes, 1)
	s.Equal("Linehan", v.Votes[0].VoterName)
}

func (s *StoreSuite) TestNestedWithoutParentIsSkipped() {
	ctx := context.Background()
	t := s.store.Bills
	q := t.Base().Where(query.Eq("j.name", "Nebraska")).OrderBy("b.id").Eager(models.BillVoteCounts)

	rows, err := t.Fetch(ctx, q, 10, 0)
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Nil(rows[0].Votes)
}

func (s *StoreSuite) TestBillFullTextSearch() {
	ctx := context.Background()
	t := s.store.Bills
	q := t.Base().
		Join("JOIN opencivicdata_searchablebill sb ON sb.bill_id = b.id").
		Where(query.Match("sb.search_vector", "english", "homeowners")).
		OrderBy("b.id")

	n, err := t.Count(ctx, q)
	s.Require().NoError(err)
	s.Equal(1, n)

	rows, err := t.Fetch(ctx, q, 10, 0)
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal("LB 1", rows[0].Identifier)
}

func (s *StoreSuite) TestFetchWindow() {
	ctx := context.Background()
	t := s.store.Bills
	q := t.Base().OrderBy("b.identifier", "b.id")

	rows, err := t.Fetch(ctx, q, 1, 2)
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal("LB 1", rows[0].Identifier)

	rows, err = t.Fetch(ctx, q, 1, 5)
	s.Require().NoError(err)
	s.Empty(rows)
}

func (s *StoreSuite) TestResolvedTokensSelectTheSameJurisdiction() {
	ctx := context.Background()
	t := s.store.Jurisdictions

	for _, token := range []string{"ne", "NE", "Nebraska", "ocd-jurisdiction/country:us/state:ne/government"} {
		q := t.Base().Where(s.resolver.Resolve(token, jurisdiction.IDColumn)).OrderBy("j.id")
		rows, err := t.Fetch(ctx, q, 10, 0)
		s.Require().NoError(err, token)
		s.Require().Len(rows, 1, token)
		s.Equal("ocd-jurisdiction/country:us/state:ne/government", rows[0].ID, token)
	}
}

func (s *StoreSuite) TestNonStateNamesResolveToNothing() {
	ctx := context.Background()
	t := s.store.Jurisdictions

	for _, token := range []string{"Mentor", "zz", ""} {
		n, err := t.Count(ctx, t.Base().Where(s.resolver.Resolve(token, jurisdiction.IDColumn)))
		s.Require().NoError(err, token)
		s.Zero(n, token)
	}
}

func (s *StoreSuite) billSearch(text string) query.Query {
	c := identifier.Classify(text)
	q := s.store.Bills.Base().Where(s.resolver.Resolve("oh", "s.jurisdiction_id"))
	if c.Kind == identifier.FullTextSearch {
		q = q.Join("JOIN opencivicdata_searchablebill sb ON sb.bill_id = b.id")
	}
	return q.Where(c.Predicate(identifier.Columns{
		Identifier:   "b.identifier",
		SearchVector: "sb.search_vector",
		Language:     "english",
	})).OrderBy("b.id")
}

func (s *StoreSuite) TestIdentifierSpellingsMatchTheSameBill() {
	ctx := context.Background()
	t := s.store.Bills

	for _, text := range []string{"HB 1", "hb1", "HB0001"} {
		rows, err := t.Fetch(ctx, s.billSearch(text), 10, 0)
		s.Require().NoError(err, text)
		s.Require().Len(rows, 1, text)
		s.Equal("ocd-bill/aaaaaaaa-0000-0000-0000-000000000003", rows[0].ID, text)
	}
}

func (s *StoreSuite) TestFullTextSearchWithinJurisdiction() {
	ctx := context.Background()
	t := s.store.Bills

	n, err := t.Count(ctx, s.billSearch("Cleveland"))
	s.Require().NoError(err)
	s.Zero(n)

	rows, err := t.Fetch(ctx, s.billSearch("water quality"), 10, 0)
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal("HB 1", rows[0].Identifier)
}
