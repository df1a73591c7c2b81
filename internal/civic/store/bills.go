package store

import (
	"github.com/lib/pq"

	"statehouse/internal/civic/models"
	"statehouse/internal/query"
)

var billBase = query.Select("opencivicdata_bill b",
	"b.id", "s.identifier",
	"j.id", "j.name", "j.classification",
	"o.id", "o.name", "o.classification",
	"b.identifier", "b.title", "b.classification", "b.subject", "b.extras",
	"b.created_at", "b.updated_at",
	"coalesce(b.first_action_date, '')", "coalesce(b.latest_action_date, '')",
	"coalesce(b.latest_action_description, '')", "coalesce(b.latest_passage_date, '')",
).
	Join("JOIN opencivicdata_legislativesession s ON s.id = b.legislative_session_id").
	Join("JOIN opencivicdata_jurisdiction j ON j.id = s.jurisdiction_id").
	Join("JOIN opencivicdata_organization o ON o.id = b.from_organization_id")

func scanBill(row rowScanner) (*models.Bill, error) {
	var (
		b       models.Bill
		extras  []byte
		cls     pq.StringArray
		subject pq.StringArray
	)
	err := row.Scan(&b.ID, &b.Session,
		&b.Jurisdiction.ID, &b.Jurisdiction.Name, &b.Jurisdiction.Classification,
		&b.FromOrganization.ID, &b.FromOrganization.Name, &b.FromOrganization.Classification,
		&b.Identifier, &b.Title, &cls, &subject, &extras,
		&b.CreatedAt, &b.UpdatedAt,
		&b.FirstActionDate, &b.LatestActionDate, &b.LatestActionDescription, &b.LatestPassageDate)
	if err != nil {
		return nil, err
	}
	b.Classification = orEmpty([]string(cls))
	b.Subject = orEmpty([]string(subject))
	b.Extras = models.Extras{}
	if err := decodeJSON(extras, &b.Extras); err != nil {
		return nil, err
	}
	return &b, nil
}

func billID(b *models.Bill) string { return b.ID }

func billVotes(bills []*models.Bill) []*models.VoteEvent {
	var out []*models.VoteEvent
	for _, b := range bills {
		if b.Votes == nil {
			continue
		}
		for i := range *b.Votes {
			out = append(out, &(*b.Votes)[i])
		}
	}
	return out
}

func voteEventID(v *models.VoteEvent) string { return v.ID }

func newBills(db DB) *Table[models.Bill] {
	sponsorships := hasMany(models.BillSponsorships,
		`SELECT sp.bill_id, sp.id, sp.name, sp.entity_type, sp."primary", sp.classification
		 FROM opencivicdata_billsponsorship sp
		 WHERE sp.bill_id = ANY($1)
		 ORDER BY sp."primary" DESC, sp.name`,
		billID,
		func(row rowScanner) (string, models.BillSponsorship, error) {
			var parent string
			var sp models.BillSponsorship
			err := row.Scan(&parent, &sp.ID, &sp.Name, &sp.EntityType, &sp.Primary, &sp.Classification)
			return parent, sp, err
		},
		func(b *models.Bill, c []models.BillSponsorship) { b.Sponsorships = &c },
	)
	abstracts := hasMany(models.BillAbstracts,
		`SELECT a.bill_id, a.abstract, a.note, a.date
		 FROM opencivicdata_billabstract a
		 WHERE a.bill_id = ANY($1)
		 ORDER BY a.date, a.abstract`,
		billID,
		func(row rowScanner) (string, models.BillAbstract, error) {
			var parent string
			var a models.BillAbstract
			err := row.Scan(&parent, &a.Abstract, &a.Note, &a.Date)
			return parent, a, err
		},
		func(b *models.Bill, c []models.BillAbstract) { b.Abstracts = &c },
	)
	titles := hasMany(models.BillOtherTitles,
		`SELECT t.bill_id, t.title, t.note
		 FROM opencivicdata_billtitle t
		 WHERE t.bill_id = ANY($1)
		 ORDER BY t.title`,
		billID,
		func(row rowScanner) (string, models.BillTitle, error) {
			var parent string
			var t models.BillTitle
			err := row.Scan(&parent, &t.Title, &t.Note)
			return parent, t, err
		},
		func(b *models.Bill, c []models.BillTitle) { b.OtherTitles = &c },
	)
	identifiers := hasMany(models.BillOtherIdentifiers,
		`SELECT i.bill_id, i.identifier, i.scheme, i.note
		 FROM opencivicdata_billidentifier i
		 WHERE i.bill_id = ANY($1)
		 ORDER BY i.identifier`,
		billID,
		func(row rowScanner) (string, models.BillIdentifier, error) {
			var parent string
			var i models.BillIdentifier
			err := row.Scan(&parent, &i.Identifier, &i.Scheme, &i.Note)
			return parent, i, err
		},
		func(b *models.Bill, c []models.BillIdentifier) { b.OtherIdentifiers = &c },
	)
	actions := hasMany(models.BillActions,
		`SELECT a.bill_id, o.id, o.name, o.classification, a.description, a.date, a.classification, a."order"
		 FROM opencivicdata_billaction a
		 JOIN opencivicdata_organization o ON o.id = a.organization_id
		 WHERE a.bill_id = ANY($1)
		 ORDER BY a."order"`,
		billID,
		func(row rowScanner) (string, models.BillAction, error) {
			var parent string
			var a models.BillAction
			var cls pq.StringArray
			err := row.Scan(&parent, &a.Organization.ID, &a.Organization.Name, &a.Organization.Classification,
				&a.Description, &a.Date, &cls, &a.Order)
			a.Classification = orEmpty([]string(cls))
			return parent, a, err
		},
		func(b *models.Bill, c []models.BillAction) { b.Actions = &c },
	)
	sources := hasMany(models.BillSources,
		`SELECT l.bill_id, l.url, l.note FROM opencivicdata_billsource l WHERE l.bill_id = ANY($1) ORDER BY l.url`,
		billID, scanLink,
		func(b *models.Bill, c []models.Link) { b.Sources = &c },
	)
	votes := hasMany(models.BillVotes,
		`SELECT v.bill_id, v.id, v.motion_text, v.motion_classification, v.start_date, v.result, v.identifier, v.extras,
		        o.id, o.name, o.classification
		 FROM opencivicdata_voteevent v
		 JOIN opencivicdata_organization o ON o.id = v.organization_id
		 WHERE v.bill_id = ANY($1)
		 ORDER BY v.start_date, v.id`,
		billID,
		func(row rowScanner) (string, models.VoteEvent, error) {
			var parent string
			var v models.VoteEvent
			var cls pq.StringArray
			var extras []byte
			if err := row.Scan(&parent, &v.ID, &v.MotionText, &cls, &v.StartDate, &v.Result, &v.Identifier, &extras,
				&v.Organization.ID, &v.Organization.Name, &v.Organization.Classification); err != nil {
				return "", v, err
			}
			v.MotionClassification = orEmpty([]string(cls))
			v.Extras = models.Extras{}
			v.Votes = []models.PersonVote{}
			v.Counts = []models.VoteCount{}
			return parent, v, decodeJSON(extras, &v.Extras)
		},
		func(b *models.Bill, c []models.VoteEvent) { b.Votes = &c },
	)
	counts := nested(models.BillVoteCounts,
		`SELECT c.vote_event_id, c.option, c.value
		 FROM opencivicdata_votecount c
		 WHERE c.vote_event_id = ANY($1)
		 ORDER BY c.option`,
		billVotes, voteEventID,
		func(row rowScanner) (string, models.VoteCount, error) {
			var parent string
			var c models.VoteCount
			err := row.Scan(&parent, &c.Option, &c.Value)
			return parent, c, err
		},
		func(v *models.VoteEvent, c []models.VoteCount) { v.Counts = c },
	)
	personVotes := nested(models.BillVoteVotes,
		`SELECT pv.vote_event_id, pv.option, pv.voter_name, coalesce(pv.voter_id, ''), pv.note
		 FROM opencivicdata_personvote pv
		 WHERE pv.vote_event_id = ANY($1)
		 ORDER BY pv.voter_name`,
		billVotes, voteEventID,
		func(row rowScanner) (string, models.PersonVote, error) {
			var parent string
			var pv models.PersonVote
			err := row.Scan(&parent, &pv.Option, &pv.VoterName, &pv.VoterID, &pv.Note)
			return parent, pv, err
		},
		func(v *models.VoteEvent, c []models.PersonVote) { v.Votes = c },
	)
	return newTable("bill", db, billBase, scanBill,
		sponsorships, abstracts, titles, identifiers, actions, sources, votes, counts, personVotes)
}
