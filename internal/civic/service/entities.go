package service

import (
	"context"
	"fmt"

	"statehouse/internal/civic/models"
	"statehouse/internal/pagination"
)

const latestRunsLimit = 20

func (s *Service) jurisdictionEntity() pagination.Entity[models.Jurisdiction] {
	return pagination.Entity[models.Jurisdiction]{
		Name: "jurisdiction",
		Includes: []string{
			models.JurisdictionOrganizations,
			models.JurisdictionLegislativeSessions,
			models.JurisdictionLatestRuns,
		},
		Overrides: map[string][]string{
			models.JurisdictionLatestRuns: {},
		},
		Clear: func(j *models.Jurisdiction, member string) {
			switch member {
			case models.JurisdictionOrganizations:
				j.Organizations = nil
			case models.JurisdictionLegislativeSessions:
				j.LegislativeSessions = nil
			case models.JurisdictionLatestRuns:
				j.LatestRuns = nil
			}
		},
		Hooks: map[string]pagination.Hook[models.Jurisdiction]{
			models.JurisdictionLatestRuns: func(ctx context.Context, j *models.Jurisdiction) error {
				runs, err := s.runs.LatestRuns(ctx, j.ID, latestRunsLimit)
				if err != nil {
					return fmt.Errorf("latest runs: %w", err)
				}
				j.LatestRuns = &runs
				return nil
			},
		},
		DefaultPerPage: 52,
		MaxPerPage:     52,
	}
}

func personEntity() pagination.Entity[models.Person] {
	return pagination.Entity[models.Person]{
		Name: "person",
		Includes: []string{
			models.PersonOtherIdentifiers,
			models.PersonOtherNames,
			models.PersonLinks,
			models.PersonSources,
			models.PersonOffices,
		},
		Overrides: map[string][]string{
			models.PersonOffices: {models.PersonContactDetails},
		},
		Clear: func(p *models.Person, member string) {
			switch member {
			case models.PersonOtherIdentifiers:
				p.OtherIdentifiers = nil
			case models.PersonOtherNames:
				p.OtherNames = nil
			case models.PersonLinks:
				p.Links = nil
			case models.PersonSources:
				p.Sources = nil
			case models.PersonOffices:
				p.Offices = nil
			}
		},
		DefaultPerPage: 10,
		MaxPerPage:     50,
	}
}

func billEntity() pagination.Entity[models.Bill] {
	return pagination.Entity[models.Bill]{
		Name: "bill",
		Includes: []string{
			models.BillSponsorships,
			models.BillAbstracts,
			models.BillOtherTitles,
			models.BillOtherIdentifiers,
			models.BillActions,
			models.BillSources,
			models.BillVotes,
		},
		Overrides: map[string][]string{
			models.BillVotes: {models.BillVotes, models.BillVoteCounts, models.BillVoteVotes},
		},
		Clear: func(b *models.Bill, member string) {
			switch member {
			case models.BillSponsorships:
				b.Sponsorships = nil
			case models.BillAbstracts:
				b.Abstracts = nil
			case models.BillOtherTitles:
				b.OtherTitles = nil
			case models.BillOtherIdentifiers:
				b.OtherIdentifiers = nil
			case models.BillActions:
				b.Actions = nil
			case models.BillSources:
				b.Sources = nil
			case models.BillVotes:
				b.Votes = nil
			}
		},
		DefaultPerPage: 10,
		MaxPerPage:     20,
	}
}

func committeeEntity() pagination.Entity[models.Committee] {
	return pagination.Entity[models.Committee]{
		Name: "committee",
		Includes: []string{
			models.CommitteeMemberships,
			models.CommitteeLinks,
			models.CommitteeSources,
		},
		// links and sources are columns of the committee row.
		Overrides: map[string][]string{
			models.CommitteeLinks:   {},
			models.CommitteeSources: {},
		},
		Clear: func(c *models.Committee, member string) {
			switch member {
			case models.CommitteeMemberships:
				c.Memberships = nil
			case models.CommitteeLinks:
				c.Links = nil
			case models.CommitteeSources:
				c.Sources = nil
			}
		},
		DefaultPerPage: 20,
		MaxPerPage:     20,
	}
}

func eventEntity() pagination.Entity[models.Event] {
	return pagination.Entity[models.Event]{
		Name: "event",
		Includes: []string{
			models.EventLinks,
			models.EventSources,
			models.EventMedia,
			models.EventDocuments,
			models.EventParticipants,
			models.EventAgenda,
		},
		Overrides: map[string][]string{
			models.EventLinks:   {},
			models.EventSources: {},
			models.EventAgenda:  {models.EventAgenda, models.EventAgendaRelatedEntities, models.EventAgendaMedia},
		},
		Clear: func(e *models.Event, member string) {
			switch member {
			case models.EventLinks:
				e.Links = nil
			case models.EventSources:
				e.Sources = nil
			case models.EventMedia:
				e.Media = nil
			case models.EventDocuments:
				e.Documents = nil
			case models.EventParticipants:
				e.Participants = nil
			case models.EventAgenda:
				e.Agenda = nil
			}
		},
		DefaultPerPage: 20,
		MaxPerPage:     20,
	}
}
