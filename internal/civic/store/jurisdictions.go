package store

import (
	"context"
	"database/sql"
	"fmt"

	"statehouse/internal/civic/models"
	"statehouse/internal/query"
)

var jurisdictionBase = query.Select("opencivicdata_jurisdiction j",
	"j.id", "j.name", "j.classification", "coalesce(j.division_id, '')", "j.url",
	"j.latest_bill_update", "j.latest_people_update",
)

func scanJurisdiction(row rowScanner) (*models.Jurisdiction, error) {
	var (
		j                  models.Jurisdiction
		billUpd, peopleUpd sql.NullTime
	)
	if err := row.Scan(&j.ID, &j.Name, &j.Classification, &j.DivisionID, &j.URL, &billUpd, &peopleUpd); err != nil {
		return nil, err
	}
	if billUpd.Valid {
		j.LatestBillUpdate = &billUpd.Time
	}
	if peopleUpd.Valid {
		j.LatestPeopleUpdate = &peopleUpd.Time
	}
	return &j, nil
}

func jurisdictionID(j *models.Jurisdiction) string { return j.ID }

func newJurisdictions(db DB) *Table[models.Jurisdiction] {
	organizations := hasMany(models.JurisdictionOrganizations,
		`SELECT o.jurisdiction_id, o.id, o.name, o.classification
		 FROM opencivicdata_organization o
		 WHERE o.jurisdiction_id = ANY($1) AND o.classification IN ('legislature', 'upper', 'lower', 'executive')
		 ORDER BY o.name`,
		jurisdictionID,
		func(row rowScanner) (string, models.Chamber, error) {
			var parent string
			var c models.Chamber
			err := row.Scan(&parent, &c.ID, &c.Name, &c.Classification)
			return parent, c, err
		},
		func(j *models.Jurisdiction, c []models.Chamber) { j.Organizations = &c },
	)
	organizations.Default = true

	sessions := hasMany(models.JurisdictionLegislativeSessions,
		`SELECT s.jurisdiction_id, s.identifier, s.name, s.classification, coalesce(s.start_date, ''), coalesce(s.end_date, '')
		 FROM opencivicdata_legislativesession s
		 WHERE s.jurisdiction_id = ANY($1)
		 ORDER BY s.start_date, s.identifier`,
		jurisdictionID,
		func(row rowScanner) (string, models.LegislativeSession, error) {
			var parent string
			var s models.LegislativeSession
			err := row.Scan(&parent, &s.Identifier, &s.Name, &s.Classification, &s.StartDate, &s.EndDate)
			return parent, s, err
		},
		func(j *models.Jurisdiction, s []models.LegislativeSession) { j.LegislativeSessions = &s },
	)

	return newTable("jurisdiction", db, jurisdictionBase, scanJurisdiction, organizations, sessions)
}

// RunStore reads scrape run history.
type RunStore struct {
	db DB
}

// LatestRuns returns up to limit runs for a jurisdiction, most recent first.
func (s *RunStore) LatestRuns(ctx context.Context, jurisdictionID string, limit int) ([]models.RunPlan, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT r.success, r.start_time, r.end_time, coalesce(r.exception, '')
		 FROM pupa_runplan r
		 WHERE r.jurisdiction_id = $1
		 ORDER BY r.end_time DESC
		 LIMIT $2`, jurisdictionID, limit)
	if err != nil {
		return nil, fmt.Errorf("select runs: %w", err)
	}
	defer rows.Close()

	runs := []models.RunPlan{}
	for rows.Next() {
		var r models.RunPlan
		if err := rows.Scan(&r.Success, &r.StartTime, &r.EndTime, &r.Exception); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select runs: %w", err)
	}
	return runs, nil
}
