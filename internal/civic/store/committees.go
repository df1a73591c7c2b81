package store

import (
	"database/sql"

	"statehouse/internal/civic/models"
	"statehouse/internal/query"
)

var committeeBase = query.Select("opencivicdata_organization c",
	"c.id", "c.name", "c.classification", "coalesce(c.parent_id, '')", "c.extras", "c.links", "c.sources",
).Join("JOIN opencivicdata_jurisdiction j ON j.id = c.jurisdiction_id")

func scanCommittee(row rowScanner) (*models.Committee, error) {
	var (
		c                      models.Committee
		extras, links, sources []byte
	)
	if err := row.Scan(&c.ID, &c.Name, &c.Classification, &c.ParentID, &extras, &links, &sources); err != nil {
		return nil, err
	}
	c.Extras = models.Extras{}
	if err := decodeJSON(extras, &c.Extras); err != nil {
		return nil, err
	}
	var l, s []models.Link
	if err := decodeJSON(links, &l); err != nil {
		return nil, err
	}
	if err := decodeJSON(sources, &s); err != nil {
		return nil, err
	}
	l, s = orEmpty(l), orEmpty(s)
	c.Links, c.Sources = &l, &s
	return &c, nil
}

func newCommittees(db DB) *Table[models.Committee] {
	memberships := hasMany(models.CommitteeMemberships,
		`SELECT m.organization_id, m.person_name, m.role, p.id, p.name, p.primary_party, p.current_role
		 FROM opencivicdata_membership m
		 LEFT JOIN opencivicdata_person p ON p.id = m.person_id
		 WHERE m.organization_id = ANY($1)
		 ORDER BY m.person_name`,
		func(c *models.Committee) string { return c.ID },
		func(row rowScanner) (string, models.Membership, error) {
			var (
				parent            string
				m                 models.Membership
				pid, pname, party sql.NullString
				role              []byte
			)
			if err := row.Scan(&parent, &m.PersonName, &m.Role, &pid, &pname, &party, &role); err != nil {
				return "", m, err
			}
			if pid.Valid {
				m.Person = &models.CompactPerson{ID: pid.String, Name: nullString(pname), Party: nullString(party)}
				if len(role) > 0 && string(role) != "null" {
					m.Person.CurrentRole = &models.CurrentRole{}
					if err := decodeJSON(role, m.Person.CurrentRole); err != nil {
						return "", m, err
					}
				}
			}
			return parent, m, nil
		},
		func(c *models.Committee, m []models.Membership) { c.Memberships = &m },
	)
	return newTable("committee", db, committeeBase, scanCommittee, memberships)
}
