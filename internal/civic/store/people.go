package store

import (
	"database/sql"

	"statehouse/internal/civic/models"
	"statehouse/internal/query"
)

var personBase = query.Select("opencivicdata_person p",
	"p.id", "p.name", "coalesce(p.primary_party, '')", "p.current_role",
	"j.id", "j.name", "j.classification",
	"p.given_name", "p.family_name", "p.image", "p.email", "p.gender", "p.birth_date", "p.death_date",
	"p.extras", "p.created_at", "p.updated_at",
).Join("JOIN opencivicdata_jurisdiction j ON j.id = p.current_jurisdiction_id")

func scanPerson(row rowScanner) (*models.Person, error) {
	var (
		p            models.Person
		role, extras []byte
	)
	err := row.Scan(&p.ID, &p.Name, &p.Party, &role,
		&p.Jurisdiction.ID, &p.Jurisdiction.Name, &p.Jurisdiction.Classification,
		&p.GivenName, &p.FamilyName, &p.Image, &p.Email, &p.Gender, &p.BirthDate, &p.DeathDate,
		&extras, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(role) > 0 && string(role) != "null" {
		p.CurrentRole = &models.CurrentRole{}
		if err := decodeJSON(role, p.CurrentRole); err != nil {
			return nil, err
		}
	}
	p.Extras = models.Extras{}
	if err := decodeJSON(extras, &p.Extras); err != nil {
		return nil, err
	}
	return &p, nil
}

func personID(p *models.Person) string { return p.ID }

func scanLink(row rowScanner) (string, models.Link, error) {
	var parent string
	var l models.Link
	var note sql.NullString
	err := row.Scan(&parent, &l.URL, &note)
	l.Note = nullString(note)
	return parent, l, err
}

func newPeople(db DB) *Table[models.Person] {
	identifiers := hasMany(models.PersonOtherIdentifiers,
		`SELECT i.person_id, i.identifier, i.scheme
		 FROM opencivicdata_personidentifier i
		 WHERE i.person_id = ANY($1)
		 ORDER BY i.scheme, i.identifier`,
		personID,
		func(row rowScanner) (string, models.PersonIdentifier, error) {
			var parent string
			var i models.PersonIdentifier
			err := row.Scan(&parent, &i.Identifier, &i.Scheme)
			return parent, i, err
		},
		func(p *models.Person, c []models.PersonIdentifier) { p.OtherIdentifiers = &c },
	)
	names := hasMany(models.PersonOtherNames,
		`SELECT n.person_id, n.name, coalesce(n.note, '')
		 FROM opencivicdata_personname n
		 WHERE n.person_id = ANY($1)
		 ORDER BY n.name`,
		personID,
		func(row rowScanner) (string, models.AltName, error) {
			var parent string
			var n models.AltName
			err := row.Scan(&parent, &n.Name, &n.Note)
			return parent, n, err
		},
		func(p *models.Person, c []models.AltName) { p.OtherNames = &c },
	)
	links := hasMany(models.PersonLinks,
		`SELECT l.person_id, l.url, l.note FROM opencivicdata_personlink l WHERE l.person_id = ANY($1) ORDER BY l.url`,
		personID, scanLink,
		func(p *models.Person, c []models.Link) { p.Links = &c },
	)
	sources := hasMany(models.PersonSources,
		`SELECT l.person_id, l.url, l.note FROM opencivicdata_personsource l WHERE l.person_id = ANY($1) ORDER BY l.url`,
		personID, scanLink,
		func(p *models.Person, c []models.Link) { p.Sources = &c },
	)
	contacts := hasMany(models.PersonContactDetails,
		`SELECT d.person_id, d.type, d.value, coalesce(d.note, '')
		 FROM opencivicdata_personcontactdetail d
		 WHERE d.person_id = ANY($1)
		 ORDER BY d.note, d.type`,
		personID,
		func(row rowScanner) (string, models.ContactDetail, error) {
			var parent string
			var d models.ContactDetail
			err := row.Scan(&parent, &d.Type, &d.Value, &d.Note)
			return parent, d, err
		},
		func(p *models.Person, c []models.ContactDetail) {
			offices := models.OfficesFrom(c)
			p.Offices = &offices
		},
	)
	return newTable("person", db, personBase, scanPerson, identifiers, names, links, sources, contacts)
}
