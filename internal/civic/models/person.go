package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Person members.
const (
	PersonOtherIdentifiers = "other_identifiers"
	PersonOtherNames       = "other_names"
	PersonLinks            = "links"
	PersonSources          = "sources"
	PersonOffices          = "offices"

	// PersonContactDetails is the relation path backing offices.
	PersonContactDetails = "contact_details"
)

type Person struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Party        string              `json:"party"`
	CurrentRole  *CurrentRole        `json:"current_role"`
	Jurisdiction CompactJurisdiction `json:"jurisdiction"`
	GivenName    string              `json:"given_name"`
	FamilyName   string              `json:"family_name"`
	Image        string              `json:"image"`
	Email        string              `json:"email"`
	Gender       string              `json:"gender"`
	BirthDate    string              `json:"birth_date"`
	DeathDate    string              `json:"death_date"`
	Extras       Extras              `json:"extras"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`

	OtherIdentifiers *[]PersonIdentifier `json:"other_identifiers,omitempty"`
	OtherNames       *[]AltName          `json:"other_names,omitempty"`
	Links            *[]Link             `json:"links,omitempty"`
	Sources          *[]Link             `json:"sources,omitempty"`
	Offices          *[]Office           `json:"offices,omitempty"`
}

// CurrentRole is the denormalized role a person currently holds.
type CurrentRole struct {
	Title             string `json:"title"`
	OrgClassification string `json:"org_classification"`
	District          string `json:"district"`
	DivisionID        string `json:"division_id"`
}

// UnmarshalJSON accepts districts stored either as strings or numbers.
func (r *CurrentRole) UnmarshalJSON(data []byte) error {
	type plain CurrentRole
	var raw struct {
		plain
		District json.RawMessage `json:"district"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = CurrentRole(raw.plain)
	r.District = ""
	switch d := strings.TrimSpace(string(raw.District)); {
	case d == "" || d == "null":
	case strings.HasPrefix(d, `"`):
		if err := json.Unmarshal(raw.District, &r.District); err != nil {
			return err
		}
	default:
		r.District = d
	}
	return nil
}

type PersonIdentifier struct {
	Identifier string `json:"identifier"`
	Scheme     string `json:"scheme"`
}

type AltName struct {
	Name string `json:"name"`
	Note string `json:"note"`
}

// ContactDetail is one typed contact value grouped under an office note.
type ContactDetail struct {
	Type  string
	Value string
	Note  string
}

// Office groups the contact details that share a note.
type Office struct {
	Name    string  `json:"name"`
	Fax     *string `json:"fax"`
	Voice   *string `json:"voice"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}

// OfficesFrom groups contact details by note, in first-seen order. Detail
// types other than fax, voice, email and address are ignored.
func OfficesFrom(details []ContactDetail) []Office {
	offices := []Office{}
	index := map[string]int{}
	for _, cd := range details {
		i, ok := index[cd.Note]
		if !ok {
			i = len(offices)
			index[cd.Note] = i
			offices = append(offices, Office{Name: cd.Note})
		}
		value := cd.Value
		switch cd.Type {
		case "fax":
			offices[i].Fax = &value
		case "voice":
			offices[i].Voice = &value
		case "email":
			offices[i].Email = &value
		case "address":
			offices[i].Address = &value
		}
	}
	return offices
}
