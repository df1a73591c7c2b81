package models

// Committee members.
const (
	CommitteeMemberships = "memberships"
	CommitteeLinks       = "links"
	CommitteeSources     = "sources"
)

type Committee struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Classification string `json:"classification"`
	ParentID       string `json:"parent_id"`
	Extras         Extras `json:"extras"`

	Memberships *[]Membership `json:"memberships,omitempty"`
	Links       *[]Link       `json:"links,omitempty"`
	Sources     *[]Link       `json:"sources,omitempty"`
}

type Membership struct {
	PersonName string         `json:"person_name"`
	Role       string         `json:"role"`
	Person     *CompactPerson `json:"person"`
}
