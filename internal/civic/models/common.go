// Package models holds the read-side civic record types returned by the API.
//
// Optional members are pointers to slices. A nil pointer means the member was
// not requested and is omitted from the JSON body; a requested member with no
// rows renders as an empty list.
package models

// CompactJurisdiction is the jurisdiction summary embedded in other records.
type CompactJurisdiction struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Classification string `json:"classification"`
}

// CompactOrganization is the organization summary embedded in other records.
type CompactOrganization struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Classification string `json:"classification"`
}

// CompactPerson is the person summary embedded in memberships and votes.
type CompactPerson struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Party       string       `json:"party"`
	CurrentRole *CurrentRole `json:"current_role"`
}

// Link is a url with an optional note, used for links and sources.
type Link struct {
	URL  string `json:"url"`
	Note string `json:"note"`
}

// Extras is free-form JSON attached to a record.
type Extras map[string]any
