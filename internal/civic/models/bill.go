package models

import "time"

// Bill members.
const (
	BillSponsorships     = "sponsorships"
	BillAbstracts        = "abstracts"
	BillOtherTitles      = "other_titles"
	BillOtherIdentifiers = "other_identifiers"
	BillActions          = "actions"
	BillSources          = "sources"
	BillVotes            = "votes"

	// Relation paths nested under votes.
	BillVoteCounts = "votes.counts"
	BillVoteVotes  = "votes.votes"
)

type Bill struct {
	ID                      string              `json:"id"`
	Session                 string              `json:"session"`
	Jurisdiction            CompactJurisdiction `json:"jurisdiction"`
	FromOrganization        CompactOrganization `json:"from_organization"`
	Identifier              string              `json:"identifier"`
	Title                   string              `json:"title"`
	Classification          []string            `json:"classification"`
	Subject                 []string            `json:"subject"`
	Extras                  Extras              `json:"extras"`
	CreatedAt               time.Time           `json:"created_at"`
	UpdatedAt               time.Time           `json:"updated_at"`
	FirstActionDate         string              `json:"first_action_date"`
	LatestActionDate        string              `json:"latest_action_date"`
	LatestActionDescription string              `json:"latest_action_description"`
	LatestPassageDate       string              `json:"latest_passage_date"`

	Sponsorships     *[]BillSponsorship `json:"sponsorships,omitempty"`
	Abstracts        *[]BillAbstract    `json:"abstracts,omitempty"`
	OtherTitles      *[]BillTitle       `json:"other_titles,omitempty"`
	OtherIdentifiers *[]BillIdentifier  `json:"other_identifiers,omitempty"`
	Actions          *[]BillAction      `json:"actions,omitempty"`
	Sources          *[]Link            `json:"sources,omitempty"`
	Votes            *[]VoteEvent       `json:"votes,omitempty"`
}

type BillSponsorship struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	EntityType     string `json:"entity_type"`
	Primary        bool   `json:"primary"`
	Classification string `json:"classification"`
}

type BillAbstract struct {
	Abstract string `json:"abstract"`
	Note     string `json:"note"`
	Date     string `json:"date"`
}

type BillTitle struct {
	Title string `json:"title"`
	Note  string `json:"note"`
}

type BillIdentifier struct {
	Identifier string `json:"identifier"`
	Scheme     string `json:"scheme"`
	Note       string `json:"note"`
}

type BillAction struct {
	Organization   CompactOrganization `json:"organization"`
	Description    string              `json:"description"`
	Date           string              `json:"date"`
	Classification []string            `json:"classification"`
	Order          int                 `json:"order"`
}

type VoteEvent struct {
	ID                   string              `json:"id"`
	MotionText           string              `json:"motion_text"`
	MotionClassification []string            `json:"motion_classification"`
	StartDate            string              `json:"start_date"`
	Result               string              `json:"result"`
	Identifier           string              `json:"identifier"`
	Extras               Extras              `json:"extras"`
	Organization         CompactOrganization `json:"organization"`
	Votes                []PersonVote        `json:"votes"`
	Counts               []VoteCount         `json:"counts"`
}

type PersonVote struct {
	Option    string `json:"option"`
	VoterName string `json:"voter_name"`
	VoterID   string `json:"voter_id,omitempty"`
	Note      string `json:"note"`
}

type VoteCount struct {
	Option string `json:"option"`
	Value  int    `json:"value"`
}
