package models

import "time"

// Jurisdiction members.
const (
	JurisdictionOrganizations       = "organizations"
	JurisdictionLegislativeSessions = "legislative_sessions"
	JurisdictionLatestRuns          = "latest_runs"
)

type Jurisdiction struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Classification     string     `json:"classification"`
	DivisionID         string     `json:"division_id"`
	URL                string     `json:"url"`
	LatestBillUpdate   *time.Time `json:"latest_bill_update,omitempty"`
	LatestPeopleUpdate *time.Time `json:"latest_people_update,omitempty"`

	Organizations       *[]Chamber            `json:"organizations,omitempty"`
	LegislativeSessions *[]LegislativeSession `json:"legislative_sessions,omitempty"`
	LatestRuns          *[]RunPlan            `json:"latest_runs,omitempty"`
}

// Chamber is a top-level organization of a jurisdiction: a legislature, one
// of its chambers, or the executive.
type Chamber struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Classification string `json:"classification"`
}

type LegislativeSession struct {
	Identifier     string `json:"identifier"`
	Name           string `json:"name"`
	Classification string `json:"classification"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
}

// RunPlan records one scrape run for a jurisdiction.
type RunPlan struct {
	Success   bool      `json:"success"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Exception string    `json:"exception,omitempty"`
}
