package models

// Event members.
const (
	EventLinks        = "links"
	EventSources      = "sources"
	EventMedia        = "media"
	EventDocuments    = "documents"
	EventParticipants = "participants"
	EventAgenda       = "agenda"

	// Relation paths nested under agenda.
	EventAgendaRelatedEntities = "agenda.related_entities"
	EventAgendaMedia           = "agenda.media"
)

type Event struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Jurisdiction   CompactJurisdiction `json:"jurisdiction"`
	Description    string              `json:"description"`
	Classification string              `json:"classification"`
	StartDate      string              `json:"start_date"`
	EndDate        string              `json:"end_date"`
	AllDay         bool                `json:"all_day"`
	Status         string              `json:"status"`
	UpstreamID     string              `json:"upstream_id"`
	Deleted        bool                `json:"deleted"`
	Location       *EventLocation      `json:"location"`

	Links        *[]Link             `json:"links,omitempty"`
	Sources      *[]Link             `json:"sources,omitempty"`
	Media        *[]Media            `json:"media,omitempty"`
	Documents    *[]EventDocument    `json:"documents,omitempty"`
	Participants *[]EventParticipant `json:"participants,omitempty"`
	Agenda       *[]AgendaItem       `json:"agenda,omitempty"`
}

type EventLocation struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Media struct {
	Note           string `json:"note"`
	Date           string `json:"date"`
	Offset         *int   `json:"offset"`
	Classification string `json:"classification"`
	Links          []Link `json:"links"`
}

type EventDocument struct {
	Note           string `json:"note"`
	Date           string `json:"date"`
	Classification string `json:"classification"`
	Links          []Link `json:"links"`
}

type EventParticipant struct {
	Note       string `json:"note"`
	Name       string `json:"name"`
	EntityType string `json:"entity_type"`
}

type AgendaItem struct {
	ID              string          `json:"-"`
	Description     string          `json:"description"`
	Classification  []string        `json:"classification"`
	Order           int             `json:"order"`
	Subjects        []string        `json:"subjects"`
	Notes           []string        `json:"notes"`
	Extras          Extras          `json:"extras"`
	RelatedEntities []RelatedEntity `json:"related_entities"`
	Media           []Media         `json:"media"`
}

type RelatedEntity struct {
	Note       string `json:"note"`
	Name       string `json:"name"`
	EntityType string `json:"entity_type"`
}
