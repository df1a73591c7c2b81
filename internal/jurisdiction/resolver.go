package jurisdiction

import (
	"strings"
	"unicode/utf8"

	"statehouse/internal/query"
)

// Columns of the joined jurisdiction row. Every entity query joins the
// jurisdiction table under the alias "j".
const (
	IDColumn             = "j.id"
	NameColumn           = "j.name"
	ClassificationColumn = "j.classification"
)

const (
	idPrefix = "ocd-jurisdiction"

	// Names resolve only among state-level jurisdictions.
	stateClassification = "state"
)

// Resolver turns a jurisdiction token into a predicate.
type Resolver struct {
	metadata *Metadata
}

func NewResolver(metadata *Metadata) *Resolver {
	return &Resolver{metadata: metadata}
}

// Resolve accepts a postal abbreviation, a canonical jurisdiction id or a
// state display name and returns a predicate over idColumn or the
// jurisdiction name and classification. A two-character token that is not a
// known abbreviation is treated as a name. The empty token matches nothing.
func (r *Resolver) Resolve(token, idColumn string) query.Predicate {
	switch {
	case token == "":
		return query.Nothing()
	case utf8.RuneCountInString(token) == 2:
		if s, ok := r.metadata.Lookup(token); ok {
			return query.Eq(idColumn, s.JurisdictionID())
		}
		return byStateName(token)
	case strings.HasPrefix(token, idPrefix):
		return query.Eq(idColumn, token)
	default:
		return byStateName(token)
	}
}

func byStateName(name string) query.Predicate {
	return query.And(query.Eq(NameColumn, name), query.Eq(ClassificationColumn, stateClassification))
}
