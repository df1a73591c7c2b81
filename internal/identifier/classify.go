package identifier

import (
	"regexp"
	"strings"

	"statehouse/internal/query"
)

// Short alphanumeric prefix followed by up to five digits, e.g. "HB 1", "SJR12".
// \w is ASCII-only under RE2; bill prefixes are ASCII letters.
var identifierShape = regexp.MustCompile(`^\w{1,3}\s*\d{1,5}$`)

// Kind distinguishes the two classifications of a free-text query.
type Kind int

const (
	FullTextSearch Kind = iota
	IdentifierLookup
)

func (k Kind) String() string {
	if k == IdentifierLookup {
		return "identifier_lookup"
	}
	return "full_text_search"
}

// Classification is the outcome of Classify. For an IdentifierLookup Value
// holds the normalized, upper-cased identifier; for a FullTextSearch it holds
// the query unchanged.
type Classification struct {
	Kind  Kind
	Value string
}

// Classify decides whether q is a bill identifier or search text.
func Classify(q string) Classification {
	trimmed := strings.TrimSpace(q)
	if identifierShape.MatchString(trimmed) {
		return Classification{Kind: IdentifierLookup, Value: strings.ToUpper(Normalize(trimmed))}
	}
	return Classification{Kind: FullTextSearch, Value: q}
}

// Columns names the SQL expressions a classification is matched against.
type Columns struct {
	Identifier   string
	SearchVector string
	Language     string
}

// Predicate renders the classification as a filter over cols.
func (c Classification) Predicate(cols Columns) query.Predicate {
	if c.Kind == IdentifierLookup {
		return query.Eq(cols.Identifier, c.Value)
	}
	return query.Match(cols.SearchVector, cols.Language, c.Value)
}
