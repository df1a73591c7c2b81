// Package jurisdiction holds the static state metadata table and resolves
// user-supplied jurisdiction tokens into query predicates.
package jurisdiction

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed states.yaml
var statesYAML []byte

// State is one row of the static metadata table.
type State struct {
	Abbr       string `yaml:"abbr"`
	Name       string `yaml:"name"`
	DivisionID string `yaml:"division_id"`
}

// JurisdictionID is the canonical government jurisdiction of the state.
func (s State) JurisdictionID() string {
	return IDForDivision(s.DivisionID)
}

// IDForDivision maps a division id to the id of the government jurisdiction
// seated there: "ocd-division/country:us/state:ne" becomes
// "ocd-jurisdiction/country:us/state:ne/government".
func IDForDivision(divisionID string) string {
	return "ocd-jurisdiction/" + strings.TrimPrefix(divisionID, "ocd-division/") + "/government"
}

// Metadata is an immutable abbreviation-indexed view of the state table.
type Metadata struct {
	byAbbr map[string]State
}

// LoadMetadata parses the embedded state table.
func LoadMetadata() (*Metadata, error) {
	return parseMetadata(statesYAML)
}

func parseMetadata(data []byte) (*Metadata, error) {
	var doc struct {
		States []State `yaml:"states"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse state metadata: %w", err)
	}
	m := &Metadata{byAbbr: make(map[string]State, len(doc.States))}
	for _, s := range doc.States {
		key := strings.ToLower(s.Abbr)
		if _, dup := m.byAbbr[key]; dup {
			return nil, fmt.Errorf("parse state metadata: duplicate abbreviation %q", s.Abbr)
		}
		m.byAbbr[key] = s
	}
	return m, nil
}

// Lookup finds a state by postal abbreviation, case-insensitively.
func (m *Metadata) Lookup(abbr string) (State, bool) {
	s, ok := m.byAbbr[strings.ToLower(abbr)]
	return s, ok
}

// Len returns the number of states in the table.
func (m *Metadata) Len() int {
	return len(m.byAbbr)
}
