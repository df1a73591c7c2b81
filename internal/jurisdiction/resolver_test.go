package jurisdiction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statehouse/internal/query"
)

func TestLoadMetadata(t *testing.T) {
	m, err := LoadMetadata()
	require.NoError(t, err)

	assert.Equal(t, 52, m.Len())

	ne, ok := m.Lookup("NE")
	require.True(t, ok)
	assert.Equal(t, "Nebraska", ne.Name)
	assert.Equal(t, "ocd-jurisdiction/country:us/state:ne/government", ne.JurisdictionID())

	dc, ok := m.Lookup("dc")
	require.True(t, ok)
	assert.Equal(t, "ocd-jurisdiction/country:us/district:dc/government", dc.JurisdictionID())

	_, ok = m.Lookup("zz")
	assert.False(t, ok)
}

func TestParseMetadataRejectsDuplicates(t *testing.T) {
	_, err := parseMetadata([]byte("states:\n  - abbr: ne\n  - abbr: NE\n"))
	assert.ErrorContains(t, err, "duplicate abbreviation")
}

func TestResolve(t *testing.T) {
	m, err := LoadMetadata()
	require.NoError(t, err)
	r := NewResolver(m)

	tests := []struct {
		name     string
		token    string
		wantSQL  string
		wantArgs []any
	}{
		{"abbreviation", "ne", "b.jurisdiction_id = $1", []any{"ocd-jurisdiction/country:us/state:ne/government"}},
		{"upper abbreviation", "OH", "b.jurisdiction_id = $1", []any{"ocd-jurisdiction/country:us/state:oh/government"}},
		{"unknown two letters", "zz", "(j.name = $1 AND j.classification = $2)", []any{"zz", "state"}},
		{"canonical id", "ocd-jurisdiction/country:us/state:oh/government", "b.jurisdiction_id = $1", []any{"ocd-jurisdiction/country:us/state:oh/government"}},
		{"name", "Nebraska", "(j.name = $1 AND j.classification = $2)", []any{"Nebraska", "state"}},
		{"municipality name", "Mentor", "(j.name = $1 AND j.classification = $2)", []any{"Mentor", "state"}},
		{"empty", "", "FALSE", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := query.Render(r.Resolve(tt.token, "b.jurisdiction_id"))
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestIDForDivision(t *testing.T) {
	assert.Equal(t,
		"ocd-jurisdiction/country:us/state:oh/place:mentor/government",
		IDForDivision("ocd-division/country:us/state:oh/place:mentor"))
}
