package identifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"statehouse/internal/query"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"HB1", "HB 1"},
		{"HB 1", "HB 1"},
		{"HB  0001", "HB 1"},
		{"HB074", "HB 74"},
		{"SB 27", "SB 27"},
		{"SJRA", "SJR A"},
		{"HJR  B", "HJR B"},
		{"SJR 12", "SJR 12"},
		{"hb1", "hb 1"},
		{"LB-12", "LB -12"},
		{"  HB7  ", "HB 7"},
		{"resolution", "resolution"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	for _, in := range []string{"HB1", "HB 0001", "SJRA", "HJR  B", "hb1", "AB 12 3", "SR 0"} {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), in)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		in   string
		want Classification
	}{
		{"HB 1", Classification{IdentifierLookup, "HB 1"}},
		{"hb1", Classification{IdentifierLookup, "HB 1"}},
		{"SJR 012", Classification{IdentifierLookup, "SJR 12"}},
		{" LB7 ", Classification{IdentifierLookup, "LB 7"}},
		{"moose", Classification{FullTextSearch, "moose"}},
		{"HB 123456", Classification{FullTextSearch, "HB 123456"}},
		{"gun control HB 1", Classification{FullTextSearch, "gun control HB 1"}},
		{"HOUSE 1", Classification{FullTextSearch, "HOUSE 1"}},
		{"ÄB 1", Classification{FullTextSearch, "ÄB 1"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.in))
		})
	}
}

func TestClassificationPredicate(t *testing.T) {
	cols := Columns{Identifier: "b.identifier", SearchVector: "sb.search_vector", Language: "english"}

	sql, args := query.Render(Classify("hb1").Predicate(cols))
	assert.Equal(t, "b.identifier = $1", sql)
	assert.Equal(t, []any{"HB 1"}, args)

	sql, args = query.Render(Classify("property tax").Predicate(cols))
	assert.Equal(t, "sb.search_vector @@ websearch_to_tsquery($1::regconfig, $2)", sql)
	assert.Equal(t, []any{"english", "property tax"}, args)
}
