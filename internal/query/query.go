// Package query models an already-filtered, already-ordered result set over
// the relational store, together with the relation-loading directives the
// store honours when it executes the query.
//
// A Query is a value: every builder method returns a modified copy, so a
// base query can be shared across requests and refined per request.
package query

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// LoadMode is the loading directive attached to a relation path.
type LoadMode int

const (
	// LoadDefault leaves the relation to the store's default strategy.
	LoadDefault LoadMode = iota
	// LoadEager fetches the relation alongside the primary rows.
	LoadEager
	// LoadSuppress prevents the relation from loading even when the store
	// would load it by default.
	LoadSuppress
)

func (m LoadMode) String() string {
	switch m {
	case LoadEager:
		return "eager"
	case LoadSuppress:
		return "suppress"
	default:
		return "default"
	}
}

// Query is a SELECT over a FROM clause with joins, predicates, ordering and
// per-relation load directives.
type Query struct {
	from    string
	columns []string
	joins   []string
	where   []Predicate
	orderBy []string
	loads   map[string]LoadMode
}

// Select starts a query over from (a table with alias) returning columns.
func Select(from string, columns ...string) Query {
	return Query{from: from, columns: slices.Clone(columns)}
}

// Join appends a full join clause, e.g. "JOIN t x ON x.id = y.t_id".
func (q Query) Join(clause string) Query {
	q.joins = slices.Concat(q.joins, []string{clause})
	return q
}

// Where appends predicates, combined with AND.
func (q Query) Where(preds ...Predicate) Query {
	q.where = slices.Concat(q.where, preds)
	return q
}

// OrderBy appends ordering terms, e.g. "b.updated_at DESC".
func (q Query) OrderBy(terms ...string) Query {
	q.orderBy = slices.Concat(q.orderBy, terms)
	return q
}

// Ordered reports whether the query carries an explicit ordering.
func (q Query) Ordered() bool {
	return len(q.orderBy) > 0
}

// Eager marks relation paths for eager loading.
func (q Query) Eager(paths ...string) Query {
	return q.withLoad(LoadEager, paths)
}

// Suppress marks relation paths as not to be loaded.
func (q Query) Suppress(paths ...string) Query {
	return q.withLoad(LoadSuppress, paths)
}

func (q Query) withLoad(mode LoadMode, paths []string) Query {
	if len(paths) == 0 {
		return q
	}
	loads := maps.Clone(q.loads)
	if loads == nil {
		loads = make(map[string]LoadMode, len(paths))
	}
	for _, p := range paths {
		loads[p] = mode
	}
	q.loads = loads
	return q
}

// Load returns the directive attached to path.
func (q Query) Load(path string) LoadMode {
	return q.loads[path]
}

// Directives returns a copy of every directive attached to the query.
func (q Query) Directives() map[string]LoadMode {
	return maps.Clone(q.loads)
}

// SQL renders the windowed SELECT. A non-positive limit renders no LIMIT.
func (q Query) SQL(limit, offset int) (string, []any) {
	b := &binder{}
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(q.columns, ", "))
	q.writeBody(&sb, b)
	if len(q.orderBy) > 0 {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(q.orderBy, ", "))
	}
	if limit > 0 {
		sb.WriteString(" LIMIT ")
		sb.WriteString(strconv.Itoa(limit))
	}
	if offset > 0 {
		sb.WriteString(" OFFSET ")
		sb.WriteString(strconv.Itoa(offset))
	}
	return sb.String(), b.args
}

// CountSQL renders a COUNT over the same filtered rows, ignoring ordering.
func (q Query) CountSQL() (string, []any) {
	b := &binder{}
	var sb strings.Builder
	sb.WriteString("SELECT count(*) FROM (SELECT 1")
	q.writeBody(&sb, b)
	sb.WriteString(") AS counted")
	return sb.String(), b.args
}

func (q Query) writeBody(sb *strings.Builder, b *binder) {
	sb.WriteString(" FROM ")
	sb.WriteString(q.from)
	for _, j := range q.joins {
		sb.WriteString(" ")
		sb.WriteString(j)
	}
	if len(q.where) > 0 {
		parts := make([]string, 0, len(q.where))
		for _, p := range q.where {
			parts = append(parts, p.render(b))
		}
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(parts, " AND "))
	}
}
