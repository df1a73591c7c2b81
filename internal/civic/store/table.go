// Package store executes entity queries against the Open Civic Data schema
// in Postgres and loads the relations their directives request.
package store

import (
	"cmp"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/lib/pq"

	"statehouse/internal/query"
)

// DB is the subset of *sql.DB the store uses.
type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type rowScanner interface {
	Scan(dest ...any) error
}

// Relation loads one relation path for a batch of primary records.
type Relation[T any] struct {
	Path string
	// Default loads the relation when the query carries no directive for it.
	Default bool
	Load    func(ctx context.Context, db DB, records []*T) error
}

// Table is the query source for one entity type.
type Table[T any] struct {
	name      string
	db        DB
	base      query.Query
	scan      func(rowScanner) (*T, error)
	relations []Relation[T]
}

func newTable[T any](name string, db DB, base query.Query, scan func(rowScanner) (*T, error), relations ...Relation[T]) *Table[T] {
	sorted := slices.Clone(relations)
	// Parents load before the paths nested under them.
	slices.SortStableFunc(sorted, func(a, b Relation[T]) int {
		return cmp.Compare(strings.Count(a.Path, "."), strings.Count(b.Path, "."))
	})
	return &Table[T]{name: name, db: db, base: base, scan: scan, relations: sorted}
}

// Base returns the unfiltered, unordered query selecting this table's rows.
func (t *Table[T]) Base() query.Query {
	return t.base
}

// Count returns the number of rows q matches.
func (t *Table[T]) Count(ctx context.Context, q query.Query) (int, error) {
	text, args := q.CountSQL()
	var n int
	if err := t.db.QueryRowContext(ctx, text, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", t.name, err)
	}
	return n, nil
}

// Fetch returns the rows of q in [offset, offset+limit) with every relation
// that q's directives (or the relation's default) ask for.
func (t *Table[T]) Fetch(ctx context.Context, q query.Query, limit, offset int) ([]*T, error) {
	text, args := q.SQL(limit, offset)
	rows, err := t.db.QueryContext(ctx, text, args...)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", t.name, err)
	}
	defer rows.Close()

	var records []*T
	for rows.Next() {
		rec, err := t.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", t.name, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select %s: %w", t.name, err)
	}
	if len(records) == 0 {
		return records, nil
	}

	loaded := make(map[string]bool, len(t.relations))
	for _, rel := range t.relations {
		if !wants(q, rel.Path, rel.Default) {
			continue
		}
		if parent, _, isNested := cutLast(rel.Path); isNested && !loaded[parent] {
			continue
		}
		if err := rel.Load(ctx, t.db, records); err != nil {
			return nil, fmt.Errorf("load %s.%s: %w", t.name, rel.Path, err)
		}
		loaded[rel.Path] = true
	}
	return records, nil
}

func wants(q query.Query, path string, byDefault bool) bool {
	switch q.Load(path) {
	case query.LoadEager:
		return true
	case query.LoadSuppress:
		return false
	default:
		return byDefault
	}
}

func cutLast(path string) (parent, leaf string, ok bool) {
	i := strings.LastIndex(path, ".")
	if i < 0 {
		return "", path, false
	}
	return path[:i], path[i+1:], true
}

// nested builds a relation whose children hang off parents reachable from
// the primary records; parents(records) must only return already-loaded values.
func nested[T, P, C any](
	path, text string,
	parents func([]*T) []*P,
	parentID func(*P) string,
	scan func(rowScanner) (string, C, error),
	assign func(*P, []C),
) Relation[T] {
	return Relation[T]{
		Path: path,
		Load: func(ctx context.Context, db DB, records []*T) error {
			ps := parents(records)
			if len(ps) == 0 {
				return nil
			}
			ids := make([]string, 0, len(ps))
			for _, p := range ps {
				ids = append(ids, parentID(p))
			}
			byParent, err := loadGrouped(ctx, db, text, ids, scan)
			if err != nil {
				return err
			}
			for _, p := range ps {
				assign(p, orEmpty(byParent[parentID(p)]))
			}
			return nil
		},
	}
}

// hasMany builds a relation whose children reference the primary record.
func hasMany[T, C any](
	path, text string,
	id func(*T) string,
	scan func(rowScanner) (string, C, error),
	assign func(*T, []C),
) Relation[T] {
	return nested(path, text, func(records []*T) []*T { return records }, id, scan, assign)
}

// loadGrouped runs text with ids bound to $1 and groups rows by the parent
// id each scan returns. Row order within a parent follows the query's ORDER BY.
func loadGrouped[C any](ctx context.Context, db DB, text string, ids []string, scan func(rowScanner) (string, C, error)) (map[string][]C, error) {
	rows, err := db.QueryContext(ctx, text, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]C, len(ids))
	for rows.Next() {
		parent, child, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out[parent] = append(out[parent], child)
	}
	return out, rows.Err()
}

func orEmpty[C any](s []C) []C {
	if s == nil {
		return []C{}
	}
	return s
}

// decodeJSON unmarshals a nullable json/jsonb column. NULL leaves into untouched.
func decodeJSON[V any](data []byte, into *V) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, into)
}

func nullString(s sql.NullString) string {
	if s.Valid {
		return s.String
	}
	return ""
}
