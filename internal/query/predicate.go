package query

import (
	"strconv"
	"strings"

	"github.com/lib/pq"
)

// Predicate is a WHERE-clause fragment. Values are always bound as
// parameters, never interpolated into the SQL text.
type Predicate interface {
	render(b *binder) string
}

// binder numbers placeholders in the order predicates are rendered.
type binder struct {
	args []any
}

func (b *binder) bind(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

// Render compiles a single predicate with placeholders starting at $1.
func Render(p Predicate) (string, []any) {
	b := &binder{}
	return p.render(b), b.args
}

type comparison struct {
	column string
	op     string
	value  any
}

func (c comparison) render(b *binder) string {
	return c.column + " " + c.op + " " + b.bind(c.value)
}

// Eq matches rows where column equals v.
func Eq(column string, v any) Predicate { return comparison{column, "=", v} }

// Lt matches rows where column is strictly less than v.
func Lt(column string, v any) Predicate { return comparison{column, "<", v} }

// Gt matches rows where column is strictly greater than v.
func Gt(column string, v any) Predicate { return comparison{column, ">", v} }

// Gte matches rows where column is greater than or equal to v.
func Gte(column string, v any) Predicate { return comparison{column, ">=", v} }

type anyOf struct {
	column string
	values []string
}

func (a anyOf) render(b *binder) string {
	if len(a.values) == 0 {
		return "FALSE"
	}
	return a.column + " = ANY(" + b.bind(pq.Array(a.values)) + ")"
}

// In matches rows where column equals any of values. An empty list matches nothing.
func In(column string, values []string) Predicate {
	return anyOf{column: column, values: values}
}

type contains struct {
	column string
	value  string
}

func (c contains) render(b *binder) string {
	return b.bind(c.value) + " = ANY(" + c.column + ")"
}

// Contains matches rows whose array column holds v.
func Contains(arrayColumn, v string) Predicate {
	return contains{column: arrayColumn, value: v}
}

type nullCheck struct {
	column string
	isNull bool
}

func (n nullCheck) render(*binder) string {
	if n.isNull {
		return n.column + " IS NULL"
	}
	return n.column + " IS NOT NULL"
}

// IsNull matches rows where column is NULL.
func IsNull(column string) Predicate { return nullCheck{column: column, isNull: true} }

// NotNull matches rows where column is not NULL.
func NotNull(column string) Predicate { return nullCheck{column: column} }

type junction struct {
	op    string
	preds []Predicate
}

func (j junction) render(b *binder) string {
	if len(j.preds) == 0 {
		if j.op == " AND " {
			return "TRUE"
		}
		return "FALSE"
	}
	if len(j.preds) == 1 {
		return j.preds[0].render(b)
	}
	parts := make([]string, 0, len(j.preds))
	for _, p := range j.preds {
		parts = append(parts, p.render(b))
	}
	return "(" + strings.Join(parts, j.op) + ")"
}

// And matches rows satisfying every predicate. An empty And matches everything.
func And(preds ...Predicate) Predicate { return junction{op: " AND ", preds: preds} }

// Or matches rows satisfying any predicate. An empty Or matches nothing.
func Or(preds ...Predicate) Predicate { return junction{op: " OR ", preds: preds} }

type constant string

func (c constant) render(*binder) string { return string(c) }

// Nothing matches no rows. Resolution failures degrade to it instead of erroring.
func Nothing() Predicate { return constant("FALSE") }

type raw struct {
	sql  string
	args []any
}

func (r raw) render(b *binder) string {
	var sb strings.Builder
	next := 0
	for _, ch := range r.sql {
		if ch == '?' && next < len(r.args) {
			sb.WriteString(b.bind(r.args[next]))
			next++
			continue
		}
		sb.WriteRune(ch)
	}
	return sb.String()
}

// Raw embeds a SQL fragment, binding each '?' to the next argument in order.
// Fragments must not use the jsonb '?' operators.
func Raw(sql string, args ...any) Predicate {
	return raw{sql: sql, args: args}
}

// Match is a full-text predicate against a precomputed tsvector column.
func Match(vectorColumn, language, text string) Predicate {
	return Raw(vectorColumn+" @@ websearch_to_tsquery(?::regconfig, ?)", language, text)
}
