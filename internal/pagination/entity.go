// Package pagination windows ordered result sets into pages and projects
// records onto the optional members a client asked for.
package pagination

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"statehouse/internal/query"
	dErrors "statehouse/pkg/domain-errors"
)

// Hook post-processes a materialized record when its include member was requested.
type Hook[T any] func(ctx context.Context, out *T) error

// Entity describes how records of type T are paged and projected.
type Entity[T any] struct {
	// Name is the lower-case entity name used in messages ("bill").
	Name string
	// Includes is the closed enumeration of optional members.
	Includes []string
	// Overrides maps a member to the relation paths loading it. A member
	// absent from the map loads the single path named after it; an empty
	// list means the member needs no relation loading.
	Overrides map[string][]string
	// Clear nulls the named member on a copy of a record.
	Clear func(out *T, member string)
	// Hooks run after masking, once per requested member that has one.
	Hooks map[string]Hook[T]

	DefaultPerPage int
	MaxPerPage     int
}

// Paths returns the relation paths governed by member.
func (e Entity[T]) Paths(member string) []string {
	if paths, ok := e.Overrides[member]; ok {
		return paths
	}
	return []string{member}
}

// Includes is a validated set of requested members.
type Includes map[string]struct{}

// Has reports whether member was requested.
func (in Includes) Has(member string) bool {
	_, ok := in[member]
	return ok
}

// ParseIncludes validates requested members against the enumeration.
// Duplicates collapse; an unknown member is rejected.
func (e Entity[T]) ParseIncludes(requested []string) (Includes, error) {
	in := make(Includes, len(requested))
	for _, member := range requested {
		if !slices.Contains(e.Includes, member) {
			return nil, dErrors.New(dErrors.CodeBadRequest,
				fmt.Sprintf("invalid include '%s', must be one of: %s", member, strings.Join(e.Includes, ", ")))
		}
		in[member] = struct{}{}
	}
	return in, nil
}

// Annotate attaches load directives for every member of the enumeration:
// eager for requested members, suppress for the rest. Members are visited
// unconditionally so that relations the store loads by default are still
// suppressed when not requested.
func (e Entity[T]) Annotate(q query.Query, in Includes) query.Query {
	for _, member := range e.Includes {
		if in.Has(member) {
			q = q.Eager(e.Paths(member)...)
		} else {
			q = q.Suppress(e.Paths(member)...)
		}
	}
	return q
}

// Materialize projects rec onto a fresh value: unrequested members are
// nulled and hooks run for requested members. rec is not modified.
func (e Entity[T]) Materialize(ctx context.Context, rec *T, in Includes) (T, error) {
	out := *rec
	for _, member := range e.Includes {
		if !in.Has(member) {
			e.Clear(&out, member)
		}
	}
	for _, member := range e.Includes {
		hook, ok := e.Hooks[member]
		if !ok || !in.Has(member) {
			continue
		}
		if err := hook(ctx, &out); err != nil {
			var zero T
			return zero, fmt.Errorf("%s %s: %w", e.Name, member, err)
		}
	}
	return out, nil
}
