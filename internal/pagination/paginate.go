package pagination

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"statehouse/internal/query"
	dErrors "statehouse/pkg/domain-errors"
)

var tracer = otel.Tracer("statehouse/internal/pagination")

// Source executes queries against the record store.
type Source[T any] interface {
	// Count returns the number of rows the query matches.
	Count(ctx context.Context, q query.Query) (int, error)
	// Fetch returns at most limit rows starting at offset, with the
	// relations the query's directives ask for loaded.
	Fetch(ctx context.Context, q query.Query, limit, offset int) ([]*T, error)
}

// Request is the client's page selection.
type Request struct {
	Page    int
	PerPage int
}

// Meta describes the returned window.
type Meta struct {
	PerPage    int `json:"per_page"`
	Page       int `json:"page"`
	MaxPage    int `json:"max_page"`
	TotalItems int `json:"total_items"`
}

// Page is one window of materialized results.
type Page[T any] struct {
	Results    []T  `json:"results"`
	Pagination Meta `json:"pagination"`
}

type options struct {
	maxPerPage int
	skipCount  bool
}

// Option adjusts a single Paginate call.
type Option func(*options)

// WithMaxPerPage overrides the entity's page size ceiling.
func WithMaxPerPage(n int) Option {
	return func(o *options) { o.maxPerPage = n }
}

// WithSkipCount skips the count query. The response then reports a single
// page and total_items equal to the number of results returned.
func WithSkipCount() Option {
	return func(o *options) { o.skipCount = true }
}

// Paginate validates req, counts matches, fetches the requested window with
// the relations for in, and materializes each record.
func Paginate[T any](ctx context.Context, src Source[T], q query.Query, req Request, e Entity[T], in Includes, opts ...Option) (*Page[T], error) {
	o := options{maxPerPage: e.MaxPerPage}
	for _, opt := range opts {
		opt(&o)
	}

	ctx, span := tracer.Start(ctx, "pagination.Paginate", trace.WithAttributes(
		attribute.String("entity", e.Name),
		attribute.Int("page", req.Page),
		attribute.Int("per_page", req.PerPage),
		attribute.Bool("skip_count", o.skipCount),
	))
	defer span.End()

	page, err := paginate(ctx, src, q, req, e, in, o)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("total_items", page.Pagination.TotalItems))
	return page, nil
}

func paginate[T any](ctx context.Context, src Source[T], q query.Query, req Request, e Entity[T], in Includes, o options) (*Page[T], error) {
	if !q.Ordered() {
		return nil, dErrors.New(dErrors.CodeInternal, "ordering is required for pagination")
	}
	if req.PerPage < 1 || req.PerPage > o.maxPerPage {
		return nil, dErrors.New(dErrors.CodeBadRequest,
			fmt.Sprintf("invalid per_page, must be in [1, %d]", o.maxPerPage))
	}

	total, maxPage := 0, 1
	if !o.skipCount {
		n, err := src.Count(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", e.Name, err)
		}
		total = n
		maxPage = max(1, (total+req.PerPage-1)/req.PerPage)
	}
	if req.Page < 1 || req.Page > maxPage {
		return nil, dErrors.New(dErrors.CodeNotFound,
			fmt.Sprintf("invalid page, must be in [1, %d]", maxPage))
	}

	records, err := src.Fetch(ctx, e.Annotate(q, in), req.PerPage, (req.Page-1)*req.PerPage)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", e.Name, err)
	}
	results := make([]T, 0, len(records))
	for _, rec := range records {
		out, err := e.Materialize(ctx, rec, in)
		if err != nil {
			return nil, err
		}
		results = append(results, out)
	}
	if o.skipCount {
		total = len(results)
	}

	return &Page[T]{
		Results: results,
		Pagination: Meta{
			PerPage:    req.PerPage,
			Page:       req.Page,
			MaxPage:    maxPage,
			TotalItems: total,
		},
	}, nil
}
