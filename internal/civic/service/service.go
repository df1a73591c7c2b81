// Package service builds filtered, ordered entity queries from API filters
// and runs them through the pagination engine.
package service

import (
	"context"
	"log/slog"
	"time"

	"statehouse/internal/civic/metrics"
	"statehouse/internal/civic/models"
	"statehouse/internal/jurisdiction"
	"statehouse/internal/pagination"
	"statehouse/internal/query"
	dErrors "statehouse/pkg/domain-errors"
	"statehouse/pkg/requestcontext"
)

// Table is a query source that also knows the base query selecting its rows.
type Table[T any] interface {
	pagination.Source[T]
	Base() query.Query
}

// Tables are the entity sources the service reads.
type Tables struct {
	Jurisdictions Table[models.Jurisdiction]
	People        Table[models.Person]
	Bills         Table[models.Bill]
	Committees    Table[models.Committee]
	Events        Table[models.Event]
}

// ListParams selects a page and the optional members to include.
type ListParams struct {
	Page int
	// PerPage is nil when the client did not ask for a page size.
	PerPage *int
	Include []string
}

// Service serves the read-only civic record API.
type Service struct {
	tables   Tables
	runs     RunLister
	geo      DivisionLookup
	resolver *jurisdiction.Resolver
	language string
	logger   *slog.Logger
	metrics  *metrics.Metrics

	jurisdictions pagination.Entity[models.Jurisdiction]
	people        pagination.Entity[models.Person]
	bills         pagination.Entity[models.Bill]
	committees    pagination.Entity[models.Committee]
	events        pagination.Entity[models.Event]
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithSearchLanguage sets the text search configuration used for bill search.
func WithSearchLanguage(language string) Option {
	return func(s *Service) {
		s.language = language
	}
}

// New constructs a Service.
func New(tables Tables, runs RunLister, geo DivisionLookup, resolver *jurisdiction.Resolver, opts ...Option) *Service {
	s := &Service{
		tables:   tables,
		runs:     runs,
		geo:      geo,
		resolver: resolver,
		language: "english",
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.jurisdictions = s.jurisdictionEntity()
	s.people = personEntity()
	s.bills = billEntity()
	s.committees = committeeEntity()
	s.events = eventEntity()
	return s
}

func request(p ListParams, defaultPerPage int) pagination.Request {
	req := pagination.Request{Page: p.Page, PerPage: defaultPerPage}
	if p.PerPage != nil {
		req.PerPage = *p.PerPage
	}
	return req
}

// list validates includes, runs the paginated query and records metrics.
func list[T any](ctx context.Context, s *Service, src pagination.Source[T], q query.Query, e pagination.Entity[T], p ListParams, opts ...pagination.Option) (*pagination.Page[T], error) {
	start := time.Now()
	defer s.observeList(e.Name, start)

	in, err := e.ParseIncludes(p.Include)
	if err != nil {
		return nil, err
	}
	page, err := pagination.Paginate(ctx, src, q, request(p, e.DefaultPerPage), e, in, opts...)
	if err != nil {
		return nil, s.translate(ctx, "list "+e.Name, err)
	}
	return page, nil
}

// detail validates includes and fetches a single record.
func detail[T any](ctx context.Context, s *Service, src pagination.Source[T], q query.Query, e pagination.Entity[T], include []string) (*T, error) {
	start := time.Now()
	defer s.observeDetail(e.Name, start)

	in, err := e.ParseIncludes(include)
	if err != nil {
		return nil, err
	}
	out, err := pagination.Detail(ctx, src, q, e, in)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeNotFound) {
			s.incrementDetailMiss(e.Name)
		}
		return nil, s.translate(ctx, "get "+e.Name, err)
	}
	return out, nil
}

// translate passes domain errors through and wraps infrastructure failures.
func (s *Service) translate(ctx context.Context, op string, err error) error {
	if de, ok := dErrors.As(err); ok {
		if de.Code == dErrors.CodeInternal {
			s.logger.ErrorContext(ctx, "request failed",
				"op", op,
				"request_id", requestcontext.RequestID(ctx),
				"error", err,
			)
		}
		return err
	}
	s.logger.ErrorContext(ctx, "store query failed",
		"op", op,
		"request_id", requestcontext.RequestID(ctx),
		"error", err,
	)
	return dErrors.Wrap(err, dErrors.CodeInternal, op+" failed")
}

func (s *Service) observeList(entity string, start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveList(entity, start)
	}
}

func (s *Service) observeDetail(entity string, start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveDetail(entity, start)
	}
}

func (s *Service) incrementDetailMiss(entity string) {
	if s.metrics != nil {
		s.metrics.IncrementDetailMiss(entity)
	}
}

func (s *Service) incrementCountSkipped(entity string) {
	if s.metrics != nil {
		s.metrics.IncrementCountSkipped(entity)
	}
}
