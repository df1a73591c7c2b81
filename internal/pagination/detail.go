package pagination

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"statehouse/internal/query"
	dErrors "statehouse/pkg/domain-errors"
)

// Detail fetches the single record q identifies and materializes it.
// Zero matches is a not-found error; more than one match is an internal
// error since identifying queries are built on unique keys.
func Detail[T any](ctx context.Context, src Source[T], q query.Query, e Entity[T], in Includes) (*T, error) {
	ctx, span := tracer.Start(ctx, "pagination.Detail", trace.WithAttributes(attribute.String("entity", e.Name)))
	defer span.End()

	out, err := detail(ctx, src, q, e, in)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return out, nil
}

func detail[T any](ctx context.Context, src Source[T], q query.Query, e Entity[T], in Includes) (*T, error) {
	records, err := src.Fetch(ctx, e.Annotate(q, in), 2, 0)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", e.Name, err)
	}
	switch len(records) {
	case 0:
		return nil, dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("no %s found", e.Name))
	case 1:
	default:
		return nil, dErrors.New(dErrors.CodeInternal, fmt.Sprintf("%s lookup matched more than one record", e.Name))
	}
	out, err := e.Materialize(ctx, records[0], in)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
