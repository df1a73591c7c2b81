// Package service enforces per-key daily request budgets.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"statehouse/internal/ratelimit/metrics"
	"statehouse/internal/ratelimit/models"
	"statehouse/internal/ratelimit/ports"
	dErrors "statehouse/pkg/domain-errors"
	"statehouse/pkg/platform/sentinel"
	"statehouse/pkg/requestcontext"
)

const profileURL = "https://openstates.org/account/profile/"

const (
	msgMissingKey = "Must provide API Key as ?apikey or X-API-KEY. Login and visit " + profileURL + " for your API key."
	msgInvalidKey = "Invalid API Key. Login and visit " + profileURL + " for your API key."
)

type Service struct {
	profiles ports.ProfileStore
	usage    ports.UsageStore
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

type Option func(*Service)

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

func New(profiles ports.ProfileStore, usage ports.UsageStore, opts ...Option) (*Service, error) {
	if profiles == nil {
		return nil, fmt.Errorf("profile store is required")
	}
	if usage == nil {
		return nil, fmt.Errorf("usage store is required")
	}
	svc := &Service{
		profiles: profiles,
		usage:    usage,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Check authenticates apiKey and counts the request against its tier's daily
// budget. An exhausted budget returns the result together with a
// CodeTooManyRequests error so callers can still report the window.
func (s *Service) Check(ctx context.Context, apiKey string) (*models.Result, error) {
	if apiKey == "" {
		s.record("", metrics.OutcomeMissing)
		return nil, dErrors.New(dErrors.CodeForbidden, msgMissingKey)
	}

	profile, err := s.profiles.GetByKey(ctx, apiKey)
	if errors.Is(err, sentinel.ErrNotFound) {
		s.record("", metrics.OutcomeInvalid)
		return nil, dErrors.New(dErrors.CodeUnauthorized, msgInvalidKey)
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up API key")
	}
	limit, ok := profile.Tier.DailyLimit()
	if !ok {
		s.record(profile.Tier.String(), metrics.OutcomeInvalid)
		return nil, dErrors.New(dErrors.CodeUnauthorized, msgInvalidKey)
	}

	now := requestcontext.Now(ctx)
	day, resetAt := models.DayWindow(now)
	count, err := s.usage.Increment(ctx, apiKey+":"+day, resetAt)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to record API usage")
	}

	result := &models.Result{
		Allowed:   count <= limit,
		Tier:      profile.Tier,
		Limit:     limit,
		Remaining: max(0, limit-count),
		ResetAt:   resetAt,
	}
	if !result.Allowed {
		result.RetryAfter = int(resetAt.Sub(now).Round(time.Second).Seconds())
		s.record(profile.Tier.String(), metrics.OutcomeExhausted)
		s.logger.WarnContext(ctx, "daily quota exhausted",
			"tier", profile.Tier,
			"limit", limit,
			"request_id", requestcontext.RequestID(ctx),
		)
		return result, dErrors.New(dErrors.CodeTooManyRequests,
			fmt.Sprintf("daily limit of %d requests exceeded for tier '%s'", limit, profile.Tier))
	}
	s.record(profile.Tier.String(), metrics.OutcomeAllowed)
	return result, nil
}

func (s *Service) record(tier, outcome string) {
	if s.metrics != nil {
		s.metrics.IncrementDecision(tier, outcome)
	}
}
