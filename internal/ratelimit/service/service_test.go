package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"statehouse/internal/ratelimit/metrics"
	"statehouse/internal/ratelimit/models"
	"statehouse/internal/ratelimit/service/mocks"
	dErrors "statehouse/pkg/domain-errors"
	"statehouse/pkg/platform/sentinel"
	"statehouse/pkg/requestcontext"
)

//go:generate mockgen -source=../ports/ports.go -destination=mocks/mocks.go -package=mocks

type ServiceSuite struct {
	suite.Suite
	ctx      context.Context
	profiles *mocks.MockProfileStore
	usage    *mocks.MockUsageStore
	metrics  *metrics.Metrics
	service  *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

var (
	now      = time.Date(2024, 5, 1, 23, 0, 0, 0, time.UTC)
	dayEnd   = time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	usageKey = "k1:2024-05-01"
)

func (s *ServiceSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.profiles = mocks.NewMockProfileStore(ctrl)
	s.usage = mocks.NewMockUsageStore(ctrl)
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.ctx = requestcontext.WithTime(context.Background(), now)

	svc, err := New(s.profiles, s.usage,
		WithMetrics(s.metrics),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	s.Require().NoError(err)
	s.service = svc
}

func (s *ServiceSuite) TestNewRequiresStores() {
	_, err := New(nil, s.usage)
	s.Error(err)
	_, err = New(s.profiles, nil)
	s.Error(err)
}

func (s *ServiceSuite) TestCheck() {
	s.Run("missing key is forbidden", func() {
		_, err := s.service.Check(s.ctx, "")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
		s.Contains(err.Error(), "X-API-KEY")
	})

	s.Run("unknown key is unauthorized", func() {
		s.profiles.EXPECT().GetByKey(gomock.Any(), "nope").Return(nil, sentinel.ErrNotFound)
		_, err := s.service.Check(s.ctx, "nope")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("inactive tier is unauthorized", func() {
		s.profiles.EXPECT().GetByKey(gomock.Any(), "old").Return(&models.Profile{APIKey: "old", Tier: "inactive"}, nil)
		_, err := s.service.Check(s.ctx, "old")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("store failure is internal", func() {
		s.profiles.EXPECT().GetByKey(gomock.Any(), "k1").Return(nil, errors.New("conn reset"))
		_, err := s.service.Check(s.ctx, "k1")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})

	s.Run("within budget", func() {
		s.profiles.EXPECT().GetByKey(gomock.Any(), "k1").Return(&models.Profile{APIKey: "k1", Tier: models.TierDefault}, nil)
		s.usage.EXPECT().Increment(gomock.Any(), usageKey, dayEnd).Return(120, nil)

		result, err := s.service.Check(s.ctx, "k1")
		s.Require().NoError(err)
		s.True(result.Allowed)
		s.Equal(500, result.Limit)
		s.Equal(380, result.Remaining)
		s.Equal(dayEnd, result.ResetAt)
	})

	s.Run("last request of the day is allowed", func() {
		s.profiles.EXPECT().GetByKey(gomock.Any(), "k1").Return(&models.Profile{APIKey: "k1", Tier: models.TierDefault}, nil)
		s.usage.EXPECT().Increment(gomock.Any(), usageKey, dayEnd).Return(500, nil)

		result, err := s.service.Check(s.ctx, "k1")
		s.Require().NoError(err)
		s.Zero(result.Remaining)
	})

	s.Run("exhausted budget", func() {
		s.profiles.EXPECT().GetByKey(gomock.Any(), "k1").Return(&models.Profile{APIKey: "k1", Tier: models.TierDefault}, nil)
		s.usage.EXPECT().Increment(gomock.Any(), usageKey, dayEnd).Return(501, nil)

		result, err := s.service.Check(s.ctx, "k1")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeTooManyRequests))
		s.Require().NotNil(result)
		s.False(result.Allowed)
		s.Equal(3600, result.RetryAfter)
	})

	s.Equal(2.0, promtest.ToFloat64(s.metrics.Decisions.WithLabelValues("default", metrics.OutcomeAllowed)))
	s.Equal(1.0, promtest.ToFloat64(s.metrics.Decisions.WithLabelValues("default", metrics.OutcomeExhausted)))
	s.Equal(1.0, promtest.ToFloat64(s.metrics.Decisions.WithLabelValues("", metrics.OutcomeMissing)))
}
