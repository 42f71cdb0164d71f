// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gyouaiba-hash/sup-selection/internal/domain/model"
	"github.com/gyouaiba-hash/sup-selection/internal/domain/scoring"
	"github.com/gyouaiba-hash/sup-selection/internal/domain/statistics"
	"github.com/gyouaiba-hash/sup-selection/pkg/logger"
	"github.com/gyouaiba-hash/sup-selection/pkg/metrics"
)

// Default service configuration constants.
const (
	defaultMaxSigma      = 10.0
	defaultMaxRosterSize = 1000
)

// Draw is the outcome of one lottery run.
type Draw struct {
	RunID         uuid.UUID
	Sigma         float64
	ReversalRange float64
	DrawnAt       time.Time
	Result        model.RankedResult
}

// Service implements the API dependencies for board selection.
type Service struct {
	mu sync.RWMutex

	lottery *scoring.Lottery

	// Configuration
	defaultSigma  float64
	maxSigma      float64
	maxRosterSize int
	seed          uint64

	// Counters exposed through GetStats
	runs          int
	membersRanked int
	lastSigma     float64
	lastRunAt     time.Time

	logger logger.Logger
	now    func() time.Time
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDefaultSigma sets the luck strength used when a draw names none.
func WithDefaultSigma(sigma float64) Option {
	return func(s *Service) {
		if sigma >= 0 {
			s.defaultSigma = sigma
		}
	}
}

// WithMaxSigma caps the luck strength a caller may request.
func WithMaxSigma(sigma float64) Option {
	return func(s *Service) {
		if sigma >= 0 {
			s.maxSigma = sigma
		}
	}
}

// WithMaxRosterSize bounds the members accepted per draw.
func WithMaxRosterSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.maxRosterSize = size
		}
	}
}

// WithSeed makes every draw reproducible. Zero keeps the clock-seeded source.
func WithSeed(seed uint64) Option {
	return func(s *Service) {
		s.seed = seed
	}
}

// WithLottery injects a prepared lottery engine.
func WithLottery(l *scoring.Lottery) Option {
	return func(s *Service) {
		if l != nil {
			s.lottery = l
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		defaultSigma:  statistics.DefaultSigma,
		maxSigma:      defaultMaxSigma,
		maxRosterSize: defaultMaxRosterSize,
		now:           time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.defaultSigma > s.maxSigma {
		s.defaultSigma = s.maxSigma
	}
	if s.lottery == nil {
		var lotteryOpts []scoring.Option
		if s.seed != 0 {
			lotteryOpts = append(lotteryOpts, scoring.WithSeed(s.seed))
		}
		s.lottery = scoring.NewLottery(lotteryOpts...)
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}

	return s
}

// DefaultSigma returns the luck strength applied when a draw names none.
func (s *Service) DefaultSigma() float64 {
	return s.defaultSigma
}

// Statistics summarises practice counts of members.
func (s *Service) Statistics(ctx context.Context, members model.Roster) model.Statistics {
	st := statistics.Compute(members)
	metrics.RecordStatistics(st.SuggestedSigma)

	s.logger.Debug(ctx, "computed roster statistics",
		logger.Int("members", st.Count),
		logger.Float64("mean", st.Mean),
		logger.Float64("standardDeviation", st.StandardDeviation),
		logger.Float64("suggestedSigma", st.SuggestedSigma),
	)
	return st
}

// ReversalRange validates sigma against the configured bounds and returns
// the practice gap inside which rank reversal is plausible.
func (s *Service) ReversalRange(sigma float64) (float64, error) {
	if err := s.checkSigma(sigma); err != nil {
		return 0, err
	}
	return scoring.ReversalRange(sigma), nil
}

// Draw runs one lottery over members. A nil sigma uses the default.
func (s *Service) Draw(ctx context.Context, members model.Roster, sigma *float64) (Draw, error) {
	const op = "service.draw"

	luck := s.defaultSigma
	if sigma != nil {
		luck = *sigma
	}

	if err := s.checkSigma(luck); err != nil {
		return Draw{}, s.reject(ctx, op, "invalid_sigma", err)
	}
	if len(members) == 0 {
		return Draw{}, s.reject(ctx, op, "empty_roster", ErrEmptyRoster)
	}
	if len(members) > s.maxRosterSize {
		return Draw{}, s.reject(ctx, op, "roster_too_large",
			fmt.Errorf("%w: %d > %d", ErrRosterTooLarge, len(members), s.maxRosterSize))
	}

	result, err := s.lottery.Run(ctx, members, luck)
	if err != nil {
		return Draw{}, s.reject(ctx, op, "engine", err)
	}

	d := Draw{
		RunID:         uuid.New(),
		Sigma:         luck,
		ReversalRange: scoring.ReversalRange(luck),
		DrawnAt:       s.now().UTC(),
		Result:        result,
	}

	s.mu.Lock()
	s.runs++
	s.membersRanked += len(result)
	s.lastSigma = luck
	s.lastRunAt = d.DrawnAt
	s.mu.Unlock()

	metrics.RecordLotteryRun(len(result), luck)
	s.logger.Info(ctx, "lottery drawn",
		logger.String("runID", d.RunID.String()),
		logger.Int("members", len(result)),
		logger.Float64("sigma", luck),
		logger.String("winner", result[0].Name),
	)

	return d, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"runs":          s.runs,
		"membersRanked": s.membersRanked,
		"defaultSigma":  s.defaultSigma,
		"maxSigma":      s.maxSigma,
		"maxRosterSize": s.maxRosterSize,
		"seeded":        s.seed != 0,
	}
	if s.runs > 0 {
		stats["lastSigma"] = s.lastSigma
		stats["lastRunAt"] = s.lastRunAt.Format(time.RFC3339)
	}
	return stats
}

func (s *Service) checkSigma(sigma float64) error {
	if err := scoring.ValidateSigma(sigma); err != nil {
		return err
	}
	if sigma > s.maxSigma {
		return fmt.Errorf("%w: %v > %v", ErrSigmaTooLarge, sigma, s.maxSigma)
	}
	return nil
}

func (s *Service) reject(ctx context.Context, op, reason string, err error) error {
	metrics.RecordLotteryError(reason)
	level := s.logger.Warn
	if !errors.Is(err, ErrEmptyRoster) && !errors.Is(err, scoring.ErrInvalidSigma) &&
		!errors.Is(err, ErrSigmaTooLarge) && !errors.Is(err, ErrRosterTooLarge) {
		level = s.logger.Error
	}
	level(ctx, "lottery rejected", logger.String("op", op), logger.String("reason", reason), logger.Error(err))
	return fmt.Errorf("%s: %w", op, err)
}
