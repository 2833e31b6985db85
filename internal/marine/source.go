// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package marine

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/tomtom215/marinestats/internal/config"
	"github.com/tomtom215/marinestats/internal/logging"
	"github.com/tomtom215/marinestats/internal/models"
)

// ErrCredentialsMissing is returned when Copernicus Marine credentials are
// not configured.
var ErrCredentialsMissing = errors.New("copernicus marine credentials not configured")

// Seas are the locations reported by the mock source, in response order.
var Seas = []string{
	"Lakshadweep Sea",
	"Andaman Sea",
	"Gulf of Mannar",
	"Bay of Bengal",
}

// Mock distribution parameters.
const (
	meanTemperature   = 28.0
	temperatureSpread = 1.0
	meanSalinity      = 35.0
	salinitySpread    = 0.5
	maxCurrentSpeed   = 1.5
)

// Source produces one reading per sea.
type Source interface {
	Readings(ctx context.Context) ([]models.OceanReading, error)
}

// MockSource synthesizes readings uniformly around fixed means.
type MockSource struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// MockOption configures a MockSource.
type MockOption func(*MockSource)

// WithRand makes the mock deterministic.
func WithRand(rng *rand.Rand) MockOption {
	return func(m *MockSource) {
		m.rng = rng
	}
}

// WithClock overrides the reading timestamp source.
func WithClock(now func() time.Time) MockOption {
	return func(m *MockSource) {
		m.now = now
	}
}

// NewMockSource creates a MockSource seeded from the runtime.
func NewMockSource(opts ...MockOption) *MockSource {
	m := &MockSource{
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Readings returns a reading for every entry of Seas, all stamped with the
// same UTC second.
func (m *MockSource) Readings(ctx context.Context) ([]models.OceanReading, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stamp := m.now().UTC().Truncate(time.Second)
	readings := make([]models.OceanReading, 0, len(Seas))
	for _, sea := range Seas {
		readings = append(readings, models.OceanReading{
			Location:     sea,
			Temperature:  round1(meanTemperature + m.spread(temperatureSpread)),
			Salinity:     round1(meanSalinity + m.spread(salinitySpread)),
			CurrentSpeed: round1(m.rng.Float64() * maxCurrentSpeed),
			Timestamp:    stamp,
		})
	}
	return readings, nil
}

// spread returns a uniform value in [-width, width).
func (m *MockSource) spread(width float64) float64 {
	return (m.rng.Float64()*2 - 1) * width
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Service serves ocean readings once credentials are configured.
type Service struct {
	cfg    *config.CopernicusConfig
	source Source
}

// NewService creates a Service. A nil source selects a MockSource.
func NewService(cfg *config.CopernicusConfig, source Source) *Service {
	if source == nil {
		source = NewMockSource()
	}
	return &Service{cfg: cfg, source: source}
}

// Readings returns the current readings, or ErrCredentialsMissing.
func (s *Service) Readings(ctx context.Context) ([]models.OceanReading, error) {
	if s.cfg == nil || !s.cfg.Configured() {
		return nil, ErrCredentialsMissing
	}

	readings, err := s.source.Readings(ctx)
	if err != nil {
		logging.Error().Err(err).Msg("Ocean readings unavailable")
		return nil, err
	}
	return readings, nil
}
