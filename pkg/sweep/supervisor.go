/*
 * Copyright 2026 the GeoSweep Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package sweep drives the perpetual scan: it partitions the account pool
// across the configured center locations and runs, per partition, an
// unbounded loop of authenticate, generate coverage, drain queue.
package sweep

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/geosweep/geosweep/pkg/account"
	"github.com/geosweep/geosweep/pkg/geo"
	"github.com/geosweep/geosweep/pkg/logger"
	"github.com/geosweep/geosweep/pkg/metrics"
	"github.com/geosweep/geosweep/pkg/models"
)

// cycleRestartDelay is how long a partition waits before restarting after
// a fatal cycle error (auth budget exhausted, persistence failure).
const cycleRestartDelay = 30 * time.Second

// Supervisor owns the account pool and the per-location partition loops.
type Supervisor struct {
	config   *Config
	store    account.Store
	factory  account.ClientFactory
	clock    account.Clock
	sessions *account.SessionManager
	logger   logger.Logger
}

// New builds a Supervisor. A nil clock defaults to the real one.
func New(cfg *Config, store account.Store, factory account.ClientFactory, clock account.Clock, log logger.Logger) *Supervisor {
	if clock == nil {
		clock = account.RealClock()
	}

	return &Supervisor{
		config:   cfg,
		store:    store,
		factory:  factory,
		clock:    clock,
		sessions: account.NewSessionManager(time.Duration(cfg.SessionDuration), factory, clock, log),
		logger:   log,
	}
}

// Run builds the account pool, partitions it across the configured
// locations and runs every partition loop until the context is canceled.
// Partition-level failures restart their own partition only; Run returns
// on cancellation or when the pool cannot be built at all.
func (s *Supervisor) Run(ctx context.Context) error {
	accounts, err := s.buildAccounts()
	if err != nil {
		return err
	}

	locations := ParseLocations(s.config.Locations)
	partitions := partitionAccounts(accounts, len(locations))

	s.logger.Info().
		Int("accounts", len(accounts)).
		Int("locations", len(locations)).
		Msg("Starting sweep supervisor")

	g, ctx := errgroup.WithContext(ctx)

	for i, loc := range locations {
		i, loc := i, loc
		g.Go(func() error {
			return s.runPartition(ctx, loc, partitions[i])
		})
	}

	return g.Wait()
}

func (s *Supervisor) buildAccounts() ([]*account.Account, error) {
	accounts := make([]*account.Account, 0, len(s.config.Accounts.Users))

	for _, input := range s.config.Accounts.Users {
		a, err := account.NewAccount(input, s.config.Accounts.Pass,
			time.Duration(s.config.StepDelay), s.store, s.clock, s.logger)
		if err != nil {
			return nil, err
		}

		accounts = append(accounts, a)
	}

	return accounts, nil
}

// runPartition is the infinite per-location loop. A failed cycle is logged
// and retried after a backoff; only context cancellation ends the loop.
func (s *Supervisor) runPartition(ctx context.Context, loc models.Location, accounts []*account.Account) error {
	if len(accounts) == 0 {
		s.logger.Warn().Str("location", loc.String()).Msg("Partition has no accounts, idling")
		<-ctx.Done()

		return ctx.Err()
	}

	for {
		cycleID := uuid.New().String()
		start := s.clock.Now()

		err := s.runCycle(ctx, cycleID, loc, accounts)

		if ctx.Err() != nil {
			return ctx.Err()
		}

		if err != nil {
			s.logger.Error().Err(err).
				Str("location", loc.String()).
				Str("cycle_id", cycleID).
				Dur("restart_delay", cycleRestartDelay).
				Msg("Sweep cycle failed, restarting partition")

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-s.clock.After(cycleRestartDelay):
			}

			continue
		}

		metrics.SweepCycles.WithLabelValues(loc.String()).Inc()
		metrics.SweepCycleDuration.WithLabelValues(loc.String()).
			Observe(s.clock.Now().Sub(start).Seconds())

		s.logger.Info().
			Str("location", loc.String()).
			Str("cycle_id", cycleID).
			Dur("elapsed", s.clock.Now().Sub(start)).
			Msg("Sweep cycle complete")
	}
}

// runCycle performs one full coverage pass: log the partition's accounts
// in, generate the coverage sequence around the resolved center and let
// every account drain the shared queue.
func (s *Supervisor) runCycle(ctx context.Context, cycleID string, loc models.Location, accounts []*account.Account) error {
	if err := s.sessions.LoginAll(ctx, accounts, loc); err != nil {
		return err
	}

	center := loc.Coords
	if loc.Kind == models.LocationName {
		// Named locations are resolved by the remote service during
		// login; read the coordinates back from the first account.
		center = accounts[0].LocationCoords()
	}

	points := geo.GenerateCoverage(center, s.config.Steps, s.config.ScanRadiusKm)
	queue := NewQueue(points)

	s.logger.Info().
		Str("location", loc.String()).
		Str("cycle_id", cycleID).
		Int("points", len(points)).
		Int("accounts", len(accounts)).
		Msg("Draining coverage queue")

	g, ctx := errgroup.WithContext(ctx)

	for _, a := range accounts {
		a := a
		g.Go(func() error {
			return s.drain(ctx, a, queue)
		})
	}

	return g.Wait()
}

// drain is the cooperative competition loop: pop a point, process it,
// re-enqueue on an empty result, log and keep going on anything
// recoverable. Persistence failures abort the cycle.
func (s *Supervisor) drain(ctx context.Context, a *account.Account, queue *Queue) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		point, ok := queue.PopFront()
		if !ok {
			return nil
		}

		err := a.ProcessLocation(ctx, models.CoordsLocation(point))

		switch {
		case err == nil:
			metrics.PointsScanned.WithLabelValues(a.User()).Inc()
		case errors.Is(err, account.ErrNoResult):
			// The rate-limit delay was already paid inside
			// ProcessLocation, so retry without further penalty.
			queue.PushFront(point)
			metrics.PointsRequeued.Inc()

			s.logger.Debug().
				Str("user", a.User()).
				Str("point", point.String()).
				Msg("Empty result, point re-enqueued")
		case errors.Is(err, account.ErrPersistence):
			return err
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return err
		default:
			s.logger.Error().Err(err).
				Str("user", a.User()).
				Str("point", point.String()).
				Msg("Unhandled scan error, skipping point")
		}
	}
}
