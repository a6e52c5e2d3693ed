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

package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/geosweep/geosweep/pkg/metrics"
	"github.com/geosweep/geosweep/pkg/models"
)

const queryTimeout = 30 * time.Second

// QueryLocation moves the account to loc and requests a heartbeat payload,
// bounded by a 30 second budget. A blown budget surfaces as
// ErrRequestTimeout tagged with the account's username; an empty payload
// surfaces as ErrNoResult so the caller can re-enqueue the point.
func (a *Account) QueryLocation(ctx context.Context, loc models.Location) (*models.RawResponse, error) {
	queryCtx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if err := a.client.SetLocation(queryCtx, loc); err != nil {
		return nil, a.classifyQueryError(queryCtx, err)
	}

	resp, err := a.client.Heartbeat(queryCtx)
	if err != nil {
		return nil, a.classifyQueryError(queryCtx, err)
	}

	if resp == nil || len(resp.Cells) == 0 {
		return nil, ErrNoResult
	}

	return resp, nil
}

func (a *Account) classifyQueryError(queryCtx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(queryCtx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", ErrRequestTimeout, a.cred.User)
	}

	return err
}

// ProcessLocation runs the full per-point pipeline: query, parse, persist,
// then the mandatory inter-request delay. The delay is rate-limit
// compliance with the remote service and is paid on every path, including
// failed ones; skipping it risks throttling the account.
func (a *Account) ProcessLocation(ctx context.Context, loc models.Location) error {
	a.logger.Debug().Str("user", a.cred.User).Str("location", loc.String()).Msg("Requesting data")

	outcome := a.scanOnce(ctx, loc)

	if err := a.rateLimit(ctx); err != nil && outcome == nil {
		outcome = err
	}

	return outcome
}

func (a *Account) scanOnce(ctx context.Context, loc models.Location) error {
	resp, err := a.QueryLocation(ctx, loc)
	if err != nil {
		return err
	}

	data := ParseResponse(resp)

	point := loc.Coords
	if loc.Kind == models.LocationName {
		point = a.client.LocationCoords()
	}

	if err := a.store.SaveScan(ctx, data, point); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrPersistence, a.cred.User, err)
	}

	metrics.SightingsStored.Add(float64(len(data.Sightings)))

	a.logger.Info().
		Str("user", a.cred.User).
		Int("sightings", len(data.Sightings)).
		Int("points_of_interest", len(data.PointsOfInterest)).
		Msg("Upserted scan results")

	return nil
}

func (a *Account) rateLimit(ctx context.Context) error {
	if a.stepDelay <= 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-a.clock.After(a.stepDelay):
		return nil
	}
}
