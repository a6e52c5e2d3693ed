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
	"fmt"
	"time"

	"github.com/geosweep/geosweep/pkg/metrics"
	"github.com/geosweep/geosweep/pkg/models"
)

const (
	loginMaxAttempts       = 5
	loginInitialRetryDelay = 5 * time.Second
)

// Authenticate logs the account into the remote service, retrying
// transient failures with exponential backoff (5s initial delay, doubled
// after every failed attempt, 5 attempts total). Exhausting the budget
// yields ErrTooManyRetries. A successful login records the authentication
// timestamp used by the session-validity check.
func (a *Account) Authenticate(ctx context.Context, initial models.Location) error {
	delay := loginInitialRetryDelay

	for attempt := 1; attempt <= loginMaxAttempts; attempt++ {
		err := a.client.Init(ctx, a.cred.User, a.cred.Pass, initial, a.cred.Provider)
		if err == nil {
			a.lastLogin = a.clock.Now()
			a.logger.Info().Str("user", a.cred.User).Int("attempt", attempt).Msg("Login succeeded")

			return nil
		}

		a.logger.Error().Err(err).
			Str("user", a.cred.User).
			Int("attempt", attempt).
			Msg("Login attempt failed")

		metrics.LoginRetries.Inc()

		if attempt == loginMaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-a.clock.After(delay):
		}

		delay *= 2
	}

	return fmt.Errorf("%w: %s gave up after %d attempts", ErrTooManyRetries, a.cred.User, loginMaxAttempts)
}
