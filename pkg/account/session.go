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
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/geosweep/geosweep/pkg/logger"
	"github.com/geosweep/geosweep/pkg/models"
)

// SessionManager keeps accounts authenticated. A session is usable only
// while a client handle exists and the last login is younger than the
// configured lifetime; anything else is refreshed before use.
type SessionManager struct {
	ttl     time.Duration
	factory ClientFactory
	clock   Clock
	logger  logger.Logger
}

func NewSessionManager(ttl time.Duration, factory ClientFactory, clock Clock, log logger.Logger) *SessionManager {
	if clock == nil {
		clock = realClock{}
	}

	return &SessionManager{
		ttl:     ttl,
		factory: factory,
		clock:   clock,
		logger:  log,
	}
}

// EnsureLoggedIn lazily constructs the account's client handle and
// re-authenticates when the session is absent or stale. Authentication
// failures propagate unchanged.
func (m *SessionManager) EnsureLoggedIn(ctx context.Context, a *Account, initial models.Location) error {
	if a.client == nil {
		a.client = m.factory()
	}

	if !a.lastLogin.IsZero() && m.clock.Now().Sub(a.lastLogin) < m.ttl {
		m.logger.Debug().Str("user", a.cred.User).Msg("Reusing existing session")
		return nil
	}

	return a.Authenticate(ctx, initial)
}

// LoginAll ensures every account in the set is logged in, concurrently.
// The first failure cancels the remaining logins and is returned.
func (m *SessionManager) LoginAll(ctx context.Context, accounts []*Account, initial models.Location) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, a := range accounts {
		a := a
		g.Go(func() error {
			return m.EnsureLoggedIn(ctx, a, initial)
		})
	}

	return g.Wait()
}
