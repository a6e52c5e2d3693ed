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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/geosweep/geosweep/pkg/logger"
	"github.com/geosweep/geosweep/pkg/models"
)

var errLoginRefused = errors.New("login refused")

func newTestAccount(t *testing.T, clock Clock, client Client, store Store) *Account {
	t.Helper()

	a, err := NewAccount("alice:secret@ptc", "", 0, store, clock, logger.NewTestLogger())
	require.NoError(t, err)

	a.client = client

	return a
}

func TestAuthenticate_SucceedsAfterTransientFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clock := newFakeClock()
	client := NewMockClient(ctrl)
	initial := models.NamedLocation("Central Park")

	gomock.InOrder(
		client.EXPECT().
			Init(gomock.Any(), "alice", "secret", initial, "ptc").
			Return(errLoginRefused).
			Times(4),
		client.EXPECT().
			Init(gomock.Any(), "alice", "secret", initial, "ptc").
			Return(nil),
	)

	a := newTestAccount(t, clock, client, nil)

	err := a.Authenticate(context.Background(), initial)
	require.NoError(t, err)

	// Backoff doubles after every failed attempt: 5s, 10s, 20s, 40s.
	assert.Equal(t, []time.Duration{
		5 * time.Second,
		10 * time.Second,
		20 * time.Second,
		40 * time.Second,
	}, clock.recordedDelays())

	assert.Equal(t, clock.Now(), a.lastLogin)
}

func TestAuthenticate_ExhaustsRetryBudget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clock := newFakeClock()
	client := NewMockClient(ctrl)

	client.EXPECT().
		Init(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errLoginRefused).
		Times(5)

	a := newTestAccount(t, clock, client, nil)

	err := a.Authenticate(context.Background(), models.NamedLocation("nowhere"))

	require.ErrorIs(t, err, ErrTooManyRetries)
	assert.Contains(t, err.Error(), "alice")
	assert.Len(t, clock.recordedDelays(), 4, "no delay after the final attempt")
	assert.True(t, a.lastLogin.IsZero())
}

func TestAuthenticate_StopsOnCanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())

	client := NewMockClient(ctrl)
	client.EXPECT().
		Init(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, string, models.Location, string) error {
			cancel()
			return errLoginRefused
		})

	a := newTestAccount(t, blockingClock{}, client, nil)

	err := a.Authenticate(ctx, models.NamedLocation("nowhere"))

	require.ErrorIs(t, err, context.Canceled)
}

// blockingClock never fires, forcing the backoff select to observe the
// canceled context.
type blockingClock struct{}

func (blockingClock) Now() time.Time { return time.Time{} }

func (blockingClock) After(time.Duration) <-chan time.Time {
	return make(chan time.Time)
}
