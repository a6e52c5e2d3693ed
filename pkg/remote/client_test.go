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

package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geosweep/geosweep/pkg/account"
	"github.com/geosweep/geosweep/pkg/models"
)

func newGateway(t *testing.T, heartbeat http.HandlerFunc) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("/v1/session", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}

		var req sessionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		_ = json.NewEncoder(w).Encode(sessionResponse{
			Token:    "token-" + req.User,
			Location: models.Coordinate{Latitude: 1, Longitude: 2},
		})
	})

	mux.HandleFunc("/v1/location", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}

		var loc locationPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&loc))

		_ = json.NewEncoder(w).Encode(sessionResponse{Location: loc.Coords})
	})

	mux.HandleFunc("/v1/heartbeat", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}

		heartbeat(w, r)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func TestHTTPClient_SessionFlow(t *testing.T) {
	server := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-alice", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(models.RawResponse{
			Cells: []models.Cell{{Entities: []models.RawEntity{{EncounterID: 7}}}},
		})
	})

	client := NewHTTPClient(server.URL)()
	ctx := context.Background()

	require.NoError(t, client.Init(ctx, "alice", "secret", models.NamedLocation("start"), "ptc"))
	assert.InDelta(t, 1.0, client.LocationCoords().Latitude, 1e-9)

	point := models.CoordsLocation(models.Coordinate{Latitude: 40.75, Longitude: -73.98})
	require.NoError(t, client.SetLocation(ctx, point))
	assert.InDelta(t, 40.75, client.LocationCoords().Latitude, 1e-9)

	raw, err := client.Heartbeat(ctx)
	require.NoError(t, err)
	require.Len(t, raw.Cells, 1)
	assert.Equal(t, int64(7), raw.Cells[0].Entities[0].EncounterID)
}

func TestHTTPClient_NoContentIsNoResult(t *testing.T) {
	server := newGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	client := NewHTTPClient(server.URL)()

	_, err := client.Heartbeat(context.Background())

	assert.ErrorIs(t, err, account.ErrNoResult)
}

func TestHTTPClient_ErrorStatusSurfaces(t *testing.T) {
	server := newGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "backend down", http.StatusBadGateway)
	})

	client := NewHTTPClient(server.URL)()

	_, err := client.Heartbeat(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
