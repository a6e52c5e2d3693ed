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

// Package remote adapts the location-service gateway's JSON API to the
// account.Client capability. The gateway owns the actual auth handshake
// and wire encoding; this package only moves requests and payloads.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/geosweep/geosweep/pkg/account"
	"github.com/geosweep/geosweep/pkg/models"
)

var errUnexpectedStatus = fmt.Errorf("unexpected response status")

// HTTPClient drives one account's session against the gateway.
type HTTPClient struct {
	baseURL string
	http    *http.Client

	mu     sync.Mutex
	token  string
	coords models.Coordinate
}

var _ account.Client = (*HTTPClient)(nil)

// NewHTTPClient returns a factory producing independent session handles
// against the given gateway URL.
func NewHTTPClient(baseURL string) account.ClientFactory {
	return func() account.Client {
		return &HTTPClient{
			baseURL: baseURL,
			http:    &http.Client{},
		}
	}
}

type sessionRequest struct {
	User     string          `json:"user"`
	Pass     string          `json:"pass"`
	Provider string          `json:"provider"`
	Location locationPayload `json:"location"`
}

type sessionResponse struct {
	Token    string            `json:"token"`
	Location models.Coordinate `json:"location"`
}

type locationPayload struct {
	Type   string            `json:"type"`
	Coords models.Coordinate `json:"coords,omitempty"`
	Name   string            `json:"name,omitempty"`
}

func toLocationPayload(loc models.Location) locationPayload {
	return locationPayload{
		Type:   string(loc.Kind),
		Coords: loc.Coords,
		Name:   loc.Name,
	}
}

// Init opens a session for the given credential, positioned at initial.
func (c *HTTPClient) Init(ctx context.Context, user, pass string, initial models.Location, provider string) error {
	req := sessionRequest{
		User:     user,
		Pass:     pass,
		Provider: provider,
		Location: toLocationPayload(initial),
	}

	var resp sessionResponse

	if err := c.post(ctx, "/v1/session", req, &resp); err != nil {
		return err
	}

	c.mu.Lock()
	c.token = resp.Token
	c.coords = resp.Location
	c.mu.Unlock()

	return nil
}

// SetLocation moves the session to loc.
func (c *HTTPClient) SetLocation(ctx context.Context, loc models.Location) error {
	var resp sessionResponse

	if err := c.post(ctx, "/v1/location", toLocationPayload(loc), &resp); err != nil {
		return err
	}

	c.mu.Lock()
	c.coords = resp.Location
	c.mu.Unlock()

	return nil
}

// LocationCoords reports the session's current position as last echoed by
// the gateway.
func (c *HTTPClient) LocationCoords() models.Coordinate {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.coords
}

// Heartbeat fetches the scan payload for the session's current position.
func (c *HTTPClient) Heartbeat(ctx context.Context) (*models.RawResponse, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/heartbeat", http.NoBody)
	if err != nil {
		return nil, err
	}

	c.authorize(httpReq)

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = httpResp.Body.Close() }()

	if httpResp.StatusCode == http.StatusNoContent {
		return nil, account.ErrNoResult
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", errUnexpectedStatus, httpResp.Status)
	}

	var raw models.RawResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&raw); err != nil {
		return nil, err
	}

	return &raw, nil
}

func (c *HTTPClient) post(ctx context.Context, path string, body, dst interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}

	httpReq.Header.Set("Content-Type", "application/json")
	c.authorize(httpReq)

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return err
	}
	defer func() { _ = httpResp.Body.Close() }()

	if httpResp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, httpResp.Body)

		return fmt.Errorf("%w: %s", errUnexpectedStatus, httpResp.Status)
	}

	if dst == nil {
		return nil
	}

	return json.NewDecoder(httpResp.Body).Decode(dst)
}

func (c *HTTPClient) authorize(req *http.Request) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}
