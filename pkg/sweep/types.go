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

package sweep

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/geosweep/geosweep/pkg/account"
	"github.com/geosweep/geosweep/pkg/logger"
	"github.com/geosweep/geosweep/pkg/models"
)

var (
	errNoAccounts      = errors.New("at least one account is required")
	errNoLocations     = errors.New("at least one location is required")
	errInvalidSteps    = errors.New("steps must be at least 1")
	errInvalidRadius   = errors.New("scan radius must be positive")
	errMissingDatabase = errors.New("db connection string is required")
	errMissingAPIURL   = errors.New("api_url is required")
)

// AccountsConfig describes the worker identity pool.
type AccountsConfig struct {
	// Users holds "user[:pass]@provider" strings.
	Users []string `json:"users"`
	// Pass is the fallback password for users without an inline one.
	Pass string `json:"pass"`
}

// Config is the scanner service configuration.
type Config struct {
	Accounts        AccountsConfig  `json:"accounts"`
	Locations       []string        `json:"locations"`
	Steps           int             `json:"steps"`
	ScanRadiusKm    float64         `json:"scan_radius_km"`
	StepDelay       models.Duration `json:"step_delay"`
	SessionDuration models.Duration `json:"session_duration"`
	DB              string          `json:"db"`
	APIURL          string          `json:"api_url"`
	MetricsAddr     string          `json:"metrics_addr,omitempty"`
	Logging         *logger.Config  `json:"logging,omitempty"`
}

// Validate implements config.Validator.
func (c *Config) Validate() error {
	if len(c.Accounts.Users) == 0 {
		return errNoAccounts
	}

	if len(c.Locations) == 0 {
		return errNoLocations
	}

	if c.Steps < 1 {
		return errInvalidSteps
	}

	if c.ScanRadiusKm <= 0 {
		return errInvalidRadius
	}

	if c.DB == "" {
		return errMissingDatabase
	}

	if c.APIURL == "" {
		return errMissingAPIURL
	}

	for _, u := range c.Accounts.Users {
		if _, err := account.ParseCredential(u, c.Accounts.Pass); err != nil {
			return fmt.Errorf("accounts.users: %w", err)
		}
	}

	return nil
}

var coordsPattern = regexp.MustCompile(`^(-?\d+(?:\.\d+)?),\s*(-?\d+(?:\.\d+)?)$`)

// ParseLocation turns a configured location string into a Location: a
// "lat,lon" pair becomes explicit coordinates, anything else is treated as
// a place name for the remote service to resolve.
func ParseLocation(s string) models.Location {
	match := coordsPattern.FindStringSubmatch(s)
	if match == nil {
		return models.NamedLocation(s)
	}

	lat, _ := strconv.ParseFloat(match[1], 64)
	lon, _ := strconv.ParseFloat(match[2], 64)

	return models.CoordsLocation(models.Coordinate{Latitude: lat, Longitude: lon})
}

// ParseLocations maps ParseLocation over the configured location strings.
func ParseLocations(raw []string) []models.Location {
	locations := make([]models.Location, len(raw))
	for i, s := range raw {
		locations[i] = ParseLocation(s)
	}

	return locations
}

// partitionAccounts splits the account pool evenly into n partitions;
// uneven remainders land in the leftmost partitions. Partitions may be
// empty when there are more locations than accounts.
func partitionAccounts(accounts []*account.Account, n int) [][]*account.Account {
	if n < 2 {
		return [][]*account.Account{accounts}
	}

	out := make([][]*account.Account, 0, n)
	i := 0

	for remaining := n; remaining > 0; remaining-- {
		size := (len(accounts) - i + remaining - 1) / remaining
		out = append(out, accounts[i:i+size])
		i += size
	}

	return out
}
