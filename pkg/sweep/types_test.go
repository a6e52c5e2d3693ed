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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geosweep/geosweep/pkg/account"
	"github.com/geosweep/geosweep/pkg/logger"
	"github.com/geosweep/geosweep/pkg/models"
)

func TestParseLocation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  models.Location
	}{
		{
			name:  "decimal pair",
			input: "40.7589,-73.9851",
			want:  models.CoordsLocation(models.Coordinate{Latitude: 40.7589, Longitude: -73.9851}),
		},
		{
			name:  "pair with space",
			input: "-33.8688, 151.2093",
			want:  models.CoordsLocation(models.Coordinate{Latitude: -33.8688, Longitude: 151.2093}),
		},
		{
			name:  "integer pair",
			input: "40,-73",
			want:  models.CoordsLocation(models.Coordinate{Latitude: 40, Longitude: -73}),
		},
		{
			name:  "place name",
			input: "Central Park",
			want:  models.NamedLocation("Central Park"),
		},
		{
			name:  "name containing digits",
			input: "221B Baker Street",
			want:  models.NamedLocation("221B Baker Street"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLocation(tt.input))
		})
	}
}

func buildTestAccounts(t *testing.T, n int) []*account.Account {
	t.Helper()

	accounts := make([]*account.Account, 0, n)

	for i := 0; i < n; i++ {
		a, err := account.NewAccount(string(rune('a'+i))+"@ptc", "pass", 0, nil, nil, logger.NewTestLogger())
		require.NoError(t, err)

		accounts = append(accounts, a)
	}

	return accounts
}

func TestPartitionAccounts(t *testing.T) {
	tests := []struct {
		name      string
		accounts  int
		locations int
		wantSizes []int
	}{
		{name: "single location takes all", accounts: 5, locations: 1, wantSizes: []int{5}},
		{name: "even split", accounts: 6, locations: 3, wantSizes: []int{2, 2, 2}},
		{name: "remainder lands leftmost", accounts: 7, locations: 3, wantSizes: []int{3, 2, 2}},
		{name: "two extra", accounts: 8, locations: 3, wantSizes: []int{3, 3, 2}},
		{name: "fewer accounts than locations", accounts: 2, locations: 4, wantSizes: []int{1, 1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			partitions := partitionAccounts(buildTestAccounts(t, tt.accounts), tt.locations)

			require.Len(t, partitions, len(tt.wantSizes))

			total := 0
			for i, p := range partitions {
				assert.Len(t, p, tt.wantSizes[i], "partition %d", i)
				total += len(p)
			}

			assert.Equal(t, tt.accounts, total)
		})
	}
}

func validConfig() *Config {
	return &Config{
		Accounts:        AccountsConfig{Users: []string{"alice:secret@ptc"}, Pass: "fallback"},
		Locations:       []string{"40.7589,-73.9851"},
		Steps:           5,
		ScanRadiusKm:    0.07,
		StepDelay:       models.Duration(10 * time.Second),
		SessionDuration: models.Duration(15 * time.Minute),
		DB:              "postgres://scanner@localhost:5432/geosweep",
		APIURL:          "http://localhost:8080",
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "no accounts", mutate: func(c *Config) { c.Accounts.Users = nil }, wantErr: errNoAccounts},
		{name: "no locations", mutate: func(c *Config) { c.Locations = nil }, wantErr: errNoLocations},
		{name: "zero steps", mutate: func(c *Config) { c.Steps = 0 }, wantErr: errInvalidSteps},
		{name: "negative radius", mutate: func(c *Config) { c.ScanRadiusKm = -1 }, wantErr: errInvalidRadius},
		{name: "missing db", mutate: func(c *Config) { c.DB = "" }, wantErr: errMissingDatabase},
		{name: "missing api url", mutate: func(c *Config) { c.APIURL = "" }, wantErr: errMissingAPIURL},
		{
			name:    "malformed account",
			mutate:  func(c *Config) { c.Accounts.Users = []string{"nonsense"} },
			wantErr: account.ErrInvalidCredential,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
