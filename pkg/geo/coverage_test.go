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

package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geosweep/geosweep/pkg/models"
)

func TestGenerateCoverage_PointCounts(t *testing.T) {
	center := models.Coordinate{Latitude: 40.7589, Longitude: -73.9851}

	tests := []struct {
		name  string
		rings int
		want  int
	}{
		{name: "zero rings yields center only", rings: 0, want: 1},
		{name: "single ring yields center only", rings: 1, want: 1},
		{name: "two rings", rings: 2, want: 7},
		{name: "three rings", rings: 3, want: 19},
		{name: "five rings", rings: 5, want: 61},
		{name: "ten rings", rings: 10, want: 271},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := GenerateCoverage(center, tt.rings, 0.07)

			assert.Len(t, points, tt.want)
			assert.Equal(t, tt.want, CoverageSize(tt.rings))
		})
	}
}

func TestGenerateCoverage_StartsAtCenter(t *testing.T) {
	center := models.Coordinate{Latitude: 40.7589, Longitude: -73.9851}

	points := GenerateCoverage(center, 3, 0.07)

	require.NotEmpty(t, points)
	assert.Equal(t, center.Latitude, points[0].Latitude)
	assert.Equal(t, center.Longitude, points[0].Longitude)
}

func TestGenerateCoverage_Deterministic(t *testing.T) {
	center := models.Coordinate{Latitude: -33.8688, Longitude: 151.2093}

	first := GenerateCoverage(center, 4, 0.07)
	second := GenerateCoverage(center, 4, 0.07)

	assert.Equal(t, first, second)
}

// Neighboring points of a hex packing sit at most one cell pitch apart;
// no generated point should be further from the center than the outermost
// ring's reach.
func TestGenerateCoverage_StaysWithinOuterRing(t *testing.T) {
	center := models.Coordinate{Latitude: 40.0, Longitude: -73.0}
	const (
		rings  = 4
		radius = 0.07
	)

	// Worst case: rings-1 rings of sqrt(3)*r pitch plus the anchor move.
	maxKm := float64(rings) * math.Sqrt(3) * radius * 1.5

	for i, p := range GenerateCoverage(center, rings, radius) {
		assert.LessOrEqual(t, approxDistanceKm(center, p), maxKm, "point %d too far out", i)
	}
}

// approxDistanceKm is a small-angle flat-earth approximation, plenty for
// sub-kilometer assertions.
func approxDistanceKm(a, b models.Coordinate) float64 {
	latKm := (b.Latitude - a.Latitude) * 111.32
	lonKm := (b.Longitude - a.Longitude) * 111.32 * math.Cos(a.Latitude*math.Pi/180)

	return math.Hypot(latKm, lonKm)
}
