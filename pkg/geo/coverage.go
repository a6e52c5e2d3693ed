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

	"github.com/geosweep/geosweep/pkg/models"
)

// GenerateCoverage produces the ordered scan points of a gap-free
// hexagonal packing around center: ring 0 is the center itself, each
// further ring walks the hex perimeter one cell at a time. cellRadiusKm
// is the scan radius of a single query, which fixes the hex geometry:
// horizontal pitch sqrt(3)*r, vertical pitch 1.5*r.
//
// The output is deterministic for a given (center, rings, cellRadiusKm)
// and has length 1 + 3*rings*(rings-1). rings <= 1 yields only the center.
func GenerateCoverage(center models.Coordinate, rings int, cellRadiusKm float64) []models.Coordinate {
	xDist := math.Sqrt(3) * cellRadiusKm
	yDist := 1.5 * cellRadiusKm

	points := []models.Coordinate{{Latitude: center.Latitude, Longitude: center.Longitude}}

	current := center

	for ring := 1; ring < rings; ring++ {
		// Reposition to the new ring's top-left anchor.
		current = Destination(current, North, yDist)
		current = Destination(current, West, xDist/2)

		for direction := 0; direction < 6; direction++ {
			for i := 0; i < ring; i++ {
				switch direction {
				case 0: // east
					current = Destination(current, East, xDist)
				case 1: // south-east
					current = Destination(current, South, yDist)
					current = Destination(current, East, xDist/2)
				case 2: // south-west
					current = Destination(current, South, yDist)
					current = Destination(current, West, xDist/2)
				case 3: // west
					current = Destination(current, West, xDist)
				case 4: // north-west
					current = Destination(current, North, yDist)
					current = Destination(current, West, xDist/2)
				case 5: // north-east
					current = Destination(current, North, yDist)
					current = Destination(current, East, xDist/2)
				}

				points = append(points, current)
			}
		}
	}

	return points
}

// CoverageSize returns the number of points GenerateCoverage emits for the
// given ring count without generating them.
func CoverageSize(rings int) int {
	if rings <= 1 {
		return 1
	}

	return 1 + 3*rings*(rings-1)
}
