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

// Package geo provides the geodetic math and the hexagonal coverage
// generator that turn a center point and a scan radius into an ordered
// list of scan points.
package geo

import (
	"math"

	"github.com/geosweep/geosweep/pkg/models"
)

// earthRadiusKm is the spherical earth radius used by the forward
// geodesic. The remote service works with the same constant, so keep it.
const earthRadiusKm = 6378.1

// Compass bearings in degrees.
const (
	North = 0.0
	East  = 90.0
	South = 180.0
	West  = 270.0
)

// Destination computes the great-circle destination point reached from
// origin by traveling distanceKm along the given bearing. Altitude is not
// carried; the result is a ground-level point.
func Destination(origin models.Coordinate, bearingDeg, distanceKm float64) models.Coordinate {
	bearing := radians(bearingDeg)
	lat := radians(origin.Latitude)
	lon := radians(origin.Longitude)
	ratio := distanceKm / earthRadiusKm

	newLat := math.Asin(
		math.Sin(lat)*math.Cos(ratio) +
			math.Cos(lat)*math.Sin(ratio)*math.Cos(bearing))

	newLon := lon + math.Atan2(
		math.Sin(bearing)*math.Sin(ratio)*math.Cos(lat),
		math.Cos(ratio)-math.Sin(lat)*math.Sin(newLat))

	return models.Coordinate{
		Latitude:  degrees(newLat),
		Longitude: degrees(newLon),
	}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
