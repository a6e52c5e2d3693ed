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

// Package models defines the shared value types carried between the
// coverage generator, the account workers and the persistence sink.
package models

import (
	"fmt"
	"time"
)

// Coordinate is a geodetic position. It is a plain carrier value;
// equality is intentionally undefined.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Altitude  float64 `json:"altitude,omitempty"`
}

func (c Coordinate) String() string {
	return fmt.Sprintf("{%v, %v}", c.Latitude, c.Longitude)
}

// LocationKind distinguishes how a Location is addressed.
type LocationKind string

const (
	LocationCoords LocationKind = "coords"
	LocationName   LocationKind = "name"
)

// Location is either an explicit coordinate pair or a named place that the
// remote service resolves on its own. The two are told apart by Kind, never
// by inspecting the values.
type Location struct {
	Kind   LocationKind
	Coords Coordinate
	Name   string
}

// CoordsLocation wraps a Coordinate in a Location descriptor.
func CoordsLocation(c Coordinate) Location {
	return Location{Kind: LocationCoords, Coords: c}
}

// NamedLocation wraps a place name in a Location descriptor.
func NamedLocation(name string) Location {
	return Location{Kind: LocationName, Name: name}
}

func (l Location) String() string {
	if l.Kind == LocationName {
		return l.Name
	}

	return l.Coords.String()
}

// Sighting is one detected entity returned by a scan. Upserts are keyed by
// EncounterID; last write wins.
type Sighting struct {
	EncounterID   string    `json:"encounter_id"`
	SpawnpointID  string    `json:"spawnpoint_id"`
	EntityTypeID  int       `json:"entity_type_id"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	DisappearTime time.Time `json:"disappear_time"`
}

// PointOfInterest is a static map feature. Parsing is a declared extension
// point and currently yields none; the type exists so the persistence
// pipeline keeps its slot in the transaction.
type PointOfInterest struct {
	ID        string  `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ScannedLocation is the audit row recorded for every coordinate pair that
// has been queried at least once. It is not consulted for skip logic.
type ScannedLocation struct {
	ScannedID    string    `json:"scanned_id"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	LastModified time.Time `json:"last_modified"`
}

// ScanData is the parsed outcome of one heartbeat at one scan point.
type ScanData struct {
	Sightings        []Sighting
	PointsOfInterest []PointOfInterest
}

// RawEntity is one entity record as delivered by the remote service.
// Latitude/Longitude arrive as strings and the expiry as a millisecond
// epoch offset; ParseResponse normalizes both.
type RawEntity struct {
	EncounterID      int64  `json:"EncounterId"`
	SpawnpointID     string `json:"SpawnPointId"`
	EntityTypeID     int    `json:"PokedexTypeId"`
	Latitude         string `json:"Latitude"`
	Longitude        string `json:"Longitude"`
	ExpirationTimeMS int64  `json:"ExpirationTimeMs"`
}

// RawFort is an unparsed point-of-interest record.
type RawFort struct {
	ID       string `json:"FortId"`
	FortType int    `json:"FortType"`
}

// Cell is one spatial bucket of a heartbeat response.
type Cell struct {
	Entities []RawEntity `json:"MapPokemon"`
	Forts    []RawFort   `json:"Fort"`
}

// RawResponse is the opaque heartbeat payload handed back by the remote
// client capability.
type RawResponse struct {
	Cells []Cell `json:"cells"`
}
