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
	"encoding/base64"
	"strconv"
	"time"

	"github.com/geosweep/geosweep/pkg/models"
)

// ParseResponse flattens every cell of a heartbeat payload into parsed
// sightings and points of interest.
func ParseResponse(raw *models.RawResponse) *models.ScanData {
	data := &models.ScanData{}

	for i := range raw.Cells {
		cell := &raw.Cells[i]
		data.Sightings = append(data.Sightings, parseSightings(cell.Entities)...)
		data.PointsOfInterest = append(data.PointsOfInterest, parseForts(cell.Forts)...)
	}

	return data
}

func parseSightings(entities []models.RawEntity) []models.Sighting {
	sightings := make([]models.Sighting, 0, len(entities))

	for _, e := range entities {
		lat, _ := strconv.ParseFloat(e.Latitude, 64)
		lon, _ := strconv.ParseFloat(e.Longitude, 64)

		sightings = append(sightings, models.Sighting{
			EncounterID:   EncodeEncounterID(e.EncounterID),
			SpawnpointID:  e.SpawnpointID,
			EntityTypeID:  e.EntityTypeID,
			Latitude:      lat,
			Longitude:     lon,
			DisappearTime: time.UnixMilli(e.ExpirationTimeMS).UTC(),
		})
	}

	return sightings
}

// parseForts is an extension point. Fort records are delivered by the
// service but not yet decoded; callers always receive an empty slice.
func parseForts(_ []models.RawFort) []models.PointOfInterest {
	return []models.PointOfInterest{}
}

// EncodeEncounterID turns a remote encounter id into the reversible
// base64 form used as the sighting's primary key.
func EncodeEncounterID(id int64) string {
	return base64.StdEncoding.EncodeToString([]byte(strconv.FormatInt(id, 10)))
}

// DecodeEncounterID reverses EncodeEncounterID.
func DecodeEncounterID(encoded string) (int64, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return 0, err
	}

	return strconv.ParseInt(string(raw), 10, 64)
}
