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

package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/geosweep/geosweep/pkg/models"
)

const upsertSightingSQL = `
INSERT INTO sightings (
	encounter_id,
	spawnpoint_id,
	entity_type_id,
	latitude,
	longitude,
	disappear_time
) VALUES (
	$1,$2,$3,$4,$5,$6
)
ON CONFLICT (encounter_id) DO UPDATE SET
	spawnpoint_id = EXCLUDED.spawnpoint_id,
	entity_type_id = EXCLUDED.entity_type_id,
	latitude = EXCLUDED.latitude,
	longitude = EXCLUDED.longitude,
	disappear_time = EXCLUDED.disappear_time`

const upsertScannedLocationSQL = `
INSERT INTO scanned_locations (
	scanned_id,
	latitude,
	longitude,
	last_modified
) VALUES (
	$1,$2,$3,$4
)
ON CONFLICT (scanned_id) DO UPDATE SET
	last_modified = EXCLUDED.last_modified`

// SaveScan upserts every parsed record of one scan point inside a single
// read-committed transaction: all sightings, all points of interest and
// one scanned-location audit row. The transaction commits as a whole or
// not at all; concurrent upserts of the same key resolve last-write-wins
// at the database.
func (db *DB) SaveScan(ctx context.Context, data *models.ScanData, point models.Coordinate) error {
	tx, err := db.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("%w: begin: %w", ErrFailedToInsert, err)
	}

	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}

	for i := range data.Sightings {
		batch.Queue(upsertSightingSQL, buildSightingArgs(&data.Sightings[i])...)
	}

	// Points of interest carry no persisted form yet.

	batch.Queue(upsertScannedLocationSQL, buildScannedLocationArgs(point, time.Now().UTC())...)

	if err := sendBatch(ctx, tx, batch); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: commit: %w", ErrFailedToInsert, err)
	}

	return nil
}

func sendBatch(ctx context.Context, tx pgx.Tx, batch *pgx.Batch) error {
	results := tx.SendBatch(ctx, batch)

	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()

			return fmt.Errorf("%w: %w", ErrFailedToInsert, err)
		}
	}

	return results.Close()
}

func buildSightingArgs(s *models.Sighting) []interface{} {
	return []interface{}{
		s.EncounterID,
		s.SpawnpointID,
		s.EntityTypeID,
		s.Latitude,
		s.Longitude,
		s.DisappearTime,
	}
}

func buildScannedLocationArgs(point models.Coordinate, now time.Time) []interface{} {
	return []interface{}{
		ScannedID(point),
		point.Latitude,
		point.Longitude,
		now,
	}
}

// ScannedID derives the audit-row key from the rounded coordinate pair,
// one row per distinct pair.
func ScannedID(point models.Coordinate) string {
	return fmt.Sprintf("%.5f,%.5f", point.Latitude, point.Longitude)
}
