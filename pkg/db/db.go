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

// Package db is the transactional persistence sink: sightings and
// scanned-location audit rows, upserted through a pgx pool.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/geosweep/geosweep/pkg/account"
	"github.com/geosweep/geosweep/pkg/logger"
)

// DB wraps the connection pool. It implements account.Store.
type DB struct {
	pool   *pgxpool.Pool
	logger logger.Logger
}

var _ account.Store = (*DB)(nil)

// New dials the configured database and verifies the connection.
func New(ctx context.Context, connString string, log logger.Logger) (*DB, error) {
	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedOpenDB, err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedOpenDB, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()

		return nil, fmt.Errorf("%w: %w", ErrFailedOpenDB, err)
	}

	return &DB{pool: pool, logger: log}, nil
}

// Close releases the pool.
func (db *DB) Close() {
	db.pool.Close()
}
