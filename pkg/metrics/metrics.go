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

// Package metrics exposes Prometheus instrumentation for sweep progress.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "geosweep"

var (
	// PointsScanned counts scan points processed to completion, by user.
	PointsScanned = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "points_scanned_total",
		Help:      "Scan points processed to completion.",
	}, []string{"user"})

	// PointsRequeued counts scan points pushed back for retry after an
	// empty service result.
	PointsRequeued = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "points_requeued_total",
		Help:      "Scan points re-enqueued after an empty result.",
	})

	// SightingsStored counts sightings upserted into the store.
	SightingsStored = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sightings_stored_total",
		Help:      "Sightings upserted into the store.",
	})

	// LoginRetries counts failed login attempts across all accounts.
	LoginRetries = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_retries_total",
		Help:      "Failed login attempts.",
	})

	// SweepCycles counts completed sweep cycles per location partition.
	SweepCycles = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sweep_cycles_total",
		Help:      "Completed sweep cycles.",
	}, []string{"location"})

	// SweepCycleDuration observes how long a full coverage pass takes.
	SweepCycleDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "sweep_cycle_duration_seconds",
		Help:      "Duration of a full coverage pass.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14),
	}, []string{"location"})
)

// Handler returns the HTTP handler serving the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
