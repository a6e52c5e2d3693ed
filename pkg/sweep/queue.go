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
	"sync"

	"github.com/geosweep/geosweep/pkg/models"
)

// Queue is the shared scan-point work queue drained by the accounts of one
// partition. PopFront is exclusive: no two consumers ever receive the same
// point. PushFront re-inserts a point that must be retried, so nothing is
// silently dropped.
type Queue struct {
	mu     sync.Mutex
	points []models.Coordinate
}

// NewQueue builds a queue holding the given points in order.
func NewQueue(points []models.Coordinate) *Queue {
	q := &Queue{points: make([]models.Coordinate, len(points))}
	copy(q.points, points)

	return q
}

// PopFront removes and returns the first point. The second return value is
// false when the queue is empty.
func (q *Queue) PopFront() (models.Coordinate, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.points) == 0 {
		return models.Coordinate{}, false
	}

	point := q.points[0]
	q.points = q.points[1:]

	return point, true
}

// PushFront puts a point back at the head of the queue for a later retry.
func (q *Queue) PushFront(point models.Coordinate) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.points = append([]models.Coordinate{point}, q.points...)
}

// Len reports the number of points still queued.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.points)
}
