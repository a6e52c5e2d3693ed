package account

//go:generate mockgen -destination=mock_account.go -package=account github.com/geosweep/geosweep/pkg/account Client,Store

import (
	"context"
	"time"

	"github.com/geosweep/geosweep/pkg/models"
)

// Client is the remote-service capability an account drives. Its
// internals (auth handshake, wire encoding) are opaque to this package.
type Client interface {
	Init(ctx context.Context, user, pass string, initial models.Location, provider string) error
	SetLocation(ctx context.Context, loc models.Location) error
	LocationCoords() models.Coordinate
	Heartbeat(ctx context.Context) (*models.RawResponse, error)
}

// ClientFactory builds a fresh Client handle. Accounts construct their
// handle lazily on first login.
type ClientFactory func() Client

// Store is the transactional persistence sink for parsed scan results.
type Store interface {
	SaveScan(ctx context.Context, data *models.ScanData, point models.Coordinate) error
}

// Clock abstracts time for the retry backoff and the rate-limit delay.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

// realClock implements Clock using the real time package.
type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

// RealClock returns a Clock backed by the time package.
func RealClock() Clock {
	return realClock{}
}
