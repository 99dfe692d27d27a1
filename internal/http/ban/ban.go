// Package ban keeps track of failed logins per client and bans clients that
// fail too often.
package ban

import (
	"context"
	"time"
)

// Store counts failed logins and reports active bans. A client reaching
// maxFailures failures within ttl is banned for ttl.
type Store interface {
	Banned(ctx context.Context, target string) (bool, error)
	// RecordFailure returns the current strike count and whether the
	// failure triggered a ban.
	RecordFailure(ctx context.Context, target, route string) (int, bool, error)
	Reset(ctx context.Context, target string) error
	BanLog(ctx context.Context) ([]BanLogEntry, error)
}

type BanLogEntry struct {
	Target  string    `json:"target"`
	Route   string    `json:"route"`
	Strikes int       `json:"strikes"`
	Time    time.Time `json:"time"`
}
