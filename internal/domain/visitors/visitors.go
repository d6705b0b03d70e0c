package visitors

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound  = errors.New("visitors: record not found")
	ErrInvalidIP = errors.New("visitors: ip required")
)

// Visit is one observed page hit.
type Visit struct {
	IP        string
	UserAgent string
	Referrer  string
	PageURL   string
	At        time.Time
}

// Record is the per-IP counter: one record per IP, not per visit.
type Record struct {
	IP         string
	VisitCount int64
	FirstVisit time.Time
	LastVisit  time.Time
	UserAgent  string
	Referrer   string
	PageURL    string
}

// Repository persists visitor records. RecordVisit must be an atomic
// upsert-with-increment at the storage layer; a read-then-write upsert in
// caller code loses increments under concurrent visits from one IP.
type Repository interface {
	RecordVisit(ctx context.Context, visit Visit) error
	ByIP(ctx context.Context, ip string) (*Record, error)
}
