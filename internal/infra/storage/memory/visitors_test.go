package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	domainvisitors "pinelodge/internal/domain/visitors"
)

func TestRecordVisitCreatesThenIncrements(t *testing.T) {
	ctx := context.Background()
	repo := NewVisitorRepository()
	first := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	if err := repo.RecordVisit(ctx, domainvisitors.Visit{IP: "203.0.113.7", PageURL: "/cabins", At: first}); err != nil {
		t.Fatalf("first visit: %v", err)
	}
	if err := repo.RecordVisit(ctx, domainvisitors.Visit{IP: "203.0.113.7", PageURL: "/cabins/the-pine", At: second}); err != nil {
		t.Fatalf("second visit: %v", err)
	}

	rec, err := repo.ByIP(ctx, "203.0.113.7")
	if err != nil {
		t.Fatalf("ByIP: %v", err)
	}
	if rec.VisitCount != 2 {
		t.Fatalf("visit count = %d, want 2", rec.VisitCount)
	}
	if !rec.FirstVisit.Equal(first) {
		t.Fatalf("first visit = %v, want %v", rec.FirstVisit, first)
	}
	if !rec.LastVisit.Equal(second) {
		t.Fatalf("last visit = %v, want %v", rec.LastVisit, second)
	}
	if rec.PageURL != "/cabins/the-pine" {
		t.Fatalf("page url should hold the latest value, got %q", rec.PageURL)
	}
}

func TestRecordVisitRejectsEmptyIP(t *testing.T) {
	repo := NewVisitorRepository()
	if err := repo.RecordVisit(context.Background(), domainvisitors.Visit{}); !errors.Is(err, domainvisitors.ErrInvalidIP) {
		t.Fatalf("expected ErrInvalidIP, got %v", err)
	}
}

func TestRecordVisitConcurrentCountExact(t *testing.T) {
	ctx := context.Background()
	repo := NewVisitorRepository()
	at := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	const visits = 32
	var wg sync.WaitGroup
	for i := 0; i < visits; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.RecordVisit(ctx, domainvisitors.Visit{IP: "203.0.113.7", At: at})
		}()
	}
	wg.Wait()

	rec, err := repo.ByIP(ctx, "203.0.113.7")
	if err != nil {
		t.Fatalf("ByIP: %v", err)
	}
	if rec.VisitCount != visits {
		t.Fatalf("visit count = %d, want %d", rec.VisitCount, visits)
	}
}

func TestByIPUnknown(t *testing.T) {
	repo := NewVisitorRepository()
	if _, err := repo.ByIP(context.Background(), "198.51.100.1"); !errors.Is(err, domainvisitors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
