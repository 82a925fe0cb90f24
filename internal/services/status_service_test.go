package services

import (
	"context"
	"testing"
	"time"

	"myHomeBack/internal/models"
)

// fakeStatusRepo keeps advertisements in memory and records every batch of
// downgrades it is asked to persist.
type fakeStatusRepo struct {
	ads     []models.Advertisement
	batches [][]int
}

func (f *fakeStatusRepo) GetAdvertisementsOlderThan(_ context.Context, cutoff time.Time) ([]models.Advertisement, error) {
	var out []models.Advertisement
	for _, adv := range f.ads {
		if adv.RealiseDate.Before(cutoff) {
			out = append(out, adv)
		}
	}
	return out, nil
}

func (f *fakeStatusRepo) DowngradeStatuses(_ context.Context, ids []int) error {
	f.batches = append(f.batches, ids)
	for _, id := range ids {
		for i := range f.ads {
			if f.ads[i].ID == id {
				f.ads[i].Status = models.StatusStandard
			}
		}
	}
	return nil
}

func (f *fakeStatusRepo) statusOf(t *testing.T, id int) string {
	t.Helper()
	for _, adv := range f.ads {
		if adv.ID == id {
			return adv.Status
		}
	}
	t.Fatalf("advertisement %d not found", id)
	return ""
}

func TestDowngradeExpiredTiers(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeStatusRepo{ads: []models.Advertisement{
		{ID: 1, Status: models.StatusTop, RealiseDate: now.Add(-10 * 24 * time.Hour)},
		{ID: 2, Status: models.StatusPremium, RealiseDate: now.Add(-10 * 24 * time.Hour)},
		{ID: 3, Status: models.StatusPremium, RealiseDate: now.Add(-20 * 24 * time.Hour)},
		{ID: 4, Status: models.StatusStandard, RealiseDate: now.Add(-30 * 24 * time.Hour)},
	}}
	svc := NewStatusService(repo)

	count, err := svc.DowngradeExpired(context.Background(), now)
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Fatalf("expected 2 downgrades, got %d", count)
	}

	if got := repo.statusOf(t, 1); got != models.StatusStandard {
		t.Errorf("top listing past 7 days: got %q, want standard", got)
	}
	if got := repo.statusOf(t, 2); got != models.StatusPremium {
		t.Errorf("premium listing at 10 days must keep its tier, got %q", got)
	}
	if got := repo.statusOf(t, 3); got != models.StatusStandard {
		t.Errorf("premium listing past 14 days: got %q, want standard", got)
	}
	if got := repo.statusOf(t, 4); got != models.StatusStandard {
		t.Errorf("standard listing must stay standard, got %q", got)
	}
}

func TestDowngradeExpiredPersistsOneBatch(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeStatusRepo{ads: []models.Advertisement{
		{ID: 1, Status: models.StatusTop, RealiseDate: now.Add(-8 * 24 * time.Hour)},
		{ID: 2, Status: models.StatusPremium, RealiseDate: now.Add(-15 * 24 * time.Hour)},
	}}
	svc := NewStatusService(repo)

	if _, err := svc.DowngradeExpired(context.Background(), now); err != nil {
		t.Fatal(err)
	}
	if len(repo.batches) != 1 {
		t.Fatalf("expected one persisted batch, got %d", len(repo.batches))
	}
	if len(repo.batches[0]) != 2 {
		t.Fatalf("expected both ids in the batch, got %v", repo.batches[0])
	}
}

func TestDowngradeExpiredBoundaryIsExclusive(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeStatusRepo{ads: []models.Advertisement{
		{ID: 1, Status: models.StatusTop, RealiseDate: now.Add(-7 * 24 * time.Hour)},
		{ID: 2, Status: models.StatusPremium, RealiseDate: now.Add(-14 * 24 * time.Hour)},
	}}
	svc := NewStatusService(repo)

	count, err := svc.DowngradeExpired(context.Background(), now)
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Fatalf("listings realised exactly at the cutoff are not eligible, got %d downgrades", count)
	}
	if len(repo.batches) != 0 {
		t.Fatalf("no batch should be persisted when nothing is eligible, got %v", repo.batches)
	}
}

func TestDowngradeExpiredIdempotent(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeStatusRepo{ads: []models.Advertisement{
		{ID: 1, Status: models.StatusTop, RealiseDate: now.Add(-9 * 24 * time.Hour)},
		{ID: 2, Status: models.StatusPremium, RealiseDate: now.Add(-16 * 24 * time.Hour)},
	}}
	svc := NewStatusService(repo)

	first, err := svc.DowngradeExpired(context.Background(), now)
	if err != nil {
		t.Fatal(err)
	}
	if first != 2 {
		t.Fatalf("expected 2 downgrades on the first run, got %d", first)
	}

	second, err := svc.DowngradeExpired(context.Background(), now)
	if err != nil {
		t.Fatal(err)
	}
	if second != 0 {
		t.Fatalf("second run must be a no-op, got %d downgrades", second)
	}
	if len(repo.batches) != 1 {
		t.Fatalf("second run must not persist anything, got %d batches", len(repo.batches))
	}
}

func TestDowngradeExpiredDeduplicatesPasses(t *testing.T) {
	// A top listing old enough to show up in both scans must be downgraded once.
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeStatusRepo{ads: []models.Advertisement{
		{ID: 1, Status: models.StatusTop, RealiseDate: now.Add(-20 * 24 * time.Hour)},
	}}
	svc := NewStatusService(repo)

	count, err := svc.DowngradeExpired(context.Background(), now)
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Fatalf("expected 1 downgrade, got %d", count)
	}
	if len(repo.batches) != 1 || len(repo.batches[0]) != 1 {
		t.Fatalf("id must appear exactly once, got %v", repo.batches)
	}
}
