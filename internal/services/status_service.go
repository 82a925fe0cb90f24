package services

import (
	"context"
	"time"

	"myHomeBack/internal/cache"
	"myHomeBack/internal/models"
)

// Promotion lifetimes, measured from the realise date.
const (
	topPromotionTTL     = 7 * 24 * time.Hour
	premiumPromotionTTL = 14 * 24 * time.Hour
)

// StatusRepository is the slice of the advertisement repository the cleaner
// needs. The maintenance scan ignores publish/delete filters.
type StatusRepository interface {
	GetAdvertisementsOlderThan(ctx context.Context, cutoff time.Time) ([]models.Advertisement, error)
	DowngradeStatuses(ctx context.Context, ids []int) error
}

type StatusService struct {
	Repo  StatusRepository
	Cache *cache.AdvertisementCache
}

func NewStatusService(repo StatusRepository) *StatusService {
	return &StatusService{Repo: repo}
}

// DowngradeExpired expires promoted tiers: listings realised strictly more
// than 7 days before now lose "top", strictly more than 14 days lose
// "premium". A listing realised exactly at a cutoff is not yet eligible.
// Both passes are persisted in one batch commit, and a second run with no
// intervening changes is a no-op. Returns the number of downgraded listings.
func (s *StatusService) DowngradeExpired(ctx context.Context, now time.Time) (int, error) {
	if s == nil || s.Repo == nil {
		return 0, nil
	}
	if now.IsZero() {
		now = time.Now()
	}

	seen := make(map[int]struct{})
	var ids []int

	topExpired, err := s.Repo.GetAdvertisementsOlderThan(ctx, now.Add(-topPromotionTTL))
	if err != nil {
		return 0, err
	}
	for _, adv := range topExpired {
		if adv.Status == models.StatusTop {
			if _, ok := seen[adv.ID]; !ok {
				seen[adv.ID] = struct{}{}
				ids = append(ids, adv.ID)
			}
		}
	}

	premiumExpired, err := s.Repo.GetAdvertisementsOlderThan(ctx, now.Add(-premiumPromotionTTL))
	if err != nil {
		return 0, err
	}
	for _, adv := range premiumExpired {
		if adv.Status == models.StatusPremium {
			if _, ok := seen[adv.ID]; !ok {
				seen[adv.ID] = struct{}{}
				ids = append(ids, adv.ID)
			}
		}
	}

	if len(ids) == 0 {
		return 0, nil
	}

	if err := s.Repo.DowngradeStatuses(ctx, ids); err != nil {
		return 0, err
	}
	if s.Cache != nil {
		_ = s.Cache.Invalidate(ctx)
	}
	return len(ids), nil
}
