package services

import (
	"context"

	"myHomeBack/internal/cache"
	"myHomeBack/internal/models"
	"myHomeBack/internal/repositories"
)

type AdvertisementService struct {
	AdvertisementRepo *repositories.AdvertisementRepository
	Cache             *cache.AdvertisementCache
}

func (s *AdvertisementService) CreateAdvertisement(ctx context.Context, adv models.Advertisement) (models.Advertisement, error) {
	if err := adv.ValidateTypes(); err != nil {
		return models.Advertisement{}, err
	}
	created, err := s.AdvertisementRepo.CreateAdvertisement(ctx, adv)
	if err != nil {
		return models.Advertisement{}, err
	}
	s.invalidateCache(ctx)
	return created, nil
}

// GetPublishedAdvertisements serves from the Redis cache when possible. The
// cache is best effort: a cache failure falls through to the store.
func (s *AdvertisementService) GetPublishedAdvertisements(ctx context.Context) ([]models.Advertisement, error) {
	if s.Cache != nil {
		if ads, ok, err := s.Cache.GetPublished(ctx); err == nil && ok {
			return ads, nil
		}
	}

	ads, err := s.AdvertisementRepo.GetPublishedAdvertisements(ctx)
	if err != nil {
		return nil, err
	}
	if s.Cache != nil {
		_ = s.Cache.SetPublished(ctx, ads)
	}
	return ads, nil
}

func (s *AdvertisementService) GetAdvertisementByID(ctx context.Context, id int) (models.Advertisement, error) {
	return s.AdvertisementRepo.GetAdvertisementByID(ctx, id)
}

func (s *AdvertisementService) GetAdvertisementsByCreatedBy(ctx context.Context, createdBy string) ([]models.Advertisement, error) {
	return s.AdvertisementRepo.GetAdvertisementsByCreatedBy(ctx, createdBy)
}

func (s *AdvertisementService) GetAdvertisementsByUserID(ctx context.Context, userID int) ([]models.Advertisement, error) {
	return s.AdvertisementRepo.GetAdvertisementsByUserID(ctx, userID)
}

// SearchAdvertisements applies the AND-combined filter. A filter with no
// criteria returns the empty set, never the unfiltered table.
func (s *AdvertisementService) SearchAdvertisements(ctx context.Context, filter models.AdvertisementFilter) ([]models.Advertisement, error) {
	if filter.IsZero() {
		return []models.Advertisement{}, nil
	}
	return s.AdvertisementRepo.SearchAdvertisements(ctx, filter)
}

func (s *AdvertisementService) SearchAdvertisementsInRange(ctx context.Context, req models.RangeSearchRequest) ([]models.Advertisement, error) {
	return s.AdvertisementRepo.SearchAdvertisementsInRange(ctx, req)
}

func (s *AdvertisementService) FastSearch(ctx context.Context, cityKey, realEstateType string) ([]models.Advertisement, error) {
	return s.AdvertisementRepo.FastSearch(ctx, cityKey, realEstateType)
}

func (s *AdvertisementService) LocationSearch(ctx context.Context, req models.LocationSearchRequest) ([]models.Advertisement, error) {
	return s.AdvertisementRepo.LocationSearch(ctx, req)
}

func (s *AdvertisementService) ChooseAdvertisement(ctx context.Context, advertisementID, userID int) error {
	if err := s.AdvertisementRepo.ChooseAdvertisement(ctx, advertisementID, userID); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *AdvertisementService) BuyPoints(ctx context.Context, points, userID int) error {
	return s.AdvertisementRepo.BuyPoints(ctx, points, userID)
}

func (s *AdvertisementService) UpdateAdvertisement(ctx context.Context, adv models.Advertisement) (models.Advertisement, error) {
	if err := adv.ValidateTypes(); err != nil {
		return models.Advertisement{}, err
	}
	updated, err := s.AdvertisementRepo.UpdateAdvertisement(ctx, adv)
	if err != nil {
		return models.Advertisement{}, err
	}
	s.invalidateCache(ctx)
	return updated, nil
}

func (s *AdvertisementService) DeleteAdvertisement(ctx context.Context, id int) error {
	if err := s.AdvertisementRepo.DeleteAdvertisement(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *AdvertisementService) GetImagesByAdvertisementID(ctx context.Context, advertisementID int) ([]models.Image, error) {
	return s.AdvertisementRepo.GetImagesByAdvertisementID(ctx, advertisementID)
}

func (s *AdvertisementService) GetImageByFileName(ctx context.Context, fileName string) (models.Image, error) {
	return s.AdvertisementRepo.GetImageByFileName(ctx, fileName)
}

func (s *AdvertisementService) SaveImage(ctx context.Context, img models.Image) (models.Image, error) {
	saved, err := s.AdvertisementRepo.SaveImage(ctx, img)
	if err != nil {
		return models.Image{}, err
	}
	// Images are embedded in the cached feed, so an upload is a mutation too.
	s.invalidateCache(ctx)
	return saved, nil
}

func (s *AdvertisementService) invalidateCache(ctx context.Context) {
	if s.Cache != nil {
		_ = s.Cache.Invalidate(ctx)
	}
}
