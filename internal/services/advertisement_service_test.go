package services

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"

	"myHomeBack/internal/cache"
	"myHomeBack/internal/models"
	"myHomeBack/internal/repositories"
)

func TestSearchAdvertisementsEmptyFilter(t *testing.T) {
	// A search with no criteria must short-circuit to the empty set without
	// touching the store, so a nil repository is enough here.
	svc := &AdvertisementService{}

	ads, err := svc.SearchAdvertisements(context.Background(), models.AdvertisementFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if ads == nil {
		t.Fatal("expected an empty slice, got nil")
	}
	if len(ads) != 0 {
		t.Fatalf("expected no results, got %d", len(ads))
	}
}

func TestSaveImageInvalidatesPublishedCache(t *testing.T) {
	mr := miniredis.RunT(t)
	listingCache, err := cache.NewAdvertisementCache(mr.Addr(), time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	mock.ExpectQuery("SELECT COUNT").WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectExec("INSERT INTO images").WillReturnResult(sqlmock.NewResult(5, 1))

	svc := &AdvertisementService{
		AdvertisementRepo: &repositories.AdvertisementRepository{DB: db},
		Cache:             listingCache,
	}

	ctx := context.Background()
	if err := listingCache.SetPublished(ctx, []models.Advertisement{{ID: 1}}); err != nil {
		t.Fatal(err)
	}

	img := models.Image{
		AdvertisementID: 1,
		FileName:        "front.jpg",
		ContentType:     "image/jpeg",
		Content:         []byte("jpeg-bytes"),
	}
	if _, err := svc.SaveImage(ctx, img); err != nil {
		t.Fatal(err)
	}

	if _, ok, err := listingCache.GetPublished(ctx); err != nil {
		t.Fatal(err)
	} else if ok {
		t.Error("published cache must be invalidated after an image upload")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
