package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"myHomeBack/internal/models"
)

var advertisementColumns = []string{
	"id", "title", "description", "price", "quadrature",
	"real_estate_type", "advertisement_type", "status",
	"is_published", "is_favourite", "realise_date",
	"created_by", "user_id",
	"addr_id", "latitude", "longitude", "city", "street",
	"created_at", "updated_at",
}

func TestUpdateAdvertisementUnpublish(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	repo := &AdvertisementRepository{DB: db}
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE advertisements").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE addresses").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// The re-read must not carry the published filter, or unpublishing a
	// listing would report it as missing after the write succeeded.
	mock.ExpectQuery(`WHERE a\.id = \? AND a\.is_deleted = 0`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows(advertisementColumns).AddRow(
			3, "Two rooms", "", 85000, 52,
			models.RealEstateApartment, models.AdvertisementSale, models.StatusStandard,
			false, false, now,
			"", 9,
			4, 44.78, 20.44, "Belgrade", "Main 1",
			now, nil,
		))
	mock.ExpectQuery("FROM images").
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "advertisement_id", "file_name", "content_type", "url", "created_at", "updated_at",
		}))

	updated, err := repo.UpdateAdvertisement(context.Background(), models.Advertisement{
		ID:                3,
		Title:             "Two rooms",
		Price:             85000,
		Quadrature:        52,
		RealEstateType:    models.RealEstateApartment,
		AdvertisementType: models.AdvertisementSale,
		Status:            models.StatusStandard,
		IsPublished:       false,
	})
	if err != nil {
		t.Fatalf("unpublishing must not fail: %v", err)
	}
	if updated.IsPublished {
		t.Error("listing must come back unpublished")
	}
	if updated.ID != 3 {
		t.Errorf("unexpected id %d", updated.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
