package models

import (
	"errors"
	"testing"
)

func TestAdvertisementFilterIsZero(t *testing.T) {
	if !(AdvertisementFilter{}).IsZero() {
		t.Error("empty filter must be zero")
	}
	if !(AdvertisementFilter{MatchAny: true}).IsZero() {
		t.Error("match mode alone is not a criterion")
	}
	if (AdvertisementFilter{City: "Belgrade"}).IsZero() {
		t.Error("a filter with a city is not zero")
	}
	if (AdvertisementFilter{Price: 1}).IsZero() {
		t.Error("a filter with a price is not zero")
	}
}

func TestAdvertisementValidateTypes(t *testing.T) {
	valid := Advertisement{RealEstateType: RealEstateApartment, AdvertisementType: AdvertisementSale}
	if err := valid.ValidateTypes(); err != nil {
		t.Fatalf("valid types rejected: %v", err)
	}

	badEstate := Advertisement{RealEstateType: "castle", AdvertisementType: AdvertisementRent}
	if err := badEstate.ValidateTypes(); !errors.Is(err, ErrInvalidRealEstateType) {
		t.Fatalf("expected ErrInvalidRealEstateType, got %v", err)
	}

	badDeal := Advertisement{RealEstateType: RealEstateHouse, AdvertisementType: "barter"}
	if err := badDeal.ValidateTypes(); !errors.Is(err, ErrInvalidAdvertisementType) {
		t.Fatalf("expected ErrInvalidAdvertisementType, got %v", err)
	}
}
