package models

import (
	"time"
)

// Real-estate categories a listing can belong to.
const (
	RealEstateApartment = "apartment"
	RealEstateHouse     = "house"
	RealEstateLand      = "land"
	RealEstateOffice    = "office"
	RealEstateGarage    = "garage"
)

// Deal type of a listing.
const (
	AdvertisementSale = "sale"
	AdvertisementRent = "rent"
)

// Visibility tiers. Premium and top are time-limited promotions expired by the
// status cleaner.
const (
	StatusStandard = "standard"
	StatusPremium  = "premium"
	StatusTop      = "top"
)

type Address struct {
	ID              int     `json:"id"`
	AdvertisementID int     `json:"advertisement_id,omitempty"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	City            string  `json:"city"`
	Street          string  `json:"street"`
}

type Advertisement struct {
	ID                int        `json:"id"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	Price             int        `json:"price"`
	Quadrature        int        `json:"quadrature"`
	RealEstateType    string     `json:"real_estate_type"`
	AdvertisementType string     `json:"advertisement_type"`
	Status            string     `json:"status"`
	IsPublished       bool       `json:"is_published"`
	IsFavourite       bool       `json:"is_favourite"`
	IsDeleted         bool       `json:"-"`
	RealiseDate       time.Time  `json:"realise_date"`
	CreatedBy         string     `json:"created_by,omitempty"`
	UserID            int        `json:"user_id"`
	Address           Address    `json:"address"`
	Images            []Image    `json:"images"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty"`
}

// ValidateTypes checks the listing's category and deal type against the known
// values.
func (a Advertisement) ValidateTypes() error {
	switch a.RealEstateType {
	case RealEstateApartment, RealEstateHouse, RealEstateLand, RealEstateOffice, RealEstateGarage:
	default:
		return ErrInvalidRealEstateType
	}
	switch a.AdvertisementType {
	case AdvertisementSale, AdvertisementRent:
	default:
		return ErrInvalidAdvertisementType
	}
	return nil
}

// AdvertisementFilter carries the general search criteria. Zero-valued fields
// are treated as not supplied and never reach the query.
type AdvertisementFilter struct {
	Price             int    `json:"price"`
	AdvertisementType string `json:"advertisement_type"`
	RealEstateType    string `json:"real_estate_type"`
	Quadrature        int    `json:"quadrature"`
	City              string `json:"city"`
	MatchAny          bool   `json:"match_any"`
}

// IsZero reports whether no criterion was supplied at all.
func (f AdvertisementFilter) IsZero() bool {
	return f.Price == 0 &&
		f.AdvertisementType == "" &&
		f.RealEstateType == "" &&
		f.Quadrature == 0 &&
		f.City == ""
}

// RangeSearchRequest is the constrained search: every supplied bound is
// inclusive and all criteria are AND-combined.
type RangeSearchRequest struct {
	City              string `json:"city"`
	MinPrice          int    `json:"min_price"`
	MaxPrice          int    `json:"max_price"`
	MinQuadrature     int    `json:"min_quadrature"`
	MaxQuadrature     int    `json:"max_quadrature"`
	AdvertisementType string `json:"advertisement_type"`
	RealEstateType    string `json:"real_estate_type"`
}

type LocationSearchRequest struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters float64 `json:"radius"`
}

type ChooseRequest struct {
	ID     int `json:"id"`
	IDUser int `json:"id_user"`
}

type BuyPointsRequest struct {
	Points int `json:"points"`
	ID     int `json:"id"`
}
