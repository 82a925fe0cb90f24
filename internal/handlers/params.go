package handlers

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"myHomeBack/internal/models"
)

// maxImageUploadBytes bounds multipart memory use on image uploads.
const maxImageUploadBytes = 20 << 20

func parseAdvertisementFilter(r *http.Request) models.AdvertisementFilter {
	q := r.URL.Query()

	price, _ := strconv.Atoi(q.Get("price"))
	quadrature, _ := strconv.Atoi(q.Get("quadrature"))

	return models.AdvertisementFilter{
		Price:             price,
		AdvertisementType: q.Get("advertisement_type"),
		RealEstateType:    q.Get("real_estate_type"),
		Quadrature:        quadrature,
		City:              q.Get("city"),
		MatchAny:          q.Get("match") == "any",
	}
}

func parseRangeSearchRequest(r *http.Request) models.RangeSearchRequest {
	q := r.URL.Query()

	minPrice, _ := strconv.Atoi(q.Get("min_price"))
	maxPrice, _ := strconv.Atoi(q.Get("max_price"))
	minQuadrature, _ := strconv.Atoi(q.Get("min_quadrature"))
	maxQuadrature, _ := strconv.Atoi(q.Get("max_quadrature"))

	return models.RangeSearchRequest{
		City:              q.Get("city"),
		MinPrice:          minPrice,
		MaxPrice:          maxPrice,
		MinQuadrature:     minQuadrature,
		MaxQuadrature:     maxQuadrature,
		AdvertisementType: q.Get("advertisement_type"),
		RealEstateType:    q.Get("real_estate_type"),
	}
}

func parseLocationSearchRequest(r *http.Request) (models.LocationSearchRequest, error) {
	q := r.URL.Query()

	lat, err := strconv.ParseFloat(q.Get("latitude"), 64)
	if err != nil {
		return models.LocationSearchRequest{}, err
	}
	lon, err := strconv.ParseFloat(q.Get("longitude"), 64)
	if err != nil {
		return models.LocationSearchRequest{}, err
	}
	radius, err := strconv.ParseFloat(q.Get("radius"), 64)
	if err != nil {
		return models.LocationSearchRequest{}, err
	}

	return models.LocationSearchRequest{
		Latitude:     lat,
		Longitude:    lon,
		RadiusMeters: radius,
	}, nil
}

// readImageFile pulls the uploaded file out of the multipart form. A missing
// or zero-length payload is reported as models.ErrEmptyImage so no row is
// ever created for it.
func readImageFile(r *http.Request, field string) ([]byte, *multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(maxImageUploadBytes); err != nil {
		return nil, nil, models.ErrEmptyImage
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, nil, models.ErrEmptyImage
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, nil, err
	}
	if len(content) == 0 {
		return nil, nil, models.ErrEmptyImage
	}
	return content, header, nil
}
