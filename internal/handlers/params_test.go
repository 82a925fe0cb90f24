package handlers

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"myHomeBack/internal/models"
)

func TestParseAdvertisementFilter(t *testing.T) {
	r := httptest.NewRequest("GET", "/advertisement/search?price=85000&city=Novi+Sad&real_estate_type=apartment", nil)

	f := parseAdvertisementFilter(r)
	if f.Price != 85000 {
		t.Errorf("price: got %d, want 85000", f.Price)
	}
	if f.City != "Novi Sad" {
		t.Errorf("city: got %q", f.City)
	}
	if f.RealEstateType != models.RealEstateApartment {
		t.Errorf("real estate type: got %q", f.RealEstateType)
	}
	if f.MatchAny {
		t.Error("match mode must default to all criteria")
	}
}

func TestParseAdvertisementFilterMatchAny(t *testing.T) {
	r := httptest.NewRequest("GET", "/advertisement/search?price=85000&match=any", nil)

	if f := parseAdvertisementFilter(r); !f.MatchAny {
		t.Error("match=any must enable the additive mode")
	}
}

func TestParseAdvertisementFilterEmptyQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/advertisement/search", nil)

	if f := parseAdvertisementFilter(r); !f.IsZero() {
		t.Errorf("expected zero filter, got %+v", f)
	}
}

func TestParseRangeSearchRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/advertisement/search/range?min_price=40000&max_price=90000&min_quadrature=30&city=Belgrade", nil)

	req := parseRangeSearchRequest(r)
	if req.MinPrice != 40000 || req.MaxPrice != 90000 {
		t.Errorf("price bounds: got %d..%d", req.MinPrice, req.MaxPrice)
	}
	if req.MinQuadrature != 30 || req.MaxQuadrature != 0 {
		t.Errorf("quadrature bounds: got %d..%d", req.MinQuadrature, req.MaxQuadrature)
	}
	if req.City != "Belgrade" {
		t.Errorf("city: got %q", req.City)
	}
}

func TestParseLocationSearchRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/advertisement/search/location?latitude=44.7866&longitude=20.4489&radius=3000", nil)

	req, err := parseLocationSearchRequest(r)
	if err != nil {
		t.Fatal(err)
	}
	if req.Latitude != 44.7866 || req.Longitude != 20.4489 {
		t.Errorf("coordinates: got %f, %f", req.Latitude, req.Longitude)
	}
	if req.RadiusMeters != 3000 {
		t.Errorf("radius: got %f", req.RadiusMeters)
	}
}

func TestParseLocationSearchRequestInvalid(t *testing.T) {
	r := httptest.NewRequest("GET", "/advertisement/search/location?latitude=abc&longitude=20.4&radius=3000", nil)

	if _, err := parseLocationSearchRequest(r); err == nil {
		t.Fatal("expected an error for a non-numeric latitude")
	}
}

func newUploadRequest(t *testing.T, field, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, fileName)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatal(err)
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}
	return body, writer.FormDataContentType()
}

func TestReadImageFile(t *testing.T) {
	body, contentType := newUploadRequest(t, "image", "front.jpg", []byte("jpeg-bytes"))
	r := httptest.NewRequest("POST", "/advertisement/1/image", body)
	r.Header.Set("Content-Type", contentType)

	content, header, err := readImageFile(r, "image")
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "jpeg-bytes" {
		t.Errorf("content: got %q", content)
	}
	if header.Filename != "front.jpg" {
		t.Errorf("file name: got %q", header.Filename)
	}
}

func TestReadImageFileEmptyPayload(t *testing.T) {
	body, contentType := newUploadRequest(t, "image", "empty.jpg", nil)
	r := httptest.NewRequest("POST", "/advertisement/1/image", body)
	r.Header.Set("Content-Type", contentType)

	if _, _, err := readImageFile(r, "image"); !errors.Is(err, models.ErrEmptyImage) {
		t.Fatalf("expected ErrEmptyImage, got %v", err)
	}
}

func TestReadImageFileMissingField(t *testing.T) {
	body, contentType := newUploadRequest(t, "other", "front.jpg", []byte("jpeg-bytes"))
	r := httptest.NewRequest("POST", "/advertisement/1/image", body)
	r.Header.Set("Content-Type", contentType)

	if _, _, err := readImageFile(r, "image"); !errors.Is(err, models.ErrEmptyImage) {
		t.Fatalf("expected ErrEmptyImage, got %v", err)
	}
}
