package repositories

import (
	"strings"
	"testing"

	"myHomeBack/internal/models"
)

func TestBuildFilterConditionsSkipsZeroValues(t *testing.T) {
	conditions, params := buildFilterConditions(models.AdvertisementFilter{})
	if len(conditions) != 0 || len(params) != 0 {
		t.Fatalf("empty filter produced %d conditions, %d params", len(conditions), len(params))
	}
}

func TestBuildFilterConditionsSingleCriterion(t *testing.T) {
	conditions, params := buildFilterConditions(models.AdvertisementFilter{City: "Novi Sad"})
	if len(conditions) != 1 {
		t.Fatalf("expected 1 condition, got %d: %v", len(conditions), conditions)
	}
	if conditions[0] != "addr.city = ?" {
		t.Errorf("unexpected condition %q", conditions[0])
	}
	if len(params) != 1 || params[0] != "Novi Sad" {
		t.Errorf("unexpected params %v", params)
	}
}

func TestBuildFilterConditionsAllCriteria(t *testing.T) {
	f := models.AdvertisementFilter{
		Price:             120000,
		AdvertisementType: models.AdvertisementSale,
		RealEstateType:    models.RealEstateApartment,
		Quadrature:        55,
		City:              "Kragujevac",
	}

	conditions, params := buildFilterConditions(f)
	if len(conditions) != 5 {
		t.Fatalf("expected 5 conditions, got %d: %v", len(conditions), conditions)
	}
	if len(params) != 5 {
		t.Fatalf("expected 5 params, got %d: %v", len(params), params)
	}
}

func TestBuildRangeConditionsInclusiveBounds(t *testing.T) {
	req := models.RangeSearchRequest{MinPrice: 50000, MaxPrice: 90000}

	conditions, params := buildRangeConditions(req)
	if len(conditions) != 2 {
		t.Fatalf("expected 2 conditions, got %d: %v", len(conditions), conditions)
	}
	if conditions[0] != "a.price >= ?" || conditions[1] != "a.price <= ?" {
		t.Errorf("bounds must be inclusive, got %v", conditions)
	}
	if params[0] != 50000 || params[1] != 90000 {
		t.Errorf("unexpected params %v", params)
	}
}

func TestCombineConditionsDefaultsToAnd(t *testing.T) {
	clause := combineConditions([]string{"a.price = ?", "addr.city = ?"}, false)
	if clause != "(a.price = ? AND addr.city = ?)" {
		t.Fatalf("unexpected clause %q", clause)
	}
	if strings.Contains(clause, " OR ") {
		t.Error("default combination must not use OR")
	}
}

func TestCombineConditionsMatchAny(t *testing.T) {
	clause := combineConditions([]string{"a.price = ?", "addr.city = ?"}, true)
	if clause != "(a.price = ? OR addr.city = ?)" {
		t.Fatalf("unexpected clause %q", clause)
	}
}

func TestCombineConditionsEmpty(t *testing.T) {
	if clause := combineConditions(nil, false); clause != "" {
		t.Fatalf("expected empty clause, got %q", clause)
	}
}

func TestNormalizeCityKey(t *testing.T) {
	cases := map[string]string{
		"NoviSad":      "NoviSad",
		"Novi Sad":     "NoviSad",
		" Novi  Sad ":  "NoviSad",
		"Novi\tSad":    "NoviSad",
		"Belgrade":     "Belgrade",
		"":             "",
		"  \t ":        "",
		"Sremska Rača": "SremskaRača",
	}

	for in, want := range cases {
		if got := normalizeCityKey(in); got != want {
			t.Errorf("normalizeCityKey(%q) = %q, want %q", in, got, want)
		}
	}
}
