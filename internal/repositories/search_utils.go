package repositories

import (
	"strings"

	"myHomeBack/internal/models"
)

// buildFilterConditions turns the general search filter into WHERE fragments,
// one per supplied criterion. Zero-valued fields are skipped so they never
// widen or narrow the result by accident.
func buildFilterConditions(f models.AdvertisementFilter) ([]string, []interface{}) {
	var (
		conditions []string
		params     []interface{}
	)

	if f.Price > 0 {
		conditions = append(conditions, "a.price = ?")
		params = append(params, f.Price)
	}
	if f.AdvertisementType != "" {
		conditions = append(conditions, "a.advertisement_type = ?")
		params = append(params, f.AdvertisementType)
	}
	if f.RealEstateType != "" {
		conditions = append(conditions, "a.real_estate_type = ?")
		params = append(params, f.RealEstateType)
	}
	if f.Quadrature > 0 {
		conditions = append(conditions, "a.quadrature = ?")
		params = append(params, f.Quadrature)
	}
	if f.City != "" {
		conditions = append(conditions, "addr.city = ?")
		params = append(params, f.City)
	}

	return conditions, params
}

// buildRangeConditions composes the constrained search. All bounds are
// inclusive, all supplied criteria AND-combined.
func buildRangeConditions(req models.RangeSearchRequest) ([]string, []interface{}) {
	var (
		conditions []string
		params     []interface{}
	)

	if req.City != "" {
		conditions = append(conditions, "addr.city = ?")
		params = append(params, req.City)
	}
	if req.MinPrice > 0 {
		conditions = append(conditions, "a.price >= ?")
		params = append(params, req.MinPrice)
	}
	if req.MaxPrice > 0 {
		conditions = append(conditions, "a.price <= ?")
		params = append(params, req.MaxPrice)
	}
	if req.MinQuadrature > 0 {
		conditions = append(conditions, "a.quadrature >= ?")
		params = append(params, req.MinQuadrature)
	}
	if req.MaxQuadrature > 0 {
		conditions = append(conditions, "a.quadrature <= ?")
		params = append(params, req.MaxQuadrature)
	}
	if req.AdvertisementType != "" {
		conditions = append(conditions, "a.advertisement_type = ?")
		params = append(params, req.AdvertisementType)
	}
	if req.RealEstateType != "" {
		conditions = append(conditions, "a.real_estate_type = ?")
		params = append(params, req.RealEstateType)
	}

	return conditions, params
}

// combineConditions joins the fragments with AND, or with OR when the caller
// explicitly asked for the additive mode.
func combineConditions(conditions []string, matchAny bool) string {
	if len(conditions) == 0 {
		return ""
	}
	op := " AND "
	if matchAny {
		op = " OR "
	}
	return "(" + strings.Join(conditions, op) + ")"
}

// normalizeCityKey strips all whitespace from a stored city value so that
// "Novi Sad" compares equal to the key "NoviSad". The remainder is matched
// case-sensitively.
func normalizeCityKey(city string) string {
	return strings.Join(strings.Fields(city), "")
}
