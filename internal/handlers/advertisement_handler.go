package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"myHomeBack/internal/models"
	"myHomeBack/internal/services"
)

type AdvertisementHandler struct {
	Service *services.AdvertisementService
}

func (h *AdvertisementHandler) CreateAdvertisement(w http.ResponseWriter, r *http.Request) {
	var adv models.Advertisement
	if err := json.NewDecoder(r.Body).Decode(&adv); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	created, err := h.Service.CreateAdvertisement(r.Context(), adv)
	if err != nil {
		if errors.Is(err, models.ErrInvalidRealEstateType) || errors.Is(err, models.ErrInvalidAdvertisementType) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if errors.Is(err, models.ErrUnknownReference) {
			http.Error(w, "Unknown owner", http.StatusBadRequest)
			return
		}
		log.Printf("CreateAdvertisement error: %v", err)
		http.Error(w, "Failed to create advertisement", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *AdvertisementHandler) GetPublishedAdvertisements(w http.ResponseWriter, r *http.Request) {
	ads, err := h.Service.GetPublishedAdvertisements(r.Context())
	if err != nil {
		log.Printf("GetPublishedAdvertisements error: %v", err)
		http.Error(w, "Failed to fetch advertisements", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ads)
}

func (h *AdvertisementHandler) GetAdvertisementByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, ":id")
	if err != nil {
		http.Error(w, "Invalid advertisement ID", http.StatusBadRequest)
		return
	}

	adv, err := h.Service.GetAdvertisementByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrAdvertisementNotFound) {
			http.Error(w, "Advertisement not found", http.StatusNotFound)
			return
		}
		log.Printf("GetAdvertisementByID error: %v", err)
		http.Error(w, "Failed to fetch advertisement", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(adv)
}

func (h *AdvertisementHandler) UpdateAdvertisement(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, ":id")
	if err != nil {
		http.Error(w, "Invalid advertisement ID", http.StatusBadRequest)
		return
	}

	var adv models.Advertisement
	if err := json.NewDecoder(r.Body).Decode(&adv); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	adv.ID = id

	updated, err := h.Service.UpdateAdvertisement(r.Context(), adv)
	if err != nil {
		if errors.Is(err, models.ErrInvalidRealEstateType) || errors.Is(err, models.ErrInvalidAdvertisementType) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if errors.Is(err, models.ErrAdvertisementNotFound) {
			http.Error(w, "Advertisement not found", http.StatusNotFound)
			return
		}
		log.Printf("UpdateAdvertisement error: %v", err)
		http.Error(w, "Failed to update advertisement", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

func (h *AdvertisementHandler) DeleteAdvertisement(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, ":id")
	if err != nil {
		http.Error(w, "Invalid advertisement ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteAdvertisement(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrAdvertisementNotFound) {
			http.Error(w, "Advertisement not found", http.StatusNotFound)
			return
		}
		log.Printf("DeleteAdvertisement error: %v", err)
		http.Error(w, "Failed to delete advertisement", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AdvertisementHandler) SearchAdvertisements(w http.ResponseWriter, r *http.Request) {
	filter := parseAdvertisementFilter(r)

	ads, err := h.Service.SearchAdvertisements(r.Context(), filter)
	if err != nil {
		log.Printf("SearchAdvertisements error: %v", err)
		http.Error(w, "Failed to search advertisements", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ads)
}

func (h *AdvertisementHandler) SearchAdvertisementsInRange(w http.ResponseWriter, r *http.Request) {
	req := parseRangeSearchRequest(r)

	ads, err := h.Service.SearchAdvertisementsInRange(r.Context(), req)
	if err != nil {
		log.Printf("SearchAdvertisementsInRange error: %v", err)
		http.Error(w, "Failed to search advertisements", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ads)
}

func (h *AdvertisementHandler) FastSearch(w http.ResponseWriter, r *http.Request) {
	cityKey := r.URL.Query().Get("city")
	realEstateType := r.URL.Query().Get("real_estate_type")
	if cityKey == "" || realEstateType == "" {
		http.Error(w, "Missing city or real_estate_type", http.StatusBadRequest)
		return
	}

	ads, err := h.Service.FastSearch(r.Context(), cityKey, realEstateType)
	if err != nil {
		log.Printf("FastSearch error: %v", err)
		http.Error(w, "Failed to search advertisements", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ads)
}

func (h *AdvertisementHandler) LocationSearch(w http.ResponseWriter, r *http.Request) {
	req, err := parseLocationSearchRequest(r)
	if err != nil || req.RadiusMeters < 0 {
		http.Error(w, "Invalid latitude, longitude or radius", http.StatusBadRequest)
		return
	}

	ads, err := h.Service.LocationSearch(r.Context(), req)
	if err != nil {
		log.Printf("LocationSearch error: %v", err)
		http.Error(w, "Failed to search advertisements", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ads)
}

func (h *AdvertisementHandler) GetAdvertisementsByUserID(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, ":user_id")
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	ads, err := h.Service.GetAdvertisementsByUserID(r.Context(), userID)
	if err != nil {
		log.Printf("GetAdvertisementsByUserID error: %v", err)
		http.Error(w, "Failed to fetch advertisements", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ads)
}

func (h *AdvertisementHandler) GetChosenAdvertisements(w http.ResponseWriter, r *http.Request) {
	createdBy := r.URL.Query().Get(":created_by")
	if createdBy == "" {
		http.Error(w, "Missing created_by", http.StatusBadRequest)
		return
	}

	ads, err := h.Service.GetAdvertisementsByCreatedBy(r.Context(), createdBy)
	if err != nil {
		log.Printf("GetChosenAdvertisements error: %v", err)
		http.Error(w, "Failed to fetch advertisements", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ads)
}

func (h *AdvertisementHandler) ChooseAdvertisement(w http.ResponseWriter, r *http.Request) {
	var req models.ChooseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	err := h.Service.ChooseAdvertisement(r.Context(), req.ID, req.IDUser)
	if err != nil {
		if errors.Is(err, models.ErrAdvertisementNotFound) || errors.Is(err, models.ErrUserNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Printf("ChooseAdvertisement error: %v", err)
		http.Error(w, "Failed to choose advertisement", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *AdvertisementHandler) BuyPoints(w http.ResponseWriter, r *http.Request) {
	var req models.BuyPointsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Points <= 0 {
		http.Error(w, "Points must be positive", http.StatusBadRequest)
		return
	}

	err := h.Service.BuyPoints(r.Context(), req.Points, req.ID)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrAdvertisementNotFound), errors.Is(err, models.ErrUserNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, models.ErrMultipleAdvertisements):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			log.Printf("BuyPoints error: %v", err)
			http.Error(w, "Failed to buy points", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}

func pathID(r *http.Request, key string) (int, error) {
	idStr := r.URL.Query().Get(key)
	if idStr == "" {
		return 0, strconv.ErrSyntax
	}
	return strconv.Atoi(idStr)
}
