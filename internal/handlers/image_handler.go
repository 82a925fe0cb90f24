package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"

	"myHomeBack/internal/models"
	"myHomeBack/internal/services"
	"myHomeBack/utils"
)

type ImageHandler struct {
	Service *services.AdvertisementService
	Storage *utils.Storage
}

// UploadImage stores a multipart file for an advertisement. Zero-length
// payloads are rejected before anything is written.
func (h *ImageHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	advertisementID, err := pathID(r, ":id")
	if err != nil {
		http.Error(w, "Invalid advertisement ID", http.StatusBadRequest)
		return
	}

	content, header, err := readImageFile(r, "file")
	if err != nil {
		if errors.Is(err, models.ErrEmptyImage) {
			http.Error(w, "No file uploaded", http.StatusBadRequest)
			return
		}
		http.Error(w, "Failed to read file", http.StatusBadRequest)
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	fileName := uuid.New().String() + filepath.Ext(header.Filename)

	img := models.Image{
		AdvertisementID: advertisementID,
		FileName:        fileName,
		ContentType:     contentType,
		Content:         content,
	}

	if h.Storage != nil {
		url, err := h.Storage.UploadFile(content, fileName, contentType, "advertisements")
		if err != nil {
			log.Printf("UploadImage: S3 mirror failed: %v", err)
		} else {
			img.URL = url
		}
	}

	saved, err := h.Service.SaveImage(r.Context(), img)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrEmptyImage):
			http.Error(w, "No file uploaded", http.StatusBadRequest)
		case errors.Is(err, models.ErrAdvertisementNotFound):
			http.Error(w, "Advertisement not found", http.StatusNotFound)
		default:
			log.Printf("UploadImage error: %v", err)
			http.Error(w, "Failed to store image", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(saved)
}

func (h *ImageHandler) GetImagesByAdvertisementID(w http.ResponseWriter, r *http.Request) {
	advertisementID, err := pathID(r, ":id")
	if err != nil {
		http.Error(w, "Invalid advertisement ID", http.StatusBadRequest)
		return
	}

	images, err := h.Service.GetImagesByAdvertisementID(r.Context(), advertisementID)
	if err != nil {
		log.Printf("GetImagesByAdvertisementID error: %v", err)
		http.Error(w, "Failed to fetch images", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(images)
}

// ServeImage writes the stored file content with its original content type.
func (h *ImageHandler) ServeImage(w http.ResponseWriter, r *http.Request) {
	fileName := r.URL.Query().Get(":filename")
	if fileName == "" {
		http.Error(w, "Missing file name", http.StatusBadRequest)
		return
	}

	img, err := h.Service.GetImageByFileName(r.Context(), fileName)
	if err != nil {
		if errors.Is(err, models.ErrImageNotFound) {
			http.Error(w, "Image not found", http.StatusNotFound)
			return
		}
		log.Printf("ServeImage error: %v", err)
		http.Error(w, "Failed to fetch image", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", img.ContentType)
	w.Write(img.Content)
}
