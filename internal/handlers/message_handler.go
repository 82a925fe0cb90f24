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

type MessageHandler struct {
	Service      *services.MessageService
	UserService  *services.UserService
	Notification *services.NotificationService
}

func (h *MessageHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var message models.Message
	if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if message.Text == "" {
		http.Error(w, "Empty message text", http.StatusBadRequest)
		return
	}

	created, err := h.Service.CreateMessage(r.Context(), message)
	if err != nil {
		if errors.Is(err, models.ErrUnknownReference) {
			http.Error(w, "Unknown sender or receiver", http.StatusBadRequest)
			return
		}
		log.Printf("CreateMessage error: %v", err)
		http.Error(w, "Failed to create message", http.StatusInternalServerError)
		return
	}

	senderName := ""
	if sender, err := h.UserService.GetUserByID(r.Context(), created.SenderID); err == nil {
		senderName = sender.FirstName
	}
	h.Notification.NotifyNewMessage(r.Context(), created, senderName)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *MessageHandler) GetMessagesForChat(w http.ResponseWriter, r *http.Request) {
	chatID, err := pathID(r, ":chat_id")
	if err != nil {
		http.Error(w, "Invalid chat ID", http.StatusBadRequest)
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))

	messages, err := h.Service.GetMessagesForChat(r.Context(), chatID, page, pageSize)
	if err != nil {
		log.Printf("GetMessagesForChat error: %v", err)
		http.Error(w, "Failed to fetch messages", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(messages)
}

func (h *MessageHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, ":id")
	if err != nil {
		http.Error(w, "Invalid message ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteMessage(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrMessageNotFound) {
			http.Error(w, "Message not found", http.StatusNotFound)
			return
		}
		log.Printf("DeleteMessage error: %v", err)
		http.Error(w, "Failed to delete message", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
