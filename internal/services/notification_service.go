package services

import (
	"context"
	"log"
	"strconv"

	"firebase.google.com/go/messaging"

	"myHomeBack/internal/models"
	"myHomeBack/internal/repositories"
)

// NotificationService pushes FCM notifications to a user's registered
// devices. Client may be nil when FCM is not configured; every method is then
// a no-op.
type NotificationService struct {
	Client   *messaging.Client
	UserRepo *repositories.UserRepository
	ErrorLog *log.Logger
}

func (s *NotificationService) NotifyNewMessage(ctx context.Context, message models.Message, senderName string) {
	if s == nil || s.Client == nil {
		return
	}

	tokens, err := s.UserRepo.GetDeviceTokens(ctx, message.ReceiverID)
	if err != nil {
		if s.ErrorLog != nil {
			s.ErrorLog.Printf("fcm: failed to load device tokens for user %d: %v", message.ReceiverID, err)
		}
		return
	}

	for _, token := range tokens {
		msg := &messaging.Message{
			Token: token,
			Notification: &messaging.Notification{
				Title: senderName,
				Body:  message.Text,
			},
			Data: map[string]string{
				"chat_id":   strconv.Itoa(message.ChatID),
				"sender_id": strconv.Itoa(message.SenderID),
			},
			Android: &messaging.AndroidConfig{
				Priority: "high",
			},
			APNS: &messaging.APNSConfig{
				Headers: map[string]string{
					"apns-priority": "10",
				},
				Payload: &messaging.APNSPayload{
					Aps: &messaging.Aps{
						Alert: &messaging.ApsAlert{
							Title: senderName,
							Body:  message.Text,
						},
						Sound: "default",
					},
				},
			},
		}

		if _, err := s.Client.Send(ctx, msg); err != nil && s.ErrorLog != nil {
			s.ErrorLog.Printf("fcm: failed to push to user %d: %v", message.ReceiverID, err)
		}
	}
}
