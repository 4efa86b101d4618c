package dto

import (
	"staywise/internal/domains/notification/model"
	"staywise/shared/timezone"
	"time"
)

type NotificationResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Kind      string `json:"kind"`
	CreatedAt string `json:"created_at"`
}

type NotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

func (r *NotificationsResponse) FromModels(notifications []model.Notification) {
	r.Notifications = make([]NotificationResponse, len(notifications))

	for i, notification := range notifications {
		r.Notifications[i] = NotificationResponse{
			ID:        notification.ID,
			Title:     notification.Title,
			Body:      notification.Body,
			Kind:      notification.Kind,
			CreatedAt: timezone.Format(notification.CreatedAt, time.RFC3339),
		}
	}
}
