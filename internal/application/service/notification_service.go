package service

import (
	"context"
	"fmt"

	"github.com/garyjia/timebank/internal/application/port"
	"github.com/garyjia/timebank/internal/domain/entity"
)

// NotificationService manages in-app notifications
type NotificationService interface {
	ListForUser(ctx context.Context, userID string) ([]*entity.Notification, error)
	UnreadCount(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, id string) error
}

type notificationServiceImpl struct {
	notificationRepo port.NotificationRepository
	logger           Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notificationRepo port.NotificationRepository, logger Logger) NotificationService {
	return &notificationServiceImpl{notificationRepo: notificationRepo, logger: logger}
}

// ListForUser retrieves a user's notifications, newest first
func (s *notificationServiceImpl) ListForUser(ctx context.Context, userID string) ([]*entity.Notification, error) {
	notifications, err := s.notificationRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list notifications", "error", err, "user_id", userID)
		return nil, err
	}
	return notifications, nil
}

// UnreadCount returns the number of unread notifications for a user
func (s *notificationServiceImpl) UnreadCount(ctx context.Context, userID string) (int, error) {
	return s.notificationRepo.CountUnread(ctx, userID)
}

// MarkRead marks a single notification as read
func (s *notificationServiceImpl) MarkRead(ctx context.Context, id string) error {
	if err := s.notificationRepo.MarkRead(ctx, id); err != nil {
		s.logger.Error("Failed to mark notification read", "error", err, "id", id)
		return fmt.Errorf("mark read: %w", err)
	}
	return nil
}
