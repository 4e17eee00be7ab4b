package notification

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"pawhaven/internal/domain"
	"pawhaven/internal/realtime"
	"pawhaven/internal/repository"
)

type Service interface {
	Create(ctx context.Context, input domain.CreateNotificationInput) (*domain.Notification, error)
	Broadcast(ctx context.Context, title, message string) (*domain.Notification, error)
	ListAll(ctx context.Context) ([]domain.Notification, error)
	ListForUser(ctx context.Context, rawUserID string) ([]domain.Notification, error)
	UnreadCount(ctx context.Context, rawUserID string) (int64, error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdateNotificationInput) (*domain.Notification, error)
	ToggleRead(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	notifRepo repository.NotificationRepository
	bridge    realtime.Publisher
}

func NewService(notifRepo repository.NotificationRepository, bridge realtime.Publisher) Service {
	return &service{
		notifRepo: notifRepo,
		bridge:    bridge,
	}
}

func (s *service) Create(ctx context.Context, input domain.CreateNotificationInput) (*domain.Notification, error) {
	title := strings.TrimSpace(input.Title)
	message := strings.TrimSpace(input.Message)
	if title == "" {
		return nil, domain.NewValidationError("title is required")
	}
	if message == "" {
		return nil, domain.NewValidationError("message is required")
	}

	typ := domain.NotificationType(input.Type)
	if input.Type == "" {
		typ = domain.NotifAnnouncement
	}
	if !typ.Valid() {
		return nil, domain.NewValidationError("unknown notification type " + input.Type)
	}

	notif := &domain.Notification{
		ID:      uuid.New(),
		UserID:  input.UserID,
		Title:   title,
		Message: message,
		Type:    typ,
	}

	if err := s.notifRepo.Create(ctx, notif); err != nil {
		return nil, err
	}

	s.bridge.Publish(realtime.Event{
		Name:    realtime.EventNewNotification,
		UserID:  notif.UserID,
		Payload: notif,
	})

	return notif, nil
}

func (s *service) Broadcast(ctx context.Context, title, message string) (*domain.Notification, error) {
	return s.Create(ctx, domain.CreateNotificationInput{
		Title:   title,
		Message: message,
		Type:    string(domain.NotifAnnouncement),
	})
}

func (s *service) ListAll(ctx context.Context) ([]domain.Notification, error) {
	return s.notifRepo.ListAll(ctx)
}

func (s *service) ListForUser(ctx context.Context, rawUserID string) ([]domain.Notification, error) {
	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		return nil, domain.NewValidationError("malformed user id " + rawUserID)
	}
	return s.notifRepo.ListForUser(ctx, userID)
}

func (s *service) UnreadCount(ctx context.Context, rawUserID string) (int64, error) {
	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		return 0, domain.NewValidationError("malformed user id " + rawUserID)
	}
	return s.notifRepo.CountUnread(ctx, userID)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input domain.UpdateNotificationInput) (*domain.Notification, error) {
	notif, err := s.notifRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.UserID != nil {
		notif.UserID = input.UserID
	}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, domain.NewValidationError("title is required")
		}
		notif.Title = title
	}
	if input.Message != nil {
		message := strings.TrimSpace(*input.Message)
		if message == "" {
			return nil, domain.NewValidationError("message is required")
		}
		notif.Message = message
	}
	if input.Type != nil {
		typ := domain.NotificationType(*input.Type)
		if !typ.Valid() {
			return nil, domain.NewValidationError("unknown notification type " + *input.Type)
		}
		notif.Type = typ
	}
	if input.IsRead != nil {
		notif.IsRead = *input.IsRead
	}

	if err := s.notifRepo.Update(ctx, notif); err != nil {
		return nil, err
	}
	return notif, nil
}

func (s *service) ToggleRead(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	notif, err := s.notifRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.notifRepo.SetRead(ctx, id, !notif.IsRead); err != nil {
		return nil, err
	}
	notif.IsRead = !notif.IsRead

	// Read state only means something per user, so global notifications
	// do not get a read push.
	if !notif.Global() {
		s.bridge.Publish(realtime.Event{
			Name:    realtime.EventNotificationRead,
			UserID:  notif.UserID,
			Payload: notif,
		})
	}

	return notif, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.notifRepo.Delete(ctx, id)
}
