package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"pawhaven/internal/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, notif *domain.Notification) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
	ListAll(ctx context.Context) ([]domain.Notification, error)
	// ListForUser returns the user's own notifications plus every global
	// one, newest first.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error)
	Update(ctx context.Context, notif *domain.Notification) error
	SetRead(ctx context.Context, id uuid.UUID, isRead bool) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
}

type notificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notif *domain.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, title, message, type, is_read)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		notif.ID, notif.UserID, notif.Title, notif.Message, notif.Type, notif.IsRead,
	).Scan(&notif.CreatedAt)
}

func (r *notificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	var notif domain.Notification
	query := `SELECT * FROM notifications WHERE id = $1`
	if err := r.db.GetContext(ctx, &notif, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return &notif, nil
}

func (r *notificationRepository) ListAll(ctx context.Context) ([]domain.Notification, error) {
	notifications := []domain.Notification{}
	query := `SELECT * FROM notifications ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &notifications, query); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error) {
	notifications := []domain.Notification{}
	query := `
		SELECT * FROM notifications
		WHERE user_id = $1 OR user_id IS NULL
		ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &notifications, query, userID); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepository) Update(ctx context.Context, notif *domain.Notification) error {
	query := `
		UPDATE notifications
		SET user_id = $2, title = $3, message = $4, type = $5, is_read = $6
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		notif.ID, notif.UserID, notif.Title, notif.Message, notif.Type, notif.IsRead)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("notification %s: %w", notif.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *notificationRepository) SetRead(ctx context.Context, id uuid.UUID, isRead bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET is_read = $2 WHERE id = $1`, id, isRead)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *notificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *notificationRepository) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM notifications WHERE is_read = true AND created_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *notificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	query := `
		SELECT COUNT(*) FROM notifications
		WHERE (user_id = $1 OR user_id IS NULL) AND is_read = false`
	if err := r.db.GetContext(ctx, &count, query, userID); err != nil {
		return 0, err
	}
	return count, nil
}
