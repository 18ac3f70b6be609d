package repository

import (
	"context"
	"database/sql"

	"dayboard/core/database"
	"dayboard/core/logger"
	"dayboard/modules/feed/entity"

	"github.com/google/uuid"
)

type SubscriptionRepository interface {
	Upsert(ctx context.Context, userID uuid.UUID, source, url string) error
	Get(ctx context.Context, userID uuid.UUID, source string) (*entity.Subscription, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Subscription, error)
}

type subscriptionRepository struct {
	db database.IDatabase
}

func NewSubscriptionRepository(db database.IDatabase) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

// Upsert stores the URL for (user, source) in a single statement so
// concurrent calls for the same key resolve last-writer-wins.
func (r *subscriptionRepository) Upsert(ctx context.Context, userID uuid.UUID, source, url string) error {
	query := `
		INSERT INTO ical_subscriptions (user_id, source, url)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, source) DO UPDATE SET url = EXCLUDED.url, updated_at = now()
	`
	if err := r.db.ExecContext(ctx, query, userID, source, url); err != nil {
		logger.Error("SubscriptionRepository:Upsert:Error:", err)
		return err
	}
	return nil
}

// Get returns nil, nil for an absent (user, source) pair.
func (r *subscriptionRepository) Get(ctx context.Context, userID uuid.UUID, source string) (*entity.Subscription, error) {
	query := `
		SELECT id, user_id, source, url, created_at, updated_at
		FROM ical_subscriptions
		WHERE user_id = $1 AND source = $2
	`
	var sub entity.Subscription
	err := r.db.GetContext(ctx, &sub, query, userID, source)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		logger.Error("SubscriptionRepository:Get:Error:", err)
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Subscription, error) {
	query := `
		SELECT id, user_id, source, url, created_at, updated_at
		FROM ical_subscriptions
		WHERE user_id = $1
		ORDER BY source
	`
	var subs []entity.Subscription
	if err := r.db.SelectContext(ctx, &subs, query, userID); err != nil {
		logger.Error("SubscriptionRepository:ListByUser:Error:", err)
		return nil, err
	}
	return subs, nil
}
