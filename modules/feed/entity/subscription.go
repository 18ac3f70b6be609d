package entity

import (
	"dayboard/core/entity"

	"github.com/google/uuid"
)

// Subscription associates a user and a provider with the feed URL last
// used to pull that provider's events. At most one row exists per
// (user_id, source) pair.
type Subscription struct {
	entity.BaseEntity
	UserID uuid.UUID `db:"user_id" json:"userId"`
	Source string    `db:"source" json:"source"`
	URL    string    `db:"url" json:"url"`
}

func (Subscription) TableName() string {
	return "ical_subscriptions"
}
