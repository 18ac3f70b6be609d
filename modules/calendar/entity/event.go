package entity

import (
	"dayboard/core/entity"

	"github.com/google/uuid"
)

// CalendarEvent is a stored calendar row, manually created or imported
// from a feed. Start/End hold storage-format text ("2006-01-02 15:04:05"
// shaped, no offset); Source is the authoritative provider discriminator
// (nil for manual events) and Color is purely cosmetic.
type CalendarEvent struct {
	entity.BaseEntity
	UserID  uuid.UUID `db:"user_id" json:"userId"`
	Title   string    `db:"title" json:"title"`
	Start   string    `db:"start" json:"start"`
	End     string    `db:"end" json:"end"`
	Color   string    `db:"color" json:"color"`
	Source  *string   `db:"source" json:"source,omitempty"`
	Carpeta string    `db:"carpeta" json:"carpeta"`
}

func (CalendarEvent) TableName() string {
	return "calendar_events"
}

// DedupKey is the identity triple used to decide whether an incoming
// event is already stored for a user.
func (e *CalendarEvent) DedupKey() string {
	return e.Title + "\x00" + e.Start + "\x00" + e.End
}
