package entity

import (
	"dayboard/core/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Note is a free-form text note with user-defined tags.
type Note struct {
	entity.BaseEntity
	UserID  uuid.UUID      `db:"user_id" json:"userId"`
	Title   string         `db:"title" json:"title"`
	Content string         `db:"content" json:"content"`
	Tags    pq.StringArray `db:"tags" json:"tags"`
}

func (Note) TableName() string {
	return "notes"
}

// Attachment is a blob stored in object storage and linked to a note.
type Attachment struct {
	entity.BaseEntity
	NoteID      uuid.UUID `db:"note_id" json:"noteId"`
	Filename    string    `db:"filename" json:"filename"`
	ObjectKey   string    `db:"object_key" json:"objectKey"`
	ContentType string    `db:"content_type" json:"contentType"`
	Size        int64     `db:"size" json:"size"`
}

func (Attachment) TableName() string {
	return "note_attachments"
}
