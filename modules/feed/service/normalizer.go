package service

import (
	"strings"

	"dayboard/core/constants"
	calendarEntity "dayboard/modules/calendar/entity"
	"dayboard/modules/feed/dto"

	"github.com/google/uuid"
)

// NormalizeDate rewrites a feed date-time literal into the storage
// format: the T separator becomes a space and any trailing UTC marker is
// stripped. This is a string transform, not a timezone conversion — the
// wall-clock digits are preserved verbatim.
func NormalizeDate(value string) string {
	value = strings.Replace(value, "T", " ", 1)
	value = strings.TrimSuffix(value, ".000Z")
	value = strings.TrimSuffix(value, "Z")
	return value
}

// ColorForProvider maps a provider label to its fixed display color.
func ColorForProvider(source string) string {
	switch source {
	case dto.ProviderGoogle:
		return dto.ColorGoogle
	case dto.ProviderMicrosoft:
		return dto.ColorMicrosoft
	case dto.ProviderApple:
		return dto.ColorApple
	default:
		return dto.ColorDefault
	}
}

// Normalize shapes a raw feed event into a storable calendar event for
// the given user and provider. Records missing a start or end are still
// normalized; the reconciler does not reject malformed input.
func Normalize(raw dto.FeedEvent, userID uuid.UUID, source string) calendarEntity.CalendarEvent {
	title := raw.Title
	if title == "" {
		title = constants.UntitledEvent
	}

	src := source
	return calendarEntity.CalendarEvent{
		UserID:  userID,
		Title:   title,
		Start:   NormalizeDate(raw.Start),
		End:     NormalizeDate(raw.End),
		Color:   ColorForProvider(source),
		Source:  &src,
		Carpeta: source,
	}
}
