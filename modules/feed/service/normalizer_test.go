package service

import (
	"testing"

	"dayboard/modules/feed/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"full iso with millis", "2024-03-05T10:00:00.000Z", "2024-03-05 10:00:00"},
		{"iso without millis", "2024-03-05T10:00:00Z", "2024-03-05 10:00:00"},
		{"no zulu suffix", "2024-03-05T10:00:00", "2024-03-05 10:00:00"},
		{"date only", "2024-03-05", "2024-03-05"},
		{"already normalized", "2024-03-05 10:00:00", "2024-03-05 10:00:00"},
		{"empty", "", ""},
		{"garbage passes through", "not-a-date", "not-a-date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDate(tt.in))
		})
	}
}

func TestColorForProvider(t *testing.T) {
	assert.Equal(t, dto.ColorGoogle, ColorForProvider(dto.ProviderGoogle))
	assert.Equal(t, dto.ColorMicrosoft, ColorForProvider(dto.ProviderMicrosoft))
	assert.Equal(t, dto.ColorApple, ColorForProvider(dto.ProviderApple))
	assert.Equal(t, dto.ColorDefault, ColorForProvider("Nextcloud"))
	assert.Equal(t, dto.ColorDefault, ColorForProvider(""))
}

func TestNormalize(t *testing.T) {
	userID := uuid.New()

	raw := dto.FeedEvent{
		Title: "Standup",
		Start: "2024-03-05T10:00:00.000Z",
		End:   "2024-03-05T10:15:00.000Z",
	}
	got := Normalize(raw, userID, dto.ProviderGoogle)

	assert.Equal(t, userID, got.UserID)
	assert.Equal(t, "Standup", got.Title)
	assert.Equal(t, "2024-03-05 10:00:00", got.Start)
	assert.Equal(t, "2024-03-05 10:15:00", got.End)
	assert.Equal(t, dto.ColorGoogle, got.Color)
	if assert.NotNil(t, got.Source) {
		assert.Equal(t, dto.ProviderGoogle, *got.Source)
	}
	assert.Equal(t, dto.ProviderGoogle, got.Carpeta)
}

func TestNormalizeUntitled(t *testing.T) {
	got := Normalize(dto.FeedEvent{Start: "2024-03-05", End: "2024-03-06"}, uuid.New(), dto.ProviderApple)
	assert.Equal(t, "Sin título", got.Title)
}

func TestNormalizeMalformedDatesKept(t *testing.T) {
	got := Normalize(dto.FeedEvent{Title: "x", Start: "whenever", End: ""}, uuid.New(), "Other")
	assert.Equal(t, "whenever", got.Start)
	assert.Equal(t, "", got.End)
}
