package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleICS = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//Test//Test//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:evt-1@example.com\r\n" +
	"SUMMARY:Standup\r\n" +
	"DTSTART:20240305T100000Z\r\n" +
	"DTEND:20240305T101500Z\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:evt-2@example.com\r\n" +
	"DTSTART;VALUE=DATE:20240306\r\n" +
	"DTEND;VALUE=DATE:20240307\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func TestFetchParsesFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/calendar")
		_, _ = w.Write([]byte(sampleICS))
	}))
	defer srv.Close()

	f := NewFetcher(5 * time.Second)
	events, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "evt-1@example.com", events[0].ID)
	assert.Equal(t, "Standup", events[0].Title)
	assert.Equal(t, "2024-03-05T10:00:00.000Z", events[0].Start)
	assert.Equal(t, "2024-03-05T10:15:00.000Z", events[0].End)
	assert.True(t, events[0].IsICalEvent)

	// All-day event, no summary.
	assert.Equal(t, "Sin título", events[1].Title)
	assert.Equal(t, "2024-03-06", events[1].Start)
	assert.Equal(t, "2024-03-07", events[1].End)
}

func TestFetchNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	f := NewFetcher(5 * time.Second)
	_, err := f.Fetch(context.Background(), srv.URL)
	require.Error(t, err)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, srv.URL, fetchErr.URL)
}

func TestFetchUnparseableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not a calendar</html>"))
	}))
	defer srv.Close()

	f := NewFetcher(5 * time.Second)
	_, err := f.Fetch(context.Background(), srv.URL)
	require.Error(t, err)

	var fetchErr *FetchError
	assert.ErrorAs(t, err, &fetchErr)
}

func TestFetchUnreachableHost(t *testing.T) {
	f := NewFetcher(500 * time.Millisecond)
	_, err := f.Fetch(context.Background(), "http://127.0.0.1:1/feed.ics")
	require.Error(t, err)

	var fetchErr *FetchError
	assert.ErrorAs(t, err, &fetchErr)
}

func TestRenderFeedTime(t *testing.T) {
	assert.Equal(t, "2024-03-05T10:00:00.000Z", renderFeedTime("20240305T100000Z"))
	assert.Equal(t, "2024-03-05T10:00:00.000Z", renderFeedTime("20240305T100000"))
	assert.Equal(t, "2024-03-05", renderFeedTime("20240305"))
	assert.Equal(t, "whenever", renderFeedTime("whenever"))
}
