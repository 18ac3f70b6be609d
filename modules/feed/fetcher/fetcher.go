package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"dayboard/core/constants"
	"dayboard/core/logger"
	"dayboard/core/utils"
	"dayboard/modules/feed/dto"

	ics "github.com/arran4/golang-ical"
)

// FetchError reports a failed feed retrieval or parse. The caller
// decides whether to treat it as "no events" or abort.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching iCal feed %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Fetcher retrieves a remote iCal document and projects its VEVENTs
// into raw feed event records.
type Fetcher struct {
	client *http.Client
}

func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
	}
}

func (f *Fetcher) Fetch(ctx context.Context, url string) ([]dto.FeedEvent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	cal, err := ics.ParseCalendar(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}

	events := make([]dto.FeedEvent, 0)
	for _, ve := range cal.Events() {
		events = append(events, projectEvent(ve))
	}

	logger.Info("Fetcher:Fetch", "url", url, "event_count", len(events))
	return events, nil
}

// projectEvent maps a VEVENT onto the raw feed record shape. Missing
// summaries get the placeholder title; missing date properties come out
// as empty strings and are not rejected here.
func projectEvent(ve *ics.VEvent) dto.FeedEvent {
	event := dto.FeedEvent{IsICalEvent: true}

	if prop := ve.GetProperty(ics.ComponentPropertyUniqueId); prop != nil && prop.Value != "" {
		event.ID = prop.Value
	} else {
		event.ID = utils.GenerateID()
	}

	if prop := ve.GetProperty(ics.ComponentPropertySummary); prop != nil && prop.Value != "" {
		event.Title = prop.Value
	} else {
		event.Title = constants.UntitledEvent
	}

	if prop := ve.GetProperty(ics.ComponentPropertyDtStart); prop != nil {
		event.Start = renderFeedTime(prop.Value)
	}
	if prop := ve.GetProperty(ics.ComponentPropertyDtEnd); prop != nil {
		event.End = renderFeedTime(prop.Value)
	}

	return event
}

// iCal value layouts, most specific first.
var icalLayouts = []struct {
	layout   string
	dateOnly bool
}{
	{"20060102T150405Z", false},
	{"20060102T150405", false},
	{"20060102", true},
}

// renderFeedTime converts an iCal date-time value into the ISO-like text
// the feed endpoint exposes. Values that match no known layout pass
// through verbatim; malformed feeds are an accepted input-quality risk.
func renderFeedTime(value string) string {
	for _, l := range icalLayouts {
		t, err := time.Parse(l.layout, value)
		if err != nil {
			continue
		}
		if l.dateOnly {
			return t.Format("2006-01-02")
		}
		return t.Format("2006-01-02T15:04:05.000Z")
	}
	return value
}
