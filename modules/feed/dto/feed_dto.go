package dto

// Provider labels. These are the values stored in the events' source
// column and used as folder names for imported events.
const (
	ProviderGoogle    = "Google"
	ProviderMicrosoft = "Microsoft"
	ProviderApple     = "Apple"
)

// Provider colors. Derived from source by the normalizer; cosmetic only.
const (
	ColorGoogle    = "#4285F4"
	ColorMicrosoft = "#F25022"
	ColorApple     = "#FF2D55"
	ColorDefault   = "#ff9f89"
)

// FeedEvent is a raw event as projected out of an iCal feed, before
// normalization and reconciliation.
type FeedEvent struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Start       string `json:"start"`
	End         string `json:"end"`
	IsICalEvent bool   `json:"isICalEvent"`
}

// SaveSubscriptionRequest upserts a feed subscription and reconciles its
// events into the Event Store. Events must be present (may be empty).
type SaveSubscriptionRequest struct {
	UserID string      `json:"userId"`
	URL    string      `json:"url"`
	Source string      `json:"source"`
	Events []FeedEvent `json:"events"`
}

// MissingField returns the name of the first absent required field, or "".
func (r *SaveSubscriptionRequest) MissingField() string {
	switch {
	case r.UserID == "":
		return "userId"
	case r.URL == "":
		return "url"
	case r.Source == "":
		return "source"
	case r.Events == nil:
		return "events"
	}
	return ""
}

type VerifySubscriptionRequest struct {
	UserID string `json:"userId"`
	Source string `json:"source"`
}

// ReconcileResponse reports the outcome of one reconciliation pass.
// Inserted + Skipped equals the number of candidates offered.
type ReconcileResponse struct {
	Success  bool `json:"success"`
	Inserted int  `json:"inserted"`
	Skipped  int  `json:"skipped"`
}
