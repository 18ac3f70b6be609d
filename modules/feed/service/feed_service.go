package service

import (
	"context"

	"dayboard/core/errors"
	"dayboard/core/logger"
	calendarRepo "dayboard/modules/calendar/repository"
	"dayboard/modules/feed/dto"
	"dayboard/modules/feed/fetcher"
	"dayboard/modules/feed/repository"

	"github.com/google/uuid"
)

// FeedFetcher retrieves and parses a remote iCal document.
type FeedFetcher interface {
	Fetch(ctx context.Context, url string) ([]dto.FeedEvent, error)
}

var _ FeedFetcher = (*fetcher.Fetcher)(nil)

type FeedService interface {
	FetchFeed(ctx context.Context, url string) ([]dto.FeedEvent, *errors.AppError)
	SaveSubscription(ctx context.Context, userID uuid.UUID, req *dto.SaveSubscriptionRequest) (*dto.ReconcileResponse, *errors.AppError)
	VerifySubscription(ctx context.Context, userID uuid.UUID, source string) (*dto.ReconcileResponse, *errors.AppError)
	GetSubscriptions(ctx context.Context, userID uuid.UUID) (map[string]string, *errors.AppError)
}

type feedService struct {
	subs    repository.SubscriptionRepository
	events  calendarRepo.EventRepository
	fetcher FeedFetcher
}

func NewFeedService(subs repository.SubscriptionRepository, events calendarRepo.EventRepository, f FeedFetcher) FeedService {
	return &feedService{subs: subs, events: events, fetcher: f}
}

// FetchFeed proxies a remote feed for the client. It stores nothing.
func (s *feedService) FetchFeed(ctx context.Context, url string) ([]dto.FeedEvent, *errors.AppError) {
	events, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		logger.Error("FeedService:FetchFeed:Error:", err)
		return nil, errors.NewAppError(errors.ErrUpstreamFetch, "failed to fetch iCal feed", err)
	}
	return events, nil
}

// SaveSubscription upserts the (user, source) subscription URL, then
// reconciles the submitted events into the Event Store. The upsert and
// the inserts are separate statements: a partial import leaves the
// subscription updated and already-inserted events in place, and a
// retry converges because reconciliation is idempotent.
func (s *feedService) SaveSubscription(ctx context.Context, userID uuid.UUID, req *dto.SaveSubscriptionRequest) (*dto.ReconcileResponse, *errors.AppError) {
	if err := s.subs.Upsert(ctx, userID, req.Source, req.URL); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to save subscription", err)
	}

	inserted, skipped := s.reconcileExact(ctx, userID, req.Source, req.Events)

	logger.Info("FeedService:SaveSubscription",
		"user_id", userID, "source", req.Source,
		"inserted", inserted, "skipped", skipped)
	return &dto.ReconcileResponse{Success: true, Inserted: inserted, Skipped: skipped}, nil
}

// VerifySubscription re-pulls the stored URL for (user, source) and
// reconciles the current feed contents against the Event Store.
func (s *feedService) VerifySubscription(ctx context.Context, userID uuid.UUID, source string) (*dto.ReconcileResponse, *errors.AppError) {
	sub, err := s.subs.Get(ctx, userID, source)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load subscription", err)
	}
	if sub == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "no subscription for this source", nil)
	}

	raw, err := s.fetcher.Fetch(ctx, sub.URL)
	if err != nil {
		logger.Error("FeedService:VerifySubscription:Error:", err)
		return nil, errors.NewAppError(errors.ErrUpstreamFetch, "failed to fetch iCal feed", err)
	}

	inserted, skipped, appErr := s.reconcileBatch(ctx, userID, source, raw)
	if appErr != nil {
		return nil, appErr
	}

	logger.Info("FeedService:VerifySubscription",
		"user_id", userID, "source", source,
		"inserted", inserted, "skipped", skipped)
	return &dto.ReconcileResponse{Success: true, Inserted: inserted, Skipped: skipped}, nil
}

// GetSubscriptions returns the user's subscriptions keyed by provider.
func (s *feedService) GetSubscriptions(ctx context.Context, userID uuid.UUID) (map[string]string, *errors.AppError) {
	subs, err := s.subs.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load subscriptions", err)
	}

	out := make(map[string]string, len(subs))
	for _, sub := range subs {
		out[sub.Source] = sub.URL
	}
	return out, nil
}

// reconcileExact checks each candidate against the store individually.
// A failed lookup or insert counts the candidate as skipped and moves
// on; one bad record never aborts the batch.
func (s *feedService) reconcileExact(ctx context.Context, userID uuid.UUID, source string, raw []dto.FeedEvent) (inserted, skipped int) {
	for _, fe := range raw {
		candidate := Normalize(fe, userID, source)

		existing, err := s.events.FindByUserAndKey(ctx, userID, candidate.Title, candidate.Start, candidate.End)
		if err != nil {
			logger.Error("FeedService:reconcileExact:Lookup:Error:", err)
			skipped++
			continue
		}
		if existing != nil {
			skipped++
			continue
		}

		if _, err := s.events.Insert(ctx, &candidate); err != nil {
			logger.Error("FeedService:reconcileExact:Insert:Error:", err)
			skipped++
			continue
		}
		inserted++
	}
	return inserted, skipped
}

// reconcileBatch loads the user's events once and dedups candidates
// against an in-memory key set. Candidates inserted earlier in the same
// pass join the set, so a feed repeating an event inserts it once.
func (s *feedService) reconcileBatch(ctx context.Context, userID uuid.UUID, source string, raw []dto.FeedEvent) (inserted, skipped int, appErr *errors.AppError) {
	existing, err := s.events.ListByUser(ctx, userID)
	if err != nil {
		return 0, 0, errors.NewAppError(errors.ErrInternalServer, "failed to load events", err)
	}

	seen := make(map[string]struct{}, len(existing))
	for i := range existing {
		seen[existing[i].DedupKey()] = struct{}{}
	}

	for _, fe := range raw {
		candidate := Normalize(fe, userID, source)
		key := candidate.DedupKey()

		if _, ok := seen[key]; ok {
			skipped++
			continue
		}

		if _, err := s.events.Insert(ctx, &candidate); err != nil {
			logger.Error("FeedService:reconcileBatch:Insert:Error:", err)
			skipped++
			continue
		}
		seen[key] = struct{}{}
		inserted++
	}
	return inserted, skipped, nil
}
