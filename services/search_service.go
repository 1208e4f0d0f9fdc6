package services

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"IsletmeBulucu/models"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type SearchEventType string

const (
	EventBusiness   SearchEventType = "business"
	EventProgress   SearchEventType = "progress"
	EventQueryError SearchEventType = "query_error"
	EventDone       SearchEventType = "done"
)

const (
	msgQuotaExceeded = "Model API quota exceeded. Free tier request limits usually cause this, wait a moment and retry."
	msgQueryFailed   = "Failed to fetch business data. Please check your API key and network connection."
)

// SearchEvent is one item of a search stream. Exactly one payload field is set.
type SearchEvent struct {
	Type     SearchEventType
	Business *models.Business
	Progress *models.Progress
	Failure  *models.QueryFailure
	Summary  *models.SearchSummary
}

// SearchService runs a search: one model call per neighborhood/subcategory
// combination, strictly one after another.
type SearchService struct {
	Catalog  *CatalogService
	Streamer CompletionStreamer
	History  *HistoryService
	Settings *SettingsService
	Limiter  *rate.Limiter
	Logger   *zap.Logger
}

// NewSearchService paces model calls at most one per interval; zero disables
// pacing.
func NewSearchService(catalog *CatalogService, streamer CompletionStreamer, history *HistoryService, settings *SettingsService, interval time.Duration, logger *zap.Logger) *SearchService {
	var limiter *rate.Limiter
	if interval > 0 {
		limiter = rate.NewLimiter(rate.Every(interval), 1)
	}
	return &SearchService{
		Catalog:  catalog,
		Streamer: streamer,
		History:  history,
		Settings: settings,
		Limiter:  limiter,
		Logger:   logger,
	}
}

// Prepare validates a request before any streaming starts.
func (s *SearchService) Prepare(req models.SearchRequest) (*models.Selection, error) {
	return s.Catalog.Resolve(req)
}

// Stream runs the search for sel and sends its events. It closes events when
// done. Cancelling ctx stops the search and skips recording it.
func (s *SearchService) Stream(ctx context.Context, clientID string, sel *models.Selection, events chan<- SearchEvent) {
	defer close(events)

	model := ""
	if s.Settings != nil && clientID != "" {
		if settings, err := s.Settings.Get(ctx, clientID); err == nil && s.Settings.ModelAllowed(settings.Model) {
			model = settings.Model
		} else if err != nil {
			s.Logger.Warn("Settings unavailable, using default model", zap.Error(err))
		}
	}

	queries := Queries(sel)
	summary := &models.SearchSummary{Queries: len(queries)}
	seen := make(map[string]bool)
	var results []models.Business

	s.Logger.Info("Search started",
		zap.String("client", clientID),
		zap.String("province", sel.Province.Value),
		zap.String("district", sel.District.Value),
		zap.String("category", sel.MainCategory.Value),
		zap.Int("queries", len(queries)),
		zap.String("model", s.Streamer.Name()),
	)

	for i, q := range queries {
		if s.Limiter != nil {
			if err := s.Limiter.Wait(ctx); err != nil {
				summary.Aborted = true
				break
			}
		}

		found := 0
		accept := func(batch []models.Business) error {
			for _, b := range batch {
				b = normalizeBusiness(b, q)
				key := dedupeKey(b)
				if seen[key] {
					continue
				}
				seen[key] = true
				results = append(results, b)
				found++
				if !emit(ctx, events, SearchEvent{Type: EventBusiness, Business: &b}) {
					return ctx.Err()
				}
			}
			return nil
		}

		systemPrompt, userPrompt := BuildPrompt(q)
		parser := NewNDJSONParser()
		err := s.Streamer.StreamCompletion(ctx, CompletionRequest{
			Model:        model,
			SystemPrompt: systemPrompt,
			UserPrompt:   userPrompt,
		}, func(chunk string) error {
			return accept(parser.Feed(chunk))
		})
		if ctx.Err() == nil {
			if flushErr := accept(parser.Flush()); err == nil {
				err = flushErr
			}
		}
		summary.SkippedLines += parser.Skipped()

		if ctx.Err() != nil {
			summary.Aborted = true
			break
		}

		if err != nil {
			summary.Failed++
			failure := &models.QueryFailure{
				Index:        i + 1,
				Neighborhood: q.Neighborhood.Label,
				SubCategory:  q.SubCategory.Label,
				Message:      msgQueryFailed,
			}
			quota := errors.Is(err, ErrQuotaExceeded)
			if quota {
				failure.Message = msgQuotaExceeded
			}
			s.Logger.Warn("Query failed",
				zap.Int("index", i+1),
				zap.String("neighborhood", q.Neighborhood.Value),
				zap.String("subCategory", q.SubCategory.Value),
				zap.Error(err),
			)
			emit(ctx, events, SearchEvent{Type: EventQueryError, Failure: failure})
			if quota {
				summary.QuotaExceeded = true
				summary.Aborted = i < len(queries)-1
				break
			}
		}

		emit(ctx, events, SearchEvent{Type: EventProgress, Progress: &models.Progress{
			Index:        i + 1,
			Total:        len(queries),
			Neighborhood: q.Neighborhood.Label,
			SubCategory:  q.SubCategory.Label,
			Found:        found,
			Accumulated:  len(results),
		}})
	}

	summary.Total = len(results)
	if ctx.Err() != nil {
		s.Logger.Info("Search cancelled", zap.String("client", clientID), zap.Int("found", len(results)))
		return
	}

	succeeded := summary.Failed < summary.Queries && !(summary.QuotaExceeded && len(results) == 0)
	if s.History != nil && clientID != "" && succeeded {
		item := NewHistoryItem(sel, len(results), time.Now())
		if err := s.History.Record(ctx, clientID, item, results); err != nil {
			s.Logger.Error("Failed to record search history", zap.Error(err))
		} else {
			summary.HistoryID = item.ID
		}
	}

	s.Logger.Info("Search finished",
		zap.String("client", clientID),
		zap.Int("found", summary.Total),
		zap.Int("failed", summary.Failed),
		zap.Int("skippedLines", summary.SkippedLines),
	)
	emit(ctx, events, SearchEvent{Type: EventDone, Summary: summary})
}

// Collect runs a search without streaming and returns every business found.
func (s *SearchService) Collect(ctx context.Context, clientID string, sel *models.Selection) ([]models.Business, *models.SearchSummary) {
	events := make(chan SearchEvent)
	go s.Stream(ctx, clientID, sel, events)

	var results []models.Business
	var summary *models.SearchSummary
	for ev := range events {
		switch ev.Type {
		case EventBusiness:
			results = append(results, *ev.Business)
		case EventDone:
			summary = ev.Summary
		}
	}
	return results, summary
}

func emit(ctx context.Context, events chan<- SearchEvent, ev SearchEvent) bool {
	select {
	case events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

func normalizeBusiness(b models.Business, q models.Query) models.Business {
	b.BusinessName = strings.TrimSpace(b.BusinessName)
	b.MainCategory = strings.TrimSpace(b.MainCategory)
	b.SubCategory = strings.TrimSpace(b.SubCategory)
	b.District = strings.TrimSpace(b.District)
	b.Neighborhood = strings.TrimSpace(b.Neighborhood)
	b.Address = strings.TrimSpace(b.Address)
	b.GoogleMapsLink = strings.TrimSpace(b.GoogleMapsLink)

	if b.MainCategory == "" {
		b.MainCategory = q.MainCategory.Label
	}
	if b.SubCategory == "" && q.SubCategory.Value != "" {
		b.SubCategory = q.SubCategory.Label
	}
	if b.District == "" {
		b.District = q.District.Label
	}
	if b.Neighborhood == "" && q.Neighborhood.Value != "" {
		b.Neighborhood = q.Neighborhood.Label
	}
	if b.GoogleRating != nil && !(*b.GoogleRating >= 0 && *b.GoogleRating <= 5) {
		b.GoogleRating = nil
	}
	if b.Coordinates != nil {
		if _, ok := ParseCoordinates(*b.Coordinates); !ok {
			b.Coordinates = nil
		}
	}
	if !strings.HasPrefix(b.GoogleMapsLink, "https://") && !strings.HasPrefix(b.GoogleMapsLink, "http://") {
		b.GoogleMapsLink = MapsSearchLink(b)
	}
	return b
}

// MapsSearchLink builds a Google Maps search URL for a business, pinned to
// its place id when one is known.
func MapsSearchLink(b models.Business) string {
	query := b.BusinessName
	if b.Address != "" {
		query += ", " + b.Address
	}
	v := url.Values{}
	v.Set("api", "1")
	v.Set("query", query)
	if b.GooglePlaceID != nil && *b.GooglePlaceID != "" {
		v.Set("query_place_id", *b.GooglePlaceID)
	}
	return "https://www.google.com/maps/search/?" + v.Encode()
}

func dedupeKey(b models.Business) string {
	if b.GooglePlaceID != nil && *b.GooglePlaceID != "" {
		return "id:" + strings.ToLower(*b.GooglePlaceID)
	}
	return "na:" + strings.ToLower(b.BusinessName) + "|" + strings.ToLower(b.Address)
}
