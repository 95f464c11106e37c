package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Belphemur/NewReleases/internal/aggregator"
	"github.com/Belphemur/NewReleases/internal/apperrors"
	"github.com/Belphemur/NewReleases/internal/cache"
	"github.com/Belphemur/NewReleases/internal/client"
	"github.com/Belphemur/NewReleases/internal/config"
	"github.com/Belphemur/NewReleases/internal/metrics"
	"github.com/Belphemur/NewReleases/internal/models"
)

const (
	parentalRating    = "GeneralAudience"
	autoRefreshLevels = 3
)

// DefaultReleaseService implements ReleaseService. Library snapshots are
// cached, aggregation runs on every call.
type DefaultReleaseService struct {
	library   client.Library
	snapshots cache.Cache
	cfg       *config.Config
	now       func() time.Time
}

// NewReleaseService creates a release service. now defaults to time.Now.
func NewReleaseService(library client.Library, snapshots cache.Cache, cfg *config.Config, now func() time.Time) ReleaseService {
	if now == nil {
		now = time.Now
	}
	return &DefaultReleaseService{
		library:   library,
		snapshots: snapshots,
		cfg:       cfg,
		now:       now,
	}
}

// ListItems implements ReleaseService.ListItems
func (s *DefaultReleaseService) ListItems(ctx context.Context, query models.ItemsQuery) (*models.ItemsResult, error) {
	if query.StartIndex < 0 {
		return nil, apperrors.NewInvalidArgumentError("start_index", "must not be negative")
	}
	if query.Limit < 0 {
		return nil, apperrors.NewInvalidArgumentError("limit", "must not be negative")
	}

	records, err := s.releaseRecords(ctx)
	if err != nil {
		return nil, err
	}

	total := len(records)
	start := min(query.StartIndex, total)
	end := total
	if query.Limit > 0 && start+query.Limit < end {
		end = start + query.Limit
	}

	logger := config.GetLogger()
	logger.Debug().
		Str("userID", query.UserID).
		Int("startIndex", start).
		Int("returned", end-start).
		Int("total", total).
		Msg("Listing new releases")

	return &models.ItemsResult{
		Items:            records[start:end:end],
		TotalRecordCount: total,
	}, nil
}

// GetExtraSources implements ReleaseService.GetExtraSources
func (s *DefaultReleaseService) GetExtraSources(ctx context.Context, recordID string) ([]models.MediaSource, error) {
	records, err := s.releaseRecords(ctx)
	if err != nil {
		return nil, err
	}

	sources := aggregator.ExtraSources(records, recordID)
	if len(sources) > 0 {
		logger := config.GetLogger()
		logger.Info().
			Str("id", recordID).
			Int("sources", len(sources)).
			Msg("Sending media source info")
	}
	return sources, nil
}

// Features implements ReleaseService.Features
func (s *DefaultReleaseService) Features() models.ChannelFeatures {
	return models.ChannelFeatures{
		Name:                       s.cfg.Channel.Name,
		Description:                s.cfg.Channel.Description,
		DataVersion:                s.cfg.Channel.DataVersion,
		ParentalRating:             parentalRating,
		ContentTypes:               []string{models.ContentTypeMovie},
		MediaTypes:                 []string{models.MediaTypeVideo},
		MaxPageSize:                s.cfg.Channel.MaxPageSize,
		AutoRefreshLevels:          autoRefreshLevels,
		DefaultSortFields:          []string{models.SortFieldPremiereDate, models.SortFieldDateCreated},
		SupportsSortOrderToggle:    false,
		SupportsContentDownloading: true,
	}
}

// CacheKey implements ReleaseService.CacheKey
func (s *DefaultReleaseService) CacheKey(userID string) string {
	key := strings.ReplaceAll(uuid.NewString(), "-", "")
	logger := config.GetLogger()
	logger.Debug().Str("userID", userID).Str("cacheKey", key).Msg("Issued cache key")
	return key
}

// releaseRecords aggregates the current library snapshot and records metrics
func (s *DefaultReleaseService) releaseRecords(ctx context.Context) ([]models.ReleaseRecord, error) {
	items, err := s.snapshot(ctx)
	if err != nil {
		metrics.AggregationRunsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	start := time.Now()
	records, stats, err := aggregator.AggregateWithStats(ctx, items)
	metrics.AggregationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.AggregationRunsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to aggregate releases: %w", err)
	}

	metrics.AggregationRunsTotal.WithLabelValues("success").Inc()
	metrics.ReleaseRecords.Set(float64(stats.Records))
	metrics.ItemsSkippedTotal.Add(float64(stats.SkippedNoPath))
	metrics.SourcesDeduplicatedTotal.Add(float64(stats.DuplicateSources))

	logger := config.GetLogger()
	logger.Debug().
		Int("items", stats.Items).
		Int("skipped", stats.SkippedNoPath).
		Int("merged", stats.MergedItems).
		Int("records", stats.Records).
		Int("sources", stats.Sources).
		Msg("Aggregated new releases")

	return records, nil
}

// window returns the release window for the current minute, so that calls
// within the same minute share a snapshot
func (s *DefaultReleaseService) window() models.ReleaseWindow {
	now := s.now().UTC().Truncate(time.Minute)
	return models.NewReleaseWindow(now, s.cfg.Window.PremiereMonths, s.cfg.Window.CreatedMonths)
}

func snapshotKey(window models.ReleaseWindow) string {
	return fmt.Sprintf("snapshot:%s:%s",
		window.PremieredAfter.Format(time.RFC3339),
		window.CreatedAfter.Format(time.RFC3339))
}

// snapshot returns the library items inside the current window, from the
// cache when possible
func (s *DefaultReleaseService) snapshot(ctx context.Context) ([]models.RawItem, error) {
	logger := config.GetLogger()
	window := s.window()
	key := snapshotKey(window)

	if data, ok := s.snapshots.Get(key); ok {
		var items []models.RawItem
		err := json.Unmarshal(data, &items)
		if err == nil {
			return items, nil
		}
		logger.Warn().Err(err).Str("key", key).Msg("Dropping unreadable library snapshot")
		s.snapshots.Delete(key)
	}

	items, err := drain(ctx, s.library.StreamRecentMovies(ctx, window))
	if err != nil {
		return nil, fmt.Errorf("failed to load library snapshot: %w", err)
	}

	data, err := json.Marshal(items)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to encode library snapshot")
		return items, nil
	}
	s.snapshots.Set(key, data)

	logger.Debug().Str("key", key).Int("items", len(items)).Msg("Cached library snapshot")
	return items, nil
}

// drain collects the stream. The first error, or cancellation, fails the
// whole call.
func drain(ctx context.Context, stream <-chan models.StreamResult[models.RawItem]) ([]models.RawItem, error) {
	items := make([]models.RawItem, 0)
	for {
		select {
		case result, ok := <-stream:
			if !ok {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				return items, nil
			}
			if result.Err != nil {
				return nil, result.Err
			}
			items = append(items, result.Value)
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}
