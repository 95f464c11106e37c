// Package aggregator folds library movie entries into deduplicated release
// records. Entries sharing a name and production year become one record whose
// media sources are the union, by path, of every entry's sources.
package aggregator

import (
	"context"

	"github.com/Belphemur/NewReleases/internal/models"
)

// cancelCheckInterval is how many items are folded between context checks
const cancelCheckInterval = 256

// Stats describes what a single aggregation did with its input
type Stats struct {
	Items            int // items read
	SkippedNoPath    int // placeholder items without a file
	MergedItems      int // items folded into an existing record
	DuplicateSources int // sources dropped because their path was already present
	Records          int
	Sources          int // media sources across all records
}

// releaseKey identifies a logical movie. A nil year is its own key and never
// matches a concrete year.
type releaseKey struct {
	name    string
	year    int
	hasYear bool
}

func keyOf(item *models.RawItem) releaseKey {
	if item.ProductionYear == nil {
		return releaseKey{name: item.Name}
	}
	return releaseKey{name: item.Name, year: *item.ProductionYear, hasYear: true}
}

// group is a record under construction plus the paths it already holds
type group struct {
	record *models.ReleaseRecord
	paths  map[string]struct{}
}

// Aggregate folds items, in order, into release records. The first item seen
// for a key supplies the record's id and descriptive fields. On cancellation
// it returns the context error and no records.
func Aggregate(ctx context.Context, items []models.RawItem) ([]models.ReleaseRecord, error) {
	records, _, err := AggregateWithStats(ctx, items)
	return records, err
}

// AggregateWithStats is Aggregate that also reports what it did
func AggregateWithStats(ctx context.Context, items []models.RawItem) ([]models.ReleaseRecord, Stats, error) {
	var stats Stats
	groups := make(map[releaseKey]*group)
	order := make([]*group, 0)

	for i := range items {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, Stats{}, err
			}
		}

		item := &items[i]
		stats.Items++

		if item.Path == "" {
			stats.SkippedNoPath++
			continue
		}

		key := keyOf(item)
		g, exists := groups[key]
		if exists {
			stats.MergedItems++
		} else {
			g = &group{
				record: newRecord(item),
				paths:  make(map[string]struct{}, len(item.MediaSources)),
			}
			groups[key] = g
			order = append(order, g)
		}

		for _, raw := range item.MediaSources {
			if _, seen := g.paths[raw.Path]; seen {
				stats.DuplicateSources++
				continue
			}
			g.paths[raw.Path] = struct{}{}
			g.record.MediaSources = append(g.record.MediaSources, newMediaSource(raw))
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, Stats{}, err
	}

	records := make([]models.ReleaseRecord, len(order))
	for i, g := range order {
		records[i] = *g.record
		stats.Sources += len(g.record.MediaSources)
	}
	stats.Records = len(records)

	return records, stats, nil
}

// ExtraSources returns every media source of the record with the given id
// except the first, which the caller already plays by default. Unknown ids
// and records with fewer than two sources yield an empty slice.
func ExtraSources(records []models.ReleaseRecord, recordID string) []models.MediaSource {
	for i := range records {
		if records[i].ID != recordID {
			continue
		}
		sources := records[i].MediaSources
		if len(sources) <= 1 {
			return []models.MediaSource{}
		}
		extra := make([]models.MediaSource, len(sources)-1)
		copy(extra, sources[1:])
		return extra
	}
	return []models.MediaSource{}
}

func newRecord(item *models.RawItem) *models.ReleaseRecord {
	return &models.ReleaseRecord{
		ID:              recordIDOf(*item),
		Name:            item.Name,
		ProductionYear:  item.ProductionYear,
		OriginalTitle:   item.OriginalTitle,
		DateCreated:     item.DateCreated,
		PremiereDate:    item.PremiereDate,
		Overview:        item.Overview,
		OfficialRating:  item.OfficialRating,
		CommunityRating: item.CommunityRating,
		ProviderIDs:     item.ProviderIDs,
		Genres:          item.Genres,
		Studios:         item.Studios,
		People:          item.People,
		ImageURL:        item.PrimaryImagePath,
		RunTimeTicks:    item.RunTimeTicks,
		Type:            models.ChannelItemTypeMedia,
		ContentType:     models.ContentTypeMovie,
		MediaType:       models.MediaTypeVideo,
		IsLiveStream:    false,
		MediaSources:    make([]models.MediaSource, 0, len(item.MediaSources)),
	}
}

func newMediaSource(raw models.RawMediaSource) models.MediaSource {
	src := models.MediaSource{RawMediaSource: raw}
	src.ID = SourceID(raw.Path)
	if src.Protocol == "" {
		src.Protocol = models.DefaultMediaProtocol
	}
	src.Quality = models.QualityOf(raw.MediaStreams)
	return src
}
