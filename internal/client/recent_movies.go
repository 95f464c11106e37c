package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/Belphemur/NewReleases/internal/config"
	"github.com/Belphemur/NewReleases/internal/models"
)

// itemFields are the optional item fields the aggregation reads
const itemFields = "Path,MediaSources,Overview,OriginalTitle,Genres,Studios,People,ProviderIds," +
	"DateCreated,PremiereDate,ProductionYear,OfficialRating,CommunityRating"

// itemsPath returns the items endpoint, scoped to a user when one is configured
func (c *client) itemsPath() string {
	if c.userID == "" {
		return "/Items"
	}
	return "/Users/" + url.PathEscape(c.userID) + "/Items"
}

func (c *client) recentMoviesQuery(window models.ReleaseWindow, startIndex int) url.Values {
	query := url.Values{}
	query.Set("IncludeItemTypes", "Movie")
	query.Set("Recursive", "true")
	query.Set("MinPremiereDate", window.PremieredAfter.UTC().Format(time.RFC3339))
	query.Set("MinDateCreated", window.CreatedAfter.UTC().Format(time.RFC3339))
	query.Set("Fields", itemFields)
	query.Set("SortBy", models.SortFieldPremiereDate+","+models.SortFieldDateCreated+",SortName")
	query.Set("SortOrder", "Descending")
	query.Set("StartIndex", strconv.Itoa(startIndex))
	query.Set("Limit", strconv.Itoa(c.pageSize))
	return query
}

// StreamRecentMovies implements Library.StreamRecentMovies.
// Items are emitted in the server's order, which the aggregation depends on.
func (c *client) StreamRecentMovies(ctx context.Context, window models.ReleaseWindow) <-chan models.StreamResult[models.RawItem] {
	ch := make(chan models.StreamResult[models.RawItem])

	go func() {
		defer close(ch)
		logger := config.GetLogger()
		logger.Debug().
			Time("premieredAfter", window.PremieredAfter).
			Time("createdAfter", window.CreatedAfter).
			Msg("Streaming recent movies from media server")

		sent, skipped := 0, 0
		for startIndex := 0; ; startIndex += c.pageSize {
			body, err := c.get(ctx, c.itemsPath(), c.recentMoviesQuery(window, startIndex))
			if err != nil {
				sendResult(ctx, ch, models.StreamResult[models.RawItem]{Err: fmt.Errorf("failed to fetch movies at %d: %w", startIndex, err)})
				return
			}

			var page itemsResponse
			if err := json.Unmarshal(body, &page); err != nil {
				sendResult(ctx, ch, models.StreamResult[models.RawItem]{Err: fmt.Errorf("failed to parse movies page: %w", err)})
				return
			}

			for _, dto := range page.Items {
				item, err := mapItem(dto, c.baseURL)
				if err != nil {
					skipped++
					logger.Warn().Err(err).Str("id", dto.ID).Msg("Skipping item")
					continue
				}
				if !sendResult(ctx, ch, models.StreamResult[models.RawItem]{Value: item}) {
					return
				}
				sent++
			}

			if len(page.Items) == 0 || startIndex+len(page.Items) >= page.TotalRecordCount {
				break
			}
		}

		logger.Debug().Int("items", sent).Int("skipped", skipped).Msg("Finished streaming recent movies")
	}()

	return ch
}

// sendResult delivers r unless ctx is done first. It reports whether r was sent.
func sendResult[T any](ctx context.Context, ch chan<- models.StreamResult[T], r models.StreamResult[T]) bool {
	select {
	case ch <- r:
		return true
	case <-ctx.Done():
		return false
	}
}
