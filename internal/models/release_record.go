package models

import "time"

// Channel item typing shared by every release record
const (
	ChannelItemTypeMedia = "Media"
	ContentTypeMovie     = "Movie"
	MediaTypeVideo       = "Video"
	DefaultMediaProtocol = "File"
	ReleaseIDPrefix      = "new_release_"
)

// ReleaseRecord is one deduplicated movie of the listing: every library entry
// sharing its name and production year contributes media sources to it.
type ReleaseRecord struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	ProductionYear  *int              `json:"productionYear,omitempty"`
	OriginalTitle   string            `json:"originalTitle,omitempty"`
	DateCreated     time.Time         `json:"dateCreated"`
	PremiereDate    *time.Time        `json:"premiereDate,omitempty"`
	Overview        string            `json:"overview,omitempty"`
	OfficialRating  string            `json:"officialRating,omitempty"`
	CommunityRating *float64          `json:"communityRating,omitempty"`
	ProviderIDs     map[string]string `json:"providerIds,omitempty"`
	Genres          []string          `json:"genres,omitempty"`
	Studios         []string          `json:"studios,omitempty"`
	People          []Person          `json:"people,omitempty"`
	ImageURL        string            `json:"imageUrl,omitempty"`
	RunTimeTicks    int64             `json:"runTimeTicks,omitempty"`
	Type            string            `json:"type"`
	ContentType     string            `json:"contentType"`
	MediaType       string            `json:"mediaType"`
	IsLiveStream    bool              `json:"isLiveStream"`
	MediaSources    []MediaSource     `json:"mediaSources"`
}

// MediaSource is a playable variant of a release record with a stable ID
type MediaSource struct {
	RawMediaSource
	Quality Quality `json:"quality"` // derived from the tallest video stream
}
