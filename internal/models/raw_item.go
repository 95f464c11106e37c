package models

import "time"

// RawItem is a movie entry as returned by the host library query.
// It is read-only input to the aggregator.
type RawItem struct {
	InternalID       int64             `json:"internalId"`
	HostID           string            `json:"hostId,omitempty"` // set when the host id is not numeric (Jellyfin GUIDs)
	Name             string            `json:"name"`
	OriginalTitle    string            `json:"originalTitle,omitempty"`
	ProductionYear   *int              `json:"productionYear,omitempty"` // nil when the host does not know the year
	DateCreated      time.Time         `json:"dateCreated"`
	PremiereDate     *time.Time        `json:"premiereDate,omitempty"`
	Overview         string            `json:"overview,omitempty"`
	OfficialRating   string            `json:"officialRating,omitempty"`
	CommunityRating  *float64          `json:"communityRating,omitempty"`
	ProviderIDs      map[string]string `json:"providerIds,omitempty"` // e.g. "Imdb" -> "tt1160419"
	Genres           []string          `json:"genres,omitempty"`
	Studios          []string          `json:"studios,omitempty"`
	People           []Person          `json:"people,omitempty"`
	PrimaryImagePath string            `json:"primaryImagePath,omitempty"`
	RunTimeTicks     int64             `json:"runTimeTicks,omitempty"` // 100ns units
	Path             string            `json:"path"`                   // empty for virtual/placeholder entries
	MediaSources     []RawMediaSource  `json:"mediaSources,omitempty"`
}

// Person is a cast or crew member attached to an item
type Person struct {
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
	Type string `json:"type,omitempty"` // Actor, Director, Writer...
}

// RawMediaSource is one playable variant of a RawItem as reported by the host
type RawMediaSource struct {
	ID                   string        `json:"id,omitempty"`
	Path                 string        `json:"path"`
	Protocol             string        `json:"protocol,omitempty"` // "File", "Http"...
	Container            string        `json:"container,omitempty"`
	Name                 string        `json:"name,omitempty"`
	Size                 int64         `json:"size,omitempty"`
	Bitrate              int           `json:"bitrate,omitempty"`
	RunTimeTicks         int64         `json:"runTimeTicks,omitempty"`
	SupportsDirectPlay   bool          `json:"supportsDirectPlay"`
	SupportsDirectStream bool          `json:"supportsDirectStream"`
	SupportsTranscoding  bool          `json:"supportsTranscoding"`
	MediaStreams         []MediaStream `json:"mediaStreams,omitempty"`
}

// MediaStream is a video, audio or subtitle stream inside a media source
type MediaStream struct {
	Type         string `json:"type"` // "Video", "Audio", "Subtitle"
	Codec        string `json:"codec,omitempty"`
	Language     string `json:"language,omitempty"`
	DisplayTitle string `json:"displayTitle,omitempty"`
	Index        int    `json:"index"`
	Width        int    `json:"width,omitempty"`
	Height       int    `json:"height,omitempty"`
	BitRate      int    `json:"bitRate,omitempty"`
	Channels     int    `json:"channels,omitempty"`
	IsDefault    bool   `json:"isDefault"`
}
