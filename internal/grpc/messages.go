package grpc

// ListItemsRequest asks for one page of the listing
type ListItemsRequest struct {
	UserID     string `json:"userId,omitempty"`
	StartIndex int32  `json:"startIndex,omitempty"`
	Limit      int32  `json:"limit,omitempty"`
}

// ListItemsResponse is one page of the listing
type ListItemsResponse struct {
	Items            []*ReleaseItem `json:"items"`
	TotalRecordCount int32          `json:"totalRecordCount"`
}

// ReleaseItem is a release record as sent to clients. Timestamps are RFC3339.
type ReleaseItem struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	OriginalTitle   string             `json:"originalTitle,omitempty"`
	ProductionYear  *int32             `json:"productionYear,omitempty"` // nil when unknown; 0 is a real value
	DateCreated     string             `json:"dateCreated,omitempty"`
	PremiereDate    string             `json:"premiereDate,omitempty"`
	Overview        string             `json:"overview,omitempty"`
	OfficialRating  string             `json:"officialRating,omitempty"`
	CommunityRating float64            `json:"communityRating,omitempty"`
	ProviderIDs     map[string]string  `json:"providerIds,omitempty"`
	Genres          []string           `json:"genres,omitempty"`
	Studios         []string           `json:"studios,omitempty"`
	People          []*PersonInfo      `json:"people,omitempty"`
	ImageURL        string             `json:"imageUrl,omitempty"`
	RunTimeTicks    int64              `json:"runTimeTicks,omitempty"`
	Type            string             `json:"type"`
	ContentType     string             `json:"contentType"`
	MediaType       string             `json:"mediaType"`
	IsLiveStream    bool               `json:"isLiveStream"`
	MediaSources    []*MediaSourceInfo `json:"mediaSources"`
}

type PersonInfo struct {
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
	Type string `json:"type,omitempty"`
}

// MediaSourceInfo is one playable variant of a release item
type MediaSourceInfo struct {
	ID                   string             `json:"id"`
	Path                 string             `json:"path"`
	Protocol             string             `json:"protocol"`
	Container            string             `json:"container,omitempty"`
	Name                 string             `json:"name,omitempty"`
	Size                 int64              `json:"size,omitempty"`
	Bitrate              int32              `json:"bitrate,omitempty"`
	RunTimeTicks         int64              `json:"runTimeTicks,omitempty"`
	Quality              string             `json:"quality"`
	SupportsDirectPlay   bool               `json:"supportsDirectPlay"`
	SupportsDirectStream bool               `json:"supportsDirectStream"`
	SupportsTranscoding  bool               `json:"supportsTranscoding"`
	MediaStreams         []*MediaStreamInfo `json:"mediaStreams,omitempty"`
}

type MediaStreamInfo struct {
	Type         string `json:"type"`
	Codec        string `json:"codec,omitempty"`
	Language     string `json:"language,omitempty"`
	DisplayTitle string `json:"displayTitle,omitempty"`
	Index        int32  `json:"index"`
	Width        int32  `json:"width,omitempty"`
	Height       int32  `json:"height,omitempty"`
	BitRate      int32  `json:"bitRate,omitempty"`
	Channels     int32  `json:"channels,omitempty"`
	IsDefault    bool   `json:"isDefault"`
}

// GetExtraMediaInfoRequest asks for the alternative sources of a release item
type GetExtraMediaInfoRequest struct {
	ID string `json:"id"`
}

type GetExtraMediaInfoResponse struct {
	MediaSources []*MediaSourceInfo `json:"mediaSources"`
}

type GetChannelFeaturesRequest struct{}

type GetChannelFeaturesResponse struct {
	Name                       string   `json:"name"`
	Description                string   `json:"description"`
	DataVersion                string   `json:"dataVersion"`
	ParentalRating             string   `json:"parentalRating"`
	ContentTypes               []string `json:"contentTypes"`
	MediaTypes                 []string `json:"mediaTypes"`
	MaxPageSize                int32    `json:"maxPageSize"`
	AutoRefreshLevels          int32    `json:"autoRefreshLevels"`
	DefaultSortFields          []string `json:"defaultSortFields"`
	SupportsSortOrderToggle    bool     `json:"supportsSortOrderToggle"`
	SupportsContentDownloading bool     `json:"supportsContentDownloading"`
}

type GetCacheKeyRequest struct {
	UserID string `json:"userId,omitempty"`
}

type GetCacheKeyResponse struct {
	CacheKey string `json:"cacheKey"`
}
