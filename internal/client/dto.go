package client

// itemsResponse is a page of /Items results
type itemsResponse struct {
	Items            []itemDTO `json:"Items"`
	TotalRecordCount int       `json:"TotalRecordCount"`
	StartIndex       int       `json:"StartIndex"`
}

// itemDTO is a library item as serialized by Emby. Only the fields requested
// through the Fields query parameter are populated.
type itemDTO struct {
	ID              string            `json:"Id"`
	Name            string            `json:"Name"`
	OriginalTitle   string            `json:"OriginalTitle,omitempty"`
	Type            string            `json:"Type"`
	Path            string            `json:"Path,omitempty"`
	Overview        string            `json:"Overview,omitempty"`
	DateCreated     string            `json:"DateCreated,omitempty"`
	PremiereDate    string            `json:"PremiereDate,omitempty"`
	ProductionYear  *int              `json:"ProductionYear,omitempty"`
	OfficialRating  string            `json:"OfficialRating,omitempty"`
	CommunityRating *float64          `json:"CommunityRating,omitempty"`
	RunTimeTicks    int64             `json:"RunTimeTicks,omitempty"`
	ProviderIDs     map[string]string `json:"ProviderIds,omitempty"`
	Genres          []string          `json:"Genres,omitempty"`
	Studios         []nameIDPair      `json:"Studios,omitempty"`
	People          []personDTO       `json:"People,omitempty"`
	ImageTags       map[string]string `json:"ImageTags,omitempty"`
	MediaSources    []mediaSourceDTO  `json:"MediaSources,omitempty"`
}

type nameIDPair struct {
	Name string `json:"Name"`
	ID   string `json:"Id,omitempty"`
}

type personDTO struct {
	Name string `json:"Name"`
	ID   string `json:"Id,omitempty"`
	Role string `json:"Role,omitempty"`
	Type string `json:"Type,omitempty"`
}

type mediaSourceDTO struct {
	ID                   string           `json:"Id"`
	Path                 string           `json:"Path"`
	Protocol             string           `json:"Protocol,omitempty"`
	Container            string           `json:"Container,omitempty"`
	Name                 string           `json:"Name,omitempty"`
	Size                 int64            `json:"Size,omitempty"`
	Bitrate              int              `json:"Bitrate,omitempty"`
	RunTimeTicks         int64            `json:"RunTimeTicks,omitempty"`
	SupportsDirectPlay   bool             `json:"SupportsDirectPlay"`
	SupportsDirectStream bool             `json:"SupportsDirectStream"`
	SupportsTranscoding  bool             `json:"SupportsTranscoding"`
	MediaStreams         []mediaStreamDTO `json:"MediaStreams,omitempty"`
}

type mediaStreamDTO struct {
	Type         string `json:"Type"`
	Codec        string `json:"Codec,omitempty"`
	Language     string `json:"Language,omitempty"`
	DisplayTitle string `json:"DisplayTitle,omitempty"`
	Index        int    `json:"Index"`
	Width        int    `json:"Width,omitempty"`
	Height       int    `json:"Height,omitempty"`
	BitRate      int    `json:"BitRate,omitempty"`
	Channels     int    `json:"Channels,omitempty"`
	IsDefault    bool   `json:"IsDefault"`
}

// systemInfoDTO is the unauthenticated /System/Info/Public payload
type systemInfoDTO struct {
	ServerName string `json:"ServerName"`
	Version    string `json:"Version"`
	ID         string `json:"Id"`
}
