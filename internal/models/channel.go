package models

import "time"

// ChannelFeatures is the static capability metadata the channel declares to
// its host. None of it is enforced by the listing itself.
type ChannelFeatures struct {
	Name                       string   `json:"name"`
	Description                string   `json:"description"`
	DataVersion                string   `json:"dataVersion"`
	ParentalRating             string   `json:"parentalRating"`
	ContentTypes               []string `json:"contentTypes"`
	MediaTypes                 []string `json:"mediaTypes"`
	MaxPageSize                int      `json:"maxPageSize"`
	AutoRefreshLevels          int      `json:"autoRefreshLevels"`
	DefaultSortFields          []string `json:"defaultSortFields"`
	SupportsSortOrderToggle    bool     `json:"supportsSortOrderToggle"`
	SupportsContentDownloading bool     `json:"supportsContentDownloading"`
}

// Sort fields understood by the channel host
const (
	SortFieldPremiereDate = "PremiereDate"
	SortFieldDateCreated  = "DateCreated"
)

// ItemsQuery is a page request against the listing
type ItemsQuery struct {
	UserID     string `json:"userId,omitempty"`
	StartIndex int    `json:"startIndex,omitempty"`
	Limit      int    `json:"limit,omitempty"` // 0 returns every record from StartIndex
}

// ItemsResult is one page of the listing
type ItemsResult struct {
	Items            []ReleaseRecord `json:"items"`
	TotalRecordCount int             `json:"totalRecordCount"`
}

// ReleaseWindow bounds the library query: movies premiered after
// PremieredAfter AND added to the library after CreatedAfter.
type ReleaseWindow struct {
	PremieredAfter time.Time `json:"premieredAfter"`
	CreatedAfter   time.Time `json:"createdAfter"`
}

// NewReleaseWindow returns the window ending at now
func NewReleaseWindow(now time.Time, premiereMonths, createdMonths int) ReleaseWindow {
	return ReleaseWindow{
		PremieredAfter: now.AddDate(0, -premiereMonths, 0),
		CreatedAfter:   now.AddDate(0, -createdMonths, 0),
	}
}
