package client

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/Belphemur/NewReleases/internal/models"
)

// Emby writes seven fractional digits and sometimes omits the zone.
var hostTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.9999999",
	"2006-01-02T15:04:05",
}

func parseHostTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range hostTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// mapItem converts an Emby or Jellyfin item into a RawItem. Emby ids are
// numeric and land in InternalID; anything else is kept verbatim in HostID.
// It fails only when the item has no id at all.
func mapItem(dto itemDTO, baseURL string) (models.RawItem, error) {
	if dto.ID == "" {
		return models.RawItem{}, fmt.Errorf("item %q has no id", dto.Name)
	}

	item := models.RawItem{
		Name:            dto.Name,
		OriginalTitle:   dto.OriginalTitle,
		ProductionYear:  dto.ProductionYear,
		Overview:        dto.Overview,
		OfficialRating:  dto.OfficialRating,
		CommunityRating: dto.CommunityRating,
		ProviderIDs:     dto.ProviderIDs,
		Genres:          dto.Genres,
		RunTimeTicks:    dto.RunTimeTicks,
		Path:            dto.Path,
	}

	if internalID, err := strconv.ParseInt(dto.ID, 10, 64); err == nil {
		item.InternalID = internalID
	} else {
		item.HostID = dto.ID
	}

	if created, ok := parseHostTime(dto.DateCreated); ok {
		item.DateCreated = created
	}
	if premiere, ok := parseHostTime(dto.PremiereDate); ok {
		item.PremiereDate = &premiere
	}

	for _, s := range dto.Studios {
		item.Studios = append(item.Studios, s.Name)
	}
	for _, p := range dto.People {
		item.People = append(item.People, models.Person{Name: p.Name, Role: p.Role, Type: p.Type})
	}

	if tag := dto.ImageTags["Primary"]; tag != "" {
		item.PrimaryImagePath = fmt.Sprintf("%s/Items/%s/Images/Primary?tag=%s", baseURL, dto.ID, url.QueryEscape(tag))
	}

	item.MediaSources = make([]models.RawMediaSource, 0, len(dto.MediaSources))
	for _, src := range dto.MediaSources {
		item.MediaSources = append(item.MediaSources, mapMediaSource(src))
	}

	return item, nil
}

func mapMediaSource(dto mediaSourceDTO) models.RawMediaSource {
	src := models.RawMediaSource{
		ID:                   dto.ID,
		Path:                 dto.Path,
		Protocol:             dto.Protocol,
		Container:            dto.Container,
		Name:                 dto.Name,
		Size:                 dto.Size,
		Bitrate:              dto.Bitrate,
		RunTimeTicks:         dto.RunTimeTicks,
		SupportsDirectPlay:   dto.SupportsDirectPlay,
		SupportsDirectStream: dto.SupportsDirectStream,
		SupportsTranscoding:  dto.SupportsTranscoding,
	}
	for _, s := range dto.MediaStreams {
		src.MediaStreams = append(src.MediaStreams, models.MediaStream{
			Type:         s.Type,
			Codec:        s.Codec,
			Language:     s.Language,
			DisplayTitle: s.DisplayTitle,
			Index:        s.Index,
			Width:        s.Width,
			Height:       s.Height,
			BitRate:      s.BitRate,
			Channels:     s.Channels,
			IsDefault:    s.IsDefault,
		})
	}
	return src
}
