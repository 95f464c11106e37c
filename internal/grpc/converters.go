package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/getsentry/sentry-go"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Belphemur/NewReleases/internal/apperrors"
	"github.com/Belphemur/NewReleases/internal/models"
)

// convertRecordToMessage converts a models.ReleaseRecord to a ReleaseItem
func convertRecordToMessage(record models.ReleaseRecord) *ReleaseItem {
	item := &ReleaseItem{
		ID:             record.ID,
		Name:           record.Name,
		OriginalTitle:  record.OriginalTitle,
		Overview:       record.Overview,
		OfficialRating: record.OfficialRating,
		ProviderIDs:    record.ProviderIDs,
		Genres:         record.Genres,
		Studios:        record.Studios,
		ImageURL:       record.ImageURL,
		RunTimeTicks:   record.RunTimeTicks,
		Type:           record.Type,
		ContentType:    record.ContentType,
		MediaType:      record.MediaType,
		IsLiveStream:   record.IsLiveStream,
		MediaSources:   convertSourcesToMessage(record.MediaSources),
	}
	if record.ProductionYear != nil {
		year := int32(*record.ProductionYear)
		item.ProductionYear = &year
	}
	if record.CommunityRating != nil {
		item.CommunityRating = *record.CommunityRating
	}
	if !record.DateCreated.IsZero() {
		item.DateCreated = record.DateCreated.UTC().Format(time.RFC3339)
	}
	if record.PremiereDate != nil {
		item.PremiereDate = record.PremiereDate.UTC().Format(time.RFC3339)
	}
	for _, p := range record.People {
		item.People = append(item.People, &PersonInfo{Name: p.Name, Role: p.Role, Type: p.Type})
	}
	return item
}

// convertSourcesToMessage always returns a non-nil slice so that an empty
// result encodes as [] rather than null
func convertSourcesToMessage(sources []models.MediaSource) []*MediaSourceInfo {
	out := make([]*MediaSourceInfo, len(sources))
	for i, src := range sources {
		out[i] = convertSourceToMessage(src)
	}
	return out
}

func convertSourceToMessage(src models.MediaSource) *MediaSourceInfo {
	info := &MediaSourceInfo{
		ID:                   src.ID,
		Path:                 src.Path,
		Protocol:             src.Protocol,
		Container:            src.Container,
		Name:                 src.Name,
		Size:                 src.Size,
		Bitrate:              int32(src.Bitrate),
		RunTimeTicks:         src.RunTimeTicks,
		Quality:              src.Quality.String(),
		SupportsDirectPlay:   src.SupportsDirectPlay,
		SupportsDirectStream: src.SupportsDirectStream,
		SupportsTranscoding:  src.SupportsTranscoding,
	}
	for _, s := range src.MediaStreams {
		info.MediaStreams = append(info.MediaStreams, &MediaStreamInfo{
			Type:         s.Type,
			Codec:        s.Codec,
			Language:     s.Language,
			DisplayTitle: s.DisplayTitle,
			Index:        int32(s.Index),
			Width:        int32(s.Width),
			Height:       int32(s.Height),
			BitRate:      int32(s.BitRate),
			Channels:     int32(s.Channels),
			IsDefault:    s.IsDefault,
		})
	}
	return info
}

func convertFeaturesToMessage(f models.ChannelFeatures) *GetChannelFeaturesResponse {
	return &GetChannelFeaturesResponse{
		Name:                       f.Name,
		Description:                f.Description,
		DataVersion:                f.DataVersion,
		ParentalRating:             f.ParentalRating,
		ContentTypes:               f.ContentTypes,
		MediaTypes:                 f.MediaTypes,
		MaxPageSize:                int32(f.MaxPageSize),
		AutoRefreshLevels:          int32(f.AutoRefreshLevels),
		DefaultSortFields:          f.DefaultSortFields,
		SupportsSortOrderToggle:    f.SupportsSortOrderToggle,
		SupportsContentDownloading: f.SupportsContentDownloading,
	}
}

// convertErrorToStatus maps service errors to gRPC status codes. Failures the
// caller cannot fix are reported to Sentry.
func convertErrorToStatus(err error, msg string) error {
	var invalid *apperrors.ErrInvalidArgument
	if errors.As(err, &invalid) {
		st := status.New(codes.InvalidArgument, invalid.Error())
		detailed, detailErr := st.WithDetails(&errdetails.BadRequest{
			FieldViolations: []*errdetails.BadRequest_FieldViolation{
				{Field: invalid.Field, Description: invalid.Reason},
			},
		})
		if detailErr != nil {
			return st.Err()
		}
		return detailed.Err()
	}

	switch {
	case errors.Is(err, context.Canceled):
		return status.Errorf(codes.Canceled, "%s: %v", msg, err)
	case errors.Is(err, context.DeadlineExceeded):
		return status.Errorf(codes.DeadlineExceeded, "%s: %v", msg, err)
	}

	sentry.CaptureException(err)
	if errors.Is(err, &apperrors.ErrAuthFailed{}) {
		return status.Errorf(codes.PermissionDenied, "%s: %v", msg, err)
	}
	return status.Errorf(codes.Unavailable, "%s: %v", msg, err)
}
