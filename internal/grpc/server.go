package grpc

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Belphemur/NewReleases/internal/apperrors"
	"github.com/Belphemur/NewReleases/internal/config"
	"github.com/Belphemur/NewReleases/internal/models"
	"github.com/Belphemur/NewReleases/internal/services"
)

// server implements the NewReleasesServiceServer interface
type server struct {
	releases services.ReleaseService
	logger   zerolog.Logger
}

// NewServer creates a new gRPC server instance
func NewServer(releases services.ReleaseService) NewReleasesServiceServer {
	return &server{
		releases: releases,
		logger:   config.GetLogger(),
	}
}

// ListItems implements NewReleasesServiceServer.ListItems
func (s *server) ListItems(ctx context.Context, req *ListItemsRequest) (*ListItemsResponse, error) {
	s.logger.Debug().
		Str("user_id", req.UserID).
		Int32("start_index", req.StartIndex).
		Int32("limit", req.Limit).
		Msg("ListItems called")

	result, err := s.releases.ListItems(ctx, models.ItemsQuery{
		UserID:     req.UserID,
		StartIndex: int(req.StartIndex),
		Limit:      int(req.Limit),
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list items")
		return nil, convertErrorToStatus(err, "failed to list items")
	}

	items := make([]*ReleaseItem, len(result.Items))
	for i, record := range result.Items {
		items[i] = convertRecordToMessage(record)
	}

	s.logger.Debug().Int("count", len(items)).Int("total", result.TotalRecordCount).Msg("ListItems completed")
	return &ListItemsResponse{
		Items:            items,
		TotalRecordCount: int32(result.TotalRecordCount),
	}, nil
}

// GetExtraMediaInfo implements NewReleasesServiceServer.GetExtraMediaInfo
func (s *server) GetExtraMediaInfo(ctx context.Context, req *GetExtraMediaInfoRequest) (*GetExtraMediaInfoResponse, error) {
	s.logger.Debug().Str("id", req.ID).Msg("GetExtraMediaInfo called")

	if req.ID == "" {
		return nil, convertErrorToStatus(apperrors.NewInvalidArgumentError("id", "must not be empty"), "invalid request")
	}

	sources, err := s.releases.GetExtraSources(ctx, req.ID)
	if err != nil {
		s.logger.Error().Err(err).Str("id", req.ID).Msg("Failed to get extra media info")
		return nil, convertErrorToStatus(err, "failed to get extra media info")
	}

	s.logger.Debug().Str("id", req.ID).Int("count", len(sources)).Msg("GetExtraMediaInfo completed")
	return &GetExtraMediaInfoResponse{MediaSources: convertSourcesToMessage(sources)}, nil
}

// GetChannelFeatures implements NewReleasesServiceServer.GetChannelFeatures
func (s *server) GetChannelFeatures(ctx context.Context, req *GetChannelFeaturesRequest) (*GetChannelFeaturesResponse, error) {
	return convertFeaturesToMessage(s.releases.Features()), nil
}

// GetCacheKey implements NewReleasesServiceServer.GetCacheKey
func (s *server) GetCacheKey(ctx context.Context, req *GetCacheKeyRequest) (*GetCacheKeyResponse, error) {
	return &GetCacheKeyResponse{CacheKey: s.releases.CacheKey(req.UserID)}, nil
}
