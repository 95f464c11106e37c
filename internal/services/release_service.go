package services

import (
	"context"

	"github.com/Belphemur/NewReleases/internal/models"
)

// ReleaseService serves the new-releases listing on top of the media library
type ReleaseService interface {
	// ListItems returns one page of release records
	ListItems(ctx context.Context, query models.ItemsQuery) (*models.ItemsResult, error)

	// GetExtraSources returns every media source of a record except its first.
	// An unknown id yields an empty slice.
	GetExtraSources(ctx context.Context, recordID string) ([]models.MediaSource, error)

	// Features returns the channel's static capability metadata
	Features() models.ChannelFeatures

	// CacheKey returns a fresh token on every call so hosts never reuse a listing
	CacheKey(userID string) string
}
