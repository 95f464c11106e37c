package testutil

import (
	"context"

	"github.com/Belphemur/NewReleases/internal/models"
)

// CollectStream drains a stream into a slice, returning the first error.
// This is a test helper and should not be used in production code.
func CollectStream[T any](ctx context.Context, stream <-chan models.StreamResult[T]) ([]T, error) {
	var values []T
	for {
		select {
		case result, ok := <-stream:
			if !ok {
				return values, nil
			}
			if result.Err != nil {
				return nil, result.Err
			}
			values = append(values, result.Value)
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// StreamOf returns a closed stream that yields items and then err, if non-nil.
func StreamOf[T any](items []T, err error) <-chan models.StreamResult[T] {
	ch := make(chan models.StreamResult[T], len(items)+1)
	for _, item := range items {
		ch <- models.StreamResult[T]{Value: item}
	}
	if err != nil {
		ch <- models.StreamResult[T]{Err: err}
	}
	close(ch)
	return ch
}
