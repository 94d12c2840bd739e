package service

import (
	"context"

	"github.com/cypherlabdev/edge-finder-service/internal/models"
)

// Cache is an interface that abstracts edge cache operations
// This allows for easier testing and mocking
type Cache interface {
	SetBatch(ctx context.Context, edges models.Edges) error
	Get(ctx context.Context, edgeID string) (*models.Edge, error)
	GetByMatch(ctx context.Context, matchID string) ([]models.Edge, error)
	Ping(ctx context.Context) error
	Close() error
}
