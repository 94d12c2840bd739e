package service

import (
	"context"

	"github.com/cypherlabdev/edge-finder-service/internal/models"
)

// Publisher forwards detected edges to downstream consumers
type Publisher interface {
	Publish(ctx context.Context, batchID string, edges models.Edges) error
	Close() error
}

// SnapshotProcessor runs a computation pass over an offer snapshot
type SnapshotProcessor interface {
	ProcessSnapshot(ctx context.Context, snapshot *models.OfferSnapshot) (*models.EdgeReport, error)
}
