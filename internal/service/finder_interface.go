package service

import (
	"github.com/cypherlabdev/edge-finder-service/internal/models"
)

// Finder is an interface that abstracts edge detection
// This allows for easier testing and mocking
type Finder interface {
	FindEdges(snapshot *models.OfferSnapshot) (*models.EdgeReport, error)
}
