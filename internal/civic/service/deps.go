package service

import (
	"context"

	"statehouse/internal/civic/models"
)

// RunLister reads scrape run history for a jurisdiction.
type RunLister interface {
	LatestRuns(ctx context.Context, jurisdictionID string, limit int) ([]models.RunPlan, error)
}

// DivisionLookup maps a coordinate to the political divisions containing it.
type DivisionLookup interface {
	Divisions(ctx context.Context, lat, lng float64) ([]string, error)
}
