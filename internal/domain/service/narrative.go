package service

import (
	"context"

	"RiverSight/internal/domain/models"
)

// NarrativeGenerator turns a structured valuation summary into free-text
// commentary. The text is opaque to the core; it is returned verbatim.
type NarrativeGenerator interface {
	Generate(ctx context.Context, summary models.AnalysisSummary) (string, error)
}
