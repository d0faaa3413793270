package mcp

import (
	"context"

	"github.com/2beens/fittrack/internal/stats"
	"github.com/2beens/fittrack/internal/weight"
)

// statsReader is the read side of stats.Service the tools need.
type statsReader interface {
	Stats(ctx context.Context) (*stats.Stats, error)
	LatestWeight(ctx context.Context) (*weight.Entry, error)
}
