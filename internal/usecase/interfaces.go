package usecase

import (
	"context"

	"github.com/iho/splitledger/internal/domain"
)

// SnapshotRepository loads a consistent view of a project's participants and
// bills. The core never writes through it.
type SnapshotRepository interface {
	GetSnapshot(ctx context.Context, projectID string) (*domain.Snapshot, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}
