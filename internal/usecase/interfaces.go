package usecase

import (
	"context"

	"github.com/ryosuke-horie/group-generator/internal/entities"
)

// RosterUsecaseInterface abstracts roster operations for delivery layer.
type RosterUsecaseInterface interface {
	UploadRoster(ctx context.Context, people []entities.Person) (int, error)
	Roster(ctx context.Context) ([]entities.Person, error)
}

// RunUsecaseInterface abstracts pairing run operations.
type RunUsecaseInterface interface {
	GeneratePairing(ctx context.Context, params entities.GenerateParams) (*entities.Run, error)
	Run(ctx context.Context, id int64) (*entities.Run, error)
	Runs(ctx context.Context, limit int) ([]entities.RunSummary, error)
}
