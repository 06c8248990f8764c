// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/ryosuke-horie/group-generator/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// RosterInterface exposes roster persistence operations.
type RosterInterface interface {
	ReplaceRoster(ctx context.Context, people []entities.Person) (int, error)
	GetRoster(ctx context.Context) ([]entities.Person, error)
}

// RunInterface exposes pairing run persistence operations.
type RunInterface interface {
	CreateRun(ctx context.Context, run entities.Run) (*entities.Run, error)
	GetRun(ctx context.Context, id int64) (*entities.Run, error)
	ListRuns(ctx context.Context, limit int) ([]entities.RunSummary, error)
}
