package domain

import (
	"context"
	"time"

	"github.com/ryosuke-horie/group-generator/internal/pairing"
	"github.com/ryosuke-horie/group-generator/internal/repository"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx         context.Context
	log         *zap.SugaredLogger
	repo        repository.Repository
	engine      *pairing.Engine
	timeout     time.Duration
	maxAttempts int
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	engine *pairing.Engine,
	timeout time.Duration,
	maxAttempts int,
) *Usecase {
	if maxAttempts <= 0 {
		maxAttempts = pairing.DefaultMaxAttempts
	}
	return &Usecase{
		ctx:         ctx,
		log:         log,
		repo:        repo,
		engine:      engine,
		timeout:     timeout,
		maxAttempts: maxAttempts,
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
