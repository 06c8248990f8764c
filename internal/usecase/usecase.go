package usecase

import (
	"context"
	"time"

	"github.com/ryosuke-horie/group-generator/internal/pairing"
	"github.com/ryosuke-horie/group-generator/internal/repository"
	"github.com/ryosuke-horie/group-generator/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	RosterUsecaseInterface
	RunUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	engine *pairing.Engine,
	timeout time.Duration,
	maxAttempts int,
) InterfaceUsecase {
	return domain.New(log, ctx, repo, engine, timeout, maxAttempts)
}
