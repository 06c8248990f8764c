// Package domain contains application Usecases orchestrating pairing logic.
package domain

import (
	"context"
	"fmt"

	"github.com/ryosuke-horie/group-generator/internal/entities"
)

// UploadRoster replaces the stored roster and returns the stored people count.
func (u *Usecase) UploadRoster(ctx context.Context, people []entities.Person) (int, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if len(people) == 0 {
		u.log.Errorw("failed to upload roster: no people")
		return 0, fmt.Errorf("%w: at least one person is required", entities.ErrInvalidArgument)
	}
	seen := make(map[string]struct{}, len(people))
	for _, person := range people {
		if person.Name == "" || person.Group == "" {
			return 0, fmt.Errorf("%w: name and group are required", entities.ErrInvalidArgument)
		}
		if _, ok := seen[person.Name]; ok {
			return 0, fmt.Errorf("%w: duplicate name %q", entities.ErrInvalidArgument, person.Name)
		}
		seen[person.Name] = struct{}{}
	}

	return u.repo.ReplaceRoster(ctx, people)
}

// Roster returns the stored roster.
func (u *Usecase) Roster(ctx context.Context) ([]entities.Person, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.GetRoster(ctx)
}
