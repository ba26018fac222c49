package users

import (
	"context"
	"fmt"

	"stockroom/internal/repository"
	custom_error "stockroom/pkg/errors"
	"stockroom/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type UserRepository interface {
	GetUser(ctx context.Context, id int) (*models.User, error)
}

type userRepositoryImpl struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) UserRepository {
	return &userRepositoryImpl{repository: r}
}

func (r *userRepositoryImpl) GetUser(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	found, err := r.repository.GoquDBWrapper.
		Select("id", "name", "email", "role", "email_verified_at").
		From("users").
		Where(goqu.Ex{"id": id}).
		Executor().
		ScanStructContext(ctx, &user)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !found {
		return nil, custom_error.NewNotFoundError("User not found.")
	}

	return &user, nil
}
