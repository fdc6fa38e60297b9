package service

import (
	"context"
	"time"

	"shopmatic/internal/entity"
)

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// NewUserParams carries the signup payload. The ID comes from the auth
// frontend, not from us.
type NewUserParams struct {
	ID     string
	Name   string
	Email  string
	Photo  string
	Gender string
	DOB    time.Time
}

// Upsert returns the existing user untouched when the ID is already known;
// otherwise it validates and creates one with the default role.
func (s *UserService) Upsert(ctx context.Context, params NewUserParams) (*entity.User, error) {
	user, err := s.repo.GetByID(ctx, params.ID)
	if err != nil {
		logger.Error().Err(err).Msgf("Error getting user by ID %s", params.ID)
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	if params.ID == "" || params.Name == "" || params.Email == "" || params.Photo == "" ||
		params.Gender == "" || params.DOB.IsZero() {
		return nil, entity.BadRequest("Please Fill all the Fields")
	}

	return s.repo.Create(ctx, &entity.User{
		ID:     params.ID,
		Name:   params.Name,
		Email:  params.Email,
		Photo:  params.Photo,
		Gender: params.Gender,
		DOB:    params.DOB,
		Role:   entity.RoleUser,
	})
}

func (s *UserService) All(ctx context.Context) ([]*entity.User, error) {
	return s.repo.All(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, entity.BadRequest("Invalid Id")
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return entity.BadRequest("Invalid Id")
	}
	return s.repo.Delete(ctx, id)
}
